package controllers

import (
	"errors"
	"net/http"
	"provider-leads-service/internal/app/config"
	"provider-leads-service/internal/app/contracts"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/dto/requests"
	"provider-leads-service/internal/pkg/dto/responses"
	"provider-leads-service/internal/pkg/exceptions"
	"provider-leads-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ListController struct {
	Log            *zap.Logger
	ListUsecase    contracts.ListUsecase
	InternalConfig *config.InternalConfig
}

func NewListController(logger *zap.Logger, listUsecase contracts.ListUsecase, internalConfig *config.InternalConfig) *ListController {
	return &ListController{
		Log:            logger,
		ListUsecase:    listUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *ListController) GetLists(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	workspaceID, err := workspaceID(r)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	lists, err := ctrl.ListUsecase.LoadLists(ctx, workspaceID)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetListsSuccessMessage, lists)
}

// CreateList creates an empty list.
func (ctrl *ListController) CreateList(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ListController.CreateList called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	workspaceID, err := workspaceID(r)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	var request requests.CreateList
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeCreateListRequest(&request)

	err = utils.ValidateStruct(request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	list, err := ctrl.ListUsecase.CreateList(ctx, workspaceID, request.ListName)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ListController.CreateList succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingListIDKey, list.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ResponseSuccess, list)
}

func (ctrl *ListController) GetListProviders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	workspaceID, err := workspaceID(r)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	listID := chi.URLParam(r, constvars.URLParamListID)
	paginationRequest := utils.BuildPaginationRequest(r, ctrl.InternalConfig.App.ListPageSize)

	workspace, err := ctrl.ListUsecase.ViewList(ctx, workspaceID, listID)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	matched := utils.FilterProviders(workspace.ListProviders, paginationRequest.Search)
	page := utils.Paginate(matched, paginationRequest.Page, paginationRequest.PageSize)
	response := responses.ListProviders{
		List:          *workspace.CurrentList,
		SelectedCount: len(workspace.SelectedNPIs()),
		Rows:          utils.BuildProviderRows(page, workspace),
	}

	baseURL := ctrl.InternalConfig.App.BaseUrl + r.URL.Path
	pagination := utils.BuildPaginationResponse(len(matched), paginationRequest.Page, paginationRequest.PageSize, baseURL)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetListProvidersSuccessMessage, pagination, response)
}

// AddProvidersToList attaches the given NPIs, or the current selection when
// the body carries none, to an existing list.
func (ctrl *ListController) AddProvidersToList(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	listID := chi.URLParam(r, constvars.URLParamListID)
	ctrl.Log.Info("ListController.AddProvidersToList called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingListIDKey, listID),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	workspaceID, err := workspaceID(r)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	var request requests.AddProvidersToList
	err = decodeOptionalJSON(r, &request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeAddProvidersToListRequest(&request)

	err = utils.ValidateStruct(request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.ListUsecase.SaveSelectionToExistingList(ctx, workspaceID, listID, request.ProviderNPIs)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, result)
}

// SaveSelection saves providers to a new list when no list id is given,
// otherwise to the existing list.
func (ctrl *ListController) SaveSelection(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ListController.SaveSelection called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	workspaceID, err := workspaceID(r)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	var request requests.SaveSelection
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeSaveSelectionRequest(&request)

	err = utils.ValidateStruct(request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	if request.ListID != "" {
		result, err := ctrl.ListUsecase.SaveSelectionToExistingList(ctx, workspaceID, request.ListID, request.NPIs)
		if err != nil {
			buildErrorResponse(ctrl.Log, w, err)
			return
		}
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, result)
		return
	}

	result, err := ctrl.ListUsecase.SaveSelectionToNewList(ctx, workspaceID, request.ListName, request.NPIs)
	if err != nil {
		var customErr *exceptions.CustomError
		if result != nil && errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusMultiStatus {
			utils.BuildPartialResponse(ctrl.Log, w, err, result)
			return
		}
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ListController.SaveSelection succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingListIDKey, result.List.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ResponseSuccess, result)
}
