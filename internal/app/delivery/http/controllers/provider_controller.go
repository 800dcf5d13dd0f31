package controllers

import (
	"net/http"
	"provider-leads-service/internal/app/config"
	"provider-leads-service/internal/app/contracts"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/dto/requests"
	"provider-leads-service/internal/pkg/dto/responses"
	"provider-leads-service/internal/pkg/exceptions"
	"provider-leads-service/internal/pkg/utils"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProviderController struct {
	Log              *zap.Logger
	ProviderUsecase  contracts.ProviderUsecase
	WorkspaceService contracts.WorkspaceService
	InternalConfig   *config.InternalConfig
}

func NewProviderController(
	logger *zap.Logger,
	providerUsecase contracts.ProviderUsecase,
	workspaceService contracts.WorkspaceService,
	internalConfig *config.InternalConfig,
) *ProviderController {
	return &ProviderController{
		Log:              logger,
		ProviderUsecase:  providerUsecase,
		WorkspaceService: workspaceService,
		InternalConfig:   internalConfig,
	}
}

// SearchProviders runs a search when the filter differs from the workspace's
// last one (or refresh=true), then serves the requested page of results.
func (ctrl *ProviderController) SearchProviders(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ProviderController.SearchProviders called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	workspaceID, err := workspaceID(r)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	filter := utils.BuildProviderFilterRequest(r)
	paginationRequest := utils.BuildPaginationRequest(r, ctrl.InternalConfig.App.PageSize)
	refresh, _ := strconv.ParseBool(r.URL.Query().Get("refresh"))

	workspace, err := ctrl.WorkspaceService.Load(ctx, workspaceID)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	if refresh || !workspace.HasSearched || workspace.Filter != filter {
		workspace, err = ctrl.ProviderUsecase.Search(ctx, workspaceID, filter)
		if err != nil {
			buildErrorResponse(ctrl.Log, w, err)
			return
		}
	}

	matched := utils.FilterProviders(workspace.Results, paginationRequest.Search)
	page := utils.Paginate(matched, paginationRequest.Page, paginationRequest.PageSize)
	response := responses.SearchProviders{
		Filter:        workspace.Filter,
		Badges:        utils.FilterBadges(workspace.Filter),
		SelectedCount: len(workspace.SelectedNPIs()),
		Rows:          utils.BuildProviderRows(page, workspace),
	}

	baseURL := ctrl.InternalConfig.App.BaseUrl + r.URL.Path
	pagination := utils.BuildPaginationResponse(len(matched), paginationRequest.Page, paginationRequest.PageSize, baseURL)

	ctrl.Log.Info("ProviderController.SearchProviders succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(matched)),
	)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.SearchProvidersSuccessMessage, pagination, response)
}

func (ctrl *ProviderController) GetProvider(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	workspaceID, err := workspaceID(r)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	npi := chi.URLParam(r, constvars.URLParamNPI)
	provider, err := ctrl.ProviderUsecase.GetDetail(ctx, workspaceID, npi)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProviderSuccessMessage, utils.BuildProviderDetail(provider))
}

func (ctrl *ProviderController) FindEmail(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	npi := chi.URLParam(r, constvars.URLParamNPI)
	ctrl.Log.Info("ProviderController.FindEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNPIKey, npi),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	workspaceID, err := workspaceID(r)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.ProviderUsecase.FindEmail(ctx, workspaceID, npi)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := result.Message
	if message == "" {
		message = constvars.ResponseSuccess
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}

func (ctrl *ProviderController) FindEmails(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ProviderController.FindEmails called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	workspaceID, err := workspaceID(r)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	var request requests.BulkFindEmail
	err = decodeOptionalJSON(r, &request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeBulkFindEmailRequest(&request)

	err = utils.ValidateStruct(request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	summary, err := ctrl.ProviderUsecase.FindEmails(ctx, workspaceID, request.NPIs)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, summary)
}
