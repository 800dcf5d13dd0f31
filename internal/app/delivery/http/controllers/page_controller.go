package controllers

import (
	"context"
	"errors"
	"net/http"
	"provider-leads-service/internal/app/config"
	"provider-leads-service/internal/app/contracts"
	"provider-leads-service/internal/app/delivery/http/views"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/exceptions"
	"provider-leads-service/internal/pkg/utils"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PageController serves the HTML pages. Every form post redirects back to a
// page, and pending notifications are shown on the next page rendered.
type PageController struct {
	Log              *zap.Logger
	Renderer         *views.Renderer
	WorkspaceService contracts.WorkspaceService
	ProviderUsecase  contracts.ProviderUsecase
	SelectionUsecase contracts.SelectionUsecase
	ListUsecase      contracts.ListUsecase
	ExportUsecase    contracts.ExportUsecase
	InternalConfig   *config.InternalConfig
}

func NewPageController(
	logger *zap.Logger,
	renderer *views.Renderer,
	workspaceService contracts.WorkspaceService,
	providerUsecase contracts.ProviderUsecase,
	selectionUsecase contracts.SelectionUsecase,
	listUsecase contracts.ListUsecase,
	exportUsecase contracts.ExportUsecase,
	internalConfig *config.InternalConfig,
) *PageController {
	return &PageController{
		Log:              logger,
		Renderer:         renderer,
		WorkspaceService: workspaceService,
		ProviderUsecase:  providerUsecase,
		SelectionUsecase: selectionUsecase,
		ListUsecase:      listUsecase,
		ExportUsecase:    exportUsecase,
		InternalConfig:   internalConfig,
	}
}

func (ctrl *PageController) Home(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	workspaceID, err := workspaceID(r)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.ensureListsLoaded(ctx, workspaceID)

	workspace, notifications, err := ctrl.enterView(ctx, workspaceID, models.WorkspaceViewSearch)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.render(w, constvars.StatusOK, views.PageSearch, &views.PageData{
		Title:         "Search",
		ActiveView:    models.WorkspaceViewSearch,
		ReturnTo:      r.URL.RequestURI(),
		Notifications: notifications,
		Filter:        workspace.Filter,
		Badges:        utils.FilterBadges(workspace.Filter),
		Options:       views.DefaultFilterOptions,
		HasSearched:   workspace.HasSearched,
		Table:         buildTable(r, workspace, workspace.Results, ctrl.InternalConfig.App.PageSize, "/"),
		Lists:         workspace.Lists,
		ListsLoaded:   workspace.ListsLoaded,
	})
}

func (ctrl *PageController) Search(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	workspaceID, err := workspaceID(r)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	_, err = ctrl.ProviderUsecase.Search(ctx, workspaceID, utils.BuildProviderFilterRequest(r))
	if err != nil {
		utils.LogError(ctrl.Log, err)
	}

	redirect(w, r, "/")
}

func (ctrl *PageController) UpdateSelection(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	workspaceID, err := workspaceID(r)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	_, err = ctrl.SelectionUsecase.UpdateSelection(ctx, workspaceID, utils.BuildUpdateSelectionRequest(r))
	if err != nil {
		ctrl.notifyError(ctx, workspaceID, err)
	}

	redirect(w, r, returnTo(r, "/"))
}

func (ctrl *PageController) FindEmail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	workspaceID, err := workspaceID(r)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	_, err = ctrl.ProviderUsecase.FindEmail(ctx, workspaceID, chi.URLParam(r, constvars.URLParamNPI))
	if err != nil {
		utils.LogError(ctrl.Log, err)
	}

	redirect(w, r, returnTo(r, "/"))
}

func (ctrl *PageController) FindEmails(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	workspaceID, err := workspaceID(r)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	_, err = ctrl.ProviderUsecase.FindEmails(ctx, workspaceID, nil)
	if err != nil {
		utils.LogError(ctrl.Log, err)
	}

	redirect(w, r, returnTo(r, "/"))
}

// ProviderDetail renders one provider from the workspace. A provider the
// workspace does not hold renders a not found page.
func (ctrl *PageController) ProviderDetail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	workspaceID, err := workspaceID(r)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	workspace, notifications, err := ctrl.WorkspaceService.Snapshot(ctx, workspaceID)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	data := &views.PageData{
		Title:         "Provider",
		ActiveView:    workspace.ActiveView,
		ReturnTo:      backPath(workspace),
		Notifications: notifications,
	}

	provider, err := ctrl.ProviderUsecase.GetDetail(ctx, workspaceID, chi.URLParam(r, constvars.URLParamNPI))
	if err != nil {
		statusCode := constvars.StatusInternalServerError
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			statusCode = customErr.StatusCode
		}
		data.NotFoundMessage = exceptions.ClientMessage(err, constvars.ErrClientProviderNotFound)
		ctrl.render(w, statusCode, views.PageDetail, data)
		return
	}

	data.Detail = utils.BuildProviderDetail(provider)
	data.Title = data.Detail.Name
	ctrl.render(w, constvars.StatusOK, views.PageDetail, data)
}

func (ctrl *PageController) Lists(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	workspaceID, err := workspaceID(r)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	_, err = ctrl.ListUsecase.LoadLists(ctx, workspaceID)
	if err != nil {
		utils.LogError(ctrl.Log, err)
	}

	workspace, notifications, err := ctrl.enterView(ctx, workspaceID, models.WorkspaceViewLists)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.render(w, constvars.StatusOK, views.PageLists, &views.PageData{
		Title:         "Lists",
		ActiveView:    models.WorkspaceViewLists,
		ReturnTo:      r.URL.RequestURI(),
		Notifications: notifications,
		Lists:         workspace.Lists,
		ListsLoaded:   workspace.ListsLoaded,
	})
}

// SaveToList handles the save dialog: mode=create makes an empty list, a
// list_id adds the selection to that list, otherwise list_name names a new
// list for the selection.
func (ctrl *PageController) SaveToList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	workspaceID, err := workspaceID(r)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	listName := r.FormValue(constvars.FormFieldListName)
	listID := r.FormValue(constvars.FormFieldListID)

	switch {
	case r.FormValue(constvars.FormFieldMode) == constvars.FormModeCreate:
		_, err = ctrl.ListUsecase.CreateList(ctx, workspaceID, listName)
	case listID != "":
		_, err = ctrl.ListUsecase.SaveSelectionToExistingList(ctx, workspaceID, listID, nil)
	default:
		_, err = ctrl.ListUsecase.SaveSelectionToNewList(ctx, workspaceID, listName, nil)
	}
	if err != nil {
		utils.LogError(ctrl.Log, err)
	}

	redirect(w, r, returnTo(r, "/lists"))
}

func (ctrl *PageController) ListDetail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	workspaceID, err := workspaceID(r)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	listID := chi.URLParam(r, constvars.URLParamListID)
	refresh, _ := strconv.ParseBool(r.URL.Query().Get("refresh"))

	workspace, err := ctrl.WorkspaceService.Load(ctx, workspaceID)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	if refresh || workspace.CurrentList == nil || workspace.CurrentList.ID != listID {
		_, err = ctrl.ListUsecase.ViewList(ctx, workspaceID, listID)
		if err != nil {
			utils.LogError(ctrl.Log, err)
			redirect(w, r, "/lists")
			return
		}
	}

	ctrl.ensureListsLoaded(ctx, workspaceID)

	workspace, notifications, err := ctrl.enterView(ctx, workspaceID, models.WorkspaceViewList)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	basePath := "/lists/" + listID
	ctrl.render(w, constvars.StatusOK, views.PageList, &views.PageData{
		Title:         workspace.CurrentList.Name,
		ActiveView:    models.WorkspaceViewList,
		ReturnTo:      r.URL.RequestURI(),
		Notifications: notifications,
		Table:         buildTable(r, workspace, workspace.ListProviders, ctrl.InternalConfig.App.ListPageSize, basePath),
		Lists:         workspace.Lists,
		ListsLoaded:   workspace.ListsLoaded,
		CurrentList:   workspace.CurrentList,
	})
}

func (ctrl *PageController) AddToList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	workspaceID, err := workspaceID(r)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	_, err = ctrl.ListUsecase.SaveSelectionToExistingList(ctx, workspaceID, chi.URLParam(r, constvars.URLParamListID), nil)
	if err != nil {
		utils.LogError(ctrl.Log, err)
	}

	redirect(w, r, returnTo(r, "/lists"))
}

func (ctrl *PageController) ExportSelection(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	workspaceID, err := workspaceID(r)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	export, err := ctrl.ExportUsecase.ExportSelection(ctx, workspaceID)
	if err != nil {
		utils.LogError(ctrl.Log, err)
		redirect(w, r, returnTo(r, "/"))
		return
	}

	utils.BuildCSVResponse(w, export)
}

func (ctrl *PageController) ExportList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	workspaceID, err := workspaceID(r)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	export, err := ctrl.ExportUsecase.ExportList(ctx, workspaceID, chi.URLParam(r, constvars.URLParamListID))
	if err != nil {
		utils.LogError(ctrl.Log, err)
		redirect(w, r, returnTo(r, "/lists"))
		return
	}

	utils.BuildCSVResponse(w, export)
}

// enterView makes view the active table and drains pending notifications.
func (ctrl *PageController) enterView(ctx context.Context, workspaceID, view string) (*models.Workspace, []models.Notification, error) {
	var notifications []models.Notification
	workspace, err := ctrl.WorkspaceService.Update(ctx, workspaceID, func(workspace *models.Workspace) error {
		workspace.SwitchView(view)
		notifications = workspace.DrainNotifications()
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return workspace, notifications, nil
}

// ensureListsLoaded fetches the list index once so the save dialog can offer
// existing lists.
func (ctrl *PageController) ensureListsLoaded(ctx context.Context, workspaceID string) {
	workspace, err := ctrl.WorkspaceService.Load(ctx, workspaceID)
	if err != nil || workspace.ListsLoaded || !workspace.HasSearched && workspace.CurrentList == nil {
		return
	}
	_, err = ctrl.ListUsecase.LoadLists(ctx, workspaceID)
	if err != nil {
		utils.LogError(ctrl.Log, err)
	}
}

func (ctrl *PageController) notifyError(ctx context.Context, workspaceID string, err error) {
	utils.LogError(ctrl.Log, err)
	_, updateErr := ctrl.WorkspaceService.Update(utils.DetachContext(ctx), workspaceID, func(workspace *models.Workspace) error {
		workspace.Notify(constvars.SeverityError, exceptions.ClientMessage(err, constvars.ErrClientCannotProcessRequest))
		return nil
	})
	if updateErr != nil {
		utils.LogError(ctrl.Log, updateErr)
	}
}

func (ctrl *PageController) render(w http.ResponseWriter, statusCode int, page string, data *views.PageData) {
	err := ctrl.Renderer.Render(w, statusCode, page, data)
	if err != nil {
		utils.LogError(ctrl.Log, err)
		http.Error(w, constvars.ErrClientSomethingWrongWithApplication, constvars.StatusInternalServerError)
	}
}

func buildTable(r *http.Request, workspace *models.Workspace, providers []models.Provider, defaultPageSize int, basePath string) *views.Table {
	paginationRequest := utils.BuildPaginationRequest(r, defaultPageSize)
	matched := utils.FilterProviders(providers, paginationRequest.Search)
	page := utils.Paginate(matched, paginationRequest.Page, paginationRequest.PageSize)

	return &views.Table{
		Rows:          utils.BuildProviderRows(page, workspace),
		Pagination:    utils.BuildPaginationResponse(len(matched), paginationRequest.Page, paginationRequest.PageSize, basePath),
		Search:        paginationRequest.Search,
		SelectedCount: len(workspace.SelectedNPIs()),
		BasePath:      basePath,
	}
}

func backPath(workspace *models.Workspace) string {
	if workspace.ActiveView == models.WorkspaceViewList && workspace.CurrentList != nil {
		return "/lists/" + workspace.CurrentList.ID
	}
	return "/"
}

func returnTo(r *http.Request, fallback string) string {
	return utils.SafeReturnPath(r.FormValue(constvars.FormFieldReturnTo), fallback)
}

func redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, constvars.StatusSeeOther)
}
