package controllers

import (
	"net/http"
	"provider-leads-service/internal/app/config"
	"provider-leads-service/internal/app/contracts"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/dto/requests"
	"provider-leads-service/internal/pkg/dto/responses"
	"provider-leads-service/internal/pkg/exceptions"
	"provider-leads-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SelectionController struct {
	Log              *zap.Logger
	SelectionUsecase contracts.SelectionUsecase
	InternalConfig   *config.InternalConfig
}

func NewSelectionController(logger *zap.Logger, selectionUsecase contracts.SelectionUsecase, internalConfig *config.InternalConfig) *SelectionController {
	return &SelectionController{
		Log:              logger,
		SelectionUsecase: selectionUsecase,
		InternalConfig:   internalConfig,
	}
}

func (ctrl *SelectionController) UpdateSelection(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	workspaceID, err := workspaceID(r)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	var request requests.UpdateSelection
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeUpdateSelectionRequest(&request)

	workspace, err := ctrl.SelectionUsecase.UpdateSelection(ctx, workspaceID, &request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SelectionUpdatedSuccessMessage, buildSelectionResponse(workspace))
}

func (ctrl *SelectionController) ClearSelection(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	workspaceID, err := workspaceID(r)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	workspace, err := ctrl.SelectionUsecase.ClearSelection(ctx, workspaceID)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SelectionUpdatedSuccessMessage, buildSelectionResponse(workspace))
}

func buildSelectionResponse(workspace *models.Workspace) responses.Selection {
	npis := workspace.SelectedNPIs()
	return responses.Selection{NPIs: npis, Count: len(npis)}
}
