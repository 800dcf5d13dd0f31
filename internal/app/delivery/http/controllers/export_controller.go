package controllers

import (
	"net/http"
	"provider-leads-service/internal/app/config"
	"provider-leads-service/internal/app/contracts"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ExportController struct {
	Log            *zap.Logger
	ExportUsecase  contracts.ExportUsecase
	InternalConfig *config.InternalConfig
}

func NewExportController(logger *zap.Logger, exportUsecase contracts.ExportUsecase, internalConfig *config.InternalConfig) *ExportController {
	return &ExportController{
		Log:            logger,
		ExportUsecase:  exportUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *ExportController) ExportSelection(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	workspaceID, err := workspaceID(r)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	export, err := ctrl.ExportUsecase.ExportSelection(ctx, workspaceID)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildCSVResponse(w, export)
}

func (ctrl *ExportController) ExportList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	workspaceID, err := workspaceID(r)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	export, err := ctrl.ExportUsecase.ExportList(ctx, workspaceID, chi.URLParam(r, constvars.URLParamListID))
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildCSVResponse(w, export)
}

func (ctrl *ExportController) ArchiveSelection(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ExportController.ArchiveSelection called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	workspaceID, err := workspaceID(r)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	archive, err := ctrl.ExportUsecase.ArchiveSelection(ctx, workspaceID)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ExportController.ArchiveSelection succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, archive.ObjectName),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ExportArchivedSuccessMessage, archive)
}
