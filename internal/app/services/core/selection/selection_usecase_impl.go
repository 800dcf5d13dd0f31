package selection

import (
	"context"
	"provider-leads-service/internal/app/contracts"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/dto/requests"
	"provider-leads-service/internal/pkg/exceptions"
	"provider-leads-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type selectionUsecase struct {
	WorkspaceService contracts.WorkspaceService
	Log              *zap.Logger
}

func NewSelectionUsecase(workspaceService contracts.WorkspaceService, logger *zap.Logger) contracts.SelectionUsecase {
	return &selectionUsecase{
		WorkspaceService: workspaceService,
		Log:              logger,
	}
}

func (uc *selectionUsecase) UpdateSelection(ctx context.Context, workspaceID string, request *requests.UpdateSelection) (*models.Workspace, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("selectionUsecase.UpdateSelection called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWorkspaceIDKey, workspaceID),
		zap.String("action", request.Action),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	workspace, err := uc.WorkspaceService.Update(ctx, workspaceID, func(workspace *models.Workspace) error {
		switch request.Action {
		case constvars.SelectionActionToggle:
			if _, ok := workspace.FindProvider(request.NPI); !ok {
				return exceptions.ErrProviderNotInWorkspace(request.NPI)
			}
			workspace.SetSelected(request.NPI, request.Selected)
		case constvars.SelectionActionSelectAll:
			workspace.SelectAll(scopedRows(workspace, request))
		case constvars.SelectionActionClearAll:
			workspace.DeselectAll(scopedRows(workspace, request))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("selectionUsecase.UpdateSelection succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(workspace.Selection)),
	)
	return workspace, nil
}

func (uc *selectionUsecase) ClearSelection(ctx context.Context, workspaceID string) (*models.Workspace, error) {
	uc.Log.Info("selectionUsecase.ClearSelection called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingWorkspaceIDKey, workspaceID),
	)

	return uc.WorkspaceService.Update(ctx, workspaceID, func(workspace *models.Workspace) error {
		workspace.ClearSelection()
		return nil
	})
}

// scopedRows returns the rows of the active table matching the request's
// search term, narrowed to one page when a page is given.
func scopedRows(workspace *models.Workspace, request *requests.UpdateSelection) []models.Provider {
	rows := utils.FilterProviders(workspace.ActiveProviders(), request.Search)
	if request.Page > 0 && request.PageSize > 0 {
		rows = utils.Paginate(rows, request.Page, request.PageSize)
	}
	return rows
}
