package exports

import (
	"context"
	"provider-leads-service/internal/app/config"
	"provider-leads-service/internal/app/contracts"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/app/services/shared/events"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/exceptions"
	"provider-leads-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type exportUsecase struct {
	LeadsAPI         contracts.LeadsAPIClient
	WorkspaceService contracts.WorkspaceService
	// Storage is nil when archiving is disabled.
	Storage        contracts.Storage
	Events         *events.Recorder
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewExportUsecase(
	leadsAPI contracts.LeadsAPIClient,
	workspaceService contracts.WorkspaceService,
	storage contracts.Storage,
	recorder *events.Recorder,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ExportUsecase {
	return &exportUsecase{
		LeadsAPI:         leadsAPI,
		WorkspaceService: workspaceService,
		Storage:          storage,
		Events:           recorder,
		InternalConfig:   internalConfig,
		Log:              logger,
	}
}

func (uc *exportUsecase) ExportSelection(ctx context.Context, workspaceID string) (*models.CSVExport, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("exportUsecase.ExportSelection called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWorkspaceIDKey, workspaceID),
	)

	workspace, err := uc.WorkspaceService.Load(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	selected := workspace.SelectedProviders()
	if len(selected) == 0 {
		uc.notify(ctx, workspaceID, constvars.SeverityWarning, constvars.ErrClientNothingToExport)
		return nil, exceptions.ErrNothingToExport(constvars.ErrClientNothingToExport)
	}

	export, err := utils.BuildProvidersCSV(constvars.ExportSelectionFilename, selected)
	if err != nil {
		return nil, err
	}

	uc.Events.Record(ctx, constvars.EventExportCreated, map[string]interface{}{
		"source": "selection",
		"count":  export.RowCount,
	})

	uc.Log.Info("exportUsecase.ExportSelection succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, export.RowCount),
	)
	return export, nil
}

// ExportList exports every provider of a list. The providers of the list
// being browsed are reused; any other list is fetched.
func (uc *exportUsecase) ExportList(ctx context.Context, workspaceID, listID string) (*models.CSVExport, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("exportUsecase.ExportList called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingListIDKey, listID),
	)

	if listID == "" {
		return nil, exceptions.ErrMissingListID()
	}

	workspace, err := uc.WorkspaceService.Load(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	var (
		listName  string
		providers []models.Provider
	)
	if known, ok := workspace.FindList(listID); ok {
		listName = known.Name
	}

	if workspace.CurrentList != nil && workspace.CurrentList.ID == listID {
		listName = workspace.CurrentList.Name
		providers = workspace.ListProviders
	} else {
		providers, err = uc.LeadsAPI.GetListProviders(ctx, listID)
		if err != nil {
			uc.Log.Error("exportUsecase.ExportList error fetching list providers",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingListIDKey, listID),
				zap.Error(err),
			)
			uc.notify(ctx, workspaceID, constvars.SeverityError, constvars.ErrClientFailedToLoadListProviders)
			return nil, err
		}
	}

	if len(providers) == 0 {
		uc.notify(ctx, workspaceID, constvars.SeverityWarning, constvars.ErrClientListEmpty)
		return nil, exceptions.ErrNothingToExport(constvars.ErrClientListEmpty)
	}

	export, err := utils.BuildProvidersCSV(utils.ListExportFilename(listName), providers)
	if err != nil {
		return nil, err
	}

	uc.Events.Record(ctx, constvars.EventExportCreated, map[string]interface{}{
		"source":  "list",
		"list_id": listID,
		"count":   export.RowCount,
	})

	uc.Log.Info("exportUsecase.ExportList succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingListIDKey, listID),
		zap.Int(constvars.LoggingCountKey, export.RowCount),
	)
	return export, nil
}

// ArchiveSelection stores the selection export in object storage and returns
// a presigned download URL for it.
func (uc *exportUsecase) ArchiveSelection(ctx context.Context, workspaceID string) (*models.ExportArchive, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("exportUsecase.ArchiveSelection called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWorkspaceIDKey, workspaceID),
	)

	if !uc.InternalConfig.Export.ArchiveEnabled || uc.Storage == nil {
		return nil, exceptions.ErrExportArchiveDisabled()
	}

	export, err := uc.ExportSelection(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	bucketName := uc.InternalConfig.Export.BucketName
	objectName := utils.GenerateExportObjectName(workspaceID, export.Filename)

	_, err = uc.Storage.UploadObject(ctx, bucketName, objectName, export.Content, constvars.MIMETextCSVCharsetUTF8)
	if err != nil {
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Export.PreSignedUrlExpiryTimeInHours) * time.Hour
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucketName, objectName, export.Filename, expiry)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("exportUsecase.ArchiveSelection succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketNameKey, bucketName),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return &models.ExportArchive{
		Filename:   export.Filename,
		ObjectName: objectName,
		URL:        url,
		RowCount:   export.RowCount,
		ExpiresAt:  time.Now().UTC().Add(expiry),
	}, nil
}

func (uc *exportUsecase) notify(ctx context.Context, workspaceID, severity, message string) {
	_, err := uc.WorkspaceService.Update(utils.DetachContext(ctx), workspaceID, func(workspace *models.Workspace) error {
		workspace.Notify(severity, message)
		return nil
	})
	if err != nil {
		utils.LogError(uc.Log, err)
	}
}
