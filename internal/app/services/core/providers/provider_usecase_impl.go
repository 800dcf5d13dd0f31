package providers

import (
	"context"
	"fmt"
	"provider-leads-service/internal/app/config"
	"provider-leads-service/internal/app/contracts"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/app/services/shared/events"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/exceptions"
	"provider-leads-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

type providerUsecase struct {
	LeadsAPI         contracts.LeadsAPIClient
	WorkspaceService contracts.WorkspaceService
	Events           *events.Recorder
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

func NewProviderUsecase(
	leadsAPI contracts.LeadsAPIClient,
	workspaceService contracts.WorkspaceService,
	recorder *events.Recorder,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ProviderUsecase {
	return &providerUsecase{
		LeadsAPI:         leadsAPI,
		WorkspaceService: workspaceService,
		Events:           recorder,
		InternalConfig:   internalConfig,
		Log:              logger,
	}
}

// Search replaces the results with a fresh fetch. The selection and paging
// reset; a failed fetch keeps the previous results.
func (uc *providerUsecase) Search(ctx context.Context, workspaceID string, filter models.ProviderFilter) (*models.Workspace, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("providerUsecase.Search called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWorkspaceIDKey, workspaceID),
		zap.Any(constvars.LoggingFilterKey, filter),
	)

	utils.SanitizeProviderFilter(&filter)

	providers, err := uc.LeadsAPI.SearchProviders(ctx, filter)
	if err != nil {
		uc.Log.Error("providerUsecase.Search error fetching providers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.notify(ctx, workspaceID, constvars.SeverityError, exceptions.ClientMessage(err, constvars.ErrClientFailedToFetchProviders))
		return nil, err
	}

	workspace, err := uc.WorkspaceService.Update(ctx, workspaceID, func(workspace *models.Workspace) error {
		workspace.Filter = filter
		workspace.HasSearched = true
		workspace.Results = providers
		workspace.ActiveView = models.WorkspaceViewSearch
		workspace.ClearSelection()
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.Events.Record(ctx, constvars.EventProvidersSearched, map[string]interface{}{
		"filter": utils.BuildProviderQuery(filter),
		"count":  len(providers),
	})

	uc.Log.Info("providerUsecase.Search succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(providers)),
	)
	return workspace, nil
}

func (uc *providerUsecase) GetDetail(ctx context.Context, workspaceID, npi string) (*models.Provider, error) {
	workspace, err := uc.WorkspaceService.Load(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	provider, ok := workspace.FindProvider(npi)
	if !ok {
		return nil, exceptions.ErrProviderNotInWorkspace(npi)
	}
	return provider, nil
}

// FindEmail looks up one row's email. The row is flagged while the lookup
// runs and only that row changes when it completes.
func (uc *providerUsecase) FindEmail(ctx context.Context, workspaceID, npi string) (*models.EmailLookupResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("providerUsecase.FindEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNPIKey, npi),
	)

	var target models.Provider
	_, err := uc.WorkspaceService.Update(ctx, workspaceID, func(workspace *models.Workspace) error {
		provider, ok := workspace.FindProvider(npi)
		if !ok {
			workspace.Notify(constvars.SeverityError, constvars.ErrClientProviderNotFound)
			return exceptions.ErrProviderNotInWorkspace(npi)
		}
		if !provider.CanLookupEmail() {
			workspace.Notify(constvars.SeverityWarning, constvars.ErrClientMissingEmailLookupInfo)
			return exceptions.ErrMissingEmailLookupInfo(npi)
		}
		if workspace.IsEmailLookupInFlight(npi) {
			return exceptions.ErrEmailLookupInFlight(npi)
		}
		workspace.SetEmailLookup(npi, true)
		target = *provider
		return nil
	})
	if err != nil {
		return nil, err
	}

	result, lookupErr := uc.LeadsAPI.FindEmail(ctx, npi, uc.buildEmailLookupRequest(&target))

	_, err = uc.WorkspaceService.Update(utils.DetachContext(ctx), workspaceID, func(workspace *models.Workspace) error {
		workspace.SetEmailLookup(npi, false)
		uc.applyEmailResult(workspace, &target, result, lookupErr, true)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if lookupErr != nil {
		return nil, lookupErr
	}

	uc.Log.Info("providerUsecase.FindEmail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNPIKey, npi),
		zap.Bool("found", result.Found),
	)
	return result, nil
}

func (uc *providerUsecase) buildEmailLookupRequest(provider *models.Provider) models.EmailLookupRequest {
	organizationName := strings.TrimSpace(provider.Basic.OrganizationName)
	if organizationName == "" {
		organizationName = uc.InternalConfig.Enrichment.DefaultOrganizationName
	}
	return models.EmailLookupRequest{
		FirstName:        strings.TrimSpace(provider.Basic.FirstName),
		LastName:         strings.TrimSpace(provider.Basic.LastName),
		OrganizationName: organizationName,
	}
}

// applyEmailResult merges a finished lookup into the workspace. notify is
// false for bulk lookups, which report one summary instead.
func (uc *providerUsecase) applyEmailResult(workspace *models.Workspace, provider *models.Provider, result *models.EmailLookupResult, lookupErr error, notify bool) {
	firstName := provider.Basic.FirstName
	lastName := provider.Basic.LastName
	npi := provider.NPI.String()

	switch {
	case lookupErr != nil:
		if notify {
			message := exceptions.ClientMessage(lookupErr, constvars.ErrClientRemoteCallFailed)
			workspace.Notify(constvars.SeverityError, fmt.Sprintf(constvars.FindEmailFailedMessageFormat, firstName, lastName, message))
		}
	case result.Found:
		workspace.ApplyEmail(npi, result.Email)
		if notify {
			workspace.Notify(constvars.SeveritySuccess, fmt.Sprintf(constvars.FindEmailSuccessMessageFormat, firstName, lastName))
		}
	default:
		if notify {
			message := result.Message
			if message == "" {
				message = fmt.Sprintf(constvars.FindEmailNotFoundMessageFormat, firstName, lastName)
			}
			workspace.Notify(constvars.SeverityInfo, message)
		}
	}
}

func (uc *providerUsecase) notify(ctx context.Context, workspaceID, severity, message string) {
	_, err := uc.WorkspaceService.Update(utils.DetachContext(ctx), workspaceID, func(workspace *models.Workspace) error {
		workspace.Notify(severity, message)
		return nil
	})
	if err != nil {
		uc.Log.Warn("providerUsecase.notify error storing notification",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
}
