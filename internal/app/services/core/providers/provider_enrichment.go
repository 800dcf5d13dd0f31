package providers

import (
	"context"
	"fmt"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/exceptions"
	"provider-leads-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// FindEmails looks up emails for many rows at once, bounded by the configured
// concurrency and request rate. Rows that already have an email, lack a name
// or have a lookup in flight are skipped. Without npis the selection is used.
func (uc *providerUsecase) FindEmails(ctx context.Context, workspaceID string, npis []string) (*models.BulkEmailLookupSummary, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("providerUsecase.FindEmails called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(npis)),
	)

	summary := &models.BulkEmailLookupSummary{}
	var targets []models.Provider

	_, err := uc.WorkspaceService.Update(ctx, workspaceID, func(workspace *models.Workspace) error {
		candidates := npis
		if len(candidates) == 0 {
			candidates = workspace.SelectedNPIs()
		}
		if len(candidates) == 0 {
			workspace.Notify(constvars.SeverityWarning, constvars.ErrClientNoProvidersSelected)
			return exceptions.ErrEmptySelection()
		}

		seen := make(map[string]bool, len(candidates))
		for _, npi := range candidates {
			if seen[npi] {
				continue
			}
			seen[npi] = true

			provider, ok := workspace.FindProvider(npi)
			if !ok || provider.Basic.Email != "" || !provider.CanLookupEmail() || workspace.IsEmailLookupInFlight(npi) {
				summary.Skipped++
				continue
			}
			workspace.SetEmailLookup(npi, true)
			targets = append(targets, *provider)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	results := make([]models.EmailLookupResult, len(targets))
	var mu sync.Mutex

	limiter := rate.NewLimiter(rate.Limit(uc.InternalConfig.Enrichment.RatePerSecond), 1)
	if uc.InternalConfig.Enrichment.RatePerSecond <= 0 {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	concurrency := uc.InternalConfig.Enrichment.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	group.SetLimit(concurrency)

	for i := range targets {
		i := i
		target := targets[i]
		npi := target.NPI.String()

		group.Go(func() error {
			err := limiter.Wait(groupCtx)
			if err != nil {
				mu.Lock()
				results[i] = models.EmailLookupResult{NPI: npi, Message: err.Error()}
				summary.Failed++
				mu.Unlock()
				return nil
			}

			result, lookupErr := uc.LeadsAPI.FindEmail(groupCtx, npi, uc.buildEmailLookupRequest(&target))

			_, updateErr := uc.WorkspaceService.Update(utils.DetachContext(ctx), workspaceID, func(workspace *models.Workspace) error {
				workspace.SetEmailLookup(npi, false)
				uc.applyEmailResult(workspace, &target, result, lookupErr, false)
				return nil
			})
			if updateErr != nil {
				uc.Log.Error("providerUsecase.FindEmails error storing lookup result",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingNPIKey, npi),
					zap.Error(updateErr),
				)
			}

			mu.Lock()
			defer mu.Unlock()
			switch {
			case lookupErr != nil:
				results[i] = models.EmailLookupResult{NPI: npi, Message: exceptions.ClientMessage(lookupErr, constvars.ErrClientRemoteCallFailed)}
				summary.Failed++
			case result.Found:
				results[i] = *result
				summary.Found++
			default:
				results[i] = *result
				summary.NotFound++
			}
			return nil
		})
	}
	group.Wait()

	summary.Results = results

	_, err = uc.WorkspaceService.Update(utils.DetachContext(ctx), workspaceID, func(workspace *models.Workspace) error {
		for _, target := range targets {
			workspace.SetEmailLookup(target.NPI.String(), false)
		}
		severity := constvars.SeveritySuccess
		if summary.Found == 0 {
			severity = constvars.SeverityInfo
		}
		workspace.Notify(severity, fmt.Sprintf(constvars.BulkFindEmailSummaryFormat, summary.Found, summary.NotFound, summary.Failed, summary.Skipped))
		return nil
	})
	if err != nil {
		return nil, err
	}

	if summary.Found > 0 {
		uc.Events.Record(ctx, constvars.EventEmailFound, map[string]interface{}{
			"count": summary.Found,
			"bulk":  true,
		})
	}

	uc.Log.Info("providerUsecase.FindEmails succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("found", summary.Found),
		zap.Int("not_found", summary.NotFound),
		zap.Int("failed", summary.Failed),
		zap.Int("skipped", summary.Skipped),
	)
	return summary, nil
}
