package leadsapi

import (
	"context"
	"fmt"
	"net/url"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/exceptions"
	"provider-leads-service/internal/pkg/utils"

	"go.uber.org/zap"
)

func (c *leadsAPIClient) SearchProviders(ctx context.Context, filter models.ProviderFilter) ([]models.Provider, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("leadsAPIClient.SearchProviders called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingFilterKey, filter),
	)

	body, err := c.call(ctx, "leadsAPIClient.SearchProviders", constvars.MethodGet, constvars.LeadsAPIPathProviders, utils.BuildProviderQuery(filter), nil)
	if err != nil {
		return nil, err
	}

	providers, err := normalizeProviders(body)
	if err != nil {
		c.Log.Error("leadsAPIClient.SearchProviders error decoding providers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "providers")
	}

	c.Log.Info("leadsAPIClient.SearchProviders succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(providers)),
	)
	return providers, nil
}

func (c *leadsAPIClient) FindEmail(ctx context.Context, npi string, request models.EmailLookupRequest) (*models.EmailLookupResult, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("leadsAPIClient.FindEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNPIKey, npi),
	)

	path := fmt.Sprintf(constvars.LeadsAPIPathProviderFindEmail, url.PathEscape(npi))
	body, err := c.call(ctx, "leadsAPIClient.FindEmail", constvars.MethodPost, path, "", request)
	if err != nil {
		return nil, err
	}

	result, err := normalizeEmailResult(npi, body)
	if err != nil {
		c.Log.Error("leadsAPIClient.FindEmail error decoding result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "find-email")
	}

	c.Log.Info("leadsAPIClient.FindEmail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNPIKey, npi),
		zap.Bool("found", result.Found),
	)
	return result, nil
}
