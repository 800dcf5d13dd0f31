package leadsapi

import (
	"context"
	"fmt"
	"net/url"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/exceptions"
	"provider-leads-service/internal/pkg/utils"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type createListPayload struct {
	ListName string `json:"listName"`
}

type addProvidersPayload struct {
	ProviderNPIs []string `json:"providerNpis"`
}

func (c *leadsAPIClient) FetchLists(ctx context.Context) ([]models.List, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("leadsAPIClient.FetchLists called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.call(ctx, "leadsAPIClient.FetchLists", constvars.MethodGet, constvars.LeadsAPIPathLists, "", nil)
	if err != nil {
		return nil, err
	}

	lists, err := normalizeLists(body)
	if err != nil {
		c.Log.Error("leadsAPIClient.FetchLists error decoding lists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "lists")
	}

	c.Log.Info("leadsAPIClient.FetchLists succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(lists)),
	)
	return lists, nil
}

func (c *leadsAPIClient) CreateList(ctx context.Context, listName string) (*models.List, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("leadsAPIClient.CreateList called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingListNameKey, listName),
	)

	body, err := c.call(ctx, "leadsAPIClient.CreateList", constvars.MethodPost, constvars.LeadsAPIPathLists, "", createListPayload{ListName: listName})
	if err != nil {
		return nil, err
	}

	list, err := normalizeCreatedList(body, listName)
	if err != nil {
		c.Log.Error("leadsAPIClient.CreateList error decoding list",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "list")
	}

	c.Log.Info("leadsAPIClient.CreateList succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingListIDKey, list.ID),
	)
	return list, nil
}

// AddProvidersToList returns the service's confirmation message, if any.
func (c *leadsAPIClient) AddProvidersToList(ctx context.Context, listID string, providerNPIs []string) (string, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("leadsAPIClient.AddProvidersToList called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingListIDKey, listID),
		zap.Int(constvars.LoggingCountKey, len(providerNPIs)),
	)

	path := fmt.Sprintf(constvars.LeadsAPIPathListProviders, url.PathEscape(listID))
	body, err := c.call(ctx, "leadsAPIClient.AddProvidersToList", constvars.MethodPost, path, "", addProvidersPayload{ProviderNPIs: providerNPIs})
	if err != nil {
		return "", err
	}

	message := ""
	if gjson.ValidBytes(body) {
		message = gjson.GetBytes(body, "message").String()
	}

	c.Log.Info("leadsAPIClient.AddProvidersToList succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingListIDKey, listID),
	)
	return message, nil
}

func (c *leadsAPIClient) GetListProviders(ctx context.Context, listID string) ([]models.Provider, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("leadsAPIClient.GetListProviders called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingListIDKey, listID),
	)

	path := fmt.Sprintf(constvars.LeadsAPIPathListProviders, url.PathEscape(listID))
	body, err := c.call(ctx, "leadsAPIClient.GetListProviders", constvars.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}

	providers, err := normalizeProviders(body)
	if err != nil {
		c.Log.Error("leadsAPIClient.GetListProviders error decoding providers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "list providers")
	}

	c.Log.Info("leadsAPIClient.GetListProviders succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(providers)),
	)
	return providers, nil
}
