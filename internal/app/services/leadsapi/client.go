package leadsapi

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"provider-leads-service/internal/app/contracts"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/exceptions"
	"provider-leads-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type leadsAPIClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewLeadsAPIClient(baseUrl string, timeout time.Duration, logger *zap.Logger) contracts.LeadsAPIClient {
	return &leadsAPIClient{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		Log:        logger,
	}
}

// call sends one request and returns the raw body of a 2xx response. Any other
// status becomes exceptions.ErrRemoteCall carrying the body's "error" field.
func (c *leadsAPIClient) call(ctx context.Context, operation, method, path, rawQuery string, payload interface{}) ([]byte, error) {
	requestID := utils.GetRequestID(ctx)

	url := c.BaseUrl + path
	if rawQuery != "" {
		url += "?" + rawQuery
	}

	c.Log.Debug(operation+" sending request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingURLKey, url),
	)

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			c.Log.Error(operation+" error marshaling request body",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		c.Log.Error(operation+" error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if payload != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error(operation+" error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, url),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error(operation+" error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrReadHTTPResponse(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		remoteMessage := ""
		if gjson.ValidBytes(bodyBytes) {
			remoteMessage = gjson.GetBytes(bodyBytes, "error").String()
		}
		c.Log.Error(operation+" remote call failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, url),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String(constvars.LoggingErrorMessageKey, remoteMessage),
		)
		return nil, exceptions.ErrRemoteCall(method, url, resp.StatusCode, remoteMessage)
	}

	return bodyBytes, nil
}
