package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"provider-leads-service/internal/app/config"
	"provider-leads-service/internal/pkg/exceptions"
	"provider-leads-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// requestContext bounds a handler's work by the configured request timeout
// while keeping the request scoped values.
func requestContext(r *http.Request, internalConfig *config.InternalConfig) (context.Context, context.CancelFunc) {
	timeout := time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return context.WithTimeout(r.Context(), timeout)
}

func workspaceID(r *http.Request) (string, error) {
	workspaceID := utils.GetWorkspaceID(r.Context())
	if workspaceID == "" {
		return "", exceptions.ErrMissingWorkspaceID(nil)
	}
	return workspaceID, nil
}

func buildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

// decodeOptionalJSON decodes the body into request, leaving it untouched when
// the body is empty.
func decodeOptionalJSON(r *http.Request, request interface{}) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil && !errors.Is(err, io.EOF) {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}
