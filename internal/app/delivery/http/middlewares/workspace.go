package middlewares

import (
	"context"
	"net/http"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/exceptions"
	"provider-leads-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Workspace resolves the visitor's workspace id from the X-Workspace-ID header
// or the workspace cookie. Browsers without a valid cookie get a new one; API
// callers sending a malformed header are rejected.
func (m *Middlewares) Workspace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		workspaceCfg := m.InternalConfig.Workspace

		workspaceID := r.Header.Get(constvars.HeaderXWorkspaceID)
		if workspaceID != "" {
			if _, err := uuid.Parse(workspaceID); err != nil {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidWorkspaceID(workspaceID))
				return
			}
		} else {
			cookie, err := r.Cookie(workspaceCfg.CookieName)
			if err == nil {
				if _, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
					workspaceID = cookie.Value
				}
			}

			if workspaceID == "" {
				workspaceID = utils.GenerateWorkspaceID()
				m.Log.Debug("Middlewares.Workspace issued new workspace",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
					zap.String(constvars.LoggingWorkspaceIDKey, workspaceID),
				)
			}

			http.SetCookie(w, &http.Cookie{
				Name:     workspaceCfg.CookieName,
				Value:    workspaceID,
				Path:     "/",
				MaxAge:   int((time.Duration(workspaceCfg.TTLInHours) * time.Hour).Seconds()),
				HttpOnly: true,
				Secure:   workspaceCfg.CookieSecure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_WORKSPACE_ID_KEY, workspaceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
