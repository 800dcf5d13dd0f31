package routers

import (
	"fmt"
	"net/http"
	"provider-leads-service/internal/app/config"
	"provider-leads-service/internal/app/delivery/http/controllers"
	"provider-leads-service/internal/app/delivery/http/middlewares"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

type Controllers struct {
	Page      *controllers.PageController
	Provider  *controllers.ProviderController
	Selection *controllers.SelectionController
	List      *controllers.ListController
	Export    *controllers.ExportController
}

func SetupRoutes(
	router *chi.Mux,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	middleware *middlewares.Middlewares,
	handlers *Controllers,
) {
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.Logging(logger))
	router.Use(middleware.ErrorHandler)

	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.CorsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID", "X-Workspace-ID"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	if internalConfig.App.MaxRequests > 0 {
		router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	}

	router.Get("/healthz", healthCheck(internalConfig))

	emailLookupLimit := func(next http.Handler) http.Handler { return next }
	if internalConfig.Enrichment.LookupRequestsPerMinute > 0 {
		emailLookupLimit = middlewares.NewRateLimiter(
			internalConfig.Enrichment.LookupRequestsPerMinute,
			time.Minute,
			time.Duration(internalConfig.Enrichment.LookupBlockTimeInSeconds)*time.Second,
			logger,
		).Limit
	}

	router.Group(func(r chi.Router) {
		r.Use(middleware.Workspace)
		attachPageRoutes(r, emailLookupLimit, handlers.Page)
	})

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Use(middleware.Workspace)

			r.Route("/providers", func(r chi.Router) {
				attachProviderRoutes(r, emailLookupLimit, handlers.Provider)
			})

			r.Route("/selection", func(r chi.Router) {
				attachSelectionRoutes(r, handlers.Selection, handlers.List)
			})

			r.Route("/lists", func(r chi.Router) {
				attachListRoutes(r, handlers.List, handlers.Export)
			})

			r.Route("/exports", func(r chi.Router) {
				attachExportRoutes(r, handlers.Export)
			})
		})
	})
}

func healthCheck(internalConfig *config.InternalConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, "ok", map[string]string{
			"env":     internalConfig.App.Env,
			"version": internalConfig.App.Version,
		})
	}
}
