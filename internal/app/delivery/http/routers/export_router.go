package routers

import (
	"provider-leads-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachExportRoutes(router chi.Router, exportController *controllers.ExportController) {
	router.Get("/selection", exportController.ExportSelection)
	router.Post("/selection/archive", exportController.ArchiveSelection)
}
