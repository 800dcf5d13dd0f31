package routers

import (
	"provider-leads-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachListRoutes(router chi.Router, listController *controllers.ListController, exportController *controllers.ExportController) {
	router.Get("/", listController.GetLists)
	router.Post("/", listController.CreateList)
	router.Get("/{listID}/providers", listController.GetListProviders)
	router.Post("/{listID}/providers", listController.AddProvidersToList)
	router.Get("/{listID}/export", exportController.ExportList)
}
