package routers

import (
	"provider-leads-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachSelectionRoutes(router chi.Router, selectionController *controllers.SelectionController, listController *controllers.ListController) {
	router.Put("/", selectionController.UpdateSelection)
	router.Delete("/", selectionController.ClearSelection)
	router.Post("/save", listController.SaveSelection)
}
