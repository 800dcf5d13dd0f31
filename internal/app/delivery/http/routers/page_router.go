package routers

import (
	"net/http"
	"provider-leads-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPageRoutes(router chi.Router, emailLookupLimit func(http.Handler) http.Handler, pageController *controllers.PageController) {
	router.Get("/", pageController.Home)
	router.Post("/search", pageController.Search)
	router.Post("/selection", pageController.UpdateSelection)
	router.With(emailLookupLimit).Post("/providers/{npi}/find-email", pageController.FindEmail)
	router.With(emailLookupLimit).Post("/providers/find-emails", pageController.FindEmails)
	router.Get("/provider/{npi}", pageController.ProviderDetail)
	router.Get("/lists", pageController.Lists)
	router.Post("/lists", pageController.SaveToList)
	router.Get("/lists/{listID}", pageController.ListDetail)
	router.Post("/lists/{listID}/providers", pageController.AddToList)
	router.Get("/lists/{listID}/export.csv", pageController.ExportList)
	router.Get("/exports/selection.csv", pageController.ExportSelection)
}
