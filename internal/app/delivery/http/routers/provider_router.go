package routers

import (
	"net/http"
	"provider-leads-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachProviderRoutes(router chi.Router, emailLookupLimit func(http.Handler) http.Handler, providerController *controllers.ProviderController) {
	router.Get("/", providerController.SearchProviders)
	router.With(emailLookupLimit).Post("/find-emails", providerController.FindEmails)
	router.Get("/{npi}", providerController.GetProvider)
	router.With(emailLookupLimit).Post("/{npi}/find-email", providerController.FindEmail)
}
