package utils

import (
	"net/http"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/dto/requests"
	"strconv"
	"strings"
)

func BuildPaginationRequest(r *http.Request, defaultPageSize int) *requests.Pagination {
	pageStr := r.URL.Query().Get(constvars.URLQueryPage)
	pageSizeStr := r.URL.Query().Get(constvars.URLQueryPageSize)

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
		Search:   strings.TrimSpace(r.URL.Query().Get(constvars.URLQuerySearch)),
	}
}

// BuildProviderFilterRequest reads the filter from the query string or a
// submitted form.
func BuildProviderFilterRequest(r *http.Request) models.ProviderFilter {
	filter := models.ProviderFilter{
		TaxonomyDescription: r.FormValue("taxonomy_description"),
		State:               r.FormValue("state"),
		EnumerationType:     r.FormValue("enumeration_type"),
		AddressPurpose:      r.FormValue("address_purpose"),
		FirstName:           r.FormValue("first_name"),
		LastName:            r.FormValue("last_name"),
		OrganizationName:    r.FormValue("organization_name"),
		City:                r.FormValue("city"),
		PostalCode:          r.FormValue("postal_code"),
	}
	SanitizeProviderFilter(&filter)
	return filter
}

// BuildUpdateSelectionRequest reads a selection change from a submitted form.
func BuildUpdateSelectionRequest(r *http.Request) *requests.UpdateSelection {
	request := &requests.UpdateSelection{
		Action: r.FormValue(constvars.FormFieldAction),
		NPI:    r.FormValue(constvars.FormFieldNPI),
		Search: r.FormValue(constvars.URLQuerySearch),
	}
	request.Selected, _ = strconv.ParseBool(r.FormValue(constvars.FormFieldSelected))
	request.Page, _ = strconv.Atoi(r.FormValue(constvars.URLQueryPage))
	request.PageSize, _ = strconv.Atoi(r.FormValue(constvars.URLQueryPageSize))
	SanitizeUpdateSelectionRequest(request)
	return request
}

// SafeReturnPath accepts only local absolute paths as redirect targets.
func SafeReturnPath(path, fallback string) string {
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") || strings.Contains(path, "\\") {
		return fallback
	}
	return path
}
