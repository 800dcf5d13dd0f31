package utils

import (
	"net/url"
	"provider-leads-service/internal/app/models"
)

// BuildProviderQuery encodes exactly the non-empty filter fields.
func BuildProviderQuery(filter models.ProviderFilter) string {
	values := url.Values{}
	for _, field := range filter.Fields() {
		if field.Value != "" {
			values.Set(field.Key, field.Value)
		}
	}
	return values.Encode()
}

// FilterBadges lists the active criteria for display.
func FilterBadges(filter models.ProviderFilter) []models.FilterField {
	badges := make([]models.FilterField, 0)
	for _, field := range filter.Fields() {
		if field.Value != "" {
			badges = append(badges, field)
		}
	}
	return badges
}
