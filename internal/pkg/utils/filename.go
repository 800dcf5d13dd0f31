package utils

import (
	"provider-leads-service/internal/pkg/constvars"
	"strings"
)

// ListExportFilename replaces every character outside [A-Za-z0-9] with "_"
// and appends the export suffix.
func ListExportFilename(listName string) string {
	if listName == "" {
		listName = constvars.ExportListFallbackName
	}

	var builder strings.Builder
	for _, r := range listName {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			builder.WriteRune(r)
			continue
		}
		builder.WriteByte('_')
	}
	return builder.String() + constvars.ExportListFilenameSuffix
}
