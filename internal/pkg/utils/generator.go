package utils

import (
	"fmt"
	"provider-leads-service/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateWorkspaceID() string {
	return uuid.NewString()
}

// GenerateExportObjectName builds a unique object key for an archived export.
func GenerateExportObjectName(workspaceID, filename string) string {
	timestamp := time.Now().UTC().Format("20060102_150405")
	return fmt.Sprintf("%s%s/%s_%s_%s", constvars.ExportArchivePrefix, workspaceID, timestamp, uuid.NewString()[:8], filename)
}
