package models

import "time"

type CSVExport struct {
	Filename string
	Content  []byte
	RowCount int
}

type ExportArchive struct {
	Filename   string    `json:"filename"`
	ObjectName string    `json:"object_name"`
	URL        string    `json:"url"`
	RowCount   int       `json:"row_count"`
	ExpiresAt  time.Time `json:"expires_at"`
}
