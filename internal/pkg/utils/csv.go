package utils

import (
	"bytes"
	"encoding/csv"
	"io"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/exceptions"
)

// WriteProvidersCSV writes the export header followed by one record per
// provider. Lines end with CRLF.
func WriteProvidersCSV(w io.Writer, providers []models.Provider) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true

	err := writer.Write(constvars.ExportCSVHeader)
	if err != nil {
		return exceptions.ErrWriteCSV(err)
	}

	for i := range providers {
		err = writer.Write(ProviderCSVRecord(&providers[i]))
		if err != nil {
			return exceptions.ErrWriteCSV(err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return exceptions.ErrWriteCSV(err)
	}
	return nil
}

func BuildProvidersCSV(filename string, providers []models.Provider) (*models.CSVExport, error) {
	var buffer bytes.Buffer
	err := WriteProvidersCSV(&buffer, providers)
	if err != nil {
		return nil, err
	}
	return &models.CSVExport{
		Filename: filename,
		Content:  buffer.Bytes(),
		RowCount: len(providers),
	}, nil
}
