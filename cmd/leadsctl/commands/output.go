package commands

import (
	"fmt"
	"io"
	"os"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/pkg/utils"
	"text/tabwriter"
)

func writeProviderTable(w io.Writer, providers []models.Provider) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NPI\tNAME\tTYPE\tSPECIALTY\tADDRESS\tEMAIL\tPHONE")
	for i := range providers {
		provider := &providers[i]
		email := provider.Basic.Email
		if email == "" {
			email = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			provider.NPI,
			utils.ProviderName(provider),
			utils.ProviderTypeLabel(provider.EnumerationType),
			utils.ProviderSpecialty(provider),
			utils.ProviderCSVAddress(provider),
			email,
			utils.ProviderLocationPhone(provider),
		)
	}
	return tw.Flush()
}

// writeProviders prints a table, or writes CSV to csvPath ("-" is stdout).
func writeProviders(stdout io.Writer, providers []models.Provider, csvPath string) error {
	switch csvPath {
	case "":
		return writeProviderTable(stdout, providers)
	case "-":
		return utils.WriteProvidersCSV(stdout, providers)
	}

	file, err := os.Create(csvPath)
	if err != nil {
		return err
	}
	defer file.Close()

	err = utils.WriteProvidersCSV(file, providers)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %d providers to %s\n", len(providers), csvPath)
	return file.Close()
}
