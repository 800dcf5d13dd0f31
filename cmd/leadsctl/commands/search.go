package commands

import (
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/pkg/utils"

	"github.com/spf13/cobra"
)

func searchCmd(opts *rootOptions) *cobra.Command {
	var filter models.ProviderFilter
	var csvPath string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search providers by the given filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			utils.SanitizeProviderFilter(&filter)

			ctx, cancel := opts.commandContext(cmd)
			defer cancel()

			providers, err := opts.leadsAPI.SearchProviders(ctx, filter)
			if err != nil {
				return err
			}
			return writeProviders(cmd.OutOrStdout(), providers, csvPath)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&filter.TaxonomyDescription, "specialty", "", "taxonomy description, e.g. Cardiology")
	flags.StringVar(&filter.State, "state", "", "two letter state code")
	flags.StringVar(&filter.EnumerationType, "type", "", "NPI-1 (individual) or NPI-2 (organization)")
	flags.StringVar(&filter.AddressPurpose, "address-purpose", "", "LOCATION, MAILING, PRIMARY or SECONDARY")
	flags.StringVar(&filter.FirstName, "first-name", "", "provider first name")
	flags.StringVar(&filter.LastName, "last-name", "", "provider last name")
	flags.StringVar(&filter.OrganizationName, "organization", "", "organization name")
	flags.StringVar(&filter.City, "city", "", "city")
	flags.StringVar(&filter.PostalCode, "postal-code", "", "postal code")
	flags.StringVar(&csvPath, "csv", "", "write CSV to this file instead of a table (- for stdout)")
	return cmd
}
