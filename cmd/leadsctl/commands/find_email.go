package commands

import (
	"fmt"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/pkg/exceptions"
	"provider-leads-service/internal/pkg/utils"
	"strings"

	"github.com/spf13/cobra"
)

func findEmailCmd(opts *rootOptions) *cobra.Command {
	var request models.EmailLookupRequest

	cmd := &cobra.Command{
		Use:   "find-email <npi> --first <name> --last <name>",
		Short: "Look up a provider's email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			npi := args[0]
			if !utils.IsValidNPI(npi) {
				return exceptions.ErrInvalidNPI(npi)
			}
			request.FirstName = strings.TrimSpace(request.FirstName)
			request.LastName = strings.TrimSpace(request.LastName)
			request.OrganizationName = strings.TrimSpace(request.OrganizationName)
			if request.OrganizationName == "" {
				request.OrganizationName = opts.defaultOrganization
			}
			if request.FirstName == "" || request.LastName == "" {
				return exceptions.ErrMissingEmailLookupInfo(npi)
			}

			ctx, cancel := opts.commandContext(cmd)
			defer cancel()

			result, err := opts.leadsAPI.FindEmail(ctx, npi, request)
			if err != nil {
				return err
			}

			if result.Found {
				fmt.Fprintln(cmd.OutOrStdout(), result.Email)
				return nil
			}
			message := result.Message
			if message == "" {
				message = fmt.Sprintf("Email not found for %s %s.", request.FirstName, request.LastName)
			}
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}

	cmd.Flags().StringVar(&request.FirstName, "first", "", "provider first name")
	cmd.Flags().StringVar(&request.LastName, "last", "", "provider last name")
	cmd.Flags().StringVar(&request.OrganizationName, "org", "", "organization name")
	return cmd
}
