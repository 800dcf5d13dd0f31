package commands

import (
	"fmt"
	"provider-leads-service/internal/app/services/leadsapi"
	"provider-leads-service/internal/pkg/exceptions"
	"provider-leads-service/internal/pkg/utils"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func listsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Show saved lead lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.commandContext(cmd)
			defer cancel()

			lists, err := opts.leadsAPI.FetchLists(ctx)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tPROVIDERS")
			for _, list := range lists {
				fmt.Fprintf(tw, "%s\t%s\t%d\n", list.ID, list.Name, list.ProviderCount)
			}
			return tw.Flush()
		},
	}
}

func listProvidersCmd(opts *rootOptions) *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:   "list-providers <list-id>",
		Short: "Show the providers saved in a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.commandContext(cmd)
			defer cancel()

			providers, err := opts.leadsAPI.GetListProviders(ctx, args[0])
			if err != nil {
				return err
			}
			return writeProviders(cmd.OutOrStdout(), providers, csvPath)
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "write CSV to this file instead of a table (- for stdout)")
	return cmd
}

func saveListCmd(opts *rootOptions) *cobra.Command {
	var listName string

	cmd := &cobra.Command{
		Use:   "save-list --name <name> <npi>...",
		Short: "Create a list holding the given providers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listName = strings.TrimSpace(listName)
			if listName == "" {
				return exceptions.ErrEmptyListName()
			}
			for _, npi := range args {
				if !utils.IsValidNPI(npi) {
					return exceptions.ErrInvalidNPI(npi)
				}
			}

			ctx, cancel := opts.commandContext(cmd)
			defer cancel()

			result, err := leadsapi.CreateListWithProviders(ctx, opts.leadsAPI, listName, args)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d providers to list '%s' (%s)\n", result.AddedCount, result.List.Name, result.List.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&listName, "name", "", "name of the new list")
	return cmd
}
