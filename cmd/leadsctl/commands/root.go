package commands

import (
	"context"
	"fmt"
	"provider-leads-service/internal/app/config"
	"provider-leads-service/internal/app/contracts"
	"provider-leads-service/internal/app/drivers/logger"
	"provider-leads-service/internal/app/services/leadsapi"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/exceptions"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	apiURL              string
	timeout             time.Duration
	logLevel            string
	defaultOrganization string

	log      *zap.Logger
	leadsAPI contracts.LeadsAPIClient
}

// Execute runs the CLI and reports failures by their user facing message.
func Execute() error {
	root := NewRootCommand()
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", exceptions.ClientMessage(err, err.Error()))
	}
	return err
}

func NewRootCommand() *cobra.Command {
	internalConfig := config.NewInternalConfig()
	opts := &rootOptions{
		defaultOrganization: internalConfig.Enrichment.DefaultOrganizationName,
	}

	root := &cobra.Command{
		Use:           "leadsctl",
		Short:         "Search healthcare providers and manage lead lists",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.log = logger.NewCLILogger(opts.logLevel)
			opts.leadsAPI = leadsapi.NewLeadsAPIClient(opts.apiURL, opts.timeout, opts.log)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.log != nil {
				opts.log.Sync()
			}
		},
	}

	defaultTimeout := time.Duration(internalConfig.LeadsAPI.TimeoutInSeconds) * time.Second
	root.PersistentFlags().StringVar(&opts.apiURL, "api", internalConfig.LeadsAPI.BaseUrl, "providers API base URL")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", defaultTimeout, "timeout for each API call")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")

	root.AddCommand(
		searchCmd(opts),
		listsCmd(opts),
		listProvidersCmd(opts),
		findEmailCmd(opts),
		saveListCmd(opts),
	)
	return root
}

// commandContext tags the call with a request id so the API client logs can
// be correlated with one command run.
func (o *rootOptions) commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := context.WithValue(cmd.Context(), constvars.CONTEXT_REQUEST_ID_KEY, uuid.NewString())
	return context.WithTimeout(ctx, o.timeout)
}
