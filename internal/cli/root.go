package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rogerio-castellano/lims-tracker/internal/client"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	APIURL  string
	Token   string
	Config  string
	Format  string // "json" | "text"
	Timeout time.Duration
}

var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the limsctl root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "limsctl",
		Short: "Command line client for the LIMS tracker",
		Long:  "limsctl lists and records laboratory data through the LIMS REST API and manages the database schema.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.APIURL, "api", envOr("LIMS_API_URL", client.DefaultBaseURL), "LIMS API base URL")
	cmd.PersistentFlags().StringVar(&opts.Token, "token", os.Getenv("LIMS_TOKEN"), "bearer token for write requests")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", os.Getenv("LIMS_CONFIG"), "path to lims.yaml")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 10*time.Second, "API request timeout")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewResultsCommand(opts))
	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewHashPasswordCommand())

	return cmd
}

func (o *RootOptions) client() *client.Client {
	return client.New(client.Options{BaseURL: o.APIURL, Token: o.Token, Timeout: o.Timeout})
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
