package cli

import (
	"fmt"

	"github.com/rogerio-castellano/lims-tracker/internal/auth"
	"github.com/rogerio-castellano/lims-tracker/internal/config"
	"github.com/rogerio-castellano/lims-tracker/internal/db"
	"github.com/rogerio-castellano/lims-tracker/internal/logger"
	"github.com/spf13/cobra"
)

// NewMigrateCommand applies the embedded schema migrations to the configured database.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Long:  "Apply pending schema migrations to storage.database_url from the configuration (or DATABASE_URL).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(rootOpts.Config)
			if err != nil {
				return err
			}
			log, err := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}

			database, err := db.Connect(cmd.Context(), cfg.Storage.DatabaseURL)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := db.Migrate(database, log); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

// NewHashPasswordCommand prints a bcrypt hash for auth.admin_password_hash.
func NewHashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print a bcrypt hash for the operator password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

type LoginOptions struct {
	*RootOptions
	Username string
	Password string
}

// NewLoginCommand exchanges operator credentials for a token and prints it.
func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LoginOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Obtain a bearer token",
		Long:  "Obtain a bearer token. Export it as LIMS_TOKEN or pass it with --token.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := opts.client().Login(cmd.Context(), opts.Username, opts.Password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Username, "username", "u", "admin", "operator username")
	cmd.Flags().StringVarP(&opts.Password, "password", "p", "", "operator password")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
