package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/lims-tracker/internal/client"
	"github.com/rogerio-castellano/lims-tracker/internal/models"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type ResultsAddOptions struct {
	*RootOptions
	Sample   int
	Test     int
	Tester   string
	Reviewer string
	Value    string
	Deadline string
}

// NewResultsCommand groups result subcommands.
func NewResultsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results",
		Short: "Work with sample test results",
	}
	cmd.AddCommand(newResultsAddCommand(rootOpts))
	return cmd
}

func newResultsAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ResultsAddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a test result for a sample",
		Long: `Record a test result for a sample. The server grades the value against
the test's acceptance range and reports the verdict.

Example:
  limsctl results add --sample 1 --test 2 --tester jdoe --reviewer asmith --value 15.2 --deadline 2024-03-01T17:00:00Z`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := opts.input()
			if err != nil {
				return err
			}

			created, err := opts.client().CreateResult(cmd.Context(), in)
			if err != nil {
				var apiErr *client.APIError
				if errors.As(err, &apiErr) {
					return fmt.Errorf("result rejected: %s", apiErr.Message())
				}
				return err
			}

			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), created)
			}
			return resultTable([]models.Result{created}).write(cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&opts.Sample, "sample", 0, "sample id")
	cmd.Flags().IntVar(&opts.Test, "test", 0, "test id")
	cmd.Flags().StringVar(&opts.Tester, "tester", "", "testing analyst")
	cmd.Flags().StringVar(&opts.Reviewer, "reviewer", "", "reviewing analyst")
	cmd.Flags().StringVar(&opts.Value, "value", "", "measured result")
	cmd.Flags().StringVar(&opts.Deadline, "deadline", "", "deadline (RFC3339)")
	for _, name := range []string{"sample", "test", "tester", "reviewer", "value", "deadline"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func (o *ResultsAddOptions) input() (client.ResultInput, error) {
	value, err := decimal.NewFromString(o.Value)
	if err != nil {
		return client.ResultInput{}, fmt.Errorf("invalid --value %q: %w", o.Value, err)
	}
	deadline, err := time.Parse(time.RFC3339, o.Deadline)
	if err != nil {
		return client.ResultInput{}, fmt.Errorf("invalid --deadline %q: %w", o.Deadline, err)
	}
	return client.ResultInput{
		Sample:           o.Sample,
		Test:             o.Test,
		TestingAnalyst:   o.Tester,
		ReviewingAnalyst: o.Reviewer,
		TestResult:       value,
		Deadline:         deadline,
	}, nil
}
