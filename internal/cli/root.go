// Package cli implements the smartwave command tree.
package cli

import (
	"context"
	"encoding/json"
	"fmt"

	jmespath "github.com/jmespath-community/go-jmespath"
	"github.com/spf13/cobra"

	"github.com/smartwave/smartwave-go/internal/bootstrap"
	apperrors "github.com/smartwave/smartwave-go/internal/errors"
)

var (
	app *bootstrap.App

	flagVerbose bool
	flagQuery   string
)

var rootCmd = &cobra.Command{
	Use:   "smartwave",
	Short: "SmartWave digital business card client",
	Long: `smartwave is a client for the SmartWave digital business card service.

It manages your session, exports your card as QR-backed images, and gives
access to your profile, passes and notifications. Command output is JSON;
use --query to filter it with a JMESPath expression.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger := bootstrap.InitLogger(flagVerbose)
		cfg, err := bootstrap.LoadConfig()
		if err != nil {
			return err
		}
		app, err = bootstrap.BuildApp(cfg, logger)
		return err
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		_ = app.Close()
	},
}

// ExecuteContext runs the root command.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&flagQuery, "query", "q", "", "JMESPath filter applied to JSON output")
}

// printJSON writes v as indented JSON, applying the --query filter.
func printJSON(cmd *cobra.Command, v any) error {
	if flagQuery != "" {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var generic any
		if err := json.Unmarshal(data, &generic); err != nil {
			return err
		}
		v, err = jmespath.Search(flagQuery, generic)
		if err != nil {
			return apperrors.Validation(fmt.Sprintf("invalid --query expression: %v", err))
		}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// requireSession bootstraps the session and fails unless a token is held.
// The degraded state passes: a held token is still usable against the
// backend even when the last validation could not reach it.
func requireSession(cmd *cobra.Command) error {
	snap := app.Session.Bootstrap(cmd.Context())
	if !snap.Status.SignedIn() {
		return apperrors.Unauthorized("not signed in").
			WithHint("Run `smartwave login` or `smartwave auth start` first.")
	}
	return nil
}
