package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartwave/smartwave-go/internal/deeplink"
	apperrors "github.com/smartwave/smartwave-go/internal/errors"
)

var (
	flagEmail    string
	flagPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with email and password",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if flagEmail == "" || flagPassword == "" {
			return apperrors.Validation("both --email and --password are required")
		}
		snap, err := app.Session.SignInWithPassword(cmd.Context(), flagEmail, flagPassword)
		if err != nil {
			return err
		}
		return printJSON(cmd, snap)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored token",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printJSON(cmd, app.Session.SignOut(cmd.Context()))
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printJSON(cmd, app.Session.Bootstrap(cmd.Context()))
	},
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Federated sign-in flow",
}

var authStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Begin federated sign-in and print the provider URL",
	Long: `Begin the federated sign-in flow. Open the printed URL in a browser,
sign in with the provider, then complete with the redirect URL:

  smartwave auth complete "smartwave://redirect?token=..."`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		flow, err := app.Session.BeginFederatedSignIn(cmd.Context(), app.Config.Auth.RedirectURL())
		if err != nil {
			return err
		}
		return printJSON(cmd, map[string]string{
			"authUrl":   flow.AuthURL,
			"returnUrl": flow.ReturnURL,
		})
	},
}

var authCompleteCmd = &cobra.Command{
	Use:   "complete <redirect-url-or-token>",
	Short: "Complete federated sign-in from the redirect URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := strings.TrimSpace(args[0])
		if strings.Contains(raw, "token=") {
			token := deeplink.ExtractToken(raw)
			if token == "" {
				return apperrors.Validation("no token found in redirect URL")
			}
			raw = token
		}
		snap, err := app.Session.CompleteSignInWithToken(cmd.Context(), raw)
		if err != nil {
			return err
		}
		return printJSON(cmd, snap)
	},
}

func init() {
	loginCmd.Flags().StringVar(&flagEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&flagPassword, "password", "", "account password")

	authCmd.AddCommand(authStartCmd, authCompleteCmd)
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd, authCmd)
}
