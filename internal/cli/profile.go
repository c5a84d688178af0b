package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/smartwave/smartwave-go/internal/errors"
)

var flagProfileSet []string

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit the card profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile behind the card",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := requireSession(cmd); err != nil {
			return err
		}
		profile, err := app.Profile.Get(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd, profile)
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update --set field=value ...",
	Short: "Apply a partial profile update",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := requireSession(cmd); err != nil {
			return err
		}

		updates := make(map[string]any, len(flagProfileSet))
		for _, pair := range flagProfileSet {
			key, value, found := strings.Cut(pair, "=")
			if !found || key == "" {
				return apperrors.Validation(fmt.Sprintf("--set %q is not field=value", pair))
			}
			updates[key] = value
		}

		// Admin-managed profiles are read-only for the subject user; skip
		// the round trip the backend would reject anyway.
		current, err := app.Profile.Get(cmd.Context())
		if err != nil {
			return err
		}
		if current.IsAdminManaged() {
			return apperrors.PermissionDenied("this profile is managed by your administrator").
				WithHint("Ask your administrator to change these fields.")
		}

		if err := app.Profile.Update(cmd.Context(), updates); err != nil {
			return err
		}
		updated, err := app.Profile.Get(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd, updated)
	},
}

func init() {
	profileUpdateCmd.Flags().StringArrayVar(&flagProfileSet, "set", nil, "field=value pair to update (repeatable)")

	profileCmd.AddCommand(profileShowCmd, profileUpdateCmd)
	rootCmd.AddCommand(profileCmd)
}
