package cli

import (
	"github.com/spf13/cobra"
)

var passesCmd = &cobra.Command{
	Use:   "passes",
	Short: "Event and access passes",
}

var passesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available passes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := requireSession(cmd); err != nil {
			return err
		}
		list, err := app.Passes.List(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd, list)
	},
}

var passesShowCmd = &cobra.Command{
	Use:   "show <pass-id>",
	Short: "Show one pass with the caller's membership",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd); err != nil {
			return err
		}
		pass, err := app.Passes.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		membership, err := app.Passes.Membership(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd, map[string]any{
			"pass":       pass,
			"membership": membership,
		})
	},
}

var passesJoinCmd = &cobra.Command{
	Use:   "join <pass-id>",
	Short: "Request access to a pass",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd); err != nil {
			return err
		}
		membership, err := app.Passes.RequestAccess(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd, membership)
	},
}

func init() {
	passesCmd.AddCommand(passesListCmd, passesShowCmd, passesJoinCmd)
	rootCmd.AddCommand(passesCmd)
}
