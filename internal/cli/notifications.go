package cli

import (
	"github.com/spf13/cobra"
)

var flagIncludeRead bool

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"notif"},
	Short:   "Notification inbox",
}

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications (unread only by default)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := requireSession(cmd); err != nil {
			return err
		}
		items, err := app.Notifications.List(cmd.Context(), flagIncludeRead)
		if err != nil {
			return err
		}
		// PlainBody is display-only; expose it in CLI output explicitly.
		type notification struct {
			ID        string `json:"id"`
			Title     string `json:"title"`
			Body      string `json:"body"`
			IsRead    bool   `json:"isRead"`
			CreatedAt string `json:"createdAt"`
		}
		out := make([]notification, 0, len(items))
		for _, n := range items {
			out = append(out, notification{
				ID:        n.ID,
				Title:     n.Title,
				Body:      n.PlainBody,
				IsRead:    n.IsRead,
				CreatedAt: n.CreatedAt.Format("2006-01-02 15:04"),
			})
		}
		return printJSON(cmd, out)
	},
}

var notificationsReadCmd = &cobra.Command{
	Use:   "read <notification-id>",
	Short: "Mark a notification as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd); err != nil {
			return err
		}
		if err := app.Notifications.MarkRead(cmd.Context(), args[0]); err != nil {
			return err
		}
		return printJSON(cmd, map[string]string{"id": args[0], "status": "read"})
	},
}

func init() {
	notificationsListCmd.Flags().BoolVar(&flagIncludeRead, "all", false, "include read notifications")

	notificationsCmd.AddCommand(notificationsListCmd, notificationsReadCmd)
	rootCmd.AddCommand(notificationsCmd)
}
