package cli

import (
	"github.com/spf13/cobra"

	"github.com/smartwave/smartwave-go/internal/domain/card"
	apperrors "github.com/smartwave/smartwave-go/internal/errors"
	"github.com/smartwave/smartwave-go/internal/service"
)

var flagTheme string

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Export the business card",
}

func runExport(cmd *cobra.Command, export func(cmd *cobra.Command, profile card.Profile, theme card.Theme) (service.ExportResult, error)) error {
	if err := requireSession(cmd); err != nil {
		return err
	}
	theme, err := card.ThemeByName(flagTheme)
	if err != nil {
		return apperrors.Validation(err.Error())
	}
	profile, err := app.Profile.Get(cmd.Context())
	if err != nil {
		return err
	}
	result, err := export(cmd, profile, theme)
	if err != nil {
		return err
	}
	return printJSON(cmd, result)
}

var cardSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save front and back card images to the media library",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runExport(cmd, func(cmd *cobra.Command, p card.Profile, t card.Theme) (service.ExportResult, error) {
			return app.Export.SaveCard(cmd.Context(), p, t)
		})
	},
}

var cardCaptureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Save a combined card capture without remote images",
	Long: `Save a single combined card image rendered entirely from local data:
no profile photo or company logo is fetched, the initials block stands in.
Useful when the image host is unreachable.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runExport(cmd, func(cmd *cobra.Command, p card.Profile, t card.Theme) (service.ExportResult, error) {
			return app.Export.SaveCardCapture(cmd.Context(), p, t)
		})
	},
}

var cardShareCmd = &cobra.Command{
	Use:   "share",
	Short: "Share a combined card image",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runExport(cmd, func(cmd *cobra.Command, p card.Profile, t card.Theme) (service.ExportResult, error) {
			return app.Export.ShareCard(cmd.Context(), p, t)
		})
	},
}

var cardWalletCmd = &cobra.Command{
	Use:       "wallet <apple|google>",
	Short:     "Print the wallet download link for the card",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"apple", "google"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd); err != nil {
			return err
		}
		profile, err := app.Profile.Get(cmd.Context())
		if err != nil {
			return err
		}
		url, err := app.Passes.WalletURL(args[0], profile.ShortURL)
		if err != nil {
			return err
		}
		return printJSON(cmd, map[string]string{"kind": args[0], "url": url})
	},
}

func init() {
	cardCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "card theme: smartwave, minimal or professional")

	cardCmd.AddCommand(cardSaveCmd, cardCaptureCmd, cardShareCmd, cardWalletCmd)
	rootCmd.AddCommand(cardCmd)
}
