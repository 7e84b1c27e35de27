package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/pcbuild/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse the preset kits interactively",
		Long: `Starts a terminal browser over the preset kits. The highlighted kit's
summary and validation result are shown next to the list.

Navigation:
  ↑/k, ↓/j   - move
  Enter      - mark the kit
  PgUp/PgDn  - scroll the details
  q, Ctrl+C  - quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(tui.Config{
				Translator: a.tr,
				Currency:   a.cfg.Pricing.Currency,
				Logger:     a.logger,
				Plain:      a.plainOutput(),
			})
		},
	}
}
