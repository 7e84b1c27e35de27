package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/pcbuild/internal/locales"
)

func newLocalesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List the message catalogs; the active one is marked with *",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			current := a.tr.GetCurrentLocale()

			for _, info := range locales.Describe() {
				marker := " "
				if info.Code == current {
					marker = "*"
				}
				line := fmt.Sprintf("%s %-6s %-22s %d keys", marker, info.Code, info.Name, info.Keys)
				if info.Default {
					line += " (default)"
				}
				fmt.Fprintln(out, line)
				if len(info.Missing) > 0 {
					fmt.Fprintf(out, "         missing: %s\n", strings.Join(info.Missing, ", "))
				}
			}
			return nil
		},
	}
}
