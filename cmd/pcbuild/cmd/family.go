package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/pcbuild/internal/family"
)

func newFamilyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "family <" + strings.Join(family.Tokens(), "|") + ">",
		Short:     "Show the parts of a vendor family",
		Args:      cobra.ExactArgs(1),
		ValidArgs: family.Tokens(),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := family.Select(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.renderer.Family(family.Assemble(f)))
			return nil
		},
	}
}
