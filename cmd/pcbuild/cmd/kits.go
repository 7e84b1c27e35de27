package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/pcbuild/internal/build"
	"github.com/msto63/pcbuild/internal/kits"
)

func newKitsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kits",
		Short: "List the preset kits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), a.renderer.KitList(a.newBuild().Currency()))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "show <id>",
		Short:     "Show the build summary of a preset kit",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kits.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := kits.Preset(args[0])
			if err != nil {
				return err
			}

			b := a.newBuild(build.WithID(args[0]))
			if err := b.AddKit(entries); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if desc, err := kits.Describe(args[0]); err == nil {
				fmt.Fprintln(out, desc)
			}
			fmt.Fprintln(out, a.renderer.Summary(b.Summary()))
			fmt.Fprintln(out)
			fmt.Fprintln(out, a.renderer.Report(b.Validate()))
			return nil
		},
	})
	return cmd
}
