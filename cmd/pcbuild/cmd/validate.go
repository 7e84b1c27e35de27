package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/pcbuild/internal/checker"
	"github.com/msto63/pcbuild/internal/specs"
)

type validateOptions struct {
	file   string
	preset string
	order  []string

	processor    string
	motherboard  string
	ram          int
	storage      int
	graphicsCard string
	powerSupply  int
	pcCase       string
	os           string
}

func newValidateCmd(a *app) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run the validator chain over a configuration",
		Long: `Runs the validator chain over a flat configuration and prints one message
per missing field, in chain order.

The configuration is read from --file (YAML, TOML or JSON), started from a
--preset, or given field by field with flags. Flags override file and preset
values. The chain order comes from [validation] order in the config file
unless --order is given.`,
		Example: `  pcbuild validate --processor "Intel i7" --ram 16 --storage 512 --psu 500 --case "Mid Tower"
  pcbuild validate --file specs.yaml --order case,processor`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, a, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.file, "file", "f", "", "read the configuration from a file")
	f.StringVar(&opts.preset, "preset", "", "start from a preset (gamer, office)")
	f.StringSliceVar(&opts.order, "order", nil, "validator order, comma separated")
	f.StringVar(&opts.processor, "processor", "", "processor name")
	f.StringVar(&opts.motherboard, "motherboard", "", "motherboard name")
	f.IntVar(&opts.ram, "ram", 0, "memory in GB")
	f.IntVar(&opts.storage, "storage", 0, "storage in GB")
	f.StringVar(&opts.graphicsCard, "graphics-card", "", "graphics card name")
	f.IntVar(&opts.powerSupply, "psu", 0, "power supply in watts")
	f.StringVar(&opts.pcCase, "case", "", "case name")
	f.StringVar(&opts.os, "os", "", "operating system")
	cmd.MarkFlagsMutuallyExclusive("file", "preset")
	return cmd
}

func runValidate(cmd *cobra.Command, a *app, opts *validateOptions) error {
	b, err := opts.builder()
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("processor") {
		b.Processor(opts.processor)
	}
	if f.Changed("motherboard") {
		b.Motherboard(opts.motherboard)
	}
	if f.Changed("ram") {
		b.RAM(opts.ram)
	}
	if f.Changed("storage") {
		b.Storage(opts.storage)
	}
	if f.Changed("graphics-card") {
		b.GraphicsCard(opts.graphicsCard)
	}
	if f.Changed("psu") {
		b.PowerSupply(opts.powerSupply)
	}
	if f.Changed("case") {
		b.Case(opts.pcCase)
	}
	if f.Changed("os") {
		b.OperatingSystem(opts.os)
	}
	s := b.Build()

	order := opts.order
	if len(order) == 0 {
		order = a.cfg.Validation.Order
	}
	chain, err := checker.NewChain(a.tr, order...)
	if err != nil {
		return err
	}

	errs := chain.Validate(s)
	a.logger.Debug("chain validated", "order", order, "errors", len(errs))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, a.renderer.Specs(s))
	fmt.Fprintln(out)
	fmt.Fprintln(out, a.renderer.ChainErrors(errs))
	if len(errs) > 0 {
		return ErrInvalid
	}
	return nil
}

func (o *validateOptions) builder() (*specs.Builder, error) {
	switch {
	case o.file != "":
		s, err := specs.Load(o.file)
		if err != nil {
			return nil, err
		}
		return specs.FromSpecs(s), nil
	case o.preset != "":
		return specs.NewPresetBuilder(o.preset)
	default:
		return specs.NewBuilder(), nil
	}
}
