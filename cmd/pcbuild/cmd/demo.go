package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/pcbuild/foundation/utils/mathx"
	"github.com/msto63/pcbuild/internal/build"
	"github.com/msto63/pcbuild/internal/checker"
	"github.com/msto63/pcbuild/internal/family"
	"github.com/msto63/pcbuild/internal/kits"
	"github.com/msto63/pcbuild/internal/specs"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through the validator chain, builders, families and composite builds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), a)
		},
	}
}

type demoStep func(w io.Writer, a *app) error

func runDemo(w io.Writer, a *app) error {
	steps := []demoStep{
		demoChain,
		demoBuilder,
		demoFamily,
		demoComposite,
	}
	for _, step := range steps {
		if err := step(w, a); err != nil {
			return err
		}
	}
	return nil
}

func heading(w io.Writer, title string) {
	fmt.Fprintf(w, "\n--------- %s ---------\n\n", title)
}

func subheading(w io.Writer, title string) {
	fmt.Fprintf(w, "\n=== %s ===\n\n", title)
}

func demoChain(w io.Writer, a *app) error {
	heading(w, a.tr.T("demo.chain"))

	chain, err := checker.NewChain(a.tr, checker.DefaultOrder()...)
	if err != nil {
		return err
	}
	s := checker.Specs{
		Processor:    "Intel i7",
		RAMGB:        4,
		StorageGB:    256,
		PowerSupplyW: 400,
		Case:         "",
	}
	fmt.Fprintln(w, a.renderer.ChainErrors(chain.Validate(s)))
	return nil
}

func demoBuilder(w io.Writer, a *app) error {
	heading(w, a.tr.T("demo.builder"))

	custom := specs.NewBuilder().
		Processor("Intel Core i7-12700K").
		Motherboard("ASUS Z690").
		RAM(32).
		Storage(1000).
		GraphicsCard("NVIDIA RTX 4070").
		PowerSupply(750).
		Case("Mid Tower com RGB").
		OperatingSystem("Windows 11 Pro").
		Build()
	fmt.Fprintln(w, a.tr.T("demo.builder_custom")+":")
	fmt.Fprintln(w, a.renderer.Specs(custom))
	fmt.Fprintln(w)

	preset, err := specs.NewPresetBuilder("gamer")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, a.tr.T("demo.builder_preset")+":")
	fmt.Fprintln(w, a.renderer.Specs(preset.Build()))
	return nil
}

func demoFamily(w io.Writer, a *app) error {
	heading(w, a.tr.T("demo.family"))

	for _, f := range []family.Factory{family.IntelFactory{}, family.AMDFactory{}} {
		fmt.Fprintln(w, a.renderer.Family(family.Assemble(f)))
		fmt.Fprintln(w)
	}
	return nil
}

func demoComposite(w io.Writer, a *app) error {
	heading(w, a.tr.T("demo.composite"))
	price := mathx.MustNewDecimal

	subheading(w, a.tr.T("demo.custom"))
	custom := a.newBuild()
	adds := []error{
		custom.AddProcessor("AMD Ryzen 7 5800X", price("1500"), "3.8-4.7GHz, 8 cores"),
		custom.AddMotherboard("MSI B550", price("600"), "Socket AM4, DDR4"),
		custom.AddMemory("32GB DDR4", price("800"), "3600MHz, RGB"),
		custom.AddStorage("1TB SSD NVMe", price("400"), "PCIe 3.0"),
		custom.AddGraphicsCard("NVIDIA RTX 3070", price("3000"), "8GB GDDR6"),
		custom.AddPowerSupply("750W", price("400"), "80 Plus Gold"),
		custom.AddCase("Mid Tower", price("250"), "ATX, RGB"),
		custom.AddOperatingSystem("Windows 11 Home", price("600"), ""),
	}
	for _, err := range adds {
		if err != nil {
			return err
		}
	}
	fmt.Fprintln(w, a.renderer.Summary(custom.Summary()))

	subheading(w, a.tr.T("demo.gamer"))
	gamer := a.newBuild()
	if err := gamer.AddKit(kits.Gamer()); err != nil {
		return err
	}
	fmt.Fprintln(w, a.renderer.Summary(gamer.Summary()))

	subheading(w, a.tr.T("demo.validation"))
	incomplete := a.newBuild()
	if err := incomplete.AddProcessor("Intel i5", price("1000"), ""); err != nil {
		return err
	}
	fmt.Fprintln(w, a.renderer.Report(incomplete.Validate()))

	subheading(w, a.tr.T("demo.mixed"))
	mixed := a.newBuild()
	if err := mixed.AddKit(kits.Basic()); err != nil {
		return err
	}
	// upgrades on top of the basic kit
	if err := mixed.AddGraphicsCard("NVIDIA GTX 1660", price("1500"), "6GB GDDR5 - Upgrade"); err != nil {
		return err
	}
	if err := mixed.AddPart(build.RAM, "16GB DDR4 Adicional", price("400"), "3200MHz - Expansão"); err != nil {
		return err
	}
	fmt.Fprintln(w, a.renderer.Summary(mixed.Summary()))
	return nil
}
