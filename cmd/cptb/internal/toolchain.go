package internal

import (
	"errors"
	"os"

	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"

	"github.com/goplus/cptb/internal/kit"
	"github.com/goplus/cptb/internal/settings"
	"github.com/goplus/cptb/internal/ui"
	"github.com/goplus/cptb/x/cmake"
)

var toolchainCmd = &cobra.Command{
	Use:   "toolchain",
	Short: "Inspect the configured kits",
}

var toolchainListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every kit with its compiler and CMake",
	Args:  cobra.NoArgs,
	RunE:  runToolchainList,
}

var toolchainShowCmd = &cobra.Command{
	Use:   "show [kit]",
	Short: "Show how a kit resolves (the active kit by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runToolchainShow,
}

func init() {
	toolchainCmd.AddCommand(toolchainListCmd, toolchainShowCmd)
	rootCmd.AddCommand(toolchainCmd)
}

func runToolchainList(cmd *cobra.Command, args []string) error {
	dir, c, err := loadCatalog()
	if err != nil {
		return err
	}
	defaultKit := ""
	if sel, err := settings.LoadSelection(dir); err == nil {
		defaultKit = sel.DefaultKit
	} else if !errors.Is(err, settings.ErrNotFound) {
		log.Warn("ignoring selection:", err)
	}

	p := ui.New(cmd.OutOrStdout())
	ids := c.KitIDs()
	if len(ids) == 0 {
		p.Info("No kits configured in %s", dir)
		return nil
	}
	p.Header("Configured toolchains:")
	for _, id := range ids {
		printKit(p, kit.Resolve(c, id), id == defaultKit)
	}
	return nil
}

func runToolchainShow(cmd *cobra.Command, args []string) error {
	dir, c, err := loadCatalog()
	if err != nil {
		return err
	}
	var id string
	if len(args) == 1 {
		id = args[0]
	} else if id, err = activeKitID(dir); err != nil {
		return err
	}

	r := kit.Resolve(c, id)
	if _, ok := r.Kit(); !ok {
		return r.Check()
	}
	p := ui.New(cmd.OutOrStdout())
	printKit(p, r, false)
	if err := r.Check(); err == nil {
		p.Field(1, "Search path", cmake.SearchPath(r, os.Getenv("PATH")))
	}
	return nil
}

func printKit(p *ui.Printer, r *kit.Resolved, isDefault bool) {
	k, _ := r.Kit()
	label := r.ID()
	if isDefault {
		label += ", default"
	}
	p.Item(0, k.Name, label)

	p.Item(1, "Compiler", k.CompilerID)
	if e, ok := r.Compiler(); ok {
		p.Field(2, "Name", e.Name)
		p.Field(2, "Path", e.Path)
	} else {
		p.Problem(2, (&kit.DanglingReferenceError{KitID: r.ID(), Kind: kit.RefCompiler, ID: k.CompilerID}).Error())
	}

	p.Item(1, "CMake", k.BuildToolID)
	if e, ok := r.BuildTool(); ok {
		p.Field(2, "Name", e.Name)
		p.Field(2, "Path", e.Path)
		if g, ok := r.BuildToolGenerator(); ok {
			p.Field(2, "Generator", g)
		}
	} else {
		p.Problem(2, (&kit.DanglingReferenceError{KitID: r.ID(), Kind: kit.RefBuildTool, ID: k.BuildToolID}).Error())
	}
	p.Blank()
}
