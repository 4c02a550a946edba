package internal

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goplus/cptb/internal/dispatch"
	"github.com/goplus/cptb/internal/ui"
)

var buildenvForce bool

var buildenvCmd = &cobra.Command{
	Use:   "buildenv",
	Short: "Start a shell inside the build environment of the active kit",
	Long: `Buildenv starts an interactive shell whose PATH starts with the cmake and
toolchain directories of the active kit. Leave it with "exit".

The shell gets CPTB_KIT set to the kit id. PS1 (PROMPT on Windows) is
prefixed with "(cptb:<kit>) ", but most interactive shells reset PS1 from
their rc files, so add $CPTB_KIT to your own prompt to see it there.`,
	Args: cobra.NoArgs,
	RunE: runBuildenv,
}

func init() {
	buildenvCmd.Flags().BoolVarP(&buildenvForce, "force", "f", false, "Start the shell even if stdin is not a terminal")
	rootCmd.AddCommand(buildenvCmd)
}

func runBuildenv(cmd *cobra.Command, args []string) error {
	if !buildenvForce && !ui.IsTerminal(cmd.InOrStdin()) {
		return fmt.Errorf("buildenv needs an interactive terminal, use --force to start the shell anyway")
	}
	k, err := resolveActive()
	if err != nil {
		return err
	}

	p := ui.New(cmd.OutOrStdout())
	d := dispatch.New(newLauncher(), os.Getenv("PATH"))
	p.Info("Entering build environment of kit %s, type exit to leave", k.ID())
	status, err := d.Shell(cmd.Context(), k, os.Getenv)
	if err != nil {
		return err
	}
	p.Info("Left build environment of kit %s (exit status %d)", k.ID(), status)
	return nil
}
