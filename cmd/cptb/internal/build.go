package internal

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goplus/cptb/internal/dispatch"
	"github.com/goplus/cptb/internal/ui"
	"github.com/goplus/cptb/x/cmake"
)

var (
	buildDebug  bool
	buildSource string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the current project",
	Long: `Build generates the CMake build tree of the project with the active kit,
then builds it. Release builds go to "build", debug builds to "build-debug".`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().BoolVar(&buildDebug, "debug", false, "Configure a debug build into build-debug")
	buildCmd.Flags().StringVarP(&buildSource, "source", "s", ".", "Project source directory")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	k, err := resolveActive()
	if err != nil {
		return err
	}

	buildDir := filepath.Join(buildSource, cmake.BuildDir(buildDebug))
	d := dispatch.New(newLauncher(), os.Getenv("PATH"))
	res, err := d.Run(cmd.Context(), k, buildSource, buildDir, buildDebug)
	if err != nil {
		return err
	}

	p := ui.New(cmd.OutOrStdout())
	p.Info("Exit status of CMake generate: %d", res.GenerateStatus)
	if res.Stage == dispatch.GenerateFailed {
		p.Warning("CMake generate failed, not building %s", buildDir)
		return nil
	}
	p.Info("Exit status of CMake build: %d", res.BuildStatus)
	if res.BuildStatus == 0 {
		p.Success("Built %s with kit %s", buildDir, k.ID())
	}
	return nil
}
