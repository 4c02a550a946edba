package internal

import (
	"github.com/spf13/cobra"

	"github.com/goplus/cptb/internal/scaffold"
	"github.com/goplus/cptb/internal/ui"
	"github.com/goplus/cptb/internal/vcs"
)

var (
	newBin          bool
	newNonStatic    bool
	newWithTests    bool
	newNoGit        bool
	newTarget       string
	newCMakeVersion string
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new C++ project",
	Long:  `New creates a CMake based C++ project in the directory <name> and initializes a git repository in it.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runNew,
}

func init() {
	newCmd.Flags().BoolVar(&newBin, "bin", false, "Create an executable project")
	newCmd.Flags().BoolVar(&newNonStatic, "non-static", false, "Link libc and libc++ dynamically")
	newCmd.Flags().BoolVar(&newWithTests, "with-tests", false, "Add basic structure for unit testing with Catch2")
	newCmd.Flags().BoolVar(&newNoGit, "no-git", false, "Do not initialize a git repository")
	newCmd.Flags().StringVar(&newTarget, "target", "", "Target triple recorded in the project (default host arch-os)")
	newCmd.Flags().StringVar(&newCMakeVersion, "cmake-version", scaffold.DefaultCMakeVersion, "Minimum CMake version of the project")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	params := scaffold.Params{
		ProjectName:  args[0],
		Toolchain:    optionalKitID(),
		Target:       newTarget,
		CMakeVersion: newCMakeVersion,
		Static:       !newNonStatic,
		Bin:          newBin,
		Tests:        newWithTests,
	}
	root, err := scaffold.Create(scaffold.NewEngine(), ".", params)
	if err != nil {
		return err
	}

	p := ui.New(cmd.OutOrStdout())
	if !newNoGit {
		if err := vcs.NewGitVCS().Init(cmd.Context(), root); err != nil {
			p.Warning("Couldn't initialize a git repository in %s: %v", root, err)
		}
	}
	p.Success("Created project %s", root)
	return nil
}
