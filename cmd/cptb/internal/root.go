package internal

import (
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var (
	configDir string
	kitID     string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "cptb",
	Short: "cptb is a C++ project helper",
	Long: `cptb scaffolds CMake based C++ projects and builds them with a kit,
a named pairing of a compiler and a CMake installation declared in kits.json.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetOutputLevel(log.Ldebug)
		} else {
			log.SetOutputLevel(log.Linfo)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default $CPTB_CONFIG_DIR or ~/.cptb)")
	rootCmd.PersistentFlags().StringVarP(&kitID, "kit", "k", "", "Kit to use instead of the default kit")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
