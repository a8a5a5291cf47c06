package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/berth-ctl/internal/app"
	"github.com/firefly-engineering/berth-ctl/internal/config"
	"github.com/firefly-engineering/berth-ctl/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	stateDir   string
	configDir  string
)

var rootCmd = &cobra.Command{
	Use:   "berth-ctl",
	Short: "Application server configuration CLI",
	Long: `berth-ctl prepares Java application server containers from definition files.

For each container it can:
  - Create the domain with the vendor tool (asadmin, WLST)
  - Patch the generated configuration for the Java home and JVM arguments
  - Schedule the deployables and the bundled helper application
  - Probe the management endpoint until the container is ready`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
		if stateDir != "" || configDir != "" {
			app.SetDefault(app.New(app.WithPaths(resolvePaths())))
		}
	},
}

// resolvePaths applies the directory flags over the defaults.
func resolvePaths() *config.Paths {
	cfgDir, stDir := config.DefaultConfigDir, config.DefaultStateDir
	if configDir != "" {
		cfgDir = configDir
	}
	if stateDir != "" {
		stDir = stateDir
	}
	return config.NewPaths(cfgDir, stDir)
}

// Execute runs the root command and reports a failure on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logError("%v", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&stateDir, "state-dir", "", "State directory (default "+config.DefaultStateDir+")")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default "+config.DefaultConfigDir+")")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	logError   = logging.UserError
)
