package cli

import (
	"os"

	deployerrors "github.com/ksyq12/nginx-deploy/internal/errors"
	"github.com/ksyq12/nginx-deploy/internal/logger"
	"github.com/ksyq12/nginx-deploy/internal/output"
	"github.com/spf13/cobra"
)

var (
	configFile string
	logFile    string
	overrides  []string
	projectDir string
	simulate   bool
	verbose    bool
	version    = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nginx-deploy",
	Short: "Deploy nginx configuration for puma applications",
	Long: `nginx-deploy renders an nginx server block for a puma-backed application,
installs it on the target host, manages the nginx service and obtains
certificates with certbot.

Settings are read from deploy.yml in the project directory, NGINX_DEPLOY_*
environment variables and --set key=value flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	// Initialize logger based on verbose flag (parsed by cobra)
	cobra.OnInitialize(func() {
		logger.Init(verbose)
		if logFile != "" {
			if err := logger.SetLogFile(logFile); err != nil {
				logger.Warn("Could not open log file %s: %v", logFile, err)
			}
		}
	})

	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

func reportError(err error) {
	output.Error("%v", err)
	if deployerrors.Is(err, deployerrors.ErrCommandFailed) && !verbose {
		output.Info("Re-run with --verbose to see the full command")
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Settings file (default: deploy.yml in the project directory)")
	rootCmd.PersistentFlags().StringArrayVarP(&overrides, "set", "s", nil, "Override a setting (key=value, repeatable)")
	rootCmd.PersistentFlags().StringVarP(&projectDir, "dir", "C", ".", "Project directory")
	rootCmd.PersistentFlags().BoolVarP(&simulate, "simulate", "n", false, "Print commands without running them")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write a rotated JSON log to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")
}
