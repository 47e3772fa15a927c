package cli

import (
	"strings"

	"github.com/ksyq12/nginx-deploy/internal/nginx"
	"github.com/ksyq12/nginx-deploy/internal/script"
	"github.com/ksyq12/nginx-deploy/internal/settings"
	"github.com/spf13/cobra"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Check the nginx configuration on the target",
	Long: `Run nginx -t on the target host.

Examples:
  nginx-deploy test
  nginx-deploy test && nginx-deploy reload`,
	Args: cobra.NoArgs,
	RunE: runTest,
}

func init() {
	for _, action := range nginx.Actions {
		rootCmd.AddCommand(newServiceCmd(action))
	}
	rootCmd.AddCommand(testCmd)
}

// newServiceCmd builds the command for one nginx service action
func newServiceCmd(action string) *cobra.Command {
	return &cobra.Command{
		Use:   action,
		Short: strings.ToUpper(action[:1]) + action[1:] + " nginx on the target",
		Long: `Run "service nginx ` + action + `" on the target host.

Examples:
  nginx-deploy ` + action + `
  nginx-deploy ` + action + ` --simulate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runService(action)
		},
	}
}

func runService(action string) error {
	return loadAndRun(func(*settings.Store) (*script.Script, error) {
		return nginx.Service(action)
	})
}

func runTest(cmd *cobra.Command, args []string) error {
	return loadAndRun(func(*settings.Store) (*script.Script, error) {
		return nginx.Test(), nil
	})
}
