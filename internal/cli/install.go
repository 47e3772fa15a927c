package cli

import (
	"github.com/ksyq12/nginx-deploy/internal/nginx"
	"github.com/ksyq12/nginx-deploy/internal/output"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Copy the nginx template into the project",
	Long: `Copy the bundled nginx template to config/deploy/templates/nginx.conf.template
so it can be customized. An existing template is never overwritten.

Examples:
  nginx-deploy install
  nginx-deploy install --dir ~/src/myapp`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	l := newLocator()

	if simulate {
		output.Info("Would copy the bundled template to %s", l.OverridePath())
		return nil
	}

	dest, err := nginx.Install(l)
	if err != nil {
		return err
	}

	output.Success("Copied nginx template to %s", dest)
	return nil
}
