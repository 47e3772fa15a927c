package cli

import (
	"github.com/ksyq12/nginx-deploy/internal/nginx"
	"github.com/ksyq12/nginx-deploy/internal/output"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Install the rendered configuration on the target and restart nginx",
	Long: `Render the nginx template, write it to nginx_config on the target host,
link it into sites-enabled and restart nginx.

Examples:
  nginx-deploy setup
  nginx-deploy setup --simulate
  nginx-deploy setup --set domain=app.example.com --set user=deploy`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	sc, err := nginx.Setup(newLocator(), s)
	if err != nil {
		return err
	}

	if err := runScript(sc, s); err != nil {
		return err
	}

	if !simulate {
		output.Success("nginx configured at %s", s.String("nginx_config"))
	}
	return nil
}

