package cli

import (
	deployerrors "github.com/ksyq12/nginx-deploy/internal/errors"
	"github.com/ksyq12/nginx-deploy/internal/output"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings [key...]",
	Short: "Show resolved settings",
	Long: `Print every setting after defaults, deploy.yml, environment and --set
have been applied, as YAML. Pass keys to show only those.

Examples:
  nginx-deploy settings
  nginx-deploy settings nginx_config nginx_config_e`,
	RunE: runSettings,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return output.YAML(s.Resolve())
	}

	selected := make(map[string]any, len(args))
	for _, key := range args {
		v, ok := s.Lookup(key)
		if !ok {
			return deployerrors.SettingNotFound(key)
		}
		selected[key] = v
	}
	return output.YAML(selected)
}
