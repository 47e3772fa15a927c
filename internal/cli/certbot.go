package cli

import (
	"github.com/ksyq12/nginx-deploy/internal/output"
	"github.com/ksyq12/nginx-deploy/internal/script"
	"github.com/ksyq12/nginx-deploy/internal/settings"
	"github.com/ksyq12/nginx-deploy/internal/ssl"
	"github.com/spf13/cobra"
)

var certbotCmd = &cobra.Command{
	Use:   "certbot",
	Short: "Obtain a Let's Encrypt certificate with certbot",
	Long: `Run certbot with the nginx plugin on the target host.

Domains come from certbot_domains, or from nginx_server_name when that is
unset. certbot_email and certbot_extra_flags are passed along when set.

Examples:
  nginx-deploy certbot
  nginx-deploy certbot --set certbot_email=admin@example.com
  nginx-deploy certbot --set certbot_extra_flags=--dry-run`,
	Args: cobra.NoArgs,
	RunE: runCertbot,
}

var certbotRenewCmd = &cobra.Command{
	Use:   "renew",
	Short: "Renew certificates on the target",
	Long: `Run certbot renew on the target host.

Examples:
  nginx-deploy certbot renew`,
	Args: cobra.NoArgs,
	RunE: runCertbotRenew,
}

func init() {
	certbotCmd.AddCommand(certbotRenewCmd)
	rootCmd.AddCommand(certbotCmd)
}

func runCertbot(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	sc, err := ssl.Certbot(s)
	if err != nil {
		return err
	}

	if err := runScript(sc, s); err != nil {
		return err
	}

	if !simulate {
		domains := ssl.Domains(s)
		output.Success("Certificate issued for %s", domains)
	}
	return nil
}

func runCertbotRenew(cmd *cobra.Command, args []string) error {
	return loadAndRun(func(*settings.Store) (*script.Script, error) {
		return ssl.Renew(), nil
	})
}
