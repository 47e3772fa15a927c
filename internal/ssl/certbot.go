package ssl

import (
	"path"
	"strings"

	deployerrors "github.com/ksyq12/nginx-deploy/internal/errors"
	"github.com/ksyq12/nginx-deploy/internal/logger"
	"github.com/ksyq12/nginx-deploy/internal/script"
	"github.com/ksyq12/nginx-deploy/internal/settings"
)

// Cert represents the files certbot produces for a certificate
type Cert struct {
	Domain   string
	CertPath string
	KeyPath  string
}

// letsencryptDir is the base directory for Let's Encrypt certificates
const letsencryptDir = "/etc/letsencrypt/live"

// GetCertPaths returns the certificate paths for a domain on the target
func GetCertPaths(domain string) *Cert {
	return &Cert{
		Domain:   domain,
		CertPath: path.Join(letsencryptDir, domain, "fullchain.pem"),
		KeyPath:  path.Join(letsencryptDir, domain, "privkey.pem"),
	}
}

// Domains returns the comma-separated domain list for certbot: certbot_domains
// when it is non-empty, else nginx_server_name split on whitespace. Either
// setting may also be a YAML list.
func Domains(s *settings.Store) string {
	switch v := s.Fetch("certbot_domains").(type) {
	case []any:
		if domains := s.Strings("certbot_domains"); len(domains) > 0 {
			return strings.Join(domains, ",")
		}
	default:
		if domains := strings.TrimSpace(settings.Stringify(v)); domains != "" {
			return domains
		}
	}
	return strings.Join(s.Strings("nginx_server_name"), ",")
}

// Command builds the certbot invocation. It fails before building anything
// when no domains resolve.
func Command(s *settings.Store) (string, error) {
	domains := Domains(s)
	if domains == "" {
		return "", deployerrors.Validation("certbot domains required; set certbot_domains or nginx_server_name")
	}

	args := []string{"sudo certbot", "--nginx", "--non-interactive --agree-tos"}
	if email := strings.TrimSpace(s.String("certbot_email")); email != "" {
		args = append(args, "--email "+email)
	} else {
		logger.Debug("No certbot_email set, assuming certbot is already registered")
	}
	args = append(args, "--domains "+domains)
	if extra := strings.TrimSpace(s.String("certbot_extra_flags")); extra != "" {
		args = append(args, extra)
	}

	return strings.Join(args, " "), nil
}

// Certbot obtains a certificate with the nginx plugin on the target.
func Certbot(s *settings.Store) (*script.Script, error) {
	cmd, err := Command(s)
	if err != nil {
		return nil, err
	}

	return script.New().
		Comment("Obtaining certificate for " + Domains(s)).
		Command(cmd), nil
}

// Renew renews every certificate on the target
func Renew() *script.Script {
	return script.New().
		Comment("Renewing certificates").
		Command("sudo certbot renew --non-interactive")
}
