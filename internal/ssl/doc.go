// Package ssl builds the certbot commands that obtain and renew Let's Encrypt
// certificates on the deployment target.
//
// Certbot runs on the target host, so the package never executes anything
// itself; it returns script steps for an executor.Runner.
//
// # Prerequisites
//
// Certbot and its nginx plugin must be installed on the target:
//
//	# Ubuntu/Debian
//	sudo apt install certbot python3-certbot-nginx
//
// # Domains
//
// Domains come from certbot_domains (already comma separated) or, when that
// is unset or empty, from nginx_server_name:
//
//	nginx_server_name: "example.com www.example.com"
//	// --domains example.com,www.example.com
//
// No domains is an error, reported before any command is built.
//
// # Flags
//
// The command always carries --nginx --non-interactive --agree-tos.
// certbot_email adds --email only when non-empty; without it certbot is
// assumed to be registered already. certbot_extra_flags is appended verbatim:
//
//	sudo certbot --nginx --non-interactive --agree-tos --email admin@example.com --domains example.com --dry-run
//
// # Certificate Paths
//
// Certificates are stored in Let's Encrypt's standard directory, which is
// what nginx_ssl_certificate and nginx_ssl_certificate_key usually point at:
//
//	/etc/letsencrypt/live/{domain}/fullchain.pem  (certificate chain)
//	/etc/letsencrypt/live/{domain}/privkey.pem    (private key)
package ssl
