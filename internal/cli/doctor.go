package cli

import (
	"fmt"
	"regexp"
	"strings"

	deployerrors "github.com/ksyq12/nginx-deploy/internal/errors"
	"github.com/ksyq12/nginx-deploy/internal/executor"
	"github.com/ksyq12/nginx-deploy/internal/nginx"
	"github.com/ksyq12/nginx-deploy/internal/output"
	"github.com/ksyq12/nginx-deploy/internal/settings"
	"github.com/ksyq12/nginx-deploy/internal/ssl"
	"github.com/ksyq12/nginx-deploy/internal/template"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check local tools and settings",
	Long: `Run diagnostic checks before deploying.

Checks:
  - Local tools (ssh)
  - Required settings (application_name, deploy_to, domain)
  - SSL settings when nginx_use_ssl is on
  - Template source and rendering

Examples:
  nginx-deploy doctor
  nginx-deploy doctor --set stage=staging
  nginx-deploy doctor --yaml`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

var doctorYAML bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorYAML, "yaml", false, "Output the report as YAML")
	rootCmd.AddCommand(doctorCmd)
}

// CheckResult represents a single diagnostic check result
type CheckResult struct {
	Status  string `yaml:"status"` // "success", "warning", "error"
	Message string `yaml:"message"`
}

// DoctorReport contains all diagnostic results
type DoctorReport struct {
	Tools    []CheckResult `yaml:"tools"`
	Settings []CheckResult `yaml:"settings"`
	Template []CheckResult `yaml:"template"`
}

// Failed reports whether any check is an error
func (r *DoctorReport) Failed() bool {
	for _, group := range [][]CheckResult{r.Tools, r.Settings, r.Template} {
		for _, c := range group {
			if c.Status == "error" {
				return true
			}
		}
	}
	return false
}

func runDoctor(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	report := &DoctorReport{
		Tools:    checkTools(deps.Executor),
		Settings: checkSettings(s),
		Template: checkTemplate(newLocator(), s),
	}

	if doctorYAML {
		if err := output.YAML(report); err != nil {
			return err
		}
	} else {
		displayDoctorResults(report)
	}

	if report.Failed() {
		return deployerrors.ErrChecksFailed
	}
	return nil
}

var sshVersionPattern = regexp.MustCompile(`OpenSSH_([\w.]+)`)

func checkTools(exec executor.CommandExecutor) []CheckResult {
	results := []CheckResult{}

	if _, err := exec.LookPath("ssh"); err == nil {
		version := "unknown"
		if out, err := exec.Execute("ssh", "-V"); err == nil {
			if matches := sshVersionPattern.FindStringSubmatch(string(out)); len(matches) >= 2 {
				version = matches[1]
			}
		}
		results = append(results, CheckResult{
			Status:  "success",
			Message: fmt.Sprintf("ssh installed (%s)", version),
		})
	} else {
		results = append(results, CheckResult{Status: "error", Message: "ssh not installed"})
	}

	return results
}

func checkSettings(s *settings.Store) []CheckResult {
	results := []CheckResult{}

	required := []struct {
		key    string
		status string
		hint   string
	}{
		{"application_name", "error", "config unit and log names need it"},
		{"deploy_to", "error", "socket and root paths derive from it"},
		{"domain", "warning", "remote commands need it"},
	}
	for _, r := range required {
		if v := s.String(r.key); v != "" {
			results = append(results, CheckResult{Status: "success", Message: fmt.Sprintf("%s: %s", r.key, v)})
		} else {
			results = append(results, CheckResult{Status: r.status, Message: fmt.Sprintf("%s not set (%s)", r.key, r.hint)})
		}
	}

	env := settings.Stringify(settings.Environment(s))
	if env == "" || env == "false" {
		results = append(results, CheckResult{Status: "warning", Message: "environment disabled, robots.txt rewrite skipped"})
	} else {
		results = append(results, CheckResult{Status: "success", Message: "environment: " + env})
	}

	domains := ssl.Domains(s)

	if s.Bool("nginx_use_ssl") {
		var cert *ssl.Cert
		if first, _, _ := strings.Cut(domains, ","); first != "" {
			cert = ssl.GetCertPaths(first)
		}
		for _, key := range []string{"nginx_ssl_certificate", "nginx_ssl_certificate_key"} {
			if s.String(key) != "" {
				continue
			}
			msg := key + " not set while nginx_use_ssl is on"
			if cert != nil {
				suggested := cert.CertPath
				if key == "nginx_ssl_certificate_key" {
					suggested = cert.KeyPath
				}
				msg += fmt.Sprintf(" (certbot writes %s)", suggested)
			}
			results = append(results, CheckResult{Status: "warning", Message: msg})
		}
	}

	if domains != "" {
		results = append(results, CheckResult{Status: "success", Message: "certbot domains: " + domains})
	} else {
		results = append(results, CheckResult{Status: "warning", Message: "no certbot domains (set certbot_domains or nginx_server_name)"})
	}

	return results
}

func checkTemplate(l *template.Locator, s *settings.Store) []CheckResult {
	results := []CheckResult{{Status: "success", Message: "template: " + l.Source()}}

	if _, err := nginx.Print(l, s); err != nil {
		results = append(results, CheckResult{Status: "error", Message: fmt.Sprintf("template does not render: %v", err)})
	} else {
		results = append(results, CheckResult{Status: "success", Message: "template renders"})
	}

	return results
}

func displayDoctorResults(report *DoctorReport) {
	output.Print("Checking local tools...")
	for _, check := range report.Tools {
		displayCheck(check)
	}
	output.Print("")

	output.Print("Checking settings...")
	for _, check := range report.Settings {
		displayCheck(check)
	}
	output.Print("")

	output.Print("Checking template...")
	for _, check := range report.Template {
		displayCheck(check)
	}
}

func displayCheck(check CheckResult) {
	switch check.Status {
	case "success":
		output.Success("%s", check.Message)
	case "warning":
		output.Warn("%s", check.Message)
	case "error":
		output.Error("%s", check.Message)
	}
}
