package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	deployerrors "github.com/ksyq12/nginx-deploy/internal/errors"
	"github.com/ksyq12/nginx-deploy/internal/nginx"
	"github.com/ksyq12/nginx-deploy/internal/output"
)

func init() {
	color.NoColor = true
}

func deploySettings() map[string]any {
	return map[string]any{
		"application_name":  "myapp",
		"stage":             "production",
		"deploy_to":         "/var/www/myapp",
		"domain":            "app.example.com",
		"user":              "deploy",
		"nginx_server_name": "example.com www.example.com",
	}
}

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	output.SetOutput(&buf)
	t.Cleanup(func() { output.SetOutput(nil) })
	return &buf
}

func TestLoadSettings(t *testing.T) {
	h := NewTestHelper(t, "/srv/myapp", deploySettings())
	configFile = "deploy/production.yml"
	overrides = []string{"stage=staging"}

	s, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings failed: %v", err)
	}
	if s.String("application_name") != "myapp" {
		t.Errorf("unexpected application_name: %q", s.String("application_name"))
	}

	if len(h.Loader.Opts) != 1 {
		t.Fatalf("expected 1 load, got %d", len(h.Loader.Opts))
	}
	opts := h.Loader.Opts[0]
	if opts.Dir != "/srv/myapp" || opts.File != "deploy/production.yml" {
		t.Errorf("unexpected options: %+v", opts)
	}
	if len(opts.Overrides) != 1 || opts.Overrides[0] != "stage=staging" {
		t.Errorf("unexpected overrides: %v", opts.Overrides)
	}
}

func TestLoadSettings_Error(t *testing.T) {
	h := NewTestHelper(t, t.TempDir(), nil)
	h.Loader.LoadErr = deployerrors.Config("bad settings file")

	_, err := loadSettings()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "failed to load settings") {
		t.Errorf("unexpected error: %v", err)
	}
	var deployErr *deployerrors.DeployError
	if !deployerrors.As(err, &deployErr) || deployErr.Code != deployerrors.ErrCodeConfig {
		t.Errorf("expected CONFIG error in chain, got %v", err)
	}
}

func TestRunInstall(t *testing.T) {
	dir := t.TempDir()
	NewTestHelper(t, dir, nil)
	buf := captureOutput(t)

	if err := runInstall(nil, nil); err != nil {
		t.Fatalf("runInstall failed: %v", err)
	}

	path := filepath.Join(dir, "config", "deploy", "templates", "nginx.conf.template")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("template not installed: %v", err)
	}
	if !strings.Contains(buf.String(), path) {
		t.Errorf("output should mention %s: %s", path, buf.String())
	}

	err := runInstall(nil, nil)
	if !deployerrors.Is(err, deployerrors.ErrTemplateExists) {
		t.Errorf("expected ErrTemplateExists on second install, got %v", err)
	}
}

func TestRunInstall_Simulate(t *testing.T) {
	dir := t.TempDir()
	h := NewTestHelper(t, dir, nil)
	h.SetSimulate(true)
	captureOutput(t)

	if err := runInstall(nil, nil); err != nil {
		t.Fatalf("runInstall failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config")); !os.IsNotExist(err) {
		t.Error("simulate should not create files")
	}
}

func TestRunPrint(t *testing.T) {
	NewTestHelper(t, t.TempDir(), deploySettings())
	buf := captureOutput(t)

	if err := runPrint(nil, nil); err != nil {
		t.Fatalf("runPrint failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"upstream puma_myapp_production {",
		"server unix:/var/www/myapp/shared/tmp/sockets/puma.sock fail_timeout=0;",
		"server_name example.com www.example.com;",
		"rewrite ^(.*)$ /robots-production.txt break;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestRunSetup(t *testing.T) {
	h := NewTestHelper(t, t.TempDir(), deploySettings())
	buf := captureOutput(t)

	if err := runSetup(nil, nil); err != nil {
		t.Fatalf("runSetup failed: %v", err)
	}

	calls := h.Executor.Calls
	if len(calls) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(calls))
	}
	for _, c := range calls {
		if c.Name != "ssh" || c.Args[0] != "deploy@app.example.com" {
			t.Errorf("expected ssh to deploy@app.example.com, got %s %v", c.Name, c.Args[:1])
		}
	}

	cmds := h.Commands()
	if !strings.HasPrefix(cmds[0], "echo -ne 'upstream puma_myapp_production {") ||
		!strings.HasSuffix(cmds[0], "' | sudo tee /etc/nginx/sites-available/myapp_production.conf > /dev/null") {
		t.Errorf("unexpected write command: %.100s", cmds[0])
	}
	if cmds[1] != "sudo ln -nfs /etc/nginx/sites-available/myapp_production.conf /etc/nginx/sites-enabled/myapp_production.conf" {
		t.Errorf("unexpected link command: %s", cmds[1])
	}
	if cmds[2] != "sudo service nginx restart" {
		t.Errorf("unexpected restart command: %s", cmds[2])
	}

	out := buf.String()
	if !strings.Contains(out, "-----> Installing nginx config file to /etc/nginx/sites-available/myapp_production.conf") {
		t.Errorf("missing install comment:\n%s", out)
	}
	if !strings.Contains(out, "nginx configured at") {
		t.Errorf("missing success message:\n%s", out)
	}
}

func TestRunSetup_Simulate(t *testing.T) {
	h := NewTestHelper(t, t.TempDir(), deploySettings())
	h.SetSimulate(true)
	buf := captureOutput(t)

	if err := runSetup(nil, nil); err != nil {
		t.Fatalf("runSetup failed: %v", err)
	}
	if len(h.Executor.Calls) != 0 {
		t.Errorf("simulate should not execute, got %d calls", len(h.Executor.Calls))
	}
	if !strings.Contains(buf.String(), "[deploy@app.example.com] $ sudo service nginx restart") {
		t.Errorf("simulate should print commands:\n%s", buf.String())
	}
}

func TestRunSetup_HostRequired(t *testing.T) {
	values := deploySettings()
	delete(values, "domain")
	h := NewTestHelper(t, t.TempDir(), values)
	captureOutput(t)

	err := runSetup(nil, nil)
	if !deployerrors.Is(err, deployerrors.ErrHostRequired) {
		t.Errorf("expected ErrHostRequired, got %v", err)
	}
	if len(h.Executor.Calls) != 0 {
		t.Errorf("expected no commands, got %d", len(h.Executor.Calls))
	}
}

func TestRunSetup_CommandFails(t *testing.T) {
	h := NewTestHelper(t, t.TempDir(), deploySettings())
	h.Executor.ExecuteFunc = func(name string, args ...string) ([]byte, error) {
		return []byte("sudo: a password is required"), errors.New("exit status 1")
	}
	captureOutput(t)

	err := runSetup(nil, nil)
	if !deployerrors.Is(err, deployerrors.ErrCommandFailed) {
		t.Fatalf("expected ErrCommandFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "a password is required") {
		t.Errorf("error should carry command output: %v", err)
	}
	if len(h.Executor.Calls) != 1 {
		t.Errorf("expected the script to stop after the first failure, got %d calls", len(h.Executor.Calls))
	}
}

func TestReportError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		verbose  bool
		wantHint bool
	}{
		{"command failure", deployerrors.CommandFailed("sudo nginx -t", errors.New("exit status 1")), false, true},
		{"command failure when verbose", deployerrors.CommandFailed("sudo nginx -t", errors.New("exit status 1")), true, false},
		{"settings error", deployerrors.Config("bad settings file"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureOutput(t)
			verbose = tt.verbose
			t.Cleanup(func() { verbose = false })

			reportError(tt.err)

			if !strings.Contains(buf.String(), tt.err.Error()) {
				t.Errorf("error not printed:\n%s", buf.String())
			}
			if got := strings.Contains(buf.String(), "--verbose"); got != tt.wantHint {
				t.Errorf("hint shown = %v, want %v:\n%s", got, tt.wantHint, buf.String())
			}
		})
	}
}

func TestRunService(t *testing.T) {
	for _, action := range nginx.Actions {
		t.Run(action, func(t *testing.T) {
			h := NewTestHelper(t, t.TempDir(), deploySettings())
			buf := captureOutput(t)

			if err := runService(action); err != nil {
				t.Fatalf("runService failed: %v", err)
			}

			cmds := h.Commands()
			if len(cmds) != 1 || cmds[0] != "sudo service nginx "+action {
				t.Errorf("unexpected commands: %v", cmds)
			}
			comment := strings.ToUpper(action[:1]) + action[1:] + " Nginx"
			if !strings.Contains(buf.String(), comment) {
				t.Errorf("expected comment %q in output:\n%s", comment, buf.String())
			}
		})
	}
}

func TestRunService_Invalid(t *testing.T) {
	h := NewTestHelper(t, t.TempDir(), deploySettings())
	captureOutput(t)

	if err := runService("enable"); !deployerrors.Is(err, deployerrors.ErrInvalidAction) {
		t.Errorf("expected validation error, got %v", err)
	}
	if len(h.Executor.Calls) != 0 {
		t.Error("expected no commands")
	}
}

func TestServiceCommandsRegistered(t *testing.T) {
	for _, name := range append([]string{"test", "install", "print", "setup", "certbot", "settings", "doctor"}, nginx.Actions...) {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("command %s not registered", name)
		}
	}
}

func TestRunTest(t *testing.T) {
	h := NewTestHelper(t, t.TempDir(), deploySettings())
	captureOutput(t)

	if err := runTest(nil, nil); err != nil {
		t.Fatalf("runTest failed: %v", err)
	}
	if cmds := h.Commands(); len(cmds) != 1 || cmds[0] != "sudo nginx -t" {
		t.Errorf("unexpected commands: %v", cmds)
	}
}

func TestRunCertbot(t *testing.T) {
	tests := []struct {
		name     string
		values   map[string]any
		expected string
		wantErr  bool
	}{
		{
			name:     "domains from server name",
			values:   map[string]any{},
			expected: "sudo certbot --nginx --non-interactive --agree-tos --domains example.com,www.example.com",
		},
		{
			name: "explicit domains and email",
			values: map[string]any{
				"certbot_domains": "myapp.com",
				"certbot_email":   "ops@myapp.com",
			},
			expected: "sudo certbot --nginx --non-interactive --agree-tos --email ops@myapp.com --domains myapp.com",
		},
		{
			name:    "no domains",
			values:  map[string]any{"nginx_server_name": nil},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := deploySettings()
			for k, v := range tt.values {
				values[k] = v
			}
			h := NewTestHelper(t, t.TempDir(), values)
			captureOutput(t)

			err := runCertbot(nil, nil)
			if tt.wantErr {
				if !deployerrors.Is(err, deployerrors.ErrDomainsRequired) {
					t.Errorf("expected ErrDomainsRequired, got %v", err)
				}
				if len(h.Executor.Calls) != 0 {
					t.Error("no command should run without domains")
				}
				return
			}
			if err != nil {
				t.Fatalf("runCertbot failed: %v", err)
			}
			if cmds := h.Commands(); len(cmds) != 1 || cmds[0] != tt.expected {
				t.Errorf("unexpected commands: %v", cmds)
			}
		})
	}
}

func TestRunCertbotRenew(t *testing.T) {
	h := NewTestHelper(t, t.TempDir(), deploySettings())
	captureOutput(t)

	if err := runCertbotRenew(nil, nil); err != nil {
		t.Fatalf("runCertbotRenew failed: %v", err)
	}
	if cmds := h.Commands(); len(cmds) != 1 || cmds[0] != "sudo certbot renew --non-interactive" {
		t.Errorf("unexpected commands: %v", cmds)
	}
}

func TestRunSettings(t *testing.T) {
	t.Run("all settings", func(t *testing.T) {
		NewTestHelper(t, t.TempDir(), deploySettings())
		buf := captureOutput(t)

		if err := runSettings(nil, nil); err != nil {
			t.Fatalf("runSettings failed: %v", err)
		}
		out := buf.String()
		for _, want := range []string{
			"nginx_path: /etc/nginx\n",
			"nginx_config: /etc/nginx/sites-available/myapp_production.conf\n",
			"nginx_use_ssl: true\n",
			"certbot_email: null\n",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected %q in:\n%s", want, out)
			}
		}
	})

	t.Run("selected keys", func(t *testing.T) {
		NewTestHelper(t, t.TempDir(), deploySettings())
		buf := captureOutput(t)

		if err := runSettings(nil, []string{"current_path"}); err != nil {
			t.Fatalf("runSettings failed: %v", err)
		}
		if buf.String() != "current_path: /var/www/myapp/current\n" {
			t.Errorf("unexpected output: %q", buf.String())
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		NewTestHelper(t, t.TempDir(), deploySettings())
		captureOutput(t)

		err := runSettings(nil, []string{"no_such_setting"})
		if !deployerrors.Is(err, deployerrors.ErrSettingNotFound) {
			t.Errorf("expected ErrSettingNotFound, got %v", err)
		}
		if err != nil && !strings.Contains(err.Error(), "no_such_setting") {
			t.Errorf("error should name the key: %v", err)
		}
	})
}
