package nginx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	deployerrors "github.com/ksyq12/nginx-deploy/internal/errors"
	"github.com/ksyq12/nginx-deploy/internal/logger"
	"github.com/ksyq12/nginx-deploy/internal/script"
	"github.com/ksyq12/nginx-deploy/internal/settings"
	"github.com/ksyq12/nginx-deploy/internal/template"
)

// Actions are the service verbs nginx accepts.
var Actions = []string{"start", "stop", "restart", "reload", "status"}

var validate = validator.New()

// Install copies the bundled template to the project's override path and
// returns that path. An existing override is never overwritten.
func Install(l *template.Locator) (string, error) {
	dest := l.OverridePath()
	if _, err := os.Stat(dest); err == nil {
		return "", deployerrors.AlreadyExists(dest)
	}

	data, err := l.ReadBundled()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", deployerrors.WrapPath(deployerrors.ErrCodeInternal, "failed to create template directory", filepath.Dir(dest), err)
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return "", deployerrors.WrapPath(deployerrors.ErrCodeInternal, "failed to write template", dest, err)
	}

	logger.Info("Installed template %s (%d bytes)", dest, len(data))
	return dest, nil
}

// Print renders the template for inspection. The text is not escaped.
func Print(l *template.Locator, s *settings.Store) (string, error) {
	logger.Debug("Rendering %s", l.Source())
	return template.RenderLocated(l, s)
}

// Setup writes the rendered config to nginx_config on the target, links it
// into nginx_config_e and restarts nginx.
func Setup(l *template.Locator, s *settings.Store) (*script.Script, error) {
	text, err := Print(l, s)
	if err != nil {
		return nil, err
	}

	config := s.String("nginx_config")
	enabled := s.String("nginx_config_e")

	sc := script.New().
		Comment("Installing nginx config file to " + config).
		Command(fmt.Sprintf("echo -ne '%s' | sudo tee %s > /dev/null", template.Escape(text), config)).
		Comment("Symlinking nginx config file to " + enabled).
		Command(fmt.Sprintf("sudo ln -nfs %s %s", config, enabled))

	restart, err := Service("restart")
	if err != nil {
		return nil, err
	}
	return sc.Append(restart), nil
}

// Service controls the nginx service with one of Actions.
func Service(action string) (*script.Script, error) {
	if err := validate.Var(action, "required,oneof=start stop restart reload status"); err != nil {
		return nil, deployerrors.Validation(fmt.Sprintf("invalid service action %q, expected one of: %s",
			action, strings.Join(Actions, ", ")))
	}

	return script.New().
		Comment(strings.ToUpper(action[:1]) + action[1:] + " Nginx").
		Command("sudo service nginx " + action), nil
}

// Test checks the configuration on the target.
func Test() *script.Script {
	return script.New().
		Comment("Testing nginx configuration").
		Command("sudo nginx -t")
}
