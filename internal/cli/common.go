package cli

import (
	"fmt"

	"github.com/ksyq12/nginx-deploy/internal/executor"
	"github.com/ksyq12/nginx-deploy/internal/logger"
	"github.com/ksyq12/nginx-deploy/internal/script"
	"github.com/ksyq12/nginx-deploy/internal/settings"
	"github.com/ksyq12/nginx-deploy/internal/template"
)

// loadSettings builds a fresh store from the global flags
func loadSettings() (*settings.Store, error) {
	s, err := deps.SettingsLoader.Load(settings.Options{
		Dir:       projectDir,
		File:      configFile,
		Overrides: overrides,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return s, nil
}

// newLocator returns the template locator for the project directory
func newLocator() *template.Locator {
	return template.NewLocator(projectDir)
}

// runScript prints and runs sc against the host described by s
func runScript(sc *script.Script, s *settings.Store) error {
	host := executor.HostFromSettings(s)
	if simulate {
		logger.Debug("Simulating %d steps", len(sc.Steps))
	}
	return executor.NewRunner(deps.Executor, host, simulate).Run(sc)
}

// loadAndRun loads settings, builds a script with build and runs it
func loadAndRun(build func(*settings.Store) (*script.Script, error)) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	sc, err := build(s)
	if err != nil {
		return err
	}
	return runScript(sc, s)
}
