package cli

import (
	"github.com/ksyq12/nginx-deploy/internal/executor"
	"github.com/ksyq12/nginx-deploy/internal/settings"
)

// Dependencies aggregates all CLI external dependencies for testability
type Dependencies struct {
	SettingsLoader SettingsLoader
	Executor       executor.CommandExecutor
}

// SettingsLoader builds the settings store for a command
type SettingsLoader interface {
	Load(opts settings.Options) (*settings.Store, error)
}

// Package-level dependencies (can be overridden for testing)
var deps = &Dependencies{
	SettingsLoader: &realSettingsLoader{},
	Executor:       executor.NewSystemExecutor(),
}

// SetDeps replaces the package dependencies (for testing)
func SetDeps(d *Dependencies) {
	deps = d
}

// GetDeps returns the current dependencies (for testing)
func GetDeps() *Dependencies {
	return deps
}

type realSettingsLoader struct{}

func (r *realSettingsLoader) Load(opts settings.Options) (*settings.Store, error) {
	return settings.Load(opts)
}
