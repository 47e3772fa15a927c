package cli

import (
	"github.com/ksyq12/nginx-deploy/internal/executor"
	"github.com/ksyq12/nginx-deploy/internal/settings"
)

// MockSettingsLoader is a test double for SettingsLoader
type MockSettingsLoader struct {
	Values  map[string]any
	LoadErr error
	Opts    []settings.Options
}

func (m *MockSettingsLoader) Load(opts settings.Options) (*settings.Store, error) {
	m.Opts = append(m.Opts, opts)
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	s := settings.NewWithDefaults()
	s.Merge(m.Values)
	return s, nil
}

// MockDependenciesBuilder helps create mock dependencies for tests
type MockDependenciesBuilder struct {
	deps *Dependencies
}

// NewMockDeps creates a new MockDependenciesBuilder with sensible defaults
func NewMockDeps() *MockDependenciesBuilder {
	return &MockDependenciesBuilder{
		deps: &Dependencies{
			SettingsLoader: &MockSettingsLoader{},
			Executor:       &executor.MockExecutor{},
		},
	}
}

// WithSettings sets the values the mock loader layers over the defaults
func (b *MockDependenciesBuilder) WithSettings(values map[string]any) *MockDependenciesBuilder {
	b.deps.SettingsLoader = &MockSettingsLoader{Values: values}
	return b
}

// WithSettingsLoader sets a custom settings loader
func (b *MockDependenciesBuilder) WithSettingsLoader(loader SettingsLoader) *MockDependenciesBuilder {
	b.deps.SettingsLoader = loader
	return b
}

// WithExecutor sets the command executor
func (b *MockDependenciesBuilder) WithExecutor(exec executor.CommandExecutor) *MockDependenciesBuilder {
	b.deps.Executor = exec
	return b
}

// Build returns the configured Dependencies
func (b *MockDependenciesBuilder) Build() *Dependencies {
	return b.deps
}

// TestHelper provides utilities for CLI tests
type TestHelper struct {
	T interface {
		Helper()
		Cleanup(func())
	}
	OldDeps  *Dependencies
	Executor *executor.MockExecutor
	Loader   *MockSettingsLoader
}

// NewTestHelper installs mock dependencies loading values and restores the
// previous dependencies and global flags on cleanup.
func NewTestHelper(t interface {
	Helper()
	Cleanup(func())
}, dir string, values map[string]any) *TestHelper {
	t.Helper()

	mockExec := &executor.MockExecutor{}
	mockLoader := &MockSettingsLoader{Values: values}

	helper := &TestHelper{
		T:        t,
		OldDeps:  deps,
		Executor: mockExec,
		Loader:   mockLoader,
	}

	deps = NewMockDeps().
		WithExecutor(mockExec).
		WithSettingsLoader(mockLoader).
		Build()

	oldDir, oldSimulate, oldConfig, oldOverrides := projectDir, simulate, configFile, overrides
	projectDir, simulate, configFile, overrides = dir, false, "", nil

	// Cleanup function to restore original deps
	t.Cleanup(func() {
		deps = helper.OldDeps
		projectDir, simulate, configFile, overrides = oldDir, oldSimulate, oldConfig, oldOverrides
	})

	return helper
}

// SetSimulate toggles --simulate for the test
func (h *TestHelper) SetSimulate(on bool) {
	simulate = on
}

// Commands returns the shell command of every executed call
func (h *TestHelper) Commands() []string {
	var cmds []string
	for _, c := range h.Executor.Calls {
		cmds = append(cmds, c.Last())
	}
	return cmds
}
