// Package testutil provides test utilities for integration tests
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/firefly-engineering/berth-ctl/internal/app"
	"github.com/firefly-engineering/berth-ctl/internal/audit"
	"github.com/firefly-engineering/berth-ctl/internal/config"
	"github.com/firefly-engineering/berth-ctl/internal/health"
	"github.com/firefly-engineering/berth-ctl/internal/system"
)

// TestEnv holds the test environment
type TestEnv struct {
	T        *testing.T
	TmpDir   string
	Paths    *config.Paths
	FS       *system.MockFS
	Executor *system.MockExecutor
	Pinger   *health.MockPinger
	Audit    *audit.Logger
	App      *app.App
	cleanup  func()
}

// NewTestEnv creates a new test environment with an in-memory filesystem,
// a mock executor and a mock pinger. Paths point into a temporary
// directory on disk.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()
	paths := config.NewPaths(filepath.Join(tmpDir, "config"), filepath.Join(tmpDir, "state"))

	for _, dir := range []string{
		paths.ConfigDir,
		paths.DefinitionsDir,
		paths.StateDir,
		paths.ContainersDir,
		paths.AuditDir,
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	fsys := system.NewMockFS()
	exec := system.NewMockExecutor()
	pinger := health.NewMockPinger()
	auditLog := audit.NewLogger(paths.AuditDir)

	testApp := app.New(
		app.WithPaths(paths),
		app.WithFileSystem(fsys),
		app.WithExecutor(exec),
		app.WithPinger(pinger),
		app.WithAudit(auditLog),
	)

	// Save original default and set test app
	originalDefault := app.Default
	app.SetDefault(testApp)

	env := &TestEnv{
		T:        t,
		TmpDir:   tmpDir,
		Paths:    paths,
		FS:       fsys,
		Executor: exec,
		Pinger:   pinger,
		Audit:    auditLog,
		App:      testApp,
		cleanup: func() {
			app.SetDefault(originalDefault)
		},
	}
	t.Cleanup(env.Cleanup)

	return env
}

// Cleanup restores the original app default
func (e *TestEnv) Cleanup() {
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
}

// AddDefinition writes a definition file into the definitions directory.
// file carries the extension that selects the format.
func (e *TestEnv) AddDefinition(file, content string) string {
	e.T.Helper()

	path := filepath.Join(e.Paths.DefinitionsDir, file)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.T.Fatalf("Failed to write definition: %v", err)
	}
	return path
}

// AddFixtureDefinition copies a definition fixture into the definitions
// directory, under the name the fixture declares.
func (e *TestEnv) AddFixtureDefinition(fixture string) string {
	e.T.Helper()

	data, err := LoadFixture(fixture)
	if err != nil {
		e.T.Fatalf("Failed to load fixture %s: %v", fixture, err)
	}
	def, err := LoadDefinitionFixture(fixture)
	if err != nil {
		e.T.Fatalf("Failed to parse fixture %s: %v", fixture, err)
	}
	return e.AddDefinition(def.Name+filepath.Ext(fixture), string(data))
}

// AddState saves container state
func (e *TestEnv) AddState(state *config.ContainerState) {
	e.T.Helper()

	if err := config.SaveState(e.Paths.ContainersDir, state); err != nil {
		e.T.Fatalf("Failed to save container state: %v", err)
	}
}

// GetState loads container state, nil when there is none
func (e *TestEnv) GetState(name string) *config.ContainerState {
	e.T.Helper()

	state, err := config.LoadState(e.Paths.ContainersDir, name)
	if err != nil {
		e.T.Fatalf("Failed to load container state: %v", err)
	}
	return state
}

// GenerateOnRun makes every executed tool write content to path in the
// mock filesystem, as asadmin or WLST would.
func (e *TestEnv) GenerateOnRun(path string, content []byte) {
	e.Executor.OnRun = func(cmd system.Command) error {
		e.FS.AddFile(path, content, 0644)
		return nil
	}
}
