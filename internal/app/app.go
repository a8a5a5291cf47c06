// Package app provides the application context for berth-ctl.
// It allows dependency injection for testing.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/firefly-engineering/berth-ctl/internal/audit"
	"github.com/firefly-engineering/berth-ctl/internal/bootstrap"
	"github.com/firefly-engineering/berth-ctl/internal/config"
	"github.com/firefly-engineering/berth-ctl/internal/container"
	"github.com/firefly-engineering/berth-ctl/internal/errors"
	"github.com/firefly-engineering/berth-ctl/internal/flavor"
	"github.com/firefly-engineering/berth-ctl/internal/health"
	"github.com/firefly-engineering/berth-ctl/internal/logging"
	"github.com/firefly-engineering/berth-ctl/internal/monitor"
	"github.com/firefly-engineering/berth-ctl/internal/system"
)

// App holds the application dependencies
type App struct {
	// Paths holds the configured paths
	Paths *config.Paths

	// FS is used by the bootstrap for every file it touches
	FS system.FileSystem

	// Executor runs bootstrap tools
	Executor system.CommandExecutor

	// Pinger probes management endpoints
	Pinger health.Pinger

	// Audit records lifecycle events. Nil disables auditing.
	Audit *audit.Logger

	// Now returns the current time
	Now func() time.Time
}

// Option is a function that configures the App
type Option func(*App)

// WithPaths sets custom paths
func WithPaths(paths *config.Paths) Option {
	return func(a *App) {
		a.Paths = paths
	}
}

// WithFileSystem sets the filesystem used by bootstraps
func WithFileSystem(fsys system.FileSystem) Option {
	return func(a *App) {
		a.FS = fsys
	}
}

// WithExecutor sets the executor used to run bootstrap tools
func WithExecutor(exec system.CommandExecutor) Option {
	return func(a *App) {
		a.Executor = exec
	}
}

// WithPinger sets the pinger used by readiness monitors
func WithPinger(p health.Pinger) Option {
	return func(a *App) {
		a.Pinger = p
	}
}

// WithAudit sets a custom audit logger
func WithAudit(l *audit.Logger) Option {
	return func(a *App) {
		a.Audit = l
	}
}

// WithClock sets the time source
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.Now = now
	}
}

// New creates a new App with the given options.
// The audit logger defaults to one writing under Paths.AuditDir.
func New(opts ...Option) *App {
	app := &App{
		Paths:    config.DefaultPaths(),
		FS:       system.DefaultFS(),
		Executor: system.DefaultExecutor(),
		Pinger:   health.NewHTTPPinger(health.DefaultPingTimeout),
		Now:      time.Now,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.Audit == nil {
		app.Audit = audit.NewLogger(app.Paths.AuditDir)
	}

	return app
}

// Container is a loaded definition with its flavor and built configuration.
type Container struct {
	Definition *config.Definition
	Flavor     *flavor.Descriptor
	Config     *container.Configuration

	// State is nil until the container has been configured once.
	State *config.ContainerState
}

// Name returns the container name.
func (c *Container) Name() string {
	return c.Definition.Name
}

// Load resolves a definition by name or path and builds its configuration.
// A container whose port offset was applied before gets it applied again,
// so the configuration matches what was bootstrapped.
func (a *App) Load(arg string) (*Container, error) {
	def, err := config.LoadDefinition(a.Paths.DefinitionsDir, arg)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("cannot load definition %s", arg), err)
	}
	return a.Build(def)
}

// Build creates the configuration a definition describes.
func (a *App) Build(def *config.Definition) (*Container, error) {
	desc, err := flavor.Lookup(def.Flavor)
	if err != nil {
		return nil, err
	}

	home, err := def.HomeDir(a.Paths)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("invalid home for %s", def.Name), err)
	}

	cfg := desc.NewConfiguration(def.Name, home, def.Options()...)
	if err := def.Apply(cfg); err != nil {
		return nil, err
	}

	state, err := config.LoadState(a.Paths.ContainersDir, def.Name)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("cannot load state of %s", def.Name), err)
	}
	if state != nil && state.OffsetApplied {
		if err := cfg.ApplyPortOffset(); err != nil {
			return nil, errors.ConfigError(fmt.Sprintf("cannot restore port offset of %s", def.Name), err)
		}
	}

	logging.Debug("loaded container", "name", def.Name, "flavor", desc.Name, "home", home, "source", def.Source)
	return &Container{Definition: def, Flavor: desc, Config: cfg, State: state}, nil
}

// LoadAll loads every definition in the definitions directory.
func (a *App) LoadAll() ([]*Container, error) {
	defs, err := config.ListDefinitions(a.Paths.DefinitionsDir)
	if err != nil {
		return nil, errors.ConfigError("cannot list definitions", err)
	}
	containers := make([]*Container, 0, len(defs))
	for _, def := range defs {
		c, err := a.Build(def)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", def.Name, err)
		}
		containers = append(containers, c)
	}
	return containers, nil
}

func (a *App) bootstrapFlavor(c *Container) (bootstrap.Flavor, error) {
	if c.Flavor.Bootstrap == nil {
		return nil, errors.ConfigError(fmt.Sprintf("flavor %s has no domain bootstrap", c.Flavor.Name), nil)
	}
	if c.Config.Type() != container.TypeStandalone {
		return nil, errors.ConfigError(fmt.Sprintf("%s is not a standalone configuration", c.Name()), nil)
	}
	return c.Flavor.Bootstrap, nil
}

// Configure runs the bootstrap for c, records audit events and saves the
// container state.
func (a *App) Configure(ctx context.Context, c *Container, observer bootstrap.Observer) (*bootstrap.Result, error) {
	f, err := a.bootstrapFlavor(c)
	if err != nil {
		return nil, err
	}

	runID := audit.NewRunID()
	a.audit(audit.EventBootstrap, c.Name(), runID, fmt.Sprintf("flavor %s, home %s", c.Flavor.Name, c.Config.Home()))

	p := bootstrap.New(
		bootstrap.WithFileSystem(a.FS),
		bootstrap.WithExecutor(a.Executor),
		bootstrap.WithObserver(observer),
	)
	res, err := p.Run(ctx, c.Config, f)
	if err != nil {
		a.audit(audit.EventError, c.Name(), runID, err.Error())
		return nil, err
	}

	for _, r := range res.Patches {
		a.audit(audit.EventPatch, c.Name(), runID, fmt.Sprintf("%s: %s (%d)", r.Name, r.Outcome, r.Replacements))
	}
	for _, d := range c.Config.Deployables() {
		a.audit(audit.EventDeploy, c.Name(), runID, d.String())
	}

	state := &config.ContainerState{
		Name:          c.Name(),
		Flavor:        c.Flavor.Name,
		Home:          c.Config.Home(),
		OffsetApplied: c.Config.IsOffsetApplied(),
		LastRunID:     runID,
		ConfiguredAt:  a.Now().UTC().Format(time.RFC3339),
	}
	if err := config.SaveState(a.Paths.ContainersDir, state); err != nil {
		return nil, errors.IOFailure("save state", c.Name(), err)
	}
	c.State = state

	return res, nil
}

// Rendered is the bootstrap of a container as it would run.
type Rendered struct {
	Command system.Command

	// Files maps each file the bootstrap would write before running the
	// tool to its content.
	Files map[string]string
}

// Render prepares the bootstrap invocation of c without touching disk.
func (a *App) Render(ctx context.Context, c *Container) (*Rendered, error) {
	f, err := a.bootstrapFlavor(c)
	if err != nil {
		return nil, err
	}

	scratch := system.NewMockFS()
	cmd, err := f.Invocation(ctx, c.Config, scratch)
	if err != nil {
		return nil, err
	}

	out := &Rendered{Command: cmd, Files: make(map[string]string)}
	for _, path := range scratch.Files() {
		data, _ := scratch.GetFile(path)
		out.Files[path] = string(data)
	}
	return out, nil
}

// Monitor returns the readiness monitor for c, or nil when its flavor has
// no management endpoint.
func (a *App) Monitor(c *Container) *monitor.Monitor {
	return c.Flavor.Monitor(c.Config, a.Pinger)
}

// Status probes every container once, concurrently. Containers without an
// endpoint are reported as health.StatusNoEndpoint.
func (a *App) Status(ctx context.Context, containers []*Container) []monitor.CheckResult {
	results := make([]monitor.CheckResult, len(containers))
	var monitors []*monitor.Monitor
	var index []int
	for i, c := range containers {
		m := a.Monitor(c)
		if m == nil {
			results[i] = monitor.CheckResult{Name: c.Name(), Status: health.StatusNoEndpoint}
			continue
		}
		monitors = append(monitors, m)
		index = append(index, i)
	}

	for j, r := range monitor.CheckAll(ctx, monitors, monitor.DefaultConcurrency) {
		results[index[j]] = r
	}
	return results
}

// Wait polls c's monitor until it reports ready or opts.Timeout elapses.
// The outcome is recorded in the audit log.
func (a *App) Wait(ctx context.Context, c *Container, opts health.WaitOptions) (int, error) {
	m := a.Monitor(c)
	if m == nil {
		return 0, errors.ConfigError(fmt.Sprintf("flavor %s has no management endpoint", c.Flavor.Name), nil)
	}

	runID := ""
	if c.State != nil {
		runID = c.State.LastRunID
	}

	attempts, err := health.Wait(ctx, m.IsRunning, opts)
	if err != nil {
		a.audit(audit.EventError, c.Name(), runID, fmt.Sprintf("not ready after %d attempts", attempts))
		return attempts, errors.NotReady(c.Name(), err)
	}
	a.audit(audit.EventReady, c.Name(), runID, fmt.Sprintf("ready after %d attempts", attempts))
	return attempts, nil
}

// ApplyOffset shifts c's port properties by the configured offset and
// remembers that it did.
func (a *App) ApplyOffset(c *Container) ([]container.PortChange, error) {
	changes, err := c.Config.PlanPortOffset()
	if err != nil {
		return nil, err
	}
	if err := c.Config.ApplyPortOffset(); err != nil {
		return nil, err
	}

	state := c.State
	if state == nil {
		state = &config.ContainerState{Name: c.Name(), Flavor: c.Flavor.Name, Home: c.Config.Home()}
	}
	state.OffsetApplied = true
	if err := config.SaveState(a.Paths.ContainersDir, state); err != nil {
		return nil, errors.IOFailure("save state", c.Name(), err)
	}
	c.State = state
	return changes, nil
}

func (a *App) audit(t audit.EventType, name, runID, details string) {
	if a.Audit == nil {
		return
	}
	if err := a.Audit.LogEvent(t, name, runID, details); err != nil {
		logging.Warn("failed to write audit event", "container", name, "type", t, "error", err)
	}
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
