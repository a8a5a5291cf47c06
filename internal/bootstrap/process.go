package bootstrap

import (
	"context"
	"fmt"
	"os"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/firefly-engineering/berth-ctl/internal/container"
	"github.com/firefly-engineering/berth-ctl/internal/deployable"
	"github.com/firefly-engineering/berth-ctl/internal/errors"
	"github.com/firefly-engineering/berth-ctl/internal/logging"
	"github.com/firefly-engineering/berth-ctl/internal/patch"
	"github.com/firefly-engineering/berth-ctl/internal/resources"
	"github.com/firefly-engineering/berth-ctl/internal/system"
)

// Step names one stage of a bootstrap.
type Step string

const (
	StepClean                     Step = "clean"
	StepInvoke                    Step = "invoke"
	StepCheckExit                 Step = "check-exit"
	StepReadArtifact              Step = "read-artifact"
	StepBuildPatchSet             Step = "build-patch-set"
	StepApplyPatches              Step = "apply-patches"
	StepWriteArtifact             Step = "write-artifact"
	StepScheduleDefaultDeployable Step = "schedule-default-deployable"
	StepDone                      Step = "done"
)

// Steps lists the stages in execution order.
var Steps = []Step{
	StepClean,
	StepInvoke,
	StepCheckExit,
	StepReadArtifact,
	StepBuildPatchSet,
	StepApplyPatches,
	StepWriteArtifact,
	StepScheduleDefaultDeployable,
	StepDone,
}

// Observer is notified after each completed step.
type Observer func(step Step, detail string)

// Result describes a completed bootstrap.
type Result struct {
	Command  system.Command
	ExitCode int
	Output   []byte
	Artifact string
	Patches  patch.Report
	Helper   deployable.Deployable
}

// Process runs bootstraps against a filesystem and a process executor.
type Process struct {
	fs       system.FileSystem
	exec     system.CommandExecutor
	observer Observer
}

// Option configures a Process.
type Option func(*Process)

// WithFileSystem sets the filesystem collaborator.
func WithFileSystem(fsys system.FileSystem) Option {
	return func(p *Process) {
		p.fs = fsys
	}
}

// WithExecutor sets the bootstrap tool executor.
func WithExecutor(exec system.CommandExecutor) Option {
	return func(p *Process) {
		p.exec = exec
	}
}

// WithObserver registers a step observer.
func WithObserver(o Observer) Option {
	return func(p *Process) {
		p.observer = o
	}
}

// New creates a Process using the default OS collaborators unless
// overridden.
func New(opts ...Option) *Process {
	p := &Process{
		fs:   system.DefaultFS(),
		exec: system.DefaultExecutor(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ArtifactPath returns the location of the generated configuration file.
func ArtifactPath(cfg *container.Configuration, f Flavor) (string, error) {
	rel := f.DomainName(cfg) + "/config/" + f.ConfigFile()
	path, err := securejoin.SecureJoin(cfg.Home(), rel)
	if err != nil {
		return "", errors.IOFailure("resolve", rel, err)
	}
	return path, nil
}

// Run bootstraps cfg's domain.
func (p *Process) Run(ctx context.Context, cfg *container.Configuration, f Flavor) (*Result, error) {
	if cfg.Home() == "" {
		return nil, errors.ConfigError(fmt.Sprintf("configuration %s has no home directory", cfg.Name()), nil)
	}

	log := logging.ForConfig(cfg)
	res := &Result{}

	// Clean
	log.Debug("removing home directory", "step", StepClean, "home", cfg.Home())
	if err := p.fs.RemoveAll(cfg.Home()); err != nil && !os.IsNotExist(err) {
		return nil, errors.IOFailure("remove", cfg.Home(), err)
	}
	p.notify(StepClean, cfg.Home())

	// Invoke
	cmd, err := f.Invocation(ctx, cfg, p.fs)
	if err != nil {
		return nil, err
	}
	res.Command = cmd
	log.Debug("invoking bootstrap tool", "step", StepInvoke, "command", cmd.String())
	code, output, err := p.exec.Run(ctx, cmd)
	res.ExitCode = code
	res.Output = output
	if err != nil {
		failed := errors.BootstrapFailed(code)
		failed.Cause = err
		return nil, failed
	}
	p.notify(StepInvoke, cmd.String())

	// CheckExit
	if code != 0 {
		log.Debug("bootstrap tool failed", "step", StepCheckExit, "exit_code", code, "output", string(output))
		return nil, errors.BootstrapFailed(code)
	}
	p.notify(StepCheckExit, "exit code 0")

	// ReadArtifact
	artifact, err := ArtifactPath(cfg, f)
	if err != nil {
		return nil, err
	}
	res.Artifact = artifact
	log.Debug("reading generated artifact", "step", StepReadArtifact, "path", artifact, "encoding", cfg.Encoding())
	text, err := system.ReadTextFile(p.fs, artifact, cfg.Encoding())
	if err != nil {
		return nil, errors.IOFailure("read", artifact, err)
	}
	p.notify(StepReadArtifact, artifact)

	// BuildPatchSet
	rules := BuildPatchSet(cfg, f.PatchProfile())
	log.Debug("built patch set", "step", StepBuildPatchSet, "rules", len(rules))
	p.notify(StepBuildPatchSet, fmt.Sprintf("%d rules", len(rules)))

	// ApplyPatches
	patched, report := patch.Apply(text, rules, cfg.Properties())
	res.Patches = report
	for _, r := range report {
		log.Debug("patch rule", "step", StepApplyPatches, "rule", r.Name, "outcome", r.Outcome, "replacements", r.Replacements)
	}
	p.notify(StepApplyPatches, fmt.Sprintf("%d of %d rules applied", report.Applied(), len(report)))

	// WriteArtifact
	info, err := p.fs.Stat(artifact)
	perm := os.FileMode(0644)
	if err == nil {
		perm = info.Mode().Perm()
	}
	if err := system.WriteTextFile(p.fs, artifact, patched, cfg.Encoding(), perm); err != nil {
		return nil, errors.IOFailure("write", artifact, err)
	}
	log.Debug("wrote patched artifact", "step", StepWriteArtifact, "path", artifact)
	p.notify(StepWriteArtifact, artifact)

	// ScheduleDefaultDeployable
	dest, err := securejoin.SecureJoin(cfg.Home(), resources.HelperWAR)
	if err != nil {
		return nil, errors.IOFailure("resolve", resources.HelperWAR, err)
	}
	if err := resources.Copy(p.fs, resources.HelperWAR, dest); err != nil {
		return nil, errors.IOFailure("copy", dest, err)
	}
	res.Helper = deployable.Deployable{Kind: deployable.KindWAR, Path: dest}
	cfg.DeployableList().Append(res.Helper)
	log.Debug("scheduled helper deployable", "step", StepScheduleDefaultDeployable, "path", dest)
	p.notify(StepScheduleDefaultDeployable, dest)

	p.notify(StepDone, "")
	return res, nil
}

func (p *Process) notify(step Step, detail string) {
	if p.observer != nil {
		p.observer(step, detail)
	}
}
