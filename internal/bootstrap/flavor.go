package bootstrap

import (
	"context"

	"github.com/firefly-engineering/berth-ctl/internal/container"
	"github.com/firefly-engineering/berth-ctl/internal/system"
)

// Flavor is the vendor-specific part of a bootstrap.
type Flavor interface {
	// Name returns the flavor name.
	Name() string

	// DomainName returns the name of the domain directory under home.
	DomainName(cfg *container.Configuration) string

	// ConfigFile returns the file name of the generated configuration
	// artifact inside <domain>/config.
	ConfigFile() string

	// Invocation prepares any files the bootstrap tool needs (password
	// files, rendered scripts) and returns the command to run.
	Invocation(ctx context.Context, cfg *container.Configuration, fsys system.FileSystem) (system.Command, error)

	// PatchProfile describes how the generated artifact is patched.
	// Nil means no patch rules.
	PatchProfile() *PatchProfile
}
