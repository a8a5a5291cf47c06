package weblogic

import (
	"context"
	"path/filepath"
	"sync"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/firefly-engineering/berth-ctl/internal/bootstrap"
	"github.com/firefly-engineering/berth-ctl/internal/capability"
	"github.com/firefly-engineering/berth-ctl/internal/container"
	"github.com/firefly-engineering/berth-ctl/internal/deployable"
	"github.com/firefly-engineering/berth-ctl/internal/errors"
	"github.com/firefly-engineering/berth-ctl/internal/monitor"
	"github.com/firefly-engineering/berth-ctl/internal/property"
	"github.com/firefly-engineering/berth-ctl/internal/script"
	"github.com/firefly-engineering/berth-ctl/internal/system"
)

const Name = "weblogic"

// WebLogic property keys.
const (
	Home       = "berth.weblogic.home"
	DomainName = "berth.weblogic.domain.name"
	DomainHome = "berth.weblogic.domain.home"
)

// ScriptFile is the name of the rendered WLST script inside home.
const ScriptFile = "create-domain.py"

// Template is the logical resource path of the WLST template.
const Template = "weblogic/domain/create-domain.py"

var Capability = sync.OnceValue(func() *capability.Capability {
	return capability.New(Name,
		capability.Merge(property.General, property.Remote, []string{Home, DomainName}),
		[]deployable.Kind{deployable.KindWAR, deployable.KindEAR, deployable.KindEJB, deployable.KindRAR},
	)
})

var Defaults = map[string]string{
	property.Username:    "weblogic",
	property.Password:    "weblogic1",
	property.Protocol:    "http",
	property.Hostname:    "localhost",
	property.ServletPort: "7001",
	DomainName:           "base_domain",
}

// Endpoint is the admin console on the admin server's listen port.
var Endpoint = monitor.Endpoint{PortKey: property.ServletPort, Path: "/console"}

func NewConfiguration(name, home string, opts ...container.Option) *container.Configuration {
	cfg := container.New(name, home, Capability(), opts...)
	for k, v := range Defaults {
		cfg.Properties().SetDefault(k, v)
	}
	return cfg
}

// Flavor implements bootstrap.Flavor.
type Flavor struct {
	// Loader overrides the embedded template loader.
	Loader script.Loader
}

func (Flavor) Name() string                          { return Name }
func (Flavor) ConfigFile() string                    { return "config.xml" }
func (Flavor) PatchProfile() *bootstrap.PatchProfile { return nil }

func (Flavor) DomainName(cfg *container.Configuration) string {
	return cfg.Properties().GetOrDefault(DomainName, Defaults[DomainName])
}

// wlsHome returns the WebLogic server directory, defaulting to the
// installation directory.
func wlsHome(cfg *container.Configuration) string {
	return cfg.Properties().GetOrDefault(Home, cfg.InstallDir())
}

// CreateDomainScript is the script variant that writes a new domain.
type CreateDomainScript struct {
	WebLogicHome string
	DomainHome   string
}

func (s CreateDomainScript) TemplatePath() string { return Template }

func (s CreateDomainScript) ContributeProperties(values map[string]string) {
	values[Home] = s.WebLogicHome
	values[DomainHome] = s.DomainHome
}

// Script returns the create-domain command for cfg.
func (f Flavor) Script(cfg *container.Configuration) (*script.Command, error) {
	domainHome, err := securejoin.SecureJoin(cfg.Home(), f.DomainName(cfg))
	if err != nil {
		return nil, errors.IOFailure("resolve", f.DomainName(cfg), err)
	}
	var opts []script.Option
	if f.Loader != nil {
		opts = append(opts, script.WithLoader(f.Loader))
	}
	return script.New(cfg, CreateDomainScript{
		WebLogicHome: filepath.ToSlash(wlsHome(cfg)),
		DomainHome:   filepath.ToSlash(domainHome),
	}, opts...), nil
}

// Invocation renders the WLST script into home and runs it with wlst.sh.
func (f Flavor) Invocation(ctx context.Context, cfg *container.Configuration, fsys system.FileSystem) (system.Command, error) {
	home := wlsHome(cfg)
	if home == "" {
		return system.Command{}, errors.ConfigError("weblogic needs an installation directory or "+Home, nil)
	}

	cmd, err := f.Script(cfg)
	if err != nil {
		return system.Command{}, err
	}
	if err := fsys.MkdirAll(cfg.Home(), 0755); err != nil {
		return system.Command{}, errors.IOFailure("create", cfg.Home(), err)
	}
	dest, err := securejoin.SecureJoin(cfg.Home(), ScriptFile)
	if err != nil {
		return system.Command{}, errors.IOFailure("resolve", ScriptFile, err)
	}
	if err := cmd.WriteTo(fsys, dest, 0644); err != nil {
		return system.Command{}, err
	}

	return system.Command{
		Name: filepath.Join(home, "common", "bin", "wlst.sh"),
		Args: []string{dest},
	}, nil
}
