package container

import (
	"fmt"
	"strconv"

	"github.com/firefly-engineering/berth-ctl/internal/capability"
	"github.com/firefly-engineering/berth-ctl/internal/deployable"
	"github.com/firefly-engineering/berth-ctl/internal/errors"
	"github.com/firefly-engineering/berth-ctl/internal/port"
	"github.com/firefly-engineering/berth-ctl/internal/property"
	"github.com/firefly-engineering/berth-ctl/internal/system"
)

// Type distinguishes configurations berth creates from ones that point at
// an already running server.
type Type string

const (
	TypeStandalone Type = "standalone"
	TypeRuntime    Type = "runtime"
)

// Configuration is the configuration state of one container.
type Configuration struct {
	name        string
	home        string
	installDir  string
	encoding    string
	typ         Type
	description string

	capability    *capability.Capability
	props         *property.Store
	offsetApplied bool
	deployables   deployable.List
}

// Option configures a Configuration.
type Option func(*Configuration)

// WithInstallDir sets the directory the container binaries are installed in.
func WithInstallDir(dir string) Option {
	return func(c *Configuration) {
		c.installDir = dir
	}
}

// WithEncoding sets the text encoding of generated configuration files.
func WithEncoding(name string) Option {
	return func(c *Configuration) {
		c.encoding = name
	}
}

// WithType sets the configuration type.
func WithType(t Type) Option {
	return func(c *Configuration) {
		c.typ = t
	}
}

// WithDescription overrides the text returned by String.
func WithDescription(d string) Option {
	return func(c *Configuration) {
		c.description = d
	}
}

// WithOffsetApplied marks the configured ports as already carrying the
// port offset, as for a configuration restored after ApplyPortOffset.
func WithOffsetApplied() Option {
	return func(c *Configuration) {
		c.offsetApplied = true
	}
}

// New creates a Configuration validated against capability.
func New(name, home string, c *capability.Capability, opts ...Option) *Configuration {
	cfg := &Configuration{
		name:       name,
		home:       home,
		encoding:   system.DefaultEncoding,
		typ:        TypeStandalone,
		capability: c,
		props:      property.NewStore(c),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *Configuration) Name() string                       { return c.name }
func (c *Configuration) Home() string                       { return c.home }
func (c *Configuration) InstallDir() string                 { return c.installDir }
func (c *Configuration) Encoding() string                   { return c.encoding }
func (c *Configuration) Type() Type                         { return c.typ }
func (c *Configuration) Capability() *capability.Capability { return c.capability }
func (c *Configuration) Properties() *property.Store        { return c.props }

// Flavor returns the name of the flavor the configuration belongs to.
func (c *Configuration) Flavor() string {
	return c.capability.Name()
}

func (c *Configuration) String() string {
	if c.description != "" {
		return c.description
	}
	return fmt.Sprintf("%s %s configuration", c.Flavor(), c.typ)
}

// SetProperty sets a property, rejecting keys the capability does not support.
func (c *Configuration) SetProperty(key, value string) error {
	return c.props.Set(key, value)
}

// Property returns the effective value of key.
func (c *Configuration) Property(key string) (string, bool) {
	return c.props.Get(key)
}

// IsOffsetApplied reports whether ApplyPortOffset has already shifted the
// configured ports.
func (c *Configuration) IsOffsetApplied() bool {
	return c.offsetApplied
}

// PortOffset returns the configured offset. Zero means none.
func (c *Configuration) PortOffset() (int, error) {
	return port.ParseOffset(c.props.GetOrDefault(property.PortOffset, ""))
}

// PortChange describes one port property shifted by ApplyPortOffset.
type PortChange struct {
	Key  string
	From int
	To   int
}

// PlanPortOffset computes the port values ApplyPortOffset would write
// without changing the configuration.
func (c *Configuration) PlanPortOffset() ([]PortChange, error) {
	offset, err := c.PortOffset()
	if err != nil {
		return nil, err
	}

	var changes []PortChange
	for _, key := range c.props.Keys() {
		if !property.IsPortKey(key) {
			continue
		}
		raw, _ := c.props.Get(key)
		if raw == "" {
			continue
		}
		p, err := port.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		to := p
		if !c.offsetApplied {
			to, err = port.Apply(p, offset)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
		}
		changes = append(changes, PortChange{Key: key, From: p, To: to})
	}
	return changes, nil
}

// ApplyPortOffset shifts every port property by the configured offset and
// marks the offset as applied. Calling it again does nothing. Either all
// ports are shifted or, on error, none are.
func (c *Configuration) ApplyPortOffset() error {
	if c.offsetApplied {
		return nil
	}

	changes, err := c.PlanPortOffset()
	if err != nil {
		return err
	}
	for _, ch := range changes {
		c.props.Rewrite(ch.Key, strconv.Itoa(ch.To))
	}
	c.offsetApplied = true
	return nil
}

// AddDeployable schedules d for deployment after bootstrap.
func (c *Configuration) AddDeployable(d deployable.Deployable) error {
	if !c.capability.SupportsDeployableKind(d.Kind) {
		return errors.UnsupportedDeployable(string(d.Kind), c.Flavor())
	}
	c.deployables.Append(d)
	return nil
}

// Deployables returns the scheduled deployables in order.
func (c *Configuration) Deployables() []deployable.Deployable {
	return c.deployables.Items()
}

// DeployableList returns the underlying list. Bootstrap appends the
// administrative helper to it directly.
func (c *Configuration) DeployableList() *deployable.List {
	return &c.deployables
}
