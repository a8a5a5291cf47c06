// Package flavor lists the container flavors berth-ctl can configure.
//
// Each flavor lives in its own subpackage. This package gathers them into
// a Descriptor so commands can look a flavor up by name without knowing
// which optional parts (bootstrap, readiness endpoint) it implements.
package flavor

import (
	"sort"

	"github.com/firefly-engineering/berth-ctl/internal/bootstrap"
	"github.com/firefly-engineering/berth-ctl/internal/capability"
	"github.com/firefly-engineering/berth-ctl/internal/container"
	"github.com/firefly-engineering/berth-ctl/internal/errors"
	"github.com/firefly-engineering/berth-ctl/internal/flavor/glassfish"
	"github.com/firefly-engineering/berth-ctl/internal/flavor/tomcat"
	"github.com/firefly-engineering/berth-ctl/internal/flavor/weblogic"
	"github.com/firefly-engineering/berth-ctl/internal/flavor/wildfly"
	"github.com/firefly-engineering/berth-ctl/internal/health"
	"github.com/firefly-engineering/berth-ctl/internal/monitor"
)

// Mechanism names how a flavor's domain is created.
type Mechanism string

const (
	MechanismNone   Mechanism = "none"
	MechanismDirect Mechanism = "direct"
	MechanismScript Mechanism = "script"
)

// Descriptor describes one flavor.
type Descriptor struct {
	Name        string
	Description string
	Mechanism   Mechanism

	Capability       func() *capability.Capability
	NewConfiguration func(name, home string, opts ...container.Option) *container.Configuration
	Defaults         map[string]string

	// Bootstrap is nil for flavors without a domain bootstrap.
	Bootstrap bootstrap.Flavor

	// Endpoint is nil for flavors without a management endpoint.
	Endpoint *monitor.Endpoint
}

// Monitor returns a readiness monitor for cfg, or nil when the flavor has
// no endpoint.
func (d *Descriptor) Monitor(cfg *container.Configuration, pinger health.Pinger) *monitor.Monitor {
	if d.Endpoint == nil {
		return nil
	}
	return monitor.New(cfg, *d.Endpoint, pinger)
}

var registry = map[string]*Descriptor{
	glassfish.Name: {
		Name:             glassfish.Name,
		Description:      "GlassFish standalone domain",
		Mechanism:        MechanismDirect,
		Capability:       glassfish.Capability,
		NewConfiguration: glassfish.NewConfiguration,
		Defaults:         glassfish.Defaults,
		Bootstrap:        glassfish.Flavor{},
		Endpoint:         &glassfish.Endpoint,
	},
	weblogic.Name: {
		Name:             weblogic.Name,
		Description:      "WebLogic domain created with WLST",
		Mechanism:        MechanismScript,
		Capability:       weblogic.Capability,
		NewConfiguration: weblogic.NewConfiguration,
		Defaults:         weblogic.Defaults,
		Bootstrap:        weblogic.Flavor{},
		Endpoint:         &weblogic.Endpoint,
	},
	wildfly.Name: {
		Name:             wildfly.Name,
		Description:      "WildFly standalone server",
		Mechanism:        MechanismNone,
		Capability:       wildfly.Capability,
		NewConfiguration: wildfly.NewConfiguration,
		Defaults:         wildfly.Defaults,
		Endpoint:         &wildfly.Endpoint,
	},
	tomcat.Name: {
		Name:             tomcat.Name,
		Description:      tomcat.Description,
		Mechanism:        MechanismNone,
		Capability:       tomcat.Capability,
		NewConfiguration: tomcat.NewConfiguration,
		Defaults:         tomcat.Defaults,
	},
}

// Lookup returns the descriptor for name.
func Lookup(name string) (*Descriptor, error) {
	d, ok := registry[name]
	if !ok {
		return nil, errors.FlavorNotFound(name)
	}
	return d, nil
}

// All returns every descriptor sorted by name.
func All() []*Descriptor {
	out := make([]*Descriptor, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the flavor names sorted.
func Names() []string {
	var names []string
	for _, d := range All() {
		names = append(names, d.Name)
	}
	return names
}
