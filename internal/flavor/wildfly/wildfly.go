// Package wildfly provides the WildFly flavor. WildFly configurations are
// monitored through the HTTP management interface and have no bootstrap.
package wildfly

import (
	"sync"

	"github.com/firefly-engineering/berth-ctl/internal/capability"
	"github.com/firefly-engineering/berth-ctl/internal/container"
	"github.com/firefly-engineering/berth-ctl/internal/deployable"
	"github.com/firefly-engineering/berth-ctl/internal/monitor"
	"github.com/firefly-engineering/berth-ctl/internal/property"
)

const Name = "wildfly"

// ManagementHTTPPort is the port of the HTTP management interface.
const ManagementHTTPPort = "berth.jboss.management-http.port"

var Capability = sync.OnceValue(func() *capability.Capability {
	return capability.New(Name,
		capability.Merge(property.General, property.Remote, []string{ManagementHTTPPort}),
		[]deployable.Kind{deployable.KindWAR, deployable.KindEAR, deployable.KindEJB, deployable.KindRAR, deployable.KindFile},
	)
})

var Defaults = map[string]string{
	property.Protocol:    "http",
	property.Hostname:    "localhost",
	property.ServletPort: "8080",
	ManagementHTTPPort:   "9990",
}

var Endpoint = monitor.Endpoint{PortKey: ManagementHTTPPort, Path: "/console"}

func NewConfiguration(name, home string, opts ...container.Option) *container.Configuration {
	cfg := container.New(name, home, Capability(), opts...)
	for k, v := range Defaults {
		cfg.Properties().SetDefault(k, v)
	}
	return cfg
}
