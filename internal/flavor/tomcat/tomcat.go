// Package tomcat provides the Tomcat runtime flavor, which describes an
// already running Tomcat reached over HTTP. It has no local home to
// bootstrap and no management endpoint to probe.
package tomcat

import (
	"sync"

	"github.com/firefly-engineering/berth-ctl/internal/capability"
	"github.com/firefly-engineering/berth-ctl/internal/container"
	"github.com/firefly-engineering/berth-ctl/internal/deployable"
	"github.com/firefly-engineering/berth-ctl/internal/property"
)

const Name = "tomcat-runtime"

// Description is the display name of every Tomcat runtime configuration.
const Description = "Tomcat Runtime Configuration"

var Capability = sync.OnceValue(func() *capability.Capability {
	return capability.New(Name,
		capability.Merge([]string{property.Protocol, property.Hostname, property.ServletPort}, property.Remote),
		[]deployable.Kind{deployable.KindWAR},
	)
})

var Defaults = map[string]string{
	property.Protocol:    "http",
	property.Hostname:    "localhost",
	property.ServletPort: "8080",
}

// NewConfiguration creates a runtime configuration. Options are applied
// after the runtime type and description, so callers may override them.
func NewConfiguration(name, home string, opts ...container.Option) *container.Configuration {
	opts = append([]container.Option{container.WithType(container.TypeRuntime), container.WithDescription(Description)}, opts...)
	cfg := container.New(name, home, Capability(), opts...)
	for k, v := range Defaults {
		cfg.Properties().SetDefault(k, v)
	}
	return cfg
}
