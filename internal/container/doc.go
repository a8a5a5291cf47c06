// Package container holds the Configuration of a managed container: its
// home directory, property store, capability, port-offset state, and the
// deployables scheduled after bootstrap.
//
// A Configuration is built once per container, filled with properties,
// then handed read-only to bootstrap and to the readiness monitor:
//
//	cfg := container.New("shop", "/var/lib/berth/homes/shop", glassfish.Capability(),
//	    container.WithInstallDir("/opt/glassfish7"),
//	)
//	err := cfg.SetProperty(property.JVMArgs, "-Xmx1024m")
//
// # Port Offset
//
// ApplyPortOffset shifts every port-valued property by berth.port.offset
// and marks the configuration as offset-applied. The flag only ever moves
// from false to true. The readiness monitor reads it to decide whether it
// still has to add the offset itself.
package container
