// Package property defines the configuration property keys shared by every
// container flavor and the Store that holds a configuration's values.
//
// Keys are dot-namespaced and carry the "berth." prefix; flavor-specific
// keys add the flavor name ("berth.glassfish.adminPort"). A Store layers
// explicitly set values over flavor defaults:
//
//	store := property.NewStore(glassfish.Capability())
//	store.SetDefault(property.Hostname, "localhost") // trusted, never checked
//	err := store.Set(property.JVMArgs, "-Xmx1024m")  // checked against the capability
//	host := store.GetOrDefault(property.Hostname, "127.0.0.1")
//
// Set rejects keys the capability does not recognize with an
// unsupported-property error and leaves the store untouched.
package property
