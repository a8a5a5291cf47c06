// Package capability declares which configuration properties and deployable
// kinds a container flavor accepts.
//
// A Capability is immutable once built. Each flavor builds its Capability
// once and hands the same instance to every configuration of that flavor:
//
//	var Capability = sync.OnceValue(func() *capability.Capability {
//	    return capability.New("glassfish", keys, kinds)
//	})
//
// Lookups never fail; an unknown key or kind simply reports false.
package capability
