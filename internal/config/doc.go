// Package config provides paths, container definitions and container state
// for berth-ctl.
//
// # Definitions
//
// A definition file describes one container to prepare. Definitions live in
// /etc/berth/containers as TOML or YAML, or are passed to a command by path:
//
//	name = "shop"
//	flavor = "glassfish"
//	install_dir = "/opt/glassfish4/glassfish"
//
//	[properties]
//	"berth.java.home" = "/usr/lib/jvm/java-8"
//	"berth.port.offset" = "100"
//
//	[[deployables]]
//	kind = "war"
//	path = "/srv/apps/shop.war"
//
// Properties are applied through the flavor's property store, so a key the
// flavor does not recognize fails when the configuration is built.
//
// # Container State
//
// ContainerState records, per container, whether the port offset has been
// applied and which run configured it last. It is stored as JSON in
// /var/lib/berth/containers/<name>.json.
//
// # Validation
//
// Definitions and states implement Validate(). Loading functions validate
// after parsing, and names are checked before any path is built from them.
package config
