package property

import (
	"strings"
)

// Prefix starts every property key.
const Prefix = "berth."

// General keys understood by every flavor that has a local configuration.
const (
	Protocol    = "berth.protocol"
	Hostname    = "berth.hostname"
	ServletPort = "berth.servlet.port"
	PortOffset  = "berth.port.offset"
	JavaHome    = "berth.java.home"
	JVMArgs     = "berth.jvmargs"
)

// Keys for containers reached through an administrative account.
const (
	Username = "berth.remote.username"
	Password = "berth.remote.password"
)

// General lists the keys every locally configured flavor supports.
var General = []string{Protocol, Hostname, ServletPort, PortOffset, JavaHome, JVMArgs}

// Remote lists the administrative account keys.
var Remote = []string{Username, Password}

// IsPortKey reports whether key holds a TCP port number. Port keys end
// in ".port" or in "Port" ("berth.glassfish.adminPort").
func IsPortKey(key string) bool {
	if key == PortOffset {
		return false
	}
	return strings.HasSuffix(key, ".port") || strings.HasSuffix(key, "Port")
}

// StripPrefix removes the "berth." prefix and, when given, the flavor
// segment that follows it.
//
//	StripPrefix("berth.glassfish.jms.port", "glassfish") == "jms.port"
func StripPrefix(key, flavor string) string {
	key = strings.TrimPrefix(key, Prefix)
	if flavor != "" {
		key = strings.TrimPrefix(key, flavor+".")
	}
	return key
}
