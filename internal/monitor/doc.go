// Package monitor decides whether a container is ready by probing its
// management endpoint.
//
// IsRunning is a single probe. It resolves the protocol, hostname, and
// management port from the configuration and builds
// <protocol>://<hostname>:<port><path>. The configured port offset is
// added only when one is set and the configuration has not already had it
// applied; the monitor reads that flag but never changes it.
//
// CheckAll probes many containers concurrently and Watch repeats CheckAll
// on an interval, recording readiness transitions in the audit log.
package monitor
