// Package bootstrap creates a container's domain on disk.
//
// Process.Run walks a fixed sequence of steps with no back-edges:
//
//	clean -> invoke -> check-exit -> read-artifact -> build-patch-set ->
//	apply-patches -> write-artifact -> schedule-default-deployable
//
// The home directory is removed, the flavor's bootstrap tool runs, and a
// nonzero exit status stops the process before the generated artifact is
// touched. The artifact at <home>/<domain>/config/<file> is then patched
// in place and the administrative helper deployable is copied into the
// home and appended to the configuration's deployables.
//
// Nothing is retried. Every failure is returned as a single typed error:
// bootstrap-failed for a nonzero tool status, io-failure for filesystem
// problems, template-resolution for an incomplete script.
//
// Flavors plug in through the Flavor interface and describe their patch
// rules as a PatchProfile; the rules themselves are built here.
package bootstrap
