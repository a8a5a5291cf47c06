// Package logging provides logging utilities for berth-ctl.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("loaded container", "name", name, "flavor", flavor)
//	logging.Warn("failed to write audit event", "error", err)
//
// ForConfig returns a logger that tags every record with the config and
// flavor of a container configuration:
//
//	log := logging.ForConfig(cfg)
//	log.Debug("invoking bootstrap tool", "step", "invoke")
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Creating domain %s...", domain)
//	logging.UserSuccess("Container %s configured", name)
//	logging.UserWarning("Port offset already applied")
//	logging.UserError("Bootstrap failed: %v", err)
//
// Output destinations default to stdout (info, success) and stderr
// (warning, error); SetUserOutput redirects them.
//
// # Status Indicators
//
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
