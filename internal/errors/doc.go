// Package errors provides typed errors with exit codes for berth-ctl.
//
// # Error Types
//
// BerthError is the base error type that wraps an error with an exit code
// and a kind:
//
//	type BerthError struct {
//	    Code         int    // Exit code
//	    Kind         Kind   // Error category
//	    Message      string // User-facing message
//	    Cause        error  // Wrapped error
//	    ToolExitCode int    // Bootstrap tool status (bootstrap-failed only)
//	}
//
// # Exit Codes
//
//	ExitSuccess            = 0  // Success
//	ExitGeneralError       = 1  // General/unknown errors
//	ExitFlavorNotFound     = 2  // Unknown container flavor
//	ExitUnsupported        = 3  // Property or deployable kind not supported
//	ExitBootstrapFailed    = 4  // Bootstrap tool returned nonzero
//	ExitIOFailure          = 5  // Clean/read/write/copy failed
//	ExitTemplateResolution = 6  // Template placeholder without a value
//	ExitConfigError        = 7  // Definition file error
//	ExitNotReady           = 8  // Container never became reachable
//
// # Error Constructors
//
//	errors.UnsupportedProperty("berth.foo", "glassfish")
//	errors.BootstrapFailed(1)
//	errors.IOFailure("read", path, err)
//	errors.TemplateResolution("weblogic/domain/create-domain.py", missing)
//
// # Inspecting Errors
//
//	if errors.IsKind(err, errors.KindBootstrapFailed) { ... }
//	os.Exit(errors.GetExitCode(err))
package errors
