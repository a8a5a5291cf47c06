package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes for berth-ctl
const (
	ExitSuccess            = 0
	ExitGeneralError       = 1
	ExitFlavorNotFound     = 2
	ExitUnsupported        = 3
	ExitBootstrapFailed    = 4
	ExitIOFailure          = 5
	ExitTemplateResolution = 6
	ExitConfigError        = 7
	ExitNotReady           = 8
)

// Kind identifies the category of a BerthError independently of its exit code.
type Kind string

const (
	KindGeneral               Kind = "general"
	KindFlavorNotFound        Kind = "flavor-not-found"
	KindUnsupportedProperty   Kind = "unsupported-property"
	KindUnsupportedDeployable Kind = "unsupported-deployable"
	KindBootstrapFailed       Kind = "bootstrap-failed"
	KindIOFailure             Kind = "io-failure"
	KindTemplateResolution    Kind = "template-resolution"
	KindConfig                Kind = "config"
	KindNotReady              Kind = "not-ready"
)

// BerthError is the base error type for berth-ctl
type BerthError struct {
	Code    int
	Kind    Kind
	Message string
	Cause   error

	// ToolExitCode is the status returned by an external bootstrap tool.
	// Only meaningful for KindBootstrapFailed.
	ToolExitCode int
}

func (e *BerthError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *BerthError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *BerthError) ExitCode() int {
	return e.Code
}

// New creates a new BerthError
func New(code int, message string) *BerthError {
	return &BerthError{
		Code:    code,
		Kind:    KindGeneral,
		Message: message,
	}
}

// Common error constructors

// FlavorNotFound returns an error for an unknown container flavor
func FlavorNotFound(name string) *BerthError {
	return &BerthError{
		Code:    ExitFlavorNotFound,
		Kind:    KindFlavorNotFound,
		Message: fmt.Sprintf("flavor not found: %s", name),
	}
}

// UnsupportedProperty returns an error for a key the flavor's capability does not recognize
func UnsupportedProperty(key, flavor string) *BerthError {
	return &BerthError{
		Code:    ExitUnsupported,
		Kind:    KindUnsupportedProperty,
		Message: fmt.Sprintf("property %s is not supported by %s", key, flavor),
	}
}

// UnsupportedDeployable returns an error for a deployable kind the flavor does not accept
func UnsupportedDeployable(kind, flavor string) *BerthError {
	return &BerthError{
		Code:    ExitUnsupported,
		Kind:    KindUnsupportedDeployable,
		Message: fmt.Sprintf("deployable kind %s is not supported by %s", kind, flavor),
	}
}

// BootstrapFailed returns an error for a bootstrap tool that exited with a nonzero status
func BootstrapFailed(exitCode int) *BerthError {
	return &BerthError{
		Code:         ExitBootstrapFailed,
		Kind:         KindBootstrapFailed,
		Message:      fmt.Sprintf("could not create domain, bootstrap tool returned exit code %d", exitCode),
		ToolExitCode: exitCode,
	}
}

// IOFailure returns an error for a filesystem operation during bootstrap
func IOFailure(op, path string, cause error) *BerthError {
	return &BerthError{
		Code:    ExitIOFailure,
		Kind:    KindIOFailure,
		Message: fmt.Sprintf("%s %s failed", op, path),
		Cause:   cause,
	}
}

// TemplateResolution returns an error for placeholders that have no value
func TemplateResolution(template string, missing []string) *BerthError {
	return &BerthError{
		Code:    ExitTemplateResolution,
		Kind:    KindTemplateResolution,
		Message: fmt.Sprintf("template %s has unresolved placeholders: %s", template, strings.Join(missing, ", ")),
	}
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *BerthError {
	return &BerthError{
		Code:    ExitConfigError,
		Kind:    KindConfig,
		Message: message,
		Cause:   cause,
	}
}

// NotReady returns an error for a container that did not become reachable in time
func NotReady(name string, cause error) *BerthError {
	return &BerthError{
		Code:    ExitNotReady,
		Kind:    KindNotReady,
		Message: fmt.Sprintf("container %s is not ready", name),
		Cause:   cause,
	}
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *BerthError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var berthErr *BerthError
	if errors.As(err, &berthErr) {
		return berthErr.ExitCode()
	}
	return ExitGeneralError
}

// IsKind reports whether any BerthError in err's chain has the given kind.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		var berthErr *BerthError
		if !errors.As(err, &berthErr) {
			return false
		}
		if berthErr.Kind == kind {
			return true
		}
		err = berthErr.Cause
	}
	return false
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
