package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestBerthError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *BerthError
		wantMsg string
	}{
		{
			name:    "without cause",
			err:     New(ExitGeneralError, "something went wrong"),
			wantMsg: "something went wrong",
		},
		{
			name:    "with cause",
			err:     ConfigError("operation failed", fmt.Errorf("underlying error")),
			wantMsg: "operation failed: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestBerthError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := ConfigError("wrapped", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	errNoCause := New(ExitGeneralError, "no cause")
	if unwrapped := errNoCause.Unwrap(); unwrapped != nil {
		t.Errorf("Unwrap() = %v, want nil", unwrapped)
	}
}

func TestConstructors(t *testing.T) {
	cause := fmt.Errorf("disk full")

	tests := []struct {
		name     string
		err      *BerthError
		wantCode int
		wantKind Kind
		wantMsg  string
	}{
		{"flavor not found", FlavorNotFound("jetty"), ExitFlavorNotFound, KindFlavorNotFound, "flavor not found: jetty"},
		{"unsupported property", UnsupportedProperty("berth.foo", "glassfish"), ExitUnsupported, KindUnsupportedProperty, "property berth.foo is not supported by glassfish"},
		{"unsupported deployable", UnsupportedDeployable("rar", "tomcat-runtime"), ExitUnsupported, KindUnsupportedDeployable, "deployable kind rar is not supported by tomcat-runtime"},
		{"bootstrap failed", BootstrapFailed(1), ExitBootstrapFailed, KindBootstrapFailed, "could not create domain, bootstrap tool returned exit code 1"},
		{"io failure", IOFailure("write", "/tmp/domain.xml", cause), ExitIOFailure, KindIOFailure, "write /tmp/domain.xml failed: disk full"},
		{"template resolution", TemplateResolution("a.py", []string{"x", "y"}), ExitTemplateResolution, KindTemplateResolution, "template a.py has unresolved placeholders: x, y"},
		{"config", ConfigError("bad file", cause), ExitConfigError, KindConfig, "bad file: disk full"},
		{"not ready", NotReady("gf", nil), ExitNotReady, KindNotReady, "container gf is not ready"},
		{"validation", ValidationError("name required"), ExitGeneralError, KindGeneral, "name required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", tt.err.Kind, tt.wantKind)
			}
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestBootstrapFailed_CarriesToolExitCode(t *testing.T) {
	err := BootstrapFailed(42)
	if err.ToolExitCode != 42 {
		t.Errorf("ToolExitCode = %d, want 42", err.ToolExitCode)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "BerthError",
			err:      FlavorNotFound("test"),
			wantCode: ExitFlavorNotFound,
		},
		{
			name:     "wrapped BerthError",
			err:      fmt.Errorf("outer: %w", BootstrapFailed(3)),
			wantCode: ExitBootstrapFailed,
		},
		{
			name:     "regular error",
			err:      fmt.Errorf("some error"),
			wantCode: ExitGeneralError,
		},
		{
			name:     "nil error",
			err:      nil,
			wantCode: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.wantCode {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.wantCode)
			}
		})
	}
}

func TestIsKind(t *testing.T) {
	inner := IOFailure("read", "/x", fmt.Errorf("eof"))
	outer := ConfigError("bootstrap", inner)
	wrapped := fmt.Errorf("configure: %w", outer)

	if !IsKind(wrapped, KindIOFailure) {
		t.Error("IsKind should find io-failure through a config error")
	}
	if IsKind(wrapped, KindBootstrapFailed) {
		t.Error("IsKind should not report bootstrap-failed")
	}
	if IsKind(fmt.Errorf("plain"), KindGeneral) {
		t.Error("IsKind should be false for non-BerthError chains")
	}
	if IsKind(nil, KindGeneral) {
		t.Error("IsKind should be false for nil")
	}
}

func TestAs(t *testing.T) {
	berthErr := BootstrapFailed(2)
	wrapped := fmt.Errorf("wrapped: %w", berthErr)

	var target *BerthError
	if !As(wrapped, &target) {
		t.Fatal("As() should return true for wrapped BerthError")
	}
	if target.ToolExitCode != 2 {
		t.Errorf("target.ToolExitCode = %d, want 2", target.ToolExitCode)
	}

	regularErr := fmt.Errorf("regular error")
	if As(regularErr, &target) {
		t.Error("As() should return false for non-BerthError")
	}
}

func TestErrorChaining(t *testing.T) {
	root := fmt.Errorf("root cause")
	middle := ConfigError("config error", root)
	outer := fmt.Errorf("operation failed: %w", middle)

	if !errors.Is(outer, root) {
		t.Error("errors.Is should find root cause")
	}
	if !Is(outer, root) {
		t.Error("Is should find root cause")
	}

	var berthErr *BerthError
	if !errors.As(outer, &berthErr) {
		t.Fatal("errors.As should find BerthError")
	}
	if berthErr.Code != ExitConfigError {
		t.Errorf("Code = %d, want %d", berthErr.Code, ExitConfigError)
	}
}
