package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestSetup_Levels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		log       func(msg string, args ...any)
		wantShown bool
	}{
		{"debug hidden", false, Debug, false},
		{"debug verbose", true, Debug, true},
		{"warn", false, Warn, true},
		{"warn verbose", true, Warn, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Setup(tt.verbose, false, &buf)

			tt.log("bootstrap step", "config", "shop", "step", "invoke")

			shown := strings.Contains(buf.String(), "bootstrap step")
			if shown != tt.wantShown {
				t.Errorf("shown = %v, want %v (output %q)", shown, tt.wantShown, buf.String())
			}
			if Verbose != tt.verbose {
				t.Errorf("Verbose = %v, want %v", Verbose, tt.verbose)
			}
		})
	}
}

func TestSetup_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, true, &buf)

	Warn("readiness check failed", "url", "http://localhost:4848/management/domain")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["msg"] != "readiness check failed" {
		t.Errorf("msg = %v, want %q", record["msg"], "readiness check failed")
	}
	if record["url"] != "http://localhost:4848/management/domain" {
		t.Errorf("url = %v", record["url"])
	}
}

type fakeConfig struct{ name, flavor string }

func (c fakeConfig) Name() string   { return c.name }
func (c fakeConfig) Flavor() string { return c.flavor }

func TestForConfig(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, false, &buf)

	ForConfig(fakeConfig{"shop", "glassfish"}).Debug("invoking bootstrap tool", "step", "invoke")

	output := buf.String()
	for _, want := range []string{"invoking bootstrap tool", "config=shop", "flavor=glassfish", "step=invoke"} {
		if !strings.Contains(output, want) {
			t.Errorf("output = %q, missing %q", output, want)
		}
	}
}

func TestSetup_RelevelsExistingLoggers(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, false, &buf)
	log := ForConfig(fakeConfig{"shop", "glassfish"})

	Setup(false, false, &buf)
	log.Debug("hidden after quiet setup")

	if strings.Contains(buf.String(), "hidden after quiet setup") {
		t.Errorf("debug record written after Setup(false, ...): %q", buf.String())
	}
}

func TestSetup_NilWriter(t *testing.T) {
	Setup(false, false, nil)

	if Logger == nil {
		t.Error("Logger should not be nil after Setup with nil writer")
	}
}

func TestUserOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	SetUserOutput(&out, &errOut)
	defer SetUserOutput(nil, nil)

	UserInfo("loading %s", "glassfish")
	UserSuccess("configured %s", "gf1")
	UserWarning("offset %d", 100)
	UserError("failed: %v", "boom")

	if got := out.String(); got != "ℹ loading glassfish\n✓ configured gf1\n" {
		t.Errorf("stdout = %q", got)
	}
	if got := errOut.String(); got != "⚠ offset 100\n✗ failed: boom\n" {
		t.Errorf("stderr = %q", got)
	}
}
