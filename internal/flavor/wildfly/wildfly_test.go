package wildfly

import (
	"testing"

	"github.com/firefly-engineering/berth-ctl/internal/container"
	"github.com/firefly-engineering/berth-ctl/internal/health"
	"github.com/firefly-engineering/berth-ctl/internal/monitor"
	"github.com/firefly-engineering/berth-ctl/internal/property"
)

func TestEndpointURL(t *testing.T) {
	tests := []struct {
		name   string
		offset string
		opts   []container.Option
		want   string
	}{
		{"default", "", nil, "http://localhost:9990/console"},
		{"offset pending", "100", nil, "http://localhost:10090/console"},
		{"offset applied", "100", []container.Option{container.WithOffsetApplied()}, "http://localhost:9990/console"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfiguration("jboss", "/srv/wildfly", tt.opts...)
			if tt.offset != "" {
				if err := cfg.SetProperty(property.PortOffset, tt.offset); err != nil {
					t.Fatal(err)
				}
			}
			got, err := monitor.New(cfg, Endpoint, health.NewMockPinger()).URL()
			if err != nil {
				t.Fatalf("URL() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("URL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyPortOffset(t *testing.T) {
	cfg := NewConfiguration("jboss", "/srv/wildfly")
	if err := cfg.SetProperty(property.PortOffset, "10"); err != nil {
		t.Fatal(err)
	}
	if err := cfg.ApplyPortOffset(); err != nil {
		t.Fatalf("ApplyPortOffset() error = %v", err)
	}
	if got, _ := cfg.Property(ManagementHTTPPort); got != "10000" {
		t.Errorf("%s = %q, want 10000", ManagementHTTPPort, got)
	}
	if got, _ := cfg.Property(property.ServletPort); got != "8090" {
		t.Errorf("%s = %q, want 8090", property.ServletPort, got)
	}
}
