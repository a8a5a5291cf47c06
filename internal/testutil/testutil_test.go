package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/firefly-engineering/berth-ctl/internal/app"
	"github.com/firefly-engineering/berth-ctl/internal/config"
	"github.com/firefly-engineering/berth-ctl/internal/system"
)

func TestNewTestEnv(t *testing.T) {
	env := NewTestEnv(t)

	if app.Default != env.App {
		t.Error("NewTestEnv should install its App as app.Default")
	}
	for _, dir := range []string{env.Paths.DefinitionsDir, env.Paths.ContainersDir, env.Paths.AuditDir} {
		if _, err := os.Stat(dir); err != nil {
			t.Errorf("directory %s missing: %v", dir, err)
		}
	}
}

func TestTestEnv_Cleanup(t *testing.T) {
	original := app.Default
	env := NewTestEnv(t)
	env.Cleanup()

	if app.Default != original {
		t.Error("Cleanup should restore app.Default")
	}
}

func TestTestEnv_Definitions(t *testing.T) {
	env := NewTestEnv(t)
	env.AddFixtureDefinition("glassfish.toml")

	def, err := config.LoadDefinition(env.Paths.DefinitionsDir, "shop")
	if err != nil {
		t.Fatalf("LoadDefinition() error = %v", err)
	}
	if def.Flavor != "glassfish" {
		t.Errorf("Flavor = %q, want glassfish", def.Flavor)
	}
}

func TestTestEnv_State(t *testing.T) {
	env := NewTestEnv(t)

	if env.GetState("shop") != nil {
		t.Error("GetState should return nil before AddState")
	}
	env.AddState(&config.ContainerState{Name: "shop", Flavor: "glassfish", OffsetApplied: true})
	if s := env.GetState("shop"); s == nil || !s.OffsetApplied {
		t.Errorf("GetState() = %+v", s)
	}
}

func TestTestEnv_GenerateOnRun(t *testing.T) {
	env := NewTestEnv(t)
	env.GenerateOnRun("/srv/home/domain.xml", []byte("<domain/>"))

	if _, _, err := env.Executor.Run(context.Background(), system.Command{Name: "asadmin"}); err != nil {
		t.Fatal(err)
	}
	if data, ok := env.FS.GetFile("/srv/home/domain.xml"); !ok || string(data) != "<domain/>" {
		t.Errorf("generated file = %q, %v", data, ok)
	}
}
