package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/firefly-engineering/berth-ctl/internal/capability"
	"github.com/firefly-engineering/berth-ctl/internal/container"
	"github.com/firefly-engineering/berth-ctl/internal/deployable"
	"github.com/firefly-engineering/berth-ctl/internal/errors"
	"github.com/firefly-engineering/berth-ctl/internal/property"
)

const shopTOML = `name = "shop"
flavor = "glassfish"
install_dir = "/opt/glassfish"
encoding = "ISO-8859-1"

[properties]
"berth.java.home" = "/usr/lib/jvm/java-8"
"berth.port.offset" = "100"

[[deployables]]
kind = "war"
path = "/srv/apps/shop.war"

[[deployables]]
kind = "EAR"
path = "/srv/apps/billing.ear"
`

const shopYAML = `name: shop
flavor: glassfish
install_dir: /opt/glassfish
properties:
  berth.java.home: /usr/lib/jvm/java-8
  berth.port.offset: "100"
deployables:
  - kind: war
    path: /srv/apps/shop.war
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestDefaultPaths(t *testing.T) {
	paths := DefaultPaths()

	if paths.ConfigDir != DefaultConfigDir {
		t.Errorf("ConfigDir = %q, want %q", paths.ConfigDir, DefaultConfigDir)
	}
	if paths.StateDir != DefaultStateDir {
		t.Errorf("StateDir = %q, want %q", paths.StateDir, DefaultStateDir)
	}
	if paths.DefinitionsDir != filepath.Join(DefaultConfigDir, "containers") {
		t.Errorf("DefinitionsDir = %q", paths.DefinitionsDir)
	}
	if paths.ContainersDir != filepath.Join(DefaultStateDir, "containers") {
		t.Errorf("ContainersDir = %q", paths.ContainersDir)
	}
	if paths.HomesDir != filepath.Join(DefaultStateDir, "homes") {
		t.Errorf("HomesDir = %q", paths.HomesDir)
	}
	if paths.AuditDir != filepath.Join(DefaultStateDir, "audit") {
		t.Errorf("AuditDir = %q", paths.AuditDir)
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"shop", false},
		{"shop-2", false},
		{"a_b", false},
		{"", true},
		{"Shop", true},
		{"-shop", true},
		{"../etc", true},
		{"a/b", true},
		{strings.Repeat("a", 64), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.name)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
		})
	}
}

func TestSafePath(t *testing.T) {
	base := t.TempDir()

	if _, err := safePath(base, "/etc/passwd", ""); err == nil {
		t.Error("expected error for absolute name")
	}
	if _, err := safePath(base, "../escape", ".json"); err == nil {
		t.Error("expected error for name with separators")
	}

	got, err := safePath(base, "shop", ".json")
	if err != nil {
		t.Fatalf("safePath() error = %v", err)
	}
	if got != filepath.Join(base, "shop.json") {
		t.Errorf("safePath() = %q, want %q", got, filepath.Join(base, "shop.json"))
	}
}

func TestSafePath_SymlinkStaysInside(t *testing.T) {
	base := t.TempDir()
	if err := os.Symlink("/etc", filepath.Join(base, "link")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	got, err := safePath(base, "link", "")
	if err != nil {
		t.Fatalf("safePath() error = %v", err)
	}
	if !strings.HasPrefix(got, base) {
		t.Errorf("safePath() = %q, escapes %q", got, base)
	}
}

func TestLoadDefinitionFile_TOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "shop.toml", shopTOML)

	def, err := LoadDefinitionFile(path)
	if err != nil {
		t.Fatalf("LoadDefinitionFile() error = %v", err)
	}

	if def.Name != "shop" {
		t.Errorf("Name = %q, want shop", def.Name)
	}
	if def.Flavor != "glassfish" {
		t.Errorf("Flavor = %q, want glassfish", def.Flavor)
	}
	if def.InstallDir != "/opt/glassfish" {
		t.Errorf("InstallDir = %q, want /opt/glassfish", def.InstallDir)
	}
	if def.Encoding != "ISO-8859-1" {
		t.Errorf("Encoding = %q, want ISO-8859-1", def.Encoding)
	}
	if def.Properties[property.JavaHome] != "/usr/lib/jvm/java-8" {
		t.Errorf("Properties[java.home] = %q", def.Properties[property.JavaHome])
	}
	if len(def.Deployables) != 2 {
		t.Fatalf("len(Deployables) = %d, want 2", len(def.Deployables))
	}
	if def.Deployables[1].Path != "/srv/apps/billing.ear" {
		t.Errorf("Deployables[1].Path = %q", def.Deployables[1].Path)
	}
	if def.Source != path {
		t.Errorf("Source = %q, want %q", def.Source, path)
	}
}

func TestLoadDefinitionFile_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "shop.yaml", shopYAML)

	def, err := LoadDefinitionFile(path)
	if err != nil {
		t.Fatalf("LoadDefinitionFile() error = %v", err)
	}
	if def.Properties[property.PortOffset] != "100" {
		t.Errorf("Properties[port.offset] = %q, want 100", def.Properties[property.PortOffset])
	}
	if len(def.Deployables) != 1 || def.Deployables[0].Kind != deployable.KindWAR {
		t.Errorf("Deployables = %v", def.Deployables)
	}
}

func TestLoadDefinitionFile_NameFromFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "billing.yml", "flavor: wildfly\n")

	def, err := LoadDefinitionFile(path)
	if err != nil {
		t.Fatalf("LoadDefinitionFile() error = %v", err)
	}
	if def.Name != "billing" {
		t.Errorf("Name = %q, want billing", def.Name)
	}
}

func TestLoadDefinitionFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"bad toml", "a.toml", "name = "},
		{"bad yaml", "a.yaml", "name: [unclosed"},
		{"no flavor", "a.toml", "name = \"a\"\n"},
		{"relative home", "a.toml", "flavor = \"glassfish\"\nhome = \"relative\"\n"},
		{"bad kind", "a.toml", "flavor = \"glassfish\"\n[[deployables]]\nkind = \"zip\"\npath = \"/x.zip\"\n"},
		{"missing path", "a.toml", "flavor = \"glassfish\"\n[[deployables]]\nkind = \"war\"\n"},
		{"unsupported format", "a.json", "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)
			if _, err := LoadDefinitionFile(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadDefinition(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "shop.yaml", shopYAML)

	def, err := LoadDefinition(dir, "shop")
	if err != nil {
		t.Fatalf("LoadDefinition(shop) error = %v", err)
	}
	if def.Source != filepath.Join(dir, "shop.yaml") {
		t.Errorf("Source = %q", def.Source)
	}

	byPath, err := LoadDefinition("/nonexistent", filepath.Join(dir, "shop.yaml"))
	if err != nil {
		t.Fatalf("LoadDefinition(path) error = %v", err)
	}
	if byPath.Name != "shop" {
		t.Errorf("Name = %q, want shop", byPath.Name)
	}

	if _, err := LoadDefinition(dir, "missing"); err == nil {
		t.Error("expected error for missing definition")
	}
	if _, err := LoadDefinition(dir, "../shop"); err == nil {
		t.Error("expected error for traversal")
	}
}

func TestListDefinitions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "shop.toml", shopTOML)
	writeFile(t, dir, "billing.yaml", "flavor: wildfly\n")
	writeFile(t, dir, "broken.toml", "name = ")
	writeFile(t, dir, "notes.txt", "ignored")

	defs, err := ListDefinitions(dir)
	if err != nil {
		t.Fatalf("ListDefinitions() error = %v", err)
	}
	if len(defs) != 2 {
		t.Errorf("len(defs) = %d, want 2", len(defs))
	}

	defs, err = ListDefinitions(filepath.Join(dir, "missing"))
	if err != nil || defs != nil {
		t.Errorf("ListDefinitions(missing) = %v, %v; want nil, nil", defs, err)
	}
}

func TestDefinition_HomeDir(t *testing.T) {
	paths := NewPaths("/etc/berth", "/var/lib/berth-test")

	def := &Definition{Name: "shop", Flavor: "glassfish"}
	got, err := def.HomeDir(paths)
	if err != nil {
		t.Fatal(err)
	}
	if got != "/var/lib/berth-test/homes/shop" {
		t.Errorf("HomeDir() = %q, want /var/lib/berth-test/homes/shop", got)
	}

	def.Home = "/srv/shop"
	if got, _ := def.HomeDir(paths); got != "/srv/shop" {
		t.Errorf("HomeDir() = %q, want /srv/shop", got)
	}
}

func newConfiguration(opts ...container.Option) *container.Configuration {
	caps := capability.New("test",
		capability.Merge(property.General, property.Remote),
		[]deployable.Kind{deployable.KindWAR},
	)
	return container.New("shop", "/srv/shop", caps, opts...)
}

func TestDefinition_Apply(t *testing.T) {
	def := &Definition{
		Name:       "shop",
		Flavor:     "test",
		Properties: map[string]string{property.Hostname: "app01", property.PortOffset: "100"},
		Deployables: []deployable.Deployable{
			{Kind: "WAR", Path: "/srv/apps/shop.war"},
		},
	}
	cfg := newConfiguration(def.Options()...)

	if err := def.Apply(cfg); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got, _ := cfg.Property(property.Hostname); got != "app01" {
		t.Errorf("hostname = %q, want app01", got)
	}
	deps := cfg.Deployables()
	if len(deps) != 1 || deps[0].Kind != deployable.KindWAR {
		t.Errorf("Deployables() = %v", deps)
	}
}

func TestDefinition_ApplyUnsupported(t *testing.T) {
	def := &Definition{
		Name:       "shop",
		Flavor:     "test",
		Properties: map[string]string{"berth.weblogic.home": "/opt/wls", "berth.zzz": "x"},
	}
	err := def.Apply(newConfiguration())
	if !errors.IsKind(err, errors.KindUnsupportedProperty) {
		t.Fatalf("Apply() error = %v, want unsupported property", err)
	}
	if !strings.Contains(err.Error(), "berth.weblogic.home") {
		t.Errorf("error should name the first key in order: %v", err)
	}

	def = &Definition{
		Name:        "shop",
		Flavor:      "test",
		Deployables: []deployable.Deployable{{Kind: deployable.KindEAR, Path: "/x.ear"}},
	}
	if err := def.Apply(newConfiguration()); !errors.IsKind(err, errors.KindUnsupportedDeployable) {
		t.Errorf("Apply() error = %v, want unsupported deployable", err)
	}
}

func TestDefinition_Options(t *testing.T) {
	def := &Definition{InstallDir: "/opt/gf", Encoding: "ISO-8859-1", Description: "Shop"}
	cfg := newConfiguration(def.Options()...)

	if cfg.InstallDir() != "/opt/gf" {
		t.Errorf("InstallDir() = %q", cfg.InstallDir())
	}
	if cfg.Encoding() != "ISO-8859-1" {
		t.Errorf("Encoding() = %q", cfg.Encoding())
	}
	if cfg.String() != "Shop" {
		t.Errorf("String() = %q", cfg.String())
	}
}

func TestState_SaveLoadDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "containers")

	state := &ContainerState{Name: "shop", Flavor: "glassfish", OffsetApplied: true, LastRunID: "run-1"}
	if err := SaveState(dir, state); err != nil {
		t.Fatalf("SaveState() error = %v", err)
	}

	loaded, err := LoadState(dir, "shop")
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if loaded == nil || !loaded.OffsetApplied || loaded.LastRunID != "run-1" {
		t.Errorf("LoadState() = %+v", loaded)
	}

	if err := DeleteState(dir, "shop"); err != nil {
		t.Fatalf("DeleteState() error = %v", err)
	}
	loaded, err = LoadState(dir, "shop")
	if err != nil || loaded != nil {
		t.Errorf("LoadState() after delete = %+v, %v; want nil, nil", loaded, err)
	}
}

func TestState_Invalid(t *testing.T) {
	dir := t.TempDir()

	if err := SaveState(dir, &ContainerState{Name: "../x", Flavor: "glassfish"}); err == nil {
		t.Error("expected error for invalid name")
	}
	if err := SaveState(dir, &ContainerState{Name: "shop"}); err == nil {
		t.Error("expected error for missing flavor")
	}

	writeFile(t, dir, "bad.json", "not json")
	if _, err := LoadState(dir, "bad"); err == nil {
		t.Error("expected error for invalid JSON")
	}
	if _, err := LoadState(dir, "/abs"); err == nil {
		t.Error("expected error for absolute name")
	}
}
