package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/moby/sys/atomicwriter"
	"gopkg.in/yaml.v3"

	"github.com/firefly-engineering/berth-ctl/internal/container"
	"github.com/firefly-engineering/berth-ctl/internal/deployable"
)

// nameRegex validates definition names.
// Names must start with a lowercase letter or digit, followed by lowercase letters, digits, underscores, or hyphens.
// Maximum length is 63 characters.
var nameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,62}$`)

// ValidateName checks if a definition name is valid.
// Valid names:
//   - Start with a lowercase letter or digit
//   - Contain only lowercase letters, digits, underscores, or hyphens
//   - Are between 1 and 63 characters long
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if !nameRegex.MatchString(name) {
		return fmt.Errorf("invalid name %q: must start with a lowercase letter or digit, contain only lowercase letters, digits, underscores, or hyphens, and be at most 63 characters", name)
	}

	return nil
}

// safePath joins name+suffix onto baseDir. The name must be a single path
// element; symlinks inside baseDir cannot lead outside of it.
func safePath(baseDir, name, suffix string) (string, error) {
	if filepath.IsAbs(name) {
		return "", fmt.Errorf("name cannot be an absolute path")
	}
	if filepath.Dir(name) != "." {
		return "", fmt.Errorf("name cannot contain path separators")
	}

	path, err := securejoin.SecureJoin(baseDir, name+suffix)
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}
	return path, nil
}

const (
	DefaultConfigDir = "/etc/berth"
	DefaultStateDir  = "/var/lib/berth"
)

// DefinitionExtensions lists the recognized definition file extensions in
// lookup order.
var DefinitionExtensions = []string{".toml", ".yaml", ".yml"}

// Paths holds the configured paths
type Paths struct {
	ConfigDir      string
	StateDir       string
	DefinitionsDir string
	ContainersDir  string
	HomesDir       string
	AuditDir       string
}

// DefaultPaths returns the default path configuration
func DefaultPaths() *Paths {
	return NewPaths(DefaultConfigDir, DefaultStateDir)
}

// NewPaths derives every directory from a config and a state directory.
func NewPaths(configDir, stateDir string) *Paths {
	return &Paths{
		ConfigDir:      configDir,
		StateDir:       stateDir,
		DefinitionsDir: filepath.Join(configDir, "containers"),
		ContainersDir:  filepath.Join(stateDir, "containers"),
		HomesDir:       filepath.Join(stateDir, "homes"),
		AuditDir:       filepath.Join(stateDir, "audit"),
	}
}

// Definition describes one container to prepare.
type Definition struct {
	Name        string                  `toml:"name" yaml:"name" json:"name"`
	Flavor      string                  `toml:"flavor" yaml:"flavor" json:"flavor"`
	Description string                  `toml:"description" yaml:"description" json:"description,omitempty"`
	Home        string                  `toml:"home" yaml:"home" json:"home,omitempty"`
	InstallDir  string                  `toml:"install_dir" yaml:"install_dir" json:"installDir,omitempty"`
	Encoding    string                  `toml:"encoding" yaml:"encoding" json:"encoding,omitempty"`
	Properties  map[string]string       `toml:"properties" yaml:"properties" json:"properties,omitempty"`
	Deployables []deployable.Deployable `toml:"deployables" yaml:"deployables" json:"deployables,omitempty"`

	// Source is the file the definition was loaded from.
	Source string `toml:"-" yaml:"-" json:"-"`
}

// Validate checks that the Definition is valid.
func (d *Definition) Validate() error {
	if err := ValidateName(d.Name); err != nil {
		return err
	}
	if d.Flavor == "" {
		return fmt.Errorf("flavor is required")
	}
	if d.Home != "" && !filepath.IsAbs(d.Home) {
		return fmt.Errorf("home must be an absolute path (got %q)", d.Home)
	}
	if d.InstallDir != "" && !filepath.IsAbs(d.InstallDir) {
		return fmt.Errorf("install_dir must be an absolute path (got %q)", d.InstallDir)
	}
	for i, dep := range d.Deployables {
		if _, err := deployable.ParseKind(string(dep.Kind)); err != nil {
			return fmt.Errorf("deployable %d: %w", i, err)
		}
		if dep.Path == "" {
			return fmt.Errorf("deployable %d: path is required", i)
		}
	}
	return nil
}

// HomeDir returns the home directory, defaulting to <state>/homes/<name>.
func (d *Definition) HomeDir(paths *Paths) (string, error) {
	if d.Home != "" {
		return d.Home, nil
	}
	return safePath(paths.HomesDir, d.Name, "")
}

// Options returns the configuration options the definition sets.
func (d *Definition) Options() []container.Option {
	var opts []container.Option
	if d.InstallDir != "" {
		opts = append(opts, container.WithInstallDir(d.InstallDir))
	}
	if d.Encoding != "" {
		opts = append(opts, container.WithEncoding(d.Encoding))
	}
	if d.Description != "" {
		opts = append(opts, container.WithDescription(d.Description))
	}
	return opts
}

// Apply sets the definition's properties and schedules its deployables.
// Properties are applied in key order so the first unsupported key is
// reported deterministically.
func (d *Definition) Apply(cfg *container.Configuration) error {
	keys := make([]string, 0, len(d.Properties))
	for k := range d.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := cfg.SetProperty(k, d.Properties[k]); err != nil {
			return err
		}
	}
	for _, dep := range d.Deployables {
		kind, _ := deployable.ParseKind(string(dep.Kind))
		dep.Kind = kind
		if err := cfg.AddDeployable(dep); err != nil {
			return err
		}
	}
	return nil
}

// ParseDefinition decodes a definition. format is a file extension.
func ParseDefinition(data []byte, format string) (*Definition, error) {
	var def Definition
	switch strings.ToLower(format) {
	case ".toml":
		if err := toml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("failed to parse definition: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("failed to parse definition: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported definition format %q", format)
	}
	return &def, nil
}

// LoadDefinitionFile loads and validates a definition file. A definition
// without a name takes it from the file name.
func LoadDefinitionFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}

	ext := filepath.Ext(path)
	def, err := ParseDefinition(data, ext)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if def.Name == "" {
		def.Name = strings.TrimSuffix(filepath.Base(path), ext)
	}
	def.Source = path

	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("invalid definition %s: %w", path, err)
	}
	return def, nil
}

// IsDefinitionFile reports whether arg names a definition file rather
// than a definition name.
func IsDefinitionFile(arg string) bool {
	ext := strings.ToLower(filepath.Ext(arg))
	for _, e := range DefinitionExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// LoadDefinition resolves arg as a definition file path or as a name
// looked up in definitionsDir.
func LoadDefinition(definitionsDir, arg string) (*Definition, error) {
	if IsDefinitionFile(arg) {
		return LoadDefinitionFile(arg)
	}
	if err := ValidateName(arg); err != nil {
		return nil, err
	}
	for _, ext := range DefinitionExtensions {
		path, err := safePath(definitionsDir, arg, ext)
		if err != nil {
			return nil, fmt.Errorf("invalid definition name: %w", err)
		}
		if _, err := os.Stat(path); err == nil {
			return LoadDefinitionFile(path)
		}
	}
	return nil, fmt.Errorf("definition not found: %s", arg)
}

// ListDefinitions returns every valid definition in definitionsDir.
func ListDefinitions(definitionsDir string) ([]*Definition, error) {
	entries, err := os.ReadDir(definitionsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read definitions directory: %w", err)
	}

	var defs []*Definition
	for _, entry := range entries {
		if entry.IsDir() || !IsDefinitionFile(entry.Name()) {
			continue
		}
		def, err := LoadDefinitionFile(filepath.Join(definitionsDir, entry.Name()))
		if err != nil {
			continue // Skip invalid definitions
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// ContainerState is what berth-ctl remembers about a configured container.
type ContainerState struct {
	Name          string `json:"name"`
	Flavor        string `json:"flavor"`
	Home          string `json:"home,omitempty"`
	OffsetApplied bool   `json:"offsetApplied"`
	LastRunID     string `json:"lastRunId,omitempty"`
	ConfiguredAt  string `json:"configuredAt,omitempty"`
}

// Validate checks that the ContainerState is valid.
func (s *ContainerState) Validate() error {
	if err := ValidateName(s.Name); err != nil {
		return err
	}
	if s.Flavor == "" {
		return fmt.Errorf("flavor is required")
	}
	return nil
}

// LoadState loads the state of a container. A container that was never
// configured has no state; LoadState returns nil, nil for it.
func LoadState(containersDir, name string) (*ContainerState, error) {
	statePath, err := safePath(containersDir, name, ".json")
	if err != nil {
		return nil, fmt.Errorf("invalid container name: %w", err)
	}
	data, err := os.ReadFile(statePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read container state: %w", err)
	}

	var state ContainerState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse container state: %w", err)
	}
	return &state, nil
}

// SaveState saves the state of a container
func SaveState(containersDir string, state *ContainerState) error {
	if err := state.Validate(); err != nil {
		return fmt.Errorf("invalid container state: %w", err)
	}
	if err := os.MkdirAll(containersDir, 0755); err != nil {
		return fmt.Errorf("failed to create containers directory: %w", err)
	}

	statePath, err := safePath(containersDir, state.Name, ".json")
	if err != nil {
		return fmt.Errorf("invalid container name: %w", err)
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := atomicwriter.WriteFile(statePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	return nil
}

// DeleteState removes the state of a container
func DeleteState(containersDir, name string) error {
	statePath, err := safePath(containersDir, name, ".json")
	if err != nil {
		return fmt.Errorf("invalid container name: %w", err)
	}
	return os.Remove(statePath)
}
