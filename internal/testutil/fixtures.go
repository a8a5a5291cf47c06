package testutil

import (
	"embed"
	"path/filepath"

	"github.com/firefly-engineering/berth-ctl/internal/config"
)

//go:embed fixtures
var fixturesFS embed.FS

// LoadFixture loads a fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// LoadDefinitionFixture parses a definition fixture without validating it.
func LoadDefinitionFixture(name string) (*config.Definition, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return nil, err
	}
	return config.ParseDefinition(data, filepath.Ext(name))
}

// GlassFishDefinition returns the GlassFish definition fixture.
func GlassFishDefinition() (*config.Definition, error) {
	return LoadDefinitionFixture("glassfish.toml")
}

// WebLogicDefinition returns the WebLogic definition fixture.
func WebLogicDefinition() (*config.Definition, error) {
	return LoadDefinitionFixture("weblogic.yaml")
}

// InvalidDefinition returns a definition that fails validation.
func InvalidDefinition() (*config.Definition, error) {
	return LoadDefinitionFixture("invalid.toml")
}

// DomainXML returns a domain.xml as generated by asadmin create-domain.
func DomainXML() ([]byte, error) {
	return LoadFixture("domain.xml")
}
