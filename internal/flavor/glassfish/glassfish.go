package glassfish

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	securejoin "github.com/cyphar/filepath-securejoin"
	shellquote "github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/berth-ctl/internal/bootstrap"
	"github.com/firefly-engineering/berth-ctl/internal/capability"
	"github.com/firefly-engineering/berth-ctl/internal/container"
	"github.com/firefly-engineering/berth-ctl/internal/deployable"
	"github.com/firefly-engineering/berth-ctl/internal/errors"
	"github.com/firefly-engineering/berth-ctl/internal/monitor"
	"github.com/firefly-engineering/berth-ctl/internal/property"
	"github.com/firefly-engineering/berth-ctl/internal/system"
)

// Name is the flavor name.
const Name = "glassfish"

// GlassFish property keys. The part after "berth.glassfish." is the name
// asadmin uses in --domainproperties.
const (
	AdminPort          = "berth.glassfish.adminPort"
	JMSPort            = "berth.glassfish.jms.port"
	IIOPPort           = "berth.glassfish.orb.listener.port"
	HTTPSPort          = "berth.glassfish.http.ssl.port"
	IIOPSPort          = "berth.glassfish.orb.ssl.port"
	IIOPMutualAuthPort = "berth.glassfish.orb.mutualauth.port"
	JMXAdminPort       = "berth.glassfish.domain.jmxPort"
	DomainName         = "berth.glassfish.domain.name"
	AsadminArgs        = "berth.glassfish.asadmin.args"
)

// PasswordFile is the asadmin password file created in the home directory.
const PasswordFile = "password.properties"

// domainProperties are passed to create-domain in this order.
var domainProperties = []string{JMSPort, IIOPPort, HTTPSPort, IIOPSPort, IIOPMutualAuthPort, JMXAdminPort}

var keys = []string{AdminPort, JMSPort, IIOPPort, HTTPSPort, IIOPSPort, IIOPMutualAuthPort, JMXAdminPort, DomainName, AsadminArgs}

// Capability returns the GlassFish capability shared by every configuration.
var Capability = sync.OnceValue(func() *capability.Capability {
	return capability.New(Name,
		capability.Merge(property.General, property.Remote, keys),
		[]deployable.Kind{deployable.KindWAR, deployable.KindEAR, deployable.KindEJB, deployable.KindRAR, deployable.KindBundle},
	)
})

// Defaults lists the default value of every GlassFish property.
var Defaults = map[string]string{
	property.Username:    "admin",
	property.Password:    "adminadmin",
	property.Protocol:    "http",
	property.Hostname:    "localhost",
	property.ServletPort: "8080",
	AdminPort:            "4848",
	JMSPort:              "7676",
	IIOPPort:             "3700",
	HTTPSPort:            "8181",
	IIOPSPort:            "3820",
	IIOPMutualAuthPort:   "3920",
	JMXAdminPort:         "8686",
	DomainName:           "cargo-domain",
}

// Endpoint is the admin REST interface probed for readiness.
var Endpoint = monitor.Endpoint{PortKey: AdminPort, Path: "/management/domain"}

// Profile describes how domain.xml is patched.
var Profile = &bootstrap.PatchProfile{
	ClosingTag:        "</config>",
	Indent:            "    ",
	SystemProperty:    "com.sun.aas.javaRoot",
	JavaConfigElement: "<java-config ",
	JavaHomeAttribute: "java-home",
	JVMDefaults: []bootstrap.JVMDefault{
		{Flag: "-Xmx", Default: "-Xmx512m"},
		{Flag: "-XX:MaxPermSize", Default: "-XX:MaxPermSize=192m"},
	},
}

// NewConfiguration creates a GlassFish configuration with its defaults.
func NewConfiguration(name, home string, opts ...container.Option) *container.Configuration {
	cfg := container.New(name, home, Capability(), opts...)
	for k, v := range Defaults {
		cfg.Properties().SetDefault(k, v)
	}
	return cfg
}

// Flavor implements bootstrap.Flavor.
type Flavor struct{}

func (Flavor) Name() string                          { return Name }
func (Flavor) ConfigFile() string                    { return "domain.xml" }
func (Flavor) PatchProfile() *bootstrap.PatchProfile { return Profile }

func (Flavor) DomainName(cfg *container.Configuration) string {
	return cfg.Properties().GetOrDefault(DomainName, Defaults[DomainName])
}

// EnsurePasswordFile writes the asadmin password file unless it exists.
func EnsurePasswordFile(cfg *container.Configuration, fsys system.FileSystem) (string, error) {
	path, err := securejoin.SecureJoin(cfg.Home(), PasswordFile)
	if err != nil {
		return "", errors.IOFailure("resolve", PasswordFile, err)
	}
	if fsys.Exists(path) {
		return path, nil
	}
	if err := fsys.MkdirAll(cfg.Home(), 0755); err != nil {
		return "", errors.IOFailure("create", cfg.Home(), err)
	}
	password := cfg.Properties().GetOrDefault(property.Password, "")
	if err := fsys.WriteFile(path, []byte("AS_ADMIN_PASSWORD="+password+"\n"), 0600); err != nil {
		return "", errors.IOFailure("write", path, err)
	}
	return path, nil
}

// DomainPropertiesArg builds the --domainproperties value.
func DomainPropertiesArg(cfg *container.Configuration) string {
	var pairs []string
	for _, key := range domainProperties {
		v, ok := cfg.Property(key)
		if !ok || v == "" {
			continue
		}
		pairs = append(pairs, property.StripPrefix(key, Name)+"="+v)
	}
	return strings.Join(pairs, ":")
}

// Invocation writes the password file and returns the create-domain call.
func (f Flavor) Invocation(ctx context.Context, cfg *container.Configuration, fsys system.FileSystem) (system.Command, error) {
	if cfg.InstallDir() == "" {
		return system.Command{}, errors.ConfigError("glassfish needs an installation directory", nil)
	}
	passwordFile, err := EnsurePasswordFile(cfg, fsys)
	if err != nil {
		return system.Command{}, err
	}

	props := cfg.Properties()
	args := []string{
		"--interactive=false",
		"--user", props.GetOrDefault(property.Username, Defaults[property.Username]),
		"--passwordfile", passwordFile,
		"create-domain",
		"--adminport", props.GetOrDefault(AdminPort, Defaults[AdminPort]),
		"--instanceport", props.GetOrDefault(property.ServletPort, Defaults[property.ServletPort]),
		"--domaindir", cfg.Home(),
		"--domainproperties", DomainPropertiesArg(cfg),
	}

	if extra := props.GetOrDefault(AsadminArgs, ""); extra != "" {
		words, err := shellquote.Split(extra)
		if err != nil {
			return system.Command{}, errors.ConfigError(fmt.Sprintf("invalid %s", AsadminArgs), err)
		}
		args = append(args, words...)
	}
	args = append(args, f.DomainName(cfg))

	return system.Command{
		Name: filepath.Join(cfg.InstallDir(), "bin", "asadmin"),
		Args: args,
	}, nil
}
