// Package testutil provides test fixtures and utilities.
//
// # Fixtures
//
// Fixtures are embedded using go:embed:
//
//	fixtures/glassfish.toml   GlassFish definition with Java home, JVM args and an offset
//	fixtures/weblogic.yaml    WebLogic definition
//	fixtures/invalid.toml     definition that fails validation
//	fixtures/domain.xml       domain.xml as generated by asadmin create-domain
//
// # Test Environment
//
// NewTestEnv builds an App over a temporary paths tree, an in-memory
// filesystem, a mock executor and a mock pinger, and installs it as
// app.Default until the test ends:
//
//	env := testutil.NewTestEnv(t)
//	env.AddFixtureDefinition("glassfish.toml")
//	xml, _ := testutil.DomainXML()
//	env.GenerateOnRun(home+"/shop-domain/config/domain.xml", xml)
//
//	c, _ := env.App.Load("shop")
//	res, err := env.App.Configure(ctx, c, nil)
package testutil
