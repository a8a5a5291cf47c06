// Package app provides the application context for berth-ctl.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
// The App struct holds core dependencies:
//
//	type App struct {
//	    Paths    *config.Paths          // File system paths
//	    FS       system.FileSystem      // Filesystem used by bootstraps
//	    Executor system.CommandExecutor // Runs asadmin, wlst.sh, ...
//	    Pinger   health.Pinger          // Probes management endpoints
//	    Audit    *audit.Logger          // Lifecycle event log
//	}
//
// # Creating an App
//
// Use New with functional options:
//
//	// Production usage
//	a := app.New()
//
//	// Testing with custom dependencies
//	a := app.New(
//	    app.WithPaths(testPaths),
//	    app.WithFileSystem(system.NewMockFS()),
//	    app.WithExecutor(mockExecutor),
//	    app.WithPinger(health.NewMockPinger()),
//	)
//
// # Operations
//
// Load turns a definition into a Container (definition, flavor descriptor,
// built configuration and saved state). Configure bootstraps it, Render
// shows the bootstrap without running it, Status and Wait probe it, and
// ApplyOffset shifts its ports once and remembers that it did.
package app
