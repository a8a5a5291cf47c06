package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/berth-ctl/internal/app"
	"github.com/firefly-engineering/berth-ctl/internal/bootstrap"
	"github.com/firefly-engineering/berth-ctl/internal/patch"
)

var configureCmd = &cobra.Command{
	Use:   "configure <definition>",
	Short: "Create and patch the domain of a container",
	Long: `Removes the container home, runs the vendor tool that creates the domain,
patches the generated configuration file and schedules the deployables.

The definition is a name looked up in the definitions directory, or a path
to a .toml or .yaml file.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigure,
}

var configureApplyOffset bool

func init() {
	configureCmd.Flags().BoolVar(&configureApplyOffset, "apply-offset", false, "Apply berth.port.offset to every port before configuring")
	rootCmd.AddCommand(configureCmd)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	c, err := loadContainer(args[0])
	if err != nil {
		return err
	}

	if configureApplyOffset {
		if _, err := app.Default.ApplyOffset(c); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	observer := func(step bootstrap.Step, detail string) {
		if verbose && detail != "" {
			fmt.Fprintf(out, "  %-28s %s\n", step, detail)
		}
	}

	logInfo("Configuring %s (%s) in %s", c.Name(), c.Flavor.Name, c.Config.Home())
	res, err := app.Default.Configure(ctx, c, observer)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Command: %s\n", res.Command.String())
	fmt.Fprintf(out, "Artifact: %s\n", res.Artifact)
	for _, r := range res.Patches {
		mark := "-"
		if r.Outcome == patch.OutcomeApplied {
			mark = "✓"
		}
		fmt.Fprintf(out, "  %s %s: %s\n", mark, r.Name, r.Outcome)
	}
	fmt.Fprintln(out, "Deployables:")
	for _, d := range c.Config.Deployables() {
		fmt.Fprintf(out, "  %s\n", d)
	}

	logSuccess("Configured %s (run %s)", c.Name(), c.State.LastRunID)
	return nil
}
