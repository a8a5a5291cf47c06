package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/berth-ctl/internal/flavor"
	"github.com/firefly-engineering/berth-ctl/internal/property"
)

var propertiesCmd = &cobra.Command{
	Use:   "properties <flavor>",
	Short: "List the properties a flavor accepts",
	Args:  cobra.ExactArgs(1),
	RunE:  runProperties,
}

func init() {
	rootCmd.AddCommand(propertiesCmd)
}

func runProperties(cmd *cobra.Command, args []string) error {
	d, err := flavor.Lookup(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Property", "Default", "Port"})
	for _, key := range d.Capability().Properties() {
		port := ""
		if property.IsPortKey(key) {
			port = "✓"
		}
		t.AppendRow(table.Row{key, d.Defaults[key], port})
	}
	t.Render()

	fmt.Fprintf(out, "Deployable kinds: %v\n", d.Capability().DeployableKinds())
	return nil
}
