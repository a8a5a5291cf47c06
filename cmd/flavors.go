package cmd

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/berth-ctl/internal/flavor"
)

var flavorsCmd = &cobra.Command{
	Use:   "flavors",
	Short: "List supported container flavors",
	RunE:  runFlavors,
}

func init() {
	rootCmd.AddCommand(flavorsCmd)
}

func runFlavors(cmd *cobra.Command, args []string) error {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Flavor", "Description", "Bootstrap", "Deployables", "Endpoint"})

	for _, d := range flavor.All() {
		kinds := make([]string, 0)
		for _, k := range d.Capability().DeployableKinds() {
			kinds = append(kinds, string(k))
		}
		endpoint := "-"
		if d.Endpoint != nil {
			endpoint = d.Endpoint.PortKey + " " + d.Endpoint.Path
		}
		t.AppendRow(table.Row{d.Name, d.Description, string(d.Mechanism), strings.Join(kinds, ","), endpoint})
	}
	t.Render()
	return nil
}
