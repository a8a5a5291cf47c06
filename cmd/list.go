package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/berth-ctl/internal/app"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List container definitions",
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	containers, err := app.Default.LoadAll()
	if err != nil {
		return err
	}

	if len(containers) == 0 {
		logInfo("No definitions found in %s", paths().DefinitionsDir)
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Flavor", "Home", "Configured", "Offset Applied"})
	for _, c := range containers {
		configured := "-"
		if c.State != nil && c.State.ConfiguredAt != "" {
			configured = c.State.ConfiguredAt
		}
		t.AppendRow(table.Row{c.Name(), c.Flavor.Name, c.Config.Home(), configured, boolStatus(c.Config.IsOffsetApplied())})
	}
	t.Render()
	return nil
}
