package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/berth-ctl/internal/app"
	"github.com/firefly-engineering/berth-ctl/internal/container"
)

var offsetCmd = &cobra.Command{
	Use:   "offset <definition>",
	Short: "Show or apply the port offset of a container",
	Long: `Lists every port property of a container with its configured value and
the value after berth.port.offset is added.

With --apply the offset is written into the ports once and remembered, so
later configure, status and wait commands use the shifted ports.`,
	Args: cobra.ExactArgs(1),
	RunE: runOffset,
}

var offsetApply bool

func init() {
	offsetCmd.Flags().BoolVar(&offsetApply, "apply", false, "Apply the offset and remember it")
	rootCmd.AddCommand(offsetCmd)
}

func runOffset(cmd *cobra.Command, args []string) error {
	c, err := loadContainer(args[0])
	if err != nil {
		return err
	}

	offset, err := c.Config.PortOffset()
	if err != nil {
		return err
	}

	alreadyApplied := c.Config.IsOffsetApplied()
	var changes []container.PortChange
	if offsetApply && !alreadyApplied {
		changes, err = app.Default.ApplyOffset(c)
	} else {
		changes, err = c.Config.PlanPortOffset()
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Property", "Configured", "Effective"})
	for _, ch := range changes {
		t.AppendRow(table.Row{ch.Key, ch.From, ch.To})
	}
	t.Render()

	fmt.Fprintf(out, "Offset: %d, applied: %s\n", offset, boolStatus(c.Config.IsOffsetApplied()))
	switch {
	case offsetApply && alreadyApplied:
		logInfo("Offset of %s was already applied", c.Name())
	case offsetApply:
		logSuccess("Applied offset %d to %s", offset, c.Name())
	}
	return nil
}
