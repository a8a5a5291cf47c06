package cmd

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/berth-ctl/internal/app"
	"github.com/firefly-engineering/berth-ctl/internal/errors"
	"github.com/firefly-engineering/berth-ctl/internal/monitor"
)

var statusCmd = &cobra.Command{
	Use:   "status [definition...]",
	Short: "Probe the management endpoint of containers",
	Long: `Probes every named container once, concurrently, and prints whether its
management endpoint answers. Without arguments every definition is probed.

With --watch the probes repeat until interrupted and readiness changes are
recorded in the audit log.`,
	RunE: runStatus,
}

var (
	statusWatch    bool
	statusInterval time.Duration
)

func init() {
	statusCmd.Flags().BoolVarP(&statusWatch, "watch", "w", false, "Keep probing until interrupted")
	statusCmd.Flags().DurationVar(&statusInterval, "interval", monitor.DefaultInterval, "Probe interval with --watch")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	if statusWatch && statusInterval <= 0 {
		return errors.ValidationError(fmt.Sprintf("--interval must be positive, got %s", statusInterval))
	}

	containers, err := loadContainers(args)
	if err != nil {
		return err
	}
	if len(containers) == 0 {
		logInfo("No definitions found in %s", paths().DefinitionsDir)
		return nil
	}

	out := cmd.OutOrStdout()
	if !statusWatch {
		printStatus(out, containers, app.Default.Status(cmd.Context(), containers))
		return nil
	}

	var monitors []*monitor.Monitor
	for _, c := range containers {
		if m := app.Default.Monitor(c); m != nil {
			monitors = append(monitors, m)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := monitor.NewWatcher(statusInterval, monitors,
		monitor.WithAuditLogger(app.Default.Audit),
		monitor.WithResultHandler(func(results []monitor.CheckResult) {
			fmt.Fprintf(out, "\n%s\n", time.Now().Format("15:04:05"))
			printResults(out, results)
		}),
	)

	logInfo("Watching %d containers (interval: %s)", len(monitors), statusInterval)
	if err := w.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

func printStatus(out io.Writer, containers []*app.Container, results []monitor.CheckResult) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Flavor", "Endpoint", "Offset Applied", "Status"})
	for i, r := range results {
		c := containers[i]
		t.AppendRow(table.Row{r.Name, c.Flavor.Name, r.URL, boolStatus(c.Config.IsOffsetApplied()), formatStatus(r.Status)})
	}
	t.Render()
}

func printResults(out io.Writer, results []monitor.CheckResult) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Endpoint", "Status"})
	for _, r := range results {
		t.AppendRow(table.Row{r.Name, r.URL, formatStatus(r.Status)})
	}
	t.Render()
}
