package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/berth-ctl/internal/app"
	"github.com/firefly-engineering/berth-ctl/internal/audit"
)

var auditLogCmd = &cobra.Command{
	Use:   "audit-log <name>",
	Short: "Display the audit trail for a container",
	Args:  cobra.ExactArgs(1),
	RunE:  runAuditLog,
}

var (
	auditLogJSONL bool
	auditLogRun   string
)

func init() {
	auditLogCmd.Flags().BoolVar(&auditLogJSONL, "jsonl", false, "Output events as JSON lines")
	auditLogCmd.Flags().StringVar(&auditLogRun, "run", "", "Only show events of the given run ID")
	rootCmd.AddCommand(auditLogCmd)
}

func runAuditLog(cmd *cobra.Command, args []string) error {
	name := args[0]

	var (
		events []audit.Event
		err    error
	)
	if auditLogRun != "" {
		events, err = app.Default.Audit.Run(name, auditLogRun)
	} else {
		events, err = app.Default.Audit.Events(name)
	}
	if err != nil {
		return fmt.Errorf("failed to read audit log: %w", err)
	}

	if len(events) == 0 {
		logInfo("No events found for container %s", name)
		return nil
	}

	out := cmd.OutOrStdout()
	for _, e := range events {
		if auditLogJSONL {
			data, err := json.Marshal(e)
			if err != nil {
				return fmt.Errorf("failed to marshal event: %w", err)
			}
			fmt.Fprintln(out, string(data))
			continue
		}
		ts := e.Timestamp.Local().Format("2006-01-02 15:04:05")
		if e.Details != "" {
			fmt.Fprintf(out, "[%s] %-9s %s (%s)\n", ts, e.Type, e.Container, e.Details)
		} else {
			fmt.Fprintf(out, "[%s] %-9s %s\n", ts, e.Type, e.Container)
		}
	}

	return nil
}
