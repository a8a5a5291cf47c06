package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/berth-ctl/internal/app"
	"github.com/firefly-engineering/berth-ctl/internal/config"
	"github.com/firefly-engineering/berth-ctl/internal/logging"
)

var gcForce bool

var gcCmd = &cobra.Command{
	Use:   "gc",
	Short: "Garbage collect state of removed definitions",
	Long: `Removes the state, audit log and home directory of containers whose
definition no longer exists.

Only homes under the state directory are removed. A home the definition
placed elsewhere is kept and reported.

Without --force, prints what would be cleaned (dry run).`,
	RunE: runGC,
}

func init() {
	gcCmd.Flags().BoolVar(&gcForce, "force", false, "Actually remove orphaned resources (default is dry run)")
	rootCmd.AddCommand(gcCmd)
}

func runGC(cmd *cobra.Command, args []string) error {
	p := paths()

	defs, err := config.ListDefinitions(p.DefinitionsDir)
	if err != nil {
		return fmt.Errorf("failed to list definitions: %w", err)
	}
	known := make(map[string]bool, len(defs))
	for _, d := range defs {
		known[d.Name] = true
	}

	onDisk := make(map[string]bool)
	for dir, suffix := range map[string]string{
		p.ContainersDir: ".json",
		p.AuditDir:      ".events.jsonl",
	} {
		if err := namesFromDisk(dir, suffix, onDisk); err != nil {
			return fmt.Errorf("failed to scan %s: %w", dir, err)
		}
	}

	var orphans []string
	for name := range onDisk {
		if !known[name] {
			orphans = append(orphans, name)
		}
	}
	sort.Strings(orphans)

	if len(orphans) == 0 {
		logInfo("No orphaned resources found")
		return nil
	}

	if !gcForce {
		printGCDryRun(cmd.OutOrStdout(), orphans)
		return nil
	}

	for _, name := range orphans {
		logInfo("Cleaning up orphaned container: %s", name)
		removeOrphan(name, p)
	}
	logSuccess("Garbage collection complete")
	return nil
}

// namesFromDisk adds the container names of files in dir ending in suffix.
func namesFromDisk(dir, suffix string, names map[string]bool) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name, ok := strings.CutSuffix(entry.Name(), suffix)
		if !ok || strings.Contains(name, ".") {
			continue
		}
		if config.ValidateName(name) == nil {
			names[name] = true
		}
	}
	return nil
}

func printGCDryRun(out io.Writer, orphans []string) {
	fmt.Fprintln(out, "Dry run (use --force to actually clean up):")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Orphaned containers (no matching definition):")
	for _, name := range orphans {
		fmt.Fprintf(out, "  %s\n", name)
	}
}

func removeOrphan(name string, p *config.Paths) {
	home := filepath.Join(p.HomesDir, name)
	state, err := config.LoadState(p.ContainersDir, name)
	if err != nil {
		logging.Warn("failed to read state", "name", name, "error", err)
	}
	if state != nil && state.Home != "" && filepath.Clean(state.Home) != home {
		logWarning("Keeping home %s of %s, it is outside %s", state.Home, name, p.HomesDir)
		home = ""
	}

	if err := config.DeleteState(p.ContainersDir, name); err != nil && !os.IsNotExist(err) {
		logging.Warn("failed to remove state", "name", name, "error", err)
	}
	if err := app.Default.Audit.Remove(name); err != nil {
		logging.Warn("failed to remove audit log", "name", name, "error", err)
	}

	if home != "" {
		if err := app.Default.FS.RemoveAll(home); err != nil {
			logging.Warn("failed to remove home directory", "path", home, "error", err)
		}
	}
	logging.Debug("cleaned up orphaned container", "name", name)
}
