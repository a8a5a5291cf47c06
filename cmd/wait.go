package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/berth-ctl/internal/app"
	"github.com/firefly-engineering/berth-ctl/internal/errors"
	"github.com/firefly-engineering/berth-ctl/internal/health"
	"github.com/firefly-engineering/berth-ctl/internal/logging"
	"github.com/firefly-engineering/berth-ctl/internal/tui"
)

var waitCmd = &cobra.Command{
	Use:   "wait <definition>",
	Short: "Wait until a container's management endpoint answers",
	Long: `Probes the management endpoint of a container every --interval until it
answers or --timeout passes. Exits with status 8 when the container is not
ready in time.`,
	Args: cobra.ExactArgs(1),
	RunE: runWait,
}

var (
	waitTimeout  time.Duration
	waitInterval time.Duration
	waitTUI      bool
)

func init() {
	waitCmd.Flags().DurationVar(&waitTimeout, "timeout", health.DefaultWaitTimeout, "Give up after this long")
	waitCmd.Flags().DurationVar(&waitInterval, "interval", health.DefaultWaitInterval, "Time between probes")
	waitCmd.Flags().BoolVar(&waitTUI, "tui", false, "Show an interactive progress view")
	rootCmd.AddCommand(waitCmd)
}

func runWait(cmd *cobra.Command, args []string) error {
	c, err := loadContainer(args[0])
	if err != nil {
		return err
	}

	opts := health.WaitOptions{Interval: waitInterval, Timeout: waitTimeout}

	if waitTUI {
		return runWaitTUI(c, opts)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts.OnAttempt = func(attempt int, elapsed time.Duration) {
		logging.Debug("container not ready yet", "name", c.Name(), "attempt", attempt, "elapsed", elapsed)
	}

	logInfo("Waiting for %s (timeout: %s)", c.Name(), health.FormatDuration(waitTimeout))
	attempts, err := app.Default.Wait(ctx, c, opts)
	if err != nil {
		return err
	}
	logSuccess("%s is ready after %d attempts", c.Name(), attempts)
	return nil
}

func runWaitTUI(c *app.Container, opts health.WaitOptions) error {
	m := app.Default.Monitor(c)
	if m == nil {
		return errors.ConfigError("flavor "+c.Flavor.Name+" has no management endpoint", nil)
	}
	url, err := m.URL()
	if err != nil {
		return errors.NotReady(c.Name(), err)
	}

	res, err := tui.RunWait(c.Name(), url, m.IsRunning, opts)
	if err != nil {
		return err
	}
	if !res.Ready {
		if res.Cancelled {
			return errors.NotReady(c.Name(), context.Canceled)
		}
		return errors.NotReady(c.Name(), health.ErrNotReady)
	}
	return nil
}
