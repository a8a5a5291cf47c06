// Package tui provides terminal user interface components for berth-ctl.
//
// This package uses the Bubble Tea framework. Its one view follows a
// container's management endpoint until it answers:
//
//	res, err := tui.RunWait(name, url, monitor.IsRunning, health.WaitOptions{
//	    Interval: 2 * time.Second,
//	    Timeout:  2 * time.Minute,
//	})
//	if res.Ready {
//	    // endpoint answered within the timeout
//	}
//
// The view shows a spinner, the probed URL, the attempt count and the
// elapsed time. q, esc or ctrl+c stop waiting and set WaitResult.Cancelled.
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - spinner component
//   - github.com/charmbracelet/lipgloss - Styling
package tui
