package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/berth-ctl/internal/health"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	readyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	failedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))
)

// WaitResult holds the outcome of a readiness wait
type WaitResult struct {
	Ready     bool
	Cancelled bool
	Attempts  int
	Elapsed   time.Duration
}

// probeMsg carries the result of one probe
type probeMsg struct {
	ready bool
}

// tickMsg triggers the next probe
type tickMsg struct{}

// WaitModel is the bubbletea model for waiting on a management endpoint
type WaitModel struct {
	name     string
	url      string
	probe    health.Probe
	interval time.Duration
	timeout  time.Duration
	now      func() time.Time

	spinner  spinner.Model
	start    time.Time
	result   WaitResult
	finished bool
}

// NewWaitModel creates a wait view for the container name probed at url
func NewWaitModel(name, url string, probe health.Probe, opts health.WaitOptions) WaitModel {
	if opts.Interval <= 0 {
		opts.Interval = health.DefaultWaitInterval
	}
	if opts.Timeout <= 0 {
		opts.Timeout = health.DefaultWaitTimeout
	}
	return WaitModel{
		name:     name,
		url:      url,
		probe:    probe,
		interval: opts.Interval,
		timeout:  opts.Timeout,
		now:      time.Now,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle)),
	}
}

// Result returns the outcome once the model has finished
func (m WaitModel) Result() WaitResult {
	return m.result
}

func (m WaitModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runProbe())
}

func (m WaitModel) runProbe() tea.Cmd {
	probe := m.probe
	return func() tea.Msg {
		return probeMsg{ready: probe(context.Background())}
	}
}

func (m WaitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.result.Cancelled = true
			m.finished = true
			return m, tea.Quit
		}

	case probeMsg:
		if m.start.IsZero() {
			m.start = m.now()
		}
		m.result.Attempts++
		m.result.Elapsed = m.now().Sub(m.start)
		if msg.ready {
			m.result.Ready = true
			m.finished = true
			return m, tea.Quit
		}
		if m.result.Elapsed+m.interval > m.timeout {
			m.finished = true
			return m, tea.Quit
		}
		return m, tea.Tick(m.interval, func(time.Time) tea.Msg { return tickMsg{} })

	case tickMsg:
		return m, m.runProbe()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m WaitModel) View() string {
	elapsed := health.FormatDuration(m.result.Elapsed)

	if m.finished {
		switch {
		case m.result.Ready:
			return readyStyle.Render(fmt.Sprintf("✓ %s is ready", m.name)) +
				fmt.Sprintf(" (%d attempts, %s)\n", m.result.Attempts, elapsed)
		case m.result.Cancelled:
			return failedStyle.Render(fmt.Sprintf("✗ stopped waiting for %s", m.name)) + "\n"
		default:
			return failedStyle.Render(fmt.Sprintf("✗ %s is not ready", m.name)) +
				fmt.Sprintf(" after %d attempts (%s)\n", m.result.Attempts, elapsed)
		}
	}

	s := fmt.Sprintf("%s %s %s\n", m.spinner.View(), titleStyle.Render("Waiting for "+m.name), m.url)
	s += fmt.Sprintf("  attempt %d, %s elapsed, timeout %s\n", m.result.Attempts, elapsed, health.FormatDuration(m.timeout))
	s += helpStyle.Render("q: stop waiting")
	return s
}

// RunWait runs the wait view until the endpoint is ready, the timeout
// passes, or the user quits.
func RunWait(name, url string, probe health.Probe, opts health.WaitOptions) (WaitResult, error) {
	p := tea.NewProgram(NewWaitModel(name, url, probe, opts))
	final, err := p.Run()
	if err != nil {
		return WaitResult{}, fmt.Errorf("wait view failed: %w", err)
	}
	return final.(WaitModel).Result(), nil
}
