// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

// Package tui renders the live job watcher.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/eddieramirez/bdactl/internal/bda"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f6be00"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00c8f0"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f56"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#27c93f"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// StatusFetcher returns the current job status. The watcher calls it once
// per poll interval.
type StatusFetcher func(ctx context.Context) (bda.JobStatus, error)

type statusMsg bda.JobStatus

type statusErrMsg struct{ err error }

type pollMsg struct{}

// Model is the bubbletea model for the watch command.
type Model struct {
	ctx      context.Context
	fetch    StatusFetcher
	interval time.Duration

	spinner spinner.Model
	status  bda.JobStatus
	polls   int
	started time.Time
	err     error
	done    bool
	quit    bool
}

// NewModel builds a watcher around a status fetcher.
func NewModel(ctx context.Context, fetch StatusFetcher, interval time.Duration) Model {
	if interval <= 0 {
		interval = bda.DefaultPollInterval
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = statusStyle

	return Model{
		ctx:      ctx,
		fetch:    fetch,
		interval: interval,
		spinner:  sp,
		started:  time.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.poll())
}

// poll fetches the status once.
func (m Model) poll() tea.Cmd {
	return func() tea.Msg {
		status, err := m.fetch(m.ctx)
		if err != nil {
			return statusErrMsg{err: err}
		}
		return statusMsg(status)
	}
}

// schedule queues the next poll.
func (m Model) schedule() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return pollMsg{}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quit = true
			return m, tea.Quit
		}
		return m, nil

	case statusMsg:
		m.status = bda.JobStatus(msg)
		m.polls++
		if bda.Terminal(m.status.Status) {
			m.done = true
			return m, tea.Quit
		}
		return m, m.schedule()

	case statusErrMsg:
		m.err = msg.err
		return m, tea.Quit

	case pollMsg:
		return m, m.poll()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	header := titleStyle.Render("watching job") + " " + dimStyle.Render(m.status.InvocationARN)

	var line string
	switch {
	case m.err != nil:
		line = errorStyle.Render("error: " + m.err.Error())
	case m.done && m.status.Succeeded():
		line = successStyle.Render("Success") + dimStyle.Render("  "+m.status.MetadataURI)
	case m.done:
		line = errorStyle.Render(fmt.Sprintf("%s: %s", m.status.Status, m.status.ErrorMessage))
	case m.status.Status == "":
		line = m.spinner.View() + statusStyle.Render("submitting first status request")
	default:
		line = m.spinner.View() + statusStyle.Render(m.status.Status)
	}

	footer := dimStyle.Render(fmt.Sprintf("started %s, %d polls, q to quit",
		humanize.Time(m.started), m.polls))

	return fmt.Sprintf("%s\n%s\n%s\n", header, line, footer)
}

// Status returns the last observed status, for callers picking up after the
// program exits.
func (m Model) Status() (bda.JobStatus, error) {
	if m.err != nil {
		return m.status, m.err
	}
	if m.quit && !m.done {
		return m.status, fmt.Errorf("watch interrupted before the job finished")
	}
	return m.status, nil
}

// Watch runs the watcher until the job reaches a terminal state or the user
// quits, then returns the final status.
func Watch(ctx context.Context, fetch StatusFetcher, interval time.Duration) (bda.JobStatus, error) {
	final, err := tea.NewProgram(NewModel(ctx, fetch, interval), tea.WithContext(ctx)).Run()
	if err != nil {
		return bda.JobStatus{}, err
	}

	return final.(Model).Status()
}
