// Package ui provides the live --watch view using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/skyq/internal/astro"
	"github.com/litescript/skyq/internal/ephem"
	"github.com/litescript/skyq/internal/instant"
	"github.com/litescript/skyq/internal/query"
	"github.com/litescript/skyq/internal/render"
	"github.com/litescript/skyq/internal/version"
)

// Msg types for Bubble Tea
type (
	// TickMsg re-runs the query at the carried time.
	TickMsg time.Time
)

// Options configure the watch view.
type Options struct {
	Executor *query.Executor
	Query    query.Query
	// Provider locates the object for the sky panel. Nil, or a query
	// without a location, hides the panel.
	Provider ephem.Provider
	Clock    instant.Clock
	Refresh  time.Duration
}

// Model is the root Bubble Tea model.
type Model struct {
	opts Options
	sky  SkyPanel

	width  int
	height int

	// Last evaluation
	at       instant.Instant
	result   query.Result
	target   *astro.Horizontal
	err      error
	computed bool
	ticks    int
}

// New creates the watch model.
func New(opts Options) Model {
	if opts.Clock == nil {
		opts.Clock = instant.SystemClock{}
	}
	if opts.Refresh <= 0 {
		opts.Refresh = time.Second
	}
	return Model{opts: opts, sky: NewSkyPanel()}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	clock := m.opts.Clock
	return func() tea.Msg { return TickMsg(clock.Now()) }
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Header, table and footer take roughly ten lines.
		m.sky = m.sky.SetSize(msg.Width-4, max(6, msg.Height-10-len(m.result.Rows)))

	case TickMsg:
		m = m.evaluate(instant.FromTime(time.Time(msg)))
		m.ticks++
		return m, tickCmd(m.opts.Refresh, m.opts.Clock)
	}
	return m, nil
}

func (m Model) evaluate(at instant.Instant) Model {
	m.at = at
	m.computed = true
	m.result, m.err = m.opts.Executor.At(m.opts.Query, at)

	m.target = nil
	loc := m.opts.Query.Location
	if m.opts.Provider != nil && loc != nil && m.err == nil {
		h, err := m.opts.Provider.Horizontal(m.opts.Query.Object.Body, at, *loc)
		if err == nil {
			m.target = &h
		}
	}
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.computed {
		return "Computing..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.err != nil {
		errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
		b.WriteString("  " + errorStyle.Render("ERROR: "+m.err.Error()))
		b.WriteString("\n")
	} else {
		var table strings.Builder
		if err := render.Write(&table, m.result, render.Term, render.Options{Color: true}); err != nil {
			table.WriteString(err.Error())
		}
		for _, line := range strings.Split(strings.TrimRight(table.String(), "\n"), "\n") {
			b.WriteString("  " + line + "\n")
		}
	}

	if m.target != nil {
		b.WriteString("\n")
		jd := m.at.JD()
		panel := m.sky.Render(*m.target, m.opts.Query.Object.Name, *m.opts.Query.Location, jd)
		for _, line := range strings.Split(panel, "\n") {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	title := m.opts.Query.Object.Name
	if loc := m.opts.Query.Location; loc != nil {
		title += " from " + loc.String()
	}
	return "  " + accentStyle.Render("skyq") + dimStyle.Render(" v"+version.Version) +
		"  " + title + dimStyle.Render("  "+m.at.String()+" UTC")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))

	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinner := spinnerFrames[m.ticks%len(spinnerFrames)]

	status := accentStyle.Render(spinner) + dimStyle.Render(fmt.Sprintf(" refresh every %s", m.opts.Refresh))
	return "  " + status + "  " + dimStyle.Render("|") + "  " + dimStyle.Render("q: quit")
}

func tickCmd(every time.Duration, clock instant.Clock) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg {
		return TickMsg(clock.Now())
	})
}
