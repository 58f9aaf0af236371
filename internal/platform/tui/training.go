package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/ga"
)

// GenerationMsg delivers a finished generation to the dashboard.
type GenerationMsg ga.GenerationResult

// TrainingDoneMsg reports that the optimizer returned.
type TrainingDoneMsg struct {
	Best ga.Individual
	Err  error
}

// TrainingKeyMap defines the key bindings for the training dashboard.
type TrainingKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k TrainingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k TrainingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultTrainingKeyMap returns default key bindings.
func DefaultTrainingKeyMap() TrainingKeyMap {
	return TrainingKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// TrainingModel shows optimizer progress: the latest generation's population
// and the best genome seen so far.
type TrainingModel struct {
	generations int
	latest      *ga.GenerationResult
	best        ga.Individual
	hasBest     bool
	started     time.Time
	done        bool
	err         error
	table       table.Model
	help        help.Model
	keys        TrainingKeyMap
	width       int
	quitting    bool
}

// NewTrainingModel creates a dashboard for a run of the given length.
func NewTrainingModel(generations, population int) TrainingModel {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "line", Width: 6},
		{Title: "height", Width: 7},
		{Title: "bump", Width: 6},
		{Title: "holes", Width: 6},
		{Title: "score", Width: 10},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(min(population, 15)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return TrainingModel{
		generations: generations,
		started:     time.Now(),
		table:       t,
		help:        help.New(),
		keys:        DefaultTrainingKeyMap(),
	}
}

// Init initializes the dashboard.
func (m TrainingModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the dashboard.
func (m TrainingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case GenerationMsg:
		res := ga.GenerationResult(msg)
		m.latest = &res
		if !m.hasBest || res.Best.Fitness > m.best.Fitness {
			m.best, m.hasBest = res.Best, true
		}
		m.updateRows()
		return m, nil

	case TrainingDoneMsg:
		m.done = true
		m.err = msg.Err
		if msg.Err == nil {
			m.best, m.hasBest = msg.Best, true
		}
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// updateRows lists the latest population, fittest first.
func (m *TrainingModel) updateRows() {
	inds := m.latest.Individuals
	order := make([]int, len(inds))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return inds[order[a]].Fitness > inds[order[b]].Fitness
	})

	rows := make([]table.Row, len(order))
	for i, slot := range order {
		ind := inds[slot]
		rows[i] = table.Row{
			fmt.Sprintf("%d", slot),
			fmt.Sprintf("%d", ind.Genome[0]),
			fmt.Sprintf("%d", ind.Genome[1]),
			fmt.Sprintf("%d", ind.Genome[2]),
			fmt.Sprintf("%d", ind.Genome[3]),
			fmt.Sprintf("%d", ind.Fitness),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// View renders the dashboard.
func (m TrainingModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString(titleStyle.Render("TRAINING"))
	b.WriteString("\n\n")

	gen := 0
	if m.latest != nil {
		gen = m.latest.Generation
	}
	fmt.Fprintf(&b, "Generation %d/%d   elapsed %s\n", gen, m.generations,
		time.Since(m.started).Round(time.Second))

	if m.hasBest {
		fmt.Fprintf(&b, "Best so far  %s  score %d\n", m.best.Genome, m.best.Fitness)
	} else {
		b.WriteString(dimStyle.Render("Evaluating first generation..."))
		b.WriteString("\n")
	}
	if m.latest != nil {
		g := m.latest.Groups
		b.WriteString(dimStyle.Render(fmt.Sprintf("next: %d crossover, %d mutation, %d selection",
			g.Crossover, g.Mutation, g.Selection)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.done:
		b.WriteString(titleStyle.Render("Training finished."))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Done reports whether the optimizer finished.
func (m TrainingModel) Done() bool {
	return m.done
}

// Best returns the best individual seen and whether there is one.
func (m TrainingModel) Best() (ga.Individual, bool) {
	return m.best, m.hasBest
}

// RunTraining shows the dashboard while train runs on its own goroutine.
// train reports progress through send. The returned bool is true when the
// user quit before training finished; the caller decides how to stop it.
func RunTraining(generations, population int, train func(send func(tea.Msg))) (interrupted bool, err error) {
	p := tea.NewProgram(NewTrainingModel(generations, population), tea.WithAltScreen())
	go train(p.Send)

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(TrainingModel)
	if !ok {
		return true, nil
	}
	return !m.Done(), nil
}
