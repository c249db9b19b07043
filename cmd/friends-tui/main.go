package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/terragord7/friends-analysis/pkg/config"
	"github.com/terragord7/friends-analysis/pkg/logging"
	"github.com/terragord7/friends-analysis/pkg/metrics"
	"github.com/terragord7/friends-analysis/pkg/pipeline"
	"github.com/terragord7/friends-analysis/pkg/summary"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginLeft(2).
			MarginTop(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#FF00FF")).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Padding(0, 2)

	contentStyle = lipgloss.NewStyle().
			MarginLeft(2).
			MarginTop(1)

	statsBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(1, 2).
			MarginRight(2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			MarginLeft(2)
)

type view int

const (
	dashboardView view = iota
	communitiesView
	rankingsView
	smallView
	layoutView
	viewCount
)

type keyMap struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
}

var keys = keyMap{
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev view"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("up/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("down/j", "down"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab},
		{k.Up, k.Down},
		{k.Quit},
	}
}

type model struct {
	result      *pipeline.Result
	currentView view
	overview    table.Model
	rankings    table.Model
	small       table.Model
	help        help.Model
	keys        keyMap
	width       int
	height      int
}

func styledTable(columns []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#00FFFF")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#FF00FF")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func initialModel(result *pipeline.Result) model {
	overviewRows := make([]table.Row, 0, len(result.Report.Overview))
	for _, c := range result.Report.Overview {
		overviewRows = append(overviewRows, table.Row{
			fmt.Sprintf("%d", c.Label),
			fmt.Sprintf("%d", c.Size),
			strings.Join(c.MostImportant, ", "),
		})
	}
	overview := styledTable([]table.Column{
		{Title: "Community", Width: 10},
		{Title: "Size", Width: 6},
		{Title: "Most Important", Width: 50},
	}, overviewRows)

	rankings := styledTable(rankedColumns(), rankedRows(result.Report.Large))
	small := styledTable(rankedColumns(), rankedRows(result.Report.Small))

	return model{
		result:      result,
		currentView: dashboardView,
		overview:    overview,
		rankings:    rankings,
		small:       small,
		help:        help.New(),
		keys:        keys,
	}
}

func rankedColumns() []table.Column {
	return []table.Column{
		{Title: "Community", Width: 10},
		{Title: "Rank", Width: 6},
		{Title: "Character", Width: 30},
		{Title: "Degree", Width: 8},
	}
}

func rankedRows(entries []summary.RankedEntry) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", e.Label),
			fmt.Sprintf("%d", e.Rank),
			e.Name,
			fmt.Sprintf("%d", e.Degree),
		})
	}
	return rows
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Tab):
			m.currentView = (m.currentView + 1) % viewCount

		case key.Matches(msg, m.keys.ShiftTab):
			if m.currentView == 0 {
				m.currentView = viewCount - 1
			} else {
				m.currentView--
			}
		}
	}

	switch m.currentView {
	case communitiesView:
		m.overview, cmd = m.overview.Update(msg)
	case rankingsView:
		m.rankings, cmd = m.rankings.Update(msg)
	case smallView:
		m.small, cmd = m.small.Update(msg)
	}

	return m, cmd
}

func (m model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("📺 Friends Interaction Analysis"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	switch m.currentView {
	case dashboardView:
		s.WriteString(m.renderDashboard())
	case communitiesView:
		s.WriteString(m.renderTable("Communities", m.overview))
	case rankingsView:
		s.WriteString(m.renderTable("Top Characters (large communities)", m.rankings))
	case smallView:
		s.WriteString(m.renderTable("Small Communities", m.small))
	case layoutView:
		s.WriteString(m.renderLayout())
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))

	return s.String()
}

func (m model) renderTabs() string {
	tabs := []string{"Dashboard", "Communities", "Rankings", "Small", "Layout"}
	var renderedTabs []string

	for i, tab := range tabs {
		if view(i) == m.currentView {
			renderedTabs = append(renderedTabs, activeTabStyle.Render(tab))
		} else {
			renderedTabs = append(renderedTabs, inactiveTabStyle.Render(tab))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)
}

func (m model) renderDashboard() string {
	r := m.result

	statsContent := fmt.Sprintf(`📊 Run %s

Edges loaded:  %d
Characters:    %d
Interactions:  %d
Communities:   %d
Modularity:    %.4f
Duration:      %s`,
		r.RunID[:8],
		len(r.Edges),
		r.Graph.Order(),
		r.Graph.Size(),
		len(r.Detection.Communities),
		r.Detection.Modularity,
		r.Duration.Round(time.Millisecond),
	)

	quickActions := `⚡ Navigation

[Tab]   Next view
[q]     Quit`

	statsBox := statsBoxStyle.Render(statsContent)
	actionsBox := statsBoxStyle.Render(quickActions)

	return contentStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Top, statsBox, actionsBox),
	)
}

// renderLayout draws the force-directed positions as an ASCII scatter,
// one digit per character showing its community label.
func (m model) renderLayout() string {
	const cols, lines = 72, 20

	grid := make([][]rune, lines)
	for i := range grid {
		grid[i] = make([]rune, cols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	r := m.result
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, pos := range r.Force {
		minX = math.Min(minX, pos.X)
		maxX = math.Max(maxX, pos.X)
		minY = math.Min(minY, pos.Y)
		maxY = math.Max(maxY, pos.Y)
	}
	spanX := math.Max(maxX-minX, 1)
	spanY := math.Max(maxY-minY, 1)

	for name, pos := range r.Force {
		x := int((pos.X - minX) / spanX * float64(cols-1))
		y := int((pos.Y - minY) / spanY * float64(lines-1))
		grid[y][x] = rune('0' + r.Detection.NodeCommunity[name]%10)
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render("Force-Directed Layout (digits are community labels)"))
	s.WriteString("\n\n")
	for _, row := range grid {
		s.WriteString(string(row))
		s.WriteString("\n")
	}
	return contentStyle.Render(s.String())
}

func (m model) renderTable(title string, t table.Model) string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(title))
	s.WriteString("\n\n")
	s.WriteString(t.View())
	return contentStyle.Render(s.String())
}

func main() {
	var (
		configFile = flag.String("config", "", "YAML configuration file (optional)")
		source     = flag.String("source", "", "Edge list source: path, http(s) URL, or s3:// URI")
	)
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *source != "" {
		cfg.Input.Source = *source
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	p := pipeline.New(cfg, logging.NewNopLogger(), metrics.DefaultRegistry())
	result, err := p.Run(context.Background())
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	prog := tea.NewProgram(initialModel(result), tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		log.Fatalf("TUI error: %v", err)
	}
}
