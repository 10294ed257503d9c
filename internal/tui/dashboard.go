// Package tui provides the interactive terminal dashboard for Studypace.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/studypace/internal/dates"
	"github.com/manav03panchal/studypace/internal/model"
	"github.com/manav03panchal/studypace/internal/pace"
	"github.com/manav03panchal/studypace/internal/storage"
)

// Styles for the dashboard.
var (
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	StyleSubtitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	StyleSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981"))

	StyleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))

	StyleHelp = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// tickMsg is sent when the timer ticks.
type tickMsg time.Time

// refreshMsg is sent when data needs to be refreshed.
type refreshMsg struct{}

// storageChangedMsg is sent when a watched key changes.
type storageChangedMsg struct{}

// DashboardModel is the main bubbletea model for the dashboard.
type DashboardModel struct {
	// Data
	ownerKey  string
	materials []*model.Material
	cards     []*model.ProgressCard
	week      []model.GraphPoint
	selected  int

	// Repositories
	materialRepo *storage.MaterialRepo
	todoRepo     *storage.TodoRepo
	progressRepo *storage.ProgressRepo

	// Storage watch
	events <-chan storage.Event
	cancel context.CancelFunc

	// UI state
	width  int
	height int
	err    error

	// Configuration
	refreshInterval time.Duration
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	DB              *storage.DB
	OwnerKey        string
	MaterialRepo    *storage.MaterialRepo
	TodoRepo        *storage.TodoRepo
	ProgressRepo    *storage.ProgressRepo
	RefreshInterval time.Duration
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(config DashboardConfig) *DashboardModel {
	if config.RefreshInterval == 0 {
		config.RefreshInterval = time.Second
	}

	watchCtx, cancel := context.WithCancel(context.Background())
	events := config.DB.WatchOwner(watchCtx, config.OwnerKey)

	return &DashboardModel{
		ownerKey:        config.OwnerKey,
		materialRepo:    config.MaterialRepo,
		todoRepo:        config.TodoRepo,
		progressRepo:    config.ProgressRepo,
		events:          events,
		cancel:          cancel,
		refreshInterval: config.RefreshInterval,
	}
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.refreshCmd(),
		m.waitForChangeCmd(),
	)
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, m.tickCmd()

	case refreshMsg:
		m.loadData()
		return m, nil

	case storageChangedMsg:
		m.loadData()
		return m, m.waitForChangeCmd()
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.cancel()
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
			m.loadWeek()
		}
		return m, nil

	case "down", "j":
		if m.selected < len(m.cards)-1 {
			m.selected++
			m.loadWeek()
		}
		return m, nil

	case "r":
		m.loadData()
		return m, nil
	}

	return m, nil
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	title := StyleTitle.Render("Studypace Dashboard")
	now := StyleSubtitle.Render(time.Now().Format("Mon Jan 2, 15:04"))
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", now)+"\n")

	if m.err != nil {
		sections = append(sections, StyleError.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	if len(m.cards) == 0 {
		sections = append(sections, StyleSubtitle.Render("No materials with deadlines. Add one with 'studypace material add'."))
	}

	for i, card := range m.cards {
		sections = append(sections, m.renderCard(card, i == m.selected))
	}

	if len(m.week) > 0 {
		sections = append(sections, m.renderWeek())
	}

	sections = append(sections, StyleHelp.Render("↑/↓ select · r refresh · q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderCard renders one material's plan line.
func (m *DashboardModel) renderCard(card *model.ProgressCard, selected bool) string {
	marker := "  "
	if selected {
		marker = "> "
	}

	status := "todo"
	if card.Logged() {
		status = fmt.Sprintf("done %d-%d", *card.DoneStart, *card.DoneEnd)
	}

	line := fmt.Sprintf("%s%s  %d %s (%d-%d)  %s",
		marker, card.Title, card.TodayQuota, card.UnitType,
		card.PlannedStart, card.PlannedEnd, status)

	if selected {
		return StyleSelected.Render(line)
	}
	return line
}

// renderWeek renders the selected material's ISO-week timeline.
func (m *DashboardModel) renderWeek() string {
	var b strings.Builder
	b.WriteString(StyleSubtitle.Render("This week (remaining work)") + "\n")

	for _, p := range m.week {
		actual := "  ·"
		if p.Actual != nil {
			actual = fmt.Sprintf("%3d", *p.Actual)
		}
		ideal := "  ·"
		if p.Ideal != nil {
			ideal = fmt.Sprintf("%3d", *p.Ideal)
		}
		b.WriteString(fmt.Sprintf("  %s  actual %s  ideal %s\n", p.Date, actual, ideal))
	}

	return b.String()
}

// loadData loads materials and rebuilds today's cards.
func (m *DashboardModel) loadData() {
	materials, err := m.materialRepo.List(m.ownerKey)
	if err != nil {
		m.err = err
		return
	}
	m.materials = materials

	now := time.Now()
	todos, err := m.todoRepo.ListDay(m.ownerKey, dates.DayKey(now))
	if err != nil {
		m.err = err
		return
	}

	m.cards = pace.TodayCards(materials, todos, now)
	if m.selected >= len(m.cards) {
		m.selected = 0
	}
	m.err = nil

	m.loadWeek()
}

// loadWeek rebuilds the week timeline for the selected material.
func (m *DashboardModel) loadWeek() {
	m.week = nil
	if m.selected >= len(m.cards) {
		return
	}

	card := m.cards[m.selected]
	var material *model.Material
	for _, mat := range m.materials {
		if mat.ID == card.MaterialID {
			material = mat
			break
		}
	}
	if material == nil {
		return
	}

	logs, err := m.progressRepo.ListByMaterial(m.ownerKey, material.ID)
	if err != nil {
		return
	}

	points := pace.BuildGraphPoints(material, logs)
	m.week = pace.FilterToISOWeek(points, time.Now())
}

// tickCmd returns a command that sends a tick message.
func (m *DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refreshCmd returns a command that sends a refresh message.
func (m *DashboardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{}
	}
}

// waitForChangeCmd blocks on the storage watch stream.
func (m *DashboardModel) waitForChangeCmd() tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-m.events; !ok {
			return nil
		}
		return storageChangedMsg{}
	}
}

// Run starts the dashboard TUI.
func Run(config DashboardConfig) error {
	model := NewDashboardModel(config)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
