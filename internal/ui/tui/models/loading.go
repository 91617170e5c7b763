package models

import (
	"strings"
	"time"

	"github.com/PizzaHomicide/lumix/internal/ui/tui/styles"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LoadingModel displays a spinner with a message while the profile is fetched
type LoadingModel struct {
	width, height int
	title         string // Optional title for the loading box
	message       string // Primary message displayed with the spinner
	contextInfo   string // Optional additional context
	spinner       spinner.Model
	startTime     time.Time
}

// NewLoadingModel creates a new loading model with the required message
func NewLoadingModel(message string) *LoadingModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return &LoadingModel{
		message:   message,
		spinner:   s,
		startTime: time.Now(),
	}
}

// WithTitle adds an optional title to the loading box
func (m *LoadingModel) WithTitle(title string) *LoadingModel {
	m.title = title
	return m
}

// WithContextInfo adds additional context information
func (m *LoadingModel) WithContextInfo(info string) *LoadingModel {
	m.contextInfo = info
	return m
}

func (m *LoadingModel) ViewType() View {
	return ViewLoading
}

// Init restarts the elapsed timer and starts the spinner
func (m *LoadingModel) Init() tea.Cmd {
	m.startTime = time.Now()
	return m.spinner.Tick
}

func (m *LoadingModel) Update(msg tea.Msg) (Model, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(tick)
		return m, cmd
	}
	return m, nil
}

func (m *LoadingModel) View() string {
	palette := styles.CurrentPalette()

	contentWidth := min(m.width-20, 60)
	if contentWidth < 30 {
		contentWidth = max(min(m.width-4, 30), 10)
	}

	spinnerStyle := lipgloss.NewStyle().
		Foreground(palette.Highlight).
		Bold(true).
		PaddingRight(1)

	centerStyle := lipgloss.NewStyle().
		Width(contentWidth - 6).
		Align(lipgloss.Center)

	var b strings.Builder
	primaryRow := spinnerStyle.Render(m.spinner.View()) + " " + styles.Info.Bold(true).Render(m.message)
	b.WriteString(centerStyle.Render(primaryRow))

	if m.contextInfo != "" {
		b.WriteString("\n\n")
		b.WriteString(centerStyle.Inherit(styles.Muted).Italic(true).Render(m.contextInfo))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(palette.Highlight).
		Padding(1, 3).
		Width(contentWidth).
		Render(b.String())

	view := box
	if m.title != "" {
		header := styles.Title.Width(contentWidth).Align(lipgloss.Center).Render(m.title)
		view = lipgloss.JoinVertical(lipgloss.Center, header, box)
	}

	return styles.CenteredView(m.width, m.height, view)
}

func (m *LoadingModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// GetElapsedTime returns the time elapsed since loading started
func (m *LoadingModel) GetElapsedTime() time.Duration {
	return time.Since(m.startTime)
}
