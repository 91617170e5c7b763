package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette holds every colour the UI draws with so the whole UI can switch between dark and light mode at once
type Palette struct {
	Primary   lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Subtle    lipgloss.Color
	Border    lipgloss.Color
	Highlight lipgloss.Color
	Success   lipgloss.Color
	Danger    lipgloss.Color
	SwitchOff lipgloss.Color
}

var darkPalette = Palette{
	Primary:   lipgloss.Color("#7D56F4"),
	Text:      lipgloss.Color("#FAFAFA"),
	Muted:     lipgloss.Color("#A8B5DB"),
	Subtle:    lipgloss.Color("#777777"),
	Border:    lipgloss.Color("#555555"),
	Highlight: lipgloss.Color("#9D86FF"),
	Success:   lipgloss.Color("#43BF6D"),
	Danger:    lipgloss.Color("#F87171"),
	SwitchOff: lipgloss.Color("#9CA3AF"),
}

var lightPalette = Palette{
	Primary:   lipgloss.Color("#5B3CC4"),
	Text:      lipgloss.Color("#1F1F1F"),
	Muted:     lipgloss.Color("#4B5563"),
	Subtle:    lipgloss.Color("#9CA3AF"),
	Border:    lipgloss.Color("#D1D5DB"),
	Highlight: lipgloss.Color("#7D56F4"),
	Success:   lipgloss.Color("#15803D"),
	Danger:    lipgloss.Color("#DC2626"),
	SwitchOff: lipgloss.Color("#6B7280"),
}

var (
	current  Palette
	darkMode bool

	// Text styles, rebuilt whenever the palette changes
	Title        lipgloss.Style
	Info         lipgloss.Style
	Muted        lipgloss.Style
	Subtle       lipgloss.Style
	Url          lipgloss.Style
	FilterStatus lipgloss.Style
	Danger       lipgloss.Style
	Success      lipgloss.Style
	Selected     lipgloss.Style
	Key          lipgloss.Style
)

func init() {
	ApplyPalette(true)
}

// ApplyPalette switches every style to the dark or light palette
func ApplyPalette(dark bool) {
	darkMode = dark
	if dark {
		current = darkPalette
	} else {
		current = lightPalette
	}

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(current.Primary).
		Padding(0, 1)

	Info = lipgloss.NewStyle().
		Foreground(current.Text)

	Muted = lipgloss.NewStyle().
		Foreground(current.Muted)

	Subtle = lipgloss.NewStyle().
		Foreground(current.Subtle)

	Url = lipgloss.NewStyle().
		Foreground(current.Success).
		Underline(true)

	FilterStatus = lipgloss.NewStyle().
		Foreground(current.Muted).
		Padding(0, 2)

	Danger = lipgloss.NewStyle().
		Foreground(current.Danger).
		Bold(true)

	Success = lipgloss.NewStyle().
		Foreground(current.Success)

	Selected = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(current.Primary)

	Key = lipgloss.NewStyle().
		Foreground(current.Primary).
		Bold(true)
}

// CurrentPalette returns the palette in use
func CurrentPalette() Palette {
	return current
}

// IsDarkMode reports whether the dark palette is active
func IsDarkMode() bool {
	return darkMode
}

// Layout helpers
func Header(width int, title string) string {
	return Title.
		Width(width).
		Align(lipgloss.Center).
		Render(title)
}

func ContentBox(width int, content string, padding int) string {
	return lipgloss.NewStyle().
		Width(width).
		Padding(padding).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(current.Border).
		Render(content)
}

func CenteredView(width int, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func CenteredText(width int, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(text)
}

// Switch renders an on/off toggle
func Switch(on bool) string {
	if on {
		return lipgloss.NewStyle().Foreground(current.Highlight).Bold(true).Render("[  ●]")
	}
	return lipgloss.NewStyle().Foreground(current.SwitchOff).Render("[●  ]")
}
