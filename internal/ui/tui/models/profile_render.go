package models

import (
	"fmt"
	"strings"

	"github.com/PizzaHomicide/lumix/internal/ui/tui/components"
	kb "github.com/PizzaHomicide/lumix/internal/ui/tui/keybindings"
	"github.com/PizzaHomicide/lumix/internal/ui/tui/styles"
	"github.com/PizzaHomicide/lumix/internal/ui/tui/util"
	"github.com/charmbracelet/lipgloss"
)

// Lines used by the header above and the status line and key bar below the scrolling body
const profileChromeHeight = 6

// View renders the profile for its current state
func (m *ProfileModel) View() string {
	if m.confirm != nil {
		return m.confirm.View()
	}

	switch m.state {
	case profileLoading:
		return m.loading.View()
	case profileError:
		return m.renderError()
	default:
		return m.renderLoaded()
	}
}

func (m *ProfileModel) contentWidth() int {
	return min(max(m.width-4, 30), 76)
}

func (m *ProfileModel) renderError() string {
	width := m.contentWidth()

	reason := "Something went wrong while fetching your profile."
	if m.loadErr != nil {
		reason = util.TruncateString(m.loadErr.Error(), width-4)
	}

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		styles.Danger.Render("Unable to load profile"),
		"",
		styles.Muted.Render(reason),
		"",
		styles.Key.Render(kb.GetActionKey(kb.ActionRefreshProfile, kb.ContextBindings[kb.ContextProfile]))+styles.Info.Render(": Retry"),
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.CurrentPalette().Danger).
		Padding(1, 3).
		Width(width).
		Align(lipgloss.Center).
		Render(body)

	footer := components.KeyBindingsBar(m.width, []components.KeyBinding{
		{Key: "r", Desc: "Retry"},
		{Key: "ctrl+h", Desc: "Help"},
		{Key: "ctrl+c", Desc: "Quit"},
	})

	return lipgloss.JoinVertical(
		lipgloss.Left,
		styles.Header(m.width, "Profile"),
		styles.CenteredView(m.width, max(m.height-4, 0), box),
		footer,
	)
}

func (m *ProfileModel) renderLoaded() string {
	width := m.contentWidth()

	settingsKey := kb.GetActionKey(kb.ActionOpenSettings, kb.ContextBindings[kb.ContextProfile])
	settingsHint := lipgloss.NewStyle().Width(m.width).Align(lipgloss.Right).
		Render(styles.Key.Render(settingsKey) + styles.Muted.Render(": Settings "))

	lines, cursorLine := m.bodyLines(width)
	lines = m.window(lines, cursorLine)
	body := lipgloss.NewStyle().PaddingLeft(max((m.width-width)/2, 0)).Render(strings.Join(lines, "\n"))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		styles.Header(m.width, "Profile"),
		settingsHint,
		body,
		"",
		m.renderStatus(),
		m.renderFooter(),
	)
}

// bodyLines renders everything below the header as lines, reporting the line the cursor row starts on
func (m *ProfileModel) bodyLines(width int) ([]string, int) {
	var lines []string
	add := func(block string) {
		lines = append(lines, strings.Split(block, "\n")...)
	}

	add(m.renderCard(width))
	add(m.renderStats(width))

	if m.searchMode || m.filter != "" {
		add("")
		add(styles.Title.Render("Filter:") + " " + m.searchInput.View())
	}

	rows := m.visibleRows()
	if len(rows) == 0 {
		add("")
		add(styles.Muted.Render("No entries match your filter"))
		return lines, 0
	}

	cursorLine := 0
	section := ""
	for i, row := range rows {
		if row.Section != section {
			section = row.Section
			add("")
			if section != sectionAccount {
				add(renderSectionTitle(section))
			}
		}
		if i == m.cursor {
			cursorLine = len(lines)
		}
		add(renderRow(row, i == m.cursor, m.prefs, width))
	}
	return lines, cursorLine
}

// window trims lines to the available height keeping the cursor row in view
func (m *ProfileModel) window(lines []string, cursorLine int) []string {
	available := m.height - profileChromeHeight
	if m.height == 0 || available < 1 || len(lines) <= available {
		return lines
	}
	start := min(max(cursorLine-available/2, 0), len(lines)-available)
	return lines[start : start+available]
}

func (m *ProfileModel) renderCard(width int) string {
	user := m.profile.User
	palette := styles.CurrentPalette()
	infoWidth := max(width-14, 10)

	avatar := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(palette.Primary).
		Padding(1, 2).
		Render(util.Initials(user.Name))

	info := []string{styles.Info.Bold(true).Render(util.TruncateString(user.Name, infoWidth))}
	if user.Email != "" {
		info = append(info, styles.Muted.Render(util.TruncateString(user.Email, infoWidth)))
	}
	if user.JoinDate != "" {
		info = append(info, styles.Subtle.Render("Member since "+user.JoinDate))
	}
	if user.Avatar != "" {
		info = append(info, styles.Url.Render(util.TruncateString(user.Avatar, infoWidth)))
	} else {
		info = append(info, styles.Subtle.Render("Default avatar"))
	}
	editKey := kb.GetActionKey(kb.ActionEditProfile, kb.ContextBindings[kb.ContextProfile])
	info = append(info, styles.Key.Render(editKey)+styles.Muted.Render(": Edit profile"))

	content := lipgloss.JoinHorizontal(lipgloss.Top, avatar, "  ", lipgloss.JoinVertical(lipgloss.Left, info...))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(palette.Border).
		Padding(0, 1).
		Width(width).
		Render(content)
}

func (m *ProfileModel) renderStats(width int) string {
	stats := m.profile.Statistics
	cellWidth := max((width-2)/3, 8)

	cell := func(value int, label string) string {
		return lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center).
			Render(styles.Info.Bold(true).Render(fmt.Sprint(value)) + "\n" + styles.Muted.Render(label))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		cell(stats.Watched, "Watched"),
		cell(stats.Favorites, "Favorites"),
		cell(stats.Reviews, "Reviews"),
	)
	summary := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Render(styles.Subtle.Render(fmt.Sprintf("watched/favorites/reviews %s", stats)))

	return lipgloss.JoinVertical(lipgloss.Left, row, summary)
}

func (m *ProfileModel) renderStatus() string {
	if m.status == "" {
		return ""
	}
	text := util.TruncateString(m.status, max(m.width-2, 10))
	if m.statusIsError {
		return styles.CenteredText(m.width, styles.Danger.Render(text))
	}
	return styles.CenteredText(m.width, styles.Muted.Render(text))
}

func (m *ProfileModel) renderFooter() string {
	if m.searchMode {
		return components.KeyBindingsBar(m.width, []components.KeyBinding{
			{Key: "enter", Desc: "Apply filter"},
			{Key: "esc", Desc: "Clear filter"},
		})
	}

	bindings := []components.KeyBinding{{Key: "↑/↓", Desc: "Navigate"}}
	bindings = append(bindings, components.FromActions(kb.ContextProfile, map[kb.Action]string{
		kb.ActionSelect:       "Select",
		kb.ActionEnableSearch: "Filter",
		kb.ActionSignOut:      "Sign out",
	}, []kb.Action{kb.ActionSelect, kb.ActionEnableSearch, kb.ActionSignOut})...)
	bindings = append(bindings, components.KeyBinding{Key: "ctrl+h", Desc: "Help"})

	return components.KeyBindingsBar(m.width, bindings)
}
