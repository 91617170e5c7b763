package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PizzaHomicide/lumix/internal/domain"
	"github.com/PizzaHomicide/lumix/internal/log"
	"github.com/PizzaHomicide/lumix/internal/ui/tui/styles"
	"github.com/PizzaHomicide/lumix/internal/ui/tui/util"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrInvalidMenuEntry = errors.New("menu entry must have exactly one of a route or an action")

// MenuEntry is a single selectable row.  It either navigates to Route or runs Action, never both.
type MenuEntry struct {
	Title    string
	Subtitle string
	Route    string
	Action   tea.Cmd
}

func (e MenuEntry) Validate() error {
	if (e.Route == "") == (e.Action == nil) {
		return fmt.Errorf("%w: %q", ErrInvalidMenuEntry, e.Title)
	}
	return nil
}

// Activate returns the command for selecting the entry
func (e MenuEntry) Activate(nav Navigator) tea.Cmd {
	if e.Route != "" {
		log.Debug("Menu entry navigating", "title", e.Title, "route", e.Route)
		return nav.Navigate(e.Route)
	}
	log.Debug("Menu entry running action", "title", e.Title)
	return e.Action
}

// menuRow is an entry placed in a section of the profile.  Rows for preferences carry the key they toggle so the
// switch state can be drawn next to them.
type menuRow struct {
	Section string
	Entry   MenuEntry
	Pref    domain.PreferenceKey
}

// renderRow draws a single row at the given width
func renderRow(row menuRow, selected bool, prefs domain.Preferences, width int) string {
	marker := "  "
	if selected {
		marker = "> "
	}

	var suffix string
	if row.Pref != "" {
		on, _ := prefs.Get(row.Pref)
		suffix = styles.Switch(on)
	} else if row.Entry.Route != "" {
		suffix = styles.Subtle.Render("›")
	}

	titleWidth := max(width-len(marker)-6, 10)
	title := util.PadRight(util.TruncateString(row.Entry.Title, titleWidth), titleWidth)
	if selected {
		title = styles.Selected.Render(title)
	} else if row.Section == sectionAccount {
		title = styles.Danger.Render(title)
	} else {
		title = styles.Info.Render(title)
	}

	line := marker + title + " " + suffix
	if row.Entry.Subtitle == "" {
		return line
	}
	subtitle := util.TruncateString(row.Entry.Subtitle, max(width-4, 10))
	return line + "\n    " + styles.Muted.Render(subtitle)
}

// renderSectionTitle draws the heading shown above the rows of a section
func renderSectionTitle(title string) string {
	return styles.Key.Render(strings.ToUpper(title))
}
