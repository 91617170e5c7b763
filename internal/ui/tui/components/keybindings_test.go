package components

import (
	"testing"

	kb "github.com/PizzaHomicide/lumix/internal/ui/tui/keybindings"
	"github.com/stretchr/testify/assert"
)

func TestKeyBindingsBar(t *testing.T) {
	bar := KeyBindingsBar(80, []KeyBinding{{"enter", "Select"}, {"esc", "Back"}})

	assert.Contains(t, bar, "enter")
	assert.Contains(t, bar, "Select")
	assert.Contains(t, bar, " • ")
}

func TestFromActions(t *testing.T) {
	bindings := FromActions(kb.ContextProfile,
		map[kb.Action]string{kb.ActionEditProfile: "Edit", kb.ActionSignOut: "Sign out", "missing": "Nope"},
		[]kb.Action{kb.ActionEditProfile, "missing", kb.ActionSignOut})

	assert.Equal(t, []KeyBinding{{"e", "Edit"}, {"o", "Sign out"}}, bindings)
}
