package keybindings

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestNoDuplicateKeyBindings(t *testing.T) {
	// Check each context individually
	for contextName, bindings := range ContextBindings {
		t.Run(fmt.Sprintf("Context_%s", contextName), func(t *testing.T) {
			keyToAction := make(map[string]Action)

			for _, binding := range bindings {
				// Check primary key
				if existingAction, exists := keyToAction[binding.KeyMap.Primary]; exists {
					t.Errorf("Duplicate key binding '%s' in context '%s': "+
						"first assigned to action '%s', then to '%s'",
						binding.KeyMap.Primary, contextName, existingAction, binding.Action)
				} else {
					keyToAction[binding.KeyMap.Primary] = binding.Action
				}

				// Check secondary key if it exists
				if binding.KeyMap.Secondary != "" {
					if existingAction, exists := keyToAction[binding.KeyMap.Secondary]; exists {
						t.Errorf("Duplicate key binding '%s' in context '%s': "+
							"first assigned to action '%s', then to '%s'",
							binding.KeyMap.Secondary, contextName, existingAction, binding.Action)
					} else {
						keyToAction[binding.KeyMap.Secondary] = binding.Action
					}
				}
			}
		})
	}
}

func TestGetActionByKey(t *testing.T) {
	assert.Equal(t, ActionMoveDown, GetActionByKey(tea.KeyMsg{Type: tea.KeyDown}, ContextProfile))
	assert.Equal(t, ActionMoveDown, GetActionByKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, ContextProfile))
	assert.Equal(t, ActionToggleNotifications, GetActionByKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}}, ContextProfile))
	assert.Equal(t, ActionConfirmNo, GetActionByKey(tea.KeyMsg{Type: tea.KeyEsc}, ContextConfirm))
	assert.Equal(t, Action(""), GetActionByKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, ContextProfile))
	assert.Equal(t, Action(""), GetActionByKey(tea.KeyMsg{Type: tea.KeyEnter}, "missing"))
}

func TestGetActionKey(t *testing.T) {
	assert.Equal(t, "e", GetActionKey(ActionEditProfile, profileBindings))
	assert.Equal(t, "up", GetActionKey(ActionMoveUp, profileBindings))
	assert.Equal(t, "", GetActionKey(ActionSignOut, confirmBindings))
}
