package components

import (
	"fmt"
	"strings"

	kb "github.com/PizzaHomicide/lumix/internal/ui/tui/keybindings"
	"github.com/PizzaHomicide/lumix/internal/ui/tui/styles"
)

// KeyBinding represents a single key and its description for the keybinding bar
type KeyBinding struct {
	Key  string
	Desc string
}

// KeyBindingsBar creates a styled footer showing a set of keybindings
// width: The width of the screen to center the bar
// bindings: The list of keybindings to display
func KeyBindingsBar(width int, bindings []KeyBinding) string {
	var parts []string
	for _, b := range bindings {
		parts = append(parts, fmt.Sprintf("%s: %s",
			styles.Key.Render(b.Key),
			b.Desc))
	}

	keyBar := styles.Info.Render(strings.Join(parts, " • "))
	return styles.CenteredText(width, keyBar)
}

// FromActions builds bar entries for the given actions using the primary key bound to each in a context
func FromActions(context kb.ContextName, actions map[kb.Action]string, order []kb.Action) []KeyBinding {
	bindings := kb.ContextBindings[context]
	var result []KeyBinding
	for _, action := range order {
		key := kb.GetActionKey(action, bindings)
		if key == "" {
			continue
		}
		result = append(result, KeyBinding{Key: key, Desc: actions[action]})
	}
	return result
}
