package keybindings

import tea "github.com/charmbracelet/bubbletea"

// Action represents a specific action that can be triggered by a key
type Action string

// Define all possible actions
const (
	// Global actions
	ActionQuit       Action = "quit"
	ActionToggleHelp Action = "toggle_help"
	ActionBack       Action = "back" // General purpose "go back" or "cancel"

	// Navigation actions
	ActionMoveUp     Action = "move_up"
	ActionMoveDown   Action = "move_down"
	ActionPageUp     Action = "page_up"
	ActionPageDown   Action = "page_down"
	ActionMoveTop    Action = "move_top"
	ActionMoveBottom Action = "move_bottom"

	// Profile actions
	ActionSelect                 Action = "select"
	ActionRefreshProfile         Action = "refresh_profile"
	ActionEditProfile            Action = "edit_profile"
	ActionOpenSettings           Action = "open_settings"
	ActionToggleDarkMode         Action = "toggle_dark_mode"
	ActionToggleNotifications    Action = "toggle_notifications"
	ActionToggleAutoplayTrailers Action = "toggle_autoplay_trailers"
	ActionSignOut                Action = "sign_out"

	// Confirmation dialog actions
	ActionMoveLeft     Action = "move_left"
	ActionMoveRight    Action = "move_right"
	ActionSwitchOption Action = "switch_option"
	ActionConfirmYes   Action = "confirm_yes"
	ActionConfirmNo    Action = "confirm_no"

	// Signed out view actions
	ActionQuitSignedOut Action = "quit_signed_out"

	// Search mode actions
	ActionEnableSearch   Action = "enable_search"
	ActionSearchComplete Action = "search_complete"
)

// ContextName represents a specific UI context in the application that has its own keybinds
type ContextName string

const (
	ContextGlobal     ContextName = "global"
	ContextProfile    ContextName = "profile"
	ContextConfirm    ContextName = "confirm"
	ContextRoute      ContextName = "route"
	ContextSignedOut  ContextName = "signed_out"
	ContextSearchMode ContextName = "search_mode"
	ContextHelp       ContextName = "help"
)

var ContextBindings = map[ContextName][]Binding{
	ContextGlobal:     globalBindings,
	ContextProfile:    profileBindings,
	ContextConfirm:    confirmBindings,
	ContextRoute:      routeBindings,
	ContextSignedOut:  signedOutBindings,
	ContextSearchMode: searchModeBindings,
	ContextHelp:       helpBindings,
}

// KeyMap stores the mappings from actions to key sequences for each context
type KeyMap struct {
	Primary   string
	Secondary string // Optional alternative key
	Help      string // Description for help screen
}

// Binding maps an action to its keys and help text
type Binding struct {
	Action Action
	KeyMap KeyMap
}

// navigationBindings contains general navigation bindings for consistent navigation across the app
var navigationBindings = []Binding{
	{
		Action: ActionMoveUp,
		KeyMap: KeyMap{
			Primary:   "up",
			Secondary: "k",
			Help:      "Move cursor up",
		},
	},
	{
		Action: ActionMoveDown,
		KeyMap: KeyMap{
			Primary:   "down",
			Secondary: "j",
			Help:      "Move cursor down",
		},
	},
	{
		Action: ActionPageUp,
		KeyMap: KeyMap{
			Primary: "pgup",
			Help:    "Move up one page",
		},
	},
	{
		Action: ActionPageDown,
		KeyMap: KeyMap{
			Primary: "pgdown",
			Help:    "Move down one page",
		},
	},
	{
		Action: ActionMoveTop,
		KeyMap: KeyMap{
			Primary: "home",
			Help:    "Move top of view",
		},
	},
	{
		Action: ActionMoveBottom,
		KeyMap: KeyMap{
			Primary: "end",
			Help:    "Move bottom of view",
		},
	},
}

// globalBindings contains key bindings that work across all views
var globalBindings = []Binding{
	{
		Action: ActionQuit,
		KeyMap: KeyMap{
			Primary: "ctrl+c",
			Help:    "Quit application",
		},
	},
	{
		Action: ActionToggleHelp,
		KeyMap: KeyMap{
			Primary: "ctrl+h",
			Help:    "Toggle help screen",
		},
	},
	{
		Action: ActionBack,
		KeyMap: KeyMap{
			Primary: "esc",
			Help:    "Go back/cancel current action",
		},
	},
}

// helpBindings contains key bindings specific to the help view
var helpBindings = withNavigation([]Binding{})

// profileBindings contains key bindings specific to the profile view
var profileBindings = withNavigation([]Binding{
	{
		Action: ActionSelect,
		KeyMap: KeyMap{
			Primary: "enter",
			Help:    "Open, toggle or run the selected entry",
		},
	},
	{
		Action: ActionRefreshProfile,
		KeyMap: KeyMap{
			Primary: "r",
			Help:    "Reload profile (retry after an error)",
		},
	},
	{
		Action: ActionEditProfile,
		KeyMap: KeyMap{
			Primary: "e",
			Help:    "Edit profile",
		},
	},
	{
		Action: ActionOpenSettings,
		KeyMap: KeyMap{
			Primary: "s",
			Help:    "Open settings",
		},
	},
	{
		Action: ActionToggleDarkMode,
		KeyMap: KeyMap{
			Primary: "1",
			Help:    "Toggle dark mode",
		},
	},
	{
		Action: ActionToggleNotifications,
		KeyMap: KeyMap{
			Primary: "2",
			Help:    "Toggle notifications",
		},
	},
	{
		Action: ActionToggleAutoplayTrailers,
		KeyMap: KeyMap{
			Primary: "3",
			Help:    "Toggle auto-play trailers",
		},
	},
	{
		Action: ActionSignOut,
		KeyMap: KeyMap{
			Primary: "o",
			Help:    "Sign out",
		},
	},
	{
		Action: ActionEnableSearch,
		KeyMap: KeyMap{
			Primary:   "/",
			Secondary: "ctrl+f",
			Help:      "Filter entries",
		},
	},
})

// confirmBindings contains key bindings for confirmation dialogs
var confirmBindings = []Binding{
	{
		Action: ActionMoveLeft,
		KeyMap: KeyMap{
			Primary:   "left",
			Secondary: "h",
			Help:      "Select the option on the left",
		},
	},
	{
		Action: ActionMoveRight,
		KeyMap: KeyMap{
			Primary:   "right",
			Secondary: "l",
			Help:      "Select the option on the right",
		},
	},
	{
		Action: ActionSwitchOption,
		KeyMap: KeyMap{
			Primary: "tab",
			Help:    "Switch between options",
		},
	},
	{
		Action: ActionSelect,
		KeyMap: KeyMap{
			Primary: "enter",
			Help:    "Choose the selected option",
		},
	},
	{
		Action: ActionConfirmYes,
		KeyMap: KeyMap{
			Primary: "y",
			Help:    "Confirm",
		},
	},
	{
		Action: ActionConfirmNo,
		KeyMap: KeyMap{
			Primary:   "n",
			Secondary: "esc",
			Help:      "Cancel",
		},
	},
}

// routeBindings contains key bindings for pages opened from the profile.  Going back is handled globally.
var routeBindings = []Binding{}

// signedOutBindings contains key bindings for the signed out view
var signedOutBindings = []Binding{
	{
		Action: ActionQuitSignedOut,
		KeyMap: KeyMap{
			Primary:   "q",
			Secondary: "enter",
			Help:      "Quit",
		},
	},
}

// searchModeBindings contains key bindings specific for when search mode is active
var searchModeBindings = []Binding{
	{
		Action: ActionBack,
		KeyMap: KeyMap{
			Primary:   "esc",
			Secondary: "ctrl+f",
			Help:      "Exit filter mode and remove the filter",
		},
	},
	{
		Action: ActionSearchComplete,
		KeyMap: KeyMap{
			Primary: "enter",
			Help:    "Apply the filter and return control to the profile",
		},
	},
}

// GetActionKey returns the primary key for an action
func GetActionKey(action Action, bindings []Binding) string {
	for _, binding := range bindings {
		if binding.Action == action {
			return binding.KeyMap.Primary
		}
	}
	return ""
}

// GetActionByKey returns just the action for a given key, or an empty Action if not found
func GetActionByKey(keyMsg tea.KeyMsg, name ContextName) Action {
	if bindings, exists := ContextBindings[name]; exists {
		key := keyMsg.String()
		for _, binding := range bindings {
			if binding.KeyMap.Primary == key || binding.KeyMap.Secondary == key {
				return binding.Action
			}
		}
	}
	return ""
}

// withNavigation is a helper function to include navigation bindings in other binding sets
func withNavigation(bindings []Binding) []Binding {
	return append(append([]Binding{}, navigationBindings...), bindings...)
}
