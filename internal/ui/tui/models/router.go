package models

import (
	"github.com/PizzaHomicide/lumix/internal/log"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	profileRoute = "/profile"
	loginRoute   = "/auth/login"
)

// Navigator moves the app between pages.  Paths are passed through as given, there is no validation of whether a
// page exists for them.
type Navigator interface {
	Navigate(path string) tea.Cmd
	Replace(path string) tea.Cmd
}

// Router keeps the stack of visited pages.  The profile is always the bottom of the stack until the stack is replaced.
type Router struct {
	stack []string
}

func NewRouter() *Router {
	return &Router{stack: []string{profileRoute}}
}

// Navigate returns a command that asks the app to push path onto the stack
func (r *Router) Navigate(path string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Path: path}
	}
}

// Replace returns a command that asks the app to replace the whole stack with path
func (r *Router) Replace(path string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Path: path, Replace: true}
	}
}

// Apply updates the stack for a navigation request
func (r *Router) Apply(msg NavigateMsg) {
	if msg.Replace {
		log.Info("Replacing route stack", "path", msg.Path)
		r.stack = []string{msg.Path}
		return
	}
	r.stack = append(r.stack, msg.Path)
	log.Info("Navigating", "path", msg.Path, "depth", r.Depth())
}

// Pop removes the current page.  The last page on the stack is never removed.
func (r *Router) Pop() bool {
	if len(r.stack) <= 1 {
		return false
	}
	r.stack = r.stack[:len(r.stack)-1]
	return true
}

func (r *Router) Current() string {
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int {
	return len(r.stack)
}

// RouteTitle returns a display title for a path.  Unknown paths are shown as-is.
func RouteTitle(path string) string {
	switch path {
	case "/favorites":
		return "Favorites"
	case "/history":
		return "Watch History"
	case "/settings":
		return "Settings"
	case "/edit-profile":
		return "Edit Profile"
	case profileRoute:
		return "Profile"
	default:
		return path
	}
}
