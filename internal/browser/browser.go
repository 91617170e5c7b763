// Package browser opens links in the user's default browser.
package browser

import (
	"os/exec"
	"runtime"

	"github.com/PizzaHomicide/lumix/internal/log"
)

// Opener opens a URL somewhere the user can see it
type Opener func(url string) error

// Open opens the specified URL in the default browser
func Open(url string) error {
	log.Info("Opening link in browser", "url", url)
	return command(runtime.GOOS, url).Start()
}

func command(goos, url string) *exec.Cmd {
	switch goos {
	case "darwin": // macOS
		return exec.Command("open", url)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default: // Linux and others
		return exec.Command("xdg-open", url)
	}
}
