// Package focus switches the user's terminal to the window owning a
// session. Activation is a UI convenience: failures are swallowed and the
// result is never awaited.
package focus

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/KornelijusGlinskas/keyboard-claude/internal/ports"
)

// scriptTemplate walks every iTerm2 window and tab looking for the
// session whose unique ID matches, un-miniaturizing and selecting it.
const scriptTemplate = `
tell application "iTerm2"
	activate
	repeat with w in windows
		if miniaturized of w then
			set miniaturized of w to false
		end if
		repeat with t in tabs of w
			repeat with s in sessions of t
				if unique ID of s is "%s" then
					select t
					return
				end if
			end repeat
		end repeat
	end repeat
end tell
`

// ITerm activates iTerm2 tabs through osascript.
type ITerm struct {
	// start launches the activation subprocess; replaceable in tests.
	start func(name string, args ...string) error
}

var _ ports.WindowActivator = (*ITerm)(nil)

func NewITerm() *ITerm {
	return &ITerm{
		start: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
}

// Activate selects the iTerm2 tab holding the given session. The window
// ref has the $ITERM_SESSION_ID shape "w0t0p0:GUID"; iTerm2's AppleScript
// unique ID is the GUID part.
func (a *ITerm) Activate(windowRef string) {
	if windowRef == "" {
		return
	}

	guid := windowRef
	if idx := strings.LastIndex(windowRef, ":"); idx >= 0 {
		guid = windowRef[idx+1:]
	}
	// GUIDs never contain quotes, but the ref comes from an external
	// log line; refuse anything that could escape the script string.
	if strings.ContainsAny(guid, `"\`) {
		return
	}

	script := fmt.Sprintf(scriptTemplate, guid)
	_ = a.start("osascript", "-e", script)
}
