package util

import (
	"os"

	"golang.org/x/crypto/ssh/terminal"
)

// InTerminal determines whether stderr is attached to a terminal; UI
// decorations like spinners are only shown when it is.
func InTerminal() bool {
	return terminal.IsTerminal(int(os.Stderr.Fd()))
}
