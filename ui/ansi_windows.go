//go:build windows

package ui

import (
	"os"

	"golang.org/x/sys/windows"
)

// enableANSI switches the Windows console into VT mode so the layout
// preview can use escape sequences.
func enableANSI() {
	stdout := windows.Handle(os.Stdout.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(stdout, &mode); err != nil {
		return
	}
	mode |= windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
	_ = windows.SetConsoleMode(stdout, mode)
}
