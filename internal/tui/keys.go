package tui

// Key bindings.
const (
	keyCtrlC    = "ctrl+c"
	keyEsc      = "esc"
	keyEnter    = "enter"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
	keyUp       = "up"
	keyDown     = "down"
	keyLeft     = "left"
	keyRight    = "right"
	keyQuit     = "q"
	keyPgUp     = "pgup"
	keyPgDown   = "pgdown"
)
