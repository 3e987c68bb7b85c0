package video

import "time"

// Logger is the method set of the engine logger.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Audio is paused for the duration of a mode switch.
type Audio interface {
	Pause()
	Resume()
}

// Input is the key-state and mouse-grab owner.
type Input interface {
	ClearStates()
	Activate()
	Deactivate(freeCursor bool)
}

// UI reports whether a console or menu currently has key focus.
type UI interface {
	InConsoleOrMenu() bool
}

// Confirmer shows a modal yes/no prompt and blocks until answered.
// A timeout counts as yes.
type Confirmer interface {
	Confirm(prompt string, timeout time.Duration) bool
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

type nopAudio struct{}

func (nopAudio) Pause()  {}
func (nopAudio) Resume() {}

type nopInput struct{}

func (nopInput) ClearStates()    {}
func (nopInput) Activate()       {}
func (nopInput) Deactivate(bool) {}

type nopUI struct{}

func (nopUI) InConsoleOrMenu() bool { return false }

type acceptAll struct{}

func (acceptAll) Confirm(string, time.Duration) bool { return true }
