package vidmode

import (
	"time"
)

const modalPollInterval = 16 * time.Millisecond

// modalConfirm blocks the frame loop on a yes/no question, polling input
// itself. Y accepts, N or escape declines, running out of time accepts.
type modalConfirm struct {
	input   *Input
	display *Display
	console *Console

	now   func() time.Time
	sleep func(time.Duration)
}

func newModalConfirm(input *Input, display *Display, console *Console) *modalConfirm {
	return &modalConfirm{
		input:   input,
		display: display,
		console: console,
		now:     time.Now,
		sleep:   time.Sleep,
	}
}

func (m *modalConfirm) Confirm(prompt string, timeout time.Duration) bool {
	m.console.Printf("%s", prompt)
	deadline := m.now().Add(timeout)
	for m.now().Before(deadline) {
		m.input.poll(m.display)
		switch {
		case m.input.JustPressed[KeyY]:
			return true
		case m.input.JustPressed[KeyN], m.input.JustPressed[KeyEscape]:
			return false
		}
		m.sleep(modalPollInterval)
	}
	return true
}
