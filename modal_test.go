package vidmode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestModal(in *Input) (*modalConfirm, *Console, *int) {
	c := NewConsole(nil)
	m := newModalConfirm(in, nil, c)
	clock := time.Unix(0, 0)
	sleeps := 0
	m.now = func() time.Time { return clock }
	m.sleep = func(d time.Duration) {
		sleeps++
		clock = clock.Add(d)
	}
	return m, c, &sleeps
}

func TestModalConfirm_Keys(t *testing.T) {
	tests := []struct {
		name string
		key  int
		want bool
	}{
		{"yes", KeyY, true},
		{"no", KeyN, false},
		{"escape", KeyEscape, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &Input{}
			m, c, sleeps := newTestModal(in)
			in.Queue(tt.key, true)

			assert.Equal(t, tt.want, m.Confirm("Would you like to keep this video mode? (y/n)\n", 5*time.Second))
			assert.Equal(t, 0, *sleeps)
			assert.Equal(t, []string{"Would you like to keep this video mode? (y/n)"}, c.Lines())
		})
	}
}

func TestModalConfirm_TimeoutAccepts(t *testing.T) {
	in := &Input{}
	m, _, sleeps := newTestModal(in)
	in.Queue(KeyEnter, true)

	assert.True(t, m.Confirm("keep?\n", 160*time.Millisecond))
	assert.Equal(t, 10, *sleeps)
}

func TestModalConfirm_ZeroTimeout(t *testing.T) {
	in := &Input{}
	m, _, sleeps := newTestModal(in)
	in.Queue(KeyN, true)

	assert.True(t, m.Confirm("keep?\n", 0))
	assert.Equal(t, 0, *sleeps)
}
