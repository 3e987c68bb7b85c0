package vidmode

import (
	"time"
)

type Time struct {
	Start time.Time
	Time  time.Time
	Dt    time.Duration
}

// Realtime is the time since the app started, in seconds.
func (t *Time) Realtime() float64 {
	return t.Time.Sub(t.Start).Seconds()
}

type TimeModule struct {
	// Now defaults to time.Now.
	Now func() time.Time
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	now := mod.Now
	if now == nil {
		now = time.Now
	}
	start := now()
	cmd.AddResources(&Time{
		Start: start,
		Time:  start,
	})
	cmd.UseSystem(
		System(func(t *Time) {
			current := now()
			t.Dt = current.Sub(t.Time)
			t.Time = current
		}).
			InStage(Prelude).
			RunAlways(),
	)
}
