package video

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gekko3d/vidmode/display/modes"
	"github.com/gekko3d/vidmode/display/platform"
	"github.com/gekko3d/vidmode/display/settings"
)

// recorder stands in for audio, input, UI, confirmation and logging, and
// keeps one ordered event log across all of them.
type recorder struct {
	events      []string
	warnings    []string
	debug       []string
	inMenu      bool
	keep        bool
	prompts     []time.Duration
	fatal       error
	fatalCalled int
}

func (r *recorder) Pause()       { r.events = append(r.events, "audio:pause") }
func (r *recorder) Resume()      { r.events = append(r.events, "audio:resume") }
func (r *recorder) ClearStates() { r.events = append(r.events, "input:clear") }
func (r *recorder) Activate()    { r.events = append(r.events, "input:activate") }
func (r *recorder) Deactivate(free bool) {
	r.events = append(r.events, fmt.Sprintf("input:deactivate(%v)", free))
}
func (r *recorder) InConsoleOrMenu() bool     { return r.inMenu }
func (r *recorder) Debugf(f string, a ...any) { r.debug = append(r.debug, fmt.Sprintf(f, a...)) }
func (r *recorder) Infof(string, ...any)      {}
func (r *recorder) Errorf(f string, a ...any) { r.warnings = append(r.warnings, fmt.Sprintf(f, a...)) }
func (r *recorder) Warnf(f string, a ...any)  { r.warnings = append(r.warnings, fmt.Sprintf(f, a...)) }

func (r *recorder) Confirm(prompt string, timeout time.Duration) bool {
	r.prompts = append(r.prompts, timeout)
	r.events = append(r.events, "confirm")
	return r.keep
}

func (r *recorder) reset() {
	r.events = nil
	r.warnings = nil
	r.debug = nil
}

func testDesktop() modes.DisplayMode {
	return modes.DisplayMode{Width: 1920, Height: 1080, BitDepth: 32}
}

func newTestMemory() *platform.Memory {
	return platform.NewMemory(testDesktop(),
		modes.DisplayMode{Width: 1920, Height: 1080, BitDepth: 32},
		modes.DisplayMode{Width: 1024, Height: 768, BitDepth: 32},
		modes.DisplayMode{Width: 800, Height: 600, BitDepth: 16},
		modes.DisplayMode{Width: 800, Height: 600, BitDepth: 32},
		modes.DisplayMode{Width: 640, Height: 480, BitDepth: 16},
	)
}

func baseConfig() map[string]string {
	return map[string]string{
		KeyWidth:    "800",
		KeyHeight:   "600",
		KeyBitDepth: "16",
	}
}

type fixture struct {
	sys *System
	mem *platform.Memory
	rec *recorder
}

func newFixture(t *testing.T, mutate func(*Options, *platform.Memory)) *fixture {
	t.Helper()
	return newFixtureWith(t, baseConfig(), settings.Args{}, mutate)
}

func newFixtureWith(t *testing.T, persisted map[string]string, args settings.Args, mutate func(*Options, *platform.Memory)) *fixture {
	t.Helper()
	mem := newTestMemory()
	rec := &recorder{}
	opts := Options{
		Title:    "test",
		Platform: mem,
		Logger:   rec,
		Audio:    rec,
		Input:    rec,
		UI:       rec,
		Confirm:  rec,
		OnFatal: func(err error) {
			rec.fatal = err
			rec.fatalCalled++
		},
	}
	if mutate != nil {
		mutate(&opts, mem)
	}
	sys := New(opts)
	err := sys.Init(persisted, args)
	if rec.fatal == nil {
		require.NoError(t, err)
	}
	mem.ResetCalls()
	rec.reset()
	return &fixture{sys: sys, mem: mem, rec: rec}
}

type liveMode struct {
	Width, Height, BitDepth int
	Fullscreen              bool
}

func (f *fixture) live() liveMode {
	w, h := f.mem.Size()
	return liveMode{w, h, f.mem.BitDepth(), f.mem.Presentation().IsFullscreen()}
}

func (f *fixture) requested() liveMode {
	cfg := f.sys.Settings.Config()
	return liveMode{cfg.Width, cfg.Height, cfg.BitDepth, cfg.Fullscreen}
}

func (f *fixture) countCalls(prefix string) int {
	n := 0
	for _, c := range f.mem.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}
