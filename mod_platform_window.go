package vidmode

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gekko3d/vidmode/display/modes"
	"github.com/gekko3d/vidmode/display/platform"
)

// Display is the shared window-system binding. Only the video system
// creates or destroys surfaces through it; everything else queries.
type Display struct {
	platform.Platform
}

// PlatformWindowModule provides the Display resource. Install is
// idempotent: an existing Display is kept.
type PlatformWindowModule struct {
	// Headless uses an in-memory platform reporting Desktop and Modes.
	Headless bool
	Desktop  modes.DisplayMode
	Modes    []modes.DisplayMode
}

// NewHeadlessPlatform returns a module with an in-memory display. A zero
// desktop mode becomes 1280x720x32.
func NewHeadlessPlatform(desktop modes.DisplayMode, reported ...modes.DisplayMode) PlatformWindowModule {
	if desktop.Width <= 0 || desktop.Height <= 0 {
		desktop = modes.DisplayMode{Width: 1280, Height: 720, BitDepth: 32}
	}
	if len(reported) == 0 {
		reported = []modes.DisplayMode{desktop}
	}
	return PlatformWindowModule{Headless: true, Desktop: desktop, Modes: reported}
}

func (m PlatformWindowModule) Install(app *App, cmd *Commands) {
	if _, ok := Resource[Display](app); ok {
		return
	}

	if m.Headless {
		cmd.AddResources(&Display{Platform: platform.NewMemory(m.Desktop, m.Modes...)})
		return
	}

	p, err := platform.NewGLFW()
	if err != nil {
		app.Logger().Errorf("window system: %v", err)
		panic(err)
	}
	cmd.AddResources(&Display{Platform: p})
	cmd.OnShutdown(p.Terminate)
	cmd.UseSystem(
		System(windowCloseSystem).
			InStage(Finale).
			RunAlways(),
	)
}

func windowCloseSystem(display *Display, cmd *Commands) {
	if win, ok := display.Handle().(*glfw.Window); ok && win.ShouldClose() {
		cmd.Quit()
	}
}
