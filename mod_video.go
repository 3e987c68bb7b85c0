package vidmode

import (
	"fmt"
	"os"
	"time"

	"github.com/gekko3d/vidmode/display/menu"
	"github.com/gekko3d/vidmode/display/modes"
	"github.com/gekko3d/vidmode/display/settings"
	"github.com/gekko3d/vidmode/display/video"
)

const defaultAppName = "vidmode"

// VideoModule opens the display surface and exposes the video settings,
// console commands and options menu. It needs PlatformWindowModule,
// InputModule and ConsoleModule installed first.
type VideoModule struct {
	Title string
	// Args is the full command line; only video flags are read from it.
	Args []string
	// Store defaults to a gdata store named after AppName.
	Store   settings.Store
	AppName string
	Audio   video.Audio

	FastToggle     bool
	ShaderGamma    bool
	ConfirmTimeout time.Duration
	// OnFatal defaults to logging and exiting.
	OnFatal func(error)
}

// exitProcess ends the process after a fatal video error.
var exitProcess = os.Exit

// Video is the resource other modules use to reach the video system.
type Video struct {
	System *video.System
	Menu   menu.State

	store   settings.Store
	confirm *modalConfirm
	console *Console
	input   *Input
	focus   *Focus
	log     Logger
}

func requireResource[T any](app *App, module string) *T {
	r, ok := Resource[T](app)
	if !ok {
		var zero T
		msg := fmt.Sprintf("%s: missing resource %T", module, zero)
		app.Logger().Errorf("%s", msg)
		panic(msg)
	}
	return r
}

func (m VideoModule) appName() string {
	if m.AppName == "" {
		return defaultAppName
	}
	return m.AppName
}

func (m VideoModule) onFatal(log Logger) func(error) {
	if m.OnFatal != nil {
		return m.OnFatal
	}
	return func(err error) {
		log.Errorf("%v", err)
		exitProcess(1)
	}
}

func (m VideoModule) openStore(log Logger) settings.Store {
	if m.Store != nil {
		return m.Store
	}
	s, err := settings.OpenGdata(m.appName())
	if err != nil {
		log.Warnf("video settings will not be saved: %v", err)
		return settings.NewMemoryStore(nil)
	}
	return s
}

func (m VideoModule) Install(app *App, cmd *Commands) {
	if ensureSingleVideo(app, m.appName()) {
		return
	}
	logger := app.Logger()
	display := requireResource[Display](app, "VideoModule")
	input := requireResource[Input](app, "VideoModule")
	focus := requireResource[Focus](app, "VideoModule")
	console := requireResource[Console](app, "VideoModule")

	store := m.openStore(logger)
	values, err := store.Load()
	if err != nil {
		logger.Warnf("video settings: %v", err)
		values = nil
	}
	args, err := settings.ParseArgs(m.Args)
	if err != nil {
		logger.Warnf("video arguments: %v", err)
	}

	confirm := newModalConfirm(input, display, console)
	sys := video.New(video.Options{
		Title:          m.Title,
		Platform:       display.Platform,
		Logger:         consoleLogger{Logger: logger, console: console},
		Audio:          m.Audio,
		Input:          input,
		UI:             focus,
		Confirm:        confirm,
		ShaderGamma:    m.ShaderGamma,
		FastToggle:     m.FastToggle,
		ConfirmTimeout: m.ConfirmTimeout,
		OnFatal:        m.onFatal(logger),
	})
	if err := sys.Init(values, args); err != nil {
		return
	}

	v := &Video{
		System:  sys,
		store:   store,
		confirm: confirm,
		console: console,
		input:   input,
		focus:   focus,
		log:     logger,
	}
	v.registerCommands()
	console.BindVars(sys.Settings)
	cmd.AddResources(v)

	// mode changes stay locked until everything queued at startup has run
	console.AddText("vid_unlock\n")

	cmd.UseSystem(
		System(videoKeySystem).
			InStage(PreUpdate).
			RunAlways(),
	)
	cmd.OnShutdown(v.shutdown)
}

func (v *Video) shutdown() {
	if err := v.store.Save(v.System.Settings.Values()); err != nil {
		v.log.Warnf("video settings: %v", err)
	}
	v.System.Shutdown()
}

func (v *Video) registerCommands() {
	sys := v.System
	c := v.console
	c.Register("vid_unlock", func([]string) { sys.Unlock() })
	c.Register("vid_restart", func([]string) { _ = sys.Restart() })
	c.Register("vid_test", func([]string) { _ = sys.Test() })
	c.Register("vid_toggle", func([]string) { _ = sys.Toggle() })
	c.Register("vid_describecurrentmode", func([]string) {
		if desc, ok := sys.DescribeCurrentMode(); ok {
			c.Printf("%s\n", desc)
		}
	})
	c.Register("vid_describemodes", func([]string) {
		for _, line := range sys.DescribeModes() {
			c.Printf("%s\n", line)
		}
	})
	c.Register("gl_info", func([]string) {
		for _, line := range sys.InfoLines() {
			c.Printf("%s\n", line)
		}
	})
	c.Register("menu_video", func([]string) { v.OpenMenu() })
}

func (v *Video) menuValues() menu.Values {
	cfg := v.System.Settings.Config()
	return menu.Values{
		Width:      cfg.Width,
		Height:     cfg.Height,
		BitDepth:   cfg.BitDepth,
		Fullscreen: cfg.Fullscreen,
		VSync:      cfg.VSync,
	}
}

// OpenMenu shows the video options with the settings synced to the live mode.
func (v *Video) OpenMenu() {
	p := v.System.Platform()
	v.input.Deactivate(!p.Presentation().IsFullscreen())
	v.focus.Dest = DestMenu
	v.System.Sync()

	var cmds []menu.Command
	v.Menu, cmds = menu.Open(v.System.Catalog(), v.menuValues(), v.System.Controller.SwapControl())
	v.apply(cmds)
}

func (v *Video) MenuOpen() bool {
	return v.focus.Dest == DestMenu
}

// MenuKey feeds one key to the open menu.
func (v *Video) MenuKey(key menu.Key) {
	if !v.MenuOpen() {
		return
	}
	var cmds []menu.Command
	v.Menu, cmds = menu.Update(v.Menu, key)
	v.apply(cmds)
}

// MenuText lays the menu out on a 320 pixel wide canvas.
func (v *Video) MenuText(t *Time) []menu.Text {
	return menu.DefaultLayout(320).Place(v.Menu, t.Realtime())
}

func (v *Video) apply(cmds []menu.Command) {
	s := v.System.Settings
	for _, c := range cmds {
		switch c.Kind {
		case menu.SetResolution:
			s.SetWidth(c.Width)
			s.SetHeight(c.Height)
		case menu.SetDepth:
			s.SetBitDepth(c.BitDepth)
		case menu.ToggleFullscreen, menu.ToggleVSync, menu.Test:
			v.console.AddText(c.Text())
		case menu.Apply:
			v.console.AddText(c.Text())
			v.focus.Dest = DestGame
			v.input.Activate()
		case menu.Leave:
			v.System.Sync()
			v.focus.Dest = DestGame
			v.input.Activate()
		}
	}
}

var menuKeys = []struct {
	key  int
	menu menu.Key
}{
	{KeyUp, menu.KeyUp},
	{KeyDown, menu.KeyDown},
	{KeyLeft, menu.KeyLeft},
	{KeyRight, menu.KeyRight},
	{KeyEnter, menu.KeyEnter},
	{KeyKPEnter, menu.KeyEnter},
	{KeyEscape, menu.KeyEscape},
}

// videoKeySystem drives the menu and the alt+enter fullscreen toggle.
func videoKeySystem(v *Video, input *Input) {
	alt := input.Pressed[KeyLeftAlt] || input.Pressed[KeyRightAlt]
	if alt && input.JustPressed[KeyEnter] {
		v.console.AddText("vid_toggle\n")
		return
	}
	if !v.MenuOpen() {
		return
	}
	for _, k := range menuKeys {
		if input.JustPressed[k.key] {
			v.MenuKey(k.menu)
		}
	}
}

// Catalog is shorthand for the enumerated display modes.
func (v *Video) Catalog() *modes.Catalog {
	return v.System.Catalog()
}
