// Package video keeps the requested video settings, the live surface and
// the GPU resources that depend on it consistent across mode changes.
package video

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/gekko3d/vidmode/display/modes"
	"github.com/gekko3d/vidmode/display/platform"
	"github.com/gekko3d/vidmode/display/settings"
)

type Options struct {
	Title    string
	Platform platform.Platform
	Logger   Logger
	Audio    Audio
	Input    Input
	UI       UI
	Confirm  Confirmer

	// ShaderGamma means gamma is applied by a post-process shader, so
	// hardware gamma is never touched.
	ShaderGamma bool
	// FastToggle enables the in-place fullscreen flip.
	FastToggle     bool
	ConfirmTimeout time.Duration
	// OnFatal is called with a *FatalError. It defaults to logging and
	// exiting the process.
	OnFatal func(error)
}

// System wires the video components around one platform.
type System struct {
	Settings     *Settings
	Controller   *Controller
	Orchestrator *Orchestrator
	Gamma        *Gamma
	Hooks        *Hooks

	platform    platform.Platform
	catalog     *modes.Catalog
	log         Logger
	initialized bool
}

func New(opts Options) *System {
	if opts.Logger == nil {
		opts.Logger = nopLogger{}
	}
	if opts.Audio == nil {
		opts.Audio = nopAudio{}
	}
	if opts.Input == nil {
		opts.Input = nopInput{}
	}
	if opts.UI == nil {
		opts.UI = nopUI{}
	}
	if opts.Confirm == nil {
		opts.Confirm = acceptAll{}
	}
	if opts.ConfirmTimeout <= 0 {
		opts.ConfirmTimeout = DefaultConfirmTimeout
	}
	if opts.Title == "" {
		opts.Title = "Gekko"
	}
	log := opts.Logger
	if opts.OnFatal == nil {
		opts.OnFatal = func(err error) {
			log.Errorf("%v", err)
			os.Exit(1)
		}
	}

	s := &System{
		Settings: NewSettings(log),
		Hooks:    &Hooks{},
		platform: opts.Platform,
		catalog:  modes.NewCatalog(nil),
		log:      log,
	}
	s.Controller = &Controller{
		platform: opts.Platform,
		catalog:  s.catalog,
		settings: s.Settings,
		audio:    opts.Audio,
		input:    opts.Input,
		log:      log,
		title:    opts.Title,
	}
	s.Orchestrator = &Orchestrator{
		ctl:            s.Controller,
		settings:       s.Settings,
		platform:       opts.Platform,
		hooks:          s.Hooks,
		input:          opts.Input,
		ui:             opts.UI,
		confirm:        opts.Confirm,
		log:            log,
		fatal:          opts.OnFatal,
		confirmTimeout: opts.ConfirmTimeout,
		fastToggle:     opts.FastToggle,
	}
	s.Gamma = &Gamma{
		platform:   opts.Platform,
		settings:   s.Settings,
		log:        log,
		shaderPath: opts.ShaderGamma,
	}
	s.Settings.onGamma = s.Gamma.Set
	return s
}

// resolveStartMode layers start arguments over the loaded settings.
func resolveStartMode(cfg Config, args settings.Args, desktop modes.DisplayMode) (w, h, bpp int, fullscreen bool) {
	w, h, bpp, fullscreen = cfg.Width, cfg.Height, cfg.BitDepth, cfg.Fullscreen
	if args.Current {
		return desktop.Width, desktop.Height, desktop.BitDepth, true
	}
	if args.Width > 0 {
		w = args.Width
		if args.Height <= 0 {
			h = w * 3 / 4
		}
	}
	if args.Height > 0 {
		h = args.Height
		if args.Width <= 0 {
			w = h * 4 / 3
		}
	}
	if args.BitDepth > 0 {
		bpp = args.BitDepth
	}
	if args.Windowed {
		fullscreen = false
	} else if args.Fullscreen {
		fullscreen = true
	}
	return w, h, bpp, fullscreen
}

// Init enumerates modes, resolves the startup mode from persisted values
// and arguments, opens the surface and locks mode changes until Unlock.
func (s *System) Init(persisted map[string]string, args settings.Args) error {
	desktop, err := s.platform.DesktopMode()
	if err != nil {
		fe := &FatalError{Op: "could not get desktop display mode", Err: err}
		s.Orchestrator.fatal(fe)
		return fe
	}
	s.Settings.SetBitDepth(desktop.BitDepth)
	s.Settings.Load(persisted, ModeKeys)
	if g, ok := persisted[KeyGamma]; ok {
		if err := s.Settings.Set(KeyGamma, g); err != nil {
			s.log.Warnf("config: %v", err)
		}
	}
	s.applyOverrides(args.Overrides)

	reported, err := s.platform.DisplayModes()
	if err != nil {
		s.log.Warnf("couldn't enumerate display modes: %v", err)
	}
	*s.catalog = *modes.NewCatalog(reported)

	cfg := s.Settings.Config()
	w, h, bpp, fullscreen := resolveStartMode(cfg, args, desktop)
	s.Controller.fsaa = cfg.FSAA
	if args.FSAASet {
		s.Controller.fsaa = args.FSAA
	}

	if !s.Controller.IsValidMode(w, h, bpp, fullscreen) {
		w, h, bpp, fullscreen = cfg.Width, cfg.Height, cfg.BitDepth, cfg.Fullscreen
	}
	if !s.Controller.IsValidMode(w, h, bpp, fullscreen) {
		w, h, bpp, fullscreen = 640, 480, desktop.BitDepth, false
	}

	s.initialized = true
	s.Settings.initialized = true

	if err := s.Controller.SetMode(w, h, bpp, fullscreen); err != nil {
		s.Orchestrator.fatal(err)
		return err
	}

	s.Gamma.Init()
	s.Gamma.Set()

	// settings read after this point (config files, console) must not
	// restart the mode before startup is done
	s.Orchestrator.Lock()
	return nil
}

// applyOverrides applies command line "+name value" pairs for the mode
// settings. Other names are left to the console.
func (s *System) applyOverrides(overrides []settings.Override) {
	for _, o := range overrides {
		if !slices.Contains(ModeKeys, o.Name) {
			continue
		}
		if err := s.Settings.Set(o.Name, o.Value); err != nil {
			s.log.Warnf("command line: %v", err)
		}
	}
}

// Shutdown restores gamma and destroys the surface.
func (s *System) Shutdown() {
	if !s.initialized {
		return
	}
	s.Gamma.Restore()
	s.platform.DestroySurface()
	s.initialized = false
}

func (s *System) Catalog() *modes.Catalog {
	return s.catalog
}

func (s *System) Platform() platform.Platform {
	return s.platform
}

// Restart applies pending settings, see Orchestrator.Restart.
func (s *System) Restart() error { return s.Orchestrator.Restart() }

// Test tries pending settings with a confirmation, see Orchestrator.Test.
func (s *System) Test() error { return s.Orchestrator.Test() }

func (s *System) Unlock() { s.Orchestrator.Unlock() }

func (s *System) Toggle() error { return s.Orchestrator.Toggle() }

// Sync writes the live state into the settings.
func (s *System) Sync() { s.Controller.SyncSettings() }

// Window returns the native window handle, nil without a surface.
func (s *System) Window() any {
	return s.platform.Handle()
}

func (s *System) HasFocus() bool {
	return s.platform.HasSurface() && s.platform.Focused()
}

func (s *System) Minimized() bool {
	return !s.platform.HasSurface() || s.platform.Minimized()
}

// DescribeCurrentMode formats the live mode; false without a surface.
func (s *System) DescribeCurrentMode() (string, bool) {
	if !s.platform.HasSurface() {
		return "", false
	}
	w, h := s.platform.Size()
	kind := "windowed"
	if s.platform.Presentation().IsFullscreen() {
		kind = "fullscreen"
	}
	return fmt.Sprintf("%dx%dx%d %s", w, h, s.platform.BitDepth(), kind), true
}

// DescribeModes lists the catalog followed by the mode count.
func (s *System) DescribeModes() []string {
	lines := s.catalog.Describe()
	return append(lines, fmt.Sprintf("%d modes", len(lines)))
}

// InfoLines describes the graphics binding, one extension per line.
func (s *System) InfoLines() []string {
	info := s.platform.Info()
	ext := "(none)"
	if len(info.Extensions) > 0 {
		ext = "\n   " + strings.Join(info.Extensions, "\n   ")
	}
	return []string{
		"GL_VENDOR: " + info.Vendor,
		"GL_RENDERER: " + info.Renderer,
		"GL_VERSION: " + info.Version,
		"GL_EXTENSIONS: " + ext,
	}
}
