package video

import (
	"github.com/google/uuid"

	"github.com/gekko3d/vidmode/display/modes"
	"github.com/gekko3d/vidmode/display/platform"
)

// Minimum usable resolution.
const (
	MinWidth  = 320
	MinHeight = 200
)

// Controller owns the surface and the context. It is the only component
// that creates, reconfigures or destroys them.
type Controller struct {
	platform platform.Platform
	catalog  *modes.Catalog
	settings *Settings
	audio    Audio
	input    Input
	log      Logger

	title       string
	fsaa        int
	swapControl bool
	viewport    Viewport
}

// IsValidMode applies the pre-restart validation. A fullscreen request whose
// exact mode is not in the catalog is still accepted: the depth degrades to
// whatever the display offers instead of refusing fullscreen.
func (c *Controller) IsValidMode(width, height, bitDepth int, fullscreen bool) bool {
	if fullscreen && c.settings.Config().DesktopFullscreen {
		return true
	}
	if width < MinWidth || height < MinHeight {
		return false
	}
	if fullscreen {
		if _, ok := c.catalog.Lookup(width, height, bitDepth); !ok {
			return true
		}
	}
	switch bitDepth {
	case 16, 24, 32:
		return true
	}
	return false
}

// surfaceAttempts lists the attribute sets tried when creating the surface:
// as requested, then without multisampling, then with a 16-bit depth buffer,
// then without stencil. Each step keeps the previous degradations.
func surfaceAttempts(bitDepth, samples int) []platform.Attributes {
	a := platform.Attributes{DepthBits: 24, StencilBits: 8, Samples: samples}
	if bitDepth == 16 {
		a.DepthBits, a.StencilBits = 16, 0
	}
	out := []platform.Attributes{a}
	a.Samples = 0
	out = append(out, a)
	a.DepthBits = 16
	out = append(out, a)
	a.StencilBits = 0
	out = append(out, a)
	return out
}

func (c *Controller) createSurface(width, height, bitDepth int) error {
	var lastErr error
	for i, attrs := range surfaceAttempts(bitDepth, c.fsaa) {
		err := c.platform.CreateSurface(platform.SurfaceRequest{
			Title:      c.title,
			Width:      width,
			Height:     height,
			Attributes: attrs,
		})
		if err == nil {
			return nil
		}
		c.log.Debugf("surface attempt %d (%+v) failed: %v", i+1, attrs, err)
		lastErr = err
	}
	return &FatalError{Op: "couldn't create window", Err: lastErr}
}

// SetMode makes the live surface match the request. The only error it
// returns is a *FatalError.
func (c *Controller) SetMode(width, height, bitDepth int, fullscreen bool) error {
	p := c.platform
	c.audio.Pause()

	if !p.HasSurface() {
		if err := c.createSurface(width, height, bitDepth); err != nil {
			return err
		}
	}

	// Always start from windowed; switching between fullscreen kinds in
	// place is not reliable.
	if p.Presentation().IsFullscreen() {
		if err := p.SetPresentation(platform.Windowed); err != nil {
			return &FatalError{Op: "couldn't set fullscreen state mode", Err: err}
		}
	}

	p.SetSize(width, height)
	p.Center()
	if mode, ok := c.catalog.Lookup(width, height, bitDepth); ok {
		p.SetDisplayMode(&mode)
	} else {
		p.SetDisplayMode(nil)
	}

	if fullscreen {
		target := platform.Fullscreen
		if c.settings.Config().DesktopFullscreen {
			target = platform.DesktopFullscreen
		}
		if err := p.SetPresentation(target); err != nil {
			return &FatalError{Op: "couldn't set fullscreen state mode", Err: err}
		}
	}

	p.Show()

	if !p.HasContext() {
		if err := p.CreateContext(); err != nil {
			return &FatalError{Op: "couldn't create context", Err: err}
		}
	}

	interval := 0
	if c.settings.Config().VSync {
		interval = 1
	}
	c.swapControl = true
	if err := p.SetSwapInterval(interval); err != nil {
		c.swapControl = false
		c.log.Warnf("vertical sync not supported: %v", err)
	}

	c.refreshViewport(uuid.New())

	c.audio.Resume()
	// drop anything held across the switch, e.g. a leftover alt from alt-tab
	c.input.ClearStates()

	vp := c.viewport
	c.log.Infof("Video mode %dx%dx%d (%d-bit z-buffer, %dx FSAA) initialized",
		vp.Width, vp.Height, p.BitDepth(), vp.DepthBits, vp.Samples)
	c.log.Debugf("surface generation %s", vp.Generation)

	c.settings.clearChanged()
	return nil
}

// refreshViewport reads the negotiated surface back. The console size is the
// width rounded down to a multiple of 8, height scaled to match.
func (c *Controller) refreshViewport(gen uuid.UUID) {
	w, h := c.platform.Size()
	attrs := c.platform.Attributes()
	conW := w &^ 7
	conH := 0
	if w > 0 {
		conH = conW * h / w
	}
	c.viewport = Viewport{
		Generation:  gen,
		Width:       w,
		Height:      h,
		ConWidth:    conW,
		ConHeight:   conH,
		DepthBits:   attrs.DepthBits,
		StencilBits: attrs.StencilBits,
		Samples:     attrs.Samples,
	}
}

// Viewport returns the sizes negotiated by the last mode set.
func (c *Controller) Viewport() Viewport {
	return c.viewport
}

// SwapControl reports whether the platform accepted the last swap interval.
func (c *Controller) SwapControl() bool {
	return c.swapControl
}

// SyncSettings writes the live surface state back into the settings and
// clears the pending flag. Width and height are left alone in desktop
// fullscreen, where the live size is just the desktop size.
func (c *Controller) SyncSettings() {
	p := c.platform
	if p.HasSurface() {
		pres := p.Presentation()
		if pres != platform.DesktopFullscreen {
			w, h := p.Size()
			c.settings.SetWidth(w)
			c.settings.SetHeight(h)
		}
		c.settings.SetBitDepth(p.BitDepth())
		c.settings.SetFullscreen(pres.IsFullscreen())
		c.settings.SetVSync(p.SwapInterval() == 1)
	}
	c.settings.clearChanged()
}
