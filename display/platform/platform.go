// Package platform is the boundary to the window system and graphics API.
//
// Everything above this package treats the live surface as ground truth and
// reads it back through Platform queries instead of caching it.
package platform

import (
	"errors"
	"fmt"

	"github.com/gekko3d/vidmode/display/modes"
)

var (
	ErrNoSurface   = errors.New("platform: no surface")
	ErrUnsupported = errors.New("platform: unsupported")
)

// Presentation is how the surface occupies the display.
type Presentation int

const (
	Windowed Presentation = iota
	Fullscreen
	// DesktopFullscreen is a borderless window the size of the desktop mode.
	DesktopFullscreen
)

func (p Presentation) IsFullscreen() bool {
	return p != Windowed
}

func (p Presentation) String() string {
	switch p {
	case Windowed:
		return "windowed"
	case Fullscreen:
		return "fullscreen"
	case DesktopFullscreen:
		return "desktop fullscreen"
	}
	return fmt.Sprintf("Presentation(%d)", int(p))
}

// Attributes are the framebuffer attributes negotiated for a surface.
type Attributes struct {
	DepthBits   int
	StencilBits int
	Samples     int
}

type SurfaceRequest struct {
	Title      string
	Width      int
	Height     int
	Attributes Attributes
}

// Info describes the graphics binding behind the context.
type Info struct {
	Vendor     string
	Renderer   string
	Version    string
	Extensions []string
}

// Platform is the single window/context binding. Only the mode controller
// creates or destroys through it; everything else just queries.
type Platform interface {
	DisplayModes() ([]modes.DisplayMode, error)
	DesktopMode() (modes.DisplayMode, error)

	HasSurface() bool
	// CreateSurface creates the window hidden. It fails when the requested
	// attributes cannot be satisfied, leaving no surface behind.
	CreateSurface(req SurfaceRequest) error
	DestroySurface()
	SetSize(width, height int)
	Center()
	// SetDisplayMode selects the mode used when going exclusive fullscreen.
	// nil means whatever the display considers best.
	SetDisplayMode(mode *modes.DisplayMode)
	SetPresentation(p Presentation) error
	Show()

	HasContext() bool
	CreateContext() error
	SetSwapInterval(interval int) error

	Size() (width, height int)
	BitDepth() int
	Presentation() Presentation
	SwapInterval() int
	Attributes() Attributes
	Focused() bool
	Minimized() bool
	Handle() any
	Info() Info

	SetBrightness(value float32) error
}
