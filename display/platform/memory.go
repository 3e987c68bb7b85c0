package platform

import (
	"fmt"

	"github.com/gekko3d/vidmode/display/modes"
)

// Memory is an in-memory Platform for headless runs and tests.
// Every mutating call is appended to Calls.
type Memory struct {
	Modes   []modes.DisplayMode
	Desktop modes.DisplayMode

	// AcceptAttributes decides whether CreateSurface succeeds. nil accepts all.
	AcceptAttributes func(Attributes) bool
	// RejectPresentation makes SetPresentation fail for the given target.
	RejectPresentation func(Presentation) bool
	SwapUnsupported    bool
	BrightnessErr      error
	ContextErr         error
	InfoValue          Info

	Calls []string

	surface      bool
	context      bool
	width        int
	height       int
	mode         *modes.DisplayMode
	presentation Presentation
	swapInterval int
	attributes   Attributes
	focused      bool
	minimized    bool
	brightness   float32
}

func NewMemory(desktop modes.DisplayMode, reported ...modes.DisplayMode) *Memory {
	return &Memory{
		Modes:      reported,
		Desktop:    desktop,
		focused:    true,
		brightness: 1,
	}
}

func (m *Memory) record(format string, args ...any) {
	m.Calls = append(m.Calls, fmt.Sprintf(format, args...))
}

func (m *Memory) DisplayModes() ([]modes.DisplayMode, error) {
	out := make([]modes.DisplayMode, len(m.Modes))
	copy(out, m.Modes)
	return out, nil
}

func (m *Memory) DesktopMode() (modes.DisplayMode, error) {
	return m.Desktop, nil
}

func (m *Memory) HasSurface() bool {
	return m.surface
}

func (m *Memory) CreateSurface(req SurfaceRequest) error {
	m.record("CreateSurface(%dx%d depth=%d stencil=%d samples=%d)",
		req.Width, req.Height, req.Attributes.DepthBits, req.Attributes.StencilBits, req.Attributes.Samples)
	if m.AcceptAttributes != nil && !m.AcceptAttributes(req.Attributes) {
		return fmt.Errorf("create surface %+v: %w", req.Attributes, ErrUnsupported)
	}
	m.surface = true
	m.width, m.height = req.Width, req.Height
	m.attributes = req.Attributes
	m.presentation = Windowed
	m.minimized = true
	return nil
}

func (m *Memory) DestroySurface() {
	m.record("DestroySurface")
	m.surface = false
	m.context = false
	m.mode = nil
	m.presentation = Windowed
}

func (m *Memory) SetSize(width, height int) {
	m.record("SetSize(%dx%d)", width, height)
	m.width, m.height = width, height
}

func (m *Memory) Center() {
	m.record("Center")
}

func (m *Memory) SetDisplayMode(mode *modes.DisplayMode) {
	if mode == nil {
		m.record("SetDisplayMode(best)")
		m.mode = nil
		return
	}
	m.record("SetDisplayMode(%s)", mode)
	cp := *mode
	m.mode = &cp
}

func (m *Memory) SetPresentation(p Presentation) error {
	m.record("SetPresentation(%s)", p)
	if !m.surface {
		return ErrNoSurface
	}
	if m.RejectPresentation != nil && m.RejectPresentation(p) {
		return fmt.Errorf("set presentation %s: %w", p, ErrUnsupported)
	}
	m.presentation = p
	return nil
}

func (m *Memory) Show() {
	m.record("Show")
	m.minimized = false
}

func (m *Memory) HasContext() bool {
	return m.context
}

func (m *Memory) CreateContext() error {
	m.record("CreateContext")
	if m.ContextErr != nil {
		return m.ContextErr
	}
	m.context = true
	return nil
}

func (m *Memory) SetSwapInterval(interval int) error {
	m.record("SetSwapInterval(%d)", interval)
	if m.SwapUnsupported {
		return fmt.Errorf("swap interval %d: %w", interval, ErrUnsupported)
	}
	m.swapInterval = interval
	return nil
}

func (m *Memory) Size() (int, int) {
	if m.presentation == DesktopFullscreen {
		return m.Desktop.Width, m.Desktop.Height
	}
	return m.width, m.height
}

func (m *Memory) BitDepth() int {
	if m.mode != nil {
		return m.mode.BitDepth
	}
	return m.Desktop.BitDepth
}

func (m *Memory) Presentation() Presentation {
	return m.presentation
}

func (m *Memory) SwapInterval() int {
	return m.swapInterval
}

func (m *Memory) Attributes() Attributes {
	return m.attributes
}

func (m *Memory) SetFocused(focused bool) {
	m.focused = focused
}

func (m *Memory) Focused() bool {
	return m.surface && m.focused
}

func (m *Memory) SetMinimized(minimized bool) {
	m.minimized = minimized
}

func (m *Memory) Minimized() bool {
	return m.minimized
}

func (m *Memory) Handle() any {
	if !m.surface {
		return nil
	}
	return m
}

func (m *Memory) Info() Info {
	return m.InfoValue
}

func (m *Memory) SetBrightness(value float32) error {
	m.record("SetBrightness(%.3f)", value)
	if m.BrightnessErr != nil {
		return m.BrightnessErr
	}
	m.brightness = value
	return nil
}

// Brightness reports the last brightness accepted by SetBrightness.
func (m *Memory) Brightness() float32 {
	return m.brightness
}

// ResetCalls clears the recorded call log.
func (m *Memory) ResetCalls() {
	m.Calls = nil
}
