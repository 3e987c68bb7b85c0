package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gekko3d/vidmode/display/modes"
)

// GLFW binds the Platform to a glfw window and a webgpu device.
// All calls must come from the thread that called NewGLFW.
type GLFW struct {
	window  *glfw.Window
	monitor *glfw.Monitor
	desktop modes.DisplayMode

	gpu     *gpuContext
	context bool

	attributes   Attributes
	mode         *modes.DisplayMode
	desktopFull  bool
	swapInterval int
}

// NewGLFW initialises glfw. Call Terminate when done.
func NewGLFW() (*GLFW, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}
	p := &GLFW{}
	err := guard("primary monitor", func() {
		p.monitor = glfw.GetPrimaryMonitor()
	})
	if err != nil || p.monitor == nil {
		glfw.Terminate()
		return nil, fmt.Errorf("no primary monitor: %w", ErrUnsupported)
	}
	vm := p.monitor.GetVideoMode()
	p.desktop = vidModeToMode(vm)
	return p, nil
}

// guard turns glfw/webgpu binding panics into errors.
func guard(op string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", op, r)
		}
	}()
	fn()
	return nil
}

func vidModeToMode(vm *glfw.VidMode) modes.DisplayMode {
	if vm == nil {
		return modes.DisplayMode{}
	}
	return modes.DisplayMode{
		Width:    vm.Width,
		Height:   vm.Height,
		BitDepth: vm.RedBits + vm.GreenBits + vm.BlueBits,
	}
}

func (p *GLFW) DisplayModes() (out []modes.DisplayMode, err error) {
	err = guard("video modes", func() {
		for _, vm := range p.monitor.GetVideoModes() {
			out = append(out, vidModeToMode(vm))
		}
	})
	return out, err
}

func (p *GLFW) DesktopMode() (modes.DisplayMode, error) {
	if p.desktop.Width == 0 {
		return p.desktop, fmt.Errorf("desktop mode: %w", ErrUnsupported)
	}
	return p.desktop, nil
}

func (p *GLFW) HasSurface() bool {
	return p.window != nil
}

func (p *GLFW) CreateSurface(req SurfaceRequest) error {
	if p.window != nil {
		return nil
	}
	var win *glfw.Window
	err := guard("create window", func() {
		glfw.DefaultWindowHints()
		glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI) // Important: tell GLFW we don't want OpenGL
		glfw.WindowHint(glfw.Visible, glfw.False)
		glfw.WindowHint(glfw.Resizable, glfw.False)
		glfw.WindowHint(glfw.DepthBits, req.Attributes.DepthBits)
		glfw.WindowHint(glfw.StencilBits, req.Attributes.StencilBits)
		glfw.WindowHint(glfw.Samples, req.Attributes.Samples)

		var cerr error
		win, cerr = glfw.CreateWindow(req.Width, req.Height, req.Title, nil, nil)
		if cerr != nil {
			panic(cerr)
		}
	})
	if err != nil {
		return err
	}

	gpu, err := newGpuContext(win)
	if err == nil {
		err = gpu.probeAttachment(req.Attributes)
		if err != nil {
			gpu.release()
		}
	}
	if err != nil {
		win.Destroy()
		return err
	}

	p.window = win
	p.gpu = gpu
	p.attributes = req.Attributes
	p.desktopFull = false
	return nil
}

func (p *GLFW) DestroySurface() {
	if p.gpu != nil {
		p.gpu.release()
		p.gpu = nil
	}
	if p.window != nil {
		p.window.Destroy()
		p.window = nil
	}
	p.context = false
	p.mode = nil
	p.desktopFull = false
}

// Terminate destroys the surface and shuts glfw down.
func (p *GLFW) Terminate() {
	p.DestroySurface()
	glfw.Terminate()
}

func (p *GLFW) SetSize(width, height int) {
	if p.window == nil {
		return
	}
	_ = guard("set size", func() {
		p.window.SetSize(width, height)
	})
	p.syncSwapchain()
}

func (p *GLFW) Center() {
	if p.window == nil || p.window.GetMonitor() != nil {
		return
	}
	w, h := p.window.GetSize()
	_ = guard("center", func() {
		p.window.SetPos((p.desktop.Width-w)/2, (p.desktop.Height-h)/2)
	})
}

func (p *GLFW) SetDisplayMode(mode *modes.DisplayMode) {
	if mode == nil {
		p.mode = nil
		return
	}
	cp := *mode
	p.mode = &cp
}

func (p *GLFW) refreshRate(m modes.DisplayMode) int {
	for _, vm := range p.monitor.GetVideoModes() {
		if vidModeToMode(vm) == m {
			return vm.RefreshRate
		}
	}
	return glfw.DontCare
}

func (p *GLFW) SetPresentation(target Presentation) error {
	if p.window == nil {
		return ErrNoSurface
	}
	err := guard("set presentation", func() {
		switch target {
		case Windowed:
			w, h := p.window.GetSize()
			p.window.SetMonitor(nil, (p.desktop.Width-w)/2, (p.desktop.Height-h)/2, w, h, glfw.DontCare)
		case DesktopFullscreen:
			vm := p.monitor.GetVideoMode()
			p.window.SetMonitor(p.monitor, 0, 0, vm.Width, vm.Height, vm.RefreshRate)
		case Fullscreen:
			w, h := p.window.GetSize()
			rate := glfw.DontCare
			if p.mode != nil {
				w, h = p.mode.Width, p.mode.Height
				rate = p.refreshRate(*p.mode)
			}
			p.window.SetMonitor(p.monitor, 0, 0, w, h, rate)
		}
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	if target.IsFullscreen() != (p.window.GetMonitor() != nil) {
		return fmt.Errorf("set presentation %s: %w", target, ErrUnsupported)
	}
	p.desktopFull = target == DesktopFullscreen
	p.syncSwapchain()
	return nil
}

func (p *GLFW) Show() {
	if p.window != nil {
		p.window.Show()
	}
}

func (p *GLFW) HasContext() bool {
	return p.context
}

func (p *GLFW) CreateContext() error {
	if p.gpu == nil {
		return ErrNoSurface
	}
	w, h := p.window.GetFramebufferSize()
	if err := p.gpu.configure(w, h, true); err != nil {
		return fmt.Errorf("create context: %w", err)
	}
	p.context = true
	p.swapInterval = 1
	return nil
}

func (p *GLFW) SetSwapInterval(interval int) error {
	if !p.context {
		return ErrNoSurface
	}
	w, h := p.window.GetFramebufferSize()
	if err := p.gpu.configure(w, h, interval != 0); err != nil {
		return err
	}
	p.swapInterval = interval
	return nil
}

func (p *GLFW) syncSwapchain() {
	if !p.context {
		return
	}
	p.gpu.resize(p.window.GetFramebufferSize())
}

func (p *GLFW) Size() (int, int) {
	if p.window == nil {
		return 0, 0
	}
	return p.window.GetSize()
}

func (p *GLFW) BitDepth() int {
	if p.window != nil && p.window.GetMonitor() != nil {
		return vidModeToMode(p.monitor.GetVideoMode()).BitDepth
	}
	return p.desktop.BitDepth
}

func (p *GLFW) Presentation() Presentation {
	if p.window == nil || p.window.GetMonitor() == nil {
		return Windowed
	}
	if p.desktopFull {
		return DesktopFullscreen
	}
	return Fullscreen
}

func (p *GLFW) SwapInterval() int {
	return p.swapInterval
}

func (p *GLFW) Attributes() Attributes {
	return p.attributes
}

func (p *GLFW) Focused() bool {
	if p.window == nil {
		return false
	}
	return p.window.GetAttrib(glfw.Focused) == glfw.True || p.window.GetAttrib(glfw.Hovered) == glfw.True
}

func (p *GLFW) Minimized() bool {
	if p.window == nil {
		return true
	}
	return p.window.GetAttrib(glfw.Iconified) == glfw.True || p.window.GetAttrib(glfw.Visible) == glfw.False
}

// Handle returns the *glfw.Window, or nil without a surface.
func (p *GLFW) Handle() any {
	if p.window == nil {
		return nil
	}
	return p.window
}

func (p *GLFW) Info() Info {
	if p.gpu == nil {
		return Info{}
	}
	return p.gpu.info()
}

func (p *GLFW) SetBrightness(value float32) error {
	if p.window == nil {
		return ErrNoSurface
	}
	return guard("set gamma", func() {
		p.monitor.SetGamma(value)
	})
}
