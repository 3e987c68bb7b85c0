package platform

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// gpuContext is the webgpu side of the surface: instance, adapter, device and
// the swapchain configuration. The device outlives mode changes; only the
// swapchain is reconfigured.
type gpuContext struct {
	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	caps     wgpu.SurfaceCapabilities
	config   *wgpu.SurfaceConfiguration
}

func newGpuContext(win *glfw.Window) (g *gpuContext, err error) {
	g = &gpuContext{}
	err = guard("webgpu init", func() {
		g.instance = wgpu.CreateInstance(nil)
		// wraps GLFW window into a wgpu surface.
		g.surface = g.instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(win))
	})
	if err != nil {
		g.release()
		return nil, err
	}

	// finds a suitable GPU (discrete GPU preferred)
	g.adapter, err = g.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: g.surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		g.release()
		return nil, fmt.Errorf("request adapter: %w", err)
	}

	g.device, err = g.adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Video Device",
	})
	if err != nil {
		g.release()
		return nil, fmt.Errorf("request device: %w", err)
	}
	g.queue = g.device.GetQueue()
	g.caps = g.surface.GetCapabilities(g.adapter)
	if len(g.caps.Formats) == 0 || len(g.caps.AlphaModes) == 0 {
		g.release()
		return nil, fmt.Errorf("surface has no formats: %w", ErrUnsupported)
	}
	return g, nil
}

func depthFormat(a Attributes) (wgpu.TextureFormat, bool) {
	switch {
	case a.DepthBits == 24 && a.StencilBits == 8:
		return wgpu.TextureFormatDepth24PlusStencil8, true
	case a.DepthBits == 24 && a.StencilBits == 0:
		return wgpu.TextureFormatDepth24Plus, true
	case a.DepthBits == 16 && a.StencilBits == 0:
		return wgpu.TextureFormatDepth16Unorm, true
	}
	return 0, false
}

// probeAttachment allocates a throwaway depth/stencil attachment with the
// requested sample count to learn whether the device supports it.
func (g *gpuContext) probeAttachment(a Attributes) error {
	format, ok := depthFormat(a)
	if !ok {
		return fmt.Errorf("depth %d stencil %d: %w", a.DepthBits, a.StencilBits, ErrUnsupported)
	}
	samples := a.Samples
	if samples <= 0 {
		samples = 1
	}
	if samples != 1 && samples != 4 {
		return fmt.Errorf("%d samples: %w", samples, ErrUnsupported)
	}

	var tex *wgpu.Texture
	err := guard("probe attachment", func() {
		var cerr error
		tex, cerr = g.device.CreateTexture(&wgpu.TextureDescriptor{
			Label:         "Depth Probe",
			Size:          wgpu.Extent3D{Width: 1, Height: 1, DepthOrArrayLayers: 1},
			MipLevelCount: 1,
			Dimension:     wgpu.TextureDimension2D,
			Format:        format,
			Usage:         wgpu.TextureUsageRenderAttachment,
			SampleCount:   uint32(samples),
		})
		if cerr != nil {
			panic(cerr)
		}
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	tex.Release()
	return nil
}

func (g *gpuContext) supportsPresentMode(mode wgpu.PresentMode) bool {
	for _, m := range g.caps.PresentModes {
		if m == mode {
			return true
		}
	}
	return false
}

// configure (re)builds the swapchain. vsync maps to FIFO presentation.
func (g *gpuContext) configure(width, height int, vsync bool) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	present := wgpu.PresentModeImmediate
	if vsync {
		present = wgpu.PresentModeFifo
	}
	if !g.supportsPresentMode(present) {
		return fmt.Errorf("present mode %v: %w", present, ErrUnsupported)
	}
	// defines how the swapchain behaves (size, format, vsync)
	cfg := &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      g.caps.Formats[0],
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: present,
		AlphaMode:   g.caps.AlphaModes[0],
	}
	err := guard("configure surface", func() {
		g.surface.Configure(g.adapter, g.device, cfg)
	})
	if err != nil {
		return err
	}
	g.config = cfg
	return nil
}

func (g *gpuContext) resize(width, height int) {
	if g.config == nil || width <= 0 || height <= 0 {
		return
	}
	g.config.Width = uint32(width)
	g.config.Height = uint32(height)
	_ = guard("resize surface", func() {
		g.surface.Configure(g.adapter, g.device, g.config)
	})
}

func (g *gpuContext) info() Info {
	var info Info
	_ = guard("adapter info", func() {
		ai := g.adapter.GetInfo()
		info.Vendor = ai.VendorName
		info.Renderer = ai.Name
		info.Version = fmt.Sprintf("%v %s", ai.BackendType, ai.DriverDescription)
		for _, f := range g.adapter.EnumerateFeatures() {
			info.Extensions = append(info.Extensions, fmt.Sprint(f))
		}
	})
	return info
}

func (g *gpuContext) release() {
	if g == nil {
		return
	}
	if g.queue != nil {
		g.queue.Release()
	}
	if g.device != nil {
		g.device.Release()
	}
	if g.adapter != nil {
		g.adapter.Release()
	}
	if g.surface != nil {
		g.surface.Release()
	}
	if g.instance != nil {
		g.instance.Release()
	}
	*g = gpuContext{}
}
