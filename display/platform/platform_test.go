package platform

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/vidmode/display/modes"
)

func TestPresentation(t *testing.T) {
	assert.False(t, Windowed.IsFullscreen())
	assert.True(t, Fullscreen.IsFullscreen())
	assert.True(t, DesktopFullscreen.IsFullscreen())
	assert.Equal(t, "desktop fullscreen", DesktopFullscreen.String())
	assert.Equal(t, "Presentation(9)", Presentation(9).String())
}

func TestDepthFormat(t *testing.T) {
	f, ok := depthFormat(Attributes{DepthBits: 24, StencilBits: 8})
	require.True(t, ok)
	assert.Equal(t, wgpu.TextureFormatDepth24PlusStencil8, f)

	f, ok = depthFormat(Attributes{DepthBits: 16})
	require.True(t, ok)
	assert.Equal(t, wgpu.TextureFormatDepth16Unorm, f)

	_, ok = depthFormat(Attributes{DepthBits: 16, StencilBits: 8})
	assert.False(t, ok)
}

func TestGuardRecoversPanics(t *testing.T) {
	err := guard("set monitor", func() { panic("no context") })
	require.Error(t, err)
	assert.Equal(t, "set monitor: no context", err.Error())

	assert.NoError(t, guard("noop", func() {}))
}

func TestVidModeToMode(t *testing.T) {
	m := vidModeToMode(&glfw.VidMode{Width: 1920, Height: 1080, RedBits: 8, GreenBits: 8, BlueBits: 8})
	assert.Equal(t, modes.DisplayMode{Width: 1920, Height: 1080, BitDepth: 24}, m)
	assert.Equal(t, modes.DisplayMode{}, vidModeToMode(nil))
}

func TestMemorySurfaceLifecycle(t *testing.T) {
	desktop := modes.DisplayMode{Width: 1280, Height: 1024, BitDepth: 32}
	m := NewMemory(desktop, modes.DisplayMode{Width: 640, Height: 480, BitDepth: 16})

	assert.ErrorIs(t, m.SetPresentation(Fullscreen), ErrNoSurface)
	assert.Nil(t, m.Handle())

	require.NoError(t, m.CreateSurface(SurfaceRequest{Width: 640, Height: 480, Attributes: Attributes{DepthBits: 16}}))
	assert.True(t, m.Minimized())
	m.Show()
	assert.False(t, m.Minimized())

	assert.Equal(t, 32, m.BitDepth())
	m.SetDisplayMode(&modes.DisplayMode{Width: 640, Height: 480, BitDepth: 16})
	assert.Equal(t, 16, m.BitDepth())

	require.NoError(t, m.SetPresentation(DesktopFullscreen))
	w, h := m.Size()
	assert.Equal(t, 1280, w)
	assert.Equal(t, 1024, h)

	m.DestroySurface()
	assert.False(t, m.HasSurface())
	assert.False(t, m.HasContext())
	assert.Equal(t, Windowed, m.Presentation())
}

func TestMemoryFailureInjection(t *testing.T) {
	m := NewMemory(modes.DisplayMode{Width: 800, Height: 600, BitDepth: 24})
	m.AcceptAttributes = func(a Attributes) bool { return a.Samples == 0 }

	err := m.CreateSurface(SurfaceRequest{Attributes: Attributes{Samples: 4}})
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.False(t, m.HasSurface())

	require.NoError(t, m.CreateSurface(SurfaceRequest{Width: 800, Height: 600}))
	m.SwapUnsupported = true
	assert.ErrorIs(t, m.SetSwapInterval(1), ErrUnsupported)
	assert.Zero(t, m.SwapInterval())
	assert.Len(t, m.Calls, 3)
}
