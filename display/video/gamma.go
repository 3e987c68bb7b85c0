package video

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/vidmode/display/platform"
)

// GammaMax is the brightest the display is ever driven.
const GammaMax = 3.0

// Brightness maps the user gamma (higher is brighter) to the platform
// brightness, its inverse, never above GammaMax. Zero, negative and NaN
// gamma give GammaMax.
func Brightness(gamma float32) float32 {
	if !(gamma > 0) {
		return GammaMax
	}
	return mgl32.Clamp(1/gamma, 0, GammaMax)
}

// Gamma drives hardware gamma. With the shader path active it does nothing.
type Gamma struct {
	platform   platform.Platform
	settings   *Settings
	log        Logger
	shaderPath bool
	works      bool
}

// Init probes hardware gamma by applying neutral brightness.
func (g *Gamma) Init() {
	if g.shaderPath {
		return
	}
	g.works = g.platform.HasSurface() && g.platform.SetBrightness(1) == nil
	if !g.works {
		g.log.Warnf("gamma adjustment not available")
	}
}

// Works reports whether hardware gamma is in use.
func (g *Gamma) Works() bool {
	return !g.shaderPath && g.works
}

func (g *Gamma) Set() {
	if !g.Works() || !g.platform.HasSurface() {
		return
	}
	if err := g.platform.SetBrightness(Brightness(g.settings.Config().Gamma)); err != nil {
		g.log.Errorf("set gamma: %v", err)
	}
}

// Restore puts the display back to neutral brightness.
func (g *Gamma) Restore() {
	if !g.Works() || !g.platform.HasSurface() {
		return
	}
	if err := g.platform.SetBrightness(1); err != nil {
		g.log.Errorf("restore gamma: %v", err)
	}
}
