package video

import "github.com/google/uuid"

// Viewport is what dependent subsystems learn about a freshly set mode.
// Generation changes on every successful mode set, so handles tagged with an
// older generation belong to a torn-down context.
type Viewport struct {
	Generation  uuid.UUID
	Width       int
	Height      int
	ConWidth    int
	ConHeight   int
	DepthBits   int
	StencilBits int
	Samples     int
}

type teardownHook struct {
	name string
	fn   func()
}

type viewportHook struct {
	name string
	fn   func(Viewport)
}

// Hooks are the GPU-resource callbacks run around a restart. All teardown
// hooks run before the new mode is set and all recreate hooks after, each in
// registration order.
type Hooks struct {
	teardown []teardownHook
	recreate []viewportHook
	resize   []viewportHook
}

// OnTeardown registers a resource that must be destroyed before a mode change.
func (h *Hooks) OnTeardown(name string, fn func()) {
	h.teardown = append(h.teardown, teardownHook{name: name, fn: fn})
}

// OnRecreate registers a resource that must be rebuilt after a mode change.
func (h *Hooks) OnRecreate(name string, fn func(Viewport)) {
	h.recreate = append(h.recreate, viewportHook{name: name, fn: fn})
}

// OnResize registers a recompute of sizes derived from the viewport
// (warp targets, console size). Runs after every recreate hook.
func (h *Hooks) OnResize(name string, fn func(Viewport)) {
	h.resize = append(h.resize, viewportHook{name: name, fn: fn})
}

func (h *Hooks) runTeardown(log Logger) {
	for _, hk := range h.teardown {
		log.Debugf("teardown: %s", hk.name)
		hk.fn()
	}
}

func (h *Hooks) runRecreate(log Logger, vp Viewport) {
	for _, hk := range h.recreate {
		log.Debugf("recreate: %s", hk.name)
		hk.fn(vp)
	}
	for _, hk := range h.resize {
		hk.fn(vp)
	}
}
