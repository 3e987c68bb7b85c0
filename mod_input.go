package vidmode

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	KeyY int = iota
	KeyN
	KeyEnter
	KeyKPEnter
	KeyEscape
	KeyTab
	KeyGraveAccent
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyLeftAlt
	KeyRightAlt
	keyCount
)

// KeyDest is who receives key presses.
type KeyDest int

const (
	DestGame KeyDest = iota
	DestConsole
	DestMenu
)

// Focus tracks the key destination. The video system asks it whether a
// console or menu is up when deciding on the mouse grab.
type Focus struct {
	Dest KeyDest
}

func (f *Focus) InConsoleOrMenu() bool {
	return f.Dest != DestGame
}

type keyEvent struct {
	key  int
	down bool
}

type Input struct {
	Pressed      [keyCount]bool
	JustPressed  [keyCount]bool
	JustReleased [keyCount]bool

	// MouseCaptured hides the cursor and confines it to the window.
	MouseCaptured bool
	// CursorFree shows the cursor while the mouse is not captured.
	CursorFree bool

	queued []keyEvent
}

// ClearStates releases every key, so nothing held across a mode switch or
// focus change stays stuck down.
func (in *Input) ClearStates() {
	in.Pressed = [keyCount]bool{}
	in.JustPressed = [keyCount]bool{}
	in.JustReleased = [keyCount]bool{}
	in.queued = nil
}

func (in *Input) Activate() {
	in.MouseCaptured = true
}

func (in *Input) Deactivate(freeCursor bool) {
	in.MouseCaptured = false
	in.CursorFree = freeCursor
}

// Queue records a key change to be applied on the next poll. Used when no
// window delivers events.
func (in *Input) Queue(key int, down bool) {
	in.queued = append(in.queued, keyEvent{key: key, down: down})
}

func (in *Input) set(key int, down bool) {
	if down {
		if !in.Pressed[key] {
			in.JustPressed[key] = true
		}
	} else if in.Pressed[key] {
		in.JustReleased[key] = true
	}
	in.Pressed[key] = down
}

// poll starts a new input frame: edge flags are reset, then queued events
// and the window's key state are applied.
func (in *Input) poll(display *Display) {
	in.JustPressed = [keyCount]bool{}
	in.JustReleased = [keyCount]bool{}

	for _, ev := range in.queued {
		in.set(ev.key, ev.down)
	}
	in.queued = in.queued[:0]

	if display == nil {
		return
	}
	win, ok := display.Handle().(*glfw.Window)
	if !ok {
		return
	}
	glfw.PollEvents()
	for key, glfwKey := range keyToGlfw {
		switch win.GetKey(glfwKey) {
		case glfw.Press:
			in.set(key, true)
		case glfw.Release:
			in.set(key, false)
		}
	}

	switch {
	case in.MouseCaptured:
		win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	case in.CursorFree:
		win.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	default:
		win.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	}
}

type InputModule struct{}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Input{CursorFree: true}, &Focus{})
	cmd.UseSystem(
		System(inputSystem).
			InStage(PreUpdate).
			RunAlways(),
	)
}

func inputSystem(display *Display, input *Input) {
	input.poll(display)
}

var keyToGlfw = map[int]glfw.Key{
	KeyY:           glfw.KeyY,
	KeyN:           glfw.KeyN,
	KeyEnter:       glfw.KeyEnter,
	KeyKPEnter:     glfw.KeyKPEnter,
	KeyEscape:      glfw.KeyEscape,
	KeyTab:         glfw.KeyTab,
	KeyGraveAccent: glfw.KeyGraveAccent,
	KeyRight:       glfw.KeyRight,
	KeyLeft:        glfw.KeyLeft,
	KeyDown:        glfw.KeyDown,
	KeyUp:          glfw.KeyUp,
	KeyLeftAlt:     glfw.KeyLeftAlt,
	KeyRightAlt:    glfw.KeyRightAlt,
}
