// Package menu is the video options menu as a pure state machine: a key
// press maps the current state to a new state plus the commands to run.
package menu

import (
	"fmt"

	"github.com/gekko3d/vidmode/display/modes"
)

type Item int

const (
	ItemMode Item = iota
	ItemDepth
	ItemFullscreen
	ItemVSync
	ItemTest
	ItemApply
	itemCount
)

type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
)

type CommandKind int

const (
	SetResolution CommandKind = iota
	SetDepth
	ToggleFullscreen
	ToggleVSync
	Test
	// Apply restarts with the staged values and returns to the game.
	Apply
	// Leave syncs the settings back from the live mode and closes the menu.
	Leave
)

type Command struct {
	Kind     CommandKind
	Width    int
	Height   int
	BitDepth int
}

// Text is the console form of the command.
func (c Command) Text() string {
	switch c.Kind {
	case SetResolution:
		return fmt.Sprintf("vid_width %d\nvid_height %d\n", c.Width, c.Height)
	case SetDepth:
		return fmt.Sprintf("vid_bpp %d\n", c.BitDepth)
	case ToggleFullscreen:
		return "toggle vid_fullscreen\n"
	case ToggleVSync:
		return "toggle vid_vsync\n"
	case Test:
		return "vid_test\n"
	case Apply:
		return "vid_restart\n"
	}
	return ""
}

// Values mirror the settings the menu shows and edits.
type Values struct {
	Width      int
	Height     int
	BitDepth   int
	Fullscreen bool
	VSync      bool
}

type State struct {
	Cursor      Item
	Values      Values
	SwapControl bool

	catalog     *modes.Catalog
	resolutions []modes.Resolution
	depths      []int
}

// Open enters the menu. values must already be synced from the live mode.
func Open(catalog *modes.Catalog, values Values, swapControl bool) (State, []Command) {
	s := State{
		Values:      values,
		SwapControl: swapControl,
		catalog:     catalog,
		resolutions: catalog.Resolutions(),
	}
	var out []Command
	s, out = s.rebuildDepths(out)
	return s, out
}

// Depths are the color depths offered for the staged resolution.
func (s State) Depths() []int {
	return append([]int(nil), s.depths...)
}

// rebuildDepths restricts the depth list to the staged resolution and moves
// the staged depth into it.
func (s State) rebuildDepths(out []Command) (State, []Command) {
	s.depths = s.catalog.Depths(s.Values.Width, s.Values.Height)
	if len(s.depths) == 0 {
		if first, ok := s.catalog.First(); ok && first.BitDepth != s.Values.BitDepth {
			s.Values.BitDepth = first.BitDepth
			out = append(out, Command{Kind: SetDepth, BitDepth: first.BitDepth})
		}
		return s, out
	}
	for _, d := range s.depths {
		if d == s.Values.BitDepth {
			return s, out
		}
	}
	s.Values.BitDepth = s.depths[0]
	return s, append(out, Command{Kind: SetDepth, BitDepth: s.depths[0]})
}

func wrap(i, dir, n int) int {
	i += dir
	if i >= n {
		return 0
	}
	if i < 0 {
		return n - 1
	}
	return i
}

func (s State) nextResolution(dir int, out []Command) (State, []Command) {
	if len(s.resolutions) == 0 {
		return s, out
	}
	i := -1
	for j, r := range s.resolutions {
		if r.Width == s.Values.Width && r.Height == s.Values.Height {
			i = j
			break
		}
	}
	// a custom windowed size starts over at the first resolution
	if i < 0 {
		i = 0
	} else {
		i = wrap(i, dir, len(s.resolutions))
	}
	r := s.resolutions[i]
	s.Values.Width, s.Values.Height = r.Width, r.Height
	out = append(out, Command{Kind: SetResolution, Width: r.Width, Height: r.Height})
	return s.rebuildDepths(out)
}

func (s State) nextDepth(dir int, out []Command) (State, []Command) {
	if len(s.depths) == 0 {
		return s, out
	}
	i := -1
	for j, d := range s.depths {
		if d == s.Values.BitDepth {
			i = j
			break
		}
	}
	if i < 0 {
		i = 0
	} else {
		i = wrap(i, dir, len(s.depths))
	}
	s.Values.BitDepth = s.depths[i]
	return s, append(out, Command{Kind: SetDepth, BitDepth: s.depths[i]})
}

// cycle changes the value under the cursor. Left and enter step forward
// through the lists, right steps back.
func (s State) cycle(dir int) (State, []Command) {
	var out []Command
	switch s.Cursor {
	case ItemMode:
		return s.nextResolution(dir, out)
	case ItemDepth:
		return s.nextDepth(dir, out)
	case ItemFullscreen:
		s.Values.Fullscreen = !s.Values.Fullscreen
		return s, append(out, Command{Kind: ToggleFullscreen})
	case ItemVSync:
		s.Values.VSync = !s.Values.VSync
		return s, append(out, Command{Kind: ToggleVSync})
	}
	return s, nil
}

func Update(s State, key Key) (State, []Command) {
	switch key {
	case KeyUp:
		s.Cursor = Item(wrap(int(s.Cursor), -1, int(itemCount)))
	case KeyDown:
		s.Cursor = Item(wrap(int(s.Cursor), 1, int(itemCount)))
	case KeyLeft:
		return s.cycle(1)
	case KeyRight:
		return s.cycle(-1)
	case KeyEnter:
		switch s.Cursor {
		case ItemTest:
			return s, []Command{{Kind: Test}}
		case ItemApply:
			return s, []Command{{Kind: Apply}}
		}
		return s.cycle(1)
	case KeyEscape:
		return s, []Command{{Kind: Leave}}
	}
	return s, nil
}
