package modes

import "fmt"

// MaxModes caps how many platform modes the catalog keeps.
const MaxModes = 600

// MaxDepths caps the per-resolution depth list shown by the menu.
const MaxDepths = 5

// DisplayMode is one mode reported by the platform.
type DisplayMode struct {
	Width    int
	Height   int
	BitDepth int
}

func (m DisplayMode) String() string {
	return fmt.Sprintf("%dx%dx%d", m.Width, m.Height, m.BitDepth)
}

// Resolution is a (width, height) pair with the bit depth dropped.
type Resolution struct {
	Width  int
	Height int
}

// Catalog is a read-only snapshot of the modes the platform reported at init.
// Order is the platform's order; duplicates are kept.
type Catalog struct {
	modes []DisplayMode
}

func NewCatalog(reported []DisplayMode) *Catalog {
	n := len(reported)
	if n > MaxModes {
		n = MaxModes
	}
	c := &Catalog{modes: make([]DisplayMode, n)}
	copy(c.modes, reported[:n])
	return c
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.modes)
}

// Modes returns a copy of the catalog entries.
func (c *Catalog) Modes() []DisplayMode {
	if c == nil {
		return nil
	}
	out := make([]DisplayMode, len(c.modes))
	copy(out, c.modes)
	return out
}

// First returns the first reported mode, if any.
func (c *Catalog) First() (DisplayMode, bool) {
	if c.Len() == 0 {
		return DisplayMode{}, false
	}
	return c.modes[0], true
}

// Lookup finds an exact (width, height, depth) match.
func (c *Catalog) Lookup(width, height, bitDepth int) (DisplayMode, bool) {
	if c == nil {
		return DisplayMode{}, false
	}
	for _, m := range c.modes {
		if m.Width == width && m.Height == height && m.BitDepth == bitDepth {
			return m, true
		}
	}
	return DisplayMode{}, false
}

// Resolutions returns the distinct (width, height) pairs in first-seen order.
func (c *Catalog) Resolutions() []Resolution {
	if c == nil {
		return nil
	}
	var out []Resolution
	for _, m := range c.modes {
		r := Resolution{Width: m.Width, Height: m.Height}
		seen := false
		for _, o := range out {
			if o == r {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, r)
		}
	}
	return out
}

// Depths returns the distinct bit depths available at width x height,
// at most MaxDepths of them.
func (c *Catalog) Depths(width, height int) []int {
	if c == nil {
		return nil
	}
	var out []int
	for _, m := range c.modes {
		if len(out) >= MaxDepths {
			break
		}
		if m.Width != width || m.Height != height {
			continue
		}
		seen := false
		for _, d := range out {
			if d == m.BitDepth {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, m.BitDepth)
		}
	}
	return out
}

// Describe formats each run of distinct consecutive modes, one per line.
func (c *Catalog) Describe() []string {
	if c == nil {
		return nil
	}
	var (
		lines []string
		last  DisplayMode
	)
	for _, m := range c.modes {
		if m == last {
			continue
		}
		lines = append(lines, fmt.Sprintf("   %4d x %4d x %d", m.Width, m.Height, m.BitDepth))
		last = m
	}
	return lines
}
