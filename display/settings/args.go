package settings

import (
	"flag"
	"io"
	"strings"
)

// Args are the video overrides given on the command line. Zero means the
// value was not given.
type Args struct {
	Current    bool
	Width      int
	Height     int
	BitDepth   int
	Windowed   bool
	Fullscreen bool
	FSAA       int
	FSAASet    bool
	// Overrides are "+name value" pairs, in command line order.
	Overrides []Override
}

// Override sets one named setting from the command line.
type Override struct {
	Name  string
	Value string
}

// overrides collects "+name value" pairs. A "+name" followed by another
// flag or by nothing has an empty value.
func overrides(args []string) []Override {
	var out []Override
	for i := 0; i < len(args); i++ {
		name, ok := strings.CutPrefix(args[i], "+")
		if !ok || name == "" {
			continue
		}
		o := Override{Name: name}
		if next := i + 1; next < len(args) && !strings.HasPrefix(args[next], "+") && !strings.HasPrefix(args[next], "-") {
			o.Value = args[next]
			i++
		}
		out = append(out, o)
	}
	return out
}

// videoFlags maps each recognised flag to whether it takes a value.
var videoFlags = map[string]bool{
	"current":    false,
	"width":      true,
	"height":     true,
	"bpp":        true,
	"window":     false,
	"w":          false,
	"fullscreen": false,
	"f":          false,
	"fsaa":       true,
}

// filterArgs keeps only video flags (and their values) so the rest of the
// command line can belong to other subsystems.
func filterArgs(args []string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		name := strings.TrimLeft(args[i], "-")
		if name == args[i] {
			continue
		}
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			if _, ok := videoFlags[name[:eq]]; ok {
				out = append(out, args[i])
			}
			continue
		}
		takesValue, ok := videoFlags[name]
		if !ok {
			continue
		}
		out = append(out, args[i])
		if takesValue && i+1 < len(args) {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// ParseArgs extracts the video flags from a full command line, skipping
// anything it does not know.
func ParseArgs(args []string) (Args, error) {
	var a Args
	fs := flag.NewFlagSet("video", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&a.Current, "current", false, "use the desktop mode, fullscreen")
	fs.IntVar(&a.Width, "width", 0, "window width")
	fs.IntVar(&a.Height, "height", 0, "window height")
	fs.IntVar(&a.BitDepth, "bpp", 0, "color depth")
	fs.BoolVar(&a.Windowed, "window", false, "force windowed")
	fs.BoolVar(&a.Windowed, "w", false, "force windowed")
	fs.BoolVar(&a.Fullscreen, "fullscreen", false, "force fullscreen")
	fs.BoolVar(&a.Fullscreen, "f", false, "force fullscreen")
	fsaa := fs.Int("fsaa", -1, "antialiasing samples")

	if err := fs.Parse(filterArgs(args)); err != nil {
		return Args{}, err
	}
	if *fsaa >= 0 {
		a.FSAA = *fsaa
		a.FSAASet = true
	}
	a.Overrides = overrides(args)
	return a, nil
}
