package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/gekko3d/vidmode"
	"github.com/gekko3d/vidmode/display/modes"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	debug := flag.Bool("debug", false, "Enable debug logging")
	headless := flag.Bool("headless", false, "Use an in-memory display instead of a window")
	exec := flag.String("exec", "", "Console commands to run at startup, separated by ';'")
	// video flags (-width, -fullscreen, ...) are read by the video module
	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.SetOutput(os.Stderr)
	_ = flag.CommandLine.Parse(knownFlags(os.Args[1:]))

	platform := vidmode.PlatformWindowModule{}
	if *headless {
		platform = vidmode.NewHeadlessPlatform(modes.DisplayMode{Width: 1920, Height: 1080, BitDepth: 32},
			modes.DisplayMode{Width: 1920, Height: 1080, BitDepth: 32},
			modes.DisplayMode{Width: 1280, Height: 720, BitDepth: 32},
			modes.DisplayMode{Width: 800, Height: 600, BitDepth: 16},
			modes.DisplayMode{Width: 640, Height: 480, BitDepth: 16},
		)
	}

	app := vidmode.NewAppBuilder().
		UseModule(
			vidmode.LoggingModule{Prefix: "vidmode", Debug: *debug},
			vidmode.TimeModule{},
			platform,
			vidmode.InputModule{},
			vidmode.ConsoleModule{},
			vidmode.VideoModule{Title: "vidmode", Args: os.Args[1:], AppName: "vidmode"},
			echoModule{exec: *exec, quitAfter: *headless, out: os.Stdout},
		).
		Build()

	app.Run()
}

// knownFlags keeps the flags main defines so the video flags do not fail
// parsing here.
func knownFlags(args []string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-debug", "--debug", "-headless", "--headless":
			out = append(out, args[i])
		case "-exec", "--exec":
			out = append(out, args[i])
			if i+1 < len(args) {
				out = append(out, args[i+1])
				i++
			}
		}
	}
	return out
}
