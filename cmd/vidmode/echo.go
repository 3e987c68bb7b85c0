package main

import (
	"fmt"
	"io"

	"github.com/gekko3d/vidmode"
)

// echoModule queues startup commands and copies console output to out. In
// headless runs it quits once the queue has drained.
type echoModule struct {
	exec      string
	quitAfter bool
	out       io.Writer
}

func (m echoModule) Install(app *vidmode.App, cmd *vidmode.Commands) {
	console, ok := vidmode.Resource[vidmode.Console](app)
	if !ok {
		return
	}
	// lines printed while earlier modules installed
	for _, line := range console.Lines() {
		fmt.Fprintln(m.out, line)
	}
	console.SetEcho(m.out)
	console.AddText(m.exec)

	if !m.quitAfter {
		return
	}
	cmd.UseSystem(
		vidmode.System(func(c *vidmode.Console, cmd *vidmode.Commands) {
			if !c.Pending() {
				cmd.Quit()
			}
		}).
			InStage(vidmode.PostUpdate).
			RunAlways(),
	)
}
