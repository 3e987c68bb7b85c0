package vidmode

type Commands struct {
	app *App
}

func (cmd *Commands) ChangeState(newState State) *Commands {
	cmd.app.changeState(newState)
	return cmd
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

func (cmd *Commands) UseSystem(system systemScheduleBuilder) *Commands {
	cmd.app.UseSystem(system)
	return cmd
}

// OnShutdown registers fn to run when the app stops. Hooks run in reverse
// registration order so later modules release before the ones they use.
func (cmd *Commands) OnShutdown(fn func()) *Commands {
	cmd.app.onShutdown = append(cmd.app.onShutdown, fn)
	return cmd
}

// Quit stops the app after the current frame.
func (cmd *Commands) Quit() {
	cmd.app.quit = true
}
