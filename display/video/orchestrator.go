package video

import (
	"fmt"
	"time"

	"github.com/gekko3d/vidmode/display/platform"
)

// DefaultConfirmTimeout is how long a test mode waits before keeping itself.
const DefaultConfirmTimeout = 5 * time.Second

const confirmPrompt = "Would you like to keep this\nvideo mode? (y/n)\n"

type State int

const (
	StateIdle State = iota
	StateLocked
	StatePending
	StateRestarting
	StateAwaitingConfirmation
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLocked:
		return "locked"
	case StatePending:
		return "pending"
	case StateRestarting:
		return "restarting"
	case StateAwaitingConfirmation:
		return "awaiting confirmation"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Orchestrator sequences a mode change: teardown, set mode, recreate,
// resync. It is not reentrant; a nested Restart is refused.
type Orchestrator struct {
	ctl      *Controller
	settings *Settings
	platform platform.Platform
	hooks    *Hooks
	input    Input
	ui       UI
	confirm  Confirmer
	log      Logger
	fatal    func(error)

	confirmTimeout time.Duration
	locked         bool
	restarting     bool
	confirming     bool
	fastToggle     bool
}

func (o *Orchestrator) State() State {
	switch {
	case o.confirming:
		return StateAwaitingConfirmation
	case o.restarting:
		return StateRestarting
	case o.locked:
		return StateLocked
	case o.settings.Changed():
		return StatePending
	}
	return StateIdle
}

// Lock refuses mode changes until Unlock, while startup settings are still
// arriving from several sources.
func (o *Orchestrator) Lock() {
	o.locked = true
}

func (o *Orchestrator) Unlock() {
	o.locked = false
	o.ctl.SyncSettings()
}

// FastToggle reports whether the in-place fullscreen flip is still trusted.
func (o *Orchestrator) FastToggle() bool {
	return o.fastToggle
}

// Restart applies pending settings. It does nothing while locked, with
// nothing pending, or when called from inside another restart. An invalid
// request is reported before anything is torn down and stays pending.
func (o *Orchestrator) Restart() error {
	if o.restarting {
		o.log.Warnf("vid_restart: restart already in progress")
		return nil
	}
	if o.locked || !o.settings.Changed() {
		return nil
	}

	cfg := o.settings.Config()
	if !o.ctl.IsValidMode(cfg.Width, cfg.Height, cfg.BitDepth, cfg.Fullscreen) {
		kind := "windowed"
		if cfg.Fullscreen {
			kind = "fullscreen"
		}
		o.log.Warnf("%dx%dx%d %s is not a valid mode", cfg.Width, cfg.Height, cfg.BitDepth, kind)
		return fmt.Errorf("%dx%dx%d %s: %w", cfg.Width, cfg.Height, cfg.BitDepth, kind, ErrInvalidMode)
	}

	o.restarting = true
	defer func() { o.restarting = false }()

	// Never interleave: a new object could reuse the handle of an old one
	// that is destroyed later.
	o.hooks.runTeardown(o.log)

	if err := o.ctl.SetMode(cfg.Width, cfg.Height, cfg.BitDepth, cfg.Fullscreen); err != nil {
		o.fatal(err)
		return err
	}

	o.hooks.runRecreate(o.log, o.ctl.Viewport())
	o.ctl.SyncSettings()
	o.updateGrab()
	return nil
}

// Test restarts into the pending mode and asks the user to keep it. If they
// decline, the previous live mode is restored.
func (o *Orchestrator) Test() error {
	if o.locked || o.restarting || !o.settings.Changed() {
		return nil
	}

	oldW, oldH := o.platform.Size()
	oldBpp := o.platform.BitDepth()
	oldFullscreen := o.platform.Presentation().IsFullscreen()

	if err := o.Restart(); err != nil {
		return err
	}

	o.confirming = true
	keep := o.confirm.Confirm(confirmPrompt, o.confirmTimeout)
	o.confirming = false
	if keep {
		return nil
	}

	o.settings.SetMode(oldW, oldH, oldBpp, oldFullscreen)
	o.settings.markChanged()
	return o.Restart()
}

// Toggle flips between fullscreen and windowed. While the fast path is
// trusted it flips the live surface in place without touching GPU
// resources; the first rejection disables it for the rest of the session.
func (o *Orchestrator) Toggle() error {
	if o.fastToggle && o.platform.HasSurface() && !o.locked && !o.restarting {
		target := platform.Windowed
		if !o.platform.Presentation().IsFullscreen() {
			target = platform.Fullscreen
			if o.settings.Config().DesktopFullscreen {
				target = platform.DesktopFullscreen
			}
		}
		err := o.platform.SetPresentation(target)
		if err == nil {
			o.ctl.refreshViewport(o.ctl.Viewport().Generation)
			o.ctl.SyncSettings()
			o.updateGrab()
			return nil
		}
		o.fastToggle = false
		o.log.Debugf("fullscreen toggle failed, attempting vid_restart: %v", err)
	}

	o.settings.SetFullscreen(!o.platform.Presentation().IsFullscreen())
	return o.Restart()
}

// updateGrab releases the mouse in a windowed console or menu and grabs
// it in fullscreen.
func (o *Orchestrator) updateGrab() {
	if !o.ui.InConsoleOrMenu() {
		return
	}
	if o.platform.Presentation().IsFullscreen() {
		o.input.Activate()
	} else {
		o.input.Deactivate(true)
	}
}
