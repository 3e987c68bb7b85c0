package vidmode

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// maxExecutePerFrame bounds one Execute so a command that keeps queueing
// itself cannot stall the frame.
const maxExecutePerFrame = 1024

const defaultScrollback = 512

type CommandFunc func(args []string)

// VarStore is a set of named variables the console can read and write.
type VarStore interface {
	Get(name string) (string, error)
	Set(name, value string) error
	Toggle(name string) error
}

// Console runs text commands and keeps a scrollback of printed lines.
// Text added with AddText runs on the next Execute, in order.
type Console struct {
	commands   map[string]CommandFunc
	vars       []VarStore
	pending    []string
	lines      []string
	scrollback int
	echo       io.Writer
	log        Logger
}

func NewConsole(log Logger) *Console {
	if log == nil {
		log = NewNopLogger()
	}
	c := &Console{
		commands:   map[string]CommandFunc{},
		scrollback: defaultScrollback,
		log:        log,
	}
	c.Register("set", c.setCommand)
	c.Register("toggle", c.toggleCommand)
	return c
}

// Register adds a command. A name that is already taken is kept and the
// new command is dropped.
func (c *Console) Register(name string, fn CommandFunc) {
	if _, ok := c.commands[name]; ok {
		c.log.Warnf("console: %s already defined", name)
		return
	}
	c.commands[name] = fn
}

func (c *Console) BindVars(v VarStore) {
	c.vars = append(c.vars, v)
}

// AddText queues commands separated by newlines or semicolons.
func (c *Console) AddText(text string) {
	for _, line := range strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == ';' }) {
		if line = strings.TrimSpace(line); line != "" {
			c.pending = append(c.pending, line)
		}
	}
}

// Pending reports whether queued text is waiting for Execute.
func (c *Console) Pending() bool {
	return len(c.pending) > 0
}

// Execute runs queued lines, including lines queued by the commands it runs.
func (c *Console) Execute() {
	for n := 0; len(c.pending) > 0; n++ {
		if n == maxExecutePerFrame {
			c.log.Warnf("console: more than %d commands in one frame, deferring the rest", maxExecutePerFrame)
			return
		}
		line := c.pending[0]
		c.pending = c.pending[1:]
		c.Run(line)
	}
}

// Run executes one line immediately.
func (c *Console) Run(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	name, args := fields[0], fields[1:]
	if fn, ok := c.commands[name]; ok {
		fn(args)
		return
	}
	if c.variable(name, args) {
		return
	}
	c.Printf("Unknown command \"%s\"\n", name)
}

func (c *Console) variable(name string, args []string) bool {
	for _, v := range c.vars {
		value, err := v.Get(name)
		if err != nil {
			continue
		}
		if len(args) == 0 {
			c.Printf("\"%s\" is \"%s\"\n", name, value)
			return true
		}
		if err := v.Set(name, args[0]); err != nil {
			c.Printf("%v\n", err)
		}
		return true
	}
	return false
}

func (c *Console) setCommand(args []string) {
	if len(args) < 2 {
		c.Printf("set <variable> <value>\n")
		return
	}
	if !c.variable(args[0], args[1:2]) {
		c.Printf("Unknown variable \"%s\"\n", args[0])
	}
}

var errNoVariable = errors.New("unknown variable")

func (c *Console) toggleCommand(args []string) {
	if len(args) != 1 {
		c.Printf("toggle <variable>\n")
		return
	}
	err := errNoVariable
	for _, v := range c.vars {
		if _, getErr := v.Get(args[0]); getErr != nil {
			continue
		}
		err = v.Toggle(args[0])
		break
	}
	switch {
	case errors.Is(err, errNoVariable):
		c.Printf("Unknown variable \"%s\"\n", args[0])
	case err != nil:
		c.Printf("%v\n", err)
	}
}

// SetEcho copies every printed line to w as it is printed, whether or not
// it survives in the scrollback. Nil stops echoing.
func (c *Console) SetEcho(w io.Writer) {
	c.echo = w
}

// Printf appends to the scrollback, one entry per line.
func (c *Console) Printf(format string, args ...any) {
	text := strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")
	lines := strings.Split(text, "\n")
	if c.echo != nil {
		for _, line := range lines {
			fmt.Fprintln(c.echo, line)
		}
	}
	c.lines = append(c.lines, lines...)
	if over := len(c.lines) - c.scrollback; over > 0 {
		c.lines = c.lines[over:]
	}
}

func (c *Console) Lines() []string {
	return append([]string(nil), c.lines...)
}

// consoleLogger mirrors everything but debug output into the console.
type consoleLogger struct {
	Logger
	console *Console
}

func (l consoleLogger) Infof(format string, args ...any) {
	l.Logger.Infof(format, args...)
	l.console.Printf(format, args...)
}

func (l consoleLogger) Warnf(format string, args ...any) {
	l.Logger.Warnf(format, args...)
	l.console.Printf(format, args...)
}

func (l consoleLogger) Errorf(format string, args ...any) {
	l.Logger.Errorf(format, args...)
	l.console.Printf(format, args...)
}

type ConsoleModule struct{}

func (mod ConsoleModule) Install(app *App, cmd *Commands) {
	console := NewConsole(app.Logger())
	cmd.AddResources(console)
	cmd.UseSystem(
		System(consoleSystem).
			InStage(PreUpdate).
			RunAlways(),
	)
}

// consoleSystem opens and closes the console on the grave key, then runs
// queued text.
func consoleSystem(console *Console, input *Input, focus *Focus) {
	if input.JustPressed[KeyGraveAccent] {
		switch focus.Dest {
		case DestGame:
			focus.Dest = DestConsole
			input.Deactivate(true)
		case DestConsole:
			focus.Dest = DestGame
			input.Activate()
		}
	}
	console.Execute()
}
