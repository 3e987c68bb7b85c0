package vidmode

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapVars map[string]string

func (m mapVars) Get(name string) (string, error) {
	v, ok := m[name]
	if !ok {
		return "", errors.New("no such variable")
	}
	return v, nil
}

func (m mapVars) Set(name, value string) error {
	if value == "bad" {
		return fmt.Errorf("%s: bad value", name)
	}
	m[name] = value
	return nil
}

func (m mapVars) Toggle(name string) error {
	if m[name] == "0" {
		m[name] = "1"
	} else {
		m[name] = "0"
	}
	return nil
}

func TestConsole_AddTextSplitsLines(t *testing.T) {
	c := NewConsole(nil)
	var got [][]string
	c.Register("echo", func(args []string) { got = append(got, args) })

	c.AddText("echo a b\n  \necho c; echo d\n")
	require.True(t, c.Pending())
	c.Execute()

	assert.False(t, c.Pending())
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}, {"d"}}, got)
}

func TestConsole_CommandsQueuedDuringExecuteRunSameFrame(t *testing.T) {
	c := NewConsole(nil)
	ran := false
	c.Register("first", func([]string) { c.AddText("second\n") })
	c.Register("second", func([]string) { ran = true })

	c.AddText("first\n")
	c.Execute()
	assert.True(t, ran)
}

func TestConsole_ExecuteIsBounded(t *testing.T) {
	c := NewConsole(nil)
	calls := 0
	c.Register("loop", func([]string) {
		calls++
		c.AddText("loop\n")
	})

	c.AddText("loop\n")
	c.Execute()
	assert.Equal(t, maxExecutePerFrame, calls)
	assert.True(t, c.Pending())
}

func TestConsole_Variables(t *testing.T) {
	c := NewConsole(nil)
	vars := mapVars{"vid_width": "800", "vid_fullscreen": "0"}
	c.BindVars(vars)

	c.Run("vid_width")
	c.Run("vid_width 1024")
	c.Run("set vid_width 640")
	c.Run("toggle vid_fullscreen")
	c.Run("vid_width bad")

	assert.Equal(t, "640", vars["vid_width"])
	assert.Equal(t, "1", vars["vid_fullscreen"])
	assert.Equal(t, []string{
		`"vid_width" is "800"`,
		"vid_width: bad value",
	}, c.Lines())
}

func TestConsole_UnknownNames(t *testing.T) {
	c := NewConsole(nil)
	c.BindVars(mapVars{})

	c.Run("nothing")
	c.Run("set nothing 1")
	c.Run("toggle nothing")
	c.Run("set")

	assert.Equal(t, []string{
		`Unknown command "nothing"`,
		`Unknown variable "nothing"`,
		`Unknown variable "nothing"`,
		"set <variable> <value>",
	}, c.Lines())
}

func TestConsole_RegisterKeepsFirst(t *testing.T) {
	var errOut bytes.Buffer
	c := NewConsole(NewDefaultLoggerTo("", false, &bytes.Buffer{}, &errOut))
	which := ""
	c.Register("cmd", func([]string) { which = "first" })
	c.Register("cmd", func([]string) { which = "second" })

	c.Run("cmd")
	assert.Equal(t, "first", which)
	assert.Contains(t, errOut.String(), "console: cmd already defined")
}

func TestConsole_Scrollback(t *testing.T) {
	c := NewConsole(nil)
	c.scrollback = 3
	c.Printf("a\nb\n")
	c.Printf("c\nd\n")

	assert.Equal(t, []string{"b", "c", "d"}, c.Lines())
}

func TestConsole_EchoOutlivesScrollback(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(nil)
	c.scrollback = 2
	c.Printf("before\n")
	c.SetEcho(&out)

	for i := 0; i < 5; i++ {
		c.Printf("line %d\n", i)
	}
	c.Printf("a\nb\n")

	assert.Equal(t, "line 0\nline 1\nline 2\nline 3\nline 4\na\nb\n", out.String())
	assert.Equal(t, []string{"a", "b"}, c.Lines())

	c.SetEcho(nil)
	c.Printf("quiet\n")
	assert.NotContains(t, out.String(), "quiet")
}

func TestConsoleLogger_Tee(t *testing.T) {
	var out, errOut bytes.Buffer
	c := NewConsole(nil)
	l := consoleLogger{Logger: NewDefaultLoggerTo("video", false, &out, &errOut), console: c}

	l.Debugf("hidden")
	l.Infof("mode %dx%d", 640, 480)
	l.Warnf("careful")

	assert.Equal(t, []string{"mode 640x480", "careful"}, c.Lines())
	assert.Contains(t, out.String(), "[video] INFO: mode 640x480")
	assert.Contains(t, errOut.String(), "[video] WARN: careful")
	assert.NotContains(t, out.String(), "hidden")
}

func TestConsoleSystem_GraveTogglesFocus(t *testing.T) {
	c := NewConsole(nil)
	in := &Input{}
	focus := &Focus{}

	in.Queue(KeyGraveAccent, true)
	in.poll(nil)
	consoleSystem(c, in, focus)
	assert.Equal(t, DestConsole, focus.Dest)
	assert.False(t, in.MouseCaptured)
	assert.True(t, in.CursorFree)

	in.Queue(KeyGraveAccent, false)
	in.Queue(KeyGraveAccent, true)
	in.poll(nil)
	consoleSystem(c, in, focus)
	assert.Equal(t, DestGame, focus.Dest)
	assert.True(t, in.MouseCaptured)
}
