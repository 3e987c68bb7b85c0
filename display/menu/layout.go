package menu

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const Title = "Video Options"

// Row is one menu line before layout. Checkbox rows draw Checked instead
// of Value.
type Row struct {
	Item     Item
	Label    string
	Value    string
	Checkbox bool
	Checked  bool
}

func (s State) Rows() []Row {
	v := s.Values
	rows := []Row{
		{Item: ItemMode, Label: "Video mode", Value: fmt.Sprintf("%dx%d", v.Width, v.Height)},
		{Item: ItemDepth, Label: "Color depth", Value: fmt.Sprintf("%d", v.BitDepth)},
		{Item: ItemFullscreen, Label: "Fullscreen", Checkbox: true, Checked: v.Fullscreen},
		{Item: ItemVSync, Label: "Vertical sync", Checkbox: true, Checked: v.VSync},
		{Item: ItemTest, Label: "Test changes"},
		{Item: ItemApply, Label: "Apply changes"},
	}
	if !s.SwapControl {
		rows[ItemVSync].Checkbox = false
		rows[ItemVSync].Checked = false
		rows[ItemVSync].Value = "N/A"
	}
	return rows
}

// Text is a string placed at a baseline position, in pixels.
type Text struct {
	X, Y int
	S    string
}

// Layout places the menu on a canvas of the given width. Labels are right
// aligned against a shared column with values to its right, and the test
// and apply items are set apart from the settings.
type Layout struct {
	Face      font.Face
	Width     int
	Top       int
	Gap       int
	CursorOn  string
	CursorOff string
}

func DefaultLayout(width int) Layout {
	return Layout{
		Face:      basicfont.Face7x13,
		Width:     width,
		Top:       32,
		Gap:       8,
		CursorOn:  ">",
		CursorOff: " ",
	}
}

func (l Layout) measure(s string) int {
	return font.MeasureString(l.Face, s).Ceil()
}

// Place lays out the title, rows and the cursor. The cursor blinks at
// 2 Hz against realtime, in seconds.
func (l Layout) Place(s State, realtime float64) []Text {
	lineHeight := l.Face.Metrics().Height.Ceil()

	rows := s.Rows()
	labelWidth := 0
	for _, r := range rows {
		if w := l.measure(r.Label); w > labelWidth {
			labelWidth = w
		}
	}
	cursorWidth := l.measure(l.CursorOn)
	column := (l.Width - labelWidth) / 2

	y := l.Top
	out := []Text{{X: (l.Width - l.measure(Title)) / 2, Y: y, S: Title}}
	y += 2 * lineHeight

	for _, r := range rows {
		if r.Item == ItemTest {
			y += l.Gap
		}
		out = append(out, Text{X: column + labelWidth - l.measure(r.Label), Y: y, S: r.Label})

		value := r.Value
		if r.Checkbox {
			value = "off"
			if r.Checked {
				value = "on"
			}
		}
		if value != "" {
			out = append(out, Text{X: column + labelWidth + 2*cursorWidth, Y: y, S: value})
		}
		if s.Cursor == r.Item {
			glyph := l.CursorOff
			if int(realtime*4)&1 == 0 {
				glyph = l.CursorOn
			}
			out = append(out, Text{X: column + labelWidth + cursorWidth/2, Y: y, S: glyph})
		}
		y += lineHeight
	}
	return out
}
