package video

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Setting keys as they appear in the persisted config and on the console.
const (
	KeyFullscreen        = "vid_fullscreen"
	KeyWidth             = "vid_width"
	KeyHeight            = "vid_height"
	KeyBitDepth          = "vid_bpp"
	KeyVSync             = "vid_vsync"
	KeyFSAA              = "vid_fsaa"
	KeyDesktopFullscreen = "vid_desktopfullscreen"
	KeyGamma             = "gamma"
)

// ModeKeys are read from the persisted config before the first mode is set.
var ModeKeys = []string{
	KeyFullscreen,
	KeyWidth,
	KeyHeight,
	KeyBitDepth,
	KeyVSync,
	KeyFSAA,
	KeyDesktopFullscreen,
}

// Keys lists every setting owned by the video subsystem.
var Keys = append(append([]string{}, ModeKeys...), KeyGamma)

var ErrUnknownSetting = errors.New("unknown setting")

// ErrBadValue is returned for NaN and infinite setting values.
var ErrBadValue = errors.New("value out of range")

// Config is the requested video configuration.
type Config struct {
	Width             int
	Height            int
	BitDepth          int
	Fullscreen        bool
	DesktopFullscreen bool
	VSync             bool
	FSAA              int
	Gamma             float32
}

func DefaultConfig() Config {
	return Config{
		Width:    800,
		Height:   600,
		BitDepth: 16,
		FSAA:     0,
		Gamma:    1,
	}
}

// Settings holds the requested configuration and the pending-change flag.
// Any change to a field that needs a mode change sets the flag; only a
// resync from the live surface clears it.
type Settings struct {
	cfg         Config
	changed     bool
	initialized bool
	log         Logger
	onGamma     func()
}

func NewSettings(log Logger) *Settings {
	if log == nil {
		log = nopLogger{}
	}
	return &Settings{cfg: DefaultConfig(), log: log}
}

func (s *Settings) Config() Config {
	return s.cfg
}

// Changed reports whether a restart is pending.
func (s *Settings) Changed() bool {
	return s.changed
}

func (s *Settings) markChanged() {
	s.changed = true
}

func (s *Settings) clearChanged() {
	s.changed = false
}

func (s *Settings) SetWidth(v int) {
	if s.cfg.Width != v {
		s.cfg.Width = v
		s.changed = true
	}
}

func (s *Settings) SetHeight(v int) {
	if s.cfg.Height != v {
		s.cfg.Height = v
		s.changed = true
	}
}

func (s *Settings) SetBitDepth(v int) {
	if s.cfg.BitDepth != v {
		s.cfg.BitDepth = v
		s.changed = true
	}
}

func (s *Settings) SetFullscreen(v bool) {
	if s.cfg.Fullscreen != v {
		s.cfg.Fullscreen = v
		s.changed = true
	}
}

func (s *Settings) SetDesktopFullscreen(v bool) {
	if s.cfg.DesktopFullscreen != v {
		s.cfg.DesktopFullscreen = v
		s.changed = true
	}
}

func (s *Settings) SetVSync(v bool) {
	if s.cfg.VSync != v {
		s.cfg.VSync = v
		s.changed = true
	}
}

// SetFSAA only records the value; the sample count is fixed at init.
func (s *Settings) SetFSAA(v int) {
	if s.cfg.FSAA == v {
		return
	}
	s.cfg.FSAA = v
	if s.initialized {
		s.log.Warnf("%s %d requires engine restart to take effect", KeyFSAA, v)
	}
}

func (s *Settings) SetGamma(v float32) {
	if s.cfg.Gamma == v {
		return
	}
	s.cfg.Gamma = v
	if s.onGamma != nil {
		s.onGamma()
	}
}

// SetMode sets the four fields a mode change is made of.
func (s *Settings) SetMode(width, height, bitDepth int, fullscreen bool) {
	s.SetWidth(width)
	s.SetHeight(height)
	s.SetBitDepth(bitDepth)
	s.SetFullscreen(fullscreen)
}

func formatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// Get returns the console/persisted string form of a setting.
func (s *Settings) Get(key string) (string, error) {
	switch key {
	case KeyFullscreen:
		return formatBool(s.cfg.Fullscreen), nil
	case KeyWidth:
		return strconv.Itoa(s.cfg.Width), nil
	case KeyHeight:
		return strconv.Itoa(s.cfg.Height), nil
	case KeyBitDepth:
		return strconv.Itoa(s.cfg.BitDepth), nil
	case KeyVSync:
		return formatBool(s.cfg.VSync), nil
	case KeyFSAA:
		return strconv.Itoa(s.cfg.FSAA), nil
	case KeyDesktopFullscreen:
		return formatBool(s.cfg.DesktopFullscreen), nil
	case KeyGamma:
		return strconv.FormatFloat(float64(s.cfg.Gamma), 'g', -1, 32), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownSetting, key)
}

// Set parses value the way console variables are parsed: as a number,
// truncated for integer settings, non-zero for booleans.
func (s *Settings) Set(key, value string) error {
	if _, err := s.Get(key); err != nil {
		return err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 32)
	if err != nil {
		return fmt.Errorf("%s %q: %w", key, value, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%s %q: %w", key, value, ErrBadValue)
	}
	switch key {
	case KeyFullscreen:
		s.SetFullscreen(f != 0)
	case KeyWidth:
		s.SetWidth(int(f))
	case KeyHeight:
		s.SetHeight(int(f))
	case KeyBitDepth:
		s.SetBitDepth(int(f))
	case KeyVSync:
		s.SetVSync(f != 0)
	case KeyFSAA:
		s.SetFSAA(int(f))
	case KeyDesktopFullscreen:
		s.SetDesktopFullscreen(f != 0)
	case KeyGamma:
		s.SetGamma(float32(f))
	}
	return nil
}

// Toggle flips a boolean setting.
func (s *Settings) Toggle(key string) error {
	v, err := s.Get(key)
	if err != nil {
		return err
	}
	switch key {
	case KeyFullscreen, KeyVSync, KeyDesktopFullscreen:
	default:
		return fmt.Errorf("%s is not a toggle", key)
	}
	if v == "0" {
		return s.Set(key, "1")
	}
	return s.Set(key, "0")
}

// Values returns every setting in string form, for persistence.
func (s *Settings) Values() map[string]string {
	out := make(map[string]string, len(Keys))
	for _, k := range Keys {
		out[k], _ = s.Get(k)
	}
	return out
}

// Load applies persisted values for the given keys. Unknown or malformed
// entries are reported and skipped.
func (s *Settings) Load(values map[string]string, keys []string) {
	for _, k := range keys {
		v, ok := values[k]
		if !ok {
			continue
		}
		if err := s.Set(k, v); err != nil {
			s.log.Warnf("config: %v", err)
		}
	}
}
