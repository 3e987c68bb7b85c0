package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaults(t *testing.T) {
	s := NewSettings(nil)
	cfg := s.Config()
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, 16, cfg.BitDepth)
	assert.False(t, cfg.Fullscreen)
	assert.Equal(t, float32(1), cfg.Gamma)
	assert.False(t, s.Changed())
}

func TestSettingsOnlyRealChangesArePending(t *testing.T) {
	s := NewSettings(nil)
	s.SetWidth(800)
	s.SetFullscreen(false)
	assert.False(t, s.Changed())

	s.SetWidth(1024)
	assert.True(t, s.Changed())
}

func TestSettingsGammaAndFSAADoNotNeedRestart(t *testing.T) {
	rec := &recorder{}
	s := NewSettings(rec)
	calls := 0
	s.onGamma = func() { calls++ }

	require.NoError(t, s.Set(KeyGamma, "1.5"))
	assert.Equal(t, 1, calls)
	require.NoError(t, s.Set(KeyGamma, "1.5"))
	assert.Equal(t, 1, calls)

	require.NoError(t, s.Set(KeyFSAA, "4"))
	assert.Empty(t, rec.warnings)

	s.initialized = true
	require.NoError(t, s.Set(KeyFSAA, "8"))
	assert.Equal(t, []string{"vid_fsaa 8 requires engine restart to take effect"}, rec.warnings)
	assert.False(t, s.Changed())
}

func TestSettingsSetParsesLikeConsole(t *testing.T) {
	s := NewSettings(nil)
	require.NoError(t, s.Set(KeyWidth, " 1024.9 "))
	require.NoError(t, s.Set(KeyFullscreen, "2"))
	cfg := s.Config()
	assert.Equal(t, 1024, cfg.Width)
	assert.True(t, cfg.Fullscreen)

	v, err := s.Get(KeyFullscreen)
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	assert.Error(t, s.Set(KeyHeight, "tall"))
	assert.ErrorIs(t, s.Set("vid_refreshrate", "60"), ErrUnknownSetting)
	assert.ErrorIs(t, s.Set(KeyWidth, "Inf"), ErrBadValue)
	assert.Equal(t, 1024, s.Config().Width)
}

func TestSettingsToggle(t *testing.T) {
	s := NewSettings(nil)
	require.NoError(t, s.Toggle(KeyVSync))
	assert.True(t, s.Config().VSync)
	require.NoError(t, s.Toggle(KeyVSync))
	assert.False(t, s.Config().VSync)

	assert.Error(t, s.Toggle(KeyWidth))
}

func TestSettingsLoadSkipsBadEntries(t *testing.T) {
	rec := &recorder{}
	s := NewSettings(rec)
	s.Load(map[string]string{
		KeyWidth:  "1280",
		KeyHeight: "abc",
		KeyGamma:  "2",
	}, ModeKeys)

	cfg := s.Config()
	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, float32(1), cfg.Gamma)
	assert.Len(t, rec.warnings, 1)
}

func TestSettingsValuesCoverEveryKey(t *testing.T) {
	s := NewSettings(nil)
	values := s.Values()
	assert.Len(t, values, len(Keys))
	assert.Equal(t, "16", values[KeyBitDepth])
	assert.Equal(t, "1", values[KeyGamma])

	other := NewSettings(nil)
	other.SetWidth(640)
	other.Load(values, Keys)
	assert.Equal(t, s.Config(), other.Config())
}
