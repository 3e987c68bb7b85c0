package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterArgsKeepsOnlyVideoFlags(t *testing.T) {
	in := []string{"-game", "hipnotic", "-width", "1024", "-nosound", "-f", "-bpp=32", "map.bsp"}
	assert.Equal(t, []string{"-width", "1024", "-f", "-bpp=32"}, filterArgs(in))
}

func TestParseArgs(t *testing.T) {
	a, err := ParseArgs([]string{"-basedir", "/opt/game", "-width", "1280", "-height", "720", "-window", "-fsaa", "4"})
	require.NoError(t, err)
	assert.Equal(t, Args{Width: 1280, Height: 720, Windowed: true, FSAA: 4, FSAASet: true}, a)
}

func TestParseArgsAliases(t *testing.T) {
	a, err := ParseArgs([]string{"-w"})
	require.NoError(t, err)
	assert.True(t, a.Windowed)

	a, err = ParseArgs([]string{"--fullscreen", "-current"})
	require.NoError(t, err)
	assert.True(t, a.Fullscreen)
	assert.True(t, a.Current)
}

func TestParseArgsFSAAZeroIsSet(t *testing.T) {
	a, err := ParseArgs([]string{"-fsaa", "0"})
	require.NoError(t, err)
	assert.True(t, a.FSAASet)
	assert.Zero(t, a.FSAA)

	a, err = ParseArgs(nil)
	require.NoError(t, err)
	assert.False(t, a.FSAASet)
}

func TestParseArgsRejectsBadNumbers(t *testing.T) {
	_, err := ParseArgs([]string{"-width", "wide"})
	assert.Error(t, err)
}

func TestParseArgsOverrides(t *testing.T) {
	a, err := ParseArgs([]string{"+vid_width", "1024", "-width", "640", "+gamma", "+map", "e1m1", "+"})
	require.NoError(t, err)
	assert.Equal(t, 640, a.Width)
	assert.Equal(t, []Override{
		{Name: "vid_width", Value: "1024"},
		{Name: "gamma"},
		{Name: "map", Value: "e1m1"},
	}, a.Overrides)
}
