package modes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleModes() []DisplayMode {
	return []DisplayMode{
		{1920, 1080, 32},
		{1920, 1080, 24},
		{1920, 1080, 32},
		{1280, 720, 32},
		{800, 600, 16},
		{1280, 720, 16},
	}
}

func TestCatalog_PreservesOrderAndDuplicates(t *testing.T) {
	c := NewCatalog(sampleModes())

	require.Equal(t, 6, c.Len())
	assert.Equal(t, sampleModes(), c.Modes())

	first, ok := c.First()
	require.True(t, ok)
	assert.Equal(t, DisplayMode{1920, 1080, 32}, first)
}

func TestCatalog_CapsAtMaxModes(t *testing.T) {
	raw := make([]DisplayMode, MaxModes+25)
	for i := range raw {
		raw[i] = DisplayMode{Width: 320 + i, Height: 200, BitDepth: 32}
	}
	c := NewCatalog(raw)

	assert.Equal(t, MaxModes, c.Len())
	assert.Equal(t, raw[MaxModes-1], c.Modes()[MaxModes-1])
}

func TestCatalog_ModesIsACopy(t *testing.T) {
	c := NewCatalog(sampleModes())
	m := c.Modes()
	m[0].Width = 1

	assert.Equal(t, 1920, c.Modes()[0].Width)
}

func TestCatalog_Lookup(t *testing.T) {
	c := NewCatalog(sampleModes())

	_, ok := c.Lookup(800, 600, 16)
	assert.True(t, ok)
	_, ok = c.Lookup(800, 600, 32)
	assert.False(t, ok)
}

func TestCatalog_ResolutionsDeduplicated(t *testing.T) {
	c := NewCatalog(sampleModes())

	assert.Equal(t, []Resolution{{1920, 1080}, {1280, 720}, {800, 600}}, c.Resolutions())
}

func TestCatalog_DepthsFilteredAndCapped(t *testing.T) {
	c := NewCatalog(sampleModes())

	assert.Equal(t, []int{32, 24}, c.Depths(1920, 1080))
	assert.Equal(t, []int{32, 16}, c.Depths(1280, 720))
	assert.Empty(t, c.Depths(640, 480))

	var many []DisplayMode
	for d := 1; d <= MaxDepths+3; d++ {
		many = append(many, DisplayMode{640, 480, d})
	}
	assert.Len(t, NewCatalog(many).Depths(640, 480), MaxDepths)
}

func TestCatalog_Describe(t *testing.T) {
	c := NewCatalog([]DisplayMode{{800, 600, 16}, {800, 600, 16}, {1024, 768, 32}})

	assert.Equal(t, []string{
		"    800 x  600 x 16",
		"   1024 x  768 x 32",
	}, c.Describe())
}

func TestCatalog_NilIsEmpty(t *testing.T) {
	var c *Catalog

	assert.Zero(t, c.Len())
	assert.Nil(t, c.Resolutions())
	_, ok := c.First()
	assert.False(t, ok)
}
