package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreEmpty(t *testing.T) {
	values, err := NewMemoryStore(nil).Load()
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestMemoryStoreWritesYAML(t *testing.T) {
	s := NewMemoryStore(nil)
	require.NoError(t, s.Save(map[string]string{
		"vid_width":  "1024",
		"vid_height": "768",
	}))
	assert.Equal(t, "vid_height: \"768\"\nvid_width: \"1024\"\n", string(s.Raw()))

	values, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "1024", values["vid_width"])
}

func TestDecodeAcceptsHandWrittenFile(t *testing.T) {
	values, err := decode([]byte("vid_fullscreen: 1\ngamma: 1.4\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"vid_fullscreen": "1", "gamma": "1.4"}, values)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := decode([]byte("- just\n- a list\n"))
	assert.Error(t, err)
}
