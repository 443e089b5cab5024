package compression

import (
	"bytes"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"lz4", "none"}, Available())
	assert.True(t, IsAvailable("lz4"))
	assert.False(t, IsAvailable("zstd"))

	_, err := Get("zstd")
	require.Error(t, err)

	c, err := Get("lz4")
	require.NoError(t, err)
	assert.Equal(t, "lz4", c.Name())
}

func TestRoundTrip(t *testing.T) {
	faker := gofakeit.New(7)

	inputs := map[string][]byte{
		"empty":        {},
		"tiny":         []byte("a"),
		"repetitive":   bytes.Repeat([]byte("meme"), 512),
		"random":       []byte(faker.LetterN(300)),
		"binary zeros": make([]byte, 4096),
	}

	for _, name := range Available() {
		c, err := Get(name)
		require.NoError(t, err)

		for label, in := range inputs {
			t.Run(name+"/"+label, func(t *testing.T) {
				packed, err := c.Compress(in)
				require.NoError(t, err)

				out, err := c.Decompress(packed)
				require.NoError(t, err)
				assert.True(t, bytes.Equal(in, out))
			})
		}
	}
}

func TestLZ4Shrinks(t *testing.T) {
	in := bytes.Repeat([]byte("DOGE"), 1024)
	packed, err := (&LZ4Compressor{}).Compress(in)
	require.NoError(t, err)
	assert.Less(t, len(packed), len(in)/4)
}

func TestLZ4RejectsCorruptInput(t *testing.T) {
	c := &LZ4Compressor{}

	_, err := c.Decompress(nil)
	require.ErrorIs(t, err, ErrCorrupt)

	_, err = c.Decompress([]byte{9, 1, 0})
	require.ErrorIs(t, err, ErrCorrupt)

	_, err = c.Decompress([]byte{lz4ModeRaw, 5, 'a'})
	require.ErrorIs(t, err, ErrCorrupt)
}
