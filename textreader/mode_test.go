package textreader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeText(t *testing.T) {
	for m := LiteralMode; m <= EnclosedMode; m++ {
		text, err := m.MarshalText()
		require.NoError(t, err)

		var back Mode
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, m, back)
	}

	var m Mode
	require.NoError(t, m.UnmarshalText([]byte(" Delimited ")))
	assert.Equal(t, DelimitedMode, m)
	assert.Error(t, m.UnmarshalText([]byte("quoted")))

	assert.Equal(t, "Mode(0)", Mode(0).String())
	_, err := Mode(0).MarshalText()
	assert.Error(t, err)
}

func TestEnclosedBounds(t *testing.T) {
	start, end := Enclosed('"', 0).bounds()
	assert.Equal(t, '"', start)
	assert.Equal(t, '"', end)

	start, end = Enclosed('(', ')').bounds()
	assert.Equal(t, '(', start)
	assert.Equal(t, ')', end)
}
