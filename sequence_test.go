package hjkl_test

import (
	"testing"

	"github.com/fwojciec/hjkl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSequence(t *testing.T) {
	t.Parallel()

	t.Run("accepts one key", func(t *testing.T) {
		t.Parallel()

		seq, err := hjkl.NewSequence("j")

		require.NoError(t, err)
		assert.Equal(t, 1, seq.Len())
		assert.Equal(t, "j", seq.String())
	})

	t.Run("accepts two keys", func(t *testing.T) {
		t.Parallel()

		seq, err := hjkl.NewSequence("g", "g")

		require.NoError(t, err)
		assert.Equal(t, 2, seq.Len())
		assert.Equal(t, "g g", seq.String())
	})

	t.Run("rejects no keys", func(t *testing.T) {
		t.Parallel()

		_, err := hjkl.NewSequence()

		require.ErrorIs(t, err, hjkl.ErrInvalidSequence)
	})

	t.Run("rejects three keys", func(t *testing.T) {
		t.Parallel()

		_, err := hjkl.NewSequence("d", "i", "w")

		require.ErrorIs(t, err, hjkl.ErrInvalidSequence)
	})

	t.Run("rejects an empty key", func(t *testing.T) {
		t.Parallel()

		_, err := hjkl.NewSequence(hjkl.NoSymbol, "g")

		require.ErrorIs(t, err, hjkl.ErrInvalidSequence)
	})
}

func TestParseSequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
		len   int
	}{
		{name: "single rune", input: "h", want: "h", len: 1},
		{name: "shifted rune", input: "G", want: "G", len: 1},
		{name: "two runes", input: "gg", want: "g g", len: 2},
		{name: "named key", input: "ctrl+d", want: "ctrl+d", len: 1},
		{name: "named keys separated by space", input: "ctrl+w j", want: "ctrl+w j", len: 2},
		{name: "extra whitespace", input: "  y   y ", want: "y y", len: 2},
		{name: "non-ascii runes", input: "éé", want: "é é", len: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			seq, err := hjkl.ParseSequence(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.want, seq.String())
			assert.Equal(t, tt.len, seq.Len())
		})
	}

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := hjkl.ParseSequence("")

		require.ErrorIs(t, err, hjkl.ErrInvalidSequence)
	})

	t.Run("rejects three space separated keys", func(t *testing.T) {
		t.Parallel()

		_, err := hjkl.ParseSequence("d i w")

		require.ErrorIs(t, err, hjkl.ErrInvalidSequence)
	})
}

func TestMustParseSequence_PanicsOnInvalidInput(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { hjkl.MustParseSequence("") })
	assert.NotPanics(t, func() { hjkl.MustParseSequence("gg") })
}

func TestSequence_Matches(t *testing.T) {
	t.Parallel()

	t.Run("single key matches regardless of previous", func(t *testing.T) {
		t.Parallel()

		seq := hjkl.MustParseSequence("j")

		assert.True(t, seq.Matches(hjkl.NoSymbol, "j"))
		assert.True(t, seq.Matches("j", "j"))
		assert.True(t, seq.Matches("x", "j"))
		assert.False(t, seq.Matches("j", "k"))
	})

	t.Run("two keys require previous and current in order", func(t *testing.T) {
		t.Parallel()

		seq := hjkl.MustParseSequence("gg")

		assert.True(t, seq.Matches("g", "g"))
		assert.False(t, seq.Matches("x", "g"))
		assert.False(t, seq.Matches("g", "x"))
	})

	t.Run("two keys never match without a previous key", func(t *testing.T) {
		t.Parallel()

		seq := hjkl.MustParseSequence("gg")

		assert.False(t, seq.Matches(hjkl.NoSymbol, "g"))
	})

	t.Run("keys are case sensitive", func(t *testing.T) {
		t.Parallel()

		seq := hjkl.MustParseSequence("G")

		assert.True(t, seq.Matches(hjkl.NoSymbol, "G"))
		assert.False(t, seq.Matches(hjkl.NoSymbol, "g"))
	})
}
