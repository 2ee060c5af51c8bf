package passgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharset(t *testing.T) {
	assert.Len(t, Charset, 72)
	for _, class := range []string{Uppercase, Lowercase, Digits, Specials} {
		for _, c := range class {
			assert.True(t, strings.ContainsRune(Charset, c), "charset missing %q", c)
		}
	}
}

func TestGenerate(t *testing.T) {
	t.Run("ClassCoverage", func(t *testing.T) {
		for seed := uint64(1); seed <= 50; seed++ {
			g := New(FixedSeed(seed))
			for length := MinLength; length <= 32; length++ {
				pw, err := g.Generate(length)
				require.NoError(t, err)
				assert.Len(t, pw, length)
				assert.True(t, strings.ContainsAny(pw, Uppercase), "no uppercase in %q", pw)
				assert.True(t, strings.ContainsAny(pw, Lowercase), "no lowercase in %q", pw)
				assert.True(t, strings.ContainsAny(pw, Digits), "no digit in %q", pw)
				assert.True(t, strings.ContainsAny(pw, Specials), "no symbol in %q", pw)
				for _, c := range pw {
					assert.True(t, strings.ContainsRune(Charset, c), "unexpected %q in %q", c, pw)
				}
			}
		}
	})

	t.Run("TooShort", func(t *testing.T) {
		g := New(FixedSeed(1))
		for _, length := range []int{-1, 0, 1, 2, 3} {
			pw, err := g.Generate(length)
			assert.ErrorIs(t, err, ErrLengthTooShort)
			assert.Empty(t, pw)
		}
	})

	t.Run("Reproducible", func(t *testing.T) {
		a, err := New(FixedSeed(99)).Generate(16)
		require.NoError(t, err)
		b, err := New(FixedSeed(99)).Generate(16)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("Shuffled", func(t *testing.T) {
		// Without the shuffle every password would start with an uppercase letter.
		leading := map[bool]int{}
		for seed := uint64(1); seed <= 100; seed++ {
			pw, err := New(FixedSeed(seed)).Generate(12)
			require.NoError(t, err)
			leading[strings.ContainsRune(Uppercase, rune(pw[0]))]++
		}
		assert.NotZero(t, leading[false])
	})

	t.Run("SystemSeeded", func(t *testing.T) {
		pw, err := Generate(DefaultLength)
		require.NoError(t, err)
		assert.Len(t, pw, DefaultLength)
	})
}
