package clipboard

import (
	"errors"
	"testing"

	"github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"
)

func TestSystemCopy(t *testing.T) {
	orig := writeAll
	origUnsupported := clipboard.Unsupported
	t.Cleanup(func() {
		writeAll = orig
		clipboard.Unsupported = origUnsupported
	})

	var copied string
	writeAll = func(text string) error {
		copied = text
		return nil
	}

	t.Run("Copies", func(t *testing.T) {
		clipboard.Unsupported = false
		assert.True(t, System{}.Available())
		assert.NoError(t, System{}.Copy("s3cr3t"))
		assert.Equal(t, "s3cr3t", copied)
	})

	t.Run("ToolFails", func(t *testing.T) {
		clipboard.Unsupported = false
		writeAll = func(string) error { return errors.New("exit status 1") }
		assert.Error(t, System{}.Copy("x"))
	})

	t.Run("Unsupported", func(t *testing.T) {
		clipboard.Unsupported = true
		assert.False(t, System{}.Available())
		assert.ErrorIs(t, System{}.Copy("x"), ErrUnavailable)
	})
}

func TestDisabled(t *testing.T) {
	assert.False(t, Disabled{}.Available())
	assert.ErrorIs(t, Disabled{}.Copy("x"), ErrUnavailable)
}
