package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyle(t *testing.T) {
	t.Parallel()

	t.Run("known", func(t *testing.T) {
		t.Parallel()

		s, err := Style("monokai")
		require.NoError(t, err)
		assert.Equal(t, "monokai", s.Name)
	})

	t.Run("plain", func(t *testing.T) {
		t.Parallel()

		s, err := Style("plain")
		require.NoError(t, err)
		assert.Same(t, PlainStyle, s)
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()

		_, err := Style("not-a-style")
		require.Error(t, err)

		var unknownErr *UnknownStyleError
		require.ErrorAs(t, err, &unknownErr)
		assert.Equal(t, "not-a-style", unknownErr.Name)
		assert.Contains(t, err.Error(), `"not-a-style"`)
	})
}

func TestStyleNames(t *testing.T) {
	t.Parallel()

	names := StyleNames()
	assert.NotEmpty(t, names)
	assert.Contains(t, names, "monokai")
	assert.Contains(t, names, "plain")
}
