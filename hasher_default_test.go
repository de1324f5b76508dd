//go:build !intern_embedded

package intern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHasher(t *testing.T) {
	t.Run("WithoutOption", func(t *testing.T) {
		in, err := New[string, uint32](Strings[string]())
		require.NoError(t, err)
		h, err := in.InternOwned("a")
		require.NoError(t, err)
		assert.Equal(t, uint32(0), h)
	})

	t.Run("NilOptionsFallBack", func(t *testing.T) {
		in, err := New[string, uint32](Strings[string](), WithHasher(nil), WithLogger(nil), WithMetricsCollector(nil))
		require.NoError(t, err)
		h, err := in.InternOwned("a")
		require.NoError(t, err)
		assert.Equal(t, uint32(0), h)
	})
}
