//go:build intern_embedded

package intern

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedHasher(t *testing.T) {
	t.Run("NoDefault", func(t *testing.T) {
		in, err := New[string, uint32](Strings[string]())
		assert.Nil(t, in)
		assert.True(t, errors.Is(err, ErrNoHasher))
	})

	t.Run("NilHasher", func(t *testing.T) {
		_, err := New[string, uint32](Strings[string](), WithHasher(nil))
		assert.ErrorIs(t, err, ErrNoHasher)
	})

	t.Run("ExplicitHasher", func(t *testing.T) {
		in, err := New[string, uint32](Strings[string](), WithHasher(XXHasher()))
		require.NoError(t, err)

		h1, err := in.InternOwned("a")
		require.NoError(t, err)
		h2, err := InternRef(in, []byte("a"), StringFromBytes[string, []byte]())
		require.NoError(t, err)
		assert.Equal(t, h1, h2)
	})
}
