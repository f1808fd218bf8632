package secrets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvStore_GetSecret(t *testing.T) {
	store := NewEnvStore()

	t.Run("Present", func(t *testing.T) {
		t.Setenv("STEAM_API_KEY", "abc123")

		val, err := store.GetSecret(context.Background(), "steam_api_key")
		assert.NoError(t, err)
		assert.Equal(t, "abc123", val)
	})

	t.Run("Missing", func(t *testing.T) {
		val, err := store.GetSecret(context.Background(), "definitely_not_set_anywhere")
		assert.Error(t, err)
		assert.Empty(t, val)

		var rerr *RetrievalError
		assert.True(t, errors.As(err, &rerr))
		assert.Equal(t, "definitely_not_set_anywhere", rerr.ID)
	})

	t.Run("Empty Value", func(t *testing.T) {
		t.Setenv("EMPTY_SECRET", "")

		_, err := store.GetSecret(context.Background(), "empty_secret")
		assert.Error(t, err)
	})
}
