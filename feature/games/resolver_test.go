package games_test

import (
	"context"
	"testing"

	"common-games/core/steam"
	"common-games/core/steam/mocks"
	"common-games/feature/games"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestResolve(t *testing.T) {
	t.Run("Canonical Passthrough", func(t *testing.T) {
		client := new(mocks.Client)
		resolver := games.NewResolver(client, zap.NewNop())

		ids, err := resolver.Resolve(context.Background(), []string{"76561198000000001"})
		require.NoError(t, err)
		assert.Equal(t, []string{"76561198000000001"}, ids)
		client.AssertNotCalled(t, "ResolveVanityURL")
	})

	t.Run("Vanity Resolved", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ResolveVanityURL", mock.Anything, "gamertag").Return("76561198000000002", nil)
		resolver := games.NewResolver(client, zap.NewNop())

		ids, err := resolver.Resolve(context.Background(), []string{"76561198000000001", "gamertag"})
		require.NoError(t, err)
		assert.Equal(t, []string{"76561198000000001", "76561198000000002"}, ids)
	})

	t.Run("Duplicates Collapse", func(t *testing.T) {
		client := new(mocks.Client)
		// The vanity name resolves to the canonical id also supplied.
		client.On("ResolveVanityURL", mock.Anything, "gamertag").Return("76561198000000001", nil)
		resolver := games.NewResolver(client, zap.NewNop())

		ids, err := resolver.Resolve(context.Background(), []string{"76561198000000001", "gamertag"})
		require.NoError(t, err)
		assert.Equal(t, []string{"76561198000000001"}, ids)
	})

	t.Run("Unresolvable Name Fails The Batch", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ResolveVanityURL", mock.Anything, "nobody").Return("", steam.ErrVanityNotFound)
		resolver := games.NewResolver(client, zap.NewNop())

		_, err := resolver.Resolve(context.Background(), []string{"nobody", "gamertag"})

		var vanityErr *games.VanityResolutionError
		require.ErrorAs(t, err, &vanityErr)
		assert.Equal(t, "nobody", vanityErr.Name)
		// Fail-fast: the second name is never attempted.
		client.AssertNumberOfCalls(t, "ResolveVanityURL", 1)
	})
}
