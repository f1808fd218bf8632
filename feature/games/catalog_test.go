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

func multiplayerDetails(name string) *steam.AppDetails {
	return &steam.AppDetails{
		Success: true,
		Name:    name,
		Categories: []steam.Category{
			{ID: steam.CategoryMultiplayer, Description: "Multi-player"},
		},
	}
}

func singleplayerDetails(name string) *steam.AppDetails {
	return &steam.AppDetails{
		Success: true,
		Name:    name,
		Categories: []steam.Category{
			{ID: 2, Description: "Single-player"},
		},
	}
}

func TestDescribe(t *testing.T) {
	t.Run("Classification Is Memoized", func(t *testing.T) {
		store, _ := setupStore(t, nil)
		client := new(mocks.Client)
		client.On("GetAppDetails", mock.Anything, "570").Return(multiplayerDetails("Dota 2"), nil)

		catalog := games.NewCatalog(store, client, zap.NewNop())

		first, err := catalog.Describe(context.Background(), "570")
		require.NoError(t, err)
		second, err := catalog.Describe(context.Background(), "570")
		require.NoError(t, err)

		assert.True(t, *first.Multiplayer)
		assert.Equal(t, first, second)
		assert.Equal(t, "Dota 2", first.Name)
		// At most one external metadata call per title.
		client.AssertNumberOfCalls(t, "GetAppDetails", 1)
	})

	t.Run("Single Player Classified False", func(t *testing.T) {
		store, _ := setupStore(t, nil)
		client := new(mocks.Client)
		client.On("GetAppDetails", mock.Anything, "400").Return(singleplayerDetails("Portal"), nil)

		catalog := games.NewCatalog(store, client, zap.NewNop())

		record, err := catalog.Describe(context.Background(), "400")
		require.NoError(t, err)
		assert.False(t, *record.Multiplayer)
	})

	t.Run("Lookup Failure Defaults To Multiplayer", func(t *testing.T) {
		store, _ := setupStore(t, nil)
		client := new(mocks.Client)
		client.On("GetAppDetails", mock.Anything, "99999").Return(&steam.AppDetails{Success: false}, nil)

		catalog := games.NewCatalog(store, client, zap.NewNop())

		record, err := catalog.Describe(context.Background(), "99999")
		require.NoError(t, err)
		assert.True(t, *record.Multiplayer)

		// The conservative default persists; no second lookup.
		record, err = catalog.Describe(context.Background(), "99999")
		require.NoError(t, err)
		assert.True(t, *record.Multiplayer)
		client.AssertNumberOfCalls(t, "GetAppDetails", 1)
	})

	t.Run("Transport Error Defaults To Multiplayer", func(t *testing.T) {
		store, _ := setupStore(t, nil)
		client := new(mocks.Client)
		client.On("GetAppDetails", mock.Anything, "570").Return(nil, assert.AnError)

		catalog := games.NewCatalog(store, client, zap.NewNop())

		record, err := catalog.Describe(context.Background(), "570")
		require.NoError(t, err)
		assert.True(t, *record.Multiplayer)
	})

	t.Run("No Categories Defaults To Multiplayer", func(t *testing.T) {
		store, _ := setupStore(t, nil)
		client := new(mocks.Client)
		client.On("GetAppDetails", mock.Anything, "650").
			Return(&steam.AppDetails{Success: true, Name: "Categoryless"}, nil)

		catalog := games.NewCatalog(store, client, zap.NewNop())

		record, err := catalog.Describe(context.Background(), "650")
		require.NoError(t, err)
		assert.True(t, *record.Multiplayer)
	})
}

func TestFilterMultiplayer(t *testing.T) {
	store, _ := setupStore(t, nil)
	client := new(mocks.Client)
	client.On("GetAppDetails", mock.Anything, "570").Return(multiplayerDetails("Dota 2"), nil)
	client.On("GetAppDetails", mock.Anything, "400").Return(singleplayerDetails("Portal"), nil)

	catalog := games.NewCatalog(store, client, zap.NewNop())

	filtered, err := catalog.FilterMultiplayer(context.Background(), map[string]struct{}{
		"570": {},
		"400": {},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"570": {}}, filtered)
}
