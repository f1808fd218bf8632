package mocks

import (
	"context"

	"common-games/core/steam"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of steam.Client
type Client struct {
	mock.Mock
}

func (m *Client) ResolveVanityURL(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *Client) GetOwnedGames(ctx context.Context, steamID string) ([]steam.OwnedGame, error) {
	args := m.Called(ctx, steamID)
	if games, ok := args.Get(0).([]steam.OwnedGame); ok {
		return games, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) GetAppDetails(ctx context.Context, appID string) (*steam.AppDetails, error) {
	args := m.Called(ctx, appID)
	if details, ok := args.Get(0).(*steam.AppDetails); ok {
		return details, args.Error(1)
	}
	return nil, args.Error(1)
}
