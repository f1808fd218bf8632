package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of secrets.Store
type Store struct {
	mock.Mock
}

func (m *Store) GetSecret(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
