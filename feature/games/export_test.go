package games_test

import (
	"context"
	"io"
	"testing"
	"time"

	"common-games/core/database"
	steammocks "common-games/core/steam/mocks"
	storagemocks "common-games/core/storage/mocks"
	"common-games/feature/games"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExportCatalog(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := games.NewService(db, new(steammocks.Client), zap.NewNop(), games.Config{}, func() time.Time { return fixed })
	require.NoError(t, svc.Migrate())

	store := new(storagemocks.Client)
	store.On("BucketExists", mock.Anything, "catalog-exports").Return(true, nil)

	var uploaded []byte
	store.On("PutObject", mock.Anything, "catalog-exports", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			reader := args.Get(3).(io.Reader)
			uploaded, _ = io.ReadAll(reader)
		}).
		Return(minio.UploadInfo{}, nil)

	object, err := svc.ExportCatalog(context.Background(), store, "catalog-exports")
	require.NoError(t, err)

	assert.Equal(t, "catalog/catalog-20250601-120000.json", object)
	assert.JSONEq(t, "[]", string(uploaded))
	store.AssertExpectations(t)
}

func TestExportCatalogCreatesBucket(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	svc := games.NewService(db, new(steammocks.Client), zap.NewNop(), games.Config{}, time.Now)
	require.NoError(t, svc.Migrate())

	store := new(storagemocks.Client)
	store.On("BucketExists", mock.Anything, "catalog-exports").Return(false, nil)
	store.On("MakeBucket", mock.Anything, "catalog-exports", mock.Anything).Return(nil)
	store.On("PutObject", mock.Anything, "catalog-exports", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	_, err = svc.ExportCatalog(context.Background(), store, "catalog-exports")
	require.NoError(t, err)
	store.AssertExpectations(t)
}
