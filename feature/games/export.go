package games

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"common-games/core/storage"
	"common-games/feature/games/models"

	"github.com/minio/minio-go/v7"
)

// ExportCatalog uploads a JSON snapshot of every catalog row to object
// storage and returns the object name. Intended for ops inspection of the
// classification state without database access.
func (s *Service) ExportCatalog(ctx context.Context, client storage.Client, bucket string) (string, error) {
	rows := make([]models.GameRecord, 0)
	if err := s.store.db.WithContext(ctx).Order("app_id").Find(&rows).Error; err != nil {
		return "", fmt.Errorf("failed to read game records: %w", err)
	}

	payload, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal catalog: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return "", fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	object := fmt.Sprintf("catalog/catalog-%s.json", s.store.now().UTC().Format("20060102-150405"))
	_, err = client.PutObject(ctx, bucket, object, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot: %w", err)
	}

	return object, nil
}
