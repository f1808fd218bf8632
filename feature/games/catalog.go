package games

import (
	"context"

	"common-games/core/steam"
	"common-games/feature/games/models"

	"go.uber.org/zap"
)

// Catalog classifies titles as multiplayer or not, memoizing the result in
// the persistent store so the external metadata lookup happens at most once
// per title.
type Catalog struct {
	store  *Store
	steam  steam.Client
	logger *zap.Logger
}

// NewCatalog creates a catalog.
func NewCatalog(store *Store, client steam.Client, logger *zap.Logger) *Catalog {
	return &Catalog{store: store, steam: client, logger: logger}
}

// Describe returns the catalog record for a title, classifying it first if
// its multiplayer state is still unknown. A failed metadata lookup
// classifies the title as multiplayer: excluding a possibly-multiplayer
// title is worse than including a possibly-single-player one.
func (c *Catalog) Describe(ctx context.Context, appID string) (models.GameRecord, error) {
	existing, err := c.store.GameRecord(ctx, appID)
	if err != nil {
		return models.GameRecord{}, err
	}
	if existing != nil && existing.IsClassified() {
		return *existing, nil
	}

	multiplayer, name := c.classify(ctx, appID)

	saved, err := c.store.SaveClassification(ctx, appID, name, multiplayer)
	if err != nil {
		return models.GameRecord{}, err
	}
	return *saved, nil
}

func (c *Catalog) classify(ctx context.Context, appID string) (multiplayer bool, name string) {
	details, err := c.steam.GetAppDetails(ctx, appID)
	if err != nil || !details.Success || len(details.Categories) == 0 {
		c.logger.Warn("Title metadata unavailable, assuming multiplayer",
			zap.String("app_id", appID),
			zap.Error(err),
		)
		return true, ""
	}
	return details.HasCategory(steam.CategoryMultiplayer), details.Name
}

// FilterMultiplayer retains only the multiplayer-capable titles of the set.
func (c *Catalog) FilterMultiplayer(ctx context.Context, appIDs map[string]struct{}) (map[string]struct{}, error) {
	filtered := make(map[string]struct{}, len(appIDs))
	for id := range appIDs {
		record, err := c.Describe(ctx, id)
		if err != nil {
			return nil, err
		}
		if record.Multiplayer != nil && *record.Multiplayer {
			filtered[id] = struct{}{}
		}
	}
	return filtered, nil
}
