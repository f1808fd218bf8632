package games

import (
	"context"
	"errors"
	"fmt"
	"time"

	"common-games/core/steam"
	"common-games/feature/games/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the persistent-store collaborator for the games feature. The
// clock is injectable so expiry behavior is testable without wall-clock
// waits.
type Store struct {
	db  *gorm.DB
	now func() time.Time
}

// NewStore creates a store. A nil clock defaults to time.Now.
func NewStore(db *gorm.DB, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{db: db, now: now}
}

// Migrate creates the feature's tables.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&models.UserOwnership{}, &models.GameRecord{})
}

// FreshOwnership reads the cached owned-app-id set for a user. The second
// return value is false on a cache miss: no row, or a row whose expiry has
// passed. Expired rows are left in place; the next write replaces them.
func (s *Store) FreshOwnership(ctx context.Context, userID string) (map[string]struct{}, bool, error) {
	var row models.UserOwnership
	err := s.db.WithContext(ctx).First(&row, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read ownership for %s: %w", userID, err)
	}

	if row.IsExpired(s.now()) {
		return nil, false, nil
	}

	set, err := row.AppIDSet()
	if err != nil {
		return nil, false, err
	}
	return set, true, nil
}

// PutOwnership writes a fresh ownership row, replacing any existing one.
// Concurrent writers race benignly: both encode the same externally sourced
// truth and the last writer wins.
func (s *Store) PutOwnership(ctx context.Context, userID string, appIDs map[string]struct{}, ttl time.Duration) error {
	row, err := models.NewUserOwnership(userID, appIDs, s.now().Add(ttl))
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"owned_app_ids", "expires_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to write ownership for %s: %w", userID, err)
	}
	return nil
}

// EnsureGameRecords creates unclassified catalog rows for titles seen for
// the first time. Existing rows are left untouched, so a name or a
// classification is never overwritten by a later sighting.
func (s *Store) EnsureGameRecords(ctx context.Context, games []steam.OwnedGame) error {
	if len(games) == 0 {
		return nil
	}

	rows := make([]models.GameRecord, 0, len(games))
	for _, g := range games {
		rows = append(rows, models.GameRecord{AppID: g.AppID, Name: g.Name})
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "app_id"}},
		DoNothing: true,
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to ensure game records: %w", err)
	}
	return nil
}

// GameRecord reads a catalog row. Returns (nil, nil) when the title has
// never been seen.
func (s *Store) GameRecord(ctx context.Context, appID string) (*models.GameRecord, error) {
	var row models.GameRecord
	err := s.db.WithContext(ctx).First(&row, "app_id = ?", appID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read game record %s: %w", appID, err)
	}
	return &row, nil
}

// GameRecords bulk-reads catalog rows for the given app ids, keyed by app id.
// Absent titles are simply missing from the map.
func (s *Store) GameRecords(ctx context.Context, appIDs []string) (map[string]models.GameRecord, error) {
	if len(appIDs) == 0 {
		return map[string]models.GameRecord{}, nil
	}

	var rows []models.GameRecord
	err := s.db.WithContext(ctx).Where("app_id IN ?", appIDs).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read game records: %w", err)
	}

	byID := make(map[string]models.GameRecord, len(rows))
	for _, r := range rows {
		byID[r.AppID] = r
	}
	return byID, nil
}

// SaveClassification records the one-time multiplayer classification of a
// title. The write boundary enforces the monotonic transition: a row whose
// flag is already set is returned unchanged, no matter what the caller
// passes.
func (s *Store) SaveClassification(ctx context.Context, appID, name string, multiplayer bool) (*models.GameRecord, error) {
	existing, err := s.GameRecord(ctx, appID)
	if err != nil {
		return nil, err
	}

	if existing != nil && existing.IsClassified() {
		return existing, nil
	}

	row := models.GameRecord{AppID: appID, Name: name, Multiplayer: &multiplayer}
	if existing != nil && name == "" {
		row.Name = existing.Name
	}

	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "app_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "multiplayer"}),
	}).Create(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to save classification for %s: %w", appID, err)
	}
	return &row, nil
}
