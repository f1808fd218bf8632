package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// UserOwnership is the cached knowledge of one user's library. Rows are
// written whole on fetch and never mutated afterwards; a stale row is
// replaced, not updated. Expiry is enforced at read time.
type UserOwnership struct {
	UserID      string    `gorm:"column:user_id;primaryKey;size:32"`
	OwnedAppIDs string    `gorm:"column:owned_app_ids;type:text"`
	ExpiresAt   time.Time `gorm:"column:expires_at;index"`
}

// TableName overrides the table name.
func (UserOwnership) TableName() string {
	return "user_ownership"
}

// NewUserOwnership builds a row from an app-id set. The set is serialized as
// a sorted JSON array so rows are deterministic.
func NewUserOwnership(userID string, appIDs map[string]struct{}, expiresAt time.Time) (UserOwnership, error) {
	ids := make([]string, 0, len(appIDs))
	for id := range appIDs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	raw, err := json.Marshal(ids)
	if err != nil {
		return UserOwnership{}, fmt.Errorf("failed to serialize owned app ids: %w", err)
	}

	return UserOwnership{
		UserID:      userID,
		OwnedAppIDs: string(raw),
		ExpiresAt:   expiresAt,
	}, nil
}

// AppIDSet deserializes the owned-app-id set.
func (u UserOwnership) AppIDSet() (map[string]struct{}, error) {
	var ids []string
	if err := json.Unmarshal([]byte(u.OwnedAppIDs), &ids); err != nil {
		return nil, fmt.Errorf("failed to deserialize owned app ids for %s: %w", u.UserID, err)
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// IsExpired reports whether the row is stale at the given instant.
func (u UserOwnership) IsExpired(now time.Time) bool {
	return !now.Before(u.ExpiresAt)
}

// GameRecord is the cached knowledge of one title. Multiplayer is tri-state:
// nil means the title was never classified; once set it is never changed.
type GameRecord struct {
	AppID       string `gorm:"column:app_id;primaryKey;size:32" json:"appId"`
	Name        string `gorm:"column:name" json:"name,omitempty"`
	Multiplayer *bool  `gorm:"column:multiplayer" json:"multiplayer"`
}

// TableName overrides the table name.
func (GameRecord) TableName() string {
	return "game_records"
}

// IsClassified reports whether the multiplayer flag has been set.
func (g GameRecord) IsClassified() bool {
	return g.Multiplayer != nil
}
