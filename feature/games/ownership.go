package games

import (
	"context"
	"time"

	"common-games/core/steam"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Ownership serves per-user owned-game-id sets with cache-aside persistence.
type Ownership struct {
	store  *Store
	steam  steam.Client
	logger *zap.Logger
	ttl    time.Duration
	sf     singleflight.Group
}

// NewOwnership creates an ownership provider with the given cache TTL.
func NewOwnership(store *Store, client steam.Client, logger *zap.Logger, ttl time.Duration) *Ownership {
	return &Ownership{
		store:  store,
		steam:  client,
		logger: logger,
		ttl:    ttl,
	}
}

// OwnedAppIDs returns the set of app ids the user owns. A fresh cached row
// is served without an external call; otherwise the library is fetched,
// written back with a new expiry and returned. A user with zero titles
// fails with NoGamesError and is deliberately not cached: a zero-game
// result is often transient (a private profile later made public).
//
// Concurrent misses for the same user within this process are collapsed via
// singleflight; across processes the last writer wins, which is fine since
// both writes carry the same externally sourced truth.
func (o *Ownership) OwnedAppIDs(ctx context.Context, userID string) (map[string]struct{}, error) {
	v, err, _ := o.sf.Do(userID, func() (any, error) {
		return o.lookup(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]struct{}), nil
}

func (o *Ownership) lookup(ctx context.Context, userID string) (map[string]struct{}, error) {
	cached, ok, err := o.store.FreshOwnership(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ok {
		o.logger.Debug("Ownership cache hit", zap.String("user_id", userID))
		return cached, nil
	}

	games, err := o.steam.GetOwnedGames(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, &NoGamesError{UserID: userID}
	}

	ids := make(map[string]struct{}, len(games))
	for _, g := range games {
		ids[g.AppID] = struct{}{}
	}

	// Seed unclassified catalog rows so titles carry their names from the
	// first sighting on.
	if err := o.store.EnsureGameRecords(ctx, games); err != nil {
		return nil, err
	}
	if err := o.store.PutOwnership(ctx, userID, ids, o.ttl); err != nil {
		return nil, err
	}

	o.logger.Debug("Ownership fetched and cached",
		zap.String("user_id", userID),
		zap.Int("games", len(ids)),
	)
	return ids, nil
}
