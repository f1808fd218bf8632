package games

import (
	"context"
	"sort"
	"time"

	"common-games/core/steam"
	"common-games/feature/games/identifier"
	"common-games/feature/games/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service orchestrates the end-to-end common-games operation.
type Service struct {
	store     *Store
	logger    *zap.Logger
	resolver  *Resolver
	ownership *Ownership
	catalog   *Catalog
}

// NewService wires the feature's components together. A nil clock defaults
// to time.Now; tests inject a fixed one to drive cache expiry.
func NewService(db *gorm.DB, client steam.Client, logger *zap.Logger, cfg Config, now func() time.Time) *Service {
	store := NewStore(db, now)
	return &Service{
		store:     store,
		logger:    logger,
		resolver:  NewResolver(client, logger),
		ownership: NewOwnership(store, client, logger, cfg.CacheTTL()),
		catalog:   NewCatalog(store, client, logger),
	}
}

// Migrate creates the feature's tables.
func (s *Service) Migrate() error {
	return s.store.Migrate()
}

// CommonGames returns the titles owned by every requested user, optionally
// restricted to multiplayer-capable ones. The pipeline is validate →
// resolve → fetch per-user ownership → intersect → filter; the first
// terminal error aborts the remaining steps and no partial result is ever
// returned. Only validation collects failures in bulk.
func (s *Service) CommonGames(ctx context.Context, tokens []string, multiplayerOnly bool) ([]models.Game, error) {
	if failures := identifier.Validate(tokens); len(failures) > 0 {
		return nil, &ValidationError{Failures: failures}
	}

	ids, err := s.resolver.Resolve(ctx, tokens)
	if err != nil {
		return nil, err
	}
	if len(ids) < 2 {
		return nil, ErrTooFewIDs
	}

	sets := make([]map[string]struct{}, 0, len(ids))
	for _, id := range ids {
		owned, err := s.ownership.OwnedAppIDs(ctx, id)
		if err != nil {
			return nil, err
		}
		sets = append(sets, owned)
	}

	common := Intersect(sets)

	if multiplayerOnly {
		common, err = s.catalog.FilterMultiplayer(ctx, common)
		if err != nil {
			return nil, err
		}
	}

	games, err := s.withNames(ctx, common)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Common games resolved",
		zap.Int("users", len(ids)),
		zap.Int("games", len(games)),
		zap.Bool("multiplayer_only", multiplayerOnly),
	)
	return games, nil
}

// withNames attaches best-effort display names from the catalog. Titles the
// catalog has never seen keep an empty name; no external calls are made.
func (s *Service) withNames(ctx context.Context, appIDs map[string]struct{}) ([]models.Game, error) {
	ids := make([]string, 0, len(appIDs))
	for id := range appIDs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	records, err := s.store.GameRecords(ctx, ids)
	if err != nil {
		return nil, err
	}

	games := make([]models.Game, 0, len(ids))
	for _, id := range ids {
		games = append(games, models.Game{
			AppID: id,
			Name:  records[id].Name,
		})
	}
	return games, nil
}
