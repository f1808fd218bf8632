package games

import (
	"context"
	"errors"
	"sort"

	"common-games/core/steam"
	"common-games/feature/games/identifier"

	"go.uber.org/zap"
)

// Resolver replaces vanity names with canonical identifiers.
type Resolver struct {
	steam  steam.Client
	logger *zap.Logger
}

// NewResolver creates a resolver.
func NewResolver(client steam.Client, logger *zap.Logger) *Resolver {
	return &Resolver{steam: client, logger: logger}
}

// Resolve maps every token to a canonical identifier. Canonical tokens pass
// through unchanged; vanity names are resolved via the data source. The
// first unresolvable name aborts the batch with a VanityResolutionError.
// The result is deduplicated and sorted, so a vanity name and a canonical
// token referring to the same account collapse into one entry.
func (r *Resolver) Resolve(ctx context.Context, tokens []string) ([]string, error) {
	seen := make(map[string]struct{}, len(tokens))
	ids := make([]string, 0, len(tokens))

	for _, token := range tokens {
		id := token
		if identifier.Classify(token) == identifier.Vanity {
			resolved, err := r.steam.ResolveVanityURL(ctx, token)
			if errors.Is(err, steam.ErrVanityNotFound) {
				return nil, &VanityResolutionError{Name: token}
			}
			if err != nil {
				return nil, err
			}
			r.logger.Debug("Resolved vanity name",
				zap.String("name", token),
				zap.String("steam_id", resolved),
			)
			id = resolved
		}

		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	sort.Strings(ids)
	return ids, nil
}
