package games

import (
	"errors"
	"fmt"

	"common-games/feature/games/identifier"
)

// ErrTooFewIDs indicates that fewer than two distinct users remained after
// validation, resolution and deduplication.
var ErrTooFewIDs = errors.New("at least two distinct steam ids are required")

// ValidationError carries the full list of per-identifier failures. It is
// the one error collected in bulk rather than fail-fast, so a client can fix
// every malformed identifier in one round trip.
type ValidationError struct {
	Failures []identifier.Failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%d invalid identifier(s)", len(e.Failures))
}

// VanityResolutionError indicates that a vanity name could not be resolved
// to a canonical identifier. It aborts the whole request.
type VanityResolutionError struct {
	Name string
}

func (e *VanityResolutionError) Error() string {
	return fmt.Sprintf("could not resolve vanity name %q", e.Name)
}

// NoGamesError indicates that a user owns no titles. Zero-game users are
// never cached, so a later request re-checks them.
type NoGamesError struct {
	UserID string
}

func (e *NoGamesError) Error() string {
	return fmt.Sprintf("user %s owns no games", e.UserID)
}
