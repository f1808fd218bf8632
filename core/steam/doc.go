// Package steam provides an abstraction layer for the external game-library
// data source.
//
// It wraps the Steam Web API (identity resolution, owned-game listing) and
// the Steam storefront (per-title metadata) behind a single Client interface,
// making it easy to mock the external collaborator in unit tests (as seen in
// core/steam/mocks).
//
// # Operations
//
//   - ResolveVanityURL: maps a human-chosen vanity name to a canonical id.
//   - GetOwnedGames: lists the app ids (and names) owned by a user.
//   - GetAppDetails: fetches storefront metadata, including category tags.
//
// # Credentials
//
// The Web API operations require an API key. The client fetches it from the
// secret store on every call, so a missing or unreadable key surfaces as a
// secrets.RetrievalError to the caller rather than failing at startup.
//
// # Failure Semantics
//
// ResolveVanityURL distinguishes "no such account" (ErrVanityNotFound) from
// transport failures. GetAppDetails never fails on unknown or delisted
// titles; it reports AppDetails.Success=false and leaves the policy decision
// to the caller.
package steam
