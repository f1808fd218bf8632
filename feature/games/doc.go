// Package games implements the ownership resolution and aggregation feature.
//
// Given a set of user identifiers it answers which titles all of those users
// own, optionally restricted to multiplayer-capable ones. It reconciles
// three collaborators:
//  1. The external data source (Steam): vanity resolution, owned-game
//     listing, per-title metadata.
//  2. The persistent store (GORM): cache-aside ownership rows with a 24h
//     TTL and a memoized per-title multiplayer catalog.
//  3. The secret store: the Web API credential, fetched per call.
//
// # Pipeline
//
// Service.CommonGames runs validate → resolve → per-user ownership fetch →
// intersect → optional multiplayer filter. Validation failures are collected
// in bulk; every other error is terminal and aborts the request without
// partial results.
//
// # Components
//
//   - identifier: pure classification and validation of tokens.
//   - Resolver: fail-fast batch vanity resolution with deduplication.
//   - Ownership: cache-aside owned-game sets, singleflight-protected.
//   - Catalog: one-time multiplayer classification with a conservative
//     multiplayer default when metadata is unavailable.
//   - Handler: POST /games/common with the {success, body} envelope.
//
// # HTTP Endpoints
//
//   - POST /games/common : common titles for >=2 users.
package games
