// Package secrets provides the secret retrieval collaborator.
//
// The Store interface abstracts where credentials (such as the Steam Web API
// key) come from, making it easy to mock secret access in unit tests (see
// core/secrets/mocks).
//
// # Error Semantics
//
// Any failure to obtain a secret is reported as a *RetrievalError. Callers
// treat it as infrastructural: it maps to a 500 response at the HTTP boundary
// rather than a domain-level 4xx.
//
// # Implementations
//
//   - EnvStore: reads secrets from environment variables. Identifiers are
//     normalized, so "steam_api_key" resolves to STEAM_API_KEY.
package secrets
