package secrets

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Store defines the interface for secret retrieval.
type Store interface {
	// GetSecret returns the secret value for the given identifier.
	GetSecret(ctx context.Context, id string) (string, error)
}

// RetrievalError indicates that a secret could not be obtained from the
// backing store. It is an infrastructural failure, distinct from any
// domain-level lookup failure.
type RetrievalError struct {
	// ID is the identifier of the secret that could not be retrieved.
	ID string
	// Err is the underlying cause, if any.
	Err error
}

func (e *RetrievalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to retrieve secret %q: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("failed to retrieve secret %q", e.ID)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// EnvStore reads secrets from environment variables. The secret identifier
// is upper-cased and dashes/dots are replaced with underscores, so the id
// "steam_api_key" resolves to the STEAM_API_KEY variable.
type EnvStore struct{}

// NewEnvStore creates a new environment-backed secret store.
func NewEnvStore() *EnvStore {
	return &EnvStore{}
}

// GetSecret looks up the secret in the environment.
func (s *EnvStore) GetSecret(_ context.Context, id string) (string, error) {
	key := strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(id))
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return "", &RetrievalError{ID: id}
	}
	return val, nil
}
