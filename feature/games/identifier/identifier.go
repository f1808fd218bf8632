package identifier

// Kind distinguishes the two identifier forms a request may carry.
type Kind int

const (
	// Canonical is the stable 17-digit numeric account reference.
	Canonical Kind = iota
	// Vanity is a human-chosen alias that must be resolved before use.
	Vanity
)

const canonicalLength = 17

// Failure describes one invalid identifier.
type Failure struct {
	Identifier string `json:"identifier"`
	Message    string `json:"message"`
}

// Classify decides whether a token is a canonical identifier or a vanity
// name. A token is canonical iff it is exactly 17 digits and starts with 7,
// 8 or 9; the canonical namespace never starts with another digit at this
// length. Everything else is treated as a vanity name.
func Classify(token string) Kind {
	if len(token) != canonicalLength || !allDigits(token) {
		return Vanity
	}
	switch token[0] {
	case '7', '8', '9':
		return Canonical
	default:
		return Vanity
	}
}

// Validate checks the format of each token and returns one Failure per
// invalid token. An empty result means all tokens are valid.
func Validate(tokens []string) []Failure {
	var failures []Failure
	for _, token := range tokens {
		if msg := validateToken(token); msg != "" {
			failures = append(failures, Failure{Identifier: token, Message: msg})
		}
	}
	return failures
}

func validateToken(token string) string {
	switch Classify(token) {
	case Canonical:
		// Re-checked even though classification implies it.
		if len(token) != canonicalLength || !allDigits(token) {
			return "canonical identifiers must be exactly 17 digits"
		}
	case Vanity:
		if len(token) < 3 || len(token) > 32 {
			return "vanity names must be between 3 and 32 characters"
		}
		if !allAlphanumeric(token) {
			return "vanity names may only contain letters and digits"
		}
	}
	return ""
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func allAlphanumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		default:
			return false
		}
	}
	return true
}
