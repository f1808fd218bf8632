package models

// CommonGamesRequest is the body of POST /games/common.
type CommonGamesRequest struct {
	// SteamIds are the user identifiers, canonical or vanity. At least two
	// distinct users are required.
	SteamIds []string `json:"steamIds"`
	// MultiplayerOnly restricts the result to multiplayer-capable titles.
	MultiplayerOnly bool `json:"multiplayerOnly"`
}

// Game is one entry of the result set. Name is best effort and may be empty
// when the catalog has never seen title metadata.
type Game struct {
	AppID string `json:"appId"`
	Name  string `json:"name,omitempty"`
}

// Envelope is the uniform response wrapper.
type Envelope struct {
	Success bool `json:"success"`
	Body    any  `json:"body"`
}
