package steam

// CategoryMultiplayer is the storefront category id for "Multi-player".
const CategoryMultiplayer = 1

// OwnedGame is one entry of a user's library as reported by GetOwnedGames.
type OwnedGame struct {
	AppID string
	Name  string
}

// Category is one storefront category tag attached to a title.
type Category struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

// AppDetails is the per-title metadata returned by the storefront.
// Success is false when the storefront could not provide data for the title
// (unknown app, delisted, malformed payload).
type AppDetails struct {
	Success    bool
	Name       string
	Categories []Category
}

// HasCategory reports whether the title carries the given category id.
func (d *AppDetails) HasCategory(id int) bool {
	for _, c := range d.Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Wire formats.

type resolveVanityResponse struct {
	Response struct {
		SteamID string `json:"steamid"`
		Success int    `json:"success"`
	} `json:"response"`
}

type ownedGamesResponse struct {
	Response struct {
		GameCount int `json:"game_count"`
		Games     []struct {
			AppID int64  `json:"appid"`
			Name  string `json:"name"`
		} `json:"games"`
	} `json:"response"`
}

type appDetailsEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Name       string     `json:"name"`
		Categories []Category `json:"categories"`
	} `json:"data"`
}
