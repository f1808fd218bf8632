package steam

// Config holds configuration for the Steam data source client.
type Config struct {
	// ApiBaseUrl is the base URL of the Steam Web API.
	ApiBaseUrl string `mapstructure:"api_base_url" default:"https://api.steampowered.com"`
	// StoreBaseUrl is the base URL of the Steam storefront API.
	StoreBaseUrl string `mapstructure:"store_base_url" default:"https://store.steampowered.com"`
	// ApiKeySecret is the secret store identifier of the Web API key.
	ApiKeySecret string `mapstructure:"api_key_secret" default:"steam_api_key"`
	// TimeoutSeconds is the HTTP timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
