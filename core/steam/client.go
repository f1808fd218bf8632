package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"common-games/core/secrets"
)

// ErrVanityNotFound indicates that a vanity name has no matching account.
var ErrVanityNotFound = errors.New("vanity name not found")

// Client defines the interface for the external game-library data source.
type Client interface {
	// ResolveVanityURL resolves a vanity name to its canonical steam id.
	// Returns ErrVanityNotFound if no account matches the name.
	ResolveVanityURL(ctx context.Context, name string) (string, error)
	// GetOwnedGames lists the titles owned by the given user. An empty
	// list is a valid response (private or empty library).
	GetOwnedGames(ctx context.Context, steamID string) ([]OwnedGame, error)
	// GetAppDetails fetches storefront metadata for a single title.
	// Lookup failures (unknown app, malformed payload, non-200 status)
	// are reported via AppDetails.Success=false, not as errors.
	GetAppDetails(ctx context.Context, appID string) (*AppDetails, error)
}

// NewClient creates a new Steam client based on the configuration.
// The Web API key is read from the secret store per call, so credential
// failures surface as secrets.RetrievalError at request time.
func NewClient(cfg Config, secretStore secrets.Store) Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Strict transport timeouts so a slow Steam endpoint cannot hang a request.
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &httpClient{
		cfg:     cfg,
		secrets: secretStore,
		http: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
	}
}

type httpClient struct {
	cfg     Config
	secrets secrets.Store
	http    *http.Client
}

func (c *httpClient) ResolveVanityURL(ctx context.Context, name string) (string, error) {
	key, err := c.secrets.GetSecret(ctx, c.cfg.ApiKeySecret)
	if err != nil {
		return "", err
	}

	endpoint, err := c.apiURL("/ISteamUser/ResolveVanityURL/v1/", url.Values{
		"key":       {key},
		"vanityurl": {name},
	})
	if err != nil {
		return "", err
	}

	var parsed resolveVanityResponse
	if err := c.getJSON(ctx, endpoint, &parsed); err != nil {
		return "", fmt.Errorf("resolve vanity %q: %w", name, err)
	}

	// success=1 carries the id; any other code (42 = no match) means the
	// name does not resolve.
	if parsed.Response.Success != 1 || parsed.Response.SteamID == "" {
		return "", ErrVanityNotFound
	}
	return parsed.Response.SteamID, nil
}

func (c *httpClient) GetOwnedGames(ctx context.Context, steamID string) ([]OwnedGame, error) {
	key, err := c.secrets.GetSecret(ctx, c.cfg.ApiKeySecret)
	if err != nil {
		return nil, err
	}

	endpoint, err := c.apiURL("/IPlayerService/GetOwnedGames/v1/", url.Values{
		"key":             {key},
		"steamid":         {steamID},
		"include_appinfo": {"1"},
		"format":          {"json"},
	})
	if err != nil {
		return nil, err
	}

	var parsed ownedGamesResponse
	if err := c.getJSON(ctx, endpoint, &parsed); err != nil {
		return nil, fmt.Errorf("get owned games for %s: %w", steamID, err)
	}

	games := make([]OwnedGame, 0, len(parsed.Response.Games))
	for _, g := range parsed.Response.Games {
		games = append(games, OwnedGame{
			AppID: strconv.FormatInt(g.AppID, 10),
			Name:  g.Name,
		})
	}
	return games, nil
}

func (c *httpClient) GetAppDetails(ctx context.Context, appID string) (*AppDetails, error) {
	base, err := url.Parse(c.cfg.StoreBaseUrl)
	if err != nil {
		return nil, fmt.Errorf("invalid store base url: %w", err)
	}
	base.Path += "/api/appdetails"

	params := url.Values{}
	params.Add("appids", appID)
	base.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base.String(), nil)
	if err != nil {
		return nil, err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get app details for %s: %w", appID, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return &AppDetails{Success: false}, nil
	}

	// Storefront wraps the payload in a map keyed by the requested app id.
	var envelope map[string]appDetailsEnvelope
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return &AppDetails{Success: false}, nil
	}

	entry, ok := envelope[appID]
	if !ok || !entry.Success {
		return &AppDetails{Success: false}, nil
	}

	return &AppDetails{
		Success:    true,
		Name:       entry.Data.Name,
		Categories: entry.Data.Categories,
	}, nil
}

func (c *httpClient) apiURL(path string, params url.Values) (string, error) {
	base, err := url.Parse(c.cfg.ApiBaseUrl)
	if err != nil {
		return "", fmt.Errorf("invalid api base url: %w", err)
	}
	base.Path += path
	base.RawQuery = params.Encode()
	return base.String(), nil
}

func (c *httpClient) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	return json.NewDecoder(res.Body).Decode(out)
}
