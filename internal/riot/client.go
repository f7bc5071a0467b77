// File: internal/riot/client.go

// Package riot is a thin caching proxy to the Riot game-data API. It does
// no interpretation of the payloads: bodies come back exactly as the
// upstream produced them.
package riot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hextechhub/internal/cache"
	"hextechhub/internal/worker"

	"golang.org/x/sync/singleflight"
)

var (
	// ErrAPIUnavailable means no upstream credential is configured.
	// Returned before any network call is attempted.
	ErrAPIUnavailable = errors.New("riot api key not configured")

	// ErrUpstreamNotFound is the upstream 404 case. The HTTP boundary
	// collapses it with ErrUpstreamUnavailable into a 404, matching the
	// upstream contract exposed to callers; the split is kept here so
	// that collapse can be undone without re-deriving it.
	ErrUpstreamNotFound = errors.New("upstream resource not found")

	// ErrUpstreamUnavailable covers transport failures, non-2xx
	// statuses other than 404, and unparseable bodies.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// platformByRegion maps public region codes onto platform routing hosts.
// Unrecognized regions fall through to euw1, silently.
var platformByRegion = map[string]string{
	"EUW":  "euw1",
	"EUNE": "eun1",
	"NA":   "na1",
	"KR":   "kr",
	"BR":   "br1",
	"JP":   "jp1",
	"TR":   "tr1",
	"RU":   "ru",
	"LA1":  "la1",
	"LA2":  "la2",
	"OC1":  "oc1",
}

// clusterByPlatform groups platforms into the three continental routing
// clusters used by the match endpoints. Default is europe.
var clusterByPlatform = map[string]string{
	"euw1": "europe",
	"eun1": "europe",
	"tr1":  "europe",
	"ru":   "europe",
	"na1":  "americas",
	"br1":  "americas",
	"la1":  "americas",
	"la2":  "americas",
	"oc1":  "americas",
	"kr":   "asia",
	"jp1":  "asia",
}

// Platform resolves a region code to its platform routing host.
func Platform(region string) string {
	if p, ok := platformByRegion[region]; ok {
		return p
	}
	return "euw1"
}

// Cluster resolves a region code to its continental routing cluster.
func Cluster(region string) string {
	if c, ok := clusterByPlatform[Platform(region)]; ok {
		return c
	}
	return "europe"
}

// Client proxies summoner and match lookups, memoizing raw responses in
// the cache for TTL. Concurrent misses on the same key are collapsed
// into a single upstream call.
type Client struct {
	httpClient *http.Client
	cache      cache.Cache
	pool       worker.Pool
	apiKey     string
	ttl        time.Duration
	group      singleflight.Group

	// baseURL builds the scheme+host part from a routing host; tests
	// point it at an httptest server.
	baseURL func(host string) string
}

// NewClient wires the proxy. apiKey may be empty; every call then fails
// with ErrAPIUnavailable without touching the network.
func NewClient(httpClient *http.Client, c cache.Cache, pool worker.Pool, apiKey string, ttl time.Duration) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		cache:      c,
		pool:       pool,
		apiKey:     apiKey,
		ttl:        ttl,
		baseURL: func(host string) string {
			return "https://" + host + ".api.riotgames.com"
		},
	}
}

// SummonerByName looks up a summoner on the region's platform host.
func (c *Client) SummonerByName(ctx context.Context, region, name string) (json.RawMessage, error) {
	key := fmt.Sprintf("lol:summoner:%s:%s", region, name)
	path := "/lol/summoner/v4/summoners/by-name/" + url.PathEscape(name)
	return c.cached(ctx, key, Platform(region), path)
}

// MatchesByPUUID lists recent match ids on the region's cluster host.
func (c *Client) MatchesByPUUID(ctx context.Context, region, puuid string, count int) (json.RawMessage, error) {
	key := fmt.Sprintf("lol:matches:%s:%s:%d", region, puuid, count)
	path := fmt.Sprintf("/lol/match/v5/matches/by-puuid/%s/ids?count=%d", url.PathEscape(puuid), count)
	return c.cached(ctx, key, Cluster(region), path)
}

// MatchByID fetches one match detail on the region's cluster host.
func (c *Client) MatchByID(ctx context.Context, region, matchID string) (json.RawMessage, error) {
	key := fmt.Sprintf("lol:match:%s:%s", region, matchID)
	path := "/lol/match/v5/matches/" + url.PathEscape(matchID)
	return c.cached(ctx, key, Cluster(region), path)
}

func (c *Client) cached(ctx context.Context, key, host, path string) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, ErrAPIUnavailable
	}

	if body, err := c.cache.Get(ctx, key).Result(); err == nil {
		return json.RawMessage(body), nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		body, err := c.fetch(ctx, host, path)
		if err != nil {
			return nil, err
		}
		c.pool.Submit(func() {
			setCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := c.cache.Set(setCtx, key, string(body), c.ttl).Err(); err != nil {
				log.Printf("riot: cache set %s: %v", key, err)
			}
		})
		return body, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(json.RawMessage), nil
}

func (c *Client) fetch(ctx context.Context, host, path string) (json.RawMessage, error) {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	target := c.baseURL(host) + path + sep + "api_key=" + url.QueryEscape(c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrUpstreamNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: invalid response body", ErrUpstreamUnavailable)
	}
	return json.RawMessage(body), nil
}
