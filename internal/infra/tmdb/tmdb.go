package infra_tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/humanbelnik/reelmatch/core/internal/config"
	"github.com/humanbelnik/reelmatch/core/internal/model"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected catalog status")
	ErrUnknownKind      = errors.New("unknown media kind")
)

// Cache is the injected response-cache port. The client never caches on
// its own; TTL policy per data kind lives here, storage lives behind Cache.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
}

// TTLs per data kind: metadata rarely changes, availability does sometimes,
// discovery listings churn constantly.
const (
	detailsTTL   = 12 * time.Hour
	providersTTL = 30 * time.Minute
	listingTTL   = 10 * time.Minute
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	region     string
	cache      Cache
	logger     *slog.Logger
}

type ClientOption func(*Client)

func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

func New(cfg config.Catalog, cache Cache, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		region:     cfg.Region,
		cache:      cache,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func kindPath(kind model.MediaKind) (string, error) {
	switch kind {
	case model.KindMovie:
		return "movie", nil
	case model.KindSeries:
		return "tv", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Details fetches one title with the keyword and credits sub-resources appended.
func (c *Client) Details(ctx context.Context, kind model.MediaKind, id int64, language string) (model.TitleDetails, error) {
	path, err := kindPath(kind)
	if err != nil {
		return model.TitleDetails{}, err
	}

	q := url.Values{}
	q.Set("language", language)
	q.Set("append_to_response", "keywords,credits")

	var dto detailsDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/%s/%d", path, id), q, detailsTTL, &dto); err != nil {
		return model.TitleDetails{}, err
	}

	return dto.toModel(kind), nil
}

// Trending returns the daily trending listing for one media kind.
func (c *Client) Trending(ctx context.Context, kind model.MediaKind, language string) ([]model.Title, error) {
	path, err := kindPath(kind)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("language", language)

	var dto listingDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/trending/%s/day", path), q, listingTTL, &dto); err != nil {
		return nil, err
	}

	return listingToModel(dto, kind), nil
}

// Discover returns one popularity-sorted discovery page. A non-empty
// certification is applied as an upstream ceiling filter.
func (c *Client) Discover(ctx context.Context, kind model.MediaKind, page int, certification string, language string) ([]model.Title, error) {
	path, err := kindPath(kind)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("language", language)
	q.Set("sort_by", "popularity.desc")
	q.Set("page", fmt.Sprintf("%d", page))
	q.Set("watch_region", c.region)
	if certification != "" {
		q.Set("certification_country", c.region)
		q.Set("certification.lte", certification)
	}

	var dto listingDTO
	if err := c.getJSON(ctx, "/discover/"+path, q, listingTTL, &dto); err != nil {
		return nil, err
	}

	return listingToModel(dto, kind), nil
}

// Similar returns titles similar to the given one.
func (c *Client) Similar(ctx context.Context, kind model.MediaKind, id int64, language string) ([]model.Title, error) {
	path, err := kindPath(kind)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("language", language)

	var dto listingDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/%s/%d/similar", path, id), q, listingTTL, &dto); err != nil {
		return nil, err
	}

	return listingToModel(dto, kind), nil
}

// Providers returns the raw service names a title is watchable on in the
// configured region, across subscription, rental and purchase categories.
func (c *Client) Providers(ctx context.Context, kind model.MediaKind, id int64) ([]string, error) {
	path, err := kindPath(kind)
	if err != nil {
		return nil, err
	}

	var dto providersDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/%s/%d/watch/providers", path, id), url.Values{}, providersTTL, &dto); err != nil {
		return nil, err
	}

	region, ok := dto.Results[c.region]
	if !ok {
		return nil, nil
	}

	var names []string
	for _, group := range [][]providerDTO{region.Flatrate, region.Rent, region.Buy} {
		for _, p := range group {
			names = append(names, p.ProviderName)
		}
	}
	return names, nil
}

func listingToModel(dto listingDTO, kind model.MediaKind) []model.Title {
	titles := make([]model.Title, 0, len(dto.Results))
	for _, r := range dto.Results {
		titles = append(titles, r.toModel(kind))
	}
	return titles
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, ttl time.Duration, out any) error {
	key := path
	if enc := q.Encode(); enc != "" {
		key += "?" + enc
	}

	if c.cache != nil {
		if raw, ok := c.cache.Get(key); ok {
			return json.Unmarshal(raw, out)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+key, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d on %s", ErrUnexpectedStatus, resp.StatusCode, path)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if c.cache != nil {
		c.cache.Set(key, raw, ttl)
	}

	return json.Unmarshal(raw, out)
}
