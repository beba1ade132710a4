package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const cacheKey = "weather:current"

// Cache кэш ответа; nil-кэш допустим
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config параметры клиента
type Config struct {
	BaseURL  string
	APIKey   string
	Lat      float64
	Lon      float64
	Timeout  time.Duration
	CacheTTL time.Duration
}

// Client клиент внешнего API погоды для фиксированной локации
type Client struct {
	cfg        Config
	httpClient *http.Client
	cache      Cache
	log        Logger
}

// NewClient создает клиента. cache может быть nil - тогда каждый вызов идет во внешний API.
func NewClient(cfg Config, cache Cache, log Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		cache: cache,
		log:   log,
	}
}

// GetCurrent текущая погода. Ошибки кэша не фатальны - логируем и идем в API.
func (c *Client) GetCurrent(ctx context.Context) (*Current, error) {
	if cur, ok := c.fromCache(ctx); ok {
		return cur, nil
	}

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(c.cfg.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(c.cfg.Lon, 'f', -1, 64))
	q.Set("appid", c.cfg.APIKey)
	q.Set("units", "metric")
	q.Set("lang", "kr")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/data/2.5/weather?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var raw apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	cur := raw.toCurrent()
	c.toCache(ctx, cur)

	return cur, nil
}

func (c *Client) fromCache(ctx context.Context) (*Current, bool) {
	if c.cache == nil {
		return nil, false
	}

	data, err := c.cache.Get(ctx, cacheKey)
	if err != nil {
		c.log.Warn("weather: cache read failed: %v", err)
		return nil, false
	}
	if data == nil {
		return nil, false
	}

	var cur Current
	if err := json.Unmarshal(data, &cur); err != nil {
		c.log.Warn("weather: cache entry is corrupted: %v", err)
		return nil, false
	}

	return &cur, true
}

func (c *Client) toCache(ctx context.Context, cur *Current) {
	if c.cache == nil || c.cfg.CacheTTL <= 0 {
		return
	}

	data, err := json.Marshal(cur)
	if err != nil {
		return
	}

	if err := c.cache.Set(ctx, cacheKey, data, c.cfg.CacheTTL); err != nil {
		c.log.Warn("weather: cache write failed: %v", err)
	}
}
