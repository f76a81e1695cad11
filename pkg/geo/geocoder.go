// Package geo resolves free-text locations to coordinates through a
// Nominatim-compatible endpoint. Lookups are cached in redis when a client is
// provided; any failure falls back to a fixed coordinate so callers never
// have to handle a geocoding error.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"carrental/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Default center when the address cannot be resolved (New York).
const (
	DefaultLat = 40.7128
	DefaultLng = -74.0060
)

const cacheTTL = 24 * time.Hour

type Geocoder struct {
	baseURL string
	agent   string
	http    *http.Client
	cache   *redis.Client // optional
	log     logger.ILogger
}

func New(baseURL, userAgent string, cache *redis.Client, log logger.ILogger) *Geocoder {
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}
	return &Geocoder{
		baseURL: strings.TrimRight(baseURL, "/"),
		agent:   userAgent,
		http:    &http.Client{Timeout: 5 * time.Second},
		cache:   cache,
		log:     log,
	}
}

// Geocode returns the coordinates for address, or the default center when the
// address is empty, unknown, or the upstream service fails.
func (g *Geocoder) Geocode(ctx context.Context, address string) (lat, lng float64) {
	address = strings.TrimSpace(address)
	if address == "" {
		return DefaultLat, DefaultLng
	}

	key := "geo:" + strings.ToLower(address)
	if g.cache != nil {
		if cached, err := g.cache.Get(ctx, key).Result(); err == nil {
			if lat, lng, ok := parsePair(cached); ok {
				return lat, lng
			}
		}
	}

	lat, lng, err := g.lookup(ctx, address)
	if err != nil {
		g.log.Warning("geocode failed, using default coordinates",
			logger.String("address", address), logger.Error(err))
		return DefaultLat, DefaultLng
	}

	if g.cache != nil {
		if err := g.cache.Set(ctx, key, fmt.Sprintf("%f,%f", lat, lng), cacheTTL).Err(); err != nil {
			g.log.Warning("geocode cache write failed", logger.Error(err))
		}
	}
	return lat, lng
}

func (g *Geocoder) lookup(ctx context.Context, address string) (float64, float64, error) {
	u := fmt.Sprintf("%s/search?format=json&limit=1&q=%s", g.baseURL, url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, 0, err
	}
	if g.agent != "" {
		req.Header.Set("User-Agent", g.agent)
	}

	res, err := g.http.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geocoder returned status %d", res.StatusCode)
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(res.Body).Decode(&results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no results for %q", address)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, err
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, err
	}
	return lat, lng, nil
}

func parsePair(s string) (float64, float64, bool) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lat, err1 := strconv.ParseFloat(parts[0], 64)
	lng, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return lat, lng, true
}
