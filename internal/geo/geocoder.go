// Package geo resolves addresses to coordinates and builds geo: URIs for map applications.
package geo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/mmynk/ordena/internal/metrics"
)

var (
	ErrEmptyAddress    = errors.New("address is empty")
	ErrAddressNotFound = errors.New("address not found")
)

// DefaultUserAgent identifies this application to the geocoding service.
const DefaultUserAgent = "ordena/1.0"

// Coordinates is a WGS84 position.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Place is the best match for an address.
type Place struct {
	Coordinates
	DisplayName string `json:"display_name"`
}

// Geocoder turns a free-text address into a place.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Place, error)
}

// NominatimClient queries a Nominatim-compatible /search endpoint.
type NominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewNominatimClient creates a geocoder for baseURL, e.g. https://nominatim.openstreetmap.org.
func NewNominatimClient(baseURL, userAgent string, httpClient *http.Client) *NominatimClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &NominatimClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: httpClient,
	}
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode returns the single best match for address.
func (c *NominatimClient) Geocode(ctx context.Context, address string) (Place, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Place{}, ErrEmptyAddress
	}

	place, err := c.search(ctx, address)
	switch {
	case errors.Is(err, ErrAddressNotFound):
		metrics.GeocodeLookups.WithLabelValues("not_found").Inc()
	case err != nil:
		metrics.GeocodeLookups.WithLabelValues("error").Inc()
	default:
		metrics.GeocodeLookups.WithLabelValues("found").Inc()
	}
	return place, err
}

func (c *NominatimClient) search(ctx context.Context, address string) (Place, error) {
	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "jsonv2")
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return Place{}, fmt.Errorf("failed to build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Place{}, fmt.Errorf("failed to call geocoder: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Place{}, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Place{}, fmt.Errorf("failed to decode geocoder response: %w", err)
	}
	if len(results) == 0 {
		return Place{}, fmt.Errorf("%w: %q", ErrAddressNotFound, address)
	}

	best := results[0]
	lat, err := strconv.ParseFloat(best.Lat, 64)
	if err != nil {
		return Place{}, fmt.Errorf("invalid latitude %q: %w", best.Lat, err)
	}
	lon, err := strconv.ParseFloat(best.Lon, 64)
	if err != nil {
		return Place{}, fmt.Errorf("invalid longitude %q: %w", best.Lon, err)
	}

	return Place{
		Coordinates: Coordinates{Latitude: lat, Longitude: lon},
		DisplayName: best.DisplayName,
	}, nil
}
