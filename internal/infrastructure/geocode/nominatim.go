package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/you/attendsvc/domain"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// NominatimClient implements domain.GeocodingService against the
// OpenStreetMap Nominatim reverse-geocoding API. Every lookup is bounded
// by the configured timeout; callers fall back to raw coordinates on error.
type NominatimClient struct {
	baseURL string
	client  *http.Client
}

// NewNominatimClient creates a reverse-geocoding client. An empty baseURL
// selects the public Nominatim endpoint.
func NewNominatimClient(baseURL string, timeout time.Duration) *NominatimClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &NominatimClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// ReverseGeocode implements domain.GeocodingService
func (n *NominatimClient) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lng))
	q.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "attendsvc/1.0")

	resp, err := n.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocoding returned status %d", resp.StatusCode)
	}

	var body struct {
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode reverse geocoding response: %w", err)
	}

	if body.DisplayName == "" {
		return "", fmt.Errorf("reverse geocoding returned no address")
	}

	return body.DisplayName, nil
}

var _ domain.GeocodingService = (*NominatimClient)(nil)
