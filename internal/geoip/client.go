// Package geoip looks up the country of a client IP through an external
// geolocation service. The provider returns a bare two-letter country code
// as plain text (ipapi.co response shape).
package geoip

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"marketgogo/backend/internal/config"
)

// Client queries the geolocation provider.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a geo-IP client against the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: config.GeoIPTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// CountryForIP returns the two-letter country code for an IP address.
func (c *Client) CountryForIP(ctx context.Context, ip string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s/country/", c.baseURL, ip), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "MarketGoGo/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geoip lookup returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return "", err
	}

	country := strings.TrimSpace(string(body))
	if len(country) != 2 {
		return "", fmt.Errorf("geoip lookup returned unexpected body %q", country)
	}
	return country, nil
}
