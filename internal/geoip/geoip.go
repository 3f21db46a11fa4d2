// Package geoip resolves IP addresses to coarse locations via the ipapi.co
// HTTP API. Lookups are best-effort: callers treat failures as missing data,
// never as errors worth surfacing.
package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/observability"
)

// Location is the coarse geolocation of one IP address.
type Location struct {
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country_name"`
}

// Resolver queries the geolocation API.
type Resolver struct {
	baseURL string
	client  *http.Client
}

// NewResolver returns a Resolver against the given API base URL.
func NewResolver(baseURL string) *Resolver {
	return &Resolver{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 3 * time.Second},
	}
}

// Lookup resolves ip to a location. Private and empty addresses short-circuit.
func (r *Resolver) Lookup(ctx context.Context, ip string) (*Location, error) {
	if ip == "" || ip == "127.0.0.1" || ip == "::1" {
		observability.GeoIPLookups.WithLabelValues("skipped").Inc()
		return nil, fmt.Errorf("unresolvable address %q", ip)
	}

	url := fmt.Sprintf("%s/%s/json/", r.baseURL, ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		observability.GeoIPLookups.WithLabelValues("error").Inc()
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		observability.GeoIPLookups.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("geoip lookup returned status %d", resp.StatusCode)
	}

	var loc Location
	if err := json.NewDecoder(resp.Body).Decode(&loc); err != nil {
		observability.GeoIPLookups.WithLabelValues("error").Inc()
		return nil, err
	}

	observability.GeoIPLookups.WithLabelValues("ok").Inc()
	return &loc, nil
}
