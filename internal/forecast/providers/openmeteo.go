// Package providers contains remote forecast source clients.
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/Stake99/travel-planner-sub000/internal/forecast"
)

// DefaultBaseURL is the Open-Meteo daily forecast endpoint. Open-Meteo
// requires no API key.
const DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// OpenMeteoProvider implements forecast.Provider against the Open-Meteo
// daily forecast API.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewOpenMeteoProvider creates a provider with rate limiting, backoff, and a
// circuit breaker around the shared HTTP client. An empty baseURL falls back
// to DefaultBaseURL; rps <= 0 disables the client-side rate limiter.
func NewOpenMeteoProvider(client *http.Client, baseURL string, rps float64, burst int) *OpenMeteoProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	var limiter *rate.Limiter
	if rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: baseURL,
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
			Limiter: limiter,
		},
		circuit: cb,
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

// FetchForecast requests the daily arrays for the given coordinate and day
// count. The payload is returned as-is; structural validation is the
// service's job.
func (p *OpenMeteoProvider) FetchForecast(ctx context.Context, lat, lon float64, days int) (forecast.RawForecast, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", lat))
		values.Set("longitude", fmt.Sprintf("%f", lon))
		values.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum,windspeed_10m_max,weathercode")
		values.Set("forecast_days", strconv.Itoa(days))
		values.Set("timezone", "auto")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doResilientRequest(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return forecast.RawForecast{}, err
	}
	defer resp.Body.Close()

	var raw forecast.RawForecast
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return forecast.RawForecast{}, fmt.Errorf("decode response: %w", err)
	}
	return raw, nil
}

var _ forecast.Provider = (*OpenMeteoProvider)(nil)
