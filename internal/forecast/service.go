package forecast

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Stake99/travel-planner-sub000/internal/metrics"
)

const (
	// MinDays and MaxDays bound the requested forecast horizon.
	MinDays = 1
	MaxDays = 16

	// DefaultTTL is how long a fetched forecast stays fresh in the cache.
	DefaultTTL = 1800 * time.Second
)

// Service validates requests and fronts the remote provider with a
// cache-aside layer.
type Service struct {
	cache    Cache
	provider Provider
	ttl      time.Duration
	metrics  metrics.Recorder
}

// NewService creates a Service. A zero ttl falls back to DefaultTTL; a nil
// recorder disables metrics.
func NewService(cache Cache, provider Provider, ttl time.Duration, rec metrics.Recorder) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if rec == nil {
		rec = metrics.Noop{}
	}
	return &Service{
		cache:    cache,
		provider: provider,
		ttl:      ttl,
		metrics:  rec,
	}
}

// CacheKey builds the canonical cache key for a coordinate and day count.
// Coordinates are rounded to 4 decimal places so that floating-point noise in
// logically identical requests collapses onto the same cache slot. The exact
// textual shape is part of the contract for persistence-backed caches.
func CacheKey(coord Coordinate, days int) string {
	return fmt.Sprintf("weather:%.4f:%.4f:%d", coord.Latitude, coord.Longitude, days)
}

// ValidateCoordinate rejects out-of-range or non-finite coordinates.
func ValidateCoordinate(coord Coordinate) error {
	if math.IsNaN(coord.Latitude) || math.IsInf(coord.Latitude, 0) {
		return &ValidationError{Field: "latitude", Reason: "must be a finite number"}
	}
	if math.IsNaN(coord.Longitude) || math.IsInf(coord.Longitude, 0) {
		return &ValidationError{Field: "longitude", Reason: "must be a finite number"}
	}
	if coord.Latitude < -90 || coord.Latitude > 90 {
		return &ValidationError{Field: "latitude", Reason: "must be between -90 and 90"}
	}
	if coord.Longitude < -180 || coord.Longitude > 180 {
		return &ValidationError{Field: "longitude", Reason: "must be between -180 and 180"}
	}
	return nil
}

// GetForecast returns the forecast for the given coordinate and day count,
// serving from the cache when a fresh entry exists. Exactly one provider call
// happens per cache miss and none on a hit. Concurrent misses for the same key
// are not coalesced; the last completed store wins.
func (s *Service) GetForecast(ctx context.Context, coord Coordinate, days int) (ForecastResult, error) {
	if err := ValidateCoordinate(coord); err != nil {
		return ForecastResult{}, err
	}
	if days < MinDays || days > MaxDays {
		return ForecastResult{}, &ValidationError{
			Field:  "days",
			Reason: fmt.Sprintf("must be between %d and %d", MinDays, MaxDays),
		}
	}

	key := CacheKey(coord, days)

	cached, ok, err := s.cache.Get(key)
	if err != nil {
		return ForecastResult{}, &CacheError{Op: "get", Key: key, Err: err}
	}
	if ok {
		s.metrics.CacheHit()
		return cached, nil
	}
	s.metrics.CacheMiss()

	start := time.Now()
	raw, err := s.provider.FetchForecast(ctx, coord.Latitude, coord.Longitude, days)
	s.metrics.ProviderCall(time.Since(start))
	if err != nil {
		return ForecastResult{}, &ProviderError{
			Provider: s.provider.Name(),
			Reason:   "request failed",
			Err:      err,
		}
	}

	result, err := s.resultFromRaw(coord, days, raw)
	if err != nil {
		return ForecastResult{}, err
	}

	if err := s.cache.Set(key, result, s.ttl); err != nil {
		return ForecastResult{}, &CacheError{Op: "set", Key: key, Err: err}
	}
	return result, nil
}

// resultFromRaw validates the provider payload and converts it into a
// ForecastResult. Every per-day array must be present and have exactly one
// entry per requested day.
func (s *Service) resultFromRaw(coord Coordinate, days int, raw RawForecast) (ForecastResult, error) {
	d := raw.Daily

	if len(d.Time) == 0 {
		return ForecastResult{}, s.malformed("daily.time", "missing or empty")
	}
	n := len(d.Time)
	if n != days {
		return ForecastResult{}, s.malformed("daily.time",
			fmt.Sprintf("expected %d entries, got %d", days, n))
	}

	arrays := []struct {
		field  string
		length int
	}{
		{"daily.temperature_2m_max", len(d.TemperatureMax)},
		{"daily.temperature_2m_min", len(d.TemperatureMin)},
		{"daily.precipitation_sum", len(d.PrecipitationSum)},
		{"daily.windspeed_10m_max", len(d.WindSpeedMax)},
		{"daily.weathercode", len(d.WeatherCode)},
	}
	for _, a := range arrays {
		if a.length != n {
			return ForecastResult{}, s.malformed(a.field,
				fmt.Sprintf("length %d does not match daily.time length %d", a.length, n))
		}
	}

	daily := make([]DailyConditions, 0, n)
	for i := 0; i < n; i++ {
		date, err := time.Parse("2006-01-02", d.Time[i])
		if err != nil {
			return ForecastResult{}, s.malformed("daily.time",
				fmt.Sprintf("invalid date %q", d.Time[i]))
		}
		daily = append(daily, DailyConditions{
			Date:           date,
			TemperatureMax: d.TemperatureMax[i],
			TemperatureMin: d.TemperatureMin[i],
			Precipitation:  d.PrecipitationSum[i],
			WindSpeed:      d.WindSpeedMax[i],
			WeatherCode:    d.WeatherCode[i],
		})
	}

	return ForecastResult{
		Coordinate:     coord,
		Timezone:       raw.Timezone,
		DailyForecasts: daily,
	}, nil
}

func (s *Service) malformed(field, reason string) error {
	return &ProviderError{
		Provider: s.provider.Name(),
		Reason:   "malformed response",
		Field:    field,
		Err:      fmt.Errorf("%s", reason),
	}
}
