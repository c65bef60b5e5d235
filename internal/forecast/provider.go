package forecast

import (
	"context"
	"time"
)

// Provider abstracts the remote forecast source (e.g. Open-Meteo).
type Provider interface {
	Name() string
	FetchForecast(ctx context.Context, lat, lon float64, days int) (RawForecast, error)
}

// Cache is the contract the forecast cache must satisfy. Operations return
// errors so that a networked backend can implement the same interface; the
// in-memory implementation never fails.
type Cache interface {
	Get(key string) (ForecastResult, bool, error)
	Set(key string, value ForecastResult, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}
