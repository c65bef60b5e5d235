package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Stake99/travel-planner-sub000/internal/forecast"
)

type AppConfig struct {
	Port        string
	HTTPTimeout time.Duration

	// Remote forecast provider.
	ForecastBaseURL string
	ProviderRPS     float64
	ProviderBurst   int

	// Cache freshness and maintenance.
	CacheTTL           time.Duration
	CacheSweepInterval time.Duration

	// Coordinates whose forecasts the scheduler keeps warm.
	PrewarmCoords   []forecast.Coordinate
	PrewarmDays     int
	PrewarmInterval time.Duration
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.ForecastBaseURL = getenvDefault("FORECAST_BASE_URL", "")
	cfg.ProviderRPS = getenvFloat("PROVIDER_RPS", 5)
	cfg.ProviderBurst = getenvInt("PROVIDER_BURST", 5)

	httpTimeout, err := getenvDuration("HTTP_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = httpTimeout

	// Forecast TTL: default 30 minutes.
	ttl, err := getenvDuration("CACHE_TTL", "30m")
	if err != nil {
		return nil, err
	}
	cfg.CacheTTL = ttl

	sweep, err := getenvDuration("CACHE_SWEEP_INTERVAL", "5m")
	if err != nil {
		return nil, err
	}
	cfg.CacheSweepInterval = sweep

	interval, err := getenvDuration("PREWARM_INTERVAL", "15m")
	if err != nil {
		return nil, err
	}
	cfg.PrewarmInterval = interval
	cfg.PrewarmDays = getenvInt("PREWARM_DAYS", 7)

	coords, err := loadPrewarmCoords()
	if err != nil {
		return nil, err
	}
	cfg.PrewarmCoords = coords

	return cfg, nil
}

// loadPrewarmCoords parses PREWARM_LATS / PREWARM_LONS as comma-separated
// lists of equal length. Both empty means no prewarming.
func loadPrewarmCoords() ([]forecast.Coordinate, error) {
	latStr := os.Getenv("PREWARM_LATS")
	lonStr := os.Getenv("PREWARM_LONS")
	if latStr == "" && lonStr == "" {
		return nil, nil
	}

	lats := strings.Split(latStr, ",")
	lons := strings.Split(lonStr, ",")
	if len(lats) != len(lons) {
		return nil, fmt.Errorf("number of prewarm latitudes and longitudes must be the same")
	}

	var coords []forecast.Coordinate
	for i := range lats {
		lat, err := strconv.ParseFloat(strings.TrimSpace(lats[i]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid PREWARM_LATS entry %q: %w", lats[i], err)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(lons[i]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid PREWARM_LONS entry %q: %w", lons[i], err)
		}
		coord := forecast.Coordinate{Latitude: lat, Longitude: lon}
		if err := forecast.ValidateCoordinate(coord); err != nil {
			return nil, fmt.Errorf("invalid prewarm coordinate %d: %w", i, err)
		}
		coords = append(coords, coord)
	}
	return coords, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	v := getenvDefault(key, def)
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
