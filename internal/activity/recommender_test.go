package activity

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/Stake99/travel-planner-sub000/internal/cache"
	"github.com/Stake99/travel-planner-sub000/internal/forecast"
)

// snowyProvider serves a cold, snowy horizon that should favour skiing.
type snowyProvider struct {
	calls int
}

func (p *snowyProvider) Name() string { return "snowy" }

func (p *snowyProvider) FetchForecast(ctx context.Context, lat, lon float64, days int) (forecast.RawForecast, error) {
	p.calls++
	raw := forecast.RawForecast{Timezone: "Europe/Oslo"}
	base := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	for i := 0; i < days; i++ {
		raw.Daily.Time = append(raw.Daily.Time, base.AddDate(0, 0, i).Format("2006-01-02"))
		raw.Daily.TemperatureMax = append(raw.Daily.TemperatureMax, -4)
		raw.Daily.TemperatureMin = append(raw.Daily.TemperatureMin, -12)
		raw.Daily.PrecipitationSum = append(raw.Daily.PrecipitationSum, 8)
		raw.Daily.WindSpeedMax = append(raw.Daily.WindSpeedMax, 14)
		raw.Daily.WeatherCode = append(raw.Daily.WeatherCode, 73)
	}
	return raw, nil
}

func newTestRecommender(t *testing.T, p forecast.Provider) *Recommender {
	t.Helper()
	c := cache.New[forecast.ForecastResult](time.Minute)
	t.Cleanup(c.Close)
	return NewRecommender(forecast.NewService(c, p, time.Minute, nil), nil)
}

func TestRecommendRanksSkiingFirstInWinterConditions(t *testing.T) {
	rec := newTestRecommender(t, &snowyProvider{})
	coord := forecast.Coordinate{Latitude: 59.91, Longitude: 10.75}

	result, err := rec.Recommend(context.Background(), coord, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Activities) != 4 {
		t.Fatalf("expected 4 ranked activities, got %d", len(result.Activities))
	}
	if result.Activities[0].Activity != Skiing {
		t.Fatalf("expected SKIING first, got %s", result.Activities[0].Activity)
	}
	// -4°C, snowing, heavy precipitation: 50+30+20+10 clamped to 100 each day.
	if result.Activities[0].Score != 100 {
		t.Fatalf("expected skiing score 100, got %d", result.Activities[0].Score)
	}
	if result.Days != 5 || result.Timezone != "Europe/Oslo" {
		t.Fatalf("unexpected envelope: %+v", result)
	}
}

func TestRecommendIsDeterministicAndCacheBacked(t *testing.T) {
	provider := &snowyProvider{}
	rec := newTestRecommender(t, provider)
	coord := forecast.Coordinate{Latitude: 59.91, Longitude: 10.75}

	first, err := rec.Recommend(context.Background(), coord, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := rec.Recommend(context.Background(), coord, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical requests must produce identical recommendations")
	}
	if provider.calls != 1 {
		t.Fatalf("second request should be served from cache, got %d provider calls", provider.calls)
	}
}

func TestRecommendPropagatesValidationError(t *testing.T) {
	rec := newTestRecommender(t, &snowyProvider{})

	_, err := rec.Recommend(context.Background(), forecast.Coordinate{Latitude: 200, Longitude: 0}, 3)
	if err == nil {
		t.Fatal("expected a validation error for an out-of-range coordinate")
	}
}
