package activity

import (
	"context"
	"time"

	"github.com/Stake99/travel-planner-sub000/internal/forecast"
	"github.com/Stake99/travel-planner-sub000/internal/metrics"
)

// Recommendation is the full ranked answer for one coordinate and horizon.
type Recommendation struct {
	Coordinate forecast.Coordinate `json:"coordinate"`
	Timezone   string              `json:"timezone"`
	Days       int                 `json:"days"`
	Activities []RankedActivity    `json:"activities"`
}

// Recommender runs the forecast -> score -> aggregate -> rank pipeline.
type Recommender struct {
	forecasts *forecast.Service
	metrics   metrics.Recorder
}

// NewRecommender creates a Recommender. A nil recorder disables metrics.
func NewRecommender(forecasts *forecast.Service, rec metrics.Recorder) *Recommender {
	if rec == nil {
		rec = metrics.Noop{}
	}
	return &Recommender{forecasts: forecasts, metrics: rec}
}

// Recommend fetches the forecast (through the cache-aside service), scores
// every day for every activity, aggregates per activity across the horizon,
// and returns the ranked result. Scoring and ranking are pure; the only I/O
// is the forecast lookup.
func (r *Recommender) Recommend(ctx context.Context, coord forecast.Coordinate, days int) (Recommendation, error) {
	start := time.Now()

	result, err := r.forecasts.GetForecast(ctx, coord, days)
	if err != nil {
		return Recommendation{}, err
	}

	scores := make(map[Type]int, len(All()))
	for _, t := range All() {
		perDay := make([]int, 0, len(result.DailyForecasts))
		for _, day := range result.DailyForecasts {
			perDay = append(perDay, Score(t, day))
		}
		scores[t] = Aggregate(perDay)
	}

	rec := Recommendation{
		Coordinate: result.Coordinate,
		Timezone:   result.Timezone,
		Days:       days,
		Activities: Rank(scores, result.DailyForecasts),
	}
	r.metrics.RequestCompleted(time.Since(start))
	return rec, nil
}
