package activity

import (
	"fmt"
	"sort"

	"github.com/Stake99/travel-planner-sub000/internal/forecast"
)

// RankedActivity is one entry of the ranked recommendation list.
type RankedActivity struct {
	Activity    Type        `json:"activity"`
	Score       int         `json:"score"`
	Suitability Suitability `json:"suitability"`
	Reason      string      `json:"reason"`
}

// daySummary holds the statistics the reason templates draw from.
type daySummary struct {
	meanTempMax   float64
	meanPrecip    float64
	meanWind      float64
	conditionDays map[forecast.WeatherCondition]int
}

func summarize(days []forecast.DailyConditions) daySummary {
	s := daySummary{conditionDays: make(map[forecast.WeatherCondition]int)}
	if len(days) == 0 {
		return s
	}
	for _, d := range days {
		s.meanTempMax += d.TemperatureMax
		s.meanPrecip += d.Precipitation
		s.meanWind += d.WindSpeed
		s.conditionDays[d.Condition()]++
	}
	n := float64(len(days))
	s.meanTempMax /= n
	s.meanPrecip /= n
	s.meanWind /= n
	return s
}

// Rank orders aggregated scores descending. Equal scores fall back to the
// fixed enumeration order so the output is fully deterministic, independent
// of sort stability. The result always holds exactly one entry per activity.
func Rank(scores map[Type]int, days []forecast.DailyConditions) []RankedActivity {
	summary := summarize(days)

	ranked := make([]RankedActivity, 0, len(All()))
	for _, t := range All() {
		score := scores[t]
		tier := SuitabilityForScore(score)
		ranked = append(ranked, RankedActivity{
			Activity:    t,
			Score:       score,
			Suitability: tier,
			Reason:      reasonFor(t, tier, summary),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Activity < ranked[j].Activity
	})
	return ranked
}

// reasonFor builds a human-readable justification. The template is selected
// by activity and suitability tier; the numbers come from the day-set summary,
// so identical input always produces identical wording.
func reasonFor(t Type, tier Suitability, s daySummary) string {
	lead := tierLead(tier)
	switch t {
	case Skiing:
		return fmt.Sprintf("%s conditions for skiing: average high of %.1f°C with %d snowy day(s) over the period.",
			lead, s.meanTempMax, s.conditionDays[forecast.ConditionSnowy])
	case Surfing:
		return fmt.Sprintf("%s conditions for surfing: average high of %.1f°C and average wind of %.1f km/h.",
			lead, s.meanTempMax, s.meanWind)
	case IndoorSightseeing:
		wet := s.conditionDays[forecast.ConditionRainy] + s.conditionDays[forecast.ConditionStormy]
		return fmt.Sprintf("%s conditions for indoor sightseeing: %d rainy or stormy day(s) and %.1f mm average precipitation.",
			lead, wet, s.meanPrecip)
	case OutdoorSightseeing:
		dry := s.conditionDays[forecast.ConditionClear] + s.conditionDays[forecast.ConditionPartlyCloudy]
		return fmt.Sprintf("%s conditions for outdoor sightseeing: average high of %.1f°C with %d clear or partly cloudy day(s).",
			lead, s.meanTempMax, dry)
	default:
		return fmt.Sprintf("%s conditions.", lead)
	}
}

func tierLead(tier Suitability) string {
	switch tier {
	case Excellent:
		return "Excellent"
	case Good:
		return "Good"
	case Fair:
		return "Fair"
	default:
		return "Poor"
	}
}
