package activity

import "github.com/Stake99/travel-planner-sub000/internal/forecast"

// Score rates one day's conditions for an activity on a 0-100 scale (40-100
// for indoor sightseeing). The thresholds are fixed business rules. Each
// activity starts from a base score, applies commutative additive adjustments,
// and clamps to its bounds once at the end.
func Score(t Type, day forecast.DailyConditions) int {
	var score int
	switch t {
	case Skiing:
		score = scoreSkiing(day)
	case Surfing:
		score = scoreSurfing(day)
	case IndoorSightseeing:
		score = scoreIndoorSightseeing(day)
	case OutdoorSightseeing:
		score = scoreOutdoorSightseeing(day)
	}
	min, max := t.Bounds()
	return clamp(score, min, max)
}

func scoreSkiing(day forecast.DailyConditions) int {
	score := 50
	switch {
	case day.TemperatureMax < 0:
		score += 30
	case day.TemperatureMax <= 5:
		score += 20
	case day.TemperatureMax > 15:
		score -= 20
	}
	if day.Condition() == forecast.ConditionSnowy {
		score += 20
	}
	if day.Precipitation > 5 {
		score += 10
	}
	return score
}

func scoreSurfing(day forecast.DailyConditions) int {
	score := 50
	switch {
	case day.TemperatureMax > 20:
		score += 30
	case day.TemperatureMax >= 15 && day.TemperatureMax < 20:
		score += 20
	}
	if day.Precipitation > 5 {
		score -= 30
	}
	if day.WindSpeed > 30 {
		score -= 20
	}
	if day.WindSpeed >= 10 && day.WindSpeed <= 20 {
		score += 10
	}
	return score
}

func scoreIndoorSightseeing(day forecast.DailyConditions) int {
	score := 60
	if day.Precipitation > 5 {
		score += 30
	}
	if day.TemperatureMax < 5 || day.TemperatureMax > 35 {
		score += 20
	}
	if day.Condition() == forecast.ConditionStormy {
		score += 10
	}
	return score
}

func scoreOutdoorSightseeing(day forecast.DailyConditions) int {
	score := 50
	switch {
	case day.TemperatureMax >= 15 && day.TemperatureMax <= 25:
		score += 30
	case day.TemperatureMax >= 10 && day.TemperatureMax < 15,
		day.TemperatureMax > 25 && day.TemperatureMax <= 30:
		score += 20
	}
	if day.Precipitation > 2 {
		score -= 30
	}
	if day.WindSpeed > 40 {
		score -= 20
	}
	if cond := day.Condition(); cond == forecast.ConditionClear || cond == forecast.ConditionPartlyCloudy {
		score += 10
	}
	return score
}

func clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
