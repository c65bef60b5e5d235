package forecast

import (
	"encoding/json"
	"time"
)

// WeatherCondition is a normalized high-level weather condition derived
// from the raw WMO weather code.
type WeatherCondition string

const (
	ConditionClear        WeatherCondition = "CLEAR"
	ConditionPartlyCloudy WeatherCondition = "PARTLY_CLOUDY"
	ConditionCloudy       WeatherCondition = "CLOUDY"
	ConditionRainy        WeatherCondition = "RAINY"
	ConditionSnowy        WeatherCondition = "SNOWY"
	ConditionStormy       WeatherCondition = "STORMY"
)

// ConditionFromCode maps a WMO weather code to a WeatherCondition.
// Codes outside all known ranges normalize to CLOUDY.
func ConditionFromCode(code int) WeatherCondition {
	switch {
	case code == 0:
		return ConditionClear
	case code >= 1 && code <= 2:
		return ConditionPartlyCloudy
	case code == 3 || code == 45 || code == 48:
		return ConditionCloudy
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 82):
		return ConditionRainy
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return ConditionSnowy
	case code >= 95:
		return ConditionStormy
	default:
		return ConditionCloudy
	}
}

// Coordinate is a validated latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DailyConditions holds the weather for a single forecast day.
type DailyConditions struct {
	Date           time.Time
	TemperatureMax float64
	TemperatureMin float64
	Precipitation  float64 // mm
	WindSpeed      float64 // km/h
	WeatherCode    int
}

// Condition derives the normalized condition from the raw weather code.
// It is computed on every access rather than stored.
func (d DailyConditions) Condition() WeatherCondition {
	return ConditionFromCode(d.WeatherCode)
}

func (d DailyConditions) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date           string           `json:"date"`
		TemperatureMax float64          `json:"temperatureMax"`
		TemperatureMin float64          `json:"temperatureMin"`
		Precipitation  float64          `json:"precipitationMm"`
		WindSpeed      float64          `json:"windSpeedKmh"`
		WeatherCode    int              `json:"weatherCode"`
		Condition      WeatherCondition `json:"condition"`
	}{
		Date:           d.Date.Format("2006-01-02"),
		TemperatureMax: d.TemperatureMax,
		TemperatureMin: d.TemperatureMin,
		Precipitation:  d.Precipitation,
		WindSpeed:      d.WindSpeed,
		WeatherCode:    d.WeatherCode,
		Condition:      d.Condition(),
	})
}

// ForecastResult is the validated multi-day forecast for one coordinate.
// DailyForecasts always has exactly as many entries as the requested day count.
type ForecastResult struct {
	Coordinate     Coordinate        `json:"coordinate"`
	Timezone       string            `json:"timezone"`
	DailyForecasts []DailyConditions `json:"dailyForecasts"`
}

// RawDaily mirrors the per-day arrays returned by the remote provider.
// All arrays must be present and of equal length; the service validates this.
type RawDaily struct {
	Time             []string  `json:"time"`
	TemperatureMax   []float64 `json:"temperature_2m_max"`
	TemperatureMin   []float64 `json:"temperature_2m_min"`
	PrecipitationSum []float64 `json:"precipitation_sum"`
	WindSpeedMax     []float64 `json:"windspeed_10m_max"`
	WeatherCode      []int     `json:"weathercode"`
}

// RawForecast is the unvalidated provider payload.
type RawForecast struct {
	Timezone string   `json:"timezone"`
	Daily    RawDaily `json:"daily"`
}
