package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Stake99/travel-planner-sub000/internal/activity"
	"github.com/Stake99/travel-planner-sub000/internal/forecast"
	"github.com/Stake99/travel-planner-sub000/internal/metrics"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, forecasts *forecast.Service, recommender *activity.Recommender, stats *metrics.Counters) {
	v1 := app.Group("/api/v1")

	v1.Get("/forecast", func(c *fiber.Ctx) error {
		req, err := parseForecastQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result, err := forecasts.GetForecast(c.UserContext(), req.toCoordinate(), req.Days)
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(result)
	})

	v1.Get("/recommendations", func(c *fiber.Ctx) error {
		req, err := parseForecastQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		rec, err := recommender.Recommend(c.UserContext(), req.toCoordinate(), req.Days)
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(rec)
	})

	v1.Get("/stats", func(c *fiber.Ctx) error {
		return c.JSON(stats.Snapshot())
	})
}

// forecastQuery holds the query parameters shared by the forecast and
// recommendation endpoints.
type forecastQuery struct {
	Lat  float64 `validate:"min=-90,max=90"`
	Lon  float64 `validate:"min=-180,max=180"`
	Days int     `validate:"min=1,max=16"`
}

func (q forecastQuery) toCoordinate() forecast.Coordinate {
	return forecast.Coordinate{Latitude: q.Lat, Longitude: q.Lon}
}

func parseForecastQuery(c *fiber.Ctx) (forecastQuery, error) {
	var q forecastQuery

	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	daysStr := c.Query("days")
	if latStr == "" || lonStr == "" {
		return q, errors.New("lat and lon query parameters are required")
	}
	if daysStr == "" {
		return q, errors.New("days query parameter is required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return q, errors.New("lat must be a number")
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return q, errors.New("lon must be a number")
	}
	days, err := strconv.Atoi(daysStr)
	if err != nil {
		return q, errors.New("days must be an integer")
	}

	q.Lat = lat
	q.Lon = lon
	q.Days = days

	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

// mapServiceError translates the core error taxonomy into HTTP status codes.
func mapServiceError(err error) error {
	var vErr *forecast.ValidationError
	if errors.As(err, &vErr) {
		return fiber.NewError(fiber.StatusBadRequest, vErr.Error())
	}
	var pErr *forecast.ProviderError
	if errors.As(err, &pErr) {
		return fiber.NewError(fiber.StatusBadGateway, pErr.Error())
	}
	var cErr *forecast.CacheError
	if errors.As(err, &cErr) {
		return fiber.NewError(fiber.StatusInternalServerError, "cache failure")
	}
	return fiber.NewError(fiber.StatusInternalServerError, "internal error")
}
