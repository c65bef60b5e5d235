package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/Stake99/travel-planner-sub000/internal/forecast"
)

// Scheduler periodically refreshes forecasts for configured coordinates so
// their cache entries stay warm.
type Scheduler struct {
	scheduler *gocron.Scheduler
	forecasts *forecast.Service
	coords    []forecast.Coordinate
	days      int
	interval  time.Duration
}

// New creates a new Scheduler.
func New(coords []forecast.Coordinate, days int, interval time.Duration, forecasts *forecast.Service) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		forecasts: forecasts,
		coords:    coords,
		days:      days,
		interval:  interval,
	}
}

// Start schedules the periodic refresh job and starts the underlying
// scheduler.
func (s *Scheduler) Start() error {
	if len(s.coords) == 0 {
		log.Println("scheduler: no prewarm coordinates configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("scheduler: running forecast prewarm job")

		var wg sync.WaitGroup
		for _, coord := range s.coords {
			coord := coord
			wg.Add(1)
			go func() {
				defer wg.Done()

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if _, err := s.forecasts.GetForecast(ctx, coord, s.days); err != nil {
					log.Printf("scheduler: prewarm failed for %s: %v",
						forecast.CacheKey(coord, s.days), err)
				}
			}()
		}
		wg.Wait()
		log.Println("scheduler: completed forecast prewarm job")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
