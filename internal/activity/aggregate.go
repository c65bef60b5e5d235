package activity

import "math"

// Aggregate combines per-day scores for one activity into a single score: the
// arithmetic mean rounded half away from zero. Scores are non-negative, so
// this is the same as rounding half up.
func Aggregate(perDay []int) int {
	if len(perDay) == 0 {
		return 0
	}
	sum := 0
	for _, s := range perDay {
		sum += s
	}
	return int(math.Round(float64(sum) / float64(len(perDay))))
}
