package activity

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/Stake99/travel-planner-sub000/internal/forecast"
)

func sampleDays() []forecast.DailyConditions {
	base := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	return []forecast.DailyConditions{
		{Date: base, TemperatureMax: -2, Precipitation: 6, WindSpeed: 10, WeatherCode: 71},
		{Date: base.AddDate(0, 0, 1), TemperatureMax: 1, Precipitation: 2, WindSpeed: 8, WeatherCode: 73},
		{Date: base.AddDate(0, 0, 2), TemperatureMax: 3, Precipitation: 0, WindSpeed: 5, WeatherCode: 2},
	}
}

func TestRankSortsDescending(t *testing.T) {
	scores := map[Type]int{
		Skiing:             95,
		Surfing:            20,
		IndoorSightseeing:  70,
		OutdoorSightseeing: 40,
	}

	ranked := Rank(scores, sampleDays())
	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].Score < ranked[i].Score {
			t.Fatalf("ranking not descending at position %d: %d < %d", i, ranked[i-1].Score, ranked[i].Score)
		}
	}
	if ranked[0].Activity != Skiing {
		t.Fatalf("expected SKIING on top, got %s", ranked[0].Activity)
	}
}

func TestRankTieBreakUsesEnumerationOrder(t *testing.T) {
	// SKIING and SURFING tied: SKIING must come immediately before SURFING.
	scores := map[Type]int{
		Skiing:             70,
		Surfing:            70,
		IndoorSightseeing:  60,
		OutdoorSightseeing: 50,
	}

	ranked := Rank(scores, sampleDays())
	if ranked[0].Activity != Skiing || ranked[1].Activity != Surfing {
		t.Fatalf("expected SKIING then SURFING, got %s then %s", ranked[0].Activity, ranked[1].Activity)
	}
}

func TestRankIsIdempotent(t *testing.T) {
	scores := map[Type]int{
		Skiing:             70,
		Surfing:            70,
		IndoorSightseeing:  70,
		OutdoorSightseeing: 70,
	}

	a := Rank(scores, sampleDays())
	b := Rank(scores, sampleDays())
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical input must produce identical ranked output")
	}

	// Full tie: pure enumeration order.
	wantOrder := []Type{Skiing, Surfing, IndoorSightseeing, OutdoorSightseeing}
	for i, want := range wantOrder {
		if a[i].Activity != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, a[i].Activity)
		}
	}
}

func TestRankAlwaysCoversEveryActivity(t *testing.T) {
	ranked := Rank(map[Type]int{}, nil)
	if len(ranked) != 4 {
		t.Fatalf("expected exactly 4 entries, got %d", len(ranked))
	}

	seen := make(map[Type]bool)
	for _, r := range ranked {
		seen[r.Activity] = true
	}
	for _, typ := range All() {
		if !seen[typ] {
			t.Fatalf("missing activity %s in ranking", typ)
		}
	}
}

func TestSuitabilityForScore(t *testing.T) {
	cases := []struct {
		score int
		want  Suitability
	}{
		{100, Excellent},
		{80, Excellent},
		{79, Good},
		{60, Good},
		{59, Fair},
		{40, Fair},
		{39, Poor},
		{0, Poor},
	}
	for _, tc := range cases {
		if got := SuitabilityForScore(tc.score); got != tc.want {
			t.Errorf("score %d: expected %s, got %s", tc.score, tc.want, got)
		}
	}
}

func TestReasonReflectsTier(t *testing.T) {
	scores := map[Type]int{
		Skiing:             85,
		Surfing:            30,
		IndoorSightseeing:  65,
		OutdoorSightseeing: 45,
	}

	ranked := Rank(scores, sampleDays())
	for _, r := range ranked {
		if r.Reason == "" {
			t.Fatalf("expected a reason for %s", r.Activity)
		}
		lead := strings.SplitN(r.Reason, " ", 2)[0]
		if !strings.EqualFold(lead, string(r.Suitability)) {
			t.Errorf("%s: reason %q does not open with tier %s", r.Activity, r.Reason, r.Suitability)
		}
	}
}
