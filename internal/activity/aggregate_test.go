package activity

import "testing"

func TestAggregate(t *testing.T) {
	cases := []struct {
		name   string
		perDay []int
		want   int
	}{
		{"empty", nil, 0},
		{"single day", []int{50}, 50},
		{"exact mean", []int{60, 70, 80}, 70},
		{"half rounds up", []int{50, 51}, 51},
		{"another half up", []int{1, 2}, 2},
		{"rounds nearest", []int{70, 71, 71}, 71},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Aggregate(tc.perDay); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}
