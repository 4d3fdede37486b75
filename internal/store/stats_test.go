package store

import "testing"

func TestCompliancePercent(t *testing.T) {
	cases := []struct {
		name      string
		completed int
		pending   int
		want      float64
	}{
		{"no tasks", 0, 0, 0},
		{"all pending", 0, 4, 0},
		{"all completed", 5, 0, 100},
		{"three of four", 3, 1, 75.0},
		{"four of five", 4, 1, 80.0},
		{"rounds to one decimal", 1, 2, 33.3},
		{"two thirds", 2, 1, 66.7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := compliancePercent(tc.completed, tc.pending)
			if got != tc.want {
				t.Fatalf("compliancePercent(%d, %d) = %v, want %v", tc.completed, tc.pending, got, tc.want)
			}
		})
	}
}
