package domain

import (
	"testing"
	"time"
)

func TestSeasonAt(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		month time.Month
		want  Season
	}{
		{time.January, SeasonSummer},
		{time.February, SeasonSummer},
		{time.March, SeasonAutumn},
		{time.May, SeasonAutumn},
		{time.June, SeasonWinter},
		{time.August, SeasonWinter},
		{time.September, SeasonSpring},
		{time.November, SeasonSpring},
		{time.December, SeasonSummer},
	}

	for _, tc := range testCases {
		got := SeasonAt(date(2024, tc.month, 15))
		if got != tc.want {
			t.Errorf("Expected %s for %s, got %s", tc.want, tc.month, got)
		}
	}
}
