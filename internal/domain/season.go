package domain

import "time"

// Season classifies a point in time for seasonal care adjustments.
type Season string

// Possible season values.
const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// Valid reports whether the season is one of the known values.
func (s Season) Valid() bool {
	switch s {
	case SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter:
		return true
	default:
		return false
	}
}

// SeasonAt maps a timestamp to a season using Southern Hemisphere months
// (December through February is summer). Callers that need a different
// hemisphere or a fixed season for testing inject their own resolver.
func SeasonAt(t time.Time) Season {
	switch t.UTC().Month() {
	case time.December, time.January, time.February:
		return SeasonSummer
	case time.March, time.April, time.May:
		return SeasonAutumn
	case time.June, time.July, time.August:
		return SeasonWinter
	default:
		return SeasonSpring
	}
}
