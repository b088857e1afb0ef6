package service

import (
	"time"

	"github.com/verdant/plantcare-api/internal/domain"
)

// SeasonResolver determines the season for a point in time. Services depend
// on this interface rather than calling the calendar mapping directly, so
// tests can pin a season and a future build could resolve it from the
// collection's configured hemisphere or locale.
type SeasonResolver interface {
	Resolve(t time.Time) domain.Season
}

// SeasonResolverFunc adapts a plain function to the SeasonResolver interface.
type SeasonResolverFunc func(t time.Time) domain.Season

// Resolve implements SeasonResolver.
func (f SeasonResolverFunc) Resolve(t time.Time) domain.Season {
	return f(t)
}

// CalendarSeasonResolver returns the default resolver backed by the
// Southern Hemisphere calendar mapping.
func CalendarSeasonResolver() SeasonResolver {
	return SeasonResolverFunc(domain.SeasonAt)
}
