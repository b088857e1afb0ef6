package care

import (
	"time"

	"github.com/verdant/plantcare-api/internal/domain"
)

// TropicalStrategy is the moisture-loving policy for tropical plants.
type TropicalStrategy struct{}

var _ Strategy = (*TropicalStrategy)(nil)

// NewTropicalStrategy creates the tropical care strategy.
func NewTropicalStrategy() *TropicalStrategy {
	return &TropicalStrategy{}
}

// Name implements Strategy.
func (s *TropicalStrategy) Name() string { return "Tropical Plant Care" }

// Description implements Strategy.
func (s *TropicalStrategy) Description() string {
	return "Moisture-loving care for tropical plants"
}

// IsApplicable implements Strategy.
func (s *TropicalStrategy) IsApplicable(plant *domain.Plant) bool {
	return plant.Category == domain.CategoryTropical
}

// BaseWateringDays implements Strategy. Every five days.
func (s *TropicalStrategy) BaseWateringDays() int { return 5 }

// BaseFertilizingDays implements Strategy. Every two weeks during the
// growing season.
func (s *TropicalStrategy) BaseFertilizingDays() int { return 14 }

// WateringDays implements Strategy. Tropical plants dry out fast in summer,
// so the summer adjustment is aggressive.
func (s *TropicalStrategy) WateringDays(season domain.Season) int {
	return seasonalDays(s.BaseWateringDays(), season, 0.6, 1.5)
}

// FertilizingDays implements Strategy. Feeding is skipped entirely in winter.
func (s *TropicalStrategy) FertilizingDays(season domain.Season) int {
	if season == domain.SeasonWinter {
		return 0
	}
	return s.BaseFertilizingDays()
}

// LightRecommendation implements Strategy.
func (s *TropicalStrategy) LightRecommendation() string {
	return "Bright indirect light - shield from harsh direct sunlight"
}

// HumidityRecommendation implements Strategy.
func (s *TropicalStrategy) HumidityRecommendation() string {
	return "High humidity (60%+) - consider using a humidifier or pebble tray"
}

// CareRecurrence implements Strategy. Overrides watering, fertilizing and
// misting; everything else inherits the default table.
func (s *TropicalStrategy) CareRecurrence(
	action domain.ActionType,
	season domain.Season,
) *domain.RecurrenceRule {
	switch action {
	case domain.ActionWatering:
		switch season {
		case domain.SeasonSummer:
			return weekly(1, time.Monday, time.Wednesday, time.Friday)
		case domain.SeasonWinter:
			return weekly(1, time.Monday)
		default:
			return weekly(1, time.Monday, time.Thursday)
		}

	case domain.ActionFertilizing:
		if season == domain.SeasonWinter {
			return nil
		}
		return weekly(2, time.Friday)

	case domain.ActionMisting:
		if season == domain.SeasonSummer {
			return everyDays(1)
		}
		return everyDays(2)

	default:
		return defaultCareRecurrence(action, season)
	}
}
