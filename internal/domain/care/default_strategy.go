package care

import (
	"time"

	"github.com/verdant/plantcare-api/internal/domain"
)

// DefaultStrategy is the standard care policy for common houseplants. It is
// also the fallback when no category-specific strategy applies.
type DefaultStrategy struct{}

var _ Strategy = (*DefaultStrategy)(nil)

// NewDefaultStrategy creates the standard care strategy.
func NewDefaultStrategy() *DefaultStrategy {
	return &DefaultStrategy{}
}

// Name implements Strategy.
func (s *DefaultStrategy) Name() string { return "General Plant Care" }

// Description implements Strategy.
func (s *DefaultStrategy) Description() string {
	return "Standard care for most common houseplants"
}

// IsApplicable implements Strategy.
func (s *DefaultStrategy) IsApplicable(plant *domain.Plant) bool {
	return plant.Category == domain.CategoryDefault || plant.Category == domain.CategoryIndoor
}

// BaseWateringDays implements Strategy. Weekly watering.
func (s *DefaultStrategy) BaseWateringDays() int { return 7 }

// BaseFertilizingDays implements Strategy. Monthly fertilizing.
func (s *DefaultStrategy) BaseFertilizingDays() int { return 30 }

// WateringDays implements Strategy. Water ~30% more often in summer, ~50%
// less often in winter.
func (s *DefaultStrategy) WateringDays(season domain.Season) int {
	return seasonalDays(s.BaseWateringDays(), season, 0.7, 1.5)
}

// FertilizingDays implements Strategy. Feeding is skipped entirely in winter.
func (s *DefaultStrategy) FertilizingDays(season domain.Season) int {
	if season == domain.SeasonWinter {
		return 0
	}
	return s.BaseFertilizingDays()
}

// LightRecommendation implements Strategy.
func (s *DefaultStrategy) LightRecommendation() string {
	return "Medium indirect light - near a window but not in direct sunlight"
}

// HumidityRecommendation implements Strategy.
func (s *DefaultStrategy) HumidityRecommendation() string {
	return "Average home humidity (40-50%)"
}

// CareRecurrence implements Strategy.
func (s *DefaultStrategy) CareRecurrence(
	action domain.ActionType,
	season domain.Season,
) *domain.RecurrenceRule {
	return defaultCareRecurrence(action, season)
}

// defaultCareRecurrence is the baseline recurrence table. Category-specific
// strategies override individual rows and fall back here for the rest.
func defaultCareRecurrence(
	action domain.ActionType,
	season domain.Season,
) *domain.RecurrenceRule {
	switch action {
	case domain.ActionWatering:
		switch season {
		case domain.SeasonSummer:
			return weekly(1, time.Monday, time.Thursday)
		case domain.SeasonWinter:
			return weekly(2, time.Monday)
		default:
			return weekly(1, time.Monday)
		}

	case domain.ActionFertilizing:
		if season == domain.SeasonWinter {
			return nil // no feeding during dormancy
		}
		return monthly(1, 1)

	case domain.ActionRepotting:
		// Repot at the start of the growing season.
		return yearly(1, 1, time.September)

	case domain.ActionPruning:
		return monthly(3, 1)

	case domain.ActionPestTreatment:
		return weekly(2, time.Saturday)

	case domain.ActionCleaning:
		return monthly(1, 15)

	case domain.ActionMisting:
		return everyDays(3)

	case domain.ActionRotating:
		return weekly(1, time.Sunday)

	case domain.ActionInspection:
		return weekly(1, time.Sunday)

	default:
		// Custom and Note are free-form and never scheduled.
		return nil
	}
}
