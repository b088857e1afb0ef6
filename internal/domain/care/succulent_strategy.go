package care

import (
	"time"

	"github.com/verdant/plantcare-api/internal/domain"
)

// SucculentStrategy is the water-conserving policy for cacti, succulents and
// other drought-tolerant plants.
type SucculentStrategy struct{}

var _ Strategy = (*SucculentStrategy)(nil)

// NewSucculentStrategy creates the succulent care strategy.
func NewSucculentStrategy() *SucculentStrategy {
	return &SucculentStrategy{}
}

// Name implements Strategy.
func (s *SucculentStrategy) Name() string { return "Succulent & Cacti Care" }

// Description implements Strategy.
func (s *SucculentStrategy) Description() string {
	return "Water-conserving care for drought-tolerant plants"
}

// IsApplicable implements Strategy.
func (s *SucculentStrategy) IsApplicable(plant *domain.Plant) bool {
	return plant.Category == domain.CategorySucculent
}

// BaseWateringDays implements Strategy. Every two weeks.
func (s *SucculentStrategy) BaseWateringDays() int { return 14 }

// BaseFertilizingDays implements Strategy. Every two months during the
// growing season.
func (s *SucculentStrategy) BaseFertilizingDays() int { return 60 }

// WateringDays implements Strategy. Summer adjustment is less extreme than
// for other plants; winter watering drops to half the cadence.
func (s *SucculentStrategy) WateringDays(season domain.Season) int {
	return seasonalDays(s.BaseWateringDays(), season, 0.8, 2.0)
}

// FertilizingDays implements Strategy. Feeding is skipped entirely in winter.
func (s *SucculentStrategy) FertilizingDays(season domain.Season) int {
	if season == domain.SeasonWinter {
		return 0
	}
	return s.BaseFertilizingDays()
}

// LightRecommendation implements Strategy.
func (s *SucculentStrategy) LightRecommendation() string {
	return "Bright direct or indirect light - at least 6 hours of sunlight daily"
}

// HumidityRecommendation implements Strategy.
func (s *SucculentStrategy) HumidityRecommendation() string {
	return "Low humidity (30-40%) - avoid humid environments"
}

// CareRecurrence implements Strategy. Overrides watering, fertilizing,
// repotting and misting; everything else inherits the default table.
func (s *SucculentStrategy) CareRecurrence(
	action domain.ActionType,
	season domain.Season,
) *domain.RecurrenceRule {
	switch action {
	case domain.ActionWatering:
		if season == domain.SeasonWinter {
			return weekly(4, time.Monday)
		}
		return weekly(2, time.Monday)

	case domain.ActionFertilizing:
		if season == domain.SeasonWinter {
			return nil
		}
		return monthly(2, 1)

	case domain.ActionRepotting:
		// Succulents are slow growers; repot every other year.
		return yearly(2, 1, time.September)

	case domain.ActionMisting:
		// Misting promotes rot on succulents.
		return nil

	default:
		return defaultCareRecurrence(action, season)
	}
}
