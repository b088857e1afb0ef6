package care

import (
	"fmt"
	"time"

	"github.com/verdant/plantcare-api/internal/domain"
)

// Strategy defines the care policy for one plant category. Strategies are
// stateless and immutable; the same instance serves every plant it applies to.
type Strategy interface {
	// Name is a short human-readable strategy name.
	Name() string

	// Description summarizes the care approach.
	Description() string

	// IsApplicable reports whether this strategy covers the given plant.
	IsApplicable(plant *domain.Plant) bool

	// BaseWateringDays returns the watering cadence in days before any
	// seasonal adjustment.
	BaseWateringDays() int

	// BaseFertilizingDays returns the fertilizing cadence in days before any
	// seasonal adjustment.
	BaseFertilizingDays() int

	// WateringDays returns the seasonally adjusted watering cadence in days.
	WateringDays(season domain.Season) int

	// FertilizingDays returns the seasonally adjusted fertilizing cadence in
	// days. Zero means fertilizing is skipped in that season.
	FertilizingDays(season domain.Season) int

	// LightRecommendation returns placement advice for the plant.
	LightRecommendation() string

	// HumidityRecommendation returns humidity advice for the plant.
	HumidityRecommendation() string

	// CareRecurrence returns the recurrence rule for an action type in a
	// season. It returns nil for the free-form Custom and Note types, and
	// for actions the strategy deliberately disables (such as fertilizing
	// in winter); the generator skips nil entries.
	CareRecurrence(action domain.ActionType, season domain.Season) *domain.RecurrenceRule
}

// seasonalDays applies a seasonal multiplier to a base cadence: shrink the
// interval in summer, grow it in winter, leave the shoulder seasons alone.
func seasonalDays(base int, season domain.Season, summerFactor, winterFactor float64) int {
	switch season {
	case domain.SeasonSummer:
		return int(float64(base) * summerFactor)
	case domain.SeasonWinter:
		return int(float64(base) * winterFactor)
	default:
		return base
	}
}

// The helpers below build the static recurrence tables. The inputs are
// compile-time constants, so a validation failure is a programming error.

func mustRule(
	ruleType domain.RecurrenceType,
	interval int,
	cfg domain.RecurrenceConfig,
) *domain.RecurrenceRule {
	rule, err := domain.NewRecurrenceRule(ruleType, interval, cfg)
	if err != nil {
		// ALLOW-PANIC: static strategy table is malformed
		panic(fmt.Sprintf("care: invalid recurrence rule in strategy table: %v", err))
	}
	return rule
}

func weekly(interval int, days ...time.Weekday) *domain.RecurrenceRule {
	return mustRule(domain.RecurrenceWeekly, interval, domain.RecurrenceConfig{
		DaysOfWeek: days,
	})
}

func monthly(interval, dayOfMonth int) *domain.RecurrenceRule {
	return mustRule(domain.RecurrenceMonthly, interval, domain.RecurrenceConfig{
		DayOfMonth: &dayOfMonth,
	})
}

func yearly(interval, dayOfMonth int, month time.Month) *domain.RecurrenceRule {
	m := int(month)
	return mustRule(domain.RecurrenceYearly, interval, domain.RecurrenceConfig{
		DayOfMonth:  &dayOfMonth,
		MonthOfYear: &m,
	})
}

func everyDays(interval int) *domain.RecurrenceRule {
	return mustRule(domain.RecurrenceDaily, interval, domain.RecurrenceConfig{})
}
