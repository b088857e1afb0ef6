package care

import (
	"errors"
	"fmt"
	"time"

	"github.com/verdant/plantcare-api/internal/domain"
)

// Generator errors.
var (
	ErrNilPlant    = errors.New("plant cannot be nil")
	ErrNilRegistry = errors.New("strategy registry cannot be nil")
)

// Generator produces the next batch of due reminders for a plant from its
// care strategy, its care history and its currently active reminders.
//
// The pass is pure with respect to its inputs and idempotent: an action type
// that already has an active reminder is never scheduled again, so repeated
// runs never create duplicates. The caller persists the returned reminders
// and must serialize concurrent generation for the same plant.
type Generator struct {
	registry *Registry
}

// NewGenerator creates a reminder generator backed by the given strategy
// registry.
func NewGenerator(registry *Registry) (*Generator, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}
	return &Generator{registry: registry}, nil
}

// GenerateForPlant walks the schedulable action types in a fixed order and
// constructs one new active reminder for each type that needs one:
//
//   - types with an existing active reminder are skipped,
//   - types the strategy disables (nil rule) are skipped,
//   - the due date is computed from the most recent care event of the type,
//     or falls back to today when the action has never been done,
//   - due dates in the past are clamped to today.
//
// now supplies "today"; it should be the current time, since constructed
// reminders enforce the no-past-due-date invariant against the clock.
func (g *Generator) GenerateForPlant(
	plant *domain.Plant,
	history []*domain.CareEvent,
	active []*domain.Reminder,
	season domain.Season,
	now time.Time,
) ([]*domain.Reminder, error) {
	if plant == nil {
		return nil, ErrNilPlant
	}

	strategy, err := g.registry.ForPlant(plant)
	if err != nil {
		return nil, err
	}

	today := domain.DateOnly(now)
	reminders := make([]*domain.Reminder, 0, len(domain.ActionableTypes()))

	for _, action := range domain.ActionableTypes() {
		if hasActiveReminder(active, action) {
			continue
		}

		rule := strategy.CareRecurrence(action, season)
		if rule == nil {
			continue
		}

		dueDate := today
		if last := latestEvent(history, action); last != nil {
			dueDate = rule.NextDueDate(last.OccurredAt)
			if dueDate.Before(today) {
				dueDate = today
			}
		}

		reminder, err := domain.NewReminder(
			plant.ID,
			action,
			ActionTitle(action),
			ActionDescription(action, plant.Name),
			dueDate,
			rule,
		)
		if err != nil {
			return nil, fmt.Errorf("generate %s reminder: %w", action, err)
		}

		reminders = append(reminders, reminder)
	}

	return reminders, nil
}

// hasActiveReminder reports whether an uncompleted reminder of the given
// type is already present.
func hasActiveReminder(reminders []*domain.Reminder, action domain.ActionType) bool {
	for _, r := range reminders {
		if !r.IsCompleted && r.Type == action {
			return true
		}
	}
	return false
}

// latestEvent returns the most recent care event of the given type, or nil.
// The history does not need to be sorted.
func latestEvent(history []*domain.CareEvent, action domain.ActionType) *domain.CareEvent {
	var latest *domain.CareEvent
	for _, e := range history {
		if e.Type != action {
			continue
		}
		if latest == nil || e.OccurredAt.After(latest.OccurredAt) {
			latest = e
		}
	}
	return latest
}

// ActionTitle returns the display title for a generated reminder.
func ActionTitle(action domain.ActionType) string {
	switch action {
	case domain.ActionWatering:
		return "Watering"
	case domain.ActionFertilizing:
		return "Fertilizing"
	case domain.ActionRepotting:
		return "Repotting"
	case domain.ActionPruning:
		return "Pruning"
	case domain.ActionPestTreatment:
		return "Pest Treatment"
	case domain.ActionCleaning:
		return "Cleaning"
	case domain.ActionMisting:
		return "Misting"
	case domain.ActionRotating:
		return "Rotating"
	case domain.ActionInspection:
		return "Plant Inspection"
	case domain.ActionNote:
		return "Note"
	default:
		return "Custom Reminder"
	}
}

// ActionDescription returns the display description for a generated reminder.
func ActionDescription(action domain.ActionType, plantName string) string {
	switch action {
	case domain.ActionWatering:
		return fmt.Sprintf("Time to water your %s", plantName)
	case domain.ActionFertilizing:
		return fmt.Sprintf("Time to fertilize your %s", plantName)
	case domain.ActionRepotting:
		return fmt.Sprintf("Your %s might need repotting", plantName)
	case domain.ActionPruning:
		return fmt.Sprintf("Time to prune your %s", plantName)
	case domain.ActionPestTreatment:
		return fmt.Sprintf("Check and treat %s for pests", plantName)
	case domain.ActionCleaning:
		return fmt.Sprintf("Clean the leaves of %s", plantName)
	case domain.ActionMisting:
		return fmt.Sprintf("Mist your %s for humidity", plantName)
	case domain.ActionRotating:
		return fmt.Sprintf("Rotate %s for even growth", plantName)
	case domain.ActionInspection:
		return fmt.Sprintf("Inspect %s for overall health", plantName)
	default:
		return fmt.Sprintf("Care reminder for your %s", plantName)
	}
}
