package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Reminder-specific validation errors.
var (
	// ErrReminderIDEmpty is returned when a reminder ID is empty or nil.
	ErrReminderIDEmpty = fmt.Errorf("%w: reminder ID cannot be empty", ErrValidation)

	// ErrReminderPlantIDEmpty is returned when a reminder's plant ID is empty or nil.
	ErrReminderPlantIDEmpty = fmt.Errorf("%w: reminder plant ID cannot be empty", ErrValidation)

	// ErrReminderTypeInvalid is returned when a reminder's action type is unknown.
	ErrReminderTypeInvalid = fmt.Errorf("%w: unknown reminder type", ErrValidation)

	// ErrReminderTitleEmpty is returned when a reminder's title is empty or blank.
	ErrReminderTitleEmpty = fmt.Errorf("%w: reminder title cannot be empty", ErrValidation)

	// ErrReminderDueDatePast is returned when a due date being set is in the past.
	// This applies to construction and direct updates only; the completion
	// lifecycle computes reactivation dates forward from "now" and never
	// needs the check.
	ErrReminderDueDatePast = fmt.Errorf("%w: due date cannot be in the past", ErrValidation)

	// ErrReminderOccurrenceOnFreeForm is returned when a custom or note
	// reminder carries an occurrence-count recurrence rule. Free-form
	// completions leave no care history, so there is nothing to count the
	// limit against and the series could never end.
	ErrReminderOccurrenceOnFreeForm = fmt.Errorf(
		"%w: occurrence-count recurrence requires a care action type", ErrValidation)
)

// Reminder is a due, possibly-recurring care task for a plant. Its lifecycle
// oscillates between active (not completed) and completed; a recurring
// reminder cycles back to active on completion until its series ends.
//
// State changes only through the methods below. Anything else that needs a
// different reminder constructs a new one.
type Reminder struct {
	ID          uuid.UUID       `json:"id"`
	PlantID     uuid.UUID       `json:"plant_id"`
	Type        ActionType      `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	DueDate     time.Time       `json:"due_date"`
	Recurrence  *RecurrenceRule `json:"recurrence,omitempty"`
	IsCompleted bool            `json:"is_completed"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewReminder creates a new active Reminder with a generated ID.
// The due date must not be before today; the recurrence rule, if present,
// must be valid.
func NewReminder(
	plantID uuid.UUID,
	actionType ActionType,
	title, description string,
	dueDate time.Time,
	recurrence *RecurrenceRule,
) (*Reminder, error) {
	if DateOnly(dueDate).Before(DateOnly(time.Now())) {
		return nil, ErrReminderDueDatePast
	}

	now := time.Now().UTC()
	reminder := &Reminder{
		ID:          uuid.New(),
		PlantID:     plantID,
		Type:        actionType,
		Title:       title,
		Description: description,
		DueDate:     DateOnly(dueDate),
		Recurrence:  recurrence,
		IsCompleted: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := reminder.Validate(); err != nil {
		return nil, err
	}

	return reminder, nil
}

// Validate checks the reminder's invariants. It deliberately does not
// re-check the due date against "today": reminders loaded from storage may
// legitimately be overdue.
func (r *Reminder) Validate() error {
	if r.ID == uuid.Nil {
		return ErrReminderIDEmpty
	}
	if r.PlantID == uuid.Nil {
		return ErrReminderPlantIDEmpty
	}
	if !r.Type.Valid() {
		return ErrReminderTypeInvalid
	}
	if strings.TrimSpace(r.Title) == "" {
		return ErrReminderTitleEmpty
	}
	if r.Recurrence != nil {
		if err := r.Recurrence.Validate(); err != nil {
			return err
		}
		if r.Recurrence.OccurrenceCount != nil && !r.Type.Actionable() {
			return ErrReminderOccurrenceOnFreeForm
		}
	}
	return nil
}

// Complete records a completion at the given time and advances the lifecycle.
//
// The completion timestamp is always recorded. A reminder without a
// recurrence rule stays completed for good. A recurring reminder checks
// whether its series has ended (end date reached, or priorCompletions
// already meets the occurrence count); if not, it reactivates with the next
// due date computed forward from the completion time.
//
// priorCompletions is the number of care events of this reminder's type
// already recorded for the plant, not counting the one being logged now.
// The caller is expected to append a care event for this completion.
func (r *Reminder) Complete(completedAt time.Time, priorCompletions int) {
	at := completedAt.UTC()
	r.IsCompleted = true
	r.CompletedAt = &at
	r.UpdatedAt = at

	if r.Recurrence == nil {
		return
	}

	next := r.Recurrence.NextDueDate(at)
	if r.Recurrence.SeriesEnded(at, priorCompletions) {
		return
	}

	// Reactivate for the next occurrence. The computed date is always on or
	// after the completion date, so the past-due-date invariant holds
	// without re-checking.
	r.IsCompleted = false
	r.CompletedAt = nil
	r.DueDate = next
}

// UpdateTitle replaces the reminder's title and bumps the updated timestamp.
func (r *Reminder) UpdateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrReminderTitleEmpty
	}
	r.Title = title
	r.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdateDescription replaces the reminder's description.
func (r *Reminder) UpdateDescription(description string) {
	r.Description = description
	r.UpdatedAt = time.Now().UTC()
}

// UpdateDueDate replaces the reminder's due date. The new date must not be
// before today.
func (r *Reminder) UpdateDueDate(dueDate time.Time) error {
	if DateOnly(dueDate).Before(DateOnly(time.Now())) {
		return ErrReminderDueDatePast
	}
	r.DueDate = DateOnly(dueDate)
	r.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdateRecurrence replaces the reminder's recurrence rule. A nil rule turns
// the reminder into a one-off. A non-nil rule must be valid, and an
// occurrence-count rule needs a care action type to count against.
func (r *Reminder) UpdateRecurrence(rule *RecurrenceRule) error {
	if rule != nil {
		if err := rule.Validate(); err != nil {
			return err
		}
		if rule.OccurrenceCount != nil && !r.Type.Actionable() {
			return ErrReminderOccurrenceOnFreeForm
		}
	}
	r.Recurrence = rule
	r.UpdatedAt = time.Now().UTC()
	return nil
}
