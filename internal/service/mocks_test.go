package service

import (
	"context"
	"database/sql"
	"sort"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/verdant/plantcare-api/internal/domain"
	"github.com/verdant/plantcare-api/internal/store"
)

// The fakes below keep entities in memory and ignore transactions; service
// tests pair them with a sqlmock database so RunInTransaction still sees
// real Begin/Commit calls.

func newTxDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// expectTx registers one successful begin/commit pair.
func expectTx(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectCommit()
}

// expectFailedTx registers a begin/rollback pair.
func expectFailedTx(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectRollback()
}

type fakePlantStore struct {
	plants map[uuid.UUID]*domain.Plant
}

func newFakePlantStore() *fakePlantStore {
	return &fakePlantStore{plants: make(map[uuid.UUID]*domain.Plant)}
}

func (f *fakePlantStore) Create(ctx context.Context, plant *domain.Plant) error {
	if err := plant.Validate(); err != nil {
		return err
	}
	f.plants[plant.ID] = plant
	return nil
}

func (f *fakePlantStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Plant, error) {
	plant, ok := f.plants[id]
	if !ok {
		return nil, store.ErrPlantNotFound
	}
	return plant, nil
}

func (f *fakePlantStore) List(ctx context.Context, limit, offset int) ([]*domain.Plant, error) {
	plants := []*domain.Plant{}
	for _, plant := range f.plants {
		plants = append(plants, plant)
	}
	sort.Slice(plants, func(i, j int) bool {
		return plants[i].CreatedAt.After(plants[j].CreatedAt)
	})
	return plants, nil
}

func (f *fakePlantStore) Count(ctx context.Context) (int, error) {
	return len(f.plants), nil
}

func (f *fakePlantStore) Update(ctx context.Context, plant *domain.Plant) error {
	if _, ok := f.plants[plant.ID]; !ok {
		return store.ErrPlantNotFound
	}
	f.plants[plant.ID] = plant
	return nil
}

func (f *fakePlantStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.plants[id]; !ok {
		return store.ErrPlantNotFound
	}
	delete(f.plants, id)
	return nil
}

func (f *fakePlantStore) WithTx(tx *sql.Tx) store.PlantStore { return f }

type fakeReminderStore struct {
	reminders map[uuid.UUID]*domain.Reminder
}

func newFakeReminderStore() *fakeReminderStore {
	return &fakeReminderStore{reminders: make(map[uuid.UUID]*domain.Reminder)}
}

func (f *fakeReminderStore) Create(ctx context.Context, reminder *domain.Reminder) error {
	if err := reminder.Validate(); err != nil {
		return err
	}
	f.reminders[reminder.ID] = reminder
	return nil
}

func (f *fakeReminderStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	reminder, ok := f.reminders[id]
	if !ok {
		return nil, store.ErrReminderNotFound
	}
	return reminder, nil
}

func (f *fakeReminderStore) findSorted(match func(*domain.Reminder) bool) []*domain.Reminder {
	reminders := []*domain.Reminder{}
	for _, reminder := range f.reminders {
		if match(reminder) {
			reminders = append(reminders, reminder)
		}
	}
	sort.Slice(reminders, func(i, j int) bool {
		return reminders[i].DueDate.Before(reminders[j].DueDate)
	})
	return reminders
}

func (f *fakeReminderStore) FindByPlant(ctx context.Context, plantID uuid.UUID) ([]*domain.Reminder, error) {
	return f.findSorted(func(r *domain.Reminder) bool { return r.PlantID == plantID }), nil
}

func (f *fakeReminderStore) FindActiveByPlant(ctx context.Context, plantID uuid.UUID) ([]*domain.Reminder, error) {
	return f.findSorted(func(r *domain.Reminder) bool {
		return r.PlantID == plantID && !r.IsCompleted
	}), nil
}

func (f *fakeReminderStore) FindDueBefore(ctx context.Context, cutoff time.Time) ([]*domain.Reminder, error) {
	return f.findSorted(func(r *domain.Reminder) bool {
		return !r.IsCompleted && !r.DueDate.After(cutoff)
	}), nil
}

func (f *fakeReminderStore) Update(ctx context.Context, reminder *domain.Reminder) error {
	if _, ok := f.reminders[reminder.ID]; !ok {
		return store.ErrReminderNotFound
	}
	f.reminders[reminder.ID] = reminder
	return nil
}

func (f *fakeReminderStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.reminders[id]; !ok {
		return store.ErrReminderNotFound
	}
	delete(f.reminders, id)
	return nil
}

func (f *fakeReminderStore) WithTx(tx *sql.Tx) store.ReminderStore { return f }

type fakeCareEventStore struct {
	events map[uuid.UUID]*domain.CareEvent
}

func newFakeCareEventStore() *fakeCareEventStore {
	return &fakeCareEventStore{events: make(map[uuid.UUID]*domain.CareEvent)}
}

func (f *fakeCareEventStore) Create(ctx context.Context, event *domain.CareEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}
	f.events[event.ID] = event
	return nil
}

func (f *fakeCareEventStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.CareEvent, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, store.ErrCareEventNotFound
	}
	return event, nil
}

func (f *fakeCareEventStore) FindByPlant(ctx context.Context, plantID uuid.UUID, limit, offset int) ([]*domain.CareEvent, error) {
	events := []*domain.CareEvent{}
	for _, event := range f.events {
		if event.PlantID == plantID {
			events = append(events, event)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].OccurredAt.After(events[j].OccurredAt)
	})
	return events, nil
}

func (f *fakeCareEventStore) CountByPlantAndType(ctx context.Context, plantID uuid.UUID, action domain.ActionType) (int, error) {
	count := 0
	for _, event := range f.events {
		if event.PlantID == plantID && event.Type == action {
			count++
		}
	}
	return count, nil
}

func (f *fakeCareEventStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.events[id]; !ok {
		return store.ErrCareEventNotFound
	}
	delete(f.events, id)
	return nil
}

func (f *fakeCareEventStore) WithTx(tx *sql.Tx) store.CareEventStore { return f }

type fakeObservationStore struct {
	observations map[uuid.UUID]*domain.HealthObservation
}

func newFakeObservationStore() *fakeObservationStore {
	return &fakeObservationStore{observations: make(map[uuid.UUID]*domain.HealthObservation)}
}

func (f *fakeObservationStore) Create(ctx context.Context, obs *domain.HealthObservation) error {
	if err := obs.Validate(); err != nil {
		return err
	}
	f.observations[obs.ID] = obs
	return nil
}

func (f *fakeObservationStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.HealthObservation, error) {
	obs, ok := f.observations[id]
	if !ok {
		return nil, store.ErrObservationNotFound
	}
	return obs, nil
}

func (f *fakeObservationStore) FindByPlant(ctx context.Context, plantID uuid.UUID, limit, offset int) ([]*domain.HealthObservation, error) {
	observations := []*domain.HealthObservation{}
	for _, obs := range f.observations {
		if obs.PlantID == plantID {
			observations = append(observations, obs)
		}
	}
	sort.Slice(observations, func(i, j int) bool {
		return observations[i].ObservedAt.After(observations[j].ObservedAt)
	})
	return observations, nil
}

func (f *fakeObservationStore) Latest(ctx context.Context, plantID uuid.UUID) (*domain.HealthObservation, error) {
	observations, _ := f.FindByPlant(ctx, plantID, 1, 0)
	if len(observations) == 0 {
		return nil, store.ErrObservationNotFound
	}
	return observations[0], nil
}

func (f *fakeObservationStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.observations[id]; !ok {
		return store.ErrObservationNotFound
	}
	delete(f.observations, id)
	return nil
}

func (f *fakeObservationStore) WithTx(tx *sql.Tx) store.ObservationStore { return f }

// fixedSeason pins the resolver for deterministic tests.
func fixedSeason(season domain.Season) SeasonResolver {
	return SeasonResolverFunc(func(time.Time) domain.Season { return season })
}
