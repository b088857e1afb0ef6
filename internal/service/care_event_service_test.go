package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verdant/plantcare-api/internal/domain"
	"github.com/verdant/plantcare-api/internal/store"
)

func TestRecordEvent(t *testing.T) {
	events := newFakeCareEventStore()
	svc, err := NewCareEventService(events, nil)
	require.NoError(t, err)

	plantID := uuid.New()
	event, err := svc.RecordEvent(context.Background(), plantID,
		domain.ActionWatering, time.Now().UTC(), "deep soak")
	require.NoError(t, err)
	assert.Equal(t, plantID, event.PlantID)

	// Free-form types never enter care history.
	_, err = svc.RecordEvent(context.Background(), plantID,
		domain.ActionNote, time.Now().UTC(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCareEventHistoryOrder(t *testing.T) {
	events := newFakeCareEventStore()
	svc, err := NewCareEventService(events, nil)
	require.NoError(t, err)

	plantID := uuid.New()
	now := time.Now().UTC()

	older, err := svc.RecordEvent(context.Background(), plantID,
		domain.ActionWatering, now.AddDate(0, 0, -5), "")
	require.NoError(t, err)
	newer, err := svc.RecordEvent(context.Background(), plantID,
		domain.ActionFertilizing, now.AddDate(0, 0, -1), "")
	require.NoError(t, err)

	history, err := svc.History(context.Background(), plantID, 10, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, newer.ID, history[0].ID, "history is newest first")
	assert.Equal(t, older.ID, history[1].ID)
}

func TestDeleteEventNotFound(t *testing.T) {
	svc, err := NewCareEventService(newFakeCareEventStore(), nil)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteEvent(context.Background(), uuid.New()), store.ErrCareEventNotFound)
}

func TestObservationLifecycle(t *testing.T) {
	observations := newFakeObservationStore()
	svc, err := NewObservationService(observations, nil)
	require.NoError(t, err)

	plantID := uuid.New()
	now := time.Now().UTC()

	_, err = svc.RecordObservation(context.Background(), plantID,
		now.AddDate(0, 0, -7), domain.HealthWilting, "droopy leaves")
	require.NoError(t, err)
	latest, err := svc.RecordObservation(context.Background(), plantID,
		now, domain.HealthHealthy, "recovered after watering")
	require.NoError(t, err)

	got, err := svc.Latest(context.Background(), plantID)
	require.NoError(t, err)
	assert.Equal(t, latest.ID, got.ID, "latest returns the newest observation")

	_, err = svc.Latest(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrObservationNotFound)

	// Unknown status is rejected by the domain.
	_, err = svc.RecordObservation(context.Background(), plantID, now, domain.HealthStatus("meh"), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
