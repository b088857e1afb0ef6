package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verdant/plantcare-api/internal/domain"
	"github.com/verdant/plantcare-api/internal/domain/care"
	"github.com/verdant/plantcare-api/internal/store"
)

type plantServiceFixture struct {
	svc       PlantService
	plants    *fakePlantStore
	reminders *fakeReminderStore
	mock      sqlmock.Sqlmock
}

func newPlantServiceFixture(t *testing.T, season domain.Season) *plantServiceFixture {
	t.Helper()

	db, mock := newTxDB(t)
	plants := newFakePlantStore()
	reminders := newFakeReminderStore()

	gen, err := care.NewGenerator(care.NewDefaultRegistry())
	require.NoError(t, err)

	svc, err := NewPlantService(db, plants, reminders, gen, fixedSeason(season), nil)
	require.NoError(t, err)

	return &plantServiceFixture{
		svc:       svc,
		plants:    plants,
		reminders: reminders,
		mock:      mock,
	}
}

func TestCreatePlantGeneratesInitialReminders(t *testing.T) {
	f := newPlantServiceFixture(t, domain.SeasonSpring)
	expectTx(f.mock)

	plant, err := f.svc.CreatePlant(context.Background(), "Monstera", "Monstera deliciosa",
		domain.CategoryTropical, time.Now().UTC(), "Living room", "")
	require.NoError(t, err)
	require.NotNil(t, plant)

	assert.Len(t, f.plants.plants, 1, "the plant should be persisted")

	active, err := f.reminders.FindActiveByPlant(context.Background(), plant.ID)
	require.NoError(t, err)
	assert.Len(t, active, len(domain.ActionableTypes()),
		"every schedulable action type should get an initial reminder in spring")
	for _, reminder := range active {
		assert.Equal(t, plant.ID, reminder.PlantID)
	}
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestCreatePlantRejectsInvalidInput(t *testing.T) {
	f := newPlantServiceFixture(t, domain.SeasonSpring)

	_, err := f.svc.CreatePlant(context.Background(), "", "", domain.CategoryDefault,
		time.Now().UTC(), "", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, f.plants.plants, "nothing should be persisted on validation failure")
	assert.Empty(t, f.reminders.reminders)
}

func TestGetPlantNotFound(t *testing.T) {
	f := newPlantServiceFixture(t, domain.SeasonSpring)

	_, err := f.svc.GetPlant(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrPlantNotFound)
}

func TestUpdatePlant(t *testing.T) {
	f := newPlantServiceFixture(t, domain.SeasonSpring)
	expectTx(f.mock)

	plant, err := f.svc.CreatePlant(context.Background(), "Monstera", "",
		domain.CategoryTropical, time.Now().UTC(), "", "")
	require.NoError(t, err)

	updated, err := f.svc.UpdatePlant(context.Background(), plant.ID,
		"Big Monstera", "Monstera deliciosa", domain.CategoryTropical, "Office", "")
	require.NoError(t, err)
	assert.Equal(t, "Big Monstera", updated.Name)
	assert.Equal(t, "Office", updated.Location)

	// Invalid update is rejected by the domain before any persistence.
	_, err = f.svc.UpdatePlant(context.Background(), plant.ID,
		"", "", domain.CategoryTropical, "", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDeletePlant(t *testing.T) {
	f := newPlantServiceFixture(t, domain.SeasonSpring)
	expectTx(f.mock)

	plant, err := f.svc.CreatePlant(context.Background(), "Monstera", "",
		domain.CategoryTropical, time.Now().UTC(), "", "")
	require.NoError(t, err)

	require.NoError(t, f.svc.DeletePlant(context.Background(), plant.ID))
	assert.ErrorIs(t, f.svc.DeletePlant(context.Background(), plant.ID), store.ErrPlantNotFound)
}
