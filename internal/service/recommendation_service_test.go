package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verdant/plantcare-api/internal/domain"
	"github.com/verdant/plantcare-api/internal/domain/care"
	"github.com/verdant/plantcare-api/internal/store"
)

func newRecommendationFixture(t *testing.T, season domain.Season) (RecommendationService, *fakePlantStore) {
	t.Helper()

	plants := newFakePlantStore()
	svc, err := NewRecommendationService(plants, care.NewDefaultRegistry(), fixedSeason(season), nil)
	require.NoError(t, err)
	return svc, plants
}

func addPlantWithCategory(t *testing.T, plants *fakePlantStore, category domain.PlantCategory) *domain.Plant {
	t.Helper()

	plant, err := domain.NewPlant("Test Plant", "", category, time.Now().UTC(), "", "")
	require.NoError(t, err)
	require.NoError(t, plants.Create(context.Background(), plant))
	return plant
}

func TestRecommendationForTropicalPlant(t *testing.T) {
	svc, plants := newRecommendationFixture(t, domain.SeasonSummer)
	plant := addPlantWithCategory(t, plants, domain.CategoryTropical)

	rec, err := svc.ForPlant(context.Background(), plant.ID)
	require.NoError(t, err)

	assert.Equal(t, "Tropical Plant Care", rec.StrategyName)
	assert.Equal(t, domain.SeasonSummer, rec.Season)
	assert.Equal(t, 3, rec.WateringDays, "tropical summer watering tightens to every 3 days")
	assert.NotEmpty(t, rec.Light)
	assert.NotEmpty(t, rec.Humidity)
	assert.Empty(t, rec.FertilizingNote)
}

func TestRecommendationWinterPausesFeeding(t *testing.T) {
	svc, plants := newRecommendationFixture(t, domain.SeasonWinter)
	plant := addPlantWithCategory(t, plants, domain.CategoryDefault)

	rec, err := svc.ForPlant(context.Background(), plant.ID)
	require.NoError(t, err)

	assert.Zero(t, rec.FertilizingDays, "feeding pauses in winter")
	assert.NotEmpty(t, rec.FertilizingNote)
	assert.Equal(t, 10, rec.WateringDays, "default winter watering stretches to every 10 days")
}

func TestRecommendationFallsBackToDefaultStrategy(t *testing.T) {
	svc, plants := newRecommendationFixture(t, domain.SeasonSpring)
	plant := addPlantWithCategory(t, plants, domain.CategoryFern)

	rec, err := svc.ForPlant(context.Background(), plant.ID)
	require.NoError(t, err)
	assert.Equal(t, "General Plant Care", rec.StrategyName)
}

func TestRecommendationPlantNotFound(t *testing.T) {
	svc, _ := newRecommendationFixture(t, domain.SeasonSpring)

	_, err := svc.ForPlant(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrPlantNotFound)
}
