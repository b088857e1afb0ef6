package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewPlant(t *testing.T) {
	t.Parallel()

	acquired := date(2024, time.February, 10)
	plant, err := NewPlant("Monstera", "Monstera deliciosa", CategoryTropical,
		acquired, "Living room", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if plant.ID == uuid.Nil {
		t.Error("Expected non-nil plant ID")
	}
	if plant.Category != CategoryTropical {
		t.Errorf("Expected tropical category, got %s", plant.Category)
	}
	if plant.CreatedAt.IsZero() || plant.UpdatedAt.IsZero() {
		t.Error("Expected audit timestamps to be set")
	}

	// Empty category defaults.
	plant, err = NewPlant("Pothos", "", "", acquired, "", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if plant.Category != CategoryDefault {
		t.Errorf("Expected default category, got %s", plant.Category)
	}

	// Validation failures.
	if _, err := NewPlant("", "", CategoryDefault, acquired, "", ""); !errors.Is(err, ErrPlantNameEmpty) {
		t.Errorf("Expected ErrPlantNameEmpty, got %v", err)
	}
	if _, err := NewPlant("Cactus", "", PlantCategory("desert"), acquired, "", ""); !errors.Is(err, ErrPlantCategoryInvalid) {
		t.Errorf("Expected ErrPlantCategoryInvalid, got %v", err)
	}
}

func TestPlantUpdateDetails(t *testing.T) {
	t.Parallel()

	plant, err := NewPlant("Monstera", "", CategoryTropical, time.Now(), "", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := plant.UpdateDetails("", "", CategoryTropical, "", ""); !errors.Is(err, ErrPlantNameEmpty) {
		t.Errorf("Expected ErrPlantNameEmpty, got %v", err)
	}
	if plant.Name != "Monstera" {
		t.Error("Expected failed update to leave plant unchanged")
	}

	if err := plant.UpdateDetails("Big Monstera", "Monstera deliciosa",
		CategoryTropical, "Office", "repotted once"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if plant.Name != "Big Monstera" || plant.Location != "Office" {
		t.Error("Expected updated fields to be applied")
	}
}

func TestNewCareEvent(t *testing.T) {
	t.Parallel()

	plantID := uuid.New()
	event, err := NewCareEvent(plantID, ActionWatering, date(2024, time.March, 1), "deep soak")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if event.PlantID != plantID {
		t.Errorf("Expected plant ID %s, got %s", plantID, event.PlantID)
	}

	// Custom and Note reminders produce no care history.
	if _, err := NewCareEvent(plantID, ActionNote, time.Now(), ""); !errors.Is(err, ErrCareEventTypeInvalid) {
		t.Errorf("Expected ErrCareEventTypeInvalid, got %v", err)
	}
	if _, err := NewCareEvent(uuid.Nil, ActionWatering, time.Now(), ""); !errors.Is(err, ErrCareEventPlantIDEmpty) {
		t.Errorf("Expected ErrCareEventPlantIDEmpty, got %v", err)
	}
}

func TestNewHealthObservation(t *testing.T) {
	t.Parallel()

	obs, err := NewHealthObservation(uuid.New(), time.Now(), HealthHealthy, "new leaf")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if obs.Status != HealthHealthy {
		t.Errorf("Expected healthy status, got %s", obs.Status)
	}

	if _, err := NewHealthObservation(uuid.New(), time.Now(), HealthStatus("meh"), ""); !errors.Is(err, ErrObservationStatusInvalid) {
		t.Errorf("Expected ErrObservationStatusInvalid, got %v", err)
	}
}
