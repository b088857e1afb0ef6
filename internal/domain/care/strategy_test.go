package care

import (
	"errors"
	"testing"
	"time"

	"github.com/verdant/plantcare-api/internal/domain"
)

func testPlant(t *testing.T, category domain.PlantCategory) *domain.Plant {
	t.Helper()

	plant, err := domain.NewPlant("Test Plant", "", category, time.Now(), "", "")
	if err != nil {
		t.Fatalf("Expected no error creating plant, got %v", err)
	}
	return plant
}

func TestSeasonalWateringAdjustment(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		strategy Strategy
		season   domain.Season
		want     int
	}{
		{"default base in spring", NewDefaultStrategy(), domain.SeasonSpring, 7},
		{"default shrinks in summer", NewDefaultStrategy(), domain.SeasonSummer, 4},
		{"default grows in winter", NewDefaultStrategy(), domain.SeasonWinter, 10},
		{"succulent base in autumn", NewSucculentStrategy(), domain.SeasonAutumn, 14},
		{"succulent mild summer shrink", NewSucculentStrategy(), domain.SeasonSummer, 11},
		{"succulent doubles in winter", NewSucculentStrategy(), domain.SeasonWinter, 28},
		{"tropical base in spring", NewTropicalStrategy(), domain.SeasonSpring, 5},
		{"tropical aggressive summer shrink", NewTropicalStrategy(), domain.SeasonSummer, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.strategy.WateringDays(tc.season)
			if got != tc.want {
				t.Errorf("Expected %d days, got %d", tc.want, got)
			}
		})
	}
}

func TestFertilizingSkippedInWinter(t *testing.T) {
	t.Parallel()

	strategies := []Strategy{
		NewDefaultStrategy(),
		NewSucculentStrategy(),
		NewTropicalStrategy(),
	}

	for _, s := range strategies {
		if got := s.FertilizingDays(domain.SeasonWinter); got != 0 {
			t.Errorf("%s: expected 0 fertilizing days in winter, got %d", s.Name(), got)
		}
		if got := s.FertilizingDays(domain.SeasonSpring); got != s.BaseFertilizingDays() {
			t.Errorf("%s: expected base fertilizing days in spring, got %d", s.Name(), got)
		}
		if s.CareRecurrence(domain.ActionFertilizing, domain.SeasonWinter) != nil {
			t.Errorf("%s: expected nil fertilizing rule in winter", s.Name())
		}
	}
}

func TestCareRecurrenceCoversActionableTypes(t *testing.T) {
	t.Parallel()

	// Outside the deliberate skips (winter fertilizing, succulent misting),
	// every schedulable action type must have a valid rule.
	strategies := []Strategy{
		NewDefaultStrategy(),
		NewSucculentStrategy(),
		NewTropicalStrategy(),
	}
	seasons := []domain.Season{
		domain.SeasonSpring, domain.SeasonSummer,
		domain.SeasonAutumn, domain.SeasonWinter,
	}

	for _, s := range strategies {
		for _, season := range seasons {
			for _, action := range domain.ActionableTypes() {
				rule := s.CareRecurrence(action, season)

				if rule == nil {
					skipped := action == domain.ActionFertilizing && season == domain.SeasonWinter
					if _, isSucculent := s.(*SucculentStrategy); isSucculent &&
						action == domain.ActionMisting {
						skipped = true
					}
					if !skipped {
						t.Errorf("%s: expected rule for %s in %s", s.Name(), action, season)
					}
					continue
				}

				if err := rule.Validate(); err != nil {
					t.Errorf("%s: invalid rule for %s in %s: %v", s.Name(), action, season, err)
				}
			}
		}
	}
}

func TestCareRecurrenceNilForFreeFormTypes(t *testing.T) {
	t.Parallel()

	s := NewDefaultStrategy()
	for _, action := range []domain.ActionType{domain.ActionCustom, domain.ActionNote} {
		if s.CareRecurrence(action, domain.SeasonSpring) != nil {
			t.Errorf("Expected nil rule for free-form type %s", action)
		}
	}
}

func TestRegistryResolution(t *testing.T) {
	t.Parallel()

	registry := NewDefaultRegistry()

	testCases := []struct {
		category domain.PlantCategory
		want     string
	}{
		{domain.CategorySucculent, "Succulent & Cacti Care"},
		{domain.CategoryTropical, "Tropical Plant Care"},
		{domain.CategoryDefault, "General Plant Care"},
		{domain.CategoryIndoor, "General Plant Care"},
		// Categories without a dedicated strategy fall back to the default.
		{domain.CategoryFern, "General Plant Care"},
		{domain.CategoryHerb, "General Plant Care"},
	}

	for _, tc := range testCases {
		strategy, err := registry.ForPlant(testPlant(t, tc.category))
		if err != nil {
			t.Fatalf("Expected no error for %s, got %v", tc.category, err)
		}
		if strategy.Name() != tc.want {
			t.Errorf("Expected %q for %s, got %q", tc.want, tc.category, strategy.Name())
		}
	}
}

func TestRegistryWithoutFallback(t *testing.T) {
	t.Parallel()

	registry := NewRegistry(nil, NewSucculentStrategy())

	// A succulent still resolves.
	if _, err := registry.ForPlant(testPlant(t, domain.CategorySucculent)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Anything else is a configuration error.
	_, err := registry.ForPlant(testPlant(t, domain.CategoryFern))
	if !errors.Is(err, ErrNoDefaultStrategy) {
		t.Errorf("Expected ErrNoDefaultStrategy, got %v", err)
	}
	if !errors.Is(err, domain.ErrConfiguration) {
		t.Errorf("Expected error to wrap ErrConfiguration, got %v", err)
	}
}
