package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PlantCategory groups plants by their broad care profile. The category
// drives which care strategy applies to the plant.
type PlantCategory string

// Possible plant category values.
const (
	CategoryDefault   PlantCategory = "default"
	CategorySucculent PlantCategory = "succulent"
	CategoryTropical  PlantCategory = "tropical"
	CategoryFlowering PlantCategory = "flowering"
	CategoryHerb      PlantCategory = "herb"
	CategoryFoliage   PlantCategory = "foliage"
	CategoryFern      PlantCategory = "fern"
	CategoryVine      PlantCategory = "vine"
	CategoryIndoor    PlantCategory = "indoor"
)

// Valid reports whether the category is one of the known values.
func (c PlantCategory) Valid() bool {
	switch c {
	case CategoryDefault, CategorySucculent, CategoryTropical, CategoryFlowering,
		CategoryHerb, CategoryFoliage, CategoryFern, CategoryVine, CategoryIndoor:
		return true
	default:
		return false
	}
}

// Plant-specific validation errors.
var (
	// ErrPlantIDEmpty is returned when a plant ID is empty or nil.
	ErrPlantIDEmpty = fmt.Errorf("%w: plant ID cannot be empty", ErrValidation)

	// ErrPlantNameEmpty is returned when a plant's name is empty.
	ErrPlantNameEmpty = fmt.Errorf("%w: plant name cannot be empty", ErrValidation)

	// ErrPlantCategoryInvalid is returned when a plant's category is not a known value.
	ErrPlantCategoryInvalid = fmt.Errorf("%w: unknown plant category", ErrValidation)
)

// Plant represents a tracked houseplant.
type Plant struct {
	ID         uuid.UUID     `json:"id"`
	Name       string        `json:"name"`
	Species    string        `json:"species,omitempty"`
	Category   PlantCategory `json:"category"`
	AcquiredAt time.Time     `json:"acquired_at"`
	Location   string        `json:"location,omitempty"`
	Notes      string        `json:"notes,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// NewPlant creates a new Plant with a generated ID and audit timestamps.
// An empty category defaults to CategoryDefault. Returns an error if
// validation fails.
func NewPlant(
	name, species string,
	category PlantCategory,
	acquiredAt time.Time,
	location, notes string,
) (*Plant, error) {
	if category == "" {
		category = CategoryDefault
	}

	now := time.Now().UTC()
	plant := &Plant{
		ID:         uuid.New(),
		Name:       name,
		Species:    species,
		Category:   category,
		AcquiredAt: acquiredAt,
		Location:   location,
		Notes:      notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := plant.Validate(); err != nil {
		return nil, err
	}

	return plant, nil
}

// Validate checks if the Plant has valid data.
func (p *Plant) Validate() error {
	if p.ID == uuid.Nil {
		return ErrPlantIDEmpty
	}
	if p.Name == "" {
		return ErrPlantNameEmpty
	}
	if !p.Category.Valid() {
		return ErrPlantCategoryInvalid
	}
	return nil
}

// UpdateDetails replaces the plant's editable fields and bumps the updated
// timestamp. Returns an error if the new values are invalid, leaving the
// plant unchanged.
func (p *Plant) UpdateDetails(
	name, species string,
	category PlantCategory,
	location, notes string,
) error {
	if name == "" {
		return ErrPlantNameEmpty
	}
	if !category.Valid() {
		return ErrPlantCategoryInvalid
	}

	p.Name = name
	p.Species = species
	p.Category = category
	p.Location = location
	p.Notes = notes
	p.UpdatedAt = time.Now().UTC()
	return nil
}
