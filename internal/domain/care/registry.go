package care

import (
	"fmt"

	"github.com/verdant/plantcare-api/internal/domain"
)

// Registry resolution errors.
var (
	// ErrNoDefaultStrategy is returned when no registered strategy applies
	// to a plant and no fallback strategy was registered. This is a
	// deployment defect.
	ErrNoDefaultStrategy = fmt.Errorf(
		"%w: no default care strategy registered", domain.ErrConfiguration)
)

// Registry holds the registered care strategies and resolves one per plant:
// the first strategy whose IsApplicable returns true wins, otherwise the
// designated fallback applies.
type Registry struct {
	strategies []Strategy
	fallback   Strategy
}

// NewRegistry creates a registry with the given fallback and candidate
// strategies. Candidates are consulted in registration order.
func NewRegistry(fallback Strategy, strategies ...Strategy) *Registry {
	return &Registry{
		strategies: strategies,
		fallback:   fallback,
	}
}

// NewDefaultRegistry creates the standard registry: succulent and tropical
// strategies with the general strategy as fallback.
func NewDefaultRegistry() *Registry {
	return NewRegistry(
		NewDefaultStrategy(),
		NewSucculentStrategy(),
		NewTropicalStrategy(),
	)
}

// ForPlant resolves the care strategy for a plant. Returns
// ErrNoDefaultStrategy if nothing applies and no fallback is registered.
func (r *Registry) ForPlant(plant *domain.Plant) (Strategy, error) {
	for _, s := range r.strategies {
		if s.IsApplicable(plant) {
			return s, nil
		}
	}
	if r.fallback == nil {
		return nil, ErrNoDefaultStrategy
	}
	return r.fallback, nil
}
