package domain

// ActionType identifies a kind of plant care action. It is used both for
// reminders ("water this plant on Monday") and for care events ("this plant
// was watered on Monday").
type ActionType string

// Possible action type values.
const (
	ActionWatering      ActionType = "watering"
	ActionFertilizing   ActionType = "fertilizing"
	ActionRepotting     ActionType = "repotting"
	ActionPruning       ActionType = "pruning"
	ActionPestTreatment ActionType = "pest_treatment"
	ActionCleaning      ActionType = "cleaning"
	ActionMisting       ActionType = "misting"
	ActionRotating      ActionType = "rotating"
	ActionInspection    ActionType = "inspection"
	ActionCustom        ActionType = "custom"
	ActionNote          ActionType = "note"
)

// actionableTypes lists the action types that care strategies schedule,
// in the order the reminder generator walks them. Custom and Note are
// free-form and never scheduled automatically.
var actionableTypes = []ActionType{
	ActionWatering,
	ActionFertilizing,
	ActionRepotting,
	ActionPruning,
	ActionPestTreatment,
	ActionCleaning,
	ActionMisting,
	ActionRotating,
	ActionInspection,
}

// ActionableTypes returns the action types that participate in automatic
// reminder generation, in generation order. The returned slice is a copy.
func ActionableTypes() []ActionType {
	out := make([]ActionType, len(actionableTypes))
	copy(out, actionableTypes)
	return out
}

// Valid reports whether the action type is one of the known values.
func (a ActionType) Valid() bool {
	switch a {
	case ActionWatering, ActionFertilizing, ActionRepotting, ActionPruning,
		ActionPestTreatment, ActionCleaning, ActionMisting, ActionRotating,
		ActionInspection, ActionCustom, ActionNote:
		return true
	default:
		return false
	}
}

// Actionable reports whether the action type is scheduled by care strategies.
func (a ActionType) Actionable() bool {
	return a.Valid() && a != ActionCustom && a != ActionNote
}
