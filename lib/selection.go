package lib

import "fmt"

// Selection is the single "currently selected unit" slot shared by all units of a battle.
type Selection struct {
	unit UnitID
}

func (s *Selection) Get() (UnitID, bool) {
	return s.unit, s.unit.Valid()
}
func (s *Selection) Set(id UnitID) {
	s.unit = id
}
func (s *Selection) Clear() {
	s.unit = 0
}
func (s *Selection) Holds(id UnitID) bool {
	return s.unit.Valid() && s.unit == id
}

type Activation int

func (a Activation) String() string {
	switch a {
	case NoActivation:
		return "NONE"
	case SelectUnit:
		return "SELECT"
	case AttackUnit:
		return "ATTACK"
	case DeselectUnit:
		return "DESELECT"
	}
	panic(fmt.Errorf("Unknown activation: %d", int(a)))
}

const (
	NoActivation Activation = 0
	SelectUnit   Activation = 1
	AttackUnit   Activation = 2
	DeselectUnit Activation = 3
)

// decideActivation maps the clicked unit's state and the selection slot to an action.
// It does not touch any state.
func decideActivation(clicked UnitState, slotFilled, slotHoldsClicked bool) Activation {
	switch {
	case clicked == Idle && !slotFilled:
		return SelectUnit
	case clicked != Selected && slotFilled && !slotHoldsClicked:
		return AttackUnit
	case clicked == Selected:
		return DeselectUnit
	}
	return NoActivation
}
