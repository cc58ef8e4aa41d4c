package lib

import "fmt"

// UnitID identifies a unit within a battle. The zero value means "no unit".
type UnitID int

func (id UnitID) Valid() bool {
	return id > 0
}

type UnitState int

func (s UnitState) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case Selected:
		return "SELECTED"
	case Spent:
		return "SPENT"
	default:
		return fmt.Sprintf("UnitState(%d)", int(s))
	}
}

const (
	// Turn available, not selected.
	Idle UnitState = 0
	// Held by the battle's selection slot.
	Selected UnitState = 1
	// Attacked this turn. Can still be attacked, cannot act again until the turn ends.
	Spent UnitState = 2
)

const (
	DefaultMovement = 2
	DefaultRange    = 1
	DefaultAttack   = 2
	DefaultDefense  = 1
	DefaultHP       = 10
)

type Unit struct {
	ID   UnitID
	Name string
	Side int
	X, Y int

	Movement int // tiles
	Range    int // grid distance
	Attack   int
	Defense  int
	HP       int // not clamped, may go negative

	State UnitState
}

// NewUnit returns a unit at xy with the default stats.
func NewUnit(name string, xy GridCoords) Unit {
	return Unit{
		Name:     name,
		X:        xy.X,
		Y:        xy.Y,
		Movement: DefaultMovement,
		Range:    DefaultRange,
		Attack:   DefaultAttack,
		Defense:  DefaultDefense,
		HP:       DefaultHP,
	}
}

func (u *Unit) GridPosition() GridCoords {
	return GridCoords{u.X, u.Y}
}
func (u *Unit) IsSelected() bool {
	return u.State == Selected
}
func (u *Unit) HasAttacked() bool {
	return u.State == Spent
}

// IncreaseStats is called when the unit enters a tile, with the tile's modifiers.
// It must be paired with DecreaseStats when the unit leaves.
func (u *Unit) IncreaseStats(attackMod, defenseMod int) {
	u.Attack += attackMod
	u.Defense += defenseMod
}

func (u *Unit) DecreaseStats(attackMod, defenseMod int) {
	u.Attack -= attackMod
	u.Defense -= defenseMod
}

// InAttackRange ignores terrain: it is the plain distance between grid positions.
func (u *Unit) InAttackRange(target *Unit) bool {
	return u.GridPosition().Distance(target.GridPosition()) <= float64(u.Range)
}

func (u *Unit) TakeDamage(damage int) {
	u.HP -= damage
}

func (u Unit) String() string {
	return fmt.Sprintf("%s %v hp:%d %v", u.Name, u.GridPosition(), u.HP, u.State)
}
