package lib

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	ErrUnknownUnit = errors.New("unknown unit")
	ErrOccupied    = errors.New("tile already occupied")
	ErrOutOfBounds = errors.New("outside of the grid")
)

// Battle owns the grid, the units and the selection slot. All calls must come from one
// goroutine at a time; hosts serialize input before calling in.
type Battle struct {
	grid      *Grid
	units     []*Unit // units[id-1]
	selection Selection
	options   Options
	resolver  *CombatResolver
	turn      int

	logger *slog.Logger
}

// NewBattle places units on the grid in order, assigning ids from 1. Each placed unit
// receives its tile's stat modifiers.
func NewBattle(grid *Grid, units []Unit, options Options, logger *slog.Logger) (*Battle, error) {
	if logger == nil {
		logger = slog.Default()
	}
	resolver, err := NewCombatResolver(options, logger)
	if err != nil {
		return nil, err
	}
	b := &Battle{
		grid:     grid,
		options:  options,
		resolver: resolver,
		turn:     1,
		logger:   logger,
	}
	for _, unit := range units {
		if _, err := b.place(unit); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Battle) place(unit Unit) (UnitID, error) {
	tile := b.grid.Tile(unit.GridPosition())
	if tile == nil {
		return 0, fmt.Errorf("Cannot place %s at %v (%w)", unit.Name, unit.GridPosition(), ErrOutOfBounds)
	}
	if tile.IsOccupied() {
		return 0, fmt.Errorf("Cannot place %s at %v (%w)", unit.Name, unit.GridPosition(), ErrOccupied)
	}
	u := unit
	u.ID = UnitID(len(b.units) + 1)
	u.State = Idle
	b.units = append(b.units, &u)
	tile.Occupant = u.ID
	u.IncreaseStats(tile.Terrain.Attack, tile.Terrain.Defense)
	return u.ID, nil
}

func (b *Battle) Grid() *Grid {
	return b.grid
}
func (b *Battle) Options() Options {
	return b.options
}
func (b *Battle) Turn() int {
	return b.turn
}

// Unit returns nil for unknown or removed units.
func (b *Battle) Unit(id UnitID) *Unit {
	if !InRange(int(id), 1, len(b.units)+1) {
		return nil
	}
	return b.units[id-1]
}

// Units lists the units still on the board in id order.
func (b *Battle) Units() []*Unit {
	res := make([]*Unit, 0, len(b.units))
	for _, unit := range b.units {
		if unit != nil {
			res = append(res, unit)
		}
	}
	return res
}

func (b *Battle) Selected() *Unit {
	if id, ok := b.selection.Get(); ok {
		return b.Unit(id)
	}
	return nil
}

func (b *Battle) ClearTraversable() {
	b.grid.ClearTraversable()
}

// Activate handles one "unit was clicked" event.
//
//   - an idle unit with nothing selected becomes the selection and its reachable tiles get marked;
//   - any unit other than the selection is attacked by the selected unit;
//   - the selected unit is deselected (traversable marks are left for the host to clear).
func (b *Battle) Activate(id UnitID) ([]Message, error) {
	unit := b.Unit(id)
	if unit == nil {
		return nil, fmt.Errorf("Cannot activate unit %d (%w)", id, ErrUnknownUnit)
	}
	selectedID, slotFilled := b.selection.Get()
	action := decideActivation(unit.State, slotFilled, b.selection.Holds(id))
	if action == AttackUnit && !b.options.FriendlyFire {
		if attacker := b.Unit(selectedID); attacker != nil && attacker.Side == unit.Side {
			action = NoActivation
		}
	}
	b.logger.Debug("unit activated", "unit", unit.Name, "state", unit.State, "action", action)

	switch action {
	case SelectUnit:
		unit.State = Selected
		b.selection.Set(id)
		traversable := FindTraversableTiles(b.grid, unit.GridPosition(), unit.Movement)
		return []Message{UnitSelected{unit: id, Traversable: traversable}}, nil
	case AttackUnit:
		return b.resolve(AttackCommand{Attacker: selectedID, Defender: id})
	case DeselectUnit:
		unit.State = Idle
		b.selection.Clear()
		return []Message{SelectionCancelled{unit: id}}, nil
	}
	return nil, nil
}

// ActivateAt activates the unit standing on xy, if any.
func (b *Battle) ActivateAt(xy GridCoords) ([]Message, error) {
	tile := b.grid.Tile(xy)
	if tile == nil || !tile.IsOccupied() {
		return nil, nil
	}
	return b.Activate(tile.Occupant)
}

func (b *Battle) resolve(cmd AttackCommand) ([]Message, error) {
	return b.resolver.Resolve(cmd, b, &b.selection)
}

// EndTurn makes every spent unit idle again, drops the selection and clears the
// traversable marks.
func (b *Battle) EndTurn() []Message {
	if selected := b.Selected(); selected != nil {
		selected.State = Idle
	}
	b.selection.Clear()
	for _, unit := range b.units {
		if unit != nil && unit.State == Spent {
			unit.State = Idle
		}
	}
	b.grid.ClearTraversable()
	ended := b.turn
	b.turn++
	b.logger.Info("turn ended", "turn", ended)
	return []Message{TurnEnded{Turn: ended}}
}

// Remove takes a unit off the board, undoing its tile's stat modifiers.
func (b *Battle) Remove(id UnitID) error {
	unit := b.Unit(id)
	if unit == nil {
		return fmt.Errorf("Cannot remove unit %d (%w)", id, ErrUnknownUnit)
	}
	if tile := b.grid.Tile(unit.GridPosition()); tile != nil && tile.Occupant == id {
		tile.Occupant = 0
		unit.DecreaseStats(tile.Terrain.Attack, tile.Terrain.Defense)
	}
	if b.selection.Holds(id) {
		b.selection.Clear()
	}
	b.units[id-1] = nil
	return nil
}
