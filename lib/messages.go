package lib

import "fmt"

// Message is an outcome record produced by the battle for hosts to display or react to.
type Message interface {
	String() string
}

// MessageFromUnit is a message concerning one particular unit.
type MessageFromUnit interface {
	Message
	Unit() UnitID
}

type UnitSelected struct {
	unit        UnitID
	Traversable []GridCoords
}

func (m UnitSelected) Unit() UnitID { return m.unit }
func (m UnitSelected) String() string {
	return fmt.Sprintf("UNIT %d SELECTED, %d TILES IN REACH", m.unit, len(m.Traversable))
}

type SelectionCancelled struct {
	unit UnitID
}

func (m SelectionCancelled) Unit() UnitID { return m.unit }
func (m SelectionCancelled) String() string {
	return fmt.Sprintf("UNIT %d STANDS DOWN", m.unit)
}

type AttackOutOfRange struct {
	Attacker, Defender UnitID
}

func (m AttackOutOfRange) Unit() UnitID { return m.Attacker }
func (m AttackOutOfRange) String() string {
	return fmt.Sprintf("UNIT %d IS OUT OF RANGE OF UNIT %d", m.Defender, m.Attacker)
}

type UnitAttack struct {
	Attacker, Defender UnitID
	Damage             int
	// Defender's hp after the strike.
	HP      int
	Counter bool
}

func (m UnitAttack) Unit() UnitID { return m.Attacker }
func (m UnitAttack) String() string {
	verb := "ATTACKS"
	if m.Counter {
		verb = "COUNTERS"
	}
	return fmt.Sprintf("UNIT %d %s UNIT %d FOR %d DAMAGE, HP LEFT %d", m.Attacker, verb, m.Defender, m.Damage, m.HP)
}

type UnitSpent struct {
	unit UnitID
}

func (m UnitSpent) Unit() UnitID { return m.unit }
func (m UnitSpent) String() string {
	return fmt.Sprintf("UNIT %d HAS ATTACKED THIS TURN", m.unit)
}

type TurnEnded struct {
	Turn int
}

func (m TurnEnded) String() string {
	return fmt.Sprintf("TURN %d BEGINS", m.Turn+1)
}
