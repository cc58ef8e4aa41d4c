package lib

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

var ErrInvalidDefense = errors.New("defense must be positive")
var ErrInvalidDamage = errors.New("damage is not a finite number")

// RawDamage is attack * ((attackerHP / 10) * (attack / defense)) in floating point.
// defense must be positive.
func RawDamage(attack, attackerHP, defense int) float64 {
	return float64(attack) * ((float64(attackerHP) / 10) * (float64(attack) / float64(defense)))
}

// QuantizeDamage turns a raw value into applied damage: below 0.5 nothing, below 1
// one point, otherwise truncated toward zero.
func QuantizeDamage(raw float64) (int, error) {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0, ErrInvalidDamage
	}
	if raw < 0.5 {
		return 0, nil
	} else if raw < 1 {
		return 1, nil
	}
	return int(raw), nil
}

// Damage computes the damage a strike with the given attack stat and the striker's
// current hp deals to a defender with the given defense.
func Damage(attack, attackerHP, defense int) (int, error) {
	if defense <= 0 {
		return 0, ErrInvalidDefense
	}
	return QuantizeDamage(RawDamage(attack, attackerHP, defense))
}

// DamageRule is the damage formula with a battle's options applied.
type DamageRule struct {
	options Options
	formula *Formula
}

func NewDamageRule(options Options) (*DamageRule, error) {
	r := &DamageRule{options: options}
	if options.DamageFormula != "" {
		formula, err := CompileFormula(options.DamageFormula)
		if err != nil {
			return nil, err
		}
		r.formula = formula
	}
	return r, nil
}

func (r *DamageRule) Damage(attack, attackerHP, defense int) (int, error) {
	if defense <= 0 {
		if r.options.ZeroDefense == RejectDefense {
			return 0, ErrInvalidDefense
		}
		defense = 1
	}
	if r.formula != nil {
		raw, err := r.formula.Eval(attack, attackerHP, defense)
		if err != nil {
			return 0, err
		}
		return QuantizeDamage(raw)
	}
	if r.options.IntegerAttackRatio {
		raw := float64(attack) * ((float64(attackerHP) / 10) * float64(attack/defense))
		return QuantizeDamage(raw)
	}
	return Damage(attack, attackerHP, defense)
}

// Strike applies one blow from attacker to defender and returns the damage dealt.
func (r *DamageRule) Strike(attacker, defender *Unit) (int, error) {
	damage, err := r.Damage(attacker.Attack, attacker.HP, defender.Defense)
	if err != nil {
		return 0, err
	}
	defender.TakeDamage(damage)
	return damage, nil
}

// AttackCommand asks the resolver to play out one exchange: the attacker strikes,
// then the defender counters if it can reach back.
type AttackCommand struct {
	Attacker, Defender UnitID
}

type UnitLookup interface {
	Unit(id UnitID) *Unit
}

type CombatResolver struct {
	rule    *DamageRule
	options Options
	logger  *slog.Logger
}

func NewCombatResolver(options Options, logger *slog.Logger) (*CombatResolver, error) {
	rule, err := NewDamageRule(options)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CombatResolver{rule: rule, options: options, logger: logger}, nil
}

// Resolve plays out cmd. Only the attacker's state ever changes; it becomes spent
// once the defender has countered (or, with SpendWithoutCounter, after any hit).
// An attacker out of range, or an exchange where either blow is rejected, changes
// nothing.
func (r *CombatResolver) Resolve(cmd AttackCommand, units UnitLookup, selection *Selection) ([]Message, error) {
	attacker, defender := units.Unit(cmd.Attacker), units.Unit(cmd.Defender)
	if attacker == nil {
		return nil, fmt.Errorf("Cannot resolve attack by unit %d (%w)", cmd.Attacker, ErrUnknownUnit)
	}
	if defender == nil {
		return nil, fmt.Errorf("Cannot resolve attack on unit %d (%w)", cmd.Defender, ErrUnknownUnit)
	}

	if !attacker.InAttackRange(defender) {
		return []Message{AttackOutOfRange{Attacker: attacker.ID, Defender: defender.ID}}, nil
	}

	// Both blows are computed before either lands so a rejected exchange
	// changes nothing.
	damage, err := r.damage(attacker, attacker.HP, defender)
	if err != nil {
		return nil, err
	}
	counters := defender.InAttackRange(attacker)
	counterDamage := 0
	if counters {
		counterDamage, err = r.damage(defender, defender.HP-damage, attacker)
		if err != nil {
			return nil, err
		}
	}

	defender.TakeDamage(damage)
	r.logger.Debug("unit took damage", "unit", defender.Name, "damage", damage, "hp", defender.HP)
	messages := []Message{UnitAttack{
		Attacker: attacker.ID, Defender: defender.ID, Damage: damage, HP: defender.HP}}

	if !counters {
		if r.options.SpendWithoutCounter {
			messages = append(messages, r.spend(attacker, selection))
		}
		return messages, nil
	}

	attacker.TakeDamage(counterDamage)
	r.logger.Debug("unit took damage", "unit", attacker.Name, "damage", counterDamage, "hp", attacker.HP)
	messages = append(messages, UnitAttack{
		Attacker: defender.ID, Defender: attacker.ID, Damage: counterDamage, HP: attacker.HP, Counter: true})

	messages = append(messages, r.spend(attacker, selection))
	return messages, nil
}

// damage is what striker, at hp, would deal to target.
func (r *CombatResolver) damage(striker *Unit, hp int, target *Unit) (int, error) {
	damage, err := r.rule.Damage(striker.Attack, hp, target.Defense)
	if err != nil {
		r.logger.Warn("strike rejected", "attacker", striker.Name, "defender", target.Name, "defense", target.Defense, "error", err)
		return 0, fmt.Errorf("Cannot strike %s with %s (%w)", target.Name, striker.Name, err)
	}
	return damage, nil
}

func (r *CombatResolver) spend(attacker *Unit, selection *Selection) Message {
	attacker.State = Spent
	selection.Clear()
	return UnitSpent{attacker.ID}
}
