package lib

import "fmt"

// ZeroDefensePolicy decides what a strike does against a defender whose defense is
// zero or negative, where the damage formula would divide by zero.
type ZeroDefensePolicy int

func (p ZeroDefensePolicy) String() string {
	switch p {
	case ClampDefense:
		return "clamp"
	case RejectDefense:
		return "reject"
	}
	panic(fmt.Errorf("Unknown zero defense policy: %d", int(p)))
}

func (p ZeroDefensePolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *ZeroDefensePolicy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "clamp":
		*p = ClampDefense
	case "reject":
		*p = RejectDefense
	default:
		return fmt.Errorf("Unknown zero defense policy: \"%s\"", string(text))
	}
	return nil
}

const (
	// Defense below 1 counts as 1.
	ClampDefense ZeroDefensePolicy = 0
	// The strike fails with ErrInvalidDefense.
	RejectDefense ZeroDefensePolicy = 1
)

type Options struct {
	ZeroDefense ZeroDefensePolicy `yaml:"zero_defense"`
	// Mark the attacker spent even when the defender could not counter.
	SpendWithoutCounter bool `yaml:"spend_without_counter"`
	// Allow attacking units of the attacker's own side.
	FriendlyFire bool `yaml:"friendly_fire"`
	// Divide attack by defense in integers before the float formula, as the first
	// version of the rules did.
	IntegerAttackRatio bool `yaml:"integer_attack_ratio"`
	// Optional expression over attack, hp and defense replacing the damage formula.
	DamageFormula string `yaml:"damage_formula"`
}

func DefaultOptions() Options {
	return Options{
		ZeroDefense:         ClampDefense,
		SpendWithoutCounter: false,
		FriendlyFire:        true,
		IntegerAttackRatio:  false,
	}
}
