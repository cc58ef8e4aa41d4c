package lib

import (
	"errors"
	"math"
	"testing"
)

func TestDamage(t *testing.T) {
	for _, tc := range []struct {
		attack, hp, defense int
		expected            int
	}{
		{4, 10, 2, 8},
		{2, 10, 1, 4},
		{2, 6, 1, 2},  // 2.4
		{1, 10, 2, 1}, // 0.5
		{1, 8, 2, 0},  // 0.4
		{2, 0, 1, 0},
		{2, -5, 1, 0},
	} {
		damage, err := Damage(tc.attack, tc.hp, tc.defense)
		if err != nil {
			t.Errorf("Damage(%d, %d, %d): unexpected error %v", tc.attack, tc.hp, tc.defense, err)
			continue
		}
		if damage != tc.expected {
			t.Errorf("Damage(%d, %d, %d): expecting %d, got %d", tc.attack, tc.hp, tc.defense, tc.expected, damage)
		}
	}
}

func TestQuantizeDamage(t *testing.T) {
	for _, tc := range []struct {
		raw      float64
		expected int
	}{
		{0, 0},
		{0.4, 0},
		{0.4999, 0},
		{0.5, 1},
		{0.99, 1},
		{1, 1},
		{1.2, 1},
		{7.9, 7},
		{-3, 0},
	} {
		damage, err := QuantizeDamage(tc.raw)
		if err != nil {
			t.Errorf("QuantizeDamage(%v): unexpected error %v", tc.raw, err)
		}
		if damage != tc.expected {
			t.Errorf("QuantizeDamage(%v): expecting %d, got %d", tc.raw, tc.expected, damage)
		}
	}
	for _, raw := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := QuantizeDamage(raw); !errors.Is(err, ErrInvalidDamage) {
			t.Errorf("QuantizeDamage(%v): expecting ErrInvalidDamage, got %v", raw, err)
		}
	}
}

func TestDamageZeroDefense(t *testing.T) {
	if _, err := Damage(2, 10, 0); !errors.Is(err, ErrInvalidDefense) {
		t.Errorf("Expecting ErrInvalidDefense, got %v", err)
	}

	clamp, err := NewDamageRule(DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	for _, defense := range []int{0, -1} {
		damage, err := clamp.Damage(2, 10, defense)
		if err != nil {
			t.Errorf("Unexpected error %v", err)
		}
		if damage != 4 {
			t.Errorf("Expecting defense %d to count as 1 and deal 4 damage, got %d", defense, damage)
		}
	}

	options := DefaultOptions()
	options.ZeroDefense = RejectDefense
	reject, err := NewDamageRule(options)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := reject.Damage(2, 10, 0); !errors.Is(err, ErrInvalidDefense) {
		t.Errorf("Expecting ErrInvalidDefense, got %v", err)
	}
}

func TestIntegerAttackRatio(t *testing.T) {
	float, err := NewDamageRule(DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	options := DefaultOptions()
	options.IntegerAttackRatio = true
	integer, err := NewDamageRule(options)
	if err != nil {
		t.Fatal(err)
	}
	if damage, _ := float.Damage(3, 10, 2); damage != 4 {
		t.Errorf("Expecting 4 damage (4.5), got %d", damage)
	}
	if damage, _ := integer.Damage(3, 10, 2); damage != 3 {
		t.Errorf("Expecting 3 damage with integer ratio, got %d", damage)
	}
	if damage, _ := integer.Damage(1, 10, 2); damage != 0 {
		t.Errorf("Expecting ratio 1/2 to truncate to 0, got %d", damage)
	}
}

func TestDamageFormula(t *testing.T) {
	options := DefaultOptions()
	options.DamageFormula = "attack * hp / 10"
	rule, err := NewDamageRule(options)
	if err != nil {
		t.Fatal(err)
	}
	if damage, _ := rule.Damage(4, 10, 2); damage != 4 {
		t.Errorf("Expecting 4 damage, got %d", damage)
	}
	if damage, _ := rule.Damage(1, 7, 2); damage != 1 {
		t.Errorf("Expecting 0.7 to quantize to 1, got %d", damage)
	}

	for _, source := range []string{"attack +", "speed * 2"} {
		options.DamageFormula = source
		if _, err := NewDamageRule(options); err == nil {
			t.Errorf("Expecting formula %q to be rejected", source)
		}
	}
}

func TestFormulaDivisionByZero(t *testing.T) {
	formula, err := CompileFormula("attack / (defense - 1)")
	if err != nil {
		t.Fatal(err)
	}
	raw, err := formula.Eval(2, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := QuantizeDamage(raw); !errors.Is(err, ErrInvalidDamage) {
		t.Errorf("Expecting ErrInvalidDamage for %v, got %v", raw, err)
	}
}

func TestStrike(t *testing.T) {
	rule, err := NewDamageRule(DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	attacker := NewUnit("a", GridCoords{0, 0})
	attacker.Attack = 4
	defender := NewUnit("d", GridCoords{1, 0})
	defender.Defense = 2
	damage, err := rule.Strike(&attacker, &defender)
	if err != nil {
		t.Fatal(err)
	}
	if damage != 8 || defender.HP != 2 {
		t.Errorf("Expecting 8 damage leaving 2 hp, got %d damage and %d hp", damage, defender.HP)
	}
	rule.Strike(&attacker, &defender)
	if defender.HP != -6 {
		t.Errorf("Expecting hp to go negative (-6), got %d", defender.HP)
	}
}
