package lib

import "testing"

func TestDecideActivation(t *testing.T) {
	for _, tc := range []struct {
		clicked          UnitState
		slotFilled       bool
		slotHoldsClicked bool
		expected         Activation
	}{
		{Idle, false, false, SelectUnit},
		{Idle, true, false, AttackUnit},
		{Spent, true, false, AttackUnit},
		{Selected, true, true, DeselectUnit},
		{Spent, false, false, NoActivation},
		// A selected unit not held by the slot cannot happen; it is deselected anyway.
		{Selected, true, false, DeselectUnit},
	} {
		if action := decideActivation(tc.clicked, tc.slotFilled, tc.slotHoldsClicked); action != tc.expected {
			t.Errorf("decideActivation(%v, %v, %v): expecting %v, got %v",
				tc.clicked, tc.slotFilled, tc.slotHoldsClicked, tc.expected, action)
		}
	}
}

func TestSelection(t *testing.T) {
	var selection Selection
	if _, ok := selection.Get(); ok {
		t.Errorf("Expecting an empty slot")
	}
	selection.Set(3)
	if id, ok := selection.Get(); !ok || id != 3 {
		t.Errorf("Expecting unit 3, got %d", id)
	}
	if !selection.Holds(3) || selection.Holds(2) {
		t.Errorf("Expecting the slot to hold only unit 3")
	}
	selection.Clear()
	if selection.Holds(0) {
		t.Errorf("Expecting an empty slot not to hold unit 0")
	}
}

func TestActivationString(t *testing.T) {
	if AttackUnit.String() != "ATTACK" {
		t.Errorf("Expecting ATTACK, got %s", AttackUnit.String())
	}
	defer func() {
		if recover() == nil {
			t.Errorf("Expecting unknown activation to panic")
		}
	}()
	_ = Activation(42).String()
}
