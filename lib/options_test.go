package lib

import "testing"

func TestDefaultOptions(t *testing.T) {
	options := DefaultOptions()
	if options.ZeroDefense != ClampDefense || options.SpendWithoutCounter || !options.FriendlyFire || options.IntegerAttackRatio || options.DamageFormula != "" {
		t.Errorf("Unexpected default options %+v", options)
	}
}

func TestZeroDefensePolicyText(t *testing.T) {
	for _, policy := range []ZeroDefensePolicy{ClampDefense, RejectDefense} {
		text, err := policy.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var decoded ZeroDefensePolicy
		if err := decoded.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if decoded != policy {
			t.Errorf("Expecting %v, got %v", policy, decoded)
		}
	}
	var policy ZeroDefensePolicy
	if err := policy.UnmarshalText([]byte("ignore")); err == nil {
		t.Errorf("Expecting unknown policy to be rejected")
	}
}
