package scenarios

import (
	"io/fs"
	"testing"

	"github.com/pwiecz/tile_tactics/lib"
)

func TestEmbeddedScenariosLoad(t *testing.T) {
	names, err := fs.Glob(FS, "*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if len(names) == 0 {
		t.Fatal("No embedded scenarios")
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			scenario, err := lib.LoadScenario(FS, name)
			if err != nil {
				t.Fatal(err)
			}
			battle, err := scenario.NewBattle(nil)
			if err != nil {
				t.Fatal(err)
			}
			if len(battle.Units()) != len(scenario.Units) {
				t.Errorf("Expecting %d units, got %d", len(scenario.Units), len(battle.Units()))
			}
		})
	}
}

func TestDefaultScenarioExists(t *testing.T) {
	if _, err := fs.Stat(FS, Default); err != nil {
		t.Errorf("Default scenario %s is missing (%v)", Default, err)
	}
}

func TestDuelFormula(t *testing.T) {
	scenario, err := lib.LoadScenario(FS, "duel.yaml")
	if err != nil {
		t.Fatal(err)
	}
	battle, err := scenario.NewBattle(nil)
	if err != nil {
		t.Fatal(err)
	}
	battle.Activate(1)
	if _, err := battle.Activate(2); err != nil {
		t.Fatal(err)
	}
	// attack * hp / 10 = 2, then the counter with 8 hp = 1.6
	if red, blue := battle.Unit(1), battle.Unit(2); blue.HP != 8 || red.HP != 9 {
		t.Errorf("Expecting hp 9 and 8, got %d and %d", red.HP, blue.HP)
	}
}
