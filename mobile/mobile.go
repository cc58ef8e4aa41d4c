package mobile

import (
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/pwiecz/tile_tactics/lib"
	"github.com/pwiecz/tile_tactics/scenarios"
	"github.com/pwiecz/tile_tactics/ui"
)

func init() {
	game, err := ui.NewGame(func() (*lib.Scenario, error) {
		return lib.LoadScenario(scenarios.FS, scenarios.Default)
	}, nil)
	if err != nil {
		panic(err)
	}
	mobile.SetGame(game)
}

// Dummy is a dummy exported function.
//
// gomobile doesn't compile a package that doesn't include any exported function.
// Dummy forces gomobile to compile this package.
func Dummy() {}
