package ui

import (
	"fmt"
	"log/slog"

	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pwiecz/tile_tactics/lib"
)

const statusHeight = 40
const endTurnWidth = 64

// ScenarioSource returns a freshly loaded scenario. It is called once by NewGame and
// again on every reload.
type ScenarioSource func() (*lib.Scenario, error)

// Game is the ebiten host of a battle. Clicking a unit activates it, E or the button ends the turn
// and Escape cancels the selection.
type Game struct {
	source   ScenarioSource
	scenario *lib.Scenario
	battle   *lib.Battle
	board    *BoardView
	endTurn  *Button
	status   []string
	reload   <-chan string
	logger   *slog.Logger

	otoContext  *oto.Context
	audioPlayer *AudioPlayer

	pressedTouchIDs []ebiten.TouchID // store it here to avoid reallocating it for each Update
}

var _ ebiten.Game = (*Game)(nil)

func NewGame(source ScenarioSource, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Game{
		source:  source,
		board:   NewBoardView(0, 0),
		endTurn: NewButton("END TURN", 0, 0, endTurnWidth, 20),
		logger:  logger,
	}
	if err := g.load(); err != nil {
		return nil, err
	}
	return g, nil
}

// WatchReloads makes the game reload its scenario whenever a name arrives on events.
func (g *Game) WatchReloads(events <-chan string) {
	g.reload = events
}

func (g *Game) load() error {
	scenario, err := g.source()
	if err != nil {
		return err
	}
	battle, err := scenario.NewBattle(g.logger)
	if err != nil {
		return err
	}
	g.scenario = scenario
	g.battle = battle
	g.status = []string{fmt.Sprintf("%s - TURN %d", scenario.Name, battle.Turn())}
	width, height := g.Layout(0, 0)
	g.endTurn.SetPosition(width-endTurnWidth-2, height-statusHeight+2)
	ebiten.SetWindowTitle(scenario.Name)
	return nil
}

func (g *Game) Battle() *lib.Battle {
	return g.battle
}

func (g *Game) Update() error {
	if g.otoContext == nil {
		var err error
		var ready chan struct{}
		opts := &oto.NewContextOptions{}
		opts.SampleRate = 44100
		opts.ChannelCount = 2
		opts.Format = oto.FormatUnsignedInt8
		g.otoContext, ready, err = oto.NewContext(opts)
		if err != nil {
			return fmt.Errorf("cannot create Oto context (%v)", err)
		}
		<-ready
		g.audioPlayer = NewAudioPlayer(g.otoContext)
	}
	g.checkReload()

	if inpututil.IsKeyJustPressed(ebiten.KeyE) || g.endTurn.Update() {
		g.show(g.battle.EndTurn())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if selected := g.battle.Selected(); selected != nil {
			g.activate(selected.GridPosition())
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.click(ebiten.CursorPosition())
	}
	g.pressedTouchIDs = inpututil.AppendJustPressedTouchIDs(g.pressedTouchIDs[:0])
	if len(g.pressedTouchIDs) > 0 {
		g.click(ebiten.TouchPosition(g.pressedTouchIDs[0]))
	}
	return nil
}

func (g *Game) checkReload() {
	if g.reload == nil {
		return
	}
	select {
	case name, ok := <-g.reload:
		if !ok {
			g.reload = nil
			return
		}
		if err := g.load(); err != nil {
			g.logger.Error("cannot reload scenario", "file", name, "error", err)
			g.status = []string{"RELOAD FAILED", err.Error()}
			return
		}
		if g.audioPlayer != nil {
			g.audioPlayer.Silence()
		}
		g.logger.Info("scenario reloaded", "file", name)
	default:
	}
}

func (g *Game) click(x, y int) {
	xy, ok := g.board.ScreenToGrid(g.battle.Grid(), x, y)
	if !ok {
		return
	}
	g.activate(xy)
}

func (g *Game) activate(xy lib.GridCoords) {
	messages, err := g.battle.ActivateAt(xy)
	if err != nil {
		g.logger.Warn("activation failed", "tile", xy, "error", err)
		g.status = []string{err.Error()}
		return
	}
	// Marks belong to the selection; once the slot empties they are stale.
	if g.battle.Selected() == nil {
		g.battle.ClearTraversable()
	}
	g.show(messages)
}

func (g *Game) show(messages []lib.Message) {
	if len(messages) == 0 {
		return
	}
	g.status = g.status[:0]
	for _, message := range messages {
		g.status = append(g.status, message.String())
		if attack, ok := message.(lib.UnitAttack); ok {
			g.playHit(attack)
		}
	}
}

func (g *Game) playHit(attack lib.UnitAttack) {
	if g.audioPlayer == nil {
		return
	}
	g.audioPlayer.PlayBlow(attack)
}

// Close stops the audio output. The game must not be updated afterwards.
func (g *Game) Close() {
	if g.audioPlayer != nil {
		g.audioPlayer.Close()
		g.audioPlayer = nil
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.board.Draw(screen, g.battle)
	_, boardHeight := g.board.Size(g.battle.Grid())
	for i, line := range g.status {
		if i >= statusHeight/12 {
			break
		}
		ebitenutil.DebugPrintAt(screen, line, 2, boardHeight+2+i*12)
	}
	g.endTurn.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	width, height := g.board.Size(g.battle.Grid())
	return lib.Max(width, 400), height + statusHeight
}
