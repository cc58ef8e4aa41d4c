// Package tui hosts a battle in a terminal. Tiles are two cells wide; units are shown
// by the first letter of their name in their side's colour.
package tui

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/pwiecz/tile_tactics/lib"
)

const tileWidth = 2

var traversableColor = tcell.NewRGBColor(0x40, 0x80, 0xff)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

type ScenarioSource func() (*lib.Scenario, error)

// Host owns the battle. Only the goroutine running Run (or calling HandleEvent
// directly) touches it.
type Host struct {
	screen   tcell.Screen
	source   ScenarioSource
	scenario *lib.Scenario
	battle   *lib.Battle
	cursor   lib.GridCoords
	status   []string
	reload   <-chan string
	logger   *slog.Logger

	lastButtons tcell.ButtonMask
}

// New expects an initialized screen.
func New(screen tcell.Screen, source ScenarioSource, logger *slog.Logger) (*Host, error) {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Host{
		screen: screen,
		source: source,
		logger: logger,
	}
	if err := h.load(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	return h, nil
}

func (h *Host) load() error {
	scenario, err := h.source()
	if err != nil {
		return err
	}
	battle, err := scenario.NewBattle(h.logger)
	if err != nil {
		return err
	}
	h.scenario = scenario
	h.battle = battle
	h.cursor = lib.GridCoords{}
	h.status = []string{fmt.Sprintf("%s - TURN %d", scenario.Name, battle.Turn())}
	return nil
}

func (h *Host) Battle() *lib.Battle {
	return h.battle
}
func (h *Host) Cursor() lib.GridCoords {
	return h.cursor
}
func (h *Host) Status() []string {
	return h.status
}

func (h *Host) WatchReloads(events <-chan string) {
	h.reload = events
}

// Run draws the battle and handles input until ctx is done or the user quits.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if quit := h.HandleEvent(ev); quit {
				return nil
			}
		case name, ok := <-h.reload:
			if !ok {
				h.reload = nil
				continue
			}
			if err := h.load(); err != nil {
				h.logger.Error("cannot reload scenario", "file", name, "error", err)
				h.status = []string{"RELOAD FAILED", err.Error()}
			} else {
				h.logger.Info("scenario reloaded", "file", name)
			}
		}
		h.Draw()
	}
}

// HandleEvent applies one terminal event and reports whether the user asked to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && h.lastButtons&tcell.Button1 == 0
		h.lastButtons = buttons
		if !pressed {
			return false
		}
		x, y := ev.Position()
		xy := lib.GridCoords{X: x / tileWidth, Y: y}
		if h.battle.Grid().Contains(xy) {
			h.cursor = xy
			h.activate(xy)
		}
	}
	return false
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	grid := h.battle.Grid()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		h.cursor.Y = lib.Clamp(h.cursor.Y-1, 0, grid.Height-1)
	case tcell.KeyDown:
		h.cursor.Y = lib.Clamp(h.cursor.Y+1, 0, grid.Height-1)
	case tcell.KeyLeft:
		h.cursor.X = lib.Clamp(h.cursor.X-1, 0, grid.Width-1)
	case tcell.KeyRight:
		h.cursor.X = lib.Clamp(h.cursor.X+1, 0, grid.Width-1)
	case tcell.KeyEnter:
		h.activate(h.cursor)
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'q':
			return true
		case ' ':
			h.activate(h.cursor)
		case 'e':
			h.show(h.battle.EndTurn())
		}
	}
	return false
}

func (h *Host) activate(xy lib.GridCoords) {
	messages, err := h.battle.ActivateAt(xy)
	if err != nil {
		h.logger.Warn("activation failed", "tile", xy, "error", err)
		h.status = []string{err.Error()}
		return
	}
	if h.battle.Selected() == nil {
		h.battle.ClearTraversable()
	}
	h.show(messages)
}

func (h *Host) show(messages []lib.Message) {
	if len(messages) == 0 {
		return
	}
	h.status = h.status[:0]
	for _, message := range messages {
		h.status = append(h.status, message.String())
	}
}

func (h *Host) Draw() {
	h.screen.Clear()
	grid := h.battle.Grid()
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			tile := grid.Tile(lib.GridCoords{X: x, Y: y})
			style := tcell.StyleDefault.Background(rgb(tile.Terrain.Color())).Foreground(tcell.ColorBlack)
			if tile.Traversable {
				style = style.Background(traversableColor)
			}
			h.screen.SetContent(x*tileWidth, y, ' ', nil, style)
			h.screen.SetContent(x*tileWidth+1, y, ' ', nil, style)
		}
	}
	for _, unit := range h.battle.Units() {
		h.drawUnit(unit)
	}
	cursorStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	h.screen.SetContent(h.cursor.X*tileWidth+1, h.cursor.Y, '<', nil, cursorStyle)

	for i, line := range h.status {
		h.drawText(0, grid.Height+1+i, line, tcell.StyleDefault)
	}
	h.screen.Show()
}

func (h *Host) drawUnit(unit *lib.Unit) {
	symbol, _ := utf8.DecodeRuneInString(unit.Name)
	if symbol == utf8.RuneError {
		symbol = '@'
	}
	tile := h.battle.Grid().Tile(unit.GridPosition())
	style := tcell.StyleDefault.
		Background(rgb(tile.Terrain.Color())).
		Foreground(rgb(lib.SideColor(unit.Side))).
		Bold(true)
	switch unit.State {
	case lib.Selected:
		style = style.Reverse(true)
	case lib.Spent:
		style = style.Dim(true).Bold(false)
	}
	h.screen.SetContent(unit.X*tileWidth, unit.Y, symbol, nil, style)
}

func (h *Host) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		h.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
