package main

import (
	"context"
	"flag"
	"io"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/pprof"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pwiecz/tile_tactics/lib"
	"github.com/pwiecz/tile_tactics/scenarios"
	"github.com/pwiecz/tile_tactics/tui"
	"github.com/pwiecz/tile_tactics/ui"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var scenarioFile = flag.String("scenario", "", "scenario file to play. If not specified, the built-in "+scenarios.Default+" is used")
var useTerminal = flag.Bool("tui", false, "play in the terminal instead of a window")
var watch = flag.Bool("watch", false, "reload the scenario whenever its file changes")
var logLevel = flag.String("log-level", "info", "one of debug, info, warn, error")
var logFile = flag.String("log-file", "", "write logs to file instead of stderr")

func main() {
	flag.Parse()
	if len(flag.Args()) != 0 {
		log.Fatalf("Usage: %s [flags]\n", os.Args[0])
	}

	logger, closeLog := newLogger()
	defer closeLog()
	slog.SetDefault(logger)

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	var fsys fs.FS = scenarios.FS
	name := scenarios.Default
	if *scenarioFile != "" {
		fsys = os.DirFS(filepath.Dir(*scenarioFile))
		name = filepath.Base(*scenarioFile)
	}
	source := func() (*lib.Scenario, error) {
		return lib.LoadScenario(fsys, name)
	}

	var reloads <-chan string
	if *watch {
		if *scenarioFile == "" {
			log.Fatalf("-watch needs -scenario")
		}
		watcher, err := scenarios.NewWatcher(filepath.Dir(*scenarioFile))
		if err != nil {
			log.Fatalf("Cannot watch %s (%v)", *scenarioFile, err)
		}
		defer watcher.Close()
		reloads = watcher.Only(filepath.Base(*scenarioFile), logger)
	}

	if *useTerminal {
		runTerminal(source, reloads, logger)
		return
	}

	game, err := ui.NewGame(source, logger)
	if err != nil {
		log.Fatalf("Cannot start the game (%v)", err)
	}
	if reloads != nil {
		game.WatchReloads(reloads)
	}
	ebiten.SetWindowSize(960, 720)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err = ebiten.RunGame(game)
	game.Close()
	if err != nil {
		log.Fatal(err)
	}
}

func runTerminal(source tui.ScenarioSource, reloads <-chan string, logger *slog.Logger) {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Cannot create terminal screen (%v)", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Cannot initialize terminal screen (%v)", err)
	}
	defer screen.Fini()

	host, err := tui.New(screen, source, logger)
	if err != nil {
		screen.Fini()
		log.Fatalf("Cannot start the game (%v)", err)
	}
	if reloads != nil {
		host.WatchReloads(reloads)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := host.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("terminal host stopped", "error", err)
	}
}

func newLogger() (*slog.Logger, func()) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		log.Fatalf("Invalid log level %s (%v)", *logLevel, err)
	}
	out := os.Stderr
	closeLog := func() {}
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Cannot open log file %s (%v)", *logFile, err)
		}
		out = f
		closeLog = func() { f.Close() }
	} else if *useTerminal {
		// Logs would garble the terminal screen.
		return slog.New(slog.NewTextHandler(io.Discard, nil)), closeLog
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})), closeLog
}
