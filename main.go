package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"cagebreak/pkg/engine/rng"
	"cagebreak/pkg/engine/terminal"
	"cagebreak/pkg/game/devtools"
	"cagebreak/pkg/game/generator"
	"cagebreak/pkg/game/palette"
	"cagebreak/pkg/game/renderer"
	"cagebreak/pkg/game/renderer/console"
	"cagebreak/pkg/game/renderer/ebiten"
	"cagebreak/pkg/game/renderer/tui"
)

type options struct {
	difficulty int
	seed       int64
	view       string
	out        string
	lang       string
	locales    string
	offset     int
	showcase   bool
	debug      bool
}

func parseFlags() options {
	var o options
	flag.IntVar(&o.difficulty, "difficulty", 1, "difficulty index (1-based)")
	flag.Int64Var(&o.seed, "seed", 0, "random seed, 0 picks one from the clock")
	flag.StringVar(&o.view, "view", "tui", "output: tui, console, window, dump or html")
	flag.StringVar(&o.out, "out", "", "output file for dump and html views")
	flag.StringVar(&o.lang, "lang", "en_GB", "locale for labels")
	flag.StringVar(&o.locales, "locales", "locales", "directory holding the locale catalogs")
	flag.IntVar(&o.offset, "offset", 0, "first column shown by the tui view")
	flag.BoolVar(&o.showcase, "showcase", false, "show the built-in showcase level instead of generating one")
	flag.BoolVar(&o.debug, "debug", false, "log every generation stage")
	flag.Parse()
	return o
}

func initLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func initLocale(dir, lang string) {
	gotext.Configure(dir, lang, "default")
}

func main() {
	o := parseFlags()
	logger := initLogger(o.debug)
	initLocale(o.locales, o.lang)

	if o.seed == 0 {
		o.seed = time.Now().UnixNano()
	}
	logger.Info("starting", "difficulty", o.difficulty, "seed", o.seed, "view", o.view)

	gen := generator.New(rng.Seeded(o.seed), logger)
	generate := func(d int) *generator.Level {
		lvl := gen.Generate(d)
		if problem := lvl.Validate(); problem != "" {
			logger.Warn("level failed validation", "difficulty", d, "problem", problem)
		}
		palette.Shade(lvl.Grid, lvl.Biome, o.seed)
		return lvl
	}

	var lvl *generator.Level
	if o.showcase {
		lvl = devtools.ShowcaseLevel()
		palette.Shade(lvl.Grid, lvl.Biome, o.seed)
	} else {
		lvl = generate(o.difficulty)
	}

	if err := run(o, lvl, generate, logger); err != nil {
		logger.Error("view failed", "view", o.view, "error", err)
		os.Exit(1)
	}
}

// run hands the level to the viewer selected by -view
func run(o options, lvl *generator.Level, generate func(int) *generator.Level, logger *slog.Logger) error {
	switch o.view {
	case "dump":
		path, err := devtools.DumpLevelToFile(lvl, o.seed, o.out)
		if err != nil {
			return err
		}
		logger.Info("level dumped", "path", path)
		return nil
	case "html":
		path, err := devtools.SaveLevelHTML(lvl, o.out)
		if err != nil {
			return err
		}
		logger.Info("level saved", "path", path)
		return nil
	case "window":
		renderer.SetViewer(ebiten.New(generate, o.seed, logger))
	case "console":
		if !terminal.IsInteractive() {
			logger.Warn("stdout is not a terminal, falling back to tui")
			return runTUI(o, lvl)
		}
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("open screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("init screen: %w", err)
		}
		defer screen.Fini()
		renderer.SetViewer(console.New(screen, generate, logger))
	case "tui":
		return runTUI(o, lvl)
	default:
		return fmt.Errorf("unknown view %q", o.view)
	}
	return renderer.Show(lvl)
}

func runTUI(o options, lvl *generator.Level) error {
	color.Enable = terminal.IsInteractive()
	t := tui.New()
	t.Offset = o.offset
	renderer.SetViewer(t)
	return renderer.Show(lvl)
}
