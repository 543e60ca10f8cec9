package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/leonelquinteros/gotext"

	"castlequest/pkg/engine/terminal"
	"castlequest/pkg/game/gameplay"
	"castlequest/pkg/game/renderer"
	ebitenrenderer "castlequest/pkg/game/renderer/ebiten"
	"castlequest/pkg/game/renderer/tui"
)

func initGettext(localesDir, locale string) {
	gotext.Configure(localesDir, locale, "default")
}

// openOperatorLog returns the writer for operator log lines
func openOperatorLog(path string) io.Writer {
	if path == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatalf("Cannot open log file %s: %v", path, err)
	}
	return f
}

func main() {
	defaultRenderer := "ebiten"
	if terminal.IsInteractive() {
		defaultRenderer = "tui"
	}

	rendererName := flag.String("renderer", defaultRenderer, "renderer to use: tui or ebiten")
	locale := flag.String("locale", "en_GB", "message locale")
	localesDir := flag.String("locales", "locales", "directory holding <locale>/default.po catalogs")
	seed := flag.Int64("seed", 0, "random seed for the balloon game (0 = time-based)")
	logPath := flag.String("log", "", "append operator log lines to this file (default: stderr, or "+terminal.DefaultLogFile+" with the tui renderer)")
	flag.Parse()

	initGettext(*localesDir, *locale)

	logger := log.New(openOperatorLog(terminal.LogPath(*logPath, *rendererName == "tui")), "", log.LstdFlags)
	log.SetOutput(logger.Writer())

	g := gameplay.BuildGame(gameplay.Config{Seed: *seed}, logger, renderer.Notifier())

	switch *rendererName {
	case "tui":
		if !terminal.IsInteractive() {
			log.Fatalf("The tui renderer needs an interactive terminal")
		}
		renderer.SetRenderer(tui.New())
		renderer.Init()
		gameplay.Run(g)

	case "ebiten":
		r := ebitenrenderer.New()
		renderer.SetRenderer(r)
		renderer.Init()
		if err := r.Run(func() { gameplay.Run(g) }); err != nil {
			log.Fatalf("Window closed with error: %v", err)
		}

	default:
		log.Fatalf("Unknown renderer %q (want tui or ebiten)", *rendererName)
	}

	logger.Printf("Session ended with %d/%d quests completed", g.Quests.Log().CompletedCount(), g.Quests.Log().Len())
}
