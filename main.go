package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/lucky-wheel/internal/config"
	"github.com/iburimskiy/lucky-wheel/internal/game"
	"github.com/iburimskiy/lucky-wheel/internal/lib/logger/sl"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Lucky Wheel - Space: spin, S: segments, Esc/Q: quit")

	g, err := game.NewGame(log)
	if err != nil {
		log.Error("failed to start", sl.Err(err))
		os.Exit(1)
	}

	err = ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game stopped", sl.Err(err))
		os.Exit(1)
	}
}
