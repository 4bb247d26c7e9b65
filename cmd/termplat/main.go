// Command termplat plays a round in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/assets/levels"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/shared/leveldata"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/term"
)

func main() {
	levelName := flag.String("level", "stage01", "stage to play")
	logPath := flag.String("log", "", "write log output to this file")
	flag.Parse()

	// stdout belongs to the screen
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if err := run(*levelName); err != nil {
		fmt.Fprintf(os.Stderr, "termplat: %v\n", err)
		os.Exit(1)
	}
}

func run(levelName string) error {
	stages, names, err := leveldata.LoadAllStages(levels.FS, ".")
	if err != nil {
		return err
	}
	level, ok := stages[levelName]
	if !ok {
		return fmt.Errorf("unknown stage %q (have %v)", levelName, names)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	game, err := term.NewGame(screen, level, term.DefaultConfig(), nil)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("Playing %s", level.Name)
	if err := game.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
