package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"panelpop/client"
	"panelpop/panel"

	"golang.org/x/term"
)

const (
	hideCursor = "\033[2J\033[?25l" // also clear screen
	showCursor = "\033[21;0H\n\r\033[?25h"
)

func main() {
	addr := flag.String("addr", "localhost:9000", "game server address for online play")
	name := flag.String("name", "player", "player name shown to the opponent")
	cfgPath := flag.String("config", "", "optional yaml tuning file")
	logPath := flag.String("log", "panelpop.log", "log file path")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("unable to open log file: %v", err)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg, err := panel.LoadConfig(*cfgPath)
	if err != nil {
		log.Fatalf("unable to load config: %v", err)
	}

	restore := startRawConsole()
	defer restore()

	c, err := client.New(logger, &client.Options{
		Address: *addr,
		Name:    *name,
		Config:  cfg,
	})
	if err != nil {
		restore()
		log.Fatalf("unable to start client: %v", err)
	}
	c.Start()
}

func startRawConsole() func() {
	fmt.Print(hideCursor)
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Error setting terminal to raw mode: %v", err)
	}

	return func() {
		if err := term.Restore(int(os.Stdin.Fd()), oldState); err != nil {
			log.Fatalf("unable to restore the terminal original state: %v", err)
		}
		fmt.Print(showCursor)
	}
}
