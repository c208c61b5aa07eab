package main

import (
	"context"
	"os"
	"os/signal"
	"pilates-vision-service/internal/app/config"
	"pilates-vision-service/internal/app/delivery/console"
	"pilates-vision-service/internal/app/drivers/logger"
	"pilates-vision-service/internal/app/services/console/board"
	"pilates-vision-service/internal/app/services/studio_api"
	"syscall"
)

func main() {
	consoleConfig := config.NewConsoleConfig()
	log := logger.NewLogrusLogger(consoleConfig, os.Stderr)

	preferences, err := config.LoadPreferences(consoleConfig.PreferencesFile)
	if err != nil {
		log.WithError(err).Warn("Failed to read preferences, using defaults")
	}
	savePreferences := func(p config.Preferences) error {
		return config.SavePreferences(consoleConfig.PreferencesFile, p)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := studioapi.NewStudioClient(consoleConfig.StudioAPIUrl, consoleConfig.RequestTimeout, log)
	lines := console.NewLines(os.Stdin)
	notifier := console.NewToastNotifier(os.Stdout, preferences.Theme, log)
	confirmer := console.NewPromptConfirmer(lines, os.Stdout)
	scheduleBoard := board.NewBoard(client, notifier, confirmer, nil, log)

	app := console.NewConsole(
		lines,
		os.Stdout,
		scheduleBoard,
		client,
		notifier,
		preferences,
		savePreferences,
		consoleConfig.RequestTimeout,
		log,
	)

	err = app.Run(ctx)
	if err != nil {
		log.WithError(err).Fatal("Console stopped unexpectedly")
	}
}
