package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	botsqlite "clubserver/bot/botstorage/sqlite"
	"clubserver/bot/tgbot"
	"clubserver/internal/cache/mem"
	"clubserver/internal/config"
	"clubserver/internal/logger"
	"clubserver/internal/service"
	"clubserver/internal/storage/sqlite"
	"clubserver/internal/web"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	log := logger.New(cfg.Server.Debug)

	storage, err := sqlite.New(log, cfg.Server.SqliteFile)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	cache := mem.New()
	playerService := service.New(storage, storage, storage, cache, log)
	tournamentService := service.NewTournamentService(storage, storage, storage, log)
	noticeService := service.NewNoticeService(storage, log)
	configService := service.NewConfigService(storage, cache, log)

	var bot *tgbot.Bot
	if cfg.Server.TgBotEnabled {
		botStorage, err := botsqlite.New(log, cfg.TgBot)
		if err != nil {
			return fmt.Errorf("bot storage: %w", err)
		}
		bot, err = tgbot.New(playerService, noticeService, botStorage, cfg, log)
		if err != nil {
			return fmt.Errorf("bot: %w", err)
		}
		go bot.Run()
		defer bot.Stop()
	}

	server := web.New(playerService, tournamentService, noticeService, configService, cfg.Server, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.WithField("signal", sig.String()).Info("shutting down")
		return server.Shutdown()
	}
}
