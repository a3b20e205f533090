package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	bolt "go.etcd.io/bbolt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Caiohenrks/bot-financeiro-telegram/internal/config"
	"github.com/Caiohenrks/bot-financeiro-telegram/internal/dashboard"
	"github.com/Caiohenrks/bot-financeiro-telegram/internal/entrypoint/telegram"
	"github.com/Caiohenrks/bot-financeiro-telegram/internal/usecase"
	"github.com/Caiohenrks/bot-financeiro-telegram/internal/usecase/repository/idempotence"
	"github.com/Caiohenrks/bot-financeiro-telegram/internal/usecase/repository/record"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load(log)
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	db, err := gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{})
	if err != nil {
		log.Error("connect to database", "error", err)
		os.Exit(1)
	}

	recordRepository, err := record.NewPostgres(db)
	if err != nil {
		log.Error("migrate database", "error", err)
		os.Exit(1)
	}

	boltDB, err := bolt.Open(cfg.IdempotencePath, 0600, nil)
	if err != nil {
		log.Error("open idempotence store", "error", err)
		os.Exit(1)
	}
	defer boltDB.Close()

	idempotenceRepository, err := idempotence.NewBoltDB(boltDB)
	if err != nil {
		log.Error("init idempotence store", "error", err)
		os.Exit(1)
	}

	router := telegram.NewRouter(
		usecase.NewUpsertUser(recordRepository),
		usecase.NewCreateRecord(recordRepository),
		usecase.NewGetRecordsByRange(recordRepository),
		cfg.Dashboard.URL,
		log,
	)

	bot, err := telegram.New(cfg.Token, router, usecase.NewIdempotence(idempotenceRepository), log)
	if err != nil {
		log.Error("start telegram bot", "error", err)
		os.Exit(1)
	}

	server := dashboard.New(
		usecase.NewListUsers(recordRepository),
		usecase.NewListRecords(recordRepository),
		log,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("dashboard listening", "port", cfg.Dashboard.Port)
		if err := server.Listen(cfg.Dashboard.Port); err != nil {
			log.Error("dashboard server", "error", err)
			stop()
		}
	}()

	bot.Start(ctx)

	<-ctx.Done()
	if err := server.Shutdown(); err != nil {
		log.Error("dashboard shutdown", "error", err)
	}
	log.Info("shutting down")
}
