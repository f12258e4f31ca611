package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goserg/arcesports/internal/access"
	"github.com/goserg/arcesports/internal/catalog"
	"github.com/goserg/arcesports/internal/config"
	"github.com/goserg/arcesports/internal/connect"
	"github.com/goserg/arcesports/internal/logger"
	"github.com/goserg/arcesports/internal/notify"
	"github.com/goserg/arcesports/internal/tournament"
	"github.com/goserg/arcesports/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", config.DefaultPath, "path to server config")
	flag.Parse()

	cfg, err := config.New(*configPath)
	if err != nil {
		return err
	}
	l := logger.New(cfg.Server.Debug)

	policy, err := cfg.Policy()
	if err != nil {
		return err
	}
	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	notifiers := notify.Multi{notify.NewLog(l)}
	if cfg.TgBot.Enabled {
		tg, err := notify.DialTelegram(cfg.TgBot.TelegramApiToken, cfg.Server.Debug, cfg.TgBot.Chats, l)
		if err != nil {
			return err
		}
		go tg.Run(ctx)
		notifiers = append(notifiers, tg)
	}

	registry := tournament.NewRegistry(notifiers, l)
	matchmaker := connect.NewMatchmaker(cat.ConnectPool(), cfg.Connect.MinDelay.Std(), cfg.Connect.MaxDelay.Std())
	server := web.New(cfg, access.NewGate(policy, l), cat, registry, matchmaker, l)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		l.Info("shutting down")
		return errors.Join(server.Shutdown(), <-errCh)
	}
}
