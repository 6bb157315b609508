package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/NguyenHuy1812/telegram-mock-server/internal/archive"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/config"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/logger"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/model"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/server"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		addr   string
		token  string
		export string
		dev    bool
	)
	cmd := &cobra.Command{
		Use:   "telegram-mock",
		Short: "In-memory Telegram Bot API server for testing bots",
		Long: `telegram-mock serves the Bot API over HTTP from an in-memory message
store. Bots under test point their API base URL at it and tests inspect what
the bot sent.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("addr") {
				cfg.Addr = addr
			}
			if flags.Changed("token") {
				cfg.Token = token
			}
			if flags.Changed("export") {
				cfg.ExportPath = export
			}
			if flags.Changed("dev") {
				cfg.Development = dev
			}
			return run(cmd.Context(), cfg)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address")
	cmd.Flags().StringVar(&token, "token", config.DefaultToken, "bot token accepted by the server")
	cmd.Flags().StringVar(&export, "export", "", "write the response log to this parquet file on shutdown")
	cmd.Flags().BoolVar(&dev, "dev", false, "development logging")
	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	log, err := logger.New(logger.Config{Development: cfg.Development})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	me := model.User{
		ID:        cfg.BotID,
		IsBot:     true,
		FirstName: cfg.BotName,
		Username:  cfg.BotUsername,
	}
	handler := usecase.NewMessageHandler(me, usecase.WithLogger(log.Named("usecase")))
	srv := server.New(handler, server.Config{Token: cfg.Token, Logger: log.Named("http")})

	errCh := make(chan error, 1)
	go func() {
		log.Info("Listening", zap.String("addr", cfg.Addr), zap.String("bot", me.Username))
		errCh <- srv.Listen(cfg.Addr)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "serve")
	case <-ctx.Done():
	}

	fmt.Println("\rClosed")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}

	if cfg.ExportPath != "" {
		responses := handler.Responses()
		if err := archive.Write(cfg.ExportPath, responses.Entries(), log); err != nil {
			return err
		}
	}
	return nil
}
