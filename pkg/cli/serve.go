package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/foundry/pkg/cli/config"
	controller "github.com/m-mizutani/foundry/pkg/controller/http"
	"github.com/m-mizutani/foundry/pkg/infra/github"
	"github.com/m-mizutani/foundry/pkg/infra/notify"
	"github.com/m-mizutani/foundry/pkg/usecase"
	"github.com/m-mizutani/foundry/pkg/utils/async"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		githubCfg config.GitHub
		notifyCfg config.Notify
		sentryCfg config.Sentry
	)

	flags := append(serverCfg.Flags(), githubCfg.Flags()...)
	flags = append(flags, notifyCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting foundry server",
				slog.String("addr", serverCfg.Addr),
				slog.String("github_api_url", githubCfg.APIURL),
			)

			if githubCfg.Token == "" {
				logger.Warn("GITHUB_TOKEN is not set; repository provisioning will fail until it is configured")
			}

			if err := sentryCfg.Configure(); err != nil {
				return err
			}

			repoClient, err := github.NewClient(githubCfg.APIURL, githubCfg.Token)
			if err != nil {
				return goerr.Wrap(err, "failed to create repository client")
			}

			notifier := notify.New(
				notify.WithMaxAttempts(int(notifyCfg.MaxAttempts)),
				notify.WithBaseDelay(notifyCfg.BaseDelay),
			)

			provisionUC := usecase.NewProvision(repoClient, notifier)
			dispatcher := async.New()

			server, err := controller.NewServer(
				ctx,
				provisionUC,
				controller.WithAddr(serverCfg.Addr),
				controller.WithSecretKey(serverCfg.SecretKey),
				controller.WithDispatcher(dispatcher),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown: stop accepting, then drain background units
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			if err := dispatcher.Wait(shutdownCtx); err != nil {
				logger.Warn("Abandoning in-flight provisioning work", slog.Any("error", err))
			}

			sentry.Flush(2 * time.Second)

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
