package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mcosta-dev/portfolio/internal/analytics"
	"github.com/mcosta-dev/portfolio/internal/config"
	"github.com/mcosta-dev/portfolio/internal/contact"
	"github.com/mcosta-dev/portfolio/internal/content"
	"github.com/mcosta-dev/portfolio/internal/i18n"
	"github.com/mcosta-dev/portfolio/internal/locale"
	"github.com/mcosta-dev/portfolio/internal/observability"
	"github.com/mcosta-dev/portfolio/internal/panel"
	"github.com/mcosta-dev/portfolio/internal/web"
)

const cleanupInterval = 24 * time.Hour

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	gin.SetMode(cfg.GinMode)

	log, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "failed to build logger")
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := loadContent(cfg.ContentDir)
	if err != nil {
		return err
	}
	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		return errors.Wrap(err, "failed to load translations")
	}
	for _, l := range locale.Supported() {
		if missing := bundle.Missing(l); len(missing) > 0 {
			log.Warn("untranslated keys fall back",
				zap.String("locale", l.String()),
				zap.String("fallback", bundle.Fallback().String()),
				zap.Strings("keys", missing))
		}
	}

	panels := panel.NewRegistry(log,
		panel.WithCloseDelay(cfg.Panel.CloseDelay),
		panel.WithLogger(log.Named("panel")),
	)
	go panels.Run(ctx, cfg.Panel.SweepInterval, cfg.Panel.SessionIdle)

	var stats *analytics.Store
	if cfg.DatabasePath != "" {
		stats, err = analytics.Open(ctx, cfg.DatabasePath, log.Named("analytics"))
		if err != nil {
			return err
		}
		defer stats.Close()
		go runCleanup(ctx, stats, log)
	}

	var mailer contact.Mailer
	if cfg.SMTPConfigured() {
		mailer = contact.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Pass, cfg.SMTP.ToEmail, log.Named("contact"))
	} else {
		log.Warn("SMTP credentials not configured; contact form will report errors")
	}

	site, err := web.New(web.Deps{
		Store:         store,
		Bundle:        bundle,
		Panels:        panels,
		Analytics:     stats,
		Mailer:        mailer,
		Logger:        log,
		StaticDir:     cfg.StaticDir,
		AdminUsername: cfg.Admin.Username,
		AdminPassword: cfg.Admin.Password,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           site.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", srv.Addr), zap.String("mode", cfg.GinMode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return errors.Wrap(err, "server failed")
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", zap.Duration("timeout", cfg.Shutdown))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "graceful shutdown")
	}
	return nil
}

func loadContent(dir string) (*content.Store, error) {
	if dir == "" {
		store, err := content.LoadEmbedded()
		return store, errors.Wrap(err, "failed to load embedded content")
	}
	store, err := content.LoadDir(dir)
	return store, errors.Wrapf(err, "failed to load content from %s", dir)
}

// runCleanup applies the retention policy at startup and then daily.
func runCleanup(ctx context.Context, stats *analytics.Store, log *zap.Logger) {
	t := time.NewTicker(cleanupInterval)
	defer t.Stop()
	for {
		if _, err := stats.Cleanup(ctx); err != nil && ctx.Err() == nil {
			log.Warn("privacy cleanup failed", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}
