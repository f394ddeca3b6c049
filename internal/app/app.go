package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/denmor86/ya-pedidos/internal/config"
	"github.com/denmor86/ya-pedidos/internal/logger"
	"github.com/denmor86/ya-pedidos/internal/mailer"
	"github.com/denmor86/ya-pedidos/internal/network/router"
	"github.com/denmor86/ya-pedidos/internal/services"
	"github.com/denmor86/ya-pedidos/internal/storage"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	Config config.Config
	Orders *services.Orders
	Server *http.Server
}

// New - собирает хранилища, сервисы и маршрутизатор
func New(config config.Config) (*App, error) {
	files, err := storage.NewDiskStorage(config.Server.UploadsDir)
	if err != nil {
		return nil, err
	}

	orders := services.NewOrders(
		storage.NewMemoryStorage(),
		services.NewUploads(files, config.Server.MaxUploadSize),
		services.NewNotifications(newMailSender(config.Mail), config.Mail.Timeout),
	)

	return &App{
		Config: config,
		Orders: orders,
		Server: &http.Server{
			Addr:              config.Server.ListenAddr,
			Handler:           router.NewRouter(config, orders).HandleRouter(),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// без учётных данных сервис работает, письма просто не уходят
func newMailSender(config config.MailConfig) services.MailSender {
	m, err := mailer.NewMailer(config)
	if err != nil {
		logger.Warn("Email notifications disabled:", err)
		return nil
	}
	return m
}

// Run - обслуживает запросы до отмены ctx, затем останавливает сервер
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting server:", a.Server.Addr, "uploads:", a.Config.Server.UploadsDir)
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error listen server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutdown server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.Server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutdown server: %w", err)
		}
		return nil
	})

	err := g.Wait()
	logger.Info("Server stopped")
	return err
}

// Run - запуск сервиса до SIGINT/SIGTERM
func Run(config config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := New(config)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}
