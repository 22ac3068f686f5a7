package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/you-humble/partexplorer/internal/config"
	"github.com/you-humble/partexplorer/internal/transport/http/health"
	thttp "github.com/you-humble/partexplorer/internal/transport/http/search/v1"
	"github.com/you-humble/partexplorer/platform/closer"
	"github.com/you-humble/partexplorer/platform/logger"
)

type app struct {
	di     *di
	server *http.Server
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
		a.initReference,
		a.initServer,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	closer.AddNamed("Logger", func(context.Context) error {
		_ = logger.Sync()
		return nil
	})
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

// initReference warms the reference lists. A failure is not fatal: the lists
// are loaded again on first use.
func (a *app) initReference(ctx context.Context) error {
	if err := a.di.ReferenceService(ctx).Load(ctx); err != nil {
		logger.Warn(ctx, "reference preload failed", logger.ErrorF(err))
	}
	return nil
}

func (a *app) initServer(ctx context.Context) error {
	cfg := config.C()

	r := a.di.Router(ctx)
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		thttp.RequestFields,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Mount("/api/v1", a.di.SearchHandler(ctx))

	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/health", health.NewHealthCheck(a.di.HealthProbes(ctx)))

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
	}
	closer.AddNamed("HTTP server", a.server.Shutdown)

	return nil
}

func (a *app) run(ctx context.Context) error {
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 partexplorer server listening",
			logger.String("address", config.C().Server.Address()),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		return a.di.SessionRegistry(egCtx).RunJanitor(egCtx, config.C().Session.JanitorInterval())
	})

	if config.C().Kafka.Enabled() {
		eg.Go(func() error {
			logger.Info(egCtx,
				"🚀 search performed consumer running",
				logger.Strings("kafka_brokers", config.C().Kafka.Brokers()),
			)
			return a.di.SearchConsumer(egCtx).RunSearchPerformedConsume(egCtx)
		})
	}

	eg.Go(func() error {
		<-egCtx.Done()
		gracefulShutdown()
		return nil
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().Server.ShutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during server shutdown", logger.ErrorF(err))
		logger.Error(ctx, "❌😵‍💫 Server stopped")
		return
	}
	logger.Info(ctx, "✅ Server stopped")
}
