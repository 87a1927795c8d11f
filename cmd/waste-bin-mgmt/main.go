package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/waste-bin-mgmt/internal/pkg/application/bins"
	"github.com/diwise/waste-bin-mgmt/internal/pkg/application/events"
	"github.com/diwise/waste-bin-mgmt/internal/pkg/application/webevents"
	"github.com/diwise/waste-bin-mgmt/internal/pkg/infrastructure/metrics"
	"github.com/diwise/waste-bin-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/waste-bin-mgmt/internal/pkg/infrastructure/router"
	"github.com/diwise/waste-bin-mgmt/internal/pkg/presentation/api"
	"github.com/diwise/waste-bin-mgmt/internal/pkg/presentation/gui"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const serviceName string = "waste-bin-mgmt"

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8000",
		controlPort:   "8001",

		configurationFile: "",

		dbPath:          "",
		insertBatchSize: strconv.Itoa(database.DefaultBatchSize),
	}
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion)
	defer cleanup()

	cfg, err := loadAppConfig(flags[configurationFile])
	exitIf(err, logger, "could not load configuration file")

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := initialize(ctx, flags, cfg)
	exitIf(err, logger, "failed to initialize service")

	err = svc.run(ctx)
	exitIf(err, logger, "service stopped unexpectedly")

	logger.Info().Msg("shut down complete")
}

type service struct {
	repo      database.BinRepository
	webEvents webevents.WebEvents
	public    *http.Server
	control   *http.Server
}

// initialize connects to the store and creates the schema before any handler is registered,
// so that the public server never accepts requests against an uninitialized store.
func initialize(ctx context.Context, flags flagMap, cfg *appConfig) (*service, error) {
	log := logging.GetFromContext(ctx)

	repo, err := newBinRepository(ctx, flags)
	if err != nil {
		return nil, err
	}

	stored, err := repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	metrics.SetStored(int(stored))

	we := webevents.New()
	svc := bins.New(repo, events.New(&cfg.Config), we)

	r := router.New(serviceName, cfg.AllowedOrigins...)
	api.RegisterHandlers(ctx, r, svc, we)
	gui.RegisterHandlers(log, r, svc)

	control := chi.NewRouter()
	control.Get("/metrics", metrics.Handler().ServeHTTP)
	control.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log.Debug().Strs("origins", cfg.AllowedOrigins).Msg("service initialized")

	return &service{
		repo:      repo,
		webEvents: we,
		public:    newServer(ctx, flags[listenAddress], flags[servicePort], r),
		control:   newServer(ctx, flags[listenAddress], flags[controlPort], control),
	}, nil
}

func newBinRepository(ctx context.Context, flags flagMap) (database.BinRepository, error) {
	cfg := database.LoadConfigFromEnv(ctx)
	if flags[dbPath] != "" {
		cfg.Path = flags[dbPath]
	}

	batchSize, err := strconv.Atoi(flags[insertBatchSize])
	if err != nil {
		return nil, err
	}

	connect, err := database.NewConnector(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return database.NewBinRepository(ctx, connect, database.WithBatchSize(batchSize))
}

func newServer(ctx context.Context, address, port string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort(address, port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
}

func (s *service) run(ctx context.Context) error {
	log := logging.GetFromContext(ctx)

	g, ctx := errgroup.WithContext(ctx)

	for _, srv := range []*http.Server{s.public, s.control} {
		srv := srv
		g.Go(func() error {
			log.Info().Str("address", srv.Addr).Msg("listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")

		s.webEvents.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := errors.Join(
			s.public.Shutdown(shutdownCtx),
			s.control.Shutdown(shutdownCtx),
		)

		return errors.Join(err, s.repo.Close())
	})

	return g.Wait()
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	log := logging.GetFromContext(ctx)
	envOrDef := env.GetVariableOrDefault

	// Allow environment variables to override certain defaults
	flags[listenAddress] = envOrDef(log, "LISTEN_ADDRESS", flags[listenAddress])
	flags[controlPort] = envOrDef(log, "CONTROL_PORT", flags[controlPort])
	flags[servicePort] = envOrDef(log, "SERVICE_PORT", flags[servicePort])
	flags[configurationFile] = envOrDef(log, "CONFIG_FILE", flags[configurationFile])
	flags[insertBatchSize] = envOrDef(log, "INSERT_BATCH_SIZE", flags[insertBatchSize])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("config", "service configuration file", apply(configurationFile))
	flag.Func("db", "path to the sqlite database file", apply(dbPath))
	flag.Parse()

	return ctx, flags
}

func exitIf(err error, logger zerolog.Logger, msg string) {
	if err != nil {
		logger.Fatal().Err(err).Msg(msg)
	}
}
