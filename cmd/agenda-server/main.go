package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"agenda/backend/internal/config"
	"agenda/backend/internal/domain"
	"agenda/backend/internal/events"
	agendav1 "agenda/backend/internal/gen/proto/agenda/v1"
	"agenda/backend/internal/metrics"
	"agenda/backend/internal/sellers"
	"agenda/backend/internal/service/appointments"
	"agenda/backend/internal/store"
	"agenda/backend/internal/store/memory"
	"agenda/backend/internal/store/postgres"
	grpcTransport "agenda/backend/internal/transport/grpc"
)

const serviceName = "agenda-server"

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).With(
		slog.String("service", serviceName),
	)
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", slog.Any("err", err))
		os.Exit(1)
	}

	log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)})).With(
		slog.String("service", serviceName),
	)
	slog.SetDefault(log)

	log.Info("starting",
		slog.String("grpc_addr", cfg.GRPCAddr()),
		slog.String("http_addr", cfg.HTTPAddr),
		slog.String("storage_driver", cfg.StorageDriver),
		slog.String("log_level", cfg.LogLevel),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openRepository(ctx, log, cfg)
	if err != nil {
		os.Exit(1)
	}
	var cleanup closers
	cleanup.add(closeRepo)
	defer cleanup.run()

	collector := metrics.NewCollector("agenda")
	opts := []appointments.Option{
		appointments.WithLogger(log),
		appointments.WithRecorder(collector),
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		cleanup.add(func() {
			if err := rdb.Close(); err != nil {
				log.Warn("redis close failed", slog.Any("err", err))
			}
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable; seller lookups fall back to storage", slog.Any("err", err), slog.String("redis_addr", cfg.RedisAddr))
		}
		opts = append(opts, appointments.WithSellerLookup(sellers.NewCachedDirectory(repo, rdb,
			sellers.WithTTL(cfg.SellerCacheTTL),
			sellers.WithLogger(log),
			sellers.WithRecorder(collector),
		)))
		log.Info("seller cache enabled", slog.String("redis_addr", cfg.RedisAddr), slog.Duration("ttl", cfg.SellerCacheTTL))
	}

	if brokers := events.SplitBrokers(cfg.KafkaBrokers); len(brokers) > 0 {
		publisher := events.NewKafkaPublisher(brokers, cfg.KafkaTopic,
			events.WithDeliveryFailureHandler(func(n int, err error) {
				log.Warn("event delivery failed", slog.Int("messages", n), slog.Any("err", err))
				for range n {
					collector.RecordPublishFailure()
				}
			}),
		)
		cleanup.add(func() {
			if err := publisher.Close(); err != nil {
				log.Warn("kafka publisher close failed", slog.Any("err", err))
			}
		})
		opts = append(opts, appointments.WithPublisher(publisher))
		log.Info("event publishing enabled", slog.Any("brokers", brokers), slog.String("topic", cfg.KafkaTopic))
	}

	svc := appointments.NewService(repo, opts...)

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(defaultRequestTimeoutInterceptor(cfg.GRPCRequestTimeout)),
	)
	agendav1.RegisterAppointmentsServiceServer(grpcServer, grpcTransport.NewAppointmentsServer(svc, log))
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(agendav1.AppointmentsService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr())
	if err != nil {
		log.Error("grpc listen failed", slog.Any("err", err), slog.String("grpc_addr", cfg.GRPCAddr()))
		cleanup.run()
		stop()
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpMux(collector),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		errCh <- grpcServer.Serve(lis)
	}()
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.Info("servers started", slog.String("grpc_addr", cfg.GRPCAddr()), slog.String("http_addr", cfg.HTTPAddr))

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
		healthServer.Shutdown()
		shutdown(log, grpcServer, httpServer, cfg.ShutdownTimeout)
	case err := <-errCh:
		if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			log.Error("server stopped with error", slog.Any("err", err))
			grpcServer.Stop()
			cleanup.run()
			stop()
			os.Exit(1)
		}
	}
}

// closers runs registered close functions once, last added first.
type closers struct {
	fns []func()
}

func (c *closers) add(fn func()) {
	c.fns = append(c.fns, fn)
}

func (c *closers) run() {
	for i := len(c.fns) - 1; i >= 0; i-- {
		c.fns[i]()
	}
	c.fns = nil
}

type sellerRegistrar interface {
	CreateSeller(ctx context.Context, seller domain.Seller) error
}

// openRepository opens the configured storage backend and registers any
// seed sellers. Errors are logged before returning.
func openRepository(ctx context.Context, log *slog.Logger, cfg config.Config) (store.AppointmentRepository, func(), error) {
	var (
		repo      store.AppointmentRepository
		registrar sellerRegistrar
		closeFn   = func() {}
	)

	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		mem := memory.New()
		repo = mem
		registrar = memoryRegistrar{mem}
		log.Warn("using in-memory storage; appointments are lost on restart")
	default:
		log.Info("connecting to database", databaseLogArgs(cfg.DatabaseURL)...)
		db, err := postgres.Open(ctx, cfg.DatabaseURL, postgres.PoolConfig{
			MaxOpenConns:    cfg.DBMaxOpenConns,
			MaxIdleConns:    cfg.DBMaxIdleConns,
			ConnMaxLifetime: cfg.DBConnMaxLifetime,
			ConnMaxIdleTime: cfg.DBConnMaxIdleTime,
		})
		if err != nil {
			args := append([]any{slog.Any("err", err)}, databaseLogArgs(cfg.DatabaseURL)...)
			log.Error("database connection failed", args...)
			return nil, nil, err
		}
		closeFn = func() {
			if err := postgres.Close(db); err != nil {
				log.Warn("database close failed", slog.Any("err", err))
			}
		}
		pg := postgres.NewAppointmentRepo(db)
		repo = pg
		registrar = pg
	}

	for _, id := range cfg.SeedSellers {
		if err := registrar.CreateSeller(ctx, domain.Seller{ID: id, DisplayName: id}); err != nil {
			log.Error("seed seller failed", slog.Any("err", err), slog.String("seller_id", id))
			closeFn()
			return nil, nil, err
		}
	}
	if len(cfg.SeedSellers) > 0 {
		log.Info("seed sellers registered", slog.Int("count", len(cfg.SeedSellers)))
	}

	return repo, closeFn, nil
}

type memoryRegistrar struct{ s *memory.Store }

func (m memoryRegistrar) CreateSeller(_ context.Context, seller domain.Seller) error {
	m.s.AddSeller(seller)
	return nil
}

func httpMux(collector *metrics.Collector) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

func defaultRequestTimeoutInterceptor(timeout time.Duration) grpc.UnaryServerInterceptor {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, ok := ctx.Deadline(); ok {
			return handler(ctx, req)
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		return handler(ctx, req)
	}
}

func shutdown(log *slog.Logger, s *grpc.Server, h *http.Server, timeout time.Duration) {
	log.Info("shutting down servers", slog.Duration("timeout", timeout))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := h.Shutdown(ctx); err != nil {
		log.Warn("http shutdown failed", slog.Any("err", err))
	}

	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		log.Info("grpc server stopped")
	case <-ctx.Done():
		log.Warn("grpc graceful shutdown timed out; forcing stop")
		s.Stop()
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func databaseLogArgs(databaseURL string) []any {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return []any{slog.String("db_url", "invalid")}
	}
	name := strings.TrimPrefix(u.Path, "/")
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "default"
	}
	if host == "" {
		host = "unknown"
	}
	if name == "" {
		name = "unknown"
	}
	return []any{
		slog.String("db_host", host),
		slog.String("db_port", port),
		slog.String("db_name", name),
	}
}
