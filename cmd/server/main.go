package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"condogate/internal/admin"
	"condogate/internal/auth"
	"condogate/internal/directory"
	"condogate/internal/frontdesk"
	"condogate/internal/jwttoken"
	"condogate/internal/ledger"
	"condogate/internal/platform/config"
	"condogate/internal/platform/httpserver"
	"condogate/internal/platform/logger"
	"condogate/internal/platform/metrics"
	"condogate/internal/platform/redis"
	"condogate/internal/storage"
	httptransport "condogate/internal/transport/http"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New(prometheus.DefaultRegisterer)

	userStore := storage.NewInMemoryUserStore()
	personStore := storage.NewInMemoryPersonStore()
	houseStore := storage.NewInMemoryHouseStore()
	deliveryStore := storage.NewInMemoryDeliveryStore()
	noticeStore := storage.NewInMemoryNoticeStore()
	occurrenceStore := storage.NewInMemoryOccurrenceStore()

	// The access ledger is the one record that must survive restarts;
	// Postgres backs it whenever a URL is configured.
	var eventStore storage.AccessEventStore = storage.NewInMemoryAccessEventStore()
	if cfg.PostgresURL != "" {
		db, err := sql.Open("pgx", cfg.PostgresURL)
		if err != nil {
			log.Error("open postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		pgStore := storage.NewPostgresAccessEventStore(db)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.Error("ensure postgres schema", "error", err)
			os.Exit(1)
		}
		eventStore = pgStore
		log.Info("access ledger backed by postgres")
	}

	var sessionStore auth.SessionStore = auth.NewInMemorySessionStore()
	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		log.Error("connect redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		sessionStore = auth.NewRedisSessionStore(redisClient.Client)
		log.Info("sessions backed by redis")
	}

	if cfg.SeedDemoData {
		if err := storage.SeedDemoData(ctx, userStore, houseStore, personStore); err != nil {
			log.Error("seed demo data", "error", err)
			os.Exit(1)
		}
		log.Info("demo data seeded")
	}

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer)
	authService := auth.NewService(userStore, sessionStore, jwtService, cfg.TokenTTL, m)
	ledgerService := ledger.NewService(eventStore, personStore, houseStore, m)
	directoryService := directory.NewService(personStore)
	adminService := admin.NewService(personStore, houseStore)
	deliveryService := frontdesk.NewDeliveryService(deliveryStore, personStore)
	noticeService := frontdesk.NewNoticeService(noticeStore)
	occurrenceService := frontdesk.NewOccurrenceService(occurrenceStore)

	handler := httptransport.NewHandler(
		log,
		m,
		jwtService,
		authService,
		ledgerService,
		directoryService,
		adminService,
		deliveryService,
		noticeService,
		occurrenceService,
	)

	srv := httpserver.New(cfg.Addr, httptransport.NewRouter(handler))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
