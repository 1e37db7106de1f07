package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/auth"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/cache"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/catalog"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/config"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/db"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/handlers"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/middleware"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/notifications"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/reservations"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongo connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("mongo connected")
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		logger.Error("index creation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis connected")
		cacheStore = redisCache
	}

	var jwtManager *auth.Manager
	if cfg.JWTSecret != "" {
		jwtManager = &auth.Manager{
			Secret:     []byte(cfg.JWTSecret),
			AccessTTL:  time.Duration(cfg.AccessTTLMinutes) * time.Minute,
			RefreshTTL: time.Duration(cfg.RefreshTTLMinutes) * time.Minute,
			Issuer:     "khanelconcept-backend",
		}
	}

	mailer := notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.BrevoSandbox)
	if mailer == nil {
		logger.Info("brevo mailer disabled")
	} else {
		logger.Info("brevo mailer enabled", slog.String("sender", cfg.BrevoSenderEmail), slog.Bool("sandbox", cfg.BrevoSandbox))
	}

	val := validation.New()

	villaStore := catalog.NewMongoStore(cols.Villas)
	catalogService := catalog.NewService(villaStore, cfg.Timezone)
	auditor := catalog.NewAuditor(catalog.AuditConfig{
		ExpectedTotal:        cfg.CatalogExpectedTotal,
		ExpectedDistribution: cfg.CatalogDistribution,
		RequiredVillas:       catalog.DefaultRequiredVillas(),
	})
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	catalogHandler := catalog.NewHandler(catalogService, auditor, val, logger, cacheStore, cacheTTL)

	reservationRepo := reservations.NewMongoRepository(cols.Reservations)

	server := &handlers.Server{
		Cfg:          cfg,
		Cols:         cols,
		Val:          val,
		Log:          logger,
		Cache:        cacheStore,
		Villas:       villaStore,
		Reservations: reservationRepo,
	}

	reservationService := reservations.NewService(reservationRepo, catalogService, cfg.Timezone, cfg.ReservationConflictCheck)
	var notifier reservations.Notifier
	if mailer != nil {
		notifier = mailer
	}
	reservationHandler := reservations.NewHandler(reservationService, val, logger, notifier)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigin))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	reservationsLimiter := middleware.NewRateLimiter(cfg.RateLimitReservations, time.Duration(cfg.RateLimitWindowSec)*time.Second)
	contactLimiter := middleware.NewRateLimiter(cfg.RateLimitContact, time.Duration(cfg.RateLimitWindowSec)*time.Second)

	r.Route("/api", func(api chi.Router) {
		api.Get("/villas", catalogHandler.List)
		api.Get("/villas/{id}", catalogHandler.Get)
		api.Post("/villas/search", catalogHandler.Search)

		api.With(reservationsLimiter.Middleware).Post("/reservations", reservationHandler.Create)
		api.Get("/reservations/{id}", reservationHandler.Get)

		api.With(contactLimiter.Middleware).Post("/contact", server.CreateContact)
		api.Get("/stats/dashboard", server.GetDashboardStats)

		api.Route("/admin", func(admin chi.Router) {
			admin.Post("/register", server.AdminRegister)
			admin.Post("/login", server.AdminLogin)
			admin.Post("/refresh", server.AdminRefresh)
			admin.Post("/logout", server.AdminLogout)

			// chi requires middlewares before routes, so the authenticated
			// surface lives in its own sub-router.
			admin.Group(func(protected chi.Router) {
				protected.Use(middleware.AdminAuth(cfg.AdminAPIKey, jwtManager))

				protected.Post("/villas", catalogHandler.AdminUpsert)
				protected.Put("/villas/{id}", catalogHandler.AdminUpsert)
				protected.Patch("/villas/{id}/status", catalogHandler.AdminSetStatus)
				protected.Post("/catalog/audit", catalogHandler.AdminAudit)
				protected.Post("/catalog/reseed", catalogHandler.AdminReseed)

				protected.Get("/reservations", reservationHandler.AdminList)
				protected.Patch("/reservations/{id}/status", reservationHandler.AdminSetStatus)

				protected.Post("/users", server.AdminCreateUser)
				protected.Patch("/users/{id}/password", server.AdminUpdateUserPassword)
			})
		})
	})

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
