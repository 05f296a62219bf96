package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"treqsy/chat"
	"treqsy/config"
	"treqsy/handlers"
	"treqsy/models"
	"treqsy/ratelimit"
	"treqsy/repository"
	"treqsy/service"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}

	cfg := config.LoadConfig()

	db := config.InitDB(ctx, cfg)
	defer func() { _ = db.Close() }()

	if err := repository.Migrate(ctx, db); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	repoImpl := repository.NewPostgresRepository(db)

	tokens := service.NewTokenManager(
		cfg.AccessSecret,
		cfg.RefreshSecret,
		cfg.AccessTTL,
		cfg.RefreshTTL,
	)
	svc := service.NewService(repoImpl, tokens)

	hub := chat.NewHub()
	defer hub.Close()

	h := handlers.NewHandler(svc, tokens, hub)

	adminOrMaster := []models.Role{models.RoleAdmin, models.RoleMasterAdmin}
	masterOnly := []models.Role{models.RoleMasterAdmin}
	hostOrMaster := []models.Role{models.RoleHost, models.RoleMasterAdmin}

	r := mux.NewRouter()
	r.HandleFunc("/api/auth/register", h.RegisterHandler).Methods("POST")
	r.HandleFunc("/api/auth/login", h.LoginHandler).Methods("POST")
	r.HandleFunc("/api/auth/refresh", h.RefreshHandler).Methods("POST")

	r.HandleFunc("/api/users/me", h.JWTMiddleware(h.MeHandler)).Methods("GET")

	r.HandleFunc("/api/admin/users",
		h.JWTMiddleware(h.RequireRoles(h.ListUsersHandler, adminOrMaster...))).Methods("GET")
	r.HandleFunc("/api/admin/users/{id}/role",
		h.JWTMiddleware(h.RequireRoles(h.SetRoleHandler, masterOnly...))).Methods("POST")
	r.HandleFunc("/api/admin/users/{id}/activate",
		h.JWTMiddleware(h.RequireRoles(h.SetActiveHandler, masterOnly...))).Methods("POST")
	r.HandleFunc("/api/admin/users/{id}/vip",
		h.JWTMiddleware(h.RequireRoles(h.SetVIPHandler, masterOnly...))).Methods("POST")
	r.HandleFunc("/api/admin/settings/app_name",
		h.JWTMiddleware(h.RequireRoles(h.AppNameHandler, masterOnly...))).Methods("GET")
	r.HandleFunc("/api/admin/settings/app_name",
		h.JWTMiddleware(h.RequireRoles(h.SetAppNameHandler, masterOnly...))).Methods("POST")

	r.HandleFunc("/api/coins/purchase", h.JWTMiddleware(h.PurchaseHandler)).Methods("POST")
	r.HandleFunc("/api/coins/gift", h.JWTMiddleware(h.GiftHandler)).Methods("POST")
	r.HandleFunc("/api/coins/transactions", h.JWTMiddleware(h.TransactionsHandler)).Methods("GET")
	r.HandleFunc("/api/coins/payout/request", h.JWTMiddleware(h.RequestPayoutHandler)).Methods("POST")
	r.HandleFunc("/api/admin/coins/payout/requests",
		h.JWTMiddleware(h.RequireRoles(h.PendingPayoutsHandler, masterOnly...))).Methods("GET")
	r.HandleFunc("/api/admin/coins/payout/approve",
		h.JWTMiddleware(h.RequireRoles(h.ApprovePayoutHandler, masterOnly...))).Methods("POST")
	r.HandleFunc("/api/admin/coins/settings",
		h.JWTMiddleware(h.RequireRoles(h.CoinSettingsHandler, masterOnly...))).Methods("GET")
	r.HandleFunc("/api/admin/coins/settings",
		h.JWTMiddleware(h.RequireRoles(h.SetCoinSettingsHandler, masterOnly...))).Methods("POST")
	r.HandleFunc("/api/admin/coins/analytics",
		h.JWTMiddleware(h.RequireRoles(h.CoinAnalyticsHandler, masterOnly...))).Methods("GET")

	r.HandleFunc("/api/streams/start",
		h.JWTMiddleware(h.RequireRoles(h.StartStreamHandler, hostOrMaster...))).Methods("POST")
	r.HandleFunc("/api/streams/{id}/end",
		h.JWTMiddleware(h.RequireRoles(h.EndStreamHandler, hostOrMaster...))).Methods("POST")
	r.HandleFunc("/api/streams/active", h.JWTMiddleware(h.ActiveStreamsHandler)).Methods("GET")

	r.HandleFunc("/ws/chat/{stream_id}", h.ChatHandler).Methods("GET")

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("Welcome to the Treqsy API")); err != nil {
			log.Printf("response write error: %v", err)
		}
	}).Methods("GET")

	var handler http.Handler = gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(cfg.CORSOrigins),
		gorillahandlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		gorillahandlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)(r)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis connection failed: %v", err)
		}
		defer func() { _ = redisClient.Close() }()
		limiter := ratelimit.NewLimiter(redisClient, "ratelimit:")
		handler = ratelimit.Middleware(limiter, cfg.RateLimitPerMinute, time.Minute, handler)
	}

	srv := http.Server{
		Handler:      handler,
		Addr:         ":" + cfg.ServerPort,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	go func() {
		log.Printf("server listening on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
}
