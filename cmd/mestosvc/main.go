package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	config "github.com/avvvet/mesto-services/configs"
	"github.com/avvvet/mesto-services/internal/db"
	svcconfig "github.com/avvvet/mesto-services/internal/mestosvc/config"
	"github.com/avvvet/mesto-services/internal/mestosvc/auth"
	"github.com/avvvet/mesto-services/internal/mestosvc/events"
	handlers "github.com/avvvet/mesto-services/internal/mestosvc/handlers"
	"github.com/avvvet/mesto-services/internal/mestosvc/service"
	"github.com/avvvet/mesto-services/internal/mestosvc/store"
	nats "github.com/avvvet/mesto-services/internal/nats"
	log "github.com/sirupsen/logrus"
)

const SERVICE_NAME = "mesto"

func main() {
	config.LoadEnv(SERVICE_NAME)

	cfg, err := svcconfig.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	config.Logging(SERVICE_NAME+"_service", cfg.LogDir, cfg.LogLevel)
	instanceId := config.CreateUniqueInstance(SERVICE_NAME)

	var (
		users store.Users
		cards store.Cards
	)

	switch cfg.StoreDriver {
	case svcconfig.StoreMemory:
		log.Warn("using in-memory store, data is lost on restart")
		mem := store.NewMemoryStore()
		users, cards = mem.Users(), mem.Cards()
	default:
		mongoConn, err := db.Connect(context.Background(), cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to DB: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := mongoConn.Close(ctx); err != nil {
				log.Errorf("error closing mongo connection: %v", err)
			}
		}()
		log.Printf("mongo connection established successfully")

		if err := db.CreateUniqueIndex(context.Background(), mongoConn.DB, store.UsersCollection, "email"); err != nil {
			log.Fatalf("Failed to ensure users index: %v", err)
		}

		users, cards = store.NewUserStore(mongoConn.DB), store.NewCardStore(mongoConn.DB)
	}

	// events are optional, the API works without a broker
	var bus *events.Bus
	if cfg.NatsURL != "" {
		n, err := nats.Connect(cfg.NatsURL, cfg.NatsToken, SERVICE_NAME+"-"+instanceId)
		if err != nil {
			log.Errorf("Error: unable to connect to NATS server %v, events disabled", err)
		} else {
			defer n.Close()
			log.Printf("NATS connection established successfully %s", n.Url)
			bus = events.NewBus(n.Conn, instanceId)
		}
	}

	tokens := auth.NewTokenAuth(cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(users, tokens, bus, cfg.EmptyListNotFound)
	cardService := service.NewCardService(cards, bus, cfg.EmptyListNotFound)

	// Setup router
	r := chi.NewRouter()
	c := config.CORS(cfg.CORSOrigins)

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(config.CustomLoggerMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(c.Handler)
	r.Use(config.SecureHeaders())

	// to protect the service api from any over requests
	r.Use(config.RateLimiter(cfg.RateLimit, cfg.RateWindow))

	// Init handlers and routes
	h := handlers.NewHandler(userService, cardService, tokens, cfg.CookieSecure)
	h.SetRoutes(r)

	// Create server with timeout settings
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("%s service running at port %s", SERVICE_NAME, server.Addr)

	// Wait for interrupt signal to gracefully shutdown the server
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
		return
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}
