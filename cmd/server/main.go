package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	"salesdash-backend/internal/config"
	"salesdash-backend/internal/handlers"
	"salesdash-backend/internal/health"
	h "salesdash-backend/internal/http"
	"salesdash-backend/internal/middleware"
	"salesdash-backend/internal/monitoring"
	"salesdash-backend/internal/services"
	"salesdash-backend/internal/session"
	"salesdash-backend/internal/upstream"
)

func main() {
	// Parse command-line flags
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Session storage: Redis when reachable, in-memory otherwise. The
	// credential is re-obtained through login after a restart in the
	// fallback case.
	var backend session.Backend
	var storageChecker health.StorageChecker
	if redisBackend, err := session.NewRedisBackend(cfg); err != nil {
		log.Printf("[Redis] Session storage unavailable: %v (falling back to in-memory)", err)
		memBackend := session.NewMemoryBackend()
		backend, storageChecker = memBackend, memBackend
	} else {
		log.Println("[Redis] Session storage connected")
		backend, storageChecker = redisBackend, redisBackend
	}

	store := session.NewStore(backend)

	// Resolve any credential left over from a previous run.
	if store.CheckAuth(context.Background()) {
		log.Println("[Session] Restored admin session from storage")
	}

	// Watch storage for credentials cleared or replaced out-of-band.
	go store.Watch(context.Background(), cfg.Session.WatchInterval)

	// Upstream tracking API client
	api := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.RequestTimeout, store)
	log.Printf("[Upstream] Using tracking API at %s", cfg.Upstream.BaseURL)

	// Initialize health checker
	healthChecker := health.NewHealthChecker(api, storageChecker)

	// Start monitoring stats server in background
	go monitoring.NewMonitoringServer(api, store, cfg.Monitoring.Port).Start()

	// Initialize services
	salesmanService := services.NewSalesmanService(api)
	clientService := services.NewClientService(api)
	productService := services.NewProductService(api)
	orderService := services.NewOrderService(api, productService)
	returnService := services.NewReturnService(api)
	taskService := services.NewTaskService(api)
	rewardService := services.NewRewardService(api)
	leaderboardService := services.NewLeaderboardService(api)
	messageService := services.NewMessageService(api, store)
	reportService := services.NewReportService(api)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(api, store)
	salesmanHandler := handlers.NewSalesmanHandler(salesmanService)
	clientHandler := handlers.NewClientHandler(clientService)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)
	returnHandler := handlers.NewReturnHandler(returnService)
	taskHandler := handlers.NewTaskHandler(taskService)
	rewardHandler := handlers.NewRewardHandler(rewardService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	messageHandler := handlers.NewMessageHandler(messageService)
	reportHandler := handlers.NewReportHandler(reportService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(store)
	corsMiddleware := middleware.NewCORS(cfg)

	router := h.NewRouter(
		authHandler,
		salesmanHandler,
		clientHandler,
		productHandler,
		orderHandler,
		returnHandler,
		taskHandler,
		rewardHandler,
		leaderboardHandler,
		messageHandler,
		reportHandler,
		healthHandler,
		authMiddleware,
	)

	handler := middleware.PanicRecovery(
		middleware.MetricsMiddleware(
			middleware.RequestLogging(
				corsMiddleware(router),
			),
		),
	)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Sales dashboard gateway running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
