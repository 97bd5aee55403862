package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/api"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/config"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/database"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/quotes"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/repository"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/scheduler"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/secrets"
	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Token encryption for the NAV provider config
	var vault *secrets.Vault
	if cfg.Secrets.FernetKey != "" {
		vault, err = secrets.NewVault(cfg.Secrets.FernetKey)
		if err != nil {
			log.Fatalf("Failed to initialize secrets vault: %v", err)
		}
	} else {
		log.Println("FERNET_KEY not set, provider token storage disabled")
	}

	// Create repositories
	userRepo := repository.NewUserRepository(db)
	capTypeRepo := repository.NewCapTypeRepository(db)
	fundRepo := repository.NewFundRepository(db)
	entryRepo := repository.NewEntryRepository(db)
	sipRepo := repository.NewSIPRepository(db)
	allocationRepo := repository.NewAllocationRepository(db)
	pfRepo := repository.NewPFRepository(db)
	goldRepo := repository.NewGoldRepository(db)
	providerRepo := repository.NewProviderRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	userService := service.NewUserService(userRepo)
	capTypeService := service.NewCapTypeService(capTypeRepo)
	fundService := service.NewFundService(
		fundRepo,
		capTypeRepo,
		entryRepo,
		sipRepo,
		allocationRepo,
	)
	entryService := service.NewEntryService(entryRepo, fundRepo)
	sipService := service.NewSIPService(sipRepo, fundRepo)
	allocationService := service.NewAllocationService(allocationRepo, capTypeRepo)
	pfService := service.NewPFService(pfRepo)
	goldService := service.NewGoldService(goldRepo)
	priceService := service.NewPriceService(
		fundRepo,
		providerRepo,
		quotes.NewNavClient(),
		vault,
	)

	// Create router
	router := api.NewRouter(api.Services{
		System:     systemService,
		User:       userService,
		CapType:    capTypeService,
		Fund:       fundService,
		Entry:      entryService,
		SIP:        sipService,
		Allocation: allocationService,
		PF:         pfService,
		Gold:       goldService,
		Price:      priceService,
	}, cfg)

	// Daily NAV refresh
	priceScheduler, err := scheduler.New(cfg.Scheduler.PriceRefreshSpec, func() error {
		_, err := priceService.RefreshAll()
		return err
	})
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	priceScheduler.Start()
	log.Printf("Price refresh scheduled: %s", cfg.Scheduler.PriceRefreshSpec)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	priceScheduler.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
