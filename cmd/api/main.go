package main

import (
	"context"
	"time"

	"github.com/thinknumbers/order-scanner-delight/internal/cart"
	"github.com/thinknumbers/order-scanner-delight/internal/catalog"
	"github.com/thinknumbers/order-scanner-delight/internal/checkout"
	"github.com/thinknumbers/order-scanner-delight/internal/config"
	"github.com/thinknumbers/order-scanner-delight/internal/db"
	"github.com/thinknumbers/order-scanner-delight/internal/notify"
	"github.com/thinknumbers/order-scanner-delight/internal/router"
	"github.com/thinknumbers/order-scanner-delight/internal/selection"
	"github.com/thinknumbers/order-scanner-delight/internal/storage"
	"github.com/thinknumbers/order-scanner-delight/internal/store"
	"github.com/thinknumbers/order-scanner-delight/internal/table"
)

func main() {
	log := notify.NewLogger()

	// ───────────────────────── CONFIG ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	// ───────────────────────── DB ─────────────────────────
	pgDB, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pgDB.Close()
	log.Info("connected to Postgres")

	// ───────────────────────── STORAGE ─────────────────────────
	var imageStorage catalog.Storage
	if cfg.StorageConfigured() {
		r2, err := storage.NewR2Client(ctx, storage.R2Config{
			Endpoint:  cfg.R2Endpoint,
			AccessKey: cfg.R2AccessKey,
			SecretKey: cfg.R2SecretKey,
			Bucket:    cfg.R2Bucket,
			BaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			log.Fatalf("r2 init failed: %v", err)
		}
		imageStorage = r2
	} else {
		log.Warn("R2 not configured, image uploads disabled")
	}

	// ───────────────────────── NOTIFICATIONS ─────────────────────────
	notifier := notify.NewLogNotifier(log)

	// ───────────────────────── CATALOG ─────────────────────────
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	catalogService := catalog.NewService(catalogRepo, imageStorage)
	catalogHandler := catalog.NewHandler(catalogService)
	catalogAdminHandler := catalog.NewAdminHandler(catalogService)

	selectionHandler := selection.NewHandler(catalogRepo)

	// ───────────────────────── CART ─────────────────────────
	var cartStore cart.Store
	if cfg.RedisAddr != "" {
		redisStore := cart.NewRedisStore(cfg.RedisAddr, catalogRepo)
		if err := redisStore.Ping(ctx); err != nil {
			log.Fatalf("redis: %v", err)
		}
		cartStore = redisStore
		log.Info("cart store: redis")
	} else {
		cartStore = cart.NewMemoryStore()
		log.Info("cart store: memory")
	}

	cartService := cart.NewService(cartStore, catalogRepo, notifier)
	cartHandler := cart.NewHandler(cartService)

	// ───────────────────────── CHECKOUT ─────────────────────────
	orderRepo := checkout.NewPostgresRepository(pgDB)
	checkoutService := checkout.NewService(cartService, orderRepo, notifier, 2*time.Second)
	checkoutHandler := checkout.NewHandler(checkoutService)

	// ───────────────────────── STORE & TABLES ─────────────────────────
	storeRepo := store.NewPostgresRepository(pgDB)
	storeService := store.NewService(storeRepo, imageStorage)
	storeHandler := store.NewHandler(storeService)

	tableRepo := table.NewPostgresRepository(pgDB)
	tableService := table.NewService(tableRepo, cfg.PublicBaseURL)
	tableHandler := table.NewHandler(tableService)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(router.Deps{
		AllowOrigins: cfg.AllowOrigins,
		Catalog:      catalogHandler,
		CatalogAdmin: catalogAdminHandler,
		Selection:    selectionHandler,
		Cart:         cartHandler,
		Checkout:     checkoutHandler,
		Store:        storeHandler,
		Table:        tableHandler,
	})

	// ───────────────────────── START ─────────────────────────
	log.Infof("API running at http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
