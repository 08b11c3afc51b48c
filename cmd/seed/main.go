// Seeds the default Café Lumière storefront into Postgres: branding,
// categories, products, and a handful of tables.
package main

import (
	"context"

	"github.com/thinknumbers/order-scanner-delight/internal/catalog"
	"github.com/thinknumbers/order-scanner-delight/internal/config"
	"github.com/thinknumbers/order-scanner-delight/internal/db"
	"github.com/thinknumbers/order-scanner-delight/internal/notify"
	"github.com/thinknumbers/order-scanner-delight/internal/store"
	"github.com/thinknumbers/order-scanner-delight/internal/table"
)

func main() {
	log := notify.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	pgDB, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pgDB.Close()

	// ───────────────────────── BRANDING ─────────────────────────
	storeRepo := store.NewPostgresRepository(pgDB)
	if err := storeRepo.Upsert(ctx, store.DefaultStore()); err != nil {
		log.Fatalf("seed store: %v", err)
	}
	log.Info("seeded store branding")

	// ───────────────────────── CATALOG ─────────────────────────
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	for _, c := range catalog.DefaultCategories() {
		c := c
		if err := catalogRepo.CreateCategory(ctx, &c); err != nil {
			log.Warnf("category %s: %v", c.ID, err)
		}
	}
	for _, p := range catalog.DefaultProducts() {
		p := p
		if err := catalogRepo.CreateProduct(ctx, &p); err != nil {
			log.Warnf("product %s: %v", p.ID, err)
		}
	}
	log.Info("seeded catalog")

	// ───────────────────────── TABLES ─────────────────────────
	tableService := table.NewService(table.NewPostgresRepository(pgDB), cfg.PublicBaseURL)
	for _, number := range []string{"1", "2", "3", "4"} {
		t, err := tableService.Create(ctx, number, 4, "")
		if err != nil {
			log.Warnf("table %s: %v", number, err)
			continue
		}
		if _, err := tableService.GenerateQR(ctx, t.ID); err != nil {
			log.Warnf("qr for table %s: %v", number, err)
		}
	}
	log.Info("seeded tables")
}
