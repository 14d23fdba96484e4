// Command seed bulk-imports catalogue products from a JSON document into the
// database, allocating a unique slug for each entry. The document comes from a
// local file by default, or from S3 when SEED_S3_ENABLED is set.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Tilak630Devi/shop-webpage/internal/config"
	"github.com/Tilak630Devi/shop-webpage/internal/database"
	"github.com/Tilak630Devi/shop-webpage/internal/repository"
	"github.com/Tilak630Devi/shop-webpage/internal/seed"
	"github.com/Tilak630Devi/shop-webpage/internal/service"
	"github.com/Tilak630Devi/shop-webpage/internal/slug"

	"github.com/joho/godotenv"
)

func main() {
	source := flag.String("source", "data/products.json", "seed file path, or S3 key when S3 is enabled")
	flag.Parse()

	if err := run(*source); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(source string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	var loader seed.Loader
	if cfg.Seed.S3Enabled {
		loader, err = seed.NewS3Loader(ctx, cfg.Seed.S3Bucket, cfg.Seed.S3Region, logger)
		if err != nil {
			return fmt.Errorf("failed to initialise S3 loader: %w", err)
		}
	} else {
		loader = seed.NewFileLoader(logger)
	}

	entries, err := loader.Load(ctx, source)
	if err != nil {
		return fmt.Errorf("failed to load seed document: %w", err)
	}

	productRepo := repository.NewProductRepository(pool, logger)
	slugs := slug.NewAllocator(productRepo, logger)
	products := service.NewProductService(productRepo, slugs, logger)

	created, skipped := 0, 0
	for _, entry := range entries {
		// Re-running the seed must not duplicate the catalogue: an entry whose
		// base slug is already taken is assumed to be present.
		exists, err := productRepo.SlugExists(ctx, slug.Make(entry.Name))
		if err != nil {
			return fmt.Errorf("failed to check slug for %q: %w", entry.Name, err)
		}
		if exists {
			skipped++
			continue
		}

		if _, err := products.Create(ctx, entry.CreateRequest()); err != nil {
			return fmt.Errorf("failed to create product %q: %w", entry.Name, err)
		}
		created++
	}

	logger.Info().
		Int("created", created).
		Int("skipped", skipped).
		Msg("catalogue seed completed")

	return nil
}
