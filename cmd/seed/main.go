package main

import (
	"context"
	"log"
	"os"

	"nautiq-backend/internal/config"
	"nautiq-backend/internal/db"
	boatrepo "nautiq-backend/internal/repository/boat"
	productrepo "nautiq-backend/internal/repository/product"
	"nautiq-backend/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	products := productrepo.NewPostgres(pool, logger)
	boats := boatrepo.NewPostgres(pool, logger)
	if err := seed.Apply(ctx, products, boats); err != nil {
		logger.Fatalf("apply seed: %v", err)
	}

	logger.Println("seed applied")
}
