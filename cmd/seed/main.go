package main

import (
	"context"
	"flag"
	"log"

	"github.com/befit/api/internal/cache"
	"github.com/befit/api/internal/config"
	"github.com/befit/api/internal/database"
)

func main() {
	invalidate := flag.Bool("invalidate-cache", false, "Drop the cached exercise-type list after seeding")
	flag.Parse()

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	seeded, err := database.SeedExerciseTypes(db)
	if err != nil {
		log.Fatalf("Failed to seed exercise types: %v", err)
	}
	if seeded == 0 {
		log.Println("Exercise types already seeded, nothing to do")
	} else {
		log.Printf("Seeded %d exercise types", seeded)
	}

	if *invalidate {
		redisCache, err := cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v", err)
			return
		}
		defer redisCache.Close()

		if err := redisCache.InvalidateExerciseTypes(context.Background()); err != nil {
			log.Printf("Warning: Failed to invalidate exercise-type cache: %v", err)
		} else {
			log.Println("Invalidated exercise-type cache")
		}
	}
}
