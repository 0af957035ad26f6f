package main

import (
	"context"
	"os"

	httpadapter "github.com/Hayal27/Cv-generator/internal/adapter/http"
	repo "github.com/Hayal27/Cv-generator/internal/adapter/repository"
	"github.com/Hayal27/Cv-generator/internal/config"
	"github.com/Hayal27/Cv-generator/internal/infrastructure/migration"
	"github.com/Hayal27/Cv-generator/internal/usecase"
	infra "github.com/Hayal27/Cv-generator/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx := context.Background()

	pool, err := infra.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Warn().Err(err).Msg("database not available, running without persistence")
		pool = nil
	} else {
		if err := migration.RunMigrations(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migrations failed")
		}
	}

	cache, err := infra.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("redis not available, template cache disabled")
		cache = nil
	}

	cvRepo := repo.NewCVRepo(pool)
	tplRepo := repo.NewTemplateRepo(pool)

	registry := usecase.NewRegistry(tplRepo, cache)
	renderer := infra.NewChromedpRenderer(cfg.ChromePath, cfg.ExportTimeout)
	exporter := usecase.NewExporter(cvRepo, registry, renderer)

	app := fiber.New(fiber.Config{
		BodyLimit: 2 * 1024 * 1024,
	})

	h := httpadapter.NewHandler(cvRepo, exporter, registry)
	h.Register(app, cfg.JWTSecret)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
