package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/invorya-planning/docs"
	"github.com/jhoicas/invorya-planning/internal/application/planning"
	infracache "github.com/jhoicas/invorya-planning/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/invorya-planning/internal/infrastructure/pdf"
	"github.com/jhoicas/invorya-planning/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/invorya-planning/internal/interfaces/http"
	"github.com/jhoicas/invorya-planning/pkg/config"
	"github.com/jhoicas/invorya-planning/pkg/logger"
)

// @title        Invorya Planning API
// @version      1.0
// @description  Pronóstico de demanda, reposición, riesgos, traslados y simulación de inventario.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	locationRepo := postgres.NewLocationRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	itemRepo := postgres.NewInventoryItemRepository(pool)
	salesRepo := postgres.NewSalesRepository(pool)

	// Caché de pronósticos: sin Redis el servicio funciona igual, solo recalcula.
	var forecastCache planning.ForecastCache = infracache.NoopForecastCache{}
	var cachePinger httpRouter.Pinger
	if cfg.Cache.Enabled {
		rdb, err := infracache.NewRedisClient(ctx, cfg.Cache)
		if err != nil {
			log.Warn().Err(err).Msg("redis no disponible, pronósticos sin caché")
		} else {
			defer rdb.Close()
			redisCache := infracache.NewRedisForecastCache(rdb, "")
			forecastCache = redisCache
			cachePinger = redisCache
		}
	}

	settings := planning.SettingsFromConfig(cfg.Planning, cfg.Cache.TTL)

	forecastUC := planning.NewForecastUseCase(salesRepo, locationRepo, productRepo, forecastCache, settings, log.Component("forecast"))
	replenishmentUC := planning.NewReplenishmentUseCase(itemRepo, salesRepo, locationRepo, infrapdf.NewMarotoReorderReport(), settings, log.Component("replenishment"))
	riskUC := planning.NewRiskUseCase(itemRepo, salesRepo, locationRepo, settings, log.Component("risk"))
	transferUC := planning.NewTransferUseCase(itemRepo, salesRepo, locationRepo, settings, log.Component("transfers"))
	simulationUC := planning.NewSimulationUseCase(itemRepo, salesRepo, settings, log.Component("simulation"))
	overviewUC := planning.NewOverviewUseCase(replenishmentUC, riskUC)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Invorya Planning API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Forecast:      forecastUC,
		Replenishment: replenishmentUC,
		Risk:          riskUC,
		Transfers:     transferUC,
		Simulation:    simulationUC,
		Overview:      overviewUC,
		Health:        httpRouter.NewHealthHandler(pool, cachePinger),
		JWTSecret:     cfg.JWT.Secret,
		JWTIssuer:     cfg.JWT.Issuer,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
