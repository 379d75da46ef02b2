package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invorya-planning/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Forecast      forecastService
	Replenishment replenishmentService
	Risk          riskService
	Transfers     transferService
	Simulation    simulationService
	Overview      overviewService
	Health        *HealthHandler
	JWTSecret     string
	JWTIssuer     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Health != nil {
		app.Get("/health", deps.Health.Health)
	}

	// Todo /api requiere Bearer Token; la empresa sale del token.
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	forecastHandler := NewForecastHandler(deps.Forecast)
	api.Get("/forecast", forecastHandler.Forecast)
	api.Get("/forecast/warehouse", forecastHandler.Warehouse)

	replenishment := api.Group("/replenishment")
	replenishmentHandler := NewReplenishmentHandler(deps.Replenishment)
	replenishment.Get("/reorders", replenishmentHandler.ReorderList)
	replenishment.Get("/reorders/pdf", RequireRole(jwt.RoleAdmin, jwt.RoleBodeguero), replenishmentHandler.ReorderPDF)
	replenishment.Get("/warehouse", replenishmentHandler.Warehouse)

	api.Get("/risk", NewRiskHandler(deps.Risk).Report)
	api.Get("/transfers", NewTransferHandler(deps.Transfers).Suggest)

	simulation := api.Group("/simulation")
	simulationHandler := NewSimulationHandler(deps.Simulation)
	simulation.Post("/", simulationHandler.Simulate)
	simulation.Post("/raw", simulationHandler.SimulateRaw)

	api.Get("/overview", NewOverviewHandler(deps.Overview).Summary)
}
