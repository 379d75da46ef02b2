package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/jhoicas/invorya-planning/internal/application/dto"
	"github.com/jhoicas/invorya-planning/internal/application/planning"
	"github.com/jhoicas/invorya-planning/internal/domain/forecast"
	"github.com/jhoicas/invorya-planning/internal/domain/inventory"
	infracache "github.com/jhoicas/invorya-planning/internal/infrastructure/cache"
	"github.com/jhoicas/invorya-planning/pkg/config"
)

// demandRow fila del historial de entrada.
type demandRow struct {
	Date     string `json:"date"`
	Quantity int    `json:"quantity"`
}

// locationRow nivel de un producto en una ubicación (entrada de transfers).
type locationRow struct {
	LocationID     string  `json:"location_id"`
	LocationName   string  `json:"location_name"`
	LocationType   string  `json:"location_type"` // store | warehouse
	CurrentStock   int     `json:"current_stock"`
	AvgDailyDemand float64 `json:"avg_daily_demand"`
	StdDevDemand   float64 `json:"std_dev_demand"`
	LeadTimeDays   float64 `json:"lead_time_days"`
	DaysToExpiry   *int    `json:"days_to_expiry,omitempty"`
}

type forecastOutput struct {
	Model       string                 `json:"model"`
	HistoryDays int                    `json:"history_days"`
	MAPE        float64                `json:"mape"`
	Points      []dto.ForecastPointDTO `json:"points"`
}

func runForecast(c *cli.Context) error {
	var rows []demandRow
	if err := readInput(c, &rows); err != nil {
		return err
	}
	history := make([]forecast.DemandPoint, len(rows))
	for i, r := range rows {
		d, err := time.Parse(dto.DateLayout, r.Date)
		if err != nil {
			return fmt.Errorf("historial fila %d: fecha %q: %w", i+1, r.Date, err)
		}
		history[i] = forecast.DemandPoint{Date: d, Quantity: r.Quantity}
	}
	today, err := referenceDate(c)
	if err != nil {
		return err
	}

	model := forecast.Model(c.String("model"))
	if model != forecast.ModelMovingAverage && model != forecast.ModelExponentialSmoothing {
		return fmt.Errorf("modelo %q no soportado", model)
	}
	points, mape := planning.RunForecast(history, model, c.Int("window"), c.Float64("alpha"), c.Int("periods"), today)
	return writeJSON(c, forecastOutput{
		Model:       string(model),
		HistoryDays: len(history),
		MAPE:        mape,
		Points:      points,
	})
}

func runSimulate(c *cli.Context, log zerolog.Logger) error {
	var req dto.RawSimulationRequest
	if err := readInput(c, &req); err != nil {
		return err
	}
	// Sin repositorios: SimulateRaw no consulta la base de datos.
	uc := planning.NewSimulationUseCase(nil, nil, planning.DefaultSettings(), log)
	resp, err := uc.SimulateRaw(req)
	if err != nil {
		return err
	}
	return writeJSON(c, resp)
}

func runTransfers(c *cli.Context) error {
	var rows []locationRow
	if err := readInput(c, &rows); err != nil {
		return err
	}
	z := c.Float64("z-score")
	stocks := make([]inventory.LocationStock, len(rows))
	perishables := make([]inventory.PerishableStock, len(rows))
	for i, r := range rows {
		safety := inventory.SafetyStock(r.StdDevDemand, r.LeadTimeDays, z)
		locType := inventory.LocationType(r.LocationType)
		if locType == "" {
			locType = inventory.LocationStore
		}
		stocks[i] = inventory.LocationStock{
			LocationID:     r.LocationID,
			LocationName:   r.LocationName,
			LocationType:   locType,
			CurrentStock:   r.CurrentStock,
			AvgDailyDemand: r.AvgDailyDemand,
			LeadTimeDays:   r.LeadTimeDays,
			SafetyStock:    safety,
			ReorderPoint:   inventory.ReorderPoint(r.AvgDailyDemand, r.LeadTimeDays, safety),
		}
		perishables[i] = inventory.PerishableStock{LocationStock: stocks[i], DaysToExpiry: r.DaysToExpiry}
	}
	return writeJSON(c, planning.PlanTransfers(c.String("product"), stocks, perishables))
}

func runInvalidateCache(c *cli.Context, log zerolog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	rdb, err := infracache.NewRedisClient(c.Context, cfg.Cache)
	if err != nil {
		return err
	}
	defer rdb.Close()

	company := c.String("company")
	if err := infracache.NewRedisForecastCache(rdb, "").InvalidateCompany(c.Context, company); err != nil {
		return err
	}
	log.Info().Str("company_id", company).Msg("pronósticos en caché eliminados")
	return nil
}

// readInput decodifica el JSON de --input o, si no se indica, de la entrada estándar de la app.
func readInput(c *cli.Context, v any) error {
	var r io.Reader = c.App.Reader
	if path := c.String("input"); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("abrir entrada: %w", err)
		}
		defer f.Close()
		r = f
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("leer JSON de entrada: %w", err)
	}
	return nil
}

func writeJSON(c *cli.Context, v any) error {
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func referenceDate(c *cli.Context) (time.Time, error) {
	s := c.String("today")
	if s == "" {
		return time.Now(), nil
	}
	d, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("--today %q: %w", s, err)
	}
	return d, nil
}
