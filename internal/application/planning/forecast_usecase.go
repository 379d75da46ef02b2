package planning

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/invorya-planning/internal/application/dto"
	"github.com/jhoicas/invorya-planning/internal/domain"
	"github.com/jhoicas/invorya-planning/internal/domain/entity"
	"github.com/jhoicas/invorya-planning/internal/domain/forecast"
	"github.com/jhoicas/invorya-planning/internal/domain/repository"
	"github.com/jhoicas/invorya-planning/internal/domain/stats"
)

// Consultas de historial simultáneas en el pronóstico de bodega.
const warehouseFetchConcurrency = 4

// ForecastUseCase pronostica la demanda diaria de un producto por ubicación y agregada por bodega.
type ForecastUseCase struct {
	sales     repository.SalesRepository
	locations repository.LocationRepository
	products  repository.ProductRepository
	cache     ForecastCache
	settings  Settings
	log       zerolog.Logger
	now       func() time.Time
}

// NewForecastUseCase construye el caso de uso. cache puede ser el caché no-op.
func NewForecastUseCase(
	sales repository.SalesRepository,
	locations repository.LocationRepository,
	products repository.ProductRepository,
	cache ForecastCache,
	settings Settings,
	log zerolog.Logger,
) *ForecastUseCase {
	return &ForecastUseCase{
		sales:     sales,
		locations: locations,
		products:  products,
		cache:     cache,
		settings:  settings.withDefaults(),
		log:       log,
		now:       time.Now,
	}
}

// Forecast pronostica `periods` días para el producto en la ubicación.
// Además del pronóstico devuelve el MAPE de un backtest: se reservan los últimos min(7, n/4) días
// del historial y se pronostican con el resto usando el mismo modelo.
func (uc *ForecastUseCase) Forecast(ctx context.Context, companyID string, req dto.ForecastRequest) (*dto.ForecastResponse, error) {
	if req.ProductID == "" || req.LocationID == "" {
		return nil, fmt.Errorf("%w: product_id y location_id son requeridos", domain.ErrInvalidInput)
	}
	model := forecast.Model(req.Model)
	switch model {
	case "":
		model = forecast.ModelMovingAverage
	case forecast.ModelMovingAverage, forecast.ModelExponentialSmoothing:
	default:
		return nil, fmt.Errorf("%w: modelo %q no soportado", domain.ErrInvalidInput, req.Model)
	}
	if req.Alpha < 0 || req.Alpha > 1 {
		return nil, fmt.Errorf("%w: alpha debe estar en (0, 1]", domain.ErrInvalidInput)
	}

	window := clamp(orDefault(req.Window, uc.settings.Window), 1, maxWindow)
	periods := clamp(orDefault(req.Periods, uc.settings.ForecastPeriods), 1, maxPeriods)
	historyDays := clamp(orDefault(req.HistoryDays, uc.settings.HistoryDays), 1, maxHistoryDays)
	alpha := req.Alpha
	if alpha == 0 {
		alpha = uc.settings.Alpha
	}

	now := uc.now()
	key := fmt.Sprintf("forecast:%s:%s:%s:%s:w%d:a%g:p%d:h%d:%s",
		companyID, req.ProductID, req.LocationID, model, window, alpha, periods, historyDays, dateLabel(now))
	if resp := uc.cached(ctx, key); resp != nil {
		return resp, nil
	}

	loc, err := uc.locations.GetByID(ctx, companyID, req.LocationID)
	if err != nil {
		return nil, fmt.Errorf("forecast: ubicación: %w", err)
	}
	if loc == nil {
		return nil, fmt.Errorf("%w: ubicación %s", domain.ErrNotFound, req.LocationID)
	}

	history, err := uc.sales.DailyDemand(ctx, companyID, req.ProductID, req.LocationID, historyStart(now, historyDays))
	if err != nil {
		return nil, fmt.Errorf("forecast: historial: %w", err)
	}

	points, mape := RunForecast(history, model, window, alpha, periods, now)
	resp := &dto.ForecastResponse{
		ProductID:   req.ProductID,
		LocationID:  req.LocationID,
		Model:       string(model),
		HistoryDays: len(history),
		MAPE:        mape,
		Points:      points,
		GeneratedAt: now,
	}
	uc.store(ctx, key, resp)
	return resp, nil
}

// WarehouseForecast suma los pronósticos de promedio móvil de todas las tiendas de la empresa.
// El historial de cada tienda se consulta en paralelo.
func (uc *ForecastUseCase) WarehouseForecast(ctx context.Context, companyID string, req dto.WarehouseForecastRequest) (*dto.WarehouseForecastResponse, error) {
	if req.ProductID == "" {
		return nil, fmt.Errorf("%w: product_id es requerido", domain.ErrInvalidInput)
	}
	periods := clamp(orDefault(req.Periods, uc.settings.ForecastPeriods), 1, maxPeriods)

	product, err := uc.products.GetByID(ctx, companyID, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("forecast bodega: producto: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, req.ProductID)
	}
	stores, err := uc.locations.ListByCompany(ctx, companyID, entity.LocationTypeStore)
	if err != nil {
		return nil, fmt.Errorf("forecast bodega: tiendas: %w", err)
	}

	now := uc.now()
	since := historyStart(now, uc.settings.HistoryDays)

	var mu sync.Mutex
	perStore := make(map[string][]forecast.Result, len(stores))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(warehouseFetchConcurrency)
	for _, store := range stores {
		store := store
		g.Go(func() error {
			history, err := uc.sales.DailyDemand(gctx, companyID, req.ProductID, store.ID, since)
			if err != nil {
				return fmt.Errorf("tienda %s: %w", store.ID, err)
			}
			if len(history) == 0 {
				return nil
			}
			results := forecast.MovingAverage(history, uc.settings.Window, periods, now)
			mu.Lock()
			perStore[store.ID] = results
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("forecast bodega: %w", err)
	}

	uc.log.Debug().
		Str("product_id", req.ProductID).
		Int("stores", len(perStore)).
		Msg("pronóstico agregado de bodega")

	return &dto.WarehouseForecastResponse{
		ProductID:   product.ID,
		ProductName: product.Name,
		Stores:      len(perStore),
		Points:      toPointDTOs(forecast.AggregateForWarehouse(perStore)),
		GeneratedAt: now,
	}, nil
}

// RunForecast pronostica la serie con el modelo indicado y devuelve los puntos y el MAPE del backtest
// (un decimal). Un modelo desconocido usa promedio móvil.
func RunForecast(history []forecast.DemandPoint, model forecast.Model, window int, alpha float64, periods int, now time.Time) ([]dto.ForecastPointDTO, float64) {
	f := forecaster(model, window, alpha, now)
	mape := stats.Round1(forecast.Accuracy(history, backtestHoldout(len(history)), f))
	return toPointDTOs(f(history, periods)), mape
}

func forecaster(model forecast.Model, window int, alpha float64, now time.Time) forecast.Forecaster {
	if model == forecast.ModelExponentialSmoothing {
		return func(h []forecast.DemandPoint, periods int) []forecast.Result {
			return forecast.ExponentialSmoothing(h, alpha, periods, now)
		}
	}
	return func(h []forecast.DemandPoint, periods int) []forecast.Result {
		return forecast.MovingAverage(h, window, periods, now)
	}
}

// backtestHoldout días reservados para medir el error: min(7, n/4).
func backtestHoldout(n int) int {
	return min(7, n/4)
}

func toPointDTOs(results []forecast.Result) []dto.ForecastPointDTO {
	out := make([]dto.ForecastPointDTO, len(results))
	for i, r := range results {
		out[i] = dto.ForecastPointDTO{
			Date:       dateLabel(r.Date),
			Predicted:  r.Predicted,
			LowerBound: r.LowerBound,
			UpperBound: r.UpperBound,
			Model:      string(r.Model),
		}
	}
	return out
}

func (uc *ForecastUseCase) cached(ctx context.Context, key string) *dto.ForecastResponse {
	raw, ok, err := uc.cache.Get(ctx, key)
	if err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("caché de pronósticos no disponible")
		return nil
	}
	if !ok {
		uc.log.Debug().Str("key", key).Msg("pronóstico fuera de caché")
		return nil
	}
	var resp dto.ForecastResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("pronóstico en caché ilegible")
		return nil
	}
	resp.Cached = true
	return &resp
}

func (uc *ForecastUseCase) store(ctx context.Context, key string, resp *dto.ForecastResponse) {
	raw, err := json.Marshal(resp)
	if err != nil {
		uc.log.Warn().Err(err).Msg("serializar pronóstico")
		return
	}
	if err := uc.cache.Set(ctx, key, raw, uc.settings.ForecastTTL); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("guardar pronóstico en caché")
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
