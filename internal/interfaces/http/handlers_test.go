package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invorya-planning/internal/application/dto"
	"github.com/jhoicas/invorya-planning/internal/domain"
	apphttp "github.com/jhoicas/invorya-planning/internal/interfaces/http"
)

// fakePlanning implementa todos los servicios del router; err se devuelve en cada llamada.
type fakePlanning struct {
	err error

	forecastReq dto.ForecastRequest
	companyID   string
	locationID  string
	simulation  dto.SimulationRequest
}

func (f *fakePlanning) Forecast(_ context.Context, companyID string, req dto.ForecastRequest) (*dto.ForecastResponse, error) {
	f.companyID, f.forecastReq = companyID, req
	if f.err != nil {
		return nil, f.err
	}
	return &dto.ForecastResponse{
		ProductID: req.ProductID, LocationID: req.LocationID, Model: "moving_average",
		Points: []dto.ForecastPointDTO{{Date: "2026-03-11", Predicted: 10, LowerBound: 8, UpperBound: 12}},
	}, nil
}

func (f *fakePlanning) WarehouseForecast(_ context.Context, _ string, req dto.WarehouseForecastRequest) (*dto.WarehouseForecastResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.WarehouseForecastResponse{ProductID: req.ProductID, Stores: 2}, nil
}

func (f *fakePlanning) ReorderList(_ context.Context, _ string, locationID string) (*dto.ReorderListResponse, error) {
	f.locationID = locationID
	if f.err != nil {
		return nil, f.err
	}
	return &dto.ReorderListResponse{LocationID: locationID, Total: 1, TotalCost: decimal.NewFromInt(300)}, nil
}

func (f *fakePlanning) WarehouseReorder(_ context.Context, _ string, productID, warehouseID string) (*dto.WarehouseReorderResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.WarehouseReorderResponse{ProductID: productID, WarehouseID: warehouseID, ShouldReorder: true}, nil
}

func (f *fakePlanning) ReorderReportPDF(_ context.Context, _ string, locationID string) ([]byte, error) {
	f.locationID = locationID
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.3 fake"), nil
}

func (f *fakePlanning) Assess(_ context.Context, _ string, locationID string) (*dto.RiskReportResponse, error) {
	f.locationID = locationID
	if f.err != nil {
		return nil, f.err
	}
	return &dto.RiskReportResponse{LocationID: locationID}, nil
}

func (f *fakePlanning) Suggest(_ context.Context, _ string, productID string) (*dto.TransferResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.TransferResponse{ProductID: productID}, nil
}

func (f *fakePlanning) SimulateItem(_ context.Context, _ string, req dto.SimulationRequest) (*dto.SimulationResponse, error) {
	f.simulation = req
	if f.err != nil {
		return nil, f.err
	}
	return &dto.SimulationResponse{ProductID: req.ProductID}, nil
}

func (f *fakePlanning) SimulateRaw(dto.RawSimulationRequest) (*dto.SimulationResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.SimulationResponse{}, nil
}

func (f *fakePlanning) Summary(_ context.Context, _ string, locationID string) (*dto.OverviewDTO, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.OverviewDTO{LocationID: locationID, ReorderCount: 3}, nil
}

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func newRouterApp(svc *fakePlanning, health *apphttp.HealthHandler) *fiber.App {
	app := fiber.New()
	app.Use(apphttp.RequestLogger(zerolog.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		Forecast:      svc,
		Replenishment: svc,
		Risk:          svc,
		Transfers:     svc,
		Simulation:    svc,
		Overview:      svc,
		Health:        health,
		JWTSecret:     testJWTSecret,
		JWTIssuer:     testIssuer,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, target, role string, body io.Reader) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if role != "" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestForecastHandler_ParseaQuery(t *testing.T) {
	svc := &fakePlanning{}
	app := newRouterApp(svc, nil)

	resp := call(t, app, http.MethodGet,
		"/api/forecast?product_id=leche&location_id=tienda-norte&model=exponential_smoothing&window=14&alpha=0.5&periods=10", "vendedor", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, testCompanyID, svc.companyID, "la empresa sale del token")
	assert.Equal(t, "leche", svc.forecastReq.ProductID)
	assert.Equal(t, "exponential_smoothing", svc.forecastReq.Model)
	assert.Equal(t, 14, svc.forecastReq.Window)
	assert.Equal(t, 0.5, svc.forecastReq.Alpha)
	assert.Equal(t, 10, svc.forecastReq.Periods)

	var body dto.ForecastResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Points, 1)
	assert.Equal(t, 12.0, body.Points[0].UpperBound)
}

func TestForecastHandler_QueryInvalida(t *testing.T) {
	app := newRouterApp(&fakePlanning{}, nil)
	resp := call(t, app, http.MethodGet, "/api/forecast?product_id=p&location_id=l&window=muchos", "admin", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_QUERY", decodeError(t, resp).Code)
}

func TestHandlers_MapeoDeErrores(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"entrada inválida", fmt.Errorf("%w: location_id es requerido", domain.ErrInvalidInput), http.StatusBadRequest, "VALIDATION"},
		{"no encontrado", fmt.Errorf("%w: ubicación x", domain.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"prohibido", domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"infraestructura", errors.New("conexión rechazada"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newRouterApp(&fakePlanning{err: tc.err}, nil)
			resp := call(t, app, http.MethodGet, "/api/risk?location_id=x", "admin", nil)
			defer resp.Body.Close()

			assert.Equal(t, tc.status, resp.StatusCode)
			body := decodeError(t, resp)
			assert.Equal(t, tc.code, body.Code)
			assert.NotContains(t, body.Message, "conexión rechazada", "los errores internos no se filtran al cliente")
		})
	}
}

func TestRouter_RequiereToken(t *testing.T) {
	app := newRouterApp(&fakePlanning{}, nil)
	for _, target := range []string{"/api/risk", "/api/transfers", "/api/overview", "/api/replenishment/reorders"} {
		resp := call(t, app, http.MethodGet, target, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, target)
		resp.Body.Close()
	}
}

func TestReplenishmentHandler_PDFRestringidoPorRol(t *testing.T) {
	svc := &fakePlanning{}
	app := newRouterApp(svc, nil)

	resp := call(t, app, http.MethodGet, "/api/replenishment/reorders/pdf?location_id=tienda-norte", "vendedor", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodGet, "/api/replenishment/reorders/pdf?location_id=tienda-norte", "bodeguero", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "reposicion-tienda-norte.pdf")
	data, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Equal(t, "tienda-norte", svc.locationID)
}

func TestReplenishmentHandler_ListaYBodega(t *testing.T) {
	svc := &fakePlanning{}
	app := newRouterApp(svc, nil)

	resp := call(t, app, http.MethodGet, "/api/replenishment/reorders?location_id=tienda-sur", "vendedor", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.ReorderListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	assert.Equal(t, "tienda-sur", list.LocationID)
	assert.True(t, decimal.NewFromInt(300).Equal(list.TotalCost))

	resp = call(t, app, http.MethodGet, "/api/replenishment/warehouse?product_id=leche&warehouse_id=bodega", "admin", nil)
	defer resp.Body.Close()
	var wh dto.WarehouseReorderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&wh))
	assert.Equal(t, "bodega", wh.WarehouseID)
	assert.True(t, wh.ShouldReorder)
}

func TestSimulationHandler(t *testing.T) {
	svc := &fakePlanning{}
	app := newRouterApp(svc, nil)

	resp := call(t, app, http.MethodPost, "/api/simulation", "admin",
		strings.NewReader(`{"product_id":"leche","location_id":"tienda-norte","demand_multiplier":1.5,"lead_time_delay_days":2}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	assert.Equal(t, 1.5, svc.simulation.DemandMultiplier)
	assert.Equal(t, 2.0, svc.simulation.LeadTimeDelayDays)

	resp = call(t, app, http.MethodPost, "/api/simulation/raw", "admin", strings.NewReader(`{"current_stock":`))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Code)
}

func TestOverviewYTransfers(t *testing.T) {
	app := newRouterApp(&fakePlanning{}, nil)

	resp := call(t, app, http.MethodGet, "/api/overview?location_id=tienda-norte", "vendedor", nil)
	var ov dto.OverviewDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ov))
	resp.Body.Close()
	assert.Equal(t, 3, ov.ReorderCount)

	resp = call(t, app, http.MethodGet, "/api/transfers?product_id=yogurt", "vendedor", nil)
	defer resp.Body.Close()
	var tr dto.TransferResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tr))
	assert.Equal(t, "yogurt", tr.ProductID)
}

func TestHealthHandler(t *testing.T) {
	t.Run("todo ok sin caché", func(t *testing.T) {
		app := newRouterApp(&fakePlanning{}, apphttp.NewHealthHandler(pinger{}, nil))
		resp := call(t, app, http.MethodGet, "/health", "", nil)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body dto.HealthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, dto.HealthResponse{Status: "ok", Database: "ok", Cache: "disabled"}, body)
	})

	t.Run("caché caído no degrada", func(t *testing.T) {
		app := newRouterApp(&fakePlanning{}, apphttp.NewHealthHandler(pinger{}, pinger{err: errors.New("down")}))
		resp := call(t, app, http.MethodGet, "/health", "", nil)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body dto.HealthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "down", body.Cache)
	})

	t.Run("base de datos caída", func(t *testing.T) {
		app := newRouterApp(&fakePlanning{}, apphttp.NewHealthHandler(pinger{err: errors.New("down")}, nil))
		resp := call(t, app, http.MethodGet, "/health", "", nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestRequestLogger_RequestID(t *testing.T) {
	app := newRouterApp(&fakePlanning{}, apphttp.NewHealthHandler(pinger{}, nil))

	resp := call(t, app, http.MethodGet, "/health", "", nil)
	resp.Body.Close()
	assert.Len(t, resp.Header.Get(apphttp.HeaderRequestID), 36)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "req-123", resp.Header.Get(apphttp.HeaderRequestID))
}
