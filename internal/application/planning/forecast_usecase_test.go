package planning

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invorya-planning/internal/application/dto"
	"github.com/jhoicas/invorya-planning/internal/domain"
	"github.com/jhoicas/invorya-planning/internal/domain/entity"
)

func testProducts() *fakeProducts {
	return &fakeProducts{list: []*entity.Product{
		{ID: "p-leche", CompanyID: testCompany, SKU: "LEC-01", Name: "Leche entera"},
	}}
}

func newTestForecast(sales *fakeSales, cache *memCache) *ForecastUseCase {
	uc := NewForecastUseCase(sales, testLocations(), testProducts(), cache, DefaultSettings(), nopLogger)
	uc.now = fixedClock
	return uc
}

func TestForecast_PromedioMovilYCache(t *testing.T) {
	sales := newFakeSales().add("p-leche", "tienda-norte", repeat(10, 14)...)
	cache := newMemCache()
	uc := newTestForecast(sales, cache)
	req := dto.ForecastRequest{ProductID: "p-leche", LocationID: "tienda-norte", Periods: 3}

	got, err := uc.Forecast(context.Background(), testCompany, req)
	require.NoError(t, err)

	assert.Equal(t, "moving_average", got.Model)
	assert.Equal(t, 14, got.HistoryDays)
	assert.Equal(t, 0.0, got.MAPE)
	assert.False(t, got.Cached)
	require.Len(t, got.Points, 3)
	assert.Equal(t, "2026-03-11", got.Points[0].Date)
	assert.Equal(t, "2026-03-13", got.Points[2].Date)
	for _, p := range got.Points {
		assert.Equal(t, 10.0, p.Predicted)
		assert.Equal(t, 10.0, p.LowerBound)
		assert.Equal(t, 10.0, p.UpperBound)
	}

	keys := cache.keys()
	require.Len(t, keys, 1)
	assert.True(t, strings.HasSuffix(keys[0], ":2026-03-10"), "la clave incluye el día: %s", keys[0])
	assert.Equal(t, time.Hour, cache.ttl)

	again, err := uc.Forecast(context.Background(), testCompany, req)
	require.NoError(t, err)
	assert.True(t, again.Cached)
	assert.Equal(t, got.Points, again.Points)
	assert.Equal(t, int32(1), sales.calls.Load(), "la segunda llamada no consulta ventas")
}

func TestForecast_SuavizamientoExponencial(t *testing.T) {
	sales := newFakeSales().add("p-leche", "tienda-norte", 10, 20)
	uc := newTestForecast(sales, newMemCache())

	got, err := uc.Forecast(context.Background(), testCompany, dto.ForecastRequest{
		ProductID: "p-leche", LocationID: "tienda-norte", Model: "exponential_smoothing", Alpha: 0.5, Periods: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, "exponential_smoothing", got.Model)
	require.Len(t, got.Points, 2)
	assert.Equal(t, 15.0, got.Points[0].Predicted)
	assert.Equal(t, -5.0, got.Points[0].LowerBound)
	assert.Equal(t, 35.0, got.Points[0].UpperBound)
}

func TestForecast_CacheCaidoNoFallaLaPeticion(t *testing.T) {
	sales := newFakeSales().add("p-leche", "tienda-norte", repeat(10, 14)...)
	cache := newMemCache()
	cache.getErr = errDB
	cache.setErr = errDB
	uc := newTestForecast(sales, cache)

	got, err := uc.Forecast(context.Background(), testCompany, dto.ForecastRequest{ProductID: "p-leche", LocationID: "tienda-norte"})
	require.NoError(t, err)
	assert.Len(t, got.Points, 30, "periodos por defecto")
	assert.False(t, got.Cached)
}

func TestForecast_SinHistorial(t *testing.T) {
	uc := newTestForecast(newFakeSales(), newMemCache())

	got, err := uc.Forecast(context.Background(), testCompany, dto.ForecastRequest{ProductID: "p-leche", LocationID: "tienda-sur"})
	require.NoError(t, err)
	assert.NotNil(t, got.Points)
	assert.Empty(t, got.Points)
	assert.Equal(t, 0.0, got.MAPE)
}

func TestForecast_Validaciones(t *testing.T) {
	uc := newTestForecast(newFakeSales(), newMemCache())
	ctx := context.Background()

	cases := []struct {
		name string
		req  dto.ForecastRequest
		want error
	}{
		{"sin producto", dto.ForecastRequest{LocationID: "tienda-norte"}, domain.ErrInvalidInput},
		{"modelo desconocido", dto.ForecastRequest{ProductID: "p", LocationID: "tienda-norte", Model: "arima"}, domain.ErrInvalidInput},
		{"alpha fuera de rango", dto.ForecastRequest{ProductID: "p", LocationID: "tienda-norte", Alpha: 1.5}, domain.ErrInvalidInput},
		{"ubicación inexistente", dto.ForecastRequest{ProductID: "p", LocationID: "no-existe"}, domain.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Forecast(ctx, testCompany, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWarehouseForecast_SumaTiendas(t *testing.T) {
	sales := newFakeSales().
		add("p-leche", "tienda-norte", repeat(10, 7)...).
		add("p-leche", "tienda-sur", repeat(4, 7)...).
		add("p-leche", "bodega", repeat(100, 7)...)
	uc := newTestForecast(sales, newMemCache())

	got, err := uc.WarehouseForecast(context.Background(), testCompany, dto.WarehouseForecastRequest{ProductID: "p-leche", Periods: 3})
	require.NoError(t, err)

	assert.Equal(t, "Leche entera", got.ProductName)
	assert.Equal(t, 2, got.Stores, "la bodega no cuenta como tienda")
	require.Len(t, got.Points, 3)
	for _, p := range got.Points {
		assert.Equal(t, 14.0, p.Predicted)
		assert.Equal(t, "aggregated", p.Model)
	}
	assert.Equal(t, "2026-03-11", got.Points[0].Date)
}

func TestWarehouseForecast_Errores(t *testing.T) {
	ctx := context.Background()
	uc := newTestForecast(newFakeSales(), newMemCache())

	_, err := uc.WarehouseForecast(ctx, testCompany, dto.WarehouseForecastRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.WarehouseForecast(ctx, testCompany, dto.WarehouseForecastRequest{ProductID: "p-nada"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	sales := newFakeSales()
	sales.err = errDB
	uc = newTestForecast(sales, newMemCache())
	_, err = uc.WarehouseForecast(ctx, testCompany, dto.WarehouseForecastRequest{ProductID: "p-leche"})
	assert.ErrorIs(t, err, errDB)
}
