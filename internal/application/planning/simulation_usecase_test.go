package planning

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invorya-planning/internal/application/dto"
	"github.com/jhoicas/invorya-planning/internal/domain"
)

func newTestSimulation(items *fakeItems, sales *fakeSales) *SimulationUseCase {
	uc := NewSimulationUseCase(items, sales, DefaultSettings(), nopLogger)
	uc.now = fixedClock
	return uc
}

func TestSimulateItem_SinCambiosEsIdentico(t *testing.T) {
	uc := newTestSimulation(storeItems(), storeSales())

	got, err := uc.SimulateItem(context.Background(), testCompany, dto.SimulationRequest{
		ProductID: "p-cafe", LocationID: "tienda-norte",
	})
	require.NoError(t, err)

	assert.Equal(t, got.Before, got.After)
	assert.Equal(t, 6, got.Before.SafetyStock)
	assert.Equal(t, 21, got.Before.ReorderPoint)
	assert.Equal(t, 2.0, got.Before.StdDevDemand)
	assert.Equal(t, 0, got.Impact.SafetyStockChange)
	assert.True(t, got.Impact.LostSalesRisk.IsZero())
	assert.Equal(t, "p-cafe", got.ProductID)
}

func TestSimulateItem_DemandaDobleYRetraso(t *testing.T) {
	uc := newTestSimulation(storeItems(), storeSales())

	got, err := uc.SimulateItem(context.Background(), testCompany, dto.SimulationRequest{
		ProductID: "p-cafe", LocationID: "tienda-norte", DemandMultiplier: 2, LeadTimeDelayDays: 1,
	})
	require.NoError(t, err)

	// d = 10, σ = 2√2, L = 4 → SS = ceil(1.65 × 2.83 × 2) = 10, ROP = 50
	assert.Equal(t, 10.0, got.After.AvgDailyDemand)
	assert.Equal(t, 4.0, got.After.LeadTimeDays)
	assert.Equal(t, 10, got.After.SafetyStock)
	assert.Equal(t, 50, got.After.ReorderPoint)
	assert.Equal(t, 4, got.Impact.SafetyStockChange)
	assert.Equal(t, 29, got.Impact.ReorderPointChange)
	assert.Equal(t, "high", got.After.StockoutRisk)
}

func TestSimulateItem_Errores(t *testing.T) {
	uc := newTestSimulation(storeItems(), storeSales())
	ctx := context.Background()

	_, err := uc.SimulateItem(ctx, testCompany, dto.SimulationRequest{ProductID: "p-cafe"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.SimulateItem(ctx, testCompany, dto.SimulationRequest{ProductID: "p-cafe", LocationID: "tienda-norte", DemandMultiplier: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.SimulateItem(ctx, testCompany, dto.SimulationRequest{ProductID: "p-cafe", LocationID: "tienda-norte", LeadTimeDelayDays: -2})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.SimulateItem(ctx, testCompany, dto.SimulationRequest{ProductID: "p-cafe", LocationID: "tienda-sur"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSimulateRaw(t *testing.T) {
	uc := newTestSimulation(&fakeItems{}, newFakeSales())

	got, err := uc.SimulateRaw(dto.RawSimulationRequest{
		CurrentStock:       100,
		AvgDailyDemand:     10,
		StdDevDemand:       4,
		LeadTimeDays:       4,
		CostPrice:          5,
		SellingPrice:       12,
		HoldingCostPercent: 20,
		DemandMultiplier:   1.5,
		LeadTimeDelayDays:  2,
	})
	require.NoError(t, err)

	assert.Equal(t, 14, got.Before.SafetyStock)
	assert.Equal(t, 54, got.Before.ReorderPoint)
	assert.Equal(t, 10, got.Before.DaysOfInventory)
	assert.True(t, decimal.NewFromInt(34).Equal(got.Before.HoldingCost))
	assert.Equal(t, 110, got.After.ReorderPoint)
	assert.Equal(t, "medium", got.After.StockoutRisk)
	assert.True(t, decimal.NewFromInt(1800).Equal(got.Impact.LostSalesRisk))
	assert.True(t, decimal.NewFromInt(31).Equal(got.Impact.AdditionalHoldingCost))
	assert.Empty(t, got.ProductID)
}

func TestSimulateRaw_SinDemandaReportaTope(t *testing.T) {
	uc := newTestSimulation(&fakeItems{}, newFakeSales())

	got, err := uc.SimulateRaw(dto.RawSimulationRequest{CurrentStock: 10, LeadTimeDays: 5})
	require.NoError(t, err)
	assert.Equal(t, 999, got.Before.DaysOfInventory)
	assert.Equal(t, 999, got.Before.DaysToStockout)
	assert.Equal(t, "safe", got.Before.StockoutRisk)
}

func TestSimulateRaw_Validaciones(t *testing.T) {
	uc := newTestSimulation(&fakeItems{}, newFakeSales())

	_, err := uc.SimulateRaw(dto.RawSimulationRequest{CurrentStock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.SimulateRaw(dto.RawSimulationRequest{CurrentStock: 10, DemandMultiplier: 11})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
