package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/invorya-planning/internal/domain/inventory"
)

func baseSimulation() inventory.SimulationInput {
	return inventory.SimulationInput{
		CurrentStock:       100,
		AvgDailyDemand:     10,
		StdDevDemand:       4,
		LeadTimeDays:       4,
		CostPrice:          5,
		SellingPrice:       12,
		HoldingCostPercent: 20,
		DemandMultiplier:   1.5,
		LeadTimeDelayDays:  2,
	}
}

func TestSimulate_AntesYDespues(t *testing.T) {
	res := inventory.Simulate(baseSimulation())

	assert.Equal(t, 14, res.Before.SafetyStock)
	assert.Equal(t, 54, res.Before.ReorderPoint)
	assert.Equal(t, 34.0, res.Before.HoldingCost)
	assert.Equal(t, inventory.RiskSafe, res.Before.Stockout.Level)
	assert.Equal(t, 10.0, res.Before.DaysOfInventory)

	assert.Equal(t, 15.0, res.After.AvgDailyDemand)
	assert.Equal(t, 6.0, res.After.LeadTimeDays)
	assert.Equal(t, 20, res.After.SafetyStock)
	assert.Equal(t, 110, res.After.ReorderPoint)
	assert.Equal(t, 65.0, res.After.HoldingCost)
	assert.Equal(t, inventory.RiskMedium, res.After.Stockout.Level)
	assert.Equal(t, 7.0, res.After.DaysOfInventory)

	assert.Equal(t, 6, res.Impact.SafetyStockChange)
	assert.Equal(t, 56, res.Impact.ReorderPointChange)
	assert.Equal(t, 1800.0, res.Impact.LostSalesRisk)
	assert.Equal(t, 31.0, res.Impact.AdditionalHoldingCost)
}

func TestSimulate_SinCambios(t *testing.T) {
	in := baseSimulation()
	in.DemandMultiplier = 0
	in.LeadTimeDelayDays = 0

	res := inventory.Simulate(in)
	assert.Equal(t, res.Before, res.After)
	assert.Equal(t, inventory.SimulationImpact{}, res.Impact)
}

func TestSimulate_DemandaMenorNoGeneraVentaPerdida(t *testing.T) {
	in := baseSimulation()
	in.DemandMultiplier = 0.5
	res := inventory.Simulate(in)
	assert.Equal(t, 0.0, res.Impact.LostSalesRisk)
	assert.Less(t, res.Impact.AdditionalHoldingCost, 1000.0)
}

func TestSimulate_Idempotente(t *testing.T) {
	in := baseSimulation()
	assert.Equal(t, inventory.Simulate(in), inventory.Simulate(in))
}
