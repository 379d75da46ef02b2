package inventory

import (
	"math"

	"github.com/jhoicas/invorya-planning/internal/domain/stats"
)

// lostSalesHorizonDays horizonte para estimar la venta perdida por el aumento de demanda.
const lostSalesHorizonDays = 30

// SimulationInput parámetros del escenario "qué pasa si".
type SimulationInput struct {
	CurrentStock       int
	AvgDailyDemand     float64
	StdDevDemand       float64
	LeadTimeDays       float64
	CostPrice          float64
	SellingPrice       float64
	HoldingCostPercent float64
	DemandMultiplier   float64 // <= 0 equivale a 1 (sin cambio)
	LeadTimeDelayDays  float64
	ZScore             float64 // <= 0 usa DefaultZScore
}

// SimulationMetrics indicadores de un escenario.
type SimulationMetrics struct {
	AvgDailyDemand  float64
	StdDevDemand    float64
	LeadTimeDays    float64
	SafetyStock     int
	ReorderPoint    int
	DaysOfInventory float64 // +Inf sin demanda
	HoldingCost     float64
	Stockout        StockoutRisk
}

// SimulationImpact diferencias entre el escenario simulado y el actual.
type SimulationImpact struct {
	SafetyStockChange     int
	ReorderPointChange    int
	LostSalesRisk         float64
	AdditionalHoldingCost float64
}

// SimulationResult comparación antes/después.
type SimulationResult struct {
	Before SimulationMetrics
	After  SimulationMetrics
	Impact SimulationImpact
}

// Simulate recalcula stock de seguridad, punto de reorden, costo de mantener y riesgo de quiebre
// con demanda × multiplicador y lead time + retraso. La desviación escala con √multiplicador.
//
// El inventario promedio usado para el costo de mantener es SS + d×L/2.
func Simulate(in SimulationInput) SimulationResult {
	multiplier := in.DemandMultiplier
	if multiplier <= 0 {
		multiplier = 1
	}

	before := in.metrics(in.AvgDailyDemand, in.StdDevDemand, in.LeadTimeDays)
	after := in.metrics(
		in.AvgDailyDemand*multiplier,
		in.StdDevDemand*math.Sqrt(multiplier),
		in.LeadTimeDays+in.LeadTimeDelayDays,
	)

	lostUnits := math.Max(0, (after.AvgDailyDemand-before.AvgDailyDemand)*lostSalesHorizonDays)

	return SimulationResult{
		Before: before,
		After:  after,
		Impact: SimulationImpact{
			SafetyStockChange:     after.SafetyStock - before.SafetyStock,
			ReorderPointChange:    after.ReorderPoint - before.ReorderPoint,
			LostSalesRisk:         stats.Round(lostUnits * in.SellingPrice),
			AdditionalHoldingCost: after.HoldingCost - before.HoldingCost,
		},
	}
}

func (in SimulationInput) metrics(demand, stdDev, leadTime float64) SimulationMetrics {
	safety := SafetyStock(stdDev, leadTime, in.ZScore)
	avgInventory := float64(safety) + demand*leadTime/2
	return SimulationMetrics{
		AvgDailyDemand:  demand,
		StdDevDemand:    stdDev,
		LeadTimeDays:    leadTime,
		SafetyStock:     safety,
		ReorderPoint:    ReorderPoint(demand, leadTime, safety),
		DaysOfInventory: DaysOfInventory(float64(in.CurrentStock), demand),
		HoldingCost:     HoldingCost(avgInventory, in.CostPrice, in.HoldingCostPercent),
		Stockout:        AssessStockoutRisk(float64(in.CurrentStock), demand, leadTime),
	}
}
