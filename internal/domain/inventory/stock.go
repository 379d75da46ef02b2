package inventory

import (
	"math"
	"time"

	"github.com/jhoicas/invorya-planning/internal/domain/stats"
)

// DefaultZScore cuantil normal para un nivel de servicio del 95%.
const DefaultZScore = 1.65

// reorderCoverFactor mínimo de cobertura de un pedido, en múltiplos de la demanda durante el lead time.
const reorderCoverFactor = 1.5

// SafetyStock = ceil(z × σ × √L). Un zScore <= 0 usa DefaultZScore.
func SafetyStock(stdDevDemand, leadTimeDays, zScore float64) int {
	if zScore <= 0 {
		zScore = DefaultZScore
	}
	return stats.CeilInt(zScore * stdDevDemand * math.Sqrt(math.Max(0, leadTimeDays)))
}

// ReorderPoint = ceil(d × L + SS).
func ReorderPoint(avgDailyDemand, leadTimeDays float64, safetyStock int) int {
	return stats.CeilInt(avgDailyDemand*leadTimeDays + float64(safetyStock))
}

// DaysOfInventory días de cobertura redondeados. Sin demanda el stock no se agota: devuelve +Inf.
func DaysOfInventory(currentStock, avgDailyDemand float64) float64 {
	if avgDailyDemand <= 0 {
		return math.Inf(1)
	}
	return stats.Round(currentStock / avgDailyDemand)
}

// EconomicOrderQuantity = ceil(√(2DS/H)). Con H <= 0 el EOQ no está definido y devuelve 0.
func EconomicOrderQuantity(annualDemand, orderingCost, holdingCost float64) int {
	if holdingCost <= 0 {
		return 0
	}
	return stats.CeilInt(math.Sqrt(2 * annualDemand * orderingCost / holdingCost))
}

// HoldingCost costo de mantener el inventario promedio, redondeado al entero.
func HoldingCost(avgInventory, costPerUnit, holdingPercent float64) float64 {
	return stats.Round(avgInventory * costPerUnit * holdingPercent / 100)
}

// InventoryTurnover rotación COGS / valor de inventario promedio, a un decimal. 0 sin inventario.
func InventoryTurnover(cogs, avgInventoryValue float64) float64 {
	if avgInventoryValue <= 0 {
		return 0
	}
	return stats.Round1(cogs / avgInventoryValue)
}

// SuggestReorder devuelve el pedido sugerido cuando el stock disponible (actual - reservado)
// está en o por debajo del punto de reorden. El segundo valor es false si no hace falta pedir.
//
// La fecha sugerida es hoy + max(0, díasHastaQuiebre - leadTime): el último día en que el pedido
// llega antes del quiebre.
func SuggestReorder(item Item, stdDevDemand float64, now time.Time) (ReorderSuggestion, bool) {
	safety := SafetyStock(stdDevDemand, item.LeadTimeDays, DefaultZScore)
	rop := ReorderPoint(item.AvgDailyDemand, item.LeadTimeDays, safety)

	available := item.CurrentStock - item.ReservedStock
	if available > rop {
		return ReorderSuggestion{}, false
	}

	qty := max(rop-available+safety, stats.CeilInt(item.AvgDailyDemand*item.LeadTimeDays*reorderCoverFactor))

	daysToStockout := 0.0
	if item.AvgDailyDemand > 0 {
		daysToStockout = math.Floor(float64(available) / item.AvgDailyDemand)
	}
	offset := int(math.Floor(math.Max(0, daysToStockout-item.LeadTimeDays)))

	return ReorderSuggestion{
		ProductID:         item.ProductID,
		LocationID:        item.LocationID,
		CurrentStock:      item.CurrentStock,
		ReorderPoint:      rop,
		SafetyStock:       safety,
		SuggestedQuantity: qty,
		SuggestedDate:     stats.StartOfDay(now).AddDate(0, 0, offset),
		EstimatedCost:     float64(qty) * item.CostPrice,
	}, true
}
