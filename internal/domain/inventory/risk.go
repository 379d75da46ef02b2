package inventory

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/jhoicas/invorya-planning/internal/domain/stats"
)

const (
	// DefaultOverstockThresholdDays días de inventario a partir de los cuales hay sobrestock.
	DefaultOverstockThresholdDays = 90
	// PerishableWindowDays solo se evalúan perecederos que vencen dentro de esta ventana.
	PerishableWindowDays = 14
)

// AssessStockoutRisk clasifica el riesgo de quiebre comparando los días hasta quiebre
// con el lead time: high si llega antes del reabastecimiento, medium si antes de 2 lead times.
func AssessStockoutRisk(currentStock, dailyDemand, leadTimeDays float64) StockoutRisk {
	days := math.Inf(1)
	if dailyDemand > 0 {
		days = math.Floor(currentStock / dailyDemand)
	}

	level := RiskSafe
	switch {
	case days < leadTimeDays:
		level = RiskHigh
	case days < 2*leadTimeDays:
		level = RiskMedium
	}
	return StockoutRisk{Level: level, DaysToStockout: capDays(days)}
}

// AssessOverstockRisk clasifica el sobrestock. threshold <= 0 usa DefaultOverstockThresholdDays.
func AssessOverstockRisk(daysOfInventory, threshold float64) RiskLevel {
	if threshold <= 0 {
		threshold = DefaultOverstockThresholdDays
	}
	switch {
	case daysOfInventory > 2*threshold:
		return RiskHigh
	case daysOfInventory > threshold:
		return RiskMedium
	default:
		return RiskSafe
	}
}

// AssessPerishableRisk estima el descuento y la recuperación para las unidades que no alcanzan
// a venderse antes del vencimiento. Devuelve false si faltan más de PerishableWindowDays días.
//
// Tramos de descuento: <= 3 días 50%, <= 7 días 25%, resto 15%.
func AssessPerishableRisk(
	expiryDate time.Time,
	currentStock int,
	sellingPrice, costPrice, avgDailyDemand float64,
	now time.Time,
) (PerishableRisk, bool) {
	daysToExpiry := stats.DaysBetween(now, expiryDate)
	if daysToExpiry > PerishableWindowDays {
		return PerishableRisk{}, false
	}

	// Un producto ya vencido no vende más unidades.
	horizon := float64(max(daysToExpiry, 0))
	sellable := min(currentStock, max(0, stats.CeilInt(avgDailyDemand*horizon)))
	excess := currentStock - sellable

	discount := 15.0
	switch {
	case daysToExpiry <= 3:
		discount = 50
	case daysToExpiry <= 7:
		discount = 25
	}

	recovery := float64(excess) * sellingPrice * (1 - discount/100)

	var waste float64
	if denom := float64(excess) * costPrice; denom > 0 {
		waste = math.Min(100, stats.Round(recovery/denom*100))
	}

	return PerishableRisk{
		DaysToExpiry:      daysToExpiry,
		SuggestedDiscount: discount,
		EstimatedRecovery: recovery,
		WastePrevention:   waste,
	}, true
}

// RiskParams entrada de GenerateRiskAssessment.
type RiskParams struct {
	ProductID              string
	LocationID             string
	CurrentStock           int
	AvgDailyDemand         float64
	LeadTimeDays           float64
	OverstockThresholdDays float64 // <= 0 usa DefaultOverstockThresholdDays
}

// GenerateRiskAssessment combina las evaluaciones con precedencia fija:
// quiebre alto > sobrestock alto > mensaje genérico de cobertura.
func GenerateRiskAssessment(p RiskParams) RiskAssessment {
	out := RiskAssessment{ProductID: p.ProductID, LocationID: p.LocationID}

	stockout := AssessStockoutRisk(float64(p.CurrentStock), p.AvgDailyDemand, p.LeadTimeDays)
	out.DaysToStockout = stockout.DaysToStockout

	if stockout.Level == RiskHigh {
		out.RiskLevel = RiskHigh
		out.RiskType = RiskTypeStockout
		out.Severity = SeverityHigh
		out.Message = fmt.Sprintf("Quiebre de stock en %d días, antes del lead time de %s días",
			stockout.DaysToStockout, formatDays(p.LeadTimeDays))
		return out
	}

	doi := DaysOfInventory(float64(p.CurrentStock), p.AvgDailyDemand)
	if AssessOverstockRisk(doi, p.OverstockThresholdDays) == RiskHigh {
		out.RiskLevel = RiskMedium
		out.RiskType = RiskTypeOverstock
		out.Severity = SeverityMedium
		out.Message = fmt.Sprintf("Sobrestock: %d días de inventario", capDays(doi))
		return out
	}

	out.RiskLevel = stockout.Level
	out.Message = fmt.Sprintf("%d días de stock restantes", stockout.DaysToStockout)
	if stockout.Level == RiskMedium {
		out.RiskType = RiskTypeStockout
		out.Severity = SeverityMedium
	} else {
		out.RiskType = RiskTypeHealthy
		out.Severity = SeverityLow
	}
	return out
}

func capDays(days float64) int {
	if days > MaxReportedDays {
		return MaxReportedDays
	}
	return int(days)
}

func formatDays(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}
