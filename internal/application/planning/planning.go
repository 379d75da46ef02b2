// Package planning contiene los casos de uso de planificación de inventario: pronóstico de demanda,
// reposición, riesgo, traslados entre ubicaciones, simulación y resumen.
//
// Cada caso de uso lee filas vía los puertos de repository, las convierte en entradas de los
// paquetes de cálculo (inventory, forecast) y arma los DTOs de respuesta.
package planning

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invorya-planning/internal/application/dto"
	"github.com/jhoicas/invorya-planning/internal/domain/entity"
	"github.com/jhoicas/invorya-planning/internal/domain/forecast"
	"github.com/jhoicas/invorya-planning/internal/domain/inventory"
	"github.com/jhoicas/invorya-planning/internal/domain/stats"
	"github.com/jhoicas/invorya-planning/pkg/config"
)

// Límites de los parámetros recibidos por query string.
const (
	maxHistoryDays = 730
	maxPeriods     = 365
	maxWindow      = 90
)

// Settings parámetros por defecto de los cálculos (se cargan desde config).
type Settings struct {
	ZScore                 float64
	OverstockThresholdDays float64
	HistoryDays            int
	ForecastPeriods        int
	Window                 int
	Alpha                  float64
	ForecastTTL            time.Duration // vigencia del pronóstico en caché
}

// DefaultSettings valores usados cuando la configuración no define otros.
func DefaultSettings() Settings {
	return Settings{
		ZScore:                 inventory.DefaultZScore,
		OverstockThresholdDays: inventory.DefaultOverstockThresholdDays,
		HistoryDays:            90,
		ForecastPeriods:        forecast.DefaultPeriods,
		Window:                 forecast.DefaultWindow,
		Alpha:                  forecast.DefaultAlpha,
		ForecastTTL:            time.Hour,
	}
}

// SettingsFromConfig arma los parámetros a partir de la configuración cargada.
func SettingsFromConfig(c config.PlanningConfig, forecastTTL time.Duration) Settings {
	return Settings{
		ZScore:                 c.ZScore,
		OverstockThresholdDays: c.OverstockThresholdDays,
		HistoryDays:            c.HistoryDays,
		ForecastPeriods:        c.ForecastPeriods,
		Window:                 c.Window,
		Alpha:                  c.Alpha,
		ForecastTTL:            forecastTTL,
	}.withDefaults()
}

// withDefaults completa los campos en cero.
func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.ZScore <= 0 {
		s.ZScore = d.ZScore
	}
	if s.OverstockThresholdDays <= 0 {
		s.OverstockThresholdDays = d.OverstockThresholdDays
	}
	if s.HistoryDays <= 0 {
		s.HistoryDays = d.HistoryDays
	}
	if s.ForecastPeriods <= 0 {
		s.ForecastPeriods = d.ForecastPeriods
	}
	if s.Window <= 0 {
		s.Window = d.Window
	}
	if s.Alpha <= 0 || s.Alpha > 1 {
		s.Alpha = d.Alpha
	}
	if s.ForecastTTL <= 0 {
		s.ForecastTTL = d.ForecastTTL
	}
	return s
}

// historyStart primer día del historial a consultar.
func historyStart(now time.Time, days int) time.Time {
	return stats.StartOfDay(now).AddDate(0, 0, -days)
}

// effectiveDemand demanda diaria registrada en el inventario; si no hay, el promedio del historial.
func effectiveDemand(recorded float64, history []forecast.DemandPoint) float64 {
	if recorded > 0 {
		return recorded
	}
	return stats.Mean(quantities(history))
}

// demandStdDev desviación poblacional de la demanda diaria observada.
func demandStdDev(history []forecast.DemandPoint) float64 {
	return stats.StdDev(quantities(history))
}

func quantities(history []forecast.DemandPoint) []float64 {
	out := make([]float64, len(history))
	for i, p := range history {
		out[i] = float64(p.Quantity)
	}
	return out
}

// toItem convierte la fila de inventario en la entrada de los cálculos.
func toItem(e *entity.InventoryItem, history []forecast.DemandPoint) inventory.Item {
	return inventory.Item{
		ProductID:          e.ProductID,
		LocationID:         e.LocationID,
		CurrentStock:       e.CurrentStock,
		ReservedStock:      e.ReservedStock,
		AvgDailyDemand:     effectiveDemand(e.AvgDailyDemand, history),
		LeadTimeDays:       e.LeadTimeDays,
		HoldingCostPercent: e.HoldingCostPercent,
		CostPrice:          e.CostPrice.InexactFloat64(),
		SellingPrice:       e.SellingPrice.InexactFloat64(),
		Perishable:         e.Perishable,
		ExpiryDate:         e.ExpiryDate,
	}
}

// money redondea a 2 decimales para las respuestas.
func money(v float64) decimal.Decimal {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v).Round(2)
}

// reportDays días para JSON: +Inf y valores grandes se reportan como 999.
func reportDays(days float64) int {
	if math.IsInf(days, 1) || days > inventory.MaxReportedDays {
		return inventory.MaxReportedDays
	}
	return int(math.Floor(days))
}

func dateLabel(t time.Time) string {
	return t.Format(dto.DateLayout)
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return months[t.Month()-1] + " " + t.Format("2006")
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
