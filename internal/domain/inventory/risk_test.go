package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invorya-planning/internal/domain/inventory"
)

func TestAssessStockoutRisk(t *testing.T) {
	cases := []struct {
		name                    string
		stock, demand, leadTime float64
		wantLevel               inventory.RiskLevel
		wantDays                int
	}{
		{"quiebre antes del lead time", 5, 1, 10, inventory.RiskHigh, 5},
		{"entre uno y dos lead times", 15, 1, 10, inventory.RiskMedium, 15},
		{"cobertura holgada", 100, 1, 5, inventory.RiskSafe, 100},
		{"sin demanda", 10, 0, 5, inventory.RiskSafe, inventory.MaxReportedDays},
		{"cobertura por encima del tope", 5000, 1, 5, inventory.RiskSafe, inventory.MaxReportedDays},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := inventory.AssessStockoutRisk(tc.stock, tc.demand, tc.leadTime)
			assert.Equal(t, tc.wantLevel, got.Level)
			assert.Equal(t, tc.wantDays, got.DaysToStockout)
		})
	}
}

func TestAssessOverstockRisk(t *testing.T) {
	assert.Equal(t, inventory.RiskHigh, inventory.AssessOverstockRisk(200, 90))
	assert.Equal(t, inventory.RiskMedium, inventory.AssessOverstockRisk(100, 90))
	assert.Equal(t, inventory.RiskSafe, inventory.AssessOverstockRisk(90, 90))
	assert.Equal(t, inventory.RiskHigh, inventory.AssessOverstockRisk(200, 0), "umbral cero usa 90 días")
	assert.Equal(t, inventory.RiskMedium, inventory.AssessOverstockRisk(50, 30))
}

func TestAssessPerishableRisk_FueraDeVentana(t *testing.T) {
	_, ok := inventory.AssessPerishableRisk(testNow.AddDate(0, 0, 20), 100, 10, 6, 5, testNow)
	assert.False(t, ok)
}

func TestAssessPerishableRisk_Tramos(t *testing.T) {
	r, ok := inventory.AssessPerishableRisk(testNow.AddDate(0, 0, 2), 100, 10, 6, 5, testNow)
	require.True(t, ok)
	assert.Equal(t, 2, r.DaysToExpiry)
	assert.Equal(t, 50.0, r.SuggestedDiscount)
	// 90 unidades en exceso × 10 × 0.5
	assert.Equal(t, 450.0, r.EstimatedRecovery)
	assert.Equal(t, 83.0, r.WastePrevention)

	r, ok = inventory.AssessPerishableRisk(testNow.AddDate(0, 0, 5), 100, 10, 6, 5, testNow)
	require.True(t, ok)
	assert.Equal(t, 25.0, r.SuggestedDiscount)
	assert.Equal(t, 562.5, r.EstimatedRecovery)
	assert.Equal(t, 100.0, r.WastePrevention, "la recuperación por encima del costo se limita a 100%")

	r, ok = inventory.AssessPerishableRisk(testNow.AddDate(0, 0, 14), 100, 10, 6, 5, testNow)
	require.True(t, ok)
	assert.Equal(t, 15.0, r.SuggestedDiscount)
}

func TestAssessPerishableRisk_SinExceso(t *testing.T) {
	r, ok := inventory.AssessPerishableRisk(testNow.AddDate(0, 0, 2), 5, 10, 6, 5, testNow)
	require.True(t, ok)
	assert.Equal(t, 0.0, r.EstimatedRecovery)
	assert.Equal(t, 0.0, r.WastePrevention, "sin unidades en exceso el denominador es cero")
}

func TestAssessPerishableRisk_YaVencido(t *testing.T) {
	r, ok := inventory.AssessPerishableRisk(testNow.AddDate(0, 0, -1), 10, 10, 6, 5, testNow)
	require.True(t, ok)
	assert.Equal(t, -1, r.DaysToExpiry)
	assert.Equal(t, 50.0, r.SuggestedDiscount)
	assert.Equal(t, 50.0, r.EstimatedRecovery)
}

func TestGenerateRiskAssessment_Precedencia(t *testing.T) {
	t.Run("quiebre alto primero", func(t *testing.T) {
		got := inventory.GenerateRiskAssessment(inventory.RiskParams{
			ProductID: "p", LocationID: "l", CurrentStock: 5, AvgDailyDemand: 1, LeadTimeDays: 10,
		})
		assert.Equal(t, inventory.RiskHigh, got.RiskLevel)
		assert.Equal(t, inventory.RiskTypeStockout, got.RiskType)
		assert.Equal(t, inventory.SeverityHigh, got.Severity)
		assert.Equal(t, 5, got.DaysToStockout)
		assert.Equal(t, "p", got.ProductID)
		assert.Contains(t, got.Message, "5 días")
	})

	t.Run("sobrestock alto", func(t *testing.T) {
		got := inventory.GenerateRiskAssessment(inventory.RiskParams{
			CurrentStock: 1000, AvgDailyDemand: 2, LeadTimeDays: 5,
		})
		assert.Equal(t, inventory.RiskMedium, got.RiskLevel)
		assert.Equal(t, inventory.RiskTypeOverstock, got.RiskType)
		assert.Equal(t, inventory.SeverityMedium, got.Severity)
		assert.Contains(t, got.Message, "500 días")
	})

	t.Run("sobrestock medio no se reporta", func(t *testing.T) {
		got := inventory.GenerateRiskAssessment(inventory.RiskParams{
			CurrentStock: 120, AvgDailyDemand: 1, LeadTimeDays: 5,
		})
		assert.Equal(t, inventory.RiskSafe, got.RiskLevel)
		assert.Equal(t, inventory.RiskTypeHealthy, got.RiskType)
		assert.Equal(t, inventory.SeverityLow, got.Severity)
	})

	t.Run("genérico medio", func(t *testing.T) {
		got := inventory.GenerateRiskAssessment(inventory.RiskParams{
			CurrentStock: 15, AvgDailyDemand: 1, LeadTimeDays: 10,
		})
		assert.Equal(t, inventory.RiskMedium, got.RiskLevel)
		assert.Equal(t, inventory.RiskTypeStockout, got.RiskType)
		assert.Equal(t, inventory.SeverityMedium, got.Severity)
		assert.Equal(t, "15 días de stock restantes", got.Message)
	})

	t.Run("sin demanda con stock es sobrestock", func(t *testing.T) {
		got := inventory.GenerateRiskAssessment(inventory.RiskParams{
			CurrentStock: 10, AvgDailyDemand: 0, LeadTimeDays: 5,
		})
		assert.Equal(t, inventory.RiskTypeOverstock, got.RiskType)
		assert.Equal(t, inventory.MaxReportedDays, got.DaysToStockout)
	})
}

func TestAssessPerishableRisk_UsaFechaCalendario(t *testing.T) {
	lateNight := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	expiry := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	r, ok := inventory.AssessPerishableRisk(expiry, 10, 1, 1, 1, lateNight)
	require.True(t, ok)
	assert.Equal(t, 3, r.DaysToExpiry)
}
