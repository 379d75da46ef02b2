package planning

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/invorya-planning/internal/application/dto"
)

const overviewUrgent = 5 // pedidos más urgentes en el resumen

// OverviewUseCase arma el resumen de planificación de una ubicación (widget del tablero).
//
// Fuente de datos: los casos de uso de reposición y riesgo; no consulta repositorios directamente.
type OverviewUseCase struct {
	replenishment *ReplenishmentUseCase
	risk          *RiskUseCase
	now           func() time.Time
}

// NewOverviewUseCase construye el caso de uso.
func NewOverviewUseCase(replenishment *ReplenishmentUseCase, risk *RiskUseCase) *OverviewUseCase {
	return &OverviewUseCase{replenishment: replenishment, risk: risk, now: time.Now}
}

// Summary construye el OverviewDTO de la ubicación.
//
// Dos cálculos en paralelo:
//  1. ReorderList → ReorderCount, ReorderCost, Urgent
//  2. Assess      → Risk
func (uc *OverviewUseCase) Summary(ctx context.Context, companyID, locationID string) (*dto.OverviewDTO, error) {
	type reorderResult struct {
		list *dto.ReorderListResponse
		err  error
	}
	type riskResult struct {
		report *dto.RiskReportResponse
		err    error
	}

	reorderCh := make(chan reorderResult, 1)
	riskCh := make(chan riskResult, 1)

	go func() {
		list, err := uc.replenishment.ReorderList(ctx, companyID, locationID)
		reorderCh <- reorderResult{list, err}
	}()
	go func() {
		report, err := uc.risk.Assess(ctx, companyID, locationID)
		riskCh <- riskResult{report, err}
	}()

	reorder := <-reorderCh
	risk := <-riskCh

	if reorder.err != nil {
		return nil, fmt.Errorf("resumen: reposición: %w", reorder.err)
	}
	if risk.err != nil {
		return nil, fmt.Errorf("resumen: riesgo: %w", risk.err)
	}

	urgent := reorder.list.Suggestions
	if len(urgent) > overviewUrgent {
		urgent = urgent[:overviewUrgent]
	}

	return &dto.OverviewDTO{
		LocationID:   reorder.list.LocationID,
		LocationName: reorder.list.LocationName,
		ReorderCount: reorder.list.Total,
		ReorderCost:  reorder.list.TotalCost,
		Urgent:       urgent,
		Risk:         risk.report.Summary,
		DateLabel:    monthLabel(uc.now()),
	}, nil
}
