package inventory

import (
	"fmt"
	"math"
	"sort"

	"github.com/jhoicas/invorya-planning/internal/domain/stats"
)

const (
	// redistributionWindowDays perecederos que vencen dentro de esta ventana se redistribuyen.
	redistributionWindowDays = 7
	warehouseCoverFactor     = 1.5
)

// SuggestTransfers empareja ubicaciones con excedente (stock > 2×ROP) con ubicaciones en faltante
// (stock <= ROP). Los faltantes se atienden del más urgente (menor stock) al menos urgente y cada uno
// toma la primera ubicación con excedente que tenga unidades disponibles por encima de ROP + SS.
//
// El disponible de una ubicación con excedente no se descuenta entre emparejamientos: una misma
// fuente puede aparecer en varias sugerencias y comprometer más unidades de las que tiene.
// Quien ejecute las transferencias debe validar el total por origen.
func SuggestTransfers(productID string, locations []LocationStock) []TransferSuggestion {
	var surplus, shortage []LocationStock
	for _, l := range locations {
		if l.CurrentStock > 2*l.ReorderPoint {
			surplus = append(surplus, l)
		}
		if l.CurrentStock <= l.ReorderPoint {
			shortage = append(shortage, l)
		}
	}
	sort.SliceStable(shortage, func(i, j int) bool {
		return shortage[i].CurrentStock < shortage[j].CurrentStock
	})

	suggestions := make([]TransferSuggestion, 0, len(shortage))
	for _, dst := range shortage {
		needed := dst.ReorderPoint - dst.CurrentStock + dst.SafetyStock
		for _, src := range surplus {
			available := src.CurrentStock - src.ReorderPoint - src.SafetyStock
			if available <= 0 {
				continue
			}
			if qty := min(needed, available); qty > 0 {
				suggestions = append(suggestions, TransferSuggestion{
					ProductID:        productID,
					FromLocationID:   src.LocationID,
					FromLocationName: src.LocationName,
					ToLocationID:     dst.LocationID,
					ToLocationName:   dst.LocationName,
					Quantity:         qty,
					Reason: fmt.Sprintf("%s tiene %d unidades (punto de reorden %d); %s tiene %d unidades de excedente",
						dst.LocationName, dst.CurrentStock, dst.ReorderPoint, src.LocationName, available),
					Priority: shortagePriority(dst),
				})
			}
			break
		}
	}
	return suggestions
}

func shortagePriority(l LocationStock) Priority {
	switch {
	case l.CurrentStock <= l.SafetyStock:
		return PriorityHigh
	case l.CurrentStock < l.ReorderPoint:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// WarehouseReorderResult decisión de pedido para una bodega que abastece tiendas.
type WarehouseReorderResult struct {
	ShouldReorder     bool
	ReorderPoint      int
	SuggestedQuantity int
	DaysOfStock       float64 // +Inf sin demanda
	Urgency           Urgency
}

// WarehouseReorder decide si una bodega debe pedir según la demanda agregada de sus tiendas.
// La urgencia sigue los mismos tramos que el riesgo de quiebre: critical por debajo de un lead time,
// high por debajo de dos, medium en otro caso.
func WarehouseReorder(warehouseStock int, aggregatedStoreDemand, leadTimeDays float64, safetyStock int) WarehouseReorderResult {
	rop := ReorderPoint(aggregatedStoreDemand, leadTimeDays, safetyStock)

	daysOfStock := math.Inf(1)
	if aggregatedStoreDemand > 0 {
		daysOfStock = float64(warehouseStock) / aggregatedStoreDemand
	}

	urgency := UrgencyMedium
	switch {
	case daysOfStock < leadTimeDays:
		urgency = UrgencyCritical
	case daysOfStock < 2*leadTimeDays:
		urgency = UrgencyHigh
	}

	out := WarehouseReorderResult{
		ShouldReorder: warehouseStock <= rop,
		ReorderPoint:  rop,
		DaysOfStock:   daysOfStock,
		Urgency:       urgency,
	}
	if out.ShouldReorder {
		qty := aggregatedStoreDemand*leadTimeDays*warehouseCoverFactor - float64(warehouseStock) + float64(safetyStock)
		out.SuggestedQuantity = max(0, stats.CeilInt(qty))
	}
	return out
}

// PerishableStock stock de una ubicación con su vencimiento más próximo (nil = sin vencimiento).
type PerishableStock struct {
	LocationStock
	DaysToExpiry *int
}

// SuggestPerishableRedistribution mueve los perecederos que vencen en <= 7 días hacia la ubicación
// de mayor demanda diaria entre las que no tienen vencimiento cercano (sin fecha o > 14 días).
// La cantidad es lo que el destino alcanza a vender antes del vencimiento.
func SuggestPerishableRedistribution(productID string, locations []PerishableStock) []TransferSuggestion {
	var suggestions []TransferSuggestion
	for _, src := range locations {
		if src.DaysToExpiry == nil || *src.DaysToExpiry > redistributionWindowDays {
			continue
		}
		days := *src.DaysToExpiry

		var best *PerishableStock
		for i := range locations {
			l := &locations[i]
			if l.LocationID == src.LocationID {
				continue
			}
			if l.DaysToExpiry != nil && *l.DaysToExpiry <= PerishableWindowDays {
				continue
			}
			if best == nil || l.AvgDailyDemand > best.AvgDailyDemand {
				best = l
			}
		}
		if best == nil {
			continue
		}

		qty := min(src.CurrentStock, stats.CeilInt(best.AvgDailyDemand*float64(days)))
		if qty <= 0 {
			continue
		}
		suggestions = append(suggestions, TransferSuggestion{
			ProductID:        productID,
			FromLocationID:   src.LocationID,
			FromLocationName: src.LocationName,
			ToLocationID:     best.LocationID,
			ToLocationName:   best.LocationName,
			Quantity:         qty,
			Reason: fmt.Sprintf("%d unidades vencen en %d días en %s; %s vende %s unidades/día",
				src.CurrentStock, days, src.LocationName, best.LocationName, formatDays(stats.Round1(best.AvgDailyDemand))),
			Priority: PriorityHigh,
		})
	}
	return suggestions
}
