// Package forecast implementa los pronósticos de demanda (promedio móvil y suavizamiento
// exponencial simple) con bandas de confianza del 95%, el MAPE y la agregación por bodega.
package forecast

import (
	"math"
	"sort"
	"time"

	"github.com/jhoicas/invorya-planning/internal/domain/stats"
)

// Model identifica el método que produjo un pronóstico.
type Model string

const (
	ModelMovingAverage        Model = "moving_average"
	ModelExponentialSmoothing Model = "exponential_smoothing"
	ModelAggregated           Model = "aggregated"
)

const (
	DefaultWindow  = 7
	DefaultPeriods = 30
	DefaultAlpha   = 0.3

	// z95 cuantil normal de la banda de confianza del 95%.
	z95 = 1.96
)

// DemandPoint venta histórica de un día.
type DemandPoint struct {
	Date     time.Time
	Quantity int
}

// Result predicción para un día futuro.
type Result struct {
	Date       time.Time
	Predicted  float64
	LowerBound float64
	UpperBound float64
	Model      Model
}

// Forecaster firma común de los modelos, usada por Accuracy.
type Forecaster func(history []DemandPoint, periods int) []Result

// MovingAverage extiende la serie paso a paso: en cada período toma las últimas `window` observaciones
// (o las que haya), calcula media y desviación poblacional, agrega la media a la serie y emite la
// predicción para hoy+i+1. Las predicciones alimentan las ventanas siguientes.
// window <= 0 usa 7 y periods <= 0 usa 30. Sin historial devuelve una lista vacía.
func MovingAverage(history []DemandPoint, window, periods int, now time.Time) []Result {
	if window <= 0 {
		window = DefaultWindow
	}
	if periods <= 0 {
		periods = DefaultPeriods
	}
	if len(history) == 0 {
		return []Result{}
	}

	values := quantities(history)
	today := stats.StartOfDay(now)
	out := make([]Result, 0, periods)
	for i := 0; i < periods; i++ {
		recent := values[max(0, len(values)-window):]
		mean := stats.Mean(recent)
		sd := stats.StdDev(recent)
		values = append(values, mean)

		out = append(out, Result{
			Date:       today.AddDate(0, 0, i+1),
			Predicted:  stats.Round(mean),
			LowerBound: stats.Round(mean - z95*sd),
			UpperBound: stats.Round(mean + z95*sd),
			Model:      ModelMovingAverage,
		})
	}
	return out
}

// ExponentialSmoothing suavizamiento exponencial simple. El nivel arranca en la primera observación;
// los residuos a un paso de la misma recurrencia dan la desviación (raíz del error cuadrático medio).
// El pronóstico es plano y la banda se abre con √(i+1) según el horizonte.
// alpha fuera de (0, 1] usa 0.3 y periods <= 0 usa 30. Sin historial devuelve una lista vacía.
func ExponentialSmoothing(history []DemandPoint, alpha float64, periods int, now time.Time) []Result {
	if alpha <= 0 || alpha > 1 {
		alpha = DefaultAlpha
	}
	if periods <= 0 {
		periods = DefaultPeriods
	}
	if len(history) == 0 {
		return []Result{}
	}

	values := quantities(history)
	level := values[0]
	var sq float64
	for _, v := range values[1:] {
		residual := v - level
		sq += residual * residual
		level = alpha*v + (1-alpha)*level
	}
	var sd float64
	if n := len(values) - 1; n > 0 {
		sd = math.Sqrt(sq / float64(n))
	}

	today := stats.StartOfDay(now)
	out := make([]Result, 0, periods)
	for i := 0; i < periods; i++ {
		width := z95 * sd * math.Sqrt(float64(i+1))
		out = append(out, Result{
			Date:       today.AddDate(0, 0, i+1),
			Predicted:  stats.Round(level),
			LowerBound: stats.Round(level - width),
			UpperBound: stats.Round(level + width),
			Model:      ModelExponentialSmoothing,
		})
	}
	return out
}

// MAPE error porcentual absoluto medio. Los pares con valor real cero se omiten (no cuentan en el
// denominador). Devuelve 0 si las series difieren en largo, están vacías o no hay reales distintos de cero.
func MAPE(actual, predicted []float64) float64 {
	if len(actual) == 0 || len(actual) != len(predicted) {
		return 0
	}
	var sum float64
	var n int
	for i, a := range actual {
		if a == 0 {
			continue
		}
		sum += math.Abs(a-predicted[i]) / math.Abs(a)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n) * 100
}

// AggregateForWarehouse suma predicción y bandas de todas las tiendas por fecha. Una fecha presente
// solo en algunas tiendas suma lo que haya (sin rellenar con ceros). El resultado va ordenado por fecha.
func AggregateForWarehouse(storeForecasts map[string][]Result) []Result {
	byDate := make(map[time.Time]*Result)
	for _, results := range storeForecasts {
		for _, r := range results {
			day := stats.StartOfDay(r.Date)
			agg, ok := byDate[day]
			if !ok {
				agg = &Result{Date: day, Model: ModelAggregated}
				byDate[day] = agg
			}
			agg.Predicted += r.Predicted
			agg.LowerBound += r.LowerBound
			agg.UpperBound += r.UpperBound
		}
	}

	out := make([]Result, 0, len(byDate))
	for _, r := range byDate {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Accuracy reserva los últimos `holdout` puntos, pronostica con el resto y devuelve el MAPE contra
// lo observado. 0 si no hay historial suficiente.
func Accuracy(history []DemandPoint, holdout int, f Forecaster) float64 {
	if holdout <= 0 || len(history) <= holdout {
		return 0
	}
	train := history[:len(history)-holdout]
	test := history[len(history)-holdout:]

	predicted := f(train, holdout)
	if len(predicted) != holdout {
		return 0
	}
	actual := make([]float64, holdout)
	pred := make([]float64, holdout)
	for i := range test {
		actual[i] = float64(test[i].Quantity)
		pred[i] = predicted[i].Predicted
	}
	return MAPE(actual, pred)
}

func quantities(history []DemandPoint) []float64 {
	values := make([]float64, len(history), len(history)+DefaultPeriods)
	for i, p := range history {
		values[i] = float64(p.Quantity)
	}
	return values
}
