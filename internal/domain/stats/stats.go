// Package stats reúne los helpers numéricos y de calendario compartidos por los cálculos de planeación.
package stats

import (
	"math"
	"time"
)

// Round redondea al entero más cercano con empates hacia +∞,
// de modo que -2.5 → -2 y 2.5 → 3. math.Round redondea los empates alejándose de cero.
func Round(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	return math.Floor(v + 0.5)
}

// Round1 redondea a un decimal.
func Round1(v float64) float64 {
	return Round(v*10) / 10
}

// CeilInt devuelve ceil(v) como int.
func CeilInt(v float64) int {
	return int(math.Ceil(v))
}

// Mean promedio aritmético; 0 para una serie vacía.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev desviación estándar poblacional (divide por n).
func StdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)))
}

// StartOfDay trunca t a las 00:00 de su fecha calendario, en su misma zona horaria.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween días calendario de from a to (negativo si to es anterior).
func DaysBetween(from, to time.Time) int {
	a := StartOfDay(from)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, a.Location())
	return int(math.Round(b.Sub(a).Hours() / 24))
}
