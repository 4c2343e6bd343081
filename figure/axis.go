package figure

// Tick placement for the panel axes.

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

// logY maps ys to log10 and drops points that have no logarithm.
func logY(xs, ys []float64) (outX, outY []float64) {
	outX = make([]float64, 0, len(xs))
	outY = make([]float64, 0, len(ys))
	for i := range ys {
		y := ys[i]
		if !(y > 0) || math.IsInf(y, 0) {
			continue
		}
		outX = append(outX, xs[i])
		outY = append(outY, math.Log10(y))
	}
	return outX, outY
}

// decadeRange returns the whole decades enclosing log10 values ly.
func decadeRange(ly []float64) (lo, hi int, ok bool) {
	if len(ly) == 0 {
		return 0, 0, false
	}
	lo = int(math.Floor(minOf(ly)))
	hi = int(math.Ceil(maxOf(ly)))
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi, true
}

// decadeTicks labels every decade from lo to hi as 1e<k>.
func decadeTicks(lo, hi int) []chart.Tick {
	ticks := make([]chart.Tick, 0, hi-lo+1)
	for k := lo; k <= hi; k++ {
		ticks = append(ticks, chart.Tick{Value: float64(k), Label: fmt.Sprintf("1e%d", k)})
	}
	return ticks
}

// linearTicks snaps [min, max] outward to a nice step chosen for roughly
// target intervals and returns a tick at every step.
func linearTicks(min, max float64, target int) (lo, hi float64, ticks []chart.Tick) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return 0, 1, []chart.Tick{{Value: 0, Label: "0"}, {Value: 1, Label: "1"}}
	}
	if max <= min {
		max = min + 1
	}
	if target < 1 {
		target = 1
	}
	step := niceStep((max - min) / float64(target))
	lo = math.Floor(min/step) * step
	hi = math.Ceil(max/step) * step

	n := int(math.Round((hi - lo) / step))
	ticks = make([]chart.Tick, 0, n+1)
	for i := 0; i <= n; i++ {
		v := lo + float64(i)*step
		ticks = append(ticks, chart.Tick{Value: v, Label: fmtAxis(v)})
	}
	return lo, hi, ticks
}

func niceStep(raw float64) float64 {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 1
	}
	pow := math.Pow(10, math.Floor(math.Log10(raw)))
	if pow == 0 || math.IsNaN(pow) || math.IsInf(pow, 0) {
		return 1
	}
	frac := raw / pow
	switch {
	case frac <= 1:
		return 1 * pow
	case frac <= 2:
		return 2 * pow
	case frac <= 5:
		return 5 * pow
	default:
		return 10 * pow
	}
}

func fmtAxis(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	if math.Abs(v) < 1e-12 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 1e5 || av < 0.01:
		return fmt.Sprintf("%.2g", v)
	case av >= 10:
		return fmt.Sprintf("%.0f", v)
	case av >= 1:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

func minOf(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func maxOf(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
