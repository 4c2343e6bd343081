package catalog

import "math"

// MassLawKind tags which galaxy a mass law was calibrated for.
type MassLawKind uint8

const (
	MassLawUnknown MassLawKind = iota
	MassLawM31
	MassLawMilkyWay
)

func (k MassLawKind) String() string {
	switch k {
	case MassLawM31:
		return "m31"
	case MassLawMilkyWay:
		return "milky-way"
	default:
		return "unknown"
	}
}

// MassLaw is the logarithmic enclosed-mass law M(r) = Scale * ln(1 + r),
// with r in kpc and M in solar masses.
type MassLaw struct {
	Kind  MassLawKind
	Scale float64
}

// Eval returns the enclosed mass at radius r. Negative radii clamp to zero.
func (m MassLaw) Eval(r float64) float64 {
	if r <= 0 || math.IsNaN(r) {
		return 0
	}
	return m.Scale * math.Log1p(r)
}

// EvalAll evaluates the law element-wise.
func (m MassLaw) EvalAll(rs []float64) []float64 {
	out := make([]float64, len(rs))
	for i, r := range rs {
		out[i] = m.Eval(r)
	}
	return out
}
