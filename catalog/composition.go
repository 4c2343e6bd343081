package catalog

// Cosmological density parameters (Planck 2018).
const (
	OmegaDarkMatter = 0.308
	OmegaBaryon     = 0.048
)

// Composition is the cosmological matter split shown in the pie chart. It does
// not depend on the selected galaxy.
type Composition struct {
	DarkMatter float64
	Baryonic   float64
}

// Cosmological returns the fixed Planck 2018 composition.
func Cosmological() Composition {
	return Composition{DarkMatter: OmegaDarkMatter, Baryonic: OmegaBaryon}
}

// Total is the sum of both fractions. It is not normalised to 1.
func (c Composition) Total() float64 { return c.DarkMatter + c.Baryonic }

// Shares returns each fraction as a percentage of Total.
func (c Composition) Shares() (darkPct, baryonPct float64) {
	t := c.Total()
	if t <= 0 {
		return 0, 0
	}
	return 100 * c.DarkMatter / t, 100 * c.Baryonic / t
}
