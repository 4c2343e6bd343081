// Package figure builds the three-panel galaxy figure and rasterises it.
//
// Build produces a plain description of the panels; Render turns that
// description into pixels with go-chart. Keeping the two apart lets the
// panel layout be checked without decoding images.
package figure

import (
	"fmt"
	"image/color"

	"galaxyplot/catalog"
)

// Scale is an axis scale.
type Scale uint8

const (
	ScaleLinear Scale = iota
	ScaleLog
)

func (s Scale) String() string {
	if s == ScaleLog {
		return "log"
	}
	return "linear"
}

// Kind is the chart type of a panel.
type Kind uint8

const (
	KindLine Kind = iota + 1
	KindPie
)

// Axis labels and scales one panel axis.
type Axis struct {
	Label string
	Scale Scale
}

// Series is one XY line.
type Series struct {
	Name  string
	X     []float64
	Y     []float64
	Color color.RGBA
}

// Slice is one pie wedge.
type Slice struct {
	Label string
	Value float64
	Color color.RGBA
}

// Panel is one subplot. Line panels use X, Y and Series; pie panels use Slices.
type Panel struct {
	Kind  Kind
	Title string

	X      Axis
	Y      Axis
	Series Series

	Slices []Slice
}

// Figure is an ordered row of panels.
type Figure struct {
	Galaxy string
	Panels []Panel
}

// Panel order inside a Figure.
const (
	PanelRotation = iota
	PanelMass
	PanelComposition
)

// Axis and panel text.
const (
	LabelRadius   = "Radius (kpc)"
	LabelVelocity = "Orbital Velocity (km/s)"
	LabelMass     = "Mass (solar masses)"

	SeriesRotation = "Observed Rotation Curve"
	SeriesMass     = "Mass Enclosed"

	SliceDarkMatter = "Dark Matter"
	SliceLuminous   = "Luminous Matter"

	TitleComposition = "Matter Composition (Cosmological)"
)

var (
	ColorBlue   = color.RGBA{R: 0x00, G: 0x00, B: 0xFF, A: 0xFF}
	ColorGreen  = color.RGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xFF}
	ColorGray   = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	ColorOrange = color.RGBA{R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF}
)

// Build lays out the rotation curve, enclosed-mass curve and matter
// composition panels for g.
func Build(g catalog.Galaxy, comp catalog.Composition) Figure {
	r := g.RadiusKpc()
	name := g.Name()

	return Figure{
		Galaxy: name,
		Panels: []Panel{
			{
				Kind:  KindLine,
				Title: name + " Rotation Curve",
				X:     Axis{Label: LabelRadius, Scale: ScaleLinear},
				Y:     Axis{Label: LabelVelocity, Scale: ScaleLinear},
				Series: Series{
					Name:  SeriesRotation,
					X:     r,
					Y:     g.VelocityKms(),
					Color: ColorBlue,
				},
			},
			{
				Kind:  KindLine,
				Title: name + " Mass Enclosed vs Radius",
				X:     Axis{Label: LabelRadius, Scale: ScaleLinear},
				Y:     Axis{Label: LabelMass, Scale: ScaleLog},
				Series: Series{
					Name:  SeriesMass,
					X:     cloneFloats(r),
					Y:     g.MassEnclosed(),
					Color: ColorGreen,
				},
			},
			CompositionPanel(comp),
		},
	}
}

// CompositionPanel is the pie chart panel. It only depends on comp.
func CompositionPanel(comp catalog.Composition) Panel {
	return Panel{
		Kind:  KindPie,
		Title: TitleComposition,
		Slices: []Slice{
			{Label: SliceDarkMatter, Value: comp.DarkMatter, Color: ColorGray},
			{Label: SliceLuminous, Value: comp.Baryonic, Color: ColorOrange},
		},
	}
}

// Percentages returns each slice's share of the slice total, in percent.
// Slices are proportioned between themselves, so the result sums to 100
// whenever the total is positive.
func Percentages(slices []Slice) []float64 {
	var total float64
	for _, s := range slices {
		if s.Value > 0 {
			total += s.Value
		}
	}
	out := make([]float64, len(slices))
	if total <= 0 {
		return out
	}
	for i, s := range slices {
		if s.Value > 0 {
			out[i] = 100 * s.Value / total
		}
	}
	return out
}

// FormatPercent formats a share the way the pie labels show it ("86.5%").
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// SliceLabels returns "<label> <pct>" for every slice.
func SliceLabels(slices []Slice) []string {
	pcts := Percentages(slices)
	out := make([]string, len(slices))
	for i, s := range slices {
		out[i] = s.Label + " " + FormatPercent(pcts[i])
	}
	return out
}

func cloneFloats(in []float64) []float64 {
	out := make([]float64, len(in))
	copy(out, in)
	return out
}
