package figure

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"galaxyplot/catalog"
)

func buildFor(t *testing.T, name string) Figure {
	t.Helper()
	g, err := catalog.Default().Lookup(name)
	require.NoError(t, err)
	return Build(g, catalog.Cosmological())
}

func TestBuildPanelOrderAndLabels(t *testing.T) {
	fig := buildFor(t, catalog.M31)
	require.Len(t, fig.Panels, 3)
	assert.Equal(t, catalog.M31, fig.Galaxy)

	rot := fig.Panels[PanelRotation]
	assert.Equal(t, KindLine, rot.Kind)
	assert.Equal(t, "M31 Rotation Curve", rot.Title)
	assert.Equal(t, Axis{Label: "Radius (kpc)", Scale: ScaleLinear}, rot.X)
	assert.Equal(t, Axis{Label: "Orbital Velocity (km/s)", Scale: ScaleLinear}, rot.Y)
	assert.Equal(t, ColorBlue, rot.Series.Color)
	assert.Equal(t, SeriesRotation, rot.Series.Name)

	mass := fig.Panels[PanelMass]
	assert.Equal(t, KindLine, mass.Kind)
	assert.Equal(t, "M31 Mass Enclosed vs Radius", mass.Title)
	assert.Equal(t, ScaleLinear, mass.X.Scale)
	assert.Equal(t, ScaleLog, mass.Y.Scale)
	assert.Equal(t, "Mass (solar masses)", mass.Y.Label)
	assert.Equal(t, ColorGreen, mass.Series.Color)

	pie := fig.Panels[PanelComposition]
	assert.Equal(t, KindPie, pie.Kind)
	assert.Equal(t, "Matter Composition (Cosmological)", pie.Title)
	require.Len(t, pie.Slices, 2)
	assert.Equal(t, "Dark Matter", pie.Slices[0].Label)
	assert.Equal(t, ColorGray, pie.Slices[0].Color)
	assert.Equal(t, "Luminous Matter", pie.Slices[1].Label)
	assert.Equal(t, ColorOrange, pie.Slices[1].Color)
}

func TestBuildMassSeries(t *testing.T) {
	fig := buildFor(t, catalog.M31)
	s := fig.Panels[PanelMass].Series
	require.Len(t, s.Y, len(s.X))

	last := len(s.X) - 1
	assert.InDelta(t, 40, s.X[last], 1e-12)
	assert.InDelta(t, 5e10*math.Log(41), s.Y[last], 1)
}

func TestPieDoesNotDependOnGalaxy(t *testing.T) {
	a := buildFor(t, catalog.M31).Panels[PanelComposition]
	b := buildFor(t, catalog.MilkyWay).Panels[PanelComposition]
	assert.Equal(t, a, b)

	var sum float64
	for _, s := range a.Slices {
		sum += s.Value
	}
	assert.InDelta(t, 0.356, sum, 1e-12)
}

func TestSliceLabels(t *testing.T) {
	p := CompositionPanel(catalog.Cosmological())
	assert.Equal(t, []string{"Dark Matter 86.5%", "Luminous Matter 13.5%"}, SliceLabels(p.Slices))

	pcts := Percentages(p.Slices)
	assert.InDelta(t, 100, pcts[0]+pcts[1], 1e-9)

	assert.Equal(t, []float64{0, 0}, Percentages([]Slice{{Value: 0}, {Value: -1}}))
}

func TestDecadeTicksCoverMassRange(t *testing.T) {
	fig := buildFor(t, catalog.M31)
	s := fig.Panels[PanelMass].Series

	_, ly := logY(s.X, s.Y)
	lo, hi, ok := decadeRange(ly)
	require.True(t, ok)
	assert.Equal(t, 9, lo)
	assert.Equal(t, 12, hi)

	ticks := decadeTicks(lo, hi)
	require.Len(t, ticks, 4)
	assert.Equal(t, "1e9", ticks[0].Label)
	assert.Equal(t, "1e12", ticks[3].Label)
	for _, y := range ly {
		assert.GreaterOrEqual(t, y, ticks[0].Value)
		assert.LessOrEqual(t, y, ticks[len(ticks)-1].Value)
	}
}

func TestLogYDropsNonPositive(t *testing.T) {
	xs, ys := logY([]float64{1, 2, 3, 4}, []float64{0, 10, -5, 1000})
	assert.Equal(t, []float64{2, 4}, xs)
	assert.InDeltaSlice(t, []float64{1, 3}, ys, 1e-12)

	_, _, ok := decadeRange(nil)
	assert.False(t, ok)
}

func TestLinearTicks(t *testing.T) {
	lo, hi, ticks := linearTicks(0.1, 40, 6)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 40.0, hi)
	labels := make([]string, len(ticks))
	for i, tk := range ticks {
		labels[i] = tk.Label
	}
	assert.Equal(t, []string{"0", "10", "20", "30", "40"}, labels)

	lo, hi, _ = linearTicks(0, 230, 6)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 250.0, hi)

	lo, hi, ticks = linearTicks(5, 5, 4)
	assert.Less(t, lo, hi)
	assert.NotEmpty(t, ticks)
}

func TestNiceStep(t *testing.T) {
	cases := []struct {
		raw, want float64
	}{
		{0.7, 1},
		{1.5, 2},
		{3, 5},
		{6.6, 10},
		{38, 50},
		{0, 1},
		{math.NaN(), 1},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, niceStep(c.raw), 1e-12, "raw=%v", c.raw)
	}
}

func TestFmtAxis(t *testing.T) {
	assert.Equal(t, "0", fmtAxis(0))
	assert.Equal(t, "250", fmtAxis(250))
	assert.Equal(t, "2.5", fmtAxis(2.5))
	assert.Equal(t, "0.25", fmtAxis(0.25))
	assert.Equal(t, "1e+11", fmtAxis(1e11))
	assert.Equal(t, "", fmtAxis(math.Inf(1)))
}

func TestRenderComposesPanels(t *testing.T) {
	fig := buildFor(t, catalog.MilkyWay)
	img, err := Render(fig, 1200, 360)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 1200, 360), img.Bounds())

	for i := range fig.Panels {
		x0 := i * 1200 / 3
		assert.True(t, hasInk(img, x0, x0+400), "panel %d is blank", i)
	}

	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, img))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestRenderPieUsesSliceColors(t *testing.T) {
	img, err := RenderPanel(CompositionPanel(catalog.Cosmological()), 400, 400)
	require.NoError(t, err)

	var gray, orange bool
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			switch {
			case near(c, ColorGray):
				gray = true
			case near(c, ColorOrange):
				orange = true
			}
		}
	}
	assert.True(t, gray, "no dark matter wedge")
	assert.True(t, orange, "no luminous wedge")
}

func TestRenderErrors(t *testing.T) {
	fig := buildFor(t, catalog.M31)

	_, err := Render(fig, 100, 100)
	assert.ErrorIs(t, err, ErrTooSmall)

	_, err = Render(Figure{}, 1200, 400)
	assert.Error(t, err)

	_, err = RenderPanel(Panel{Kind: KindLine, Series: Series{X: []float64{1}, Y: nil}}, 400, 400)
	assert.Error(t, err)

	_, err = RenderPanel(Panel{
		Kind:   KindLine,
		Y:      Axis{Scale: ScaleLog},
		Series: Series{X: []float64{1, 2}, Y: []float64{0, -1}},
	}, 400, 400)
	assert.ErrorContains(t, err, "log axis")

	_, err = RenderPanel(Panel{Kind: KindPie}, 400, 400)
	assert.Error(t, err)

	_, err = RenderPanel(Panel{}, 400, 400)
	assert.ErrorContains(t, err, "unknown panel kind")
}

func TestScaleString(t *testing.T) {
	assert.Equal(t, "log", ScaleLog.String())
	assert.Equal(t, "linear", ScaleLinear.String())
}

func hasInk(img *image.RGBA, x0, x1 int) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := x0; x < x1 && x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.R < 0xF0 || c.G < 0xF0 || c.B < 0xF0 {
				return true
			}
		}
	}
	return false
}

func near(a, b color.RGBA) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= 8 && d(a.G, b.G) <= 8 && d(a.B, b.B) <= 8
}
