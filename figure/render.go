package figure

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Minimum panel size go-chart can lay out axes and titles in.
const (
	MinPanelWidth  = 160
	MinPanelHeight = 120
)

var ErrTooSmall = errors.New("figure: canvas too small")

// Render rasterises every panel and places them left to right on a white
// width x height canvas.
func Render(fig Figure, width, height int) (*image.RGBA, error) {
	n := len(fig.Panels)
	if n == 0 {
		return nil, errors.New("figure: no panels")
	}
	if width/n < MinPanelWidth || height < MinPanelHeight {
		return nil, fmt.Errorf("%w: %dx%d for %d panels", ErrTooSmall, width, height, n)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for i, p := range fig.Panels {
		x0 := i * width / n
		x1 := (i + 1) * width / n
		img, err := RenderPanel(p, x1-x0, height)
		if err != nil {
			return nil, fmt.Errorf("panel %d (%s): %w", i, p.Title, err)
		}
		r := image.Rect(x0, 0, x1, height)
		draw.Draw(dst, r, img, img.Bounds().Min, draw.Src)
	}
	return dst, nil
}

// RenderPanel rasterises a single panel at width x height.
func RenderPanel(p Panel, width, height int) (image.Image, error) {
	var buf bytes.Buffer
	switch p.Kind {
	case KindLine:
		ch, err := lineChart(p, width, height)
		if err != nil {
			return nil, err
		}
		if err := ch.Render(chart.PNG, &buf); err != nil {
			return nil, fmt.Errorf("render line chart: %w", err)
		}
	case KindPie:
		pc, err := pieChart(p, width, height)
		if err != nil {
			return nil, err
		}
		if err := pc.Render(chart.PNG, &buf); err != nil {
			return nil, fmt.Errorf("render pie chart: %w", err)
		}
	default:
		return nil, fmt.Errorf("figure: unknown panel kind %d", p.Kind)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode panel: %w", err)
	}
	return img, nil
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func lineChart(p Panel, width, height int) (chart.Chart, error) {
	s := p.Series
	if len(s.X) == 0 || len(s.X) != len(s.Y) {
		return chart.Chart{}, fmt.Errorf("figure: series %q has %d x and %d y values", s.Name, len(s.X), len(s.Y))
	}

	xs, ys := s.X, s.Y
	var yRange *chart.ContinuousRange
	var yTicks []chart.Tick
	if p.Y.Scale == ScaleLog {
		xs, ys = logY(xs, ys)
		lo, hi, ok := decadeRange(ys)
		if !ok {
			return chart.Chart{}, fmt.Errorf("figure: series %q has no positive values for a log axis", s.Name)
		}
		yRange = &chart.ContinuousRange{Min: float64(lo), Max: float64(hi)}
		yTicks = decadeTicks(lo, hi)
	} else {
		lo, hi, ticks := linearTicks(minOf(ys), maxOf(ys), 6)
		yRange = &chart.ContinuousRange{Min: lo, Max: hi}
		yTicks = ticks
	}
	xLo, xHi, xTicks := linearTicks(minOf(xs), maxOf(xs), 6)

	return chart.Chart{
		Title:  p.Title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 36, Left: 16, Right: 20, Bottom: 12},
		},
		XAxis: chart.XAxis{
			Name:  p.X.Label,
			Range: &chart.ContinuousRange{Min: xLo, Max: xHi},
			Ticks: xTicks,
		},
		YAxis: chart.YAxis{
			Name:  p.Y.Label,
			Range: yRange,
			Ticks: yTicks,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    s.Name,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: chartColor(s.Color),
					StrokeWidth: 2,
				},
			},
		},
	}, nil
}

func pieChart(p Panel, width, height int) (chart.PieChart, error) {
	if len(p.Slices) == 0 {
		return chart.PieChart{}, errors.New("figure: pie chart without slices")
	}
	labels := SliceLabels(p.Slices)
	values := make([]chart.Value, 0, len(p.Slices))
	for i, s := range p.Slices {
		values = append(values, chart.Value{
			Value: s.Value,
			Label: labels[i],
			Style: chart.Style{
				FillColor:   chartColor(s.Color),
				StrokeColor: chart.ColorWhite,
				StrokeWidth: 1,
			},
		})
	}
	return chart.PieChart{
		Title:  p.Title,
		Width:  width,
		Height: height,
		Values: values,
	}, nil
}

func chartColor(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
