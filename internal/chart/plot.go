package chart

import (
	"bytes"
	"html"
	"io"
	"log/slog"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Fill alpha of the first and later series of an area chart.
const (
	areaAlphaBack  = 77
	areaAlphaFront = 153
)

// Slice is one share of a pie chart.
type Slice struct {
	Label string
	Value float64
	Color string
}

func color(hex string) drawing.Color {
	return drawing.ColorFromHex(hex)
}

// figure renders a go-chart chart into an inline SVG wrapped for the page.
// A chart that fails to render degrades to the empty state.
func figure(title string, render func(w io.Writer) error) g.Node {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		slog.Warn("Failed to render chart", "title", title, "error", err)
		return emptyState()
	}
	return h.Div(
		h.Class("chart"),
		g.Attr("role", "img"),
		g.If(title != "", g.Attr("aria-label", title)),
		g.Raw(buf.String()),
	)
}

// continuous lays the labels out at x = 0..n-1 and plots every series of c
// on the resolved value axis.
func (c Chart) continuous(series []gochart.Series) gochart.Chart {
	w, ht := c.size()

	xTicks := make([]gochart.Tick, len(c.Labels))
	for i, l := range c.Labels {
		xTicks[i] = gochart.Tick{Value: float64(i), Label: html.EscapeString(l)}
	}
	a := c.axis()
	var yTicks []gochart.Tick
	for _, t := range a.Ticks() {
		yTicks = append(yTicks, gochart.Tick{Value: t, Label: label(t)})
	}

	axisStyle := gochart.Style{FontColor: color(axisColor), StrokeColor: color(gridColor), StrokeWidth: 1}
	return gochart.Chart{
		Width:  int(w),
		Height: int(ht),
		XAxis: gochart.XAxis{
			Style:          axisStyle,
			Ticks:          xTicks,
			GridMajorStyle: gochart.Hidden(),
			GridMinorStyle: gochart.Hidden(),
		},
		YAxis: gochart.YAxis{
			Style:          axisStyle,
			Ticks:          yTicks,
			GridMajorStyle: gochart.Style{StrokeColor: color(gridColor), StrokeWidth: 1, StrokeDashArray: []float64{3, 3}},
			GridMinorStyle: gochart.Hidden(),
		},
		Series: series,
	}
}

func (c Chart) xValues() []float64 {
	xs := make([]float64, len(c.Labels))
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

// plottable reports whether c has enough points for a continuous chart.
func (c Chart) plottable() bool {
	return !c.empty() && len(c.Labels) >= 2
}

func (c Chart) seriesValues(s Series) []float64 {
	n := min(len(s.Values), len(c.Labels))
	return s.Values[:n]
}

// LineChart renders one line per series with a dot at each value.
func LineChart(c Chart) g.Node {
	if !c.plottable() {
		return emptyState()
	}
	xs := c.xValues()
	var series []gochart.Series
	for _, s := range c.Series {
		ys := c.seriesValues(s)
		style := gochart.Style{
			StrokeColor: color(s.Color),
			StrokeWidth: 3,
			DotColor:    color(s.Color),
			DotWidth:    4,
		}
		if s.Dashed {
			style.StrokeWidth = 2
			style.StrokeDashArray = []float64{5, 5}
		}
		series = append(series, gochart.ContinuousSeries{
			Name:    html.EscapeString(s.Name),
			Style:   style,
			XValues: xs[:len(ys)],
			YValues: ys,
		})
	}
	return figure(c.Title, func(w io.Writer) error {
		return c.continuous(series).Render(gochart.SVG, w)
	})
}

// AreaChart renders each series as a filled region down to the axis base.
// Later series are drawn more opaque on top of earlier ones.
func AreaChart(c Chart) g.Node {
	if !c.plottable() {
		return emptyState()
	}
	xs := c.xValues()
	var series []gochart.Series
	for i, s := range c.Series {
		ys := c.seriesValues(s)
		alpha := uint8(areaAlphaBack)
		if i > 0 {
			alpha = areaAlphaFront
		}
		series = append(series, gochart.ContinuousSeries{
			Name: html.EscapeString(s.Name),
			Style: gochart.Style{
				StrokeColor: color(s.Color),
				StrokeWidth: 2,
				FillColor:   color(s.Color).WithAlpha(alpha),
			},
			XValues: xs[:len(ys)],
			YValues: ys,
		})
	}
	return figure(c.Title, func(w io.Writer) error {
		return c.continuous(series).Render(gochart.SVG, w)
	})
}

// PieChart renders proportional slices inside a square of the given size.
// Slices with a non-positive value are skipped.
func PieChart(title string, slices []Slice, size int) g.Node {
	var values []gochart.Value
	for _, s := range slices {
		if s.Value <= 0 {
			continue
		}
		values = append(values, gochart.Value{
			Label: html.EscapeString(s.Label),
			Value: s.Value,
			Style: gochart.Style{
				FillColor:   color(s.Color),
				StrokeColor: gochart.ColorWhite,
				StrokeWidth: 2,
				FontColor:   gochart.ColorWhite,
			},
		})
	}
	if len(values) == 0 {
		return emptyState()
	}
	if size <= 0 {
		size = defaultHeight
	}
	pie := gochart.PieChart{Width: size, Height: size, Values: values}
	if len(values) == 1 {
		// a lone value is drawn as a circle styled from SliceStyle
		pie.SliceStyle = values[0].Style
	}
	return figure(title, func(w io.Writer) error {
		return pie.Render(gochart.SVG, w)
	})
}
