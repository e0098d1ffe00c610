// Package chart renders small server-side SVG charts as gomponents nodes.
package chart

import "math"

// Layout constants shared by every cartesian chart, in SVG user units.
const (
	padLeft   = 44.0
	padRight  = 12.0
	padTop    = 12.0
	padBottom = 28.0

	defaultWidth  = 560
	defaultHeight = 300
	defaultTicks  = 4

	gridColor = "#e2e8f0"
	axisColor = "#64748b"
)

// Series is one named set of values plotted against the chart labels.
type Series struct {
	Name   string
	Color  string
	Values []float64
	Dashed bool
}

// Chart is the input of the cartesian charts (bar, line, area).
type Chart struct {
	Title  string
	Labels []string
	Series []Series
	Width  int
	Height int
	// Domain overrides the automatic [0, nice max] value range when set.
	Domain *[2]float64
}

// Rect is a bar in SVG coordinates.
type Rect struct {
	X, Y, W, H float64
	Color      string
	Label      string
	Value      float64
}

// Axis is the resolved value range of a chart.
type Axis struct {
	Min, Max, Step float64
}

// Ticks returns the tick values from Min to Max inclusive.
func (a Axis) Ticks() []float64 {
	if a.Step <= 0 {
		return []float64{a.Min, a.Max}
	}
	var out []float64
	for v := a.Min; v <= a.Max+a.Step/2; v += a.Step {
		out = append(out, v)
	}
	return out
}

// NiceStep rounds raw up to 1, 2, 5 or 10 times a power of ten.
func NiceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	exp := math.Floor(math.Log10(raw))
	base := math.Pow(10, exp)
	f := raw / base
	switch {
	case f <= 1:
		return base
	case f <= 2:
		return 2 * base
	case f <= 5:
		return 5 * base
	default:
		return 10 * base
	}
}

// NiceAxis picks a zero-based axis whose maximum covers maxVal with ticks
// evenly spaced on round numbers.
func NiceAxis(maxVal float64, ticks int) Axis {
	if ticks <= 0 {
		ticks = defaultTicks
	}
	step := NiceStep(maxVal / float64(ticks))
	top := math.Ceil(maxVal/step) * step
	if top == 0 {
		top = step
	}
	return Axis{Min: 0, Max: top, Step: step}
}

// PaddedDomain returns [min-pad, max+pad] over every value of every series.
func PaddedDomain(series []Series, pad float64) *[2]float64 {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, v := range s.Values {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 1) {
		return nil
	}
	return &[2]float64{lo - pad, hi + pad}
}

func (c Chart) size() (float64, float64) {
	w, h := c.Width, c.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return float64(w), float64(h)
}

func (c Chart) plot() (x, y, w, h float64) {
	width, height := c.size()
	return padLeft, padTop, width - padLeft - padRight, height - padTop - padBottom
}

// axis resolves the value range for the chart.
func (c Chart) axis() Axis {
	if c.Domain != nil {
		lo, hi := c.Domain[0], c.Domain[1]
		if hi <= lo {
			hi = lo + 1
		}
		return Axis{Min: lo, Max: hi, Step: (hi - lo) / defaultTicks}
	}
	maxVal := 0.0
	for _, s := range c.Series {
		for _, v := range s.Values {
			maxVal = math.Max(maxVal, v)
		}
	}
	return NiceAxis(maxVal, defaultTicks)
}

// valueY maps a value to its SVG y coordinate.
func (c Chart) valueY(a Axis, v float64) float64 {
	_, top, _, h := c.plot()
	span := a.Max - a.Min
	if span <= 0 {
		return top + h
	}
	ratio := (v - a.Min) / span
	ratio = math.Max(0, math.Min(1, ratio))
	return top + h - ratio*h
}

// empty reports whether the chart has nothing to plot.
func (c Chart) empty() bool {
	if len(c.Labels) == 0 {
		return true
	}
	for _, s := range c.Series {
		if len(s.Values) > 0 {
			return false
		}
	}
	return true
}
