package chart

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// EmptyMessage is shown in place of a chart with nothing to plot.
const EmptyMessage = "No data for the selected filters"

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func label(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func attr(name string, v float64) g.Node {
	return g.Attr(name, num(v))
}

func svg(c Chart, children ...g.Node) g.Node {
	w, ht := c.size()
	nodes := []g.Node{
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", fmt.Sprintf("0 0 %d %d", int(w), int(ht))),
		g.Attr("role", "img"),
		h.Class("w-full h-auto"),
	}
	if c.Title != "" {
		nodes = append(nodes, g.Attr("aria-label", c.Title), g.El("title", g.Text(c.Title)))
	}
	nodes = append(nodes, children...)
	return g.El("svg", nodes...)
}

func emptyState() g.Node {
	return h.Div(
		h.Class("flex items-center justify-center h-48 text-sm text-muted-foreground"),
		g.Text(EmptyMessage),
	)
}

// grid draws the horizontal grid lines, tick labels and category labels.
func grid(c Chart, a Axis) g.Node {
	left, top, w, ph := c.plot()
	var nodes []g.Node
	for _, t := range a.Ticks() {
		y := c.valueY(a, t)
		nodes = append(nodes,
			g.El("line", attr("x1", left), attr("x2", left+w), attr("y1", y), attr("y2", y),
				g.Attr("stroke", gridColor), g.Attr("stroke-dasharray", "3 3")),
			g.El("text", attr("x", left-6), attr("y", y+4), g.Attr("text-anchor", "end"),
				g.Attr("font-size", "11"), g.Attr("fill", axisColor), g.Text(label(t))),
		)
	}
	for i, l := range c.Labels {
		nodes = append(nodes, g.El("text",
			attr("x", c.labelX(i)), attr("y", top+ph+18), g.Attr("text-anchor", "middle"),
			g.Attr("font-size", "11"), g.Attr("fill", axisColor), g.Text(l)))
	}
	return g.Group(nodes)
}

// BarChart renders a grouped bar chart: one group per label, one bar per
// series side by side.
func BarChart(c Chart) g.Node {
	if c.empty() || len(c.Series) == 0 {
		return emptyState()
	}
	a := c.axis()
	var bars []g.Node
	for _, r := range Bars(c) {
		bars = append(bars, g.El("rect",
			attr("x", r.X), attr("y", r.Y), attr("width", r.W), attr("height", r.H),
			g.Attr("rx", "3"), g.Attr("fill", r.Color),
			g.El("title", g.Text(fmt.Sprintf("%s: %s", r.Label, label(r.Value)))),
		))
	}
	return svg(c, grid(c, a), g.Group(bars))
}
