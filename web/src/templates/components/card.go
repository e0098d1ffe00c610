package components

import (
	"fmt"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/ecowaste/site/internal/domain"
	"github.com/ecowaste/site/internal/view"
)

// Card is the rounded panel used by every page.
func Card(class string, children ...cmp.Node) cmp.Node {
	return g.Div(
		g.Class("rounded-xl border border-border bg-card shadow-sm hover:shadow-hover transition-all duration-300 "+class),
		cmp.Group(children),
	)
}

// CardHeader is a card title preceded by a small icon.
func CardHeader(icon, title string) cmp.Node {
	return g.Div(
		g.Class("p-6 pb-2 flex items-center space-x-2"),
		Icon(icon, "w-5 h-5 text-primary"),
		g.H3(g.Class("text-lg font-semibold"), cmp.Text(title)),
	)
}

// CardContent pads the card body.
func CardContent(class string, children ...cmp.Node) cmp.Node {
	return g.Div(g.Class("p-6 "+class), cmp.Group(children))
}

// StatCard renders a headline number with its unit and monthly trend.
func StatCard(s domain.Stat) cmp.Node {
	return Card("",
		CardContent("",
			g.Div(
				g.Class("flex items-center justify-between"),
				g.Div(
					g.Class("space-y-2"),
					g.P(g.Class("text-sm font-medium text-muted-foreground"), cmp.Text(s.Title)),
					g.Div(
						g.Class("flex items-baseline space-x-1"),
						g.P(g.Class("text-3xl font-bold stat-value"), cmp.Text(view.FormatNumber(s.Value))),
						cmp.If(s.Unit != "", g.Span(g.Class("text-lg text-muted-foreground"), cmp.Text(s.Unit))),
					),
					cmp.If(s.Trend != nil, trend(s.Trend)),
				),
				IconBadge(s.Icon, "w-12 h-12", "w-6 h-6"),
			),
		),
	)
}

func trend(t *domain.Trend) cmp.Node {
	if t == nil {
		return nil
	}
	arrow, color := "↘", "text-destructive"
	if t.Positive {
		arrow, color = "↗", "text-success"
	}
	value := t.Value
	if value < 0 {
		value = -value
	}
	return g.Div(
		g.Class("flex items-center space-x-1 text-xs "+color),
		g.Span(cmp.Text(arrow)),
		g.Span(cmp.Text(fmt.Sprintf("%d%% from last month", value))),
	)
}
