package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/ecowaste/site/internal/chart"
	"github.com/ecowaste/site/internal/domain"
	"github.com/ecowaste/site/web/src/templates/components"
)

type quickAction struct {
	Title  string
	Detail string
	Href   string
}

var quickActions = []quickAction{
	{Title: "Schedule Collection", Detail: "Next pickup: Tomorrow"},
	{Title: "Generate Report", Detail: "Monthly summary", Href: "/data-analysis/export"},
	{Title: "View Analytics", Detail: "Detailed insights", Href: "/data-analysis"},
	{Title: "Update Goals", Detail: "Set new targets"},
}

// Dashboard renders the stat cards, the three charts and the quick actions.
func Dashboard(d domain.Dashboard) cmp.Node {
	monthly := monthlyWasteChart(d.Monthly)
	return g.Div(
		g.Class("container mx-auto px-4 py-8"),
		pageHeading("Waste Management Dashboard", "Monitor and track your waste management performance"),
		g.Div(
			g.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-6 mb-8"),
			cmp.Map(d.Stats, components.StatCard),
		),
		g.Div(
			g.Class("grid grid-cols-1 lg:grid-cols-2 gap-8 mb-8"),
			components.Card("",
				components.CardHeader("bar-chart", "Monthly Waste Trends"),
				components.CardContent("", chart.BarChart(monthly), legend(monthly.Series)),
			),
			components.Card("",
				components.CardHeader("pie-chart", "Waste Type Distribution"),
				components.CardContent("",
					g.Div(g.Class("max-w-xs mx-auto"), chart.PieChart("Waste Type Distribution", distributionSlices(d.Distribution), 240)),
					shareLegend(d.Distribution),
				),
			),
		),
		g.Div(
			g.Class("grid grid-cols-1 lg:grid-cols-3 gap-8"),
			components.Card("lg:col-span-2",
				components.CardHeader("trending-up", "Recycling Rate Trend"),
				components.CardContent("", chart.LineChart(recyclingTrendChart(d.RecyclingTrend))),
			),
			components.Card("",
				components.CardHeader("calendar", "Quick Actions"),
				components.CardContent("space-y-4", cmp.Map(quickActions, quickActionButton)),
			),
		),
	)
}

func quickActionButton(a quickAction) cmp.Node {
	class := g.Class("block w-full p-3 text-left border border-border rounded-lg hover:bg-accent transition-colors")
	body := []cmp.Node{
		class,
		g.Div(g.Class("font-medium"), cmp.Text(a.Title)),
		g.Div(g.Class("text-sm text-muted-foreground"), cmp.Text(a.Detail)),
	}
	if a.Href != "" {
		return g.A(append([]cmp.Node{g.Href(a.Href)}, body...)...)
	}
	return g.Button(append([]cmp.Node{g.Type("button")}, body...)...)
}

func pageHeading(title, lead string) cmp.Node {
	return g.Div(
		g.Class("mb-8"),
		g.H1(g.Class("text-4xl font-bold mb-2"), cmp.Text(title)),
		g.P(g.Class("text-muted-foreground"), cmp.Text(lead)),
	)
}
