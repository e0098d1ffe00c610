package pages

import (
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/ecowaste/site/internal/chart"
	"github.com/ecowaste/site/internal/domain"
	"github.com/ecowaste/site/internal/wastedata"
	"github.com/ecowaste/site/web/src/templates/components"
)

// AnalysisResultsID is the element swapped when the filters are applied.
const AnalysisResultsID = "analysis-results"

// AnalysisData is what the data-analysis page renders.
type AnalysisData struct {
	Filter   wastedata.Filter
	Areas    []wastedata.Area
	Analysis domain.Analysis
	// Error is the validation message of a rejected filter.
	Error string
}

// DataAnalysis is the full data-analysis page.
func DataAnalysis(d AnalysisData) cmp.Node {
	return g.Div(
		g.Class("container mx-auto px-4 py-8"),
		pageHeading("Data Analysis", "Comprehensive waste management analytics with interactive filters and insights"),
		filterForm(d),
		AnalysisResults(d),
	)
}

func filterForm(d AnalysisData) cmp.Node {
	selectClass := g.Class("w-full h-10 rounded-md border border-input bg-background px-3 text-sm")
	return components.Card("mb-8",
		components.CardHeader("filter", "Analysis Filters"),
		components.CardContent("",
			cmp.El("form",
				g.Method("get"),
				g.Action("/data-analysis"),
				g.ID("analysis-filters"),
				g.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-4"),
				g.Div(
					g.Class("space-y-2"),
					cmp.El("label", g.Class("text-sm font-medium"), cmp.Text("Date Range")),
					g.Div(
						g.Class("flex space-x-2"),
						g.Input(g.Type("date"), g.Name("from"), cmp.Attr("aria-label", "From"), g.Value(d.Filter.From), g.Class("flex-1 h-10 rounded-md border border-input px-2 text-sm")),
						g.Input(g.Type("date"), g.Name("to"), cmp.Attr("aria-label", "To"), g.Value(d.Filter.To), g.Class("flex-1 h-10 rounded-md border border-input px-2 text-sm")),
					),
				),
				g.Div(
					g.Class("space-y-2"),
					cmp.El("label", g.For("area"), g.Class("text-sm font-medium"), cmp.Text("Area Code")),
					g.Select(
						g.ID("area"), g.Name("area"), selectClass,
						option("all", "All Areas", d.Filter.Area == "" || d.Filter.Area == "all"),
						cmp.Map(d.Areas, func(a wastedata.Area) cmp.Node {
							return option(a.Code, a.Label, d.Filter.Area == a.Code)
						}),
					),
				),
				g.Div(
					g.Class("space-y-2"),
					cmp.El("label", g.For("type"), g.Class("text-sm font-medium"), cmp.Text("Waste Type")),
					g.Select(
						g.ID("type"), g.Name("type"), selectClass,
						cmp.Map(wastedata.WasteTypeOptions, func(o wastedata.WasteTypeOption) cmp.Node {
							selected := string(o.Value) == d.Filter.WasteType || (d.Filter.WasteType == "" && o.Value == domain.WasteAll)
							return option(string(o.Value), o.Label, selected)
						}),
					),
				),
				g.Div(
					g.Class("space-y-2"),
					cmp.El("label", g.Class("text-sm font-medium invisible"), cmp.Text("Actions")),
					g.Div(
						g.Class("flex space-x-2"),
						g.Button(
							g.Type("submit"),
							g.Class("flex-1 h-10 rounded-md bg-primary text-primary-foreground inline-flex items-center justify-center"),
							hx.Get("/data-analysis"),
							hx.Include("closest form"),
							hx.Target("#"+AnalysisResultsID),
							hx.Swap("outerHTML"),
							hx.PushURL("true"),
							components.Icon("bar-chart", "w-4 h-4 mr-2"),
							cmp.Text("Apply"),
						),
						g.Button(
							g.Type("submit"),
							cmp.Attr("formaction", "/data-analysis/export"),
							g.Class("flex-1 h-10 rounded-md border border-input inline-flex items-center justify-center"),
							components.Icon("download", "w-4 h-4 mr-2"),
							cmp.Text("Export"),
						),
					),
				),
			),
		),
	)
}

func option(value, label string, selected bool) cmp.Node {
	return g.Option(g.Value(value), cmp.If(selected, g.Selected()), cmp.Text(label))
}

// AnalysisResults is the part of the page that depends on the filters.
// htmx requests receive only this fragment.
func AnalysisResults(d AnalysisData) cmp.Node {
	if d.Error != "" {
		return g.Div(g.ID(AnalysisResultsID), components.ErrorBanner(d.Error))
	}
	areas := areaChart(d.Analysis)
	eff := efficiencyChart(d.Analysis.Efficiency)
	return g.Div(
		g.ID(AnalysisResultsID),
		g.Div(
			g.Class("grid grid-cols-1 lg:grid-cols-2 gap-8 mb-8"),
			components.Card("",
				components.CardHeader("map", "Waste by Area Code"),
				components.CardContent("", chart.BarChart(areas), legend(areas.Series)),
			),
			components.Card("",
				components.CardHeader("calendar", "Daily Collection Trends"),
				components.CardContent("", chart.AreaChart(dailyChart(d.Analysis.Daily))),
			),
		),
		components.Card("mb-8",
			components.CardHeader("target", "Efficiency vs Target Performance"),
			components.CardContent("", chart.LineChart(eff), legend(eff.Series)),
		),
		g.Div(
			g.Class("grid grid-cols-1 md:grid-cols-3 gap-6"),
			cmp.Map(d.Analysis.Insights, insightCard),
		),
	)
}

func insightCard(in domain.Insight) cmp.Node {
	return components.Card("insight",
		components.CardContent("",
			g.Div(
				g.Class("flex items-center space-x-4"),
				g.Div(
					g.Class("w-12 h-12 rounded-lg flex items-center justify-center bg-"+string(in.Tone)+"/10"),
					components.Icon(in.Icon, "w-6 h-6 text-"+string(in.Tone)),
				),
				g.Div(
					g.H3(g.Class("font-semibold text-lg"), cmp.Text(in.Title)),
					g.P(g.Class("text-sm text-muted-foreground"), cmp.Text(in.Detail)),
				),
			),
		),
	)
}
