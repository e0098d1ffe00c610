package pages

import (
	"fmt"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/ecowaste/site/internal/chart"
	"github.com/ecowaste/site/internal/domain"
	"github.com/ecowaste/site/internal/wastedata"
)

func monthlyWasteChart(rows []domain.MonthlyWaste) chart.Chart {
	c := chart.Chart{Title: "Monthly Waste Trends"}
	organic := chart.Series{Name: "Organic", Color: wastedata.StreamColor(domain.WasteOrganic)}
	inorganic := chart.Series{Name: "Inorganic", Color: wastedata.StreamColor(domain.WasteInorganic)}
	recycled := chart.Series{Name: "Recycled", Color: wastedata.StreamColor(domain.WasteRecyclable)}
	for _, r := range rows {
		c.Labels = append(c.Labels, r.Month)
		organic.Values = append(organic.Values, float64(r.Organic))
		inorganic.Values = append(inorganic.Values, float64(r.Inorganic))
		recycled.Values = append(recycled.Values, float64(r.Recycled))
	}
	c.Series = []chart.Series{organic, inorganic, recycled}
	return c
}

func recyclingTrendChart(points []domain.RecyclingPoint) chart.Chart {
	c := chart.Chart{Title: "Recycling Rate Trend", Height: 250}
	rate := chart.Series{Name: "Rate", Color: "#22c55e"}
	for _, p := range points {
		c.Labels = append(c.Labels, p.Week)
		rate.Values = append(rate.Values, float64(p.Rate))
	}
	c.Series = []chart.Series{rate}
	return c
}

func distributionSlices(shares []domain.WasteShare) []chart.Slice {
	out := make([]chart.Slice, len(shares))
	for i, s := range shares {
		out[i] = chart.Slice{Label: s.Name, Value: float64(s.Value), Color: s.Color}
	}
	return out
}

// areaChart keeps one series per selected stream.
func areaChart(a domain.Analysis) chart.Chart {
	c := chart.Chart{Title: "Waste by Area Code", Height: 350}
	for _, area := range a.Areas {
		c.Labels = append(c.Labels, area.Area)
	}
	for _, s := range a.Streams {
		series := chart.Series{Name: wastedata.StreamLabel(s), Color: wastedata.StreamColor(s)}
		for _, area := range a.Areas {
			series.Values = append(series.Values, float64(wastedata.StreamValue(area, s)))
		}
		c.Series = append(c.Series, series)
	}
	return c
}

func dailyChart(rows []domain.DailyCollection) chart.Chart {
	c := chart.Chart{Title: "Daily Collection Trends", Height: 350}
	total := chart.Series{Name: "Total", Color: "#3b82f6"}
	recycled := chart.Series{Name: "Recycled", Color: "#22c55e"}
	for _, r := range rows {
		c.Labels = append(c.Labels, r.Day)
		total.Values = append(total.Values, float64(r.Total))
		recycled.Values = append(recycled.Values, float64(r.Recycled))
	}
	c.Series = []chart.Series{total, recycled}
	return c
}

func efficiencyChart(rows []domain.EfficiencyPoint) chart.Chart {
	c := chart.Chart{Title: "Efficiency vs Target Performance", Width: 900, Height: 400}
	actual := chart.Series{Name: "Actual Efficiency", Color: "#22c55e"}
	target := chart.Series{Name: "Target", Color: "#ef4444", Dashed: true}
	for _, r := range rows {
		c.Labels = append(c.Labels, r.Month)
		actual.Values = append(actual.Values, float64(r.Efficiency))
		target.Values = append(target.Values, float64(r.Target))
	}
	c.Series = []chart.Series{actual, target}
	c.Domain = chart.PaddedDomain(c.Series, 5)
	return c
}

// legend lists the series of a chart with their colors.
func legend(series []chart.Series) cmp.Node {
	if len(series) == 0 {
		return nil
	}
	return g.Div(
		g.Class("flex flex-wrap gap-4 mt-4 text-sm"),
		cmp.Map(series, func(s chart.Series) cmp.Node {
			return legendItem(s.Color, s.Name)
		}),
	)
}

func legendItem(color, text string) cmp.Node {
	return g.Div(
		g.Class("flex items-center space-x-2"),
		g.Span(g.Class("w-3 h-3 rounded-full inline-block"), g.Style("background-color: "+color)),
		g.Span(cmp.Text(text)),
	)
}

func shareLegend(shares []domain.WasteShare) cmp.Node {
	return g.Div(
		g.Class("grid grid-cols-2 gap-4 mt-4"),
		cmp.Map(shares, func(s domain.WasteShare) cmp.Node {
			return legendItem(s.Color, fmt.Sprintf("%s: %d%%", s.Name, s.Value))
		}),
	)
}
