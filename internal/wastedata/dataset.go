// Package wastedata serves the mock waste-management figures shown on the
// dashboard and analysis pages.
package wastedata

import (
	"slices"

	"github.com/ecowaste/site/internal/domain"
)

var monthlyWaste = []domain.MonthlyWaste{
	{Month: "Jan", Organic: 120, Inorganic: 80, Recycled: 60},
	{Month: "Feb", Organic: 135, Inorganic: 85, Recycled: 70},
	{Month: "Mar", Organic: 140, Inorganic: 90, Recycled: 75},
	{Month: "Apr", Organic: 125, Inorganic: 75, Recycled: 65},
	{Month: "May", Organic: 150, Inorganic: 95, Recycled: 85},
	{Month: "Jun", Organic: 165, Inorganic: 100, Recycled: 90},
}

var wasteDistribution = []domain.WasteShare{
	{Name: "Organic", Value: 45, Color: "#22c55e"},
	{Name: "Plastic", Value: 25, Color: "#3b82f6"},
	{Name: "Paper", Value: 20, Color: "#f59e0b"},
	{Name: "Metal", Value: 10, Color: "#ef4444"},
}

var recyclingTrend = []domain.RecyclingPoint{
	{Week: "Week 1", Rate: 68},
	{Week: "Week 2", Rate: 72},
	{Week: "Week 3", Rate: 75},
	{Week: "Week 4", Rate: 78},
}

var dashboardStats = []domain.Stat{
	{Title: "Organic Waste", Value: 1245, Unit: "kg", Icon: "recycle", Trend: &domain.Trend{Value: 12, Positive: true}},
	{Title: "Inorganic Waste", Value: 856, Unit: "kg", Icon: "trash", Trend: &domain.Trend{Value: 8, Positive: false}},
	{Title: "Total Waste", Value: 2101, Unit: "kg", Icon: "target", Trend: &domain.Trend{Value: 5, Positive: true}},
	{Title: "Recycling Rate", Value: 78, Unit: "%", Icon: "trending-up", Trend: &domain.Trend{Value: 15, Positive: true}},
}

var areaWaste = []domain.AreaWaste{
	{Code: "zone-a", Area: "Zone A", Organic: 450, Inorganic: 320, Recycled: 380},
	{Code: "zone-b", Area: "Zone B", Organic: 380, Inorganic: 280, Recycled: 290},
	{Code: "zone-c", Area: "Zone C", Organic: 520, Inorganic: 400, Recycled: 440},
	{Code: "zone-d", Area: "Zone D", Organic: 300, Inorganic: 250, Recycled: 220},
	{Code: "zone-e", Area: "Zone E", Organic: 420, Inorganic: 350, Recycled: 380},
}

var dailyTrend = []domain.DailyCollection{
	{Day: "Mon", Total: 340, Recycled: 180},
	{Day: "Tue", Total: 380, Recycled: 210},
	{Day: "Wed", Total: 420, Recycled: 250},
	{Day: "Thu", Total: 360, Recycled: 190},
	{Day: "Fri", Total: 480, Recycled: 290},
	{Day: "Sat", Total: 520, Recycled: 320},
	{Day: "Sun", Total: 290, Recycled: 160},
}

var efficiencyData = []domain.EfficiencyPoint{
	{Month: "Jan", Efficiency: 65, Target: 70},
	{Month: "Feb", Efficiency: 68, Target: 70},
	{Month: "Mar", Efficiency: 72, Target: 75},
	{Month: "Apr", Efficiency: 70, Target: 75},
	{Month: "May", Efficiency: 78, Target: 80},
	{Month: "Jun", Efficiency: 82, Target: 80},
}

// Area is a selectable area code with its display label.
type Area struct {
	Code  string
	Label string
}

// Dataset hands out copies of the mock figures so callers can never
// mutate the shared arrays.
type Dataset struct{}

// New returns the mock dataset.
func New() *Dataset {
	return &Dataset{}
}

// Dashboard returns the figures for the dashboard page.
func (d *Dataset) Dashboard() domain.Dashboard {
	stats := make([]domain.Stat, len(dashboardStats))
	for i, s := range dashboardStats {
		stats[i] = s
		if s.Trend != nil {
			t := *s.Trend
			stats[i].Trend = &t
		}
	}
	return domain.Dashboard{
		Stats:          stats,
		Monthly:        slices.Clone(monthlyWaste),
		Distribution:   slices.Clone(wasteDistribution),
		RecyclingTrend: slices.Clone(recyclingTrend),
	}
}

// Areas lists the area codes the analysis can be filtered by.
func (d *Dataset) Areas() []Area {
	out := make([]Area, len(areaWaste))
	for i, a := range areaWaste {
		out[i] = Area{Code: a.Code, Label: a.Area}
	}
	return out
}

// Analysis returns the figures for the data-analysis page narrowed by f.
func (d *Dataset) Analysis(f Filter) (domain.Analysis, error) {
	if err := f.Validate(); err != nil {
		return domain.Analysis{}, err
	}

	var areas []domain.AreaWaste
	for _, a := range areaWaste {
		if f.matchesArea(a.Code) {
			areas = append(areas, a)
		}
	}

	daily := slices.Clone(dailyTrend)
	efficiency := slices.Clone(efficiencyData)

	return domain.Analysis{
		Areas:      areas,
		Streams:    f.Streams(),
		Daily:      daily,
		Efficiency: efficiency,
		Insights:   insights(areaWaste, daily, efficiency),
	}, nil
}
