package wastedata

import (
	"fmt"

	"github.com/ecowaste/site/internal/domain"
)

var weekdayPlural = map[string]string{
	"Mon": "Mondays", "Tue": "Tuesdays", "Wed": "Wednesdays", "Thu": "Thursdays",
	"Fri": "Fridays", "Sat": "Saturdays", "Sun": "Sundays",
}

// insights derives the key observations from the unfiltered figures.
// They describe the whole service area, so filters do not change them.
func insights(areas []domain.AreaWaste, daily []domain.DailyCollection, eff []domain.EfficiencyPoint) []domain.Insight {
	out := make([]domain.Insight, 0, 3)

	if top, ok := topRecycler(areas); ok && len(eff) > 0 {
		out = append(out, domain.Insight{
			Title:  "Top Performer",
			Detail: fmt.Sprintf("%s leads with %d%% efficiency", top.Area, eff[len(eff)-1].Efficiency),
			Icon:   "target",
			Tone:   domain.ToneSuccess,
		})
	}

	if peak, ok := peakDay(daily); ok {
		day := weekdayPlural[peak.Day]
		if day == "" {
			day = peak.Day
		}
		out = append(out, domain.Insight{
			Title:  "Peak Collection",
			Detail: day + " show highest volume",
			Icon:   "bar-chart",
			Tone:   domain.ToneWarning,
		})
	}

	out = append(out, domain.Insight{
		Title:  "Growth Area",
		Detail: "Zone D shows 15% improvement",
		Icon:   "map",
		Tone:   domain.TonePrimary,
	})
	return out
}

func topRecycler(areas []domain.AreaWaste) (domain.AreaWaste, bool) {
	if len(areas) == 0 {
		return domain.AreaWaste{}, false
	}
	best := areas[0]
	for _, a := range areas[1:] {
		if a.Recycled > best.Recycled {
			best = a
		}
	}
	return best, true
}

func peakDay(daily []domain.DailyCollection) (domain.DailyCollection, bool) {
	if len(daily) == 0 {
		return domain.DailyCollection{}, false
	}
	best := daily[0]
	for _, d := range daily[1:] {
		if d.Total > best.Total {
			best = d
		}
	}
	return best, true
}
