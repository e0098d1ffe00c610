package wastedata

import (
	"fmt"
	"time"

	"github.com/ecowaste/site/internal/domain"
)

// DateLayout is the format of the from/to query parameters.
const DateLayout = "2006-01-02"

// Filter narrows the analysis. Zero values mean "all".
type Filter struct {
	Area      string `query:"area" json:"area"`
	WasteType string `query:"type" json:"type"`
	From      string `query:"from" json:"from"`
	To        string `query:"to" json:"to"`
}

// streamsByType maps a waste type filter to the series it keeps. Hazardous
// waste is selectable but the mock data carries no such series.
var streamsByType = map[domain.WasteType][]domain.WasteType{
	domain.WasteAll:        {domain.WasteOrganic, domain.WasteInorganic, domain.WasteRecyclable},
	domain.WasteOrganic:    {domain.WasteOrganic},
	domain.WasteInorganic:  {domain.WasteInorganic},
	domain.WasteRecyclable: {domain.WasteRecyclable},
	domain.WasteHazardous:  {},
}

// WasteTypeOption is a selectable waste type with its display label.
type WasteTypeOption struct {
	Value domain.WasteType
	Label string
}

// WasteTypeOptions lists the waste type filter values in display order.
var WasteTypeOptions = []WasteTypeOption{
	{domain.WasteAll, "All Types"},
	{domain.WasteOrganic, "Organic"},
	{domain.WasteInorganic, "Inorganic"},
	{domain.WasteRecyclable, "Recyclable"},
	{domain.WasteHazardous, "Hazardous"},
}

// Validate checks every field of the filter.
func (f Filter) Validate() error {
	if f.Area != "" && f.Area != "all" && !knownArea(f.Area) {
		return fmt.Errorf("%w: unknown area code %q", domain.ErrInvalidFilter, f.Area)
	}
	if _, ok := streamsByType[f.wasteType()]; !ok {
		return fmt.Errorf("%w: unknown waste type %q", domain.ErrInvalidFilter, f.WasteType)
	}

	from, err := parseDate("from", f.From)
	if err != nil {
		return err
	}
	to, err := parseDate("to", f.To)
	if err != nil {
		return err
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return fmt.Errorf("%w: start date %s is after end date %s", domain.ErrInvalidFilter, f.From, f.To)
	}
	return nil
}

// Streams returns the series kept by the waste type filter.
func (f Filter) Streams() []domain.WasteType {
	streams := streamsByType[f.wasteType()]
	out := make([]domain.WasteType, len(streams))
	copy(out, streams)
	return out
}

func (f Filter) wasteType() domain.WasteType {
	if f.WasteType == "" {
		return domain.WasteAll
	}
	return domain.WasteType(f.WasteType)
}

func (f Filter) matchesArea(code string) bool {
	return f.Area == "" || f.Area == "all" || f.Area == code
}

func knownArea(code string) bool {
	for _, a := range areaWaste {
		if a.Code == code {
			return true
		}
	}
	return false
}

func parseDate(field, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s date %q is not YYYY-MM-DD", domain.ErrInvalidFilter, field, raw)
	}
	return t, nil
}

// StreamValue returns the volume of one stream in an area.
func StreamValue(a domain.AreaWaste, s domain.WasteType) int {
	switch s {
	case domain.WasteOrganic:
		return a.Organic
	case domain.WasteInorganic:
		return a.Inorganic
	case domain.WasteRecyclable:
		return a.Recycled
	}
	return 0
}

// StreamLabel is the column/legend label of a stream.
func StreamLabel(s domain.WasteType) string {
	switch s {
	case domain.WasteOrganic:
		return "Organic"
	case domain.WasteInorganic:
		return "Inorganic"
	case domain.WasteRecyclable:
		return "Recycled"
	case domain.WasteHazardous:
		return "Hazardous"
	}
	return string(s)
}

// StreamColor is the chart color of a stream.
func StreamColor(s domain.WasteType) string {
	switch s {
	case domain.WasteOrganic:
		return "#22c55e"
	case domain.WasteInorganic:
		return "#3b82f6"
	case domain.WasteRecyclable:
		return "#f59e0b"
	}
	return "#64748b"
}
