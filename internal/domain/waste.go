package domain

// MonthlyWaste is one month of collected volume (kg) per waste stream.
type MonthlyWaste struct {
	Month     string `json:"month"`
	Organic   int    `json:"organic"`
	Inorganic int    `json:"inorganic"`
	Recycled  int    `json:"recycled"`
}

// WasteShare is a slice of the waste type distribution, in percent.
type WasteShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// RecyclingPoint is the weekly recycling rate, in percent.
type RecyclingPoint struct {
	Week string `json:"week"`
	Rate int    `json:"rate"`
}

// Trend describes the change of a stat against the previous month.
type Trend struct {
	Value    int  `json:"value"`
	Positive bool `json:"positive"`
}

// Stat is a headline number shown on a dashboard card.
type Stat struct {
	Title string `json:"title"`
	Value int    `json:"value"`
	Unit  string `json:"unit"`
	Icon  string `json:"icon"`
	Trend *Trend `json:"trend,omitempty"`
}

// AreaWaste is the volume collected in one area code.
type AreaWaste struct {
	Code      string `json:"code"`
	Area      string `json:"area"`
	Organic   int    `json:"organic"`
	Inorganic int    `json:"inorganic"`
	Recycled  int    `json:"recycled"`
}

// Total returns the sum of every stream collected in the area.
func (a AreaWaste) Total() int {
	return a.Organic + a.Inorganic + a.Recycled
}

// DailyCollection is one weekday of collected and recycled volume.
type DailyCollection struct {
	Day      string `json:"day"`
	Total    int    `json:"total"`
	Recycled int    `json:"recycled"`
}

// EfficiencyPoint compares actual collection efficiency with its target.
type EfficiencyPoint struct {
	Month      string `json:"month"`
	Efficiency int    `json:"efficiency"`
	Target     int    `json:"target"`
}

// Feature is an icon, a title and a short blurb on a marketing page.
type Feature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Highlight is a big number with a label, used on the About page.
type Highlight struct {
	Icon  string `json:"icon"`
	Value string `json:"value"`
	Label string `json:"label"`
}

// Tone selects the accent color of an insight card.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	TonePrimary Tone = "primary"
)

// Insight is a short derived observation shown under the analysis charts.
type Insight struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Icon   string `json:"icon"`
	Tone   Tone   `json:"tone"`
}

// WasteType names one stream the analysis can be filtered by.
type WasteType string

const (
	WasteAll        WasteType = "all"
	WasteOrganic    WasteType = "organic"
	WasteInorganic  WasteType = "inorganic"
	WasteRecyclable WasteType = "recyclable"
	WasteHazardous  WasteType = "hazardous"
)

// Dashboard is everything rendered on the dashboard page.
type Dashboard struct {
	Stats          []Stat           `json:"stats"`
	Monthly        []MonthlyWaste   `json:"monthly"`
	Distribution   []WasteShare     `json:"distribution"`
	RecyclingTrend []RecyclingPoint `json:"recyclingTrend"`
}

// Analysis is the filtered data rendered on the data-analysis page.
type Analysis struct {
	Areas      []AreaWaste       `json:"areas"`
	Streams    []WasteType       `json:"streams"`
	Daily      []DailyCollection `json:"daily"`
	Efficiency []EfficiencyPoint `json:"efficiency"`
	Insights   []Insight         `json:"insights"`
}
