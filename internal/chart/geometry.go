package chart

// Bars lays out a grouped bar chart: one group per label, one bar per series.
func Bars(c Chart) []Rect {
	if c.empty() || len(c.Series) == 0 {
		return nil
	}
	a := c.axis()
	left, _, w, _ := c.plot()

	group := w / float64(len(c.Labels))
	inner := group * 0.8
	barW := inner / float64(len(c.Series))
	base := c.valueY(a, a.Min)

	var rects []Rect
	for i, label := range c.Labels {
		for j, s := range c.Series {
			if i >= len(s.Values) {
				continue
			}
			v := s.Values[i]
			y := c.valueY(a, v)
			rects = append(rects, Rect{
				X:     left + float64(i)*group + group*0.1 + float64(j)*barW,
				Y:     y,
				W:     barW,
				H:     base - y,
				Color: s.Color,
				Label: label,
				Value: v,
			})
		}
	}
	return rects
}

// labelX returns the x coordinate of the i-th label's center.
func (c Chart) labelX(i int) float64 {
	left, _, w, _ := c.plot()
	group := w / float64(len(c.Labels))
	return left + (float64(i)+0.5)*group
}
