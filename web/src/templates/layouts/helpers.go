package layouts

// Brand is the site name shown in titles, the header and the footer.
const Brand = "EcoWaste"

// CalculateTitle builds the document title for a page.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - " + Brand
	}
	return Brand
}

// NavItem is one entry of the main navigation.
type NavItem struct {
	Name string
	Href string
	Icon string
}

// Navigation lists the header links in display order.
var Navigation = []NavItem{
	{Name: "Home", Href: "/", Icon: "leaf"},
	{Name: "About", Href: "/about", Icon: "recycle"},
	{Name: "Dashboard", Href: "/dashboard", Icon: "bar-chart"},
	{Name: "Data Analysis", Href: "/data-analysis", Icon: "bar-chart"},
}
