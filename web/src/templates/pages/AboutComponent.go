package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/ecowaste/site/internal/domain"
	"github.com/ecowaste/site/web/src/templates/components"
)

var aboutHighlights = []domain.Highlight{
	{Icon: "recycle", Value: "500K+", Label: "Tons Recycled"},
	{Icon: "users", Value: "1,200+", Label: "Organizations"},
	{Icon: "target", Value: "45%", Label: "Waste Reduction"},
	{Icon: "award", Value: "98%", Label: "Client Satisfaction"},
}

var aboutValues = []domain.Feature{
	{Icon: "leaf", Title: "Environmental Stewardship", Description: "Committed to reducing environmental impact through innovative waste management solutions."},
	{Icon: "recycle", Title: "Circular Economy", Description: "Promoting sustainable practices that turn waste into valuable resources."},
	{Icon: "target", Title: "Efficiency Focus", Description: "Streamlining waste management processes for maximum effectiveness and cost savings."},
	{Icon: "users", Title: "Community Impact", Description: "Empowering communities to actively participate in sustainable waste management."},
}

var aboutTechnology = []domain.Feature{
	{Icon: "bar-chart", Title: "AI Analytics", Description: "Advanced machine learning algorithms provide insights into waste patterns and optimization opportunities."},
	{Icon: "globe", Title: "Cloud Platform", Description: "Secure, scalable cloud infrastructure ensures reliable access to your data anywhere, anytime."},
	{Icon: "users", Title: "Collaboration Tools", Description: "Integrated tools that connect teams, communities, and stakeholders for better coordination."},
}

// AboutContent is the main content of the About page.
func AboutContent() cmp.Node {
	return g.Div(
		g.Section(
			g.Class("py-20 bg-gradient-to-br from-primary/5 to-primary-glow/5"),
			g.Div(
				g.Class("container mx-auto px-4 max-w-4xl text-center"),
				g.H1(g.Class("text-5xl font-bold mb-6 text-gradient"), cmp.Text("About EcoWaste")),
				g.P(g.Class("text-xl text-muted-foreground leading-relaxed"),
					cmp.Text("Our Waste Management System helps track and manage waste efficiently. It reduces pollution, improves recycling, and promotes sustainable living through intelligent technology and community engagement.")),
			),
		),
		g.Section(
			g.Class("py-20"),
			g.Div(
				g.Class("container mx-auto px-4 grid grid-cols-1 lg:grid-cols-2 gap-16 items-center"),
				g.Div(
					g.Div(
						g.Class("flex items-center mb-6 space-x-4"),
						components.IconBadge("globe", "w-12 h-12", "w-6 h-6"),
						g.H2(g.Class("text-3xl font-bold"), cmp.Text("Our Mission")),
					),
					g.P(g.Class("text-lg text-muted-foreground mb-6 leading-relaxed"),
						cmp.Text("We envision a world where waste is transformed from a problem into a solution. Through innovative technology and sustainable practices, we're building a circular economy that benefits both communities and the environment.")),
					g.P(g.Class("text-lg text-muted-foreground leading-relaxed"),
						cmp.Text("Our platform empowers organizations to make data-driven decisions, optimize their waste management processes, and contribute to a more sustainable future for generations to come.")),
				),
				g.Div(
					g.Class("grid grid-cols-2 gap-6"),
					cmp.Map(aboutHighlights, func(h domain.Highlight) cmp.Node {
						return components.Card("text-center",
							components.CardContent("",
								g.Div(g.Class("flex justify-center mb-4"), components.IconBadge(h.Icon, "w-12 h-12", "w-6 h-6")),
								g.Div(g.Class("text-3xl font-bold text-primary mb-2"), cmp.Text(h.Value)),
								g.Div(g.Class("text-sm text-muted-foreground"), cmp.Text(h.Label)),
							),
						)
					}),
				),
			),
		),
		g.Section(
			g.Class("py-20 bg-muted/30"),
			g.Div(
				g.Class("container mx-auto px-4"),
				sectionHeading("Our Core Values", "These principles guide everything we do, from product development to customer service and community engagement."),
				g.Div(
					g.Class("grid grid-cols-1 md:grid-cols-2 gap-8"),
					cmp.Map(aboutValues, func(v domain.Feature) cmp.Node {
						return components.Card("group",
							components.CardContent("p-8",
								g.Div(
									g.Class("flex items-start space-x-4"),
									components.IconBadge(v.Icon, "w-12 h-12 flex-shrink-0", "w-6 h-6"),
									g.Div(
										g.H3(g.Class("text-xl font-semibold mb-3"), cmp.Text(v.Title)),
										g.P(g.Class("text-muted-foreground leading-relaxed"), cmp.Text(v.Description)),
									),
								),
							),
						)
					}),
				),
			),
		),
		g.Section(
			g.Class("py-20"),
			g.Div(
				g.Class("container mx-auto px-4 max-w-4xl text-center"),
				g.H2(g.Class("text-4xl font-bold mb-8"), cmp.Text("Innovative Technology")),
				g.Div(
					g.Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
					cmp.Map(aboutTechnology, func(t domain.Feature) cmp.Node {
						return g.Div(
							g.Class("space-y-4"),
							g.Div(g.Class("flex justify-center"), components.IconBadge(t.Icon, "w-16 h-16", "w-8 h-8")),
							g.H3(g.Class("text-xl font-semibold"), cmp.Text(t.Title)),
							g.P(g.Class("text-muted-foreground"), cmp.Text(t.Description)),
						)
					}),
				),
			),
		),
	)
}

func sectionHeading(title, lead string) cmp.Node {
	return g.Div(
		g.Class("text-center mb-16"),
		g.H2(g.Class("text-4xl font-bold mb-6"), cmp.Text(title)),
		g.P(g.Class("text-xl text-muted-foreground max-w-3xl mx-auto"), cmp.Text(lead)),
	)
}
