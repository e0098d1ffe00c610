package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/ecowaste/site/internal/domain"
	"github.com/ecowaste/site/web/src/templates/components"
)

var homeFeatures = []domain.Feature{
	{Icon: "recycle", Title: "Smart Recycling", Description: "AI-powered waste sorting and recycling optimization for maximum efficiency."},
	{Icon: "bar-chart", Title: "Real-time Analytics", Description: "Track waste patterns, reduction metrics, and environmental impact in real-time."},
	{Icon: "leaf", Title: "Eco-Friendly Solutions", Description: "Sustainable practices that reduce carbon footprint and promote green living."},
	{Icon: "shield", Title: "Compliance Management", Description: "Ensure regulatory compliance with automated reporting and monitoring."},
	{Icon: "award", Title: "Performance Tracking", Description: "Monitor recycling rates, waste reduction goals, and sustainability metrics."},
	{Icon: "users", Title: "Community Engagement", Description: "Connect communities through shared sustainability goals and achievements."},
}

// Home is the landing page: hero, feature grid and call to action.
func Home() cmp.Node {
	return g.Div(
		g.Section(
			g.Class("relative min-h-[80vh] flex items-center justify-center overflow-hidden hero"),
			g.Div(g.Class("absolute inset-0 bg-gradient-to-r from-primary/80 to-primary-glow/70")),
			g.Div(
				g.Class("relative z-10 container mx-auto px-4 text-center text-white"),
				g.H1(
					g.Class("text-5xl md:text-7xl font-bold mb-6 leading-tight"),
					cmp.Text("Waste Management"),
					g.Span(g.Class("block text-primary-glow"), cmp.Text("System")),
				),
				g.P(g.Class("text-xl md:text-2xl mb-8 max-w-3xl mx-auto opacity-90"),
					cmp.Text("Smart waste tracking and management for a sustainable future. Reduce pollution, improve recycling, and promote eco-friendly living.")),
				g.Div(
					g.Class("flex flex-col sm:flex-row gap-4 justify-center"),
					g.A(g.Href("/dashboard"), g.Class("btn btn-secondary btn-lg"),
						components.Icon("bar-chart", "w-5 h-5 mr-2"), cmp.Text("View Dashboard")),
					g.A(g.Href("/about"), g.Class("btn btn-outline-light btn-lg"),
						components.Icon("leaf", "w-5 h-5 mr-2"), cmp.Text("Learn More")),
				),
			),
		),
		g.Section(
			g.Class("py-20 bg-muted/30"),
			g.Div(
				g.Class("container mx-auto px-4"),
				sectionHeading("Powerful Features for Sustainable Management",
					"Our comprehensive platform provides everything you need to track, manage, and optimize waste management processes for maximum environmental impact."),
				g.Div(
					g.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"),
					cmp.Map(homeFeatures, func(f domain.Feature) cmp.Node {
						return components.Card("group cursor-pointer feature",
							components.CardContent("p-8 text-center",
								g.Div(g.Class("flex justify-center mb-6 group-hover:scale-110 transition-transform duration-300"),
									components.IconBadge(f.Icon, "w-16 h-16", "w-8 h-8")),
								g.H3(g.Class("text-xl font-semibold mb-4"), cmp.Text(f.Title)),
								g.P(g.Class("text-muted-foreground"), cmp.Text(f.Description)),
							),
						)
					}),
				),
			),
		),
		g.Section(
			g.Class("py-20 bg-gradient-to-r from-primary to-primary-glow"),
			g.Div(
				g.Class("container mx-auto px-4 text-center text-white"),
				g.H2(g.Class("text-4xl font-bold mb-6"), cmp.Text("Ready to Make a Difference?")),
				g.P(g.Class("text-xl mb-8 opacity-90 max-w-2xl mx-auto"),
					cmp.Text("Join thousands of organizations already using our platform to create a more sustainable future through intelligent waste management.")),
				g.A(g.Href("/auth/signup"), g.Class("btn btn-secondary btn-lg"), cmp.Text("Get Started Today")),
			),
		),
	)
}
