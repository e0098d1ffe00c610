package layouts

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/ecowaste/site/internal/view"
	"github.com/ecowaste/site/web/src/templates/components"
)

// Base wraps a page in the site header, footer and toast region.
// activePath highlights the matching navigation item.
func Base(title, activePath string, flashes view.FlashData, content cmp.Node) cmp.Node {
	return document(title,
		g.Class("min-h-screen bg-background text-foreground flex flex-col"),
		header(activePath),
		g.Main(g.Class("flex-1"), content),
		footer(),
		components.Toasts(flashes),
	)
}

func header(activePath string) cmp.Node {
	return g.Header(
		g.Class("border-b border-border bg-card/50 backdrop-blur-sm sticky top-0 z-40"),
		g.Div(
			g.Class("container mx-auto px-4"),
			g.Div(
				g.Class("flex items-center justify-between h-16"),
				g.A(
					g.Href("/"),
					g.Class("flex items-center space-x-2"),
					components.IconBadge("recycle", "w-8 h-8", "w-5 h-5"),
					g.Span(g.Class("text-xl font-bold"), cmp.Text(Brand)),
				),
				g.Nav(
					g.Class("hidden md:flex space-x-1"),
					cmp.Map(Navigation, func(item NavItem) cmp.Node { return navLink(item, activePath) }),
				),
				g.A(
					g.Href("/auth/signin"),
					g.Class("inline-flex items-center rounded-md border border-input px-3 h-9 text-sm hover:bg-accent"),
					components.Icon("user", "w-4 h-4 mr-2"),
					cmp.Text("Sign In"),
				),
			),
		),
	)
}

func navLink(item NavItem, activePath string) cmp.Node {
	class := "px-4 py-2 rounded-lg transition-all duration-200 flex items-center space-x-2 "
	active := item.Href == activePath
	if active {
		class += "bg-primary text-primary-foreground shadow-eco"
	} else {
		class += "text-muted-foreground hover:text-foreground hover:bg-accent"
	}
	return g.A(
		g.Href(item.Href),
		g.Class(class),
		cmp.If(active, cmp.Attr("aria-current", "page")),
		components.Icon(item.Icon, "w-4 h-4"),
		g.Span(cmp.Text(item.Name)),
	)
}

func footer() cmp.Node {
	return g.Footer(
		g.Class("border-t border-border bg-muted/30 mt-auto"),
		g.Div(
			g.Class("container mx-auto px-4 py-8"),
			g.Div(
				g.Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
				g.Div(
					g.Div(
						g.Class("flex items-center space-x-2 mb-4"),
						components.IconBadge("recycle", "w-6 h-6", "w-4 h-4"),
						g.Span(g.Class("text-lg font-semibold"), cmp.Text(Brand)),
					),
					g.P(g.Class("text-sm text-muted-foreground"),
						cmp.Text("Smart waste management for a sustainable future. Tracking, managing, and optimizing waste for cleaner communities.")),
				),
				g.Div(
					g.H4(g.Class("font-semibold mb-4"), cmp.Text("Contact Info")),
					g.Div(
						g.Class("space-y-2 text-sm text-muted-foreground"),
						g.P(cmp.Text("Email: info@ecowaste.com")),
						g.P(cmp.Text("Phone: (555) 123-4567")),
						g.P(cmp.Text("Address: 123 Green Street, Eco City")),
					),
				),
				g.Div(
					g.H4(g.Class("font-semibold mb-4"), cmp.Text("Our Mission")),
					g.P(g.Class("text-sm text-muted-foreground"),
						cmp.Text("Empowering communities with intelligent waste management solutions that reduce environmental impact and promote sustainable living practices.")),
				),
			),
			g.Div(
				g.Class("border-t border-border pt-6 mt-6 text-center text-sm text-muted-foreground"),
				cmp.Text("© 2024 EcoWaste Management System. All rights reserved."),
			),
		),
	)
}
