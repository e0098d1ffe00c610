package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// NotFound is rendered for every path no route matches.
func NotFound(path string) cmp.Node {
	return g.Div(
		g.Class("min-h-[60vh] flex items-center justify-center"),
		g.Div(
			g.Class("text-center"),
			g.H1(g.Class("text-4xl font-bold mb-4"), cmp.Text("404")),
			g.P(g.Class("text-xl text-muted-foreground mb-2"), cmp.Text("Oops! Page not found")),
			cmp.If(path != "", g.P(g.Class("text-sm text-muted-foreground mb-4 font-mono"), cmp.Text(path))),
			g.A(g.Href("/"), g.Class("text-primary underline hover:text-primary/80"), cmp.Text("Return to Home")),
		),
	)
}
