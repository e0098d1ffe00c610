package layouts

import (
	cmp "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	g "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// document is the HTML shell shared by every layout.
func document(title string, body ...cmp.Node) cmp.Node {
	return c.HTML5(c.HTML5Props{
		Title:    CalculateTitle(title),
		Language: "en",
		Head: []cmp.Node{
			g.Meta(g.Name("description"), g.Content("Smart waste tracking and management for a sustainable future.")),
			g.Script(g.Src("https://cdn.tailwindcss.com")),
			g.Script(g.Src(htmxSrc), g.Defer()),
			g.Link(g.Rel("stylesheet"), g.Href("/static/css/app.css")),
			g.Script(g.Src("/static/js/app.js"), g.Defer()),
		},
		Body: body,
	})
}
