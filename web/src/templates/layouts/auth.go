package layouts

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/ecowaste/site/internal/view"
	"github.com/ecowaste/site/web/src/templates/components"
)

// Auth is the centered shell of the authentication pages. They render
// without the site header and footer.
func Auth(title string, flashes view.FlashData, content cmp.Node) cmp.Node {
	return document(title,
		g.Class("min-h-screen bg-gradient-to-br from-primary/5 to-primary-glow/5 flex items-center justify-center p-4"),
		g.Div(
			g.Class("w-full max-w-md"),
			g.A(
				g.Href("/"),
				g.Class("flex items-center justify-center space-x-2 mb-8"),
				components.IconBadge("recycle", "w-10 h-10", "w-6 h-6"),
				g.Span(g.Class("text-2xl font-bold"), cmp.Text(Brand)),
			),
			content,
		),
		components.Toasts(flashes),
	)
}
