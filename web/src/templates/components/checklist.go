package components

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/ecowaste/site/internal/password"
)

// MismatchMessage is shown under the confirmation field when it differs.
const MismatchMessage = "Passwords do not match"

// PasswordChecklist lists every strength rule, marking the ones met.
func PasswordChecklist(reqs []password.Requirement) cmp.Node {
	return g.Div(
		g.Class("space-y-2 p-3 bg-muted/30 rounded-lg password-checklist"),
		g.Div(g.Class("text-xs font-medium text-muted-foreground mb-2"), cmp.Text("Password Requirements:")),
		g.Div(
			g.Class("grid grid-cols-1 gap-1"),
			cmp.Map(reqs, func(r password.Requirement) cmp.Node {
				color, state := "text-muted-foreground", "unmet"
				if r.Met {
					color, state = "text-success", "met"
				}
				return g.Div(
					g.Class("flex items-center space-x-2 text-xs requirement "+color),
					cmp.Attr("data-state", state),
					Icon("check", "w-3 h-3"),
					g.Span(cmp.Text(r.Text)),
				)
			}),
		),
	)
}

// MismatchHint is the inline mismatch indication.
func MismatchHint() cmp.Node {
	return g.Div(g.Class("text-xs text-destructive mismatch-hint"), cmp.Attr("role", "alert"), cmp.Text(MismatchMessage))
}
