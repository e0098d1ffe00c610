package components

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Field wraps an input with its label and an optional error line.
func Field(id, label string, input cmp.Node, errMsg string) cmp.Node {
	return g.Div(
		g.Class("space-y-2"),
		cmp.El("label", g.For(id), g.Class("text-sm font-medium"), cmp.Text(label)),
		input,
		cmp.If(errMsg != "", g.P(g.Class("text-xs text-destructive field-error"), cmp.Text(errMsg))),
	)
}

// TextInput is a plain text-like input. value is echoed back into the form.
func TextInput(id, inputType, placeholder, value string, extra ...cmp.Node) cmp.Node {
	return g.Input(
		g.ID(id),
		g.Name(id),
		g.Type(inputType),
		g.Placeholder(placeholder),
		cmp.If(value != "", g.Value(value)),
		g.Required(),
		g.Class("w-full h-10 rounded-md border border-input bg-background px-3 py-2 text-sm"),
		cmp.Group(extra),
	)
}

// PasswordInput is a password field with a show/hide toggle. Its value is
// never pre-filled.
func PasswordInput(id, placeholder string, extra ...cmp.Node) cmp.Node {
	return g.Div(
		g.Class("relative"),
		g.Input(
			g.ID(id),
			g.Name(id),
			g.Type("password"),
			g.Placeholder(placeholder),
			g.Required(),
			g.AutoComplete("new-password"),
			g.Class("w-full h-10 rounded-md border border-input bg-background px-3 py-2 pr-12 text-sm"),
			cmp.Group(extra),
		),
		g.Button(
			g.Type("button"),
			cmp.Attr("data-toggle-password", id),
			cmp.Attr("aria-label", "Show password"),
			g.Class("absolute right-3 top-1/2 -translate-y-1/2 text-muted-foreground hover:text-foreground"),
			Icon("eye", "w-4 h-4"),
		),
	)
}

// SubmitButton is the full-width primary button of an auth form.
// loadingText is shown by htmx while the request is in flight.
func SubmitButton(text, loadingText string, disabled bool, extra ...cmp.Node) cmp.Node {
	return g.Button(
		g.Type("submit"),
		g.ID("submit-button"),
		g.Class("w-full h-10 rounded-md bg-primary text-primary-foreground font-medium disabled:opacity-50"),
		cmp.If(disabled, g.Disabled()),
		g.Span(g.Class("idle-label"), cmp.Text(text)),
		g.Span(g.Class("loading-label"), cmp.Text(loadingText)),
		cmp.Group(extra),
	)
}

// ErrorBanner is a form-level error message.
func ErrorBanner(msg string) cmp.Node {
	if msg == "" {
		return nil
	}
	return g.Div(
		g.Class("rounded-md border border-destructive/50 bg-destructive/10 p-3 text-sm text-destructive form-error"),
		cmp.Attr("role", "alert"),
		cmp.Text(msg),
	)
}
