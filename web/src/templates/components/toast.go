package components

import (
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/ecowaste/site/internal/view"
)

// ToastRegionID is the element htmx responses can target with toasts.
const ToastRegionID = "toasts"

// Toast is a single notification. Destructive toasts announce failures.
func Toast(title, description string, destructive bool) cmp.Node {
	class := "toast rounded-lg border p-4 shadow-lg bg-card"
	role := "status"
	if destructive {
		class = "toast toast-destructive rounded-lg border p-4 shadow-lg bg-destructive text-destructive-foreground"
		role = "alert"
	}
	return g.Div(
		g.Class(class),
		cmp.Attr("role", role),
		g.Div(g.Class("font-semibold text-sm"), cmp.Text(title)),
		cmp.If(description != "", g.Div(g.Class("text-sm opacity-90"), cmp.Text(description))),
	)
}

// FlashToast renders a flash message packed by view.ToastMessage.
func FlashToast(msg string, destructive bool) cmp.Node {
	title, description := view.SplitToast(msg)
	return Toast(title, description, destructive)
}

// AppendToast adds a toast to the toast region from an htmx response.
func AppendToast(title, description string, destructive bool) cmp.Node {
	return g.Div(
		hx.SwapOOB("beforeend:#"+ToastRegionID),
		Toast(title, description, destructive),
	)
}

// Toasts renders the flash messages of the request as toasts.
func Toasts(flashes view.FlashData, extra ...cmp.Node) cmp.Node {
	return g.Div(
		g.ID(ToastRegionID),
		g.Class("fixed bottom-4 right-4 z-50 flex flex-col gap-2 w-80"),
		cmp.Map(flashes.Success, func(msg string) cmp.Node { return FlashToast(msg, false) }),
		cmp.Map(flashes.Error, func(msg string) cmp.Node { return FlashToast(msg, true) }),
		cmp.Group(extra),
	)
}
