package pages

import (
	"net/url"

	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/ecowaste/site/internal/view/dto/auth"
	"github.com/ecowaste/site/web/src/templates/components"
)

// Element IDs swapped by htmx on the auth pages.
const (
	ForgotPasswordCardID = "forgot-password-card"
	ChecklistRegionID    = "password-checklist"
	MismatchRegionID     = "password-mismatch"
	SubmitButtonID       = "submit-button"
)

func authCard(id, icon, title, description string, body ...cmp.Node) cmp.Node {
	return components.Card("shadow-hover border-0",
		cmp.If(id != "", g.ID(id)),
		g.Div(
			g.Class("p-6 text-center space-y-2"),
			g.Div(g.Class("flex justify-center mb-2"),
				g.Div(g.Class("w-12 h-12 bg-primary/10 rounded-xl flex items-center justify-center"),
					components.Icon(icon, "w-6 h-6 text-primary"))),
			g.H2(g.Class("text-2xl font-semibold"), cmp.Text(title)),
			g.P(g.Class("text-sm text-muted-foreground"), cmp.Text(description)),
		),
		components.CardContent("pt-0 space-y-6", body...),
	)
}

func footerLink(lead, text, href string) cmp.Node {
	return g.Div(
		g.Class("text-center text-sm text-muted-foreground"),
		cmp.If(lead != "", cmp.Text(lead+" ")),
		g.A(g.Href(href), g.Class("text-primary hover:text-primary-glow transition-colors"), cmp.Text(text)),
	)
}

// SignIn renders the sign-in form.
func SignIn(d auth.SignInData) cmp.Node {
	return authCard("", "user", "Welcome Back", "Sign in to your EcoWaste account",
		cmp.El("form",
			g.Method("post"),
			g.Action("/auth/signin"),
			g.Class("space-y-4"),
			components.Field("email", "Email Address",
				components.TextInput("email", "email", "Enter your email", d.Email, g.AutoComplete("email")),
				d.Errors["email"]),
			components.Field("password", "Password",
				components.PasswordInput("password", "Enter your password", g.AutoComplete("current-password")),
				d.Errors["password"]),
			g.Div(g.Class("text-right"),
				g.A(g.Href("/auth/forgot-password"), g.Class("text-sm text-primary hover:text-primary-glow"), cmp.Text("Forgot password?"))),
			components.SubmitButton("Sign In", "Signing in...", false),
		),
		footerLink("Don't have an account?", "Sign up", "/auth/signup"),
	)
}

// SignUp renders the account creation form.
func SignUp(d auth.SignUpData) cmp.Node {
	return authCard("", "leaf", "Create Account", "Join EcoWaste and start tracking your impact",
		cmp.El("form",
			g.Method("post"),
			g.Action("/auth/signup"),
			g.Class("space-y-4"),
			components.Field("name", "Full Name",
				components.TextInput("name", "text", "Enter your name", d.Name, g.AutoComplete("name")),
				d.Errors["name"]),
			components.Field("email", "Email Address",
				components.TextInput("email", "email", "Enter your email", d.Email, g.AutoComplete("email")),
				d.Errors["email"]),
			components.Field("password", "Password",
				components.PasswordInput("password", "Create a password"),
				d.Errors["password"]),
			cmp.If(len(d.Requirements) > 0, components.PasswordChecklist(d.Requirements)),
			components.Field("confirmPassword", "Confirm Password",
				components.PasswordInput("confirmPassword", "Confirm your password"),
				d.Errors["confirmPassword"]),
			components.SubmitButton("Create Account", "Creating account...", false),
		),
		footerLink("Already have an account?", "Sign in", "/auth/signin"),
	)
}

// ForgotPassword renders the reset request form. htmx swaps the whole card
// with the submitted view.
func ForgotPassword(d auth.ForgotPasswordData) cmp.Node {
	return authCard(ForgotPasswordCardID, "mail", "Forgot Password?",
		"Enter your email address and we'll send you a link to reset your password",
		cmp.El("form",
			g.Method("post"),
			g.Action("/auth/forgot-password"),
			g.Class("space-y-4"),
			hx.Post("/auth/forgot-password"),
			hx.Target("#"+ForgotPasswordCardID),
			hx.Swap("outerHTML"),
			components.ErrorBanner(d.Error),
			components.Field("email", "Email Address",
				components.TextInput("email", "email", "Enter your email", d.Email, g.AutoComplete("email")),
				""),
			components.SubmitButton("Send Reset Link", "Sending...", false),
		),
		g.Div(
			g.Class("text-center"),
			g.A(g.Href("/auth/signin"),
				g.Class("inline-flex items-center text-sm text-muted-foreground hover:text-foreground transition-colors"),
				components.Icon("arrow-left", "w-4 h-4 mr-2"),
				cmp.Text("Back to Sign In")),
		),
	)
}

// ForgotPasswordSent is the "Check Your Email" view shown once the reset
// request has been accepted.
func ForgotPasswordSent(d auth.ForgotPasswordSentData) cmp.Node {
	return components.Card("shadow-hover border-0",
		g.ID(ForgotPasswordCardID),
		components.CardContent("p-8 text-center",
			g.Div(g.Class("flex justify-center mb-6"),
				g.Div(g.Class("w-16 h-16 bg-success/10 rounded-full flex items-center justify-center"),
					components.Icon("check-circle", "w-8 h-8 text-success"))),
			g.H2(g.Class("text-2xl font-bold mb-4"), cmp.Text("Check Your Email")),
			g.P(
				g.Class("text-muted-foreground mb-6"),
				cmp.Text("We've sent a password reset link to "),
				g.Strong(g.Class("sent-email"), cmp.Text(d.Email)),
				cmp.Text(". Click the link in your email to create a new password."),
			),
			g.Div(
				g.Class("space-y-3"),
				g.A(g.Href("/auth/signin"),
					g.Class("block w-full h-10 leading-10 rounded-md bg-primary text-primary-foreground"),
					cmp.Text("Return to Sign In")),
				g.A(g.Href("/auth/forgot-password?email="+url.QueryEscape(d.Email)),
					g.Class("block w-full h-10 leading-10 rounded-md border border-input"),
					cmp.Text("Try Different Email")),
			),
		),
	)
}

// ChangePassword renders the change password form. Typing in either field
// posts both values to the requirements endpoint, which answers with
// ChangePasswordFeedback.
func ChangePassword(d auth.ChangePasswordData) cmp.Node {
	return authCard("", "shield", "Change Password", "Create a new secure password for your account",
		cmp.El("form",
			g.ID("change-password-form"),
			g.Method("post"),
			g.Action("/auth/change-password"),
			g.Class("space-y-4"),
			hx.Post("/auth/change-password/requirements"),
			hx.Trigger("input delay:200ms"),
			hx.Target("#"+ChecklistRegionID),
			hx.Swap("outerHTML"),
			components.ErrorBanner(d.Error),
			components.Field("newPassword", "New Password",
				components.PasswordInput("newPassword", "Enter new password"), ""),
			checklistRegion(d),
			components.Field("confirmPassword", "Confirm New Password",
				components.PasswordInput("confirmPassword", "Confirm new password"), ""),
			mismatchRegion(d),
			submitButton(d),
		),
		footerLink("Remember your password?", "Sign in", "/auth/signin"),
	)
}

// ChangePasswordFeedback is the htmx fragment refreshing the checklist, the
// mismatch hint and the submit button.
func ChangePasswordFeedback(d auth.ChangePasswordData) cmp.Node {
	return cmp.Group{
		checklistRegion(d),
		mismatchRegion(d, hx.SwapOOB("true")),
		submitButton(d, hx.SwapOOB("true")),
	}
}

func checklistRegion(d auth.ChangePasswordData) cmp.Node {
	return g.Div(
		g.ID(ChecklistRegionID),
		cmp.If(d.ShowChecklist, components.PasswordChecklist(d.Requirements)),
	)
}

func mismatchRegion(d auth.ChangePasswordData, extra ...cmp.Node) cmp.Node {
	return g.Div(
		g.ID(MismatchRegionID),
		cmp.Group(extra),
		cmp.If(d.Mismatch, components.MismatchHint()),
	)
}

func submitButton(d auth.ChangePasswordData, extra ...cmp.Node) cmp.Node {
	return components.SubmitButton("Update Password", "Updating password...", !d.CanSubmit, extra...)
}
