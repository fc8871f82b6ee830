package pages

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"

	"petroflow/internal/views/layout"
	"petroflow/models"
)

// Login renders the full sign-in page.
func Login(message, email string) templ.Component {
	return layout.Layout("Sign in", nil, LoginPartial(message, email), false, layout.ThemeByID(models.DefaultTheme))
}

// LoginPartial renders only the sign-in form, used for HTMX swaps.
func LoginPartial(message, email string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="pf-auth"><h1>Sign in to PetroFlow</h1>`); err != nil {
			return err
		}
		if err := flashMessage(message).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w,
			`<form method="post" action="/login" hx-post="/login" hx-target="closest section">`+
				`<label>Email<input type="email" name="email" value="`+html.EscapeString(email)+`" required></label>`+
				`<label>Password<input type="password" name="password" required></label>`+
				`<button type="submit" class="pf-btn">Sign in</button>`+
				`</form>`+
				`<p class="pf-muted">New to PetroFlow? <a href="/signup">Create an account</a>.</p>`+
				`</section>`)
		return err
	})
}

// Signup renders the full registration page.
func Signup(message, name, email string) templ.Component {
	return layout.Layout("Create account", nil, SignupPartial(message, name, email), false, layout.ThemeByID(models.DefaultTheme))
}

// SignupPartial renders only the registration form, used for HTMX swaps.
func SignupPartial(message, name, email string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="pf-auth"><h1>Create your PetroFlow account</h1>`); err != nil {
			return err
		}
		if err := flashMessage(message).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w,
			`<form method="post" action="/signup" hx-post="/signup" hx-target="closest section">`+
				`<label>Name<input type="text" name="name" value="`+html.EscapeString(name)+`"></label>`+
				`<label>Email<input type="email" name="email" value="`+html.EscapeString(email)+`" required></label>`+
				`<label>Password<input type="password" name="password" required></label>`+
				`<label>Confirm password<input type="password" name="confirm_password" required></label>`+
				`<button type="submit" class="pf-btn">Create account</button>`+
				`</form>`+
				`<p class="pf-muted">Already registered? <a href="/login">Sign in</a>.</p>`+
				`</section>`)
		return err
	})
}

// Landing renders the public marketing page.
func Landing() templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<section class="pf-landing">`+
				`<h1>Fuel distribution, dispatched clearly.</h1>`+
				`<p>Track terminals, tanks and deliveries under your own brand.</p>`+
				`<p><a class="pf-btn" href="/login">Sign in</a> <a class="pf-btn" href="/signup">Get started</a></p>`+
				`</section>`)
		return err
	})
	return layout.Layout("PetroFlow", nil, content, false, layout.ThemeByID(models.DefaultTheme))
}

func flashMessage(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if message == "" {
			return nil
		}
		_, err := io.WriteString(w, `<p class="pf-error" role="alert">`+html.EscapeString(message)+`</p>`)
		return err
	})
}
