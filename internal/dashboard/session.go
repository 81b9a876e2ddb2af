package dashboard

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/rogerio-castellano/lims-tracker/internal/client"
)

const sessionCookie = "lims_session"

// Authenticator exchanges operator credentials for an API bearer token.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// RequireLogin turns on the sign in page. Submissions are then refused
// without a session, and accepted ones go through forToken(session token) so
// the API authorizes the operator who signed in.
func (d *Dashboard) RequireLogin(auth Authenticator, forToken func(token string) API) {
	d.auth = auth
	d.forToken = forToken
}

func (d *Dashboard) loginEnabled() bool {
	return d.auth != nil
}

func sessionToken(r *http.Request) string {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

// writer is the API a submission is made through.
func (d *Dashboard) writer(r *http.Request) API {
	if !d.loginEnabled() {
		return d.api
	}
	return d.forToken(sessionToken(r))
}

// guardWrites refuses cross-site submissions and, when a login is required,
// anonymous ones.
func (d *Dashboard) guardWrites(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}
		if !sameOrigin(r) {
			d.logger(r.Context()).Warn().Str("origin", r.Header.Get("Origin")).Msg("cross-origin submission refused")
			http.Error(w, "cross-origin form submission", http.StatusForbidden)
			return
		}
		if d.loginEnabled() && sessionToken(r) == "" && r.URL.Path != "/login" && r.URL.Path != "/logout" {
			d.signInRequired(w, r, "Sign in to make changes.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// sameOrigin accepts requests without an Origin header, which browsers omit
// on same-origin navigations in some cases.
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Host == r.Host
}

func (d *Dashboard) signInRequired(w http.ResponseWriter, r *http.Request, msg string) {
	clearSession(w)
	v := d.newView(r, "Sign In", "/login")
	v.SignedIn = false
	v.Error = msg
	d.render(w, r, "login", http.StatusUnauthorized, v)
}

func (d *Dashboard) showLogin(w http.ResponseWriter, r *http.Request) {
	if !d.loginEnabled() {
		http.Redirect(w, r, "/samples", http.StatusFound)
		return
	}
	d.render(w, r, "login", http.StatusOK, d.newView(r, "Sign In", "/login"))
}

func (d *Dashboard) login(w http.ResponseWriter, r *http.Request) {
	if !d.loginEnabled() {
		http.Redirect(w, r, "/samples", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	v := d.newView(r, "Sign In", "/login")
	f := newFormReader(r.PostForm, d.loc)
	username, _ := f.present("username", "Username")
	var password string
	if _, ok := f.present("password", "Password"); ok {
		password = r.PostForm.Get("password")
	}

	err := f.err()
	var token string
	if err == nil {
		token, err = d.auth.Login(r.Context(), username, password)
	}
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			d.logger(r.Context()).Warn().Str("username", username).Msg("dashboard sign in refused")
			v.Error = "Invalid username or password."
			v.Form = url.Values{"username": {username}}
			d.render(w, r, "login", http.StatusUnauthorized, v)
			return
		}
		r.PostForm.Del("password")
		d.submitFailed(w, r, "login", v, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteStrictMode,
	})
	http.Redirect(w, r, "/samples", http.StatusSeeOther)
}

func (d *Dashboard) logout(w http.ResponseWriter, r *http.Request) {
	clearSession(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
