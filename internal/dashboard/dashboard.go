package dashboard

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/lims-tracker/internal/client"
	"github.com/rogerio-castellano/lims-tracker/internal/models"
	repo "github.com/rogerio-castellano/lims-tracker/internal/repo"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

// API is the part of the REST client the pages use.
type API interface {
	ListSamples(ctx context.Context) ([]models.Sample, error)
	CreateSample(ctx context.Context, in client.SampleInput) (models.Sample, error)
	ListLocations(ctx context.Context) ([]models.Location, error)
	CreateLocation(ctx context.Context, in client.LocationInput) (models.Location, error)
	ListWarehouses(ctx context.Context) ([]models.Warehouse, error)
	ListSOPs(ctx context.Context) ([]models.SOP, error)
	ListUsers(ctx context.Context) ([]models.UserAccount, error)
	ListEquipment(ctx context.Context) ([]models.Equipment, error)
	CreateEquipment(ctx context.Context, in client.EquipmentInput) (models.Equipment, error)
	ListTests(ctx context.Context) ([]models.Test, error)
	CreateTest(ctx context.Context, in client.TestInput) (models.Test, error)
	ListResults(ctx context.Context, rf repo.ResultFilter) ([]models.Result, error)
	CreateResult(ctx context.Context, in client.ResultInput) (models.Result, error)
}

type navItem struct {
	Path  string
	Label string
}

var nav = []navItem{
	{"/samples", "Samples"},
	{"/locations", "Locations"},
	{"/equipment", "Equipment"},
	{"/tests", "Tests"},
	{"/results", "Results"},
}

// Dashboard serves the server rendered pages. It only reaches data through the API.
type Dashboard struct {
	api   API
	log   zerolog.Logger
	loc   *time.Location
	pages map[string]*template.Template

	auth     Authenticator
	forToken func(token string) API
}

func New(api API, log zerolog.Logger, loc *time.Location) (*Dashboard, error) {
	if loc == nil {
		loc = time.UTC
	}
	d := &Dashboard{api: api, log: log, loc: loc, pages: map[string]*template.Template{}}

	base, err := template.New("layout.html").Funcs(d.funcs()).ParseFS(templateFS, "templates/layout.html", "templates/sample_list.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	for _, name := range []string{"samples", "locations", "equipment", "tests", "results", "login"} {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout: %w", err)
		}
		page, err := clone.ParseFS(templateFS, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s page: %w", name, err)
		}
		d.pages[name] = page
	}
	return d, nil
}

func (d *Dashboard) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(d.guardWrites)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/samples", http.StatusFound)
	})

	r.Get("/samples", d.showSamples)
	r.Post("/samples", d.createSample)
	r.Get("/locations", d.showLocations)
	r.Post("/locations", d.createLocation)
	r.Get("/equipment", d.showEquipment)
	r.Post("/equipment", d.createEquipment)
	r.Get("/tests", d.showTests)
	r.Post("/tests", d.createTest)
	r.Get("/results", d.showResults)
	r.Post("/results", d.createResult)
	r.Get("/login", d.showLogin)
	r.Post("/login", d.login)
	r.Post("/logout", d.logout)
	return r
}

// view is the data handed to every page template.
type view struct {
	Title   string
	Active  string
	Nav     []navItem
	Notices []string
	Error   string
	Form    url.Values

	LoginEnabled bool
	SignedIn     bool

	Samples     []models.Sample
	SampleTypes []models.SampleType
	Locations   []models.Location
	Warehouses  []models.Warehouse
	SOPs        []models.SOP
	Users       []models.UserAccount
	Equipment   []models.Equipment
	Tests       []testRow
	Results     []resultRow
}

type testRow struct {
	models.Test
	UserName string
	SOPName  string
}

type resultRow struct {
	models.Result
	SampleName string
}

func (d *Dashboard) newView(r *http.Request, title, active string) *view {
	return &view{
		Title:        title,
		Active:       active,
		Nav:          nav,
		Form:         url.Values{},
		SampleTypes:  models.SampleTypes,
		LoginEnabled: d.loginEnabled(),
		SignedIn:     sessionToken(r) != "",
	}
}

// load runs fetch and turns a failure into a notice; the affected table stays empty.
func load[T any](ctx context.Context, d *Dashboard, v *view, what string, fetch func(context.Context) ([]T, error)) []T {
	records, err := fetch(ctx)
	if err != nil {
		d.logger(ctx).Error().Err(err).Str("resource", what).Msg("failed to load reference data")
		v.Notices = append(v.Notices, fmt.Sprintf("Could not load %s.", what))
		return nil
	}
	return records
}

func (d *Dashboard) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &d.log
}

func (d *Dashboard) render(w http.ResponseWriter, r *http.Request, page string, status int, v *view) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := d.pages[page].ExecuteTemplate(w, "layout.html", v); err != nil {
		d.logger(r.Context()).Error().Err(err).Str("page", page).Msg("failed to render page")
	}
}

// submitFailed logs a failed create and re-renders the page with the entered values.
func (d *Dashboard) submitFailed(w http.ResponseWriter, r *http.Request, page string, v *view, err error) {
	status := http.StatusUnprocessableEntity
	msg := err.Error()

	var apiErr *client.APIError
	var formErr formError
	switch {
	case errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized && d.loginEnabled():
		d.logger(r.Context()).Warn().Str("page", page).Msg("session rejected by the API")
		d.signInRequired(w, r, "Your session has expired. Sign in again.")
		return
	case errors.As(err, &apiErr):
		msg = apiErr.Message()
		if apiErr.Status >= http.StatusInternalServerError {
			status = http.StatusBadGateway
		}
	case errors.As(err, &formErr):
	default:
		status = http.StatusBadGateway
		msg = "The LIMS API could not be reached."
	}

	d.logger(r.Context()).Warn().Err(err).Str("page", page).Msg("create failed")
	v.Error = msg
	v.Form = r.PostForm
	d.render(w, r, page, status, v)
}

func seeOther(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, r.URL.Path, http.StatusSeeOther)
}

func (d *Dashboard) funcs() template.FuncMap {
	return template.FuncMap{
		"when": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.In(d.loc).Format("2006-01-02 15:04")
		},
		"orDash": func(s *string) string {
			if s == nil || *s == "" {
				return "—"
			}
			return *s
		},
		"bound": func(n decimal.NullDecimal) string {
			if !n.Valid {
				return "—"
			}
			return n.Decimal.String()
		},
		"yesNo": func(b bool) string {
			if b {
				return "Yes"
			}
			return "No"
		},
		"selected": func(form url.Values, field string, id int) bool {
			return form.Get(field) == fmt.Sprint(id)
		},
	}
}
