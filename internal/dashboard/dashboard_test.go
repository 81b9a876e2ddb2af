package dashboard

import (
	"context"
	"errors"
	"sync"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rogerio-castellano/lims-tracker/internal/auth"
	"github.com/rogerio-castellano/lims-tracker/internal/client"
	"github.com/rogerio-castellano/lims-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/lims-tracker/internal/http/router"
	"github.com/rogerio-castellano/lims-tracker/internal/models"
	repo "github.com/rogerio-castellano/lims-tracker/internal/repo"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	api  *client.Client
	dash http.Handler
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	handlers.SetStore(repo.NewInMemoryStore())
	srv := httptest.NewServer(router.NewRouter(router.Options{}))
	t.Cleanup(srv.Close)

	api := client.New(client.Options{BaseURL: srv.URL + "/api/"})
	d, err := New(api, zerolog.Nop(), time.UTC)
	require.NoError(t, err)
	return fixture{api: api, dash: d.Routes()}
}

func (f fixture) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	f.dash.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func (f fixture) post(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	f.dash.ServeHTTP(w, req)
	return w
}

// seed creates one of each reference record and returns the sample id.
func (f fixture) seed(t *testing.T) models.Sample {
	t.Helper()
	ctx := context.Background()

	sop, err := f.api.CreateSOP(ctx, client.SOPInput{SOPName: "SOP-1", EffectiveDate: models.NewDate(2024, 1, 1)})
	require.NoError(t, err)
	_, err = f.api.CreateUser(ctx, client.UserInput{AccountUsername: "jdoe", Email: "jdoe@example.com"})
	require.NoError(t, err)
	loc, err := f.api.CreateLocation(ctx, client.LocationInput{RoomNumber: 101})
	require.NoError(t, err)
	wh, err := f.api.CreateWarehouse(ctx, client.WarehouseInput{SOP: sop.ID, WarehouseFacility: "North"})
	require.NoError(t, err)
	sample, err := f.api.CreateSample(ctx, client.SampleInput{
		Location: loc.ID, Warehouse: wh.ID, SOP: sop.ID,
		ProductName: "Aspirin", ProductStage: "Blend", Quantity: 5,
		SampleType: models.SampleInProcess, StorageConditions: "RT",
	})
	require.NoError(t, err)
	return sample
}

func TestRootRedirectsToSamples(t *testing.T) {
	f := newFixture(t)
	w := f.get(t, "/")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/samples", w.Header().Get("Location"))
}

func TestShellNavigation(t *testing.T) {
	f := newFixture(t)
	body := f.get(t, "/locations").Body.String()

	assert.Contains(t, body, "LIMS Dashboard")
	for _, label := range []string{"Samples", "Locations", "Equipment", "Tests", "Results"} {
		assert.Contains(t, body, ">"+label+"</a>")
	}
	assert.Contains(t, body, `<a href="/locations" class="active">`)
}

func TestSamplesPage_CreateShowsNewRow(t *testing.T) {
	f := newFixture(t)
	sample := f.seed(t)

	w := f.post(t, "/samples", url.Values{
		"product_name":       {"Ibuprofen"},
		"product_stage":      {"Coating"},
		"quantity":           {"12"},
		"sample_type":        {"F"},
		"storage_conditions": {"2-8C"},
		"location":           {"1"},
		"warehouse":          {"1"},
		"sop":                {"1"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/samples", w.Header().Get("Location"))

	body := f.get(t, "/samples").Body.String()
	assert.Contains(t, body, sample.ProductName)
	assert.Contains(t, body, "Ibuprofen")
	assert.Less(t, strings.Index(body, "Aspirin"), strings.Index(body, "Ibuprofen"), "rows keep fetch order")
	assert.Contains(t, body, "Room 101")
}

func TestLocationsPage(t *testing.T) {
	f := newFixture(t)

	require.Equal(t, http.StatusSeeOther, f.post(t, "/locations", url.Values{"room_number": {"7"}}).Code)
	require.Equal(t, http.StatusSeeOther, f.post(t, "/locations", url.Values{"location_type": {"Lab"}, "room_number": {"8"}}).Code)

	body := f.get(t, "/locations").Body.String()
	assert.Contains(t, body, "<td>—</td><td>7</td>")
	assert.Contains(t, body, "<td>Lab</td><td>8</td>")

	t.Run("rejected by form parsing", func(t *testing.T) {
		w := f.post(t, "/locations", url.Values{"location_type": {"Cold room"}, "room_number": {"abc"}})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "Room Number must be a whole number")
		assert.Contains(t, w.Body.String(), `value="Cold room"`)
	})

	t.Run("rejected by the API", func(t *testing.T) {
		w := f.post(t, "/locations", url.Values{"room_number": {"-3"}})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "room_number must be greater than 0")
		assert.Contains(t, w.Body.String(), `class="error"`)
	})
}

func TestEquipmentPage(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	w := f.post(t, "/equipment", url.Values{
		"equipment_name": {"pH meter"},
		"min_use_range":  {"0"},
		"max_use_range":  {"14"},
		"in_use":         {"on"},
		"location":       {"1"},
		"sop":            {"1"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)

	body := f.get(t, "/equipment").Body.String()
	assert.Contains(t, body, "<td>pH meter</td><td>0</td><td>14</td><td>Yes</td>")
}

func TestTestsPage_ShowsNamesAndDashes(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	w := f.post(t, "/tests", url.Values{"user_account": {"1"}, "sop": {"1"}, "max_acceptable_result": {"20"}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	body := f.get(t, "/tests").Body.String()
	assert.Contains(t, body, "<td>jdoe</td><td>SOP-1</td><td>—</td><td>20</td>")
}

func TestResultsPage_PassFail(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	ctx := context.Background()

	_, err := f.api.CreateTest(ctx, client.TestInput{
		UserAccount: 1, SOP: 1,
		MinAcceptableResult: decimal.NewNullDecimal(decimal.NewFromInt(10)),
		MaxAcceptableResult: decimal.NewNullDecimal(decimal.NewFromInt(20)),
	})
	require.NoError(t, err)

	for _, v := range []string{"15", "25"} {
		w := f.post(t, "/results", url.Values{
			"sample":            {"1"},
			"test":              {"1"},
			"testing_analyst":   {"a"},
			"reviewing_analyst": {"b"},
			"test_result":       {v},
			"deadline":          {"2024-03-01T09:30"},
		})
		require.Equal(t, http.StatusSeeOther, w.Code)
	}

	results, err := f.api.ListResults(ctx, repo.ResultFilter{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].PassOrFail)
	assert.False(t, results[1].PassOrFail)
	assert.True(t, results[0].Deadline.Equal(time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)))

	body := f.get(t, "/results").Body.String()
	assert.Contains(t, body, "<td>Aspirin</td><td>1</td><td>15</td><td>Yes</td><td>2024-03-01 09:30</td>")
	assert.Contains(t, body, "<td>Aspirin</td><td>1</td><td>25</td><td>No</td>")
}

func TestGrade(t *testing.T) {
	tests := []models.Test{{ID: 1, MaxAcceptableResult: decimal.NewNullDecimal(decimal.NewFromInt(20))}}

	assert.False(t, grade(tests, 1, decimal.NewFromInt(100)))
	assert.True(t, grade(tests, 1, decimal.NewFromInt(20)))
	assert.True(t, grade(tests, 2, decimal.NewFromInt(100)), "unknown tests impose nothing")
}

type unavailableAPI struct {
	API
}

var errUnavailable = errors.New("connection refused")

func (unavailableAPI) ListSamples(context.Context) ([]models.Sample, error) {
	return nil, errUnavailable
}

func (unavailableAPI) ListLocations(context.Context) ([]models.Location, error) {
	return nil, errUnavailable
}

func (unavailableAPI) ListWarehouses(context.Context) ([]models.Warehouse, error) {
	return []models.Warehouse{{ID: 3, WarehouseFacility: "South"}}, nil
}

func (unavailableAPI) ListSOPs(context.Context) ([]models.SOP, error) {
	return nil, errUnavailable
}

func (unavailableAPI) CreateSample(context.Context, client.SampleInput) (models.Sample, error) {
	return models.Sample{}, errUnavailable
}

func TestLoadFailureShowsNotice(t *testing.T) {
	d, err := New(unavailableAPI{}, zerolog.Nop(), time.UTC)
	require.NoError(t, err)
	h := d.Routes()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/samples", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Could not load samples.")
	assert.Contains(t, body, "Could not load locations.")
	assert.NotContains(t, body, "Could not load warehouses.")
	assert.Contains(t, body, ">South</option>")

	form := url.Values{
		"product_name": {"X"}, "product_stage": {"Y"}, "quantity": {"1"}, "sample_type": {"I"},
		"storage_conditions": {"RT"}, "location": {"1"}, "warehouse": {"3"}, "sop": {"1"},
	}
	req := httptest.NewRequest(http.MethodPost, "/samples", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "The LIMS API could not be reached.")
	assert.Contains(t, w.Body.String(), `value="X"`)
}

// newLoginFixture serves an API that requires a bearer token for writes and a
// dashboard that makes operators sign in.
func newLoginFixture(t *testing.T) fixture {
	t.Helper()
	hash, err := auth.HashPassword("secret")
	require.NoError(t, err)

	handlers.SetStore(repo.NewInMemoryStore())
	issuer := auth.NewTokenIssuer("test-secret", 15*time.Minute)
	handlers.SetOperator(issuer, "admin", hash)
	t.Cleanup(func() { handlers.SetOperator(nil, "", "") })
	srv := httptest.NewServer(router.NewRouter(router.Options{Issuer: issuer}))
	t.Cleanup(srv.Close)

	api := client.New(client.Options{BaseURL: srv.URL + "/api/"})
	d, err := New(api, zerolog.Nop(), time.UTC)
	require.NoError(t, err)
	d.RequireLogin(api, func(token string) API { return api.WithToken(token) })
	return fixture{api: api, dash: d.Routes()}
}

func (f fixture) postWith(t *testing.T, path string, form url.Values, cookie *http.Cookie, origin string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	f.dash.ServeHTTP(w, req)
	return w
}

func sessionFrom(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookie {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", sessionCookie)
	return nil
}

func TestLogin_RequiredForSubmissions(t *testing.T) {
	f := newLoginFixture(t)
	ctx := context.Background()
	room := url.Values{"room_number": {"7"}}

	t.Run("anonymous submission is refused", func(t *testing.T) {
		w := f.post(t, "/locations", room)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Sign in to make changes.")

		locations, err := f.api.ListLocations(ctx)
		require.NoError(t, err)
		assert.Empty(t, locations)
	})

	t.Run("pages stay readable", func(t *testing.T) {
		w := f.get(t, "/locations")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `<a href="/login">Sign In</a>`)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := f.post(t, "/login", url.Values{"username": {"admin"}, "password": {"nope"}})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid username or password.")
		assert.Contains(t, w.Body.String(), `value="admin"`)
		assert.NotContains(t, w.Body.String(), "nope")
	})

	w := f.post(t, "/login", url.Values{"username": {"admin"}, "password": {"secret"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	session := sessionFrom(t, w)
	assert.True(t, session.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, session.SameSite)

	t.Run("signed in submission", func(t *testing.T) {
		require.Equal(t, http.StatusSeeOther, f.postWith(t, "/locations", room, session, "").Code)
		locations, err := f.api.ListLocations(ctx)
		require.NoError(t, err)
		assert.Len(t, locations, 1)
	})

	t.Run("cross-origin submission", func(t *testing.T) {
		w := f.postWith(t, "/locations", room, session, "http://attacker.example")
		assert.Equal(t, http.StatusForbidden, w.Code)
		locations, err := f.api.ListLocations(ctx)
		require.NoError(t, err)
		assert.Len(t, locations, 1)
	})

	t.Run("token the API rejects", func(t *testing.T) {
		forged := &http.Cookie{Name: sessionCookie, Value: "not-a-jwt"}
		w := f.postWith(t, "/locations", room, forged, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Sign in again.")
		assert.Negative(t, sessionFrom(t, w).MaxAge)
	})

	t.Run("sign out", func(t *testing.T) {
		w := f.postWith(t, "/logout", nil, session, "")
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
		assert.Negative(t, sessionFrom(t, w).MaxAge)
	})
}

func TestLogin_DisabledRedirects(t *testing.T) {
	f := newFixture(t)
	w := f.get(t, "/login")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.NotContains(t, f.get(t, "/samples").Body.String(), "Sign In")
}

// countingAPI records how often each list endpoint is read.
type countingAPI struct {
	API
	mu    sync.Mutex
	calls map[string]int
}

func (c *countingAPI) count(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[name]++
}

func (c *countingAPI) ListSamples(ctx context.Context) ([]models.Sample, error) {
	c.count("samples")
	return c.API.ListSamples(ctx)
}

func (c *countingAPI) ListTests(ctx context.Context) ([]models.Test, error) {
	c.count("tests")
	return c.API.ListTests(ctx)
}

func (c *countingAPI) ListResults(ctx context.Context, rf repo.ResultFilter) ([]models.Result, error) {
	c.count("results")
	return c.API.ListResults(ctx, rf)
}

func TestResultsPage_SubmitReadsOnlyTests(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	_, err := f.api.CreateTest(context.Background(), client.TestInput{UserAccount: 1, SOP: 1})
	require.NoError(t, err)

	api := &countingAPI{API: f.api, calls: map[string]int{}}
	d, err := New(api, zerolog.Nop(), time.UTC)
	require.NoError(t, err)
	f.dash = d.Routes()

	form := url.Values{
		"sample": {"1"}, "test": {"1"}, "testing_analyst": {"a"}, "reviewing_analyst": {"b"},
		"test_result": {"15"}, "deadline": {"2024-03-01T09:30"},
	}
	require.Equal(t, http.StatusSeeOther, f.post(t, "/results", form).Code)
	assert.Equal(t, map[string]int{"tests": 1}, api.calls)

	form.Set("sample", "99")
	w := f.post(t, "/results", form)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, map[string]int{"tests": 3, "samples": 1, "results": 1}, api.calls, "a failed submit renders the full page")
}
