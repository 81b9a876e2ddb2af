package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rogerio-castellano/lims-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/lims-tracker/internal/http/router"
	repo "github.com/rogerio-castellano/lims-tracker/internal/repo"
	"github.com/stretchr/testify/require"
)

type payload map[string]any

// fixture is a router over a fresh in-memory store with the records most
// tests reference already created.
type fixture struct {
	r         http.Handler
	store     repo.Store
	sop       int
	user      int
	location  int
	warehouse int
	sample    int
}

func newRouter(t *testing.T) (http.Handler, repo.Store) {
	t.Helper()
	store := repo.NewInMemoryStore()
	handlers.SetStore(store)
	handlers.SetListCache(nil)
	handlers.SetOperator(nil, "", "")
	return router.NewRouter(router.Options{}), store
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	r, store := newRouter(t)
	f := fixture{r: r, store: store}

	f.sop = createID(t, r, "/api/sops", payload{"sop_name": "SOP-1", "effective_date": "2024-01-01"})
	f.user = createID(t, r, "/api/users", payload{"account_username": "jdoe", "email": "jdoe@example.com"})
	f.location = createID(t, r, "/api/locations", payload{"room_number": 101})
	f.warehouse = createID(t, r, "/api/warehouses", payload{"sop": f.sop, "warehouse_facility": "North"})
	f.sample = createID(t, r, "/api/samples", f.samplePayload("Aspirin"))
	return f
}

func (f fixture) samplePayload(product string) payload {
	return payload{
		"location":           f.location,
		"warehouse":          f.warehouse,
		"sop":                f.sop,
		"product_name":       product,
		"product_stage":      "Blend",
		"quantity":           5,
		"sample_type":        "I",
		"storage_conditions": "RT",
	}
}

// newTest creates a test under its own SOP; nil bounds are sent as JSON null.
func (f fixture) newTest(t *testing.T, min, max any) int {
	t.Helper()
	sop := createID(t, f.r, "/api/sops", payload{"sop_name": fmt.Sprintf("T-%v-%v", min, max), "effective_date": "2024-01-01"})
	return createID(t, f.r, "/api/tests", payload{
		"user_account":          f.user,
		"sop":                   sop,
		"min_acceptable_result": min,
		"max_acceptable_result": max,
	})
}

func (f fixture) resultPayload(test int, value any) payload {
	return payload{
		"sample":            f.sample,
		"test":              test,
		"testing_analyst":   "jdoe",
		"reviewing_analyst": "asmith",
		"test_result":       value,
		"deadline":          "2024-03-01T17:00:00Z",
	}
}

func send(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createID(t *testing.T, r http.Handler, path string, body any) int {
	t.Helper()
	w := send(r, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, w.Code, "POST %s: %s", path, w.Body.String())

	var created struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	return created.ID
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out), w.Body.String())
	return out
}

func fieldsOf(errs []handlers.ValidationError) []string {
	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	return fields
}

func multipartCSV(csvContent, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	_, _ = part.Write([]byte(csvContent))

	_ = writer.Close()
	return &buf, writer.FormDataContentType()
}
