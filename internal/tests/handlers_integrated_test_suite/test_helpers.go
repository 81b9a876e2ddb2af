package handlers_integrated_test_suite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/rogerio-castellano/lims-tracker/internal/db"
	"github.com/rogerio-castellano/lims-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/lims-tracker/internal/http/router"
	repo "github.com/rogerio-castellano/lims-tracker/internal/repo"
	"github.com/rs/zerolog"
)

const databaseURLEnv = "LIMS_TEST_DATABASE_URL"

var (
	connectOnce sync.Once
	database    *sql.DB
	connectErr  error
)

type payload map[string]any

// setup connects to the test database once, migrates it and empties every
// table. Tests are skipped when no database is configured.
func setup(t *testing.T) http.Handler {
	t.Helper()
	dbURL := os.Getenv(databaseURLEnv)
	if dbURL == "" {
		t.Skipf("%s not set", databaseURLEnv)
	}

	connectOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		database, connectErr = db.Connect(ctx, dbURL)
		if connectErr == nil {
			connectErr = db.Migrate(database, zerolog.Nop())
		}
	})
	if connectErr != nil {
		t.Fatalf("could not prepare database: %v", connectErr)
	}

	clearAll(t)
	handlers.SetStore(repo.NewPostgresStore(database))
	handlers.SetListCache(nil)
	handlers.SetOperator(nil, "", "")
	return router.NewRouter(router.Options{})
}

func clearAll(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	const query = `TRUNCATE TABLE test_equipment_links, test_reagent_links, reagents, maintenance_logs,
		sample_test_links, tests, samples, equipment, locations,
		warehouses, version_changes, sops, user_accounts RESTART IDENTITY CASCADE`
	if _, err := database.ExecContext(ctx, query); err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}

func send(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func create(t *testing.T, r http.Handler, path string, body payload) int {
	t.Helper()
	w := send(r, http.MethodPost, path, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST %s: expected 201 Created, got %d: %s", path, w.Code, w.Body.String())
	}
	var created struct {
		ID int `json:"id"`
	}
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return created.ID
}

type references struct {
	sop, user, location, warehouse, sample int
}

func seedReferences(t *testing.T, r http.Handler) references {
	t.Helper()
	var refs references
	refs.sop = create(t, r, "/api/sops", payload{"sop_name": "SOP-1", "effective_date": "2024-01-01"})
	refs.user = create(t, r, "/api/users", payload{"account_username": "jdoe", "email": "jdoe@example.com"})
	refs.location = create(t, r, "/api/locations", payload{"room_number": 101})
	refs.warehouse = create(t, r, "/api/warehouses", payload{"sop": refs.sop, "warehouse_facility": "North"})
	refs.sample = create(t, r, "/api/samples", payload{
		"location": refs.location, "warehouse": refs.warehouse, "sop": refs.sop,
		"product_name": "Aspirin", "product_stage": "Blend", "quantity": 5,
		"sample_type": "I", "storage_conditions": "RT",
	})
	return refs
}

func newTest(t *testing.T, r http.Handler, refs references, min, max any) int {
	t.Helper()
	sop := create(t, r, "/api/sops", payload{"sop_name": fmt.Sprintf("T-%v-%v", min, max), "effective_date": "2024-01-01"})
	return create(t, r, "/api/tests", payload{
		"user_account": refs.user, "sop": sop,
		"min_acceptable_result": min, "max_acceptable_result": max,
	})
}

func resultPayload(sample, test int, value any) payload {
	return payload{
		"sample": sample, "test": test,
		"testing_analyst": "jdoe", "reviewing_analyst": "asmith",
		"test_result": value, "deadline": "2024-03-01T17:00:00Z",
	}
}

func multipartCSV(t *testing.T, csvContent string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "samples.csv")
	if err != nil {
		t.Fatalf("fail to create form file: %v", err)
	}
	if _, err := part.Write([]byte(csvContent)); err != nil {
		t.Fatalf("fail to write file: %v", err)
	}
	writer.Close()
	return &buf, writer.FormDataContentType()
}
