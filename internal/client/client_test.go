package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rogerio-castellano/lims-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/lims-tracker/internal/http/router"
	"github.com/rogerio-castellano/lims-tracker/internal/models"
	repo "github.com/rogerio-castellano/lims-tracker/internal/repo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	handlers.SetStore(repo.NewInMemoryStore())
	srv := httptest.NewServer(router.NewRouter(router.Options{}))
	t.Cleanup(srv.Close)
	return New(Options{BaseURL: srv.URL + "/api/", Timeout: 5 * time.Second})
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestClient_CreateAndListRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	sop, err := c.CreateSOP(ctx, SOPInput{SOPName: "SOP-1", EffectiveDate: models.NewDate(2024, 1, 1)})
	require.NoError(t, err)
	assert.True(t, sop.VersionNumber.Equal(dec("1.0")))

	user, err := c.CreateUser(ctx, UserInput{AccountUsername: "jdoe", Email: "jdoe@example.com"})
	require.NoError(t, err)

	loc, err := c.CreateLocation(ctx, LocationInput{RoomNumber: 101})
	require.NoError(t, err)
	assert.Nil(t, loc.LocationType)

	wh, err := c.CreateWarehouse(ctx, WarehouseInput{SOP: sop.ID, WarehouseFacility: "North"})
	require.NoError(t, err)

	sample, err := c.CreateSample(ctx, SampleInput{
		Location: loc.ID, Warehouse: wh.ID, SOP: sop.ID,
		ProductName: "Aspirin", ProductStage: "Blend", Quantity: 3,
		SampleType: models.SampleStability, StorageConditions: "RT",
	})
	require.NoError(t, err)
	assert.False(t, sample.TimeReceived.IsZero())

	test, err := c.CreateTest(ctx, TestInput{
		UserAccount: user.ID, SOP: sop.ID,
		MinAcceptableResult: decimal.NewNullDecimal(dec("10")),
		MaxAcceptableResult: decimal.NewNullDecimal(dec("20")),
	})
	require.NoError(t, err)

	deadline := time.Date(2024, 2, 1, 17, 0, 0, 0, time.UTC)
	for _, v := range []string{"15", "25"} {
		_, err := c.CreateResult(ctx, ResultInput{
			Sample: sample.ID, Test: test.ID, TestingAnalyst: "a", ReviewingAnalyst: "b",
			TestResult: dec(v), Deadline: deadline, PassOrFail: true,
		})
		require.NoError(t, err)
	}

	all, err := c.ListResults(ctx, repo.ResultFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[0].PassOrFail)
	assert.False(t, all[1].PassOrFail, "server verdict replaces the client flag")
	assert.True(t, all[0].Deadline.Equal(deadline))

	failing := false
	onlyFailing, err := c.ListResults(ctx, repo.ResultFilter{PassOrFail: &failing})
	require.NoError(t, err)
	require.Len(t, onlyFailing, 1)
	assert.True(t, onlyFailing[0].TestResult.Equal(dec("25")))

	samples, err := c.ListSamples(ctx)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, "Aspirin", samples[0].ProductName)

	m, err := c.DashboardMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, m.TotalResults)
	assert.Equal(t, 1, m.FailingResults)
}

func TestClient_APIError(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	_, err := c.CreateLocation(ctx, LocationInput{RoomNumber: 0})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	require.NotEmpty(t, apiErr.FieldErrors())
	assert.Equal(t, "room_number", apiErr.FieldErrors()[0].Field)
	assert.Contains(t, apiErr.Message(), "room_number")

	_, err = c.Login(ctx, "admin", "secret")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Nil(t, apiErr.FieldErrors())
}

func TestClient_TransportError(t *testing.T) {
	c := New(Options{BaseURL: "http://127.0.0.1:1/api/", Timeout: time.Second})

	_, err := c.ListSamples(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestClient_WithTokenAndHeaders(t *testing.T) {
	var seen []http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Clone())
		_, _ = w.Write([]byte("[]"))
	}))
	t.Cleanup(srv.Close)
	ctx := context.Background()

	base := New(Options{BaseURL: srv.URL + "/api/", Headers: map[string]string{"X-Lims-Internal-Key": "k1"}})
	operator := base.WithToken("tok-1")

	_, err := operator.ListSamples(ctx)
	require.NoError(t, err)
	_, err = base.ListSamples(ctx)
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Equal(t, "Bearer tok-1", seen[0].Get("Authorization"))
	assert.Empty(t, seen[1].Get("Authorization"), "the base client keeps no token")
	assert.Equal(t, "k1", seen[0].Get("X-Lims-Internal-Key"))
	assert.Equal(t, "k1", seen[1].Get("X-Lims-Internal-Key"))
}

func TestClient_LabRecords(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	sop, err := c.CreateSOP(ctx, SOPInput{SOPName: "SOP-1", EffectiveDate: models.NewDate(2024, 1, 1)})
	require.NoError(t, err)
	user, err := c.CreateUser(ctx, UserInput{AccountUsername: "jdoe", Email: "jdoe@example.com"})
	require.NoError(t, err)
	loc, err := c.CreateLocation(ctx, LocationInput{RoomNumber: 101})
	require.NoError(t, err)
	eq, err := c.CreateEquipment(ctx, EquipmentInput{Location: loc.ID, SOP: sop.ID, EquipmentName: "Balance", MinUseRange: dec("0"), MaxUseRange: dec("200")})
	require.NoError(t, err)
	test, err := c.CreateTest(ctx, TestInput{UserAccount: user.ID, SOP: sop.ID})
	require.NoError(t, err)

	_, err = c.CreateMaintenanceLog(ctx, MaintenanceLogInput{
		Equipment: eq.ID, SOP: sop.ID, ServiceDescription: "Calibrated", ServiceInterval: "1 year",
		ServiceDate: models.NewDate(2024, 1, 10), NextServiceDate: models.NewDate(2025, 1, 10),
	})
	require.NoError(t, err)

	reagent, err := c.CreateReagent(ctx, ReagentInput{
		SOP: sop.ID, ReagentName: "Ethanol", CASNumber: "64-17-5", LotNumber: "E1", Vendor: "Acme",
		ManufacturingDate: models.NewDate(2024, 1, 1), ExpirationDate: models.NewDate(2027, 1, 1),
	})
	require.NoError(t, err)

	_, err = c.CreateTestReagentLink(ctx, TestReagentLinkInput{Test: test.ID, Reagent: reagent.ID, VolumeUsed: dec("12.5")})
	require.NoError(t, err)
	_, err = c.CreateTestEquipmentLink(ctx, TestEquipmentLinkInput{Test: test.ID, Equipment: eq.ID})
	require.NoError(t, err)

	logs, err := c.ListMaintenanceLogs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "2025-01-10", logs[0].NextServiceDate.String())

	reagents, err := c.ListReagents(ctx)
	require.NoError(t, err)
	require.Len(t, reagents, 1)
	assert.Equal(t, "64-17-5", reagents[0].CASNumber)

	reagentLinks, err := c.ListTestReagentLinks(ctx)
	require.NoError(t, err)
	require.Len(t, reagentLinks, 1)
	assert.True(t, reagentLinks[0].VolumeUsed.Equal(dec("12.5")))

	equipmentLinks, err := c.ListTestEquipmentLinks(ctx)
	require.NoError(t, err)
	require.Len(t, equipmentLinks, 1)
	assert.Equal(t, eq.ID, equipmentLinks[0].EquipmentID)
}
