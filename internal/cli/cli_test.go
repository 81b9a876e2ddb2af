package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rogerio-castellano/lims-tracker/internal/auth"
	"github.com/rogerio-castellano/lims-tracker/internal/client"
	"github.com/rogerio-castellano/lims-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/lims-tracker/internal/http/router"
	"github.com/rogerio-castellano/lims-tracker/internal/models"
	repo "github.com/rogerio-castellano/lims-tracker/internal/repo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seeded struct {
	api    string
	sample models.Sample
	test   models.Test
}

// seed starts an API over an empty memory store and creates one sample
// and one test accepting values between 10 and 20.
func seed(t *testing.T) seeded {
	t.Helper()
	handlers.SetStore(repo.NewInMemoryStore())
	srv := httptest.NewServer(router.NewRouter(router.Options{}))
	t.Cleanup(srv.Close)

	ctx := context.Background()
	c := client.New(client.Options{BaseURL: srv.URL + "/api/", Timeout: 5 * time.Second})

	sop, err := c.CreateSOP(ctx, client.SOPInput{SOPName: "SOP-1", EffectiveDate: models.NewDate(2024, 1, 1)})
	require.NoError(t, err)
	user, err := c.CreateUser(ctx, client.UserInput{AccountUsername: "jdoe", Email: "jdoe@example.com"})
	require.NoError(t, err)
	loc, err := c.CreateLocation(ctx, client.LocationInput{RoomNumber: 101})
	require.NoError(t, err)
	wh, err := c.CreateWarehouse(ctx, client.WarehouseInput{SOP: sop.ID, WarehouseFacility: "North"})
	require.NoError(t, err)
	sample, err := c.CreateSample(ctx, client.SampleInput{
		Location: loc.ID, Warehouse: wh.ID, SOP: sop.ID,
		ProductName: "Aspirin", ProductStage: "Blend", Quantity: 3,
		SampleType: models.SampleFinished, StorageConditions: "RT",
	})
	require.NoError(t, err)
	test, err := c.CreateTest(ctx, client.TestInput{
		UserAccount:         user.ID,
		SOP:                 sop.ID,
		MinAcceptableResult: decimal.NewNullDecimal(decimal.NewFromInt(10)),
		MaxAcceptableResult: decimal.NewNullDecimal(decimal.NewFromInt(20)),
	})
	require.NoError(t, err)

	return seeded{api: srv.URL + "/api/", sample: sample, test: test}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "limsctl", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"list", "results", "login", "migrate", "hash-password"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	add, _, err := cmd.Find([]string{"results", "add"})
	require.NoError(t, err)
	assert.Equal(t, "add", add.Name())
}

func TestGlobalFlags(t *testing.T) {
	t.Setenv("LIMS_API_URL", "")
	cmd := NewRootCommand()

	api := cmd.PersistentFlags().Lookup("api")
	require.NotNil(t, api)
	assert.Equal(t, client.DefaultBaseURL, api.DefValue)

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)

	for _, name := range []string{"token", "config", "timeout"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, "hash-password", "secret", "--format", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestList_Text(t *testing.T) {
	s := seed(t)

	out, err := execute(t, "list", "samples", "--api", s.api)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "Aspirin")
	assert.Contains(t, lines[1], "Finished")

	out, err = execute(t, "list", "locations", "--api", s.api)
	require.NoError(t, err)
	assert.Contains(t, out, "—")
	assert.Contains(t, out, "101")
}

func TestList_JSON(t *testing.T) {
	s := seed(t)

	out, err := execute(t, "list", "tests", "--api", s.api, "--format", "json")
	require.NoError(t, err)

	var tests []models.Test
	require.NoError(t, json.Unmarshal([]byte(out), &tests))
	require.Len(t, tests, 1)
	assert.Equal(t, s.test.ID, tests[0].ID)
}

func TestList_LabRecords(t *testing.T) {
	s := seed(t)
	c := client.New(client.Options{BaseURL: s.api})
	ctx := context.Background()
	reagent, err := c.CreateReagent(ctx, client.ReagentInput{
		SOP: 1, ReagentName: "Ethanol", CASNumber: "64-17-5", LotNumber: "E1", Vendor: "Acme",
		ManufacturingDate: models.NewDate(2024, 1, 1), ExpirationDate: models.NewDate(2027, 1, 1),
	})
	require.NoError(t, err)
	_, err = c.CreateTestReagentLink(ctx, client.TestReagentLinkInput{Test: s.test.ID, Reagent: reagent.ID, VolumeUsed: decimal.RequireFromString("1.5")})
	require.NoError(t, err)

	out, err := execute(t, "list", "reagents", "--api", s.api)
	require.NoError(t, err)
	assert.Contains(t, out, "64-17-5")
	assert.Contains(t, out, "2027-01-01")

	out, err = execute(t, "list", "test-reagent-links", "--api", s.api)
	require.NoError(t, err)
	assert.Contains(t, out, "1.5")

	out, err = execute(t, "list", "maintenance-logs", "--api", s.api)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(strings.TrimSpace(out), "\n")+1, "header only")
}

func TestList_UnknownResource(t *testing.T) {
	_, err := execute(t, "list", "widgets", "--api", "http://127.0.0.1:1/api/")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown resource")
}

func TestResultsAdd(t *testing.T) {
	s := seed(t)
	base := []string{
		"results", "add", "--api", s.api,
		"--sample", strconv.Itoa(s.sample.ID), "--test", strconv.Itoa(s.test.ID),
		"--tester", "jdoe", "--reviewer", "asmith",
		"--deadline", "2024-03-01T17:00:00Z",
	}

	out, err := execute(t, append(base, "--value", "15")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Yes")

	out, err = execute(t, append(base, "--value", "25", "--format", "json")...)
	require.NoError(t, err)
	var created models.Result
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	assert.False(t, created.PassOrFail)

	out, err = execute(t, "list", "results", "--api", s.api)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)
}

func TestResultsAdd_Rejected(t *testing.T) {
	s := seed(t)

	_, err := execute(t, "results", "add", "--api", s.api,
		"--sample", strconv.Itoa(s.sample.ID), "--test", "99",
		"--tester", "jdoe", "--reviewer", "asmith",
		"--value", "1", "--deadline", "2024-03-01T17:00:00Z")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "result rejected")
	assert.Contains(t, err.Error(), "test 99 does not exist")
}

func TestResultsAdd_BadInput(t *testing.T) {
	args := []string{"results", "add", "--api", "http://127.0.0.1:1/api/",
		"--sample", "1", "--test", "1", "--tester", "a", "--reviewer", "b"}

	_, err := execute(t, append(args, "--value", "abc", "--deadline", "2024-03-01T17:00:00Z")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --value")

	_, err = execute(t, append(args, "--value", "1", "--deadline", "tomorrow")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --deadline")

	_, err = execute(t, "results", "add", "--api", "http://127.0.0.1:1/api/", "--sample", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestHashPassword(t *testing.T) {
	out, err := execute(t, "hash-password", "s3cret")
	require.NoError(t, err)

	hash := strings.TrimSpace(out)
	assert.NoError(t, auth.CheckCredentials("admin", hash, "admin", "s3cret"))
	assert.Error(t, auth.CheckCredentials("admin", hash, "admin", "wrong"))
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	handlers.SetStore(repo.NewInMemoryStore())
	issuer := auth.NewTokenIssuer("test-secret", time.Minute)
	handlers.SetOperator(issuer, "admin", hash)
	t.Cleanup(func() { handlers.SetOperator(nil, "", "") })
	srv := httptest.NewServer(router.NewRouter(router.Options{Issuer: issuer}))
	t.Cleanup(srv.Close)

	out, err := execute(t, "login", "--api", srv.URL+"/api/", "-p", "s3cret")
	require.NoError(t, err)
	_, err = issuer.ParseToken(strings.TrimSpace(out))
	assert.NoError(t, err)

	_, err = execute(t, "login", "--api", srv.URL+"/api/", "-p", "wrong")
	require.Error(t, err)
}

func TestMigrate_InvalidConfig(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LIMS_STORAGE_DATABASE_URL", "")
	_, err := execute(t, "migrate", "--config", "/nonexistent/lims.yaml")
	require.Error(t, err)
}
