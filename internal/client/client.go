package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rogerio-castellano/lims-tracker/internal/models"
	repo "github.com/rogerio-castellano/lims-tracker/internal/repo"
)

const DefaultBaseURL = "http://localhost:8080/api/"

type Options struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	// Headers are sent with every request.
	Headers map[string]string
}

// Client talks to the LIMS REST API. Copies made by WithToken share the
// underlying connection pool.
type Client struct {
	rc    *resty.Client
	token string
}

func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	rc := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json").
		SetHeaders(opts.Headers)
	return &Client{rc: rc, token: opts.Token}
}

// WithToken returns a client that sends token as its bearer token. The
// receiver is left unchanged.
func (c *Client) WithToken(token string) *Client {
	return &Client{rc: c.rc, token: token}
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.rc.R().SetContext(ctx)
	if c.token != "" {
		req.SetAuthToken(c.token)
	}
	return req
}

// APIError is returned for any non-2xx response.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api returned %d: %s", e.Status, e.Body)
}

type FieldError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// FieldErrors decodes a validation failure body; nil when the body is not one.
func (e *APIError) FieldErrors() []FieldError {
	var errs []FieldError
	if err := json.Unmarshal([]byte(e.Body), &errs); err != nil {
		return nil
	}
	return errs
}

// Message is a one line description suitable for showing to a user.
func (e *APIError) Message() string {
	if fe := e.FieldErrors(); len(fe) > 0 {
		parts := make([]string, len(fe))
		for i, f := range fe {
			parts[i] = f.Description
		}
		return strings.Join(parts, "; ")
	}
	if e.Body == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return e.Body
}

func do[T any](req *resty.Request, method, path string) (T, error) {
	var out T
	resp, err := req.SetResult(&out).Execute(method, path)
	if err != nil {
		return out, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return out, &APIError{Status: resp.StatusCode(), Body: strings.TrimSpace(resp.String())}
	}
	return out, nil
}

func list[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	return do[[]T](c.request(ctx), resty.MethodGet, path)
}

func create[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return do[T](c.request(ctx).SetBody(body), resty.MethodPost, path)
}

func (c *Client) ListUsers(ctx context.Context) ([]models.UserAccount, error) {
	return list[models.UserAccount](ctx, c, "users")
}

func (c *Client) CreateUser(ctx context.Context, in UserInput) (models.UserAccount, error) {
	return create[models.UserAccount](ctx, c, "users", in)
}

func (c *Client) ListSOPs(ctx context.Context) ([]models.SOP, error) {
	return list[models.SOP](ctx, c, "sops")
}

func (c *Client) CreateSOP(ctx context.Context, in SOPInput) (models.SOP, error) {
	return create[models.SOP](ctx, c, "sops", in)
}

func (c *Client) UpdateSOP(ctx context.Context, id int, in SOPInput) (models.SOP, error) {
	return do[models.SOP](c.request(ctx).SetBody(in), resty.MethodPut, "sops/"+strconv.Itoa(id))
}

func (c *Client) ListVersionChanges(ctx context.Context) ([]models.VersionChange, error) {
	return list[models.VersionChange](ctx, c, "version-changes")
}

func (c *Client) ListLocations(ctx context.Context) ([]models.Location, error) {
	return list[models.Location](ctx, c, "locations")
}

func (c *Client) CreateLocation(ctx context.Context, in LocationInput) (models.Location, error) {
	return create[models.Location](ctx, c, "locations", in)
}

func (c *Client) ListWarehouses(ctx context.Context) ([]models.Warehouse, error) {
	return list[models.Warehouse](ctx, c, "warehouses")
}

func (c *Client) CreateWarehouse(ctx context.Context, in WarehouseInput) (models.Warehouse, error) {
	return create[models.Warehouse](ctx, c, "warehouses", in)
}

func (c *Client) ListEquipment(ctx context.Context) ([]models.Equipment, error) {
	return list[models.Equipment](ctx, c, "equipment")
}

func (c *Client) CreateEquipment(ctx context.Context, in EquipmentInput) (models.Equipment, error) {
	return create[models.Equipment](ctx, c, "equipment", in)
}

func (c *Client) ListSamples(ctx context.Context) ([]models.Sample, error) {
	return list[models.Sample](ctx, c, "samples")
}

func (c *Client) CreateSample(ctx context.Context, in SampleInput) (models.Sample, error) {
	return create[models.Sample](ctx, c, "samples", in)
}

func (c *Client) ListTests(ctx context.Context) ([]models.Test, error) {
	return list[models.Test](ctx, c, "tests")
}

func (c *Client) CreateTest(ctx context.Context, in TestInput) (models.Test, error) {
	return create[models.Test](ctx, c, "tests", in)
}

// ListResults lists results; an empty filter sends no query parameters.
func (c *Client) ListResults(ctx context.Context, rf repo.ResultFilter) ([]models.Result, error) {
	req := c.request(ctx)
	if rf.SampleID != nil {
		req.SetQueryParam("sample", strconv.Itoa(*rf.SampleID))
	}
	if rf.TestID != nil {
		req.SetQueryParam("test", strconv.Itoa(*rf.TestID))
	}
	if rf.PassOrFail != nil {
		req.SetQueryParam("pass_or_fail", strconv.FormatBool(*rf.PassOrFail))
	}
	return do[[]models.Result](req, resty.MethodGet, "sample-test-links")
}

func (c *Client) CreateResult(ctx context.Context, in ResultInput) (models.Result, error) {
	return create[models.Result](ctx, c, "sample-test-links", in)
}

func (c *Client) ListMaintenanceLogs(ctx context.Context) ([]models.MaintenanceLog, error) {
	return list[models.MaintenanceLog](ctx, c, "maintenance-logs")
}

func (c *Client) CreateMaintenanceLog(ctx context.Context, in MaintenanceLogInput) (models.MaintenanceLog, error) {
	return create[models.MaintenanceLog](ctx, c, "maintenance-logs", in)
}

func (c *Client) ListReagents(ctx context.Context) ([]models.Reagent, error) {
	return list[models.Reagent](ctx, c, "reagents")
}

func (c *Client) CreateReagent(ctx context.Context, in ReagentInput) (models.Reagent, error) {
	return create[models.Reagent](ctx, c, "reagents", in)
}

func (c *Client) ListTestReagentLinks(ctx context.Context) ([]models.TestReagentLink, error) {
	return list[models.TestReagentLink](ctx, c, "test-reagent-links")
}

func (c *Client) CreateTestReagentLink(ctx context.Context, in TestReagentLinkInput) (models.TestReagentLink, error) {
	return create[models.TestReagentLink](ctx, c, "test-reagent-links", in)
}

func (c *Client) ListTestEquipmentLinks(ctx context.Context) ([]models.TestEquipmentLink, error) {
	return list[models.TestEquipmentLink](ctx, c, "test-equipment-links")
}

func (c *Client) CreateTestEquipmentLink(ctx context.Context, in TestEquipmentLinkInput) (models.TestEquipmentLink, error) {
	return create[models.TestEquipmentLink](ctx, c, "test-equipment-links", in)
}

func (c *Client) DashboardMetrics(ctx context.Context) (repo.Metrics, error) {
	return do[repo.Metrics](c.request(ctx), resty.MethodGet, "metrics/dashboard")
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges operator credentials for a token. Use WithToken to act with it.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}
	out, err := create[loginResponse](ctx, c, "login", body)
	if err != nil {
		return "", err
	}
	return out.Token, nil
}
