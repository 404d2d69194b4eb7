package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handwerkpro/handwerkpro-api/internal/application/dto"
	"github.com/handwerkpro/handwerkpro-api/internal/domain"
	apphttp "github.com/handwerkpro/handwerkpro-api/internal/interfaces/http"
	"github.com/handwerkpro/handwerkpro-api/pkg/logger"
)

// stubCustomerService returns canned values and records the queries it sees.
type stubCustomerService struct {
	listQuery *dto.ListCustomersQuery
	listOut   *dto.ListCustomersResponse
	detailOut *dto.CustomerDetailResponse
	detailErr error
	createIn  *dto.CreateCustomerRequest
	createOut *dto.CustomerResponse
	updateOut *dto.CustomerResponse
	updateErr error
	deleteErr error
}

func (s *stubCustomerService) ListAll(_ context.Context, q dto.ListCustomersQuery) (*dto.ListCustomersResponse, error) {
	s.listQuery = &q
	if s.listOut != nil {
		return s.listOut, nil
	}
	return &dto.ListCustomersResponse{
		Data: []dto.CustomerListItem{},
		Meta: dto.PageMeta{Page: q.Page, PageSize: q.PageSize},
	}, nil
}

func (s *stubCustomerService) ListOne(_ context.Context, id string) (*dto.CustomerDetailResponse, error) {
	if s.detailErr != nil {
		return nil, s.detailErr
	}
	return s.detailOut, nil
}

func (s *stubCustomerService) GetStats(_ context.Context) (*dto.CustomerStatusCounts, error) {
	return &dto.CustomerStatusCounts{Active: 10, Inactive: 3, Archived: 2, Total: 15}, nil
}

func (s *stubCustomerService) Create(_ context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	s.createIn = &in
	if s.createOut != nil {
		return s.createOut, nil
	}
	return &dto.CustomerResponse{ID: "new-id", Name: in.Name, Type: in.Type}, nil
}

func (s *stubCustomerService) Update(_ context.Context, id string, _ dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	if s.updateOut != nil {
		return s.updateOut, nil
	}
	return &dto.CustomerResponse{ID: id}, nil
}

func (s *stubCustomerService) Delete(_ context.Context, _ string) error {
	return s.deleteErr
}

func buildTestApp(svc *stubCustomerService) *fiber.App {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.NewErrorHandler(log)})
	apphttp.Router(app, apphttp.RouterDeps{Customers: svc, Invoices: nil})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestListCustomers_QueryForwarded(t *testing.T) {
	svc := &stubCustomerService{}
	app := buildTestApp(svc)

	resp := doJSON(t, app, http.MethodGet, "/api/customers?search=weber&type=PRIVATE&page=2&pageSize=50", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NotNil(t, svc.listQuery)
	assert.Equal(t, "weber", svc.listQuery.Search)
	assert.Equal(t, "PRIVATE", svc.listQuery.Type)
	assert.Equal(t, 2, svc.listQuery.Page)
	assert.Equal(t, 50, svc.listQuery.PageSize)
}

func TestListCustomers_PageSizeTooLarge(t *testing.T) {
	svc := &stubCustomerService{}
	app := buildTestApp(svc)

	resp := doJSON(t, app, http.MethodGet, "/api/customers?pageSize=500", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeError(t, resp)
	assert.Equal(t, "validation", body.Type)
	assert.Contains(t, body.Errors, "pageSize")
	assert.Nil(t, svc.listQuery, "the service must not be reached")
}

func TestListCustomers_InvalidType(t *testing.T) {
	app := buildTestApp(&stubCustomerService{})

	resp := doJSON(t, app, http.MethodGet, "/api/customers?type=WHOLESALE", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "validation", decodeError(t, resp).Type)
}

func TestGetCustomerStats(t *testing.T) {
	app := buildTestApp(&stubCustomerService{})

	resp := doJSON(t, app, http.MethodGet, "/api/customers/stats", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.CustomerStatusCounts
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, dto.CustomerStatusCounts{Active: 10, Inactive: 3, Archived: 2, Total: 15}, out)
}

func TestGetCustomer_NotFound(t *testing.T) {
	svc := &stubCustomerService{detailErr: fmt.Errorf("customer x: %w", domain.ErrNotFound)}
	app := buildTestApp(svc)

	resp := doJSON(t, app, http.MethodGet, "/api/customers/x", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "error", decodeError(t, resp).Type)
}

func TestCreateCustomer(t *testing.T) {
	app := buildTestApp(&stubCustomerService{})

	resp := doJSON(t, app, http.MethodPost, "/api/customers",
		`{"name":"Müller Sanitär GmbH","type":"BUSINESS","country":"CH","status":"ACTIVE"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.CustomerResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "new-id", out.ID)
	assert.Equal(t, "Müller Sanitär GmbH", out.Name)
}

func TestCreateCustomer_UnknownFieldsStripped(t *testing.T) {
	svc := &stubCustomerService{}
	app := buildTestApp(svc)

	// Client-supplied server fields must not survive decoding into the
	// create schema; the id stays server-assigned.
	resp := doJSON(t, app, http.MethodPost, "/api/customers",
		`{"id":"client-id","createdAt":"2020-01-01T00:00:00Z","updatedAt":"2020-01-01T00:00:00Z",`+
			`"name":"Sandra Weber","type":"PRIVATE","country":"CH","status":"ACTIVE"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	require.NotNil(t, svc.createIn)
	assert.Equal(t, "Sandra Weber", svc.createIn.Name)
	assert.Equal(t, "PRIVATE", svc.createIn.Type)

	var out dto.CustomerResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "new-id", out.ID)
	assert.True(t, out.CreatedAt.IsZero(), "client timestamps may not leak into the response")
}

func TestCreateCustomer_MissingFields(t *testing.T) {
	app := buildTestApp(&stubCustomerService{})

	resp := doJSON(t, app, http.MethodPost, "/api/customers", `{"type":"BUSINESS"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeError(t, resp)
	assert.Equal(t, "validation", body.Type)
	assert.Equal(t, "is required", body.Errors["name"])
}

func TestCreateCustomer_MalformedBody(t *testing.T) {
	app := buildTestApp(&stubCustomerService{})

	resp := doJSON(t, app, http.MethodPost, "/api/customers", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeError(t, resp)
	assert.Equal(t, "validation", body.Type)
	assert.Contains(t, body.Errors, "body")
}

func TestUpdateCustomer_InvalidEmail(t *testing.T) {
	app := buildTestApp(&stubCustomerService{})

	resp := doJSON(t, app, http.MethodPatch, "/api/customers/c1", `{"email":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeError(t, resp)
	assert.Equal(t, "validation", body.Type)
	assert.Equal(t, "must be a valid email address", body.Errors["email"])
}

func TestDeleteCustomer(t *testing.T) {
	app := buildTestApp(&stubCustomerService{})

	resp := doJSON(t, app, http.MethodDelete, "/api/customers/c1", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestDeleteCustomer_NotFound(t *testing.T) {
	svc := &stubCustomerService{deleteErr: fmt.Errorf("customer x: %w", domain.ErrNotFound)}
	app := buildTestApp(svc)

	resp := doJSON(t, app, http.MethodDelete, "/api/customers/x", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUnknownRouteKeepsErrorEnvelope(t *testing.T) {
	app := buildTestApp(&stubCustomerService{})

	resp := doJSON(t, app, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "error", decodeError(t, resp).Type)
}
