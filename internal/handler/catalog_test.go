package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sanctuaryofnature/api/internal/database"
	"github.com/sanctuaryofnature/api/internal/model"
	"github.com/sanctuaryofnature/api/internal/service"
)

// ============================================================================
// Mock Repositories
// ============================================================================

type mockHostRepo struct {
	createFunc func(ctx context.Context, host *model.Host) error
	listFunc   func(ctx context.Context, filter database.Filter, limit int) ([]model.Host, error)
}

func (m *mockHostRepo) Create(ctx context.Context, host *model.Host) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, host)
	}
	host.ID = "host:new"
	return nil
}

func (m *mockHostRepo) List(ctx context.Context, filter database.Filter, limit int) ([]model.Host, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter, limit)
	}
	return []model.Host{}, nil
}

type mockLocationRepo struct {
	createFunc func(ctx context.Context, loc *model.Location) error
	listFunc   func(ctx context.Context, filter database.Filter, limit int) ([]model.Location, error)
}

func (m *mockLocationRepo) Create(ctx context.Context, loc *model.Location) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, loc)
	}
	loc.ID = "location:new"
	return nil
}

func (m *mockLocationRepo) List(ctx context.Context, filter database.Filter, limit int) ([]model.Location, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter, limit)
	}
	return []model.Location{}, nil
}

type mockRetreatRepo struct {
	createFunc func(ctx context.Context, retreat *model.Retreat) error
	listFunc   func(ctx context.Context, filter database.Filter, limit int) ([]model.Retreat, error)
}

func (m *mockRetreatRepo) Create(ctx context.Context, retreat *model.Retreat) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, retreat)
	}
	retreat.ID = "retreat:new"
	return nil
}

func (m *mockRetreatRepo) List(ctx context.Context, filter database.Filter, limit int) ([]model.Retreat, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter, limit)
	}
	return []model.Retreat{}, nil
}

type mockMessageRepo struct {
	createFunc func(ctx context.Context, msg *model.Message) error
	listFunc   func(ctx context.Context, filter database.Filter, limit int) ([]model.Message, error)
}

func (m *mockMessageRepo) Create(ctx context.Context, msg *model.Message) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, msg)
	}
	msg.ID = "message:new"
	return nil
}

func (m *mockMessageRepo) List(ctx context.Context, filter database.Filter, limit int) ([]model.Message, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter, limit)
	}
	return []model.Message{}, nil
}

// ============================================================================
// Test Helpers
// ============================================================================

func makeJSONRequest(method, path string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func newHostHandler(repo service.HostRepository) *HostHandler {
	return NewHostHandler(service.NewHostService(service.HostServiceConfig{HostRepo: repo}))
}

func newLocationHandler(repo service.LocationRepository) *LocationHandler {
	return NewLocationHandler(service.NewLocationService(service.LocationServiceConfig{LocationRepo: repo}))
}

func newRetreatHandler(repo service.RetreatRepository) *RetreatHandler {
	return NewRetreatHandler(service.NewRetreatService(service.RetreatServiceConfig{RetreatRepo: repo}))
}

func newMessageHandler(repo service.MessageRepository) *MessageHandler {
	return NewMessageHandler(service.NewMessageService(service.MessageServiceConfig{MessageRepo: repo}))
}

func decodeProblem(t *testing.T, rr *httptest.ResponseRecorder) model.ProblemDetails {
	t.Helper()
	var problem model.ProblemDetails
	if err := json.NewDecoder(rr.Body).Decode(&problem); err != nil {
		t.Fatalf("failed to decode problem details: %v", err)
	}
	return problem
}

func intRef(i int) *int { return &i }

func floatRef(f float64) *float64 { return &f }

// ============================================================================
// Create Tests
// ============================================================================

func TestCreateHost_Success(t *testing.T) {
	t.Parallel()

	handler := newHostHandler(&mockHostRepo{})
	req := makeJSONRequest(http.MethodPost, "/api/hosts", model.CreateHostRequest{Name: "River Dawn"})
	rr := httptest.NewRecorder()

	handler.CreateHost(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp CreatedResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "host:new" {
		t.Errorf("expected generated id, got %q", resp.ID)
	}
	if resp.Status != "created" {
		t.Errorf("expected status created, got %q", resp.Status)
	}
}

func TestCreateHost_MalformedJSON(t *testing.T) {
	t.Parallel()

	handler := newHostHandler(&mockHostRepo{})
	req := httptest.NewRequest(http.MethodPost, "/api/hosts", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()

	handler.CreateHost(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("expected problem+json content type, got %q", ct)
	}
}

func TestCreateHost_UnknownJSONFieldRejected(t *testing.T) {
	t.Parallel()

	handler := newHostHandler(&mockHostRepo{})
	req := httptest.NewRequest(http.MethodPost, "/api/hosts",
		strings.NewReader(`{"name": "River Dawn", "favorite_color": "green"}`))
	rr := httptest.NewRecorder()

	handler.CreateHost(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for unknown field, got %d", rr.Code)
	}
}

func TestCreateHost_MissingName(t *testing.T) {
	t.Parallel()

	handler := newHostHandler(&mockHostRepo{})
	req := makeJSONRequest(http.MethodPost, "/api/hosts", model.CreateHostRequest{})
	rr := httptest.NewRecorder()

	handler.CreateHost(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rr.Code)
	}

	problem := decodeProblem(t, rr)
	if len(problem.Errors) != 1 || problem.Errors[0].Field != "name" {
		t.Errorf("expected a field error on name, got %v", problem.Errors)
	}
}

func TestCreateHost_StoreUnavailable(t *testing.T) {
	t.Parallel()

	repo := &mockHostRepo{
		createFunc: func(ctx context.Context, host *model.Host) error {
			return database.ErrUnavailable
		},
	}
	handler := newHostHandler(repo)
	req := makeJSONRequest(http.MethodPost, "/api/hosts", model.CreateHostRequest{Name: "River Dawn"})
	rr := httptest.NewRecorder()

	handler.CreateHost(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rr.Code)
	}
	problem := decodeProblem(t, rr)
	if problem.Code != model.ErrCodeStorageUnavailable {
		t.Errorf("expected storage unavailable code, got %d", problem.Code)
	}
}

func TestCreateRetreat_Success(t *testing.T) {
	t.Parallel()

	handler := newRetreatHandler(&mockRetreatRepo{})
	req := makeJSONRequest(http.MethodPost, "/api/retreats", model.CreateRetreatRequest{
		Title:         "Desert Stillness",
		HostName:      "River Dawn",
		LocationTitle: "Red Rock Hollow",
		NatureType:    "desert",
		DurationDays:  intRef(5),
		PriceUSD:      floatRef(450),
	})
	rr := httptest.NewRecorder()

	handler.CreateRetreat(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestCreateRetreat_DurationOutOfRange(t *testing.T) {
	t.Parallel()

	handler := newRetreatHandler(&mockRetreatRepo{})
	req := makeJSONRequest(http.MethodPost, "/api/retreats", model.CreateRetreatRequest{
		Title:         "Too Long",
		HostName:      "River Dawn",
		LocationTitle: "Red Rock Hollow",
		NatureType:    "desert",
		DurationDays:  intRef(61),
		PriceUSD:      floatRef(450),
	})
	rr := httptest.NewRecorder()

	handler.CreateRetreat(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rr.Code)
	}
	problem := decodeProblem(t, rr)
	found := false
	for _, fe := range problem.Errors {
		if fe.Field == "duration_days" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a field error on duration_days, got %v", problem.Errors)
	}
}

func TestCreateRetreat_ZeroPriceAccepted(t *testing.T) {
	t.Parallel()

	var persisted *model.Retreat
	repo := &mockRetreatRepo{
		createFunc: func(ctx context.Context, retreat *model.Retreat) error {
			persisted = retreat
			retreat.ID = "retreat:free"
			return nil
		},
	}
	handler := newRetreatHandler(repo)
	req := makeJSONRequest(http.MethodPost, "/api/retreats", model.CreateRetreatRequest{
		Title:         "Gift Economy Weekend",
		HostName:      "River Dawn",
		LocationTitle: "Mossy Glen",
		NatureType:    "forest",
		DurationDays:  intRef(2),
		PriceUSD:      floatRef(0),
	})
	rr := httptest.NewRecorder()

	handler.CreateRetreat(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for zero price, got %d: %s", rr.Code, rr.Body.String())
	}
	if persisted.PriceUSD != 0 {
		t.Errorf("expected zero price to persist, got %v", persisted.PriceUSD)
	}
}

func TestCreateMessage_Success(t *testing.T) {
	t.Parallel()

	handler := newMessageHandler(&mockMessageRepo{})
	req := makeJSONRequest(http.MethodPost, "/api/messages", model.CreateMessageRequest{
		Author:  "Fern",
		Content: "Looking for a rideshare to the coast.",
	})
	rr := httptest.NewRecorder()

	handler.CreateMessage(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestCreateLocation_AllRequiredMissing(t *testing.T) {
	t.Parallel()

	handler := newLocationHandler(&mockLocationRepo{})
	req := makeJSONRequest(http.MethodPost, "/api/locations", model.CreateLocationRequest{})
	rr := httptest.NewRecorder()

	handler.CreateLocation(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rr.Code)
	}
	problem := decodeProblem(t, rr)
	if len(problem.Errors) != 3 {
		t.Errorf("expected 3 field errors, got %v", problem.Errors)
	}
}

// ============================================================================
// List Tests
// ============================================================================

func TestListLocations_BareArray(t *testing.T) {
	t.Parallel()

	repo := &mockLocationRepo{
		listFunc: func(ctx context.Context, filter database.Filter, limit int) ([]model.Location, error) {
			return []model.Location{
				{ID: "location:1", Title: "Red Rock Hollow", Region: "Sonoran Desert", NatureType: "desert"},
			}, nil
		},
	}
	handler := newLocationHandler(repo)
	req := httptest.NewRequest(http.MethodGet, "/api/locations", nil)
	rr := httptest.NewRecorder()

	handler.ListLocations(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.HasPrefix(body, "[") {
		t.Errorf("expected a bare JSON array, got: %s", body)
	}

	var locations []model.Location
	if err := json.Unmarshal([]byte(body), &locations); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(locations) != 1 || locations[0].ID != "location:1" {
		t.Errorf("unexpected list contents: %v", locations)
	}
}

func TestListLocations_EmptyIsBracketPair(t *testing.T) {
	t.Parallel()

	handler := newLocationHandler(&mockLocationRepo{})
	req := httptest.NewRequest(http.MethodGet, "/api/locations", nil)
	rr := httptest.NewRecorder()

	handler.ListLocations(rr, req)

	if got := strings.TrimSpace(rr.Body.String()); got != "[]" {
		t.Errorf("expected empty list to serialize as [], got %q", got)
	}
}

func TestListLocations_FilterReachesRepository(t *testing.T) {
	t.Parallel()

	var captured database.Filter
	repo := &mockLocationRepo{
		listFunc: func(ctx context.Context, filter database.Filter, limit int) ([]model.Location, error) {
			captured = filter
			return []model.Location{}, nil
		},
	}
	handler := newLocationHandler(repo)
	req := httptest.NewRequest(http.MethodGet, "/api/locations?region=Andes&nature_type=mountain", nil)
	rr := httptest.NewRecorder()

	handler.ListLocations(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if len(captured) != 2 {
		t.Errorf("expected 2 filter conditions, got %v", captured)
	}
}

func TestListLocations_UnknownFilterRejected(t *testing.T) {
	t.Parallel()

	handler := newLocationHandler(&mockLocationRepo{})
	req := httptest.NewRequest(http.MethodGet, "/api/locations?natur_type=forest", nil)
	rr := httptest.NewRecorder()

	handler.ListLocations(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown filter, got %d", rr.Code)
	}
	problem := decodeProblem(t, rr)
	if !strings.Contains(problem.Detail, "natur_type") {
		t.Errorf("expected detail to name the bad field, got %q", problem.Detail)
	}
}

func TestListHosts_QueryParamRejected(t *testing.T) {
	t.Parallel()

	handler := newHostHandler(&mockHostRepo{})
	req := httptest.NewRequest(http.MethodGet, "/api/hosts?name=River", nil)
	rr := httptest.NewRecorder()

	handler.ListHosts(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestListRetreats_StoreUnavailable(t *testing.T) {
	t.Parallel()

	repo := &mockRetreatRepo{
		listFunc: func(ctx context.Context, filter database.Filter, limit int) ([]model.Retreat, error) {
			return nil, database.ErrUnavailable
		},
	}
	handler := newRetreatHandler(repo)
	req := httptest.NewRequest(http.MethodGet, "/api/retreats", nil)
	rr := httptest.NewRecorder()

	handler.ListRetreats(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", rr.Code)
	}
}

func TestListMessages_TopicFilter(t *testing.T) {
	t.Parallel()

	var captured database.Filter
	repo := &mockMessageRepo{
		listFunc: func(ctx context.Context, filter database.Filter, limit int) ([]model.Message, error) {
			captured = filter
			return []model.Message{{ID: "message:1", Author: "Fern", Content: "hi"}}, nil
		},
	}
	handler := newMessageHandler(repo)
	req := httptest.NewRequest(http.MethodGet, "/api/messages?topic=rideshare", nil)
	rr := httptest.NewRecorder()

	handler.ListMessages(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if len(captured) != 1 || captured[0].Field != "topic" {
		t.Errorf("expected topic filter to reach repository, got %v", captured)
	}
}

func TestListRetreats_ReadFailureDetailTruncated(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 500)
	repo := &mockRetreatRepo{
		listFunc: func(ctx context.Context, filter database.Filter, limit int) ([]model.Retreat, error) {
			return nil, fmt.Errorf("%w: %s", database.ErrRead, long)
		},
	}
	handler := newRetreatHandler(repo)
	req := httptest.NewRequest(http.MethodGet, "/api/retreats", nil)
	rr := httptest.NewRecorder()

	handler.ListRetreats(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}
	problem := decodeProblem(t, rr)
	if len(problem.Detail) > maxErrorDetail {
		t.Errorf("expected detail capped at %d chars, got %d", maxErrorDetail, len(problem.Detail))
	}
}
