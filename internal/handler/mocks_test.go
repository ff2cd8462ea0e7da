package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"stockroom/internal/model"
	"stockroom/internal/view"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockItemService is a mock implementation of service.ItemService.
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) List(ctx context.Context, q string) ([]model.Item, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Item), args.Error(1)
}

func (m *MockItemService) Get(ctx context.Context, id uint) (*model.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockItemService) Create(ctx context.Context, form model.ItemForm) (*model.Item, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockItemService) Delete(ctx context.Context, rawID string) error {
	args := m.Called(ctx, rawID)
	return args.Error(0)
}

// MockCategoryService is a mock implementation of service.CategoryService.
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) List(ctx context.Context, q string) ([]model.CategoryWithCount, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CategoryWithCount), args.Error(1)
}

func (m *MockCategoryService) Detail(ctx context.Context, id uint) (*model.Category, model.CategorySummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Get(1).(model.CategorySummary), args.Error(2)
	}
	return args.Get(0).(*model.Category), args.Get(1).(model.CategorySummary), args.Error(2)
}

func (m *MockCategoryService) GetAll(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryService) Create(ctx context.Context, form model.CategoryForm) (*model.Category, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

// MockDashboardService is a mock implementation of service.DashboardService.
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardStats), args.Error(1)
}

// newTestRenderer parses the real template set for handler tests.
func newTestRenderer(t *testing.T) *view.Renderer {
	t.Helper()

	renderer, err := view.New()
	require.NoError(t, err)
	return renderer
}

// withURLParam attaches a chi route parameter to the request context.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// doForm builds a POST request with a form-encoded body.
func doForm(target string, values map[string]string) (*httptest.ResponseRecorder, *http.Request) {
	form := url.Values{}
	for k, v := range values {
		form.Set(k, v)
	}

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return httptest.NewRecorder(), req
}
