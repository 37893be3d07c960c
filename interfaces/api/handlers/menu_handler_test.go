package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Madhavladani/adeptjs64/domain/apperror"
	"github.com/Madhavladani/adeptjs64/domain/dto"
	"github.com/Madhavladani/adeptjs64/domain/models"
)

type stubMenuService struct {
	items     []dto.MenuItemResponse
	reordered []dto.MenuOrderItem
	reorder   error
}

func (s *stubMenuService) Load(context.Context) ([]dto.MenuItemResponse, error) {
	return s.items, nil
}

func (s *stubMenuService) Reorder(_ context.Context, items []dto.MenuOrderItem) error {
	if s.reorder != nil {
		return s.reorder
	}
	s.reordered = items
	return nil
}

func (s *stubMenuService) Reconcile(context.Context) (*dto.ReconcileMenuResponse, error) {
	return &dto.ReconcileMenuResponse{CategoriesAdded: 1, SubcategoriesAdded: 2}, nil
}

func (s *stubMenuService) RemoveItem(context.Context, uuid.UUID) error { return nil }

func newMenuApp(svc *stubMenuService) *fiber.App {
	h := NewMenuHandler(svc)
	app := fiber.New()
	app.Get("/api/menu", h.Get)
	app.Put("/api/admin/menu", h.Reorder)
	app.Post("/api/admin/menu/reconcile", h.Reconcile)
	app.Delete("/api/admin/menu/:id", h.RemoveItem)
	return app
}

func TestMenuHandler_Get(t *testing.T) {
	id := uuid.New()
	app := newMenuApp(&stubMenuService{items: []dto.MenuItemResponse{
		{ID: id, Name: "Buttons", Type: models.MenuItemCategory, URL: "/category/" + id.String(), Position: 0},
	}})

	status, env := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/menu", nil))
	require.Equal(t, http.StatusOK, status)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "category", items[0]["type"])
	assert.Equal(t, "/category/"+id.String(), items[0]["url"])
}

func TestMenuHandler_Reorder(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{"ok", `{"items":[{"id":"` + a.String() + `","type":"subcategory"},{"id":"` + b.String() + `","type":"category"}]}`, nil, http.StatusOK},
		{"bad type", `{"items":[{"id":"` + a.String() + `","type":"page"}]}`, nil, http.StatusBadRequest},
		{"missing items", `{}`, nil, http.StatusBadRequest},
		{"duplicate from service", `{"items":[{"id":"` + a.String() + `","type":"category"}]}`, apperror.Validation("items", "duplicate item id"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubMenuService{reorder: tt.serviceErr}
			app := newMenuApp(svc)

			req := httptest.NewRequest(http.MethodPut, "/api/admin/menu", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			status, _ := doRequest(t, app, req)
			assert.Equal(t, tt.wantStatus, status)

			if tt.wantStatus == http.StatusOK {
				require.Len(t, svc.reordered, 2)
				assert.Equal(t, a, svc.reordered[0].ID)
				assert.Equal(t, models.MenuItemSubcategory, svc.reordered[0].Type)
			}
		})
	}
}

func TestMenuHandler_Reconcile(t *testing.T) {
	app := newMenuApp(&stubMenuService{})

	status, env := doRequest(t, app, httptest.NewRequest(http.MethodPost, "/api/admin/menu/reconcile", nil))
	require.Equal(t, http.StatusOK, status)

	var out map[string]int
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, map[string]int{"categoriesAdded": 1, "subcategoriesAdded": 2}, out)
}

func TestMenuHandler_RemoveItemBadID(t *testing.T) {
	app := newMenuApp(&stubMenuService{})

	status, _ := doRequest(t, app, httptest.NewRequest(http.MethodDelete, "/api/admin/menu/xyz", nil))
	assert.Equal(t, http.StatusBadRequest, status)
}
