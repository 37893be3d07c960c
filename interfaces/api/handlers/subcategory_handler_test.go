package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
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

type stubSubcategoryService struct {
	category *models.Category
	subs     []*models.Subcategory

	gotReq  *dto.CreateSubcategoryRequest
	gotLogo string
	logoNil bool
	deleted uuid.UUID
}

func (s *stubSubcategoryService) Create(_ context.Context, req *dto.CreateSubcategoryRequest, logo *dto.LogoUpload) (*models.Subcategory, error) {
	if s.category == nil || req.CategoryID != s.category.ID {
		return nil, apperror.NotFound("category", req.CategoryID)
	}
	s.gotReq = req
	s.logoNil = logo == nil
	if logo != nil {
		body, _ := io.ReadAll(logo.Reader)
		s.gotLogo = string(body)
	}
	return &models.Subcategory{ID: uuid.New(), CategoryID: req.CategoryID, Name: req.Name, SvgLogo: req.SvgLogo}, nil
}

func (s *stubSubcategoryService) GetByID(_ context.Context, id uuid.UUID) (*models.Subcategory, error) {
	return nil, apperror.NotFound("subcategory", id)
}

func (s *stubSubcategoryService) List(context.Context) ([]*models.Subcategory, error) {
	return s.subs, nil
}

func (s *stubSubcategoryService) ListByCategory(_ context.Context, categoryID uuid.UUID) (*models.Category, []*models.Subcategory, error) {
	if s.category == nil || categoryID != s.category.ID {
		return nil, nil, apperror.NotFound("category", categoryID)
	}
	return s.category, s.subs, nil
}

func (s *stubSubcategoryService) Delete(_ context.Context, id uuid.UUID) error {
	s.deleted = id
	return nil
}

func newSubcategoryFixture() (*stubSubcategoryService, *fiber.App) {
	cat := &models.Category{ID: uuid.New(), Name: "Buttons"}
	svc := &stubSubcategoryService{
		category: cat,
		subs: []*models.Subcategory{
			{ID: uuid.New(), CategoryID: cat.ID, Name: "Ghost", Category: cat},
			{ID: uuid.New(), CategoryID: cat.ID, Name: "Primary", Category: cat},
		},
	}

	h := NewSubcategoryHandler(svc)
	app := fiber.New()
	app.Get("/api/subcategories", h.List)
	app.Post("/api/subcategories", h.Create)
	app.Delete("/api/subcategories/:id", h.Delete)
	return svc, app
}

func TestSubcategoryHandler_CreateJSON(t *testing.T) {
	svc, app := newSubcategoryFixture()

	body := `{"category_id":"` + svc.category.ID.String() + `","name":"Outline"}`
	req := httptest.NewRequest(http.MethodPost, "/api/subcategories", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	status, env := doRequest(t, app, req)

	require.Equal(t, http.StatusOK, status)
	assert.True(t, svc.logoNil)

	var out dto.SubcategoryResponse
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, "Outline", out.Name)
	assert.Equal(t, svc.category.ID, out.CategoryID)
}

func TestSubcategoryHandler_CreateMultipart(t *testing.T) {
	svc, app := newSubcategoryFixture()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("category_id", svc.category.ID.String()))
	require.NoError(t, w.WriteField("name", "Icon buttons"))
	part, err := w.CreateFormFile("svg", "icon.svg")
	require.NoError(t, err)
	_, err = part.Write([]byte("<svg/>"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/subcategories", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	status, _ := doRequest(t, app, req)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, svc.category.ID, svc.gotReq.CategoryID)
	assert.Equal(t, "Icon buttons", svc.gotReq.Name)
	assert.False(t, svc.logoNil)
	assert.Equal(t, "<svg/>", svc.gotLogo)
}

func TestSubcategoryHandler_CreateErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"missing category", `{"name":"Outline"}`, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"blank name", `{"category_id":"` + uuid.NewString() + `","name":"  "}`, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"malformed json", `{"name":`, http.StatusBadRequest, "BAD_REQUEST"},
		{"unknown category", `{"category_id":"` + uuid.NewString() + `","name":"Outline"}`, http.StatusNotFound, "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, app := newSubcategoryFixture()

			req := httptest.NewRequest(http.MethodPost, "/api/subcategories", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			status, env := doRequest(t, app, req)

			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestSubcategoryHandler_List(t *testing.T) {
	svc, app := newSubcategoryFixture()

	status, env := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/subcategories", nil))
	require.Equal(t, http.StatusOK, status)
	var all []dto.SubcategoryResponse
	require.NoError(t, json.Unmarshal(env.Data, &all))
	require.Len(t, all, 2)
	require.NotNil(t, all[0].Category)
	assert.Equal(t, "Buttons", all[0].Category.Name)

	status, env = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/subcategories?categoryId="+svc.category.ID.String(), nil))
	require.Equal(t, http.StatusOK, status)
	var grouped dto.CategorySubcategoriesResponse
	require.NoError(t, json.Unmarshal(env.Data, &grouped))
	assert.Equal(t, svc.category.ID, grouped.Category.ID)
	assert.Len(t, grouped.Subcategories, 2)

	status, _ = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/subcategories?categoryId=nope", nil))
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/subcategories?categoryId="+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, status)
}

func TestSubcategoryHandler_Delete(t *testing.T) {
	svc, app := newSubcategoryFixture()
	id := uuid.New()

	status, _ := doRequest(t, app, httptest.NewRequest(http.MethodDelete, "/api/subcategories/"+id.String(), nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, id, svc.deleted)

	status, _ = doRequest(t, app, httptest.NewRequest(http.MethodDelete, "/api/subcategories/abc", nil))
	assert.Equal(t, http.StatusBadRequest, status)
}
