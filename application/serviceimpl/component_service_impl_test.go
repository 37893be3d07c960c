package serviceimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Madhavladani/adeptjs64/domain/apperror"
	"github.com/Madhavladani/adeptjs64/domain/dto"
	"github.com/Madhavladani/adeptjs64/domain/models"
	"github.com/Madhavladani/adeptjs64/domain/ports"
)

type componentFixture struct {
	components    *fakeComponentRepo
	categories    *fakeCategoryRepo
	subcategories *fakeSubcategoryRepo
	events        *fakeEvents
	cache         *fakeCache
	svc           *ComponentServiceImpl

	cat *models.Category
	sub *models.Subcategory
}

func newComponentFixture() *componentFixture {
	cat := newCategory("Buttons")
	sub := newSubcategory(cat, "Primary")

	categories := &fakeCategoryRepo{items: []*models.Category{cat}}
	subcategories := &fakeSubcategoryRepo{items: []*models.Subcategory{sub}}

	f := &componentFixture{
		components:    &fakeComponentRepo{categories: categories, subcategories: subcategories},
		categories:    categories,
		subcategories: subcategories,
		events:        &fakeEvents{},
		cache:         newFakeCache(),
		cat:           cat,
		sub:           sub,
	}
	enricher := NewDimensionEnricher(&fakeProber{}, time.Second, 4)
	support := CatalogSupport{Cache: f.cache, Events: f.events}
	f.svc = NewComponentService(f.components, f.categories, f.subcategories, enricher, support).(*ComponentServiceImpl)
	return f
}

func (f *componentFixture) createRequest(name string) *dto.CreateComponentRequest {
	return &dto.CreateComponentRequest{
		Name:           name,
		Description:    "desc",
		ImageURL:       "https://img.test/" + name + ".png",
		FigmaCode:      "<figma/>",
		CategoryIDs:    []uuid.UUID{f.cat.ID, f.cat.ID},
		SubcategoryIDs: []uuid.UUID{f.sub.ID},
	}
}

func TestComponentCreate(t *testing.T) {
	f := newComponentFixture()
	ctx := context.Background()

	id, err := f.svc.Create(ctx, f.createRequest("Hero"))
	require.NoError(t, err)

	stored, err := f.components.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, stored.IsPublic)
	assert.False(t, stored.IsPro)
	assert.Nil(t, stored.FramerCode)
	assert.Len(t, stored.ComponentCategories, 1, "duplicate category ids are collapsed")
	assert.Len(t, stored.ComponentSubcategories, 1)
	assert.Equal(t, []ports.CatalogEventType{ports.CatalogCreated}, f.events.types())
}

func TestComponentCreate_UnknownReferenceWritesNothing(t *testing.T) {
	f := newComponentFixture()
	req := f.createRequest("Hero")
	missing := uuid.New()
	req.SubcategoryIDs = append(req.SubcategoryIDs, missing)

	_, err := f.svc.Create(context.Background(), req)

	var nf *apperror.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "subcategory", nf.Entity)
	assert.Equal(t, missing.String(), nf.ID)
	assert.Empty(t, f.components.items)
	assert.Empty(t, f.events.types())
}

func TestComponentCreate_CompensatesFailedLink(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(r *fakeComponentRepo)
		op          string
		compensated bool
	}{
		{
			name:        "categories",
			setup:       func(r *fakeComponentRepo) { r.addCategoriesErr = errStoreDown },
			op:          "link component categories",
			compensated: true,
		},
		{
			name:        "subcategories",
			setup:       func(r *fakeComponentRepo) { r.addSubcategoriesErr = errStoreDown },
			op:          "link component subcategories",
			compensated: true,
		},
		{
			name: "compensation fails",
			setup: func(r *fakeComponentRepo) {
				r.addSubcategoriesErr = errStoreDown
				r.deleteErr = errors.New("delete failed")
			},
			op:          "link component subcategories",
			compensated: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newComponentFixture()
			tt.setup(f.components)

			id, err := f.svc.Create(context.Background(), f.createRequest("Hero"))

			assert.Equal(t, uuid.Nil, id)
			var pw *apperror.PartialWriteError
			require.ErrorAs(t, err, &pw)
			assert.Equal(t, tt.op, pw.Op)
			assert.Equal(t, tt.compensated, pw.Compensated)
			assert.ErrorIs(t, err, errStoreDown)

			if tt.compensated {
				assert.Empty(t, f.components.items)
				assert.Len(t, f.components.deleted, 1)
			}
			assert.Empty(t, f.events.types())
		})
	}
}

func TestComponentGetCode(t *testing.T) {
	f := newComponentFixture()
	ctx := context.Background()

	id, err := f.svc.Create(ctx, f.createRequest("Hero"))
	require.NoError(t, err)

	code, err := f.svc.GetCode(ctx, id, models.PlatformFigma)
	require.NoError(t, err)
	assert.Equal(t, "<figma/>", code)

	_, err = f.svc.GetCode(ctx, id, models.PlatformFramer)
	assert.True(t, apperror.IsNotFound(err))

	_, err = f.svc.GetCode(ctx, id, models.CodePlatform("sketch"))
	assert.True(t, apperror.IsValidation(err))

	_, err = f.svc.GetCode(ctx, uuid.New(), models.PlatformWebflow)
	assert.True(t, apperror.IsNotFound(err))
}

func TestComponentList_CachedAndInvalidated(t *testing.T) {
	f := newComponentFixture()
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.createRequest("Hero"))
	require.NoError(t, err)

	all, err := f.svc.List(ctx, dto.ComponentFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, f.cat.ID, all[0].Categories[0].ID)

	_, err = f.svc.List(ctx, dto.ComponentFilter{Query: "her"})
	require.NoError(t, err)
	assert.Equal(t, 1, f.cache.fills, "filtered reads reuse the cached list")

	_, err = f.svc.Create(ctx, f.createRequest("Footer"))
	require.NoError(t, err)

	all, err = f.svc.List(ctx, dto.ComponentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, 2, f.cache.fills)
}

func TestComponentList_CacheDownFallsBackToStore(t *testing.T) {
	f := newComponentFixture()
	ctx := context.Background()
	_, err := f.svc.Create(ctx, f.createRequest("Hero"))
	require.NoError(t, err)

	f.cache.getErr = errors.New("redis unavailable")

	all, err := f.svc.List(ctx, dto.ComponentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestComponentSearch_RequiresQuery(t *testing.T) {
	f := newComponentFixture()

	_, err := f.svc.Search(context.Background(), "  ")
	assert.True(t, apperror.IsValidation(err))
}

func TestComponentListByCategory(t *testing.T) {
	f := newComponentFixture()
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.createRequest("Hero"))
	require.NoError(t, err)

	resp, err := f.svc.ListByCategory(ctx, f.cat.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, f.cat.ID, resp.Category.ID)
	assert.Nil(t, resp.Subcategory)
	require.Len(t, resp.Components, 1)
	require.NotNil(t, resp.Components[0].Dimensions)

	resp, err = f.svc.ListByCategory(ctx, f.cat.ID, &f.sub.ID)
	require.NoError(t, err)
	require.NotNil(t, resp.Subcategory)
	assert.Equal(t, f.sub.ID, resp.Subcategory.ID)

	// subcategory ของ category อื่น
	other := newSubcategory(newCategory("Other"), "X")
	f.subcategories.items = append(f.subcategories.items, other)
	_, err = f.svc.ListByCategory(ctx, f.cat.ID, &other.ID)
	assert.True(t, apperror.IsNotFound(err))

	_, err = f.svc.ListByCategory(ctx, uuid.New(), nil)
	assert.True(t, apperror.IsNotFound(err))
}

func TestComponentListBySubcategory(t *testing.T) {
	f := newComponentFixture()
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.createRequest("Hero"))
	require.NoError(t, err)

	resp, err := f.svc.ListBySubcategory(ctx, f.sub.ID)
	require.NoError(t, err)
	assert.Equal(t, f.cat.ID, resp.Category.ID)
	assert.Equal(t, f.sub.ID, resp.Subcategory.ID)
	assert.Len(t, resp.Components, 1)

	_, err = f.svc.ListBySubcategory(ctx, uuid.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestComponentDeleteMany(t *testing.T) {
	f := newComponentFixture()
	ctx := context.Background()

	a, err := f.svc.Create(ctx, f.createRequest("A"))
	require.NoError(t, err)
	b, err := f.svc.Create(ctx, f.createRequest("B"))
	require.NoError(t, err)

	deleted, err := f.svc.DeleteMany(ctx, []uuid.UUID{a, a, b, uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.Empty(t, f.components.items)

	_, err = f.svc.DeleteMany(ctx, nil)
	assert.True(t, apperror.IsValidation(err))
}
