package serviceimpl

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Madhavladani/adeptjs64/domain/models"
	"github.com/Madhavladani/adeptjs64/domain/ports"
	"github.com/Madhavladani/adeptjs64/domain/repositories"
)

var errStoreDown = errors.New("store down")

// ─── categories ───

type fakeCategoryRepo struct {
	items     []*models.Category
	createErr error
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *models.Category) error {
	if r.createErr != nil {
		return r.createErr
	}
	c.CreatedAt = time.Now()
	r.items = append(r.items, c)
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	for _, c := range r.items {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*models.Category, error) {
	return append([]*models.Category(nil), r.items...), nil
}

func (r *fakeCategoryRepo) ExistingIDs(_ context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, id := range ids {
		if _, err := r.GetByID(context.Background(), id); err == nil {
			out = append(out, id)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, c := range r.items {
		if c.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

// ─── subcategories ───

type fakeSubcategoryRepo struct {
	items []*models.Subcategory
}

func (r *fakeSubcategoryRepo) Create(_ context.Context, s *models.Subcategory) error {
	s.CreatedAt = time.Now()
	r.items = append(r.items, s)
	return nil
}

func (r *fakeSubcategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Subcategory, error) {
	for _, s := range r.items {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeSubcategoryRepo) List(_ context.Context) ([]*models.Subcategory, error) {
	out := append([]*models.Subcategory(nil), r.items...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeSubcategoryRepo) ListByCategory(_ context.Context, categoryID uuid.UUID) ([]*models.Subcategory, error) {
	var out []*models.Subcategory
	for _, s := range r.items {
		if s.CategoryID == categoryID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSubcategoryRepo) ListByCreation(_ context.Context) ([]*models.Subcategory, error) {
	return append([]*models.Subcategory(nil), r.items...), nil
}

func (r *fakeSubcategoryRepo) ExistingIDs(_ context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, id := range ids {
		if _, err := r.GetByID(context.Background(), id); err == nil {
			out = append(out, id)
		}
	}
	return out, nil
}

func (r *fakeSubcategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, s := range r.items {
		if s.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

// ─── menu order ───

type fakeMenuRepo struct {
	entries  []*models.MenuOrder
	replaced int
}

func (r *fakeMenuRepo) List(_ context.Context) ([]*models.MenuOrder, error) {
	out := append([]*models.MenuOrder(nil), r.entries...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *fakeMenuRepo) ReplaceAll(_ context.Context, entries []*models.MenuOrder) error {
	r.replaced++
	r.entries = append([]*models.MenuOrder(nil), entries...)
	return nil
}

func (r *fakeMenuRepo) Append(_ context.Context, entries []*models.MenuOrder) error {
	r.entries = append(r.entries, entries...)
	return nil
}

func (r *fakeMenuRepo) DeleteByItemID(_ context.Context, itemID uuid.UUID) error {
	for i, e := range r.entries {
		if e.ItemID == itemID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

// ─── components ───

type fakeComponentRepo struct {
	items []*models.Component

	// ใช้ resolve join rows เหมือน preload
	categories    *fakeCategoryRepo
	subcategories *fakeSubcategoryRepo

	addCategoriesErr    error
	addSubcategoriesErr error
	deleteErr           error
	deleted             []uuid.UUID
}

func (r *fakeComponentRepo) Create(_ context.Context, c *models.Component) error {
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.items = append(r.items, c)
	return nil
}

func (r *fakeComponentRepo) AddCategories(_ context.Context, componentID uuid.UUID, ids []uuid.UUID) error {
	if r.addCategoriesErr != nil {
		return r.addCategoriesErr
	}
	c, _ := r.GetByID(context.Background(), componentID)
	for _, id := range ids {
		jr := models.ComponentCategory{ComponentID: componentID, CategoryID: id}
		if r.categories != nil {
			jr.Category, _ = r.categories.GetByID(context.Background(), id)
		}
		c.ComponentCategories = append(c.ComponentCategories, jr)
	}
	return nil
}

func (r *fakeComponentRepo) AddSubcategories(_ context.Context, componentID uuid.UUID, ids []uuid.UUID) error {
	if r.addSubcategoriesErr != nil {
		return r.addSubcategoriesErr
	}
	c, _ := r.GetByID(context.Background(), componentID)
	for _, id := range ids {
		jr := models.ComponentSubcategory{ComponentID: componentID, SubcategoryID: id}
		if r.subcategories != nil {
			jr.Subcategory, _ = r.subcategories.GetByID(context.Background(), id)
		}
		c.ComponentSubcategories = append(c.ComponentSubcategories, jr)
	}
	return nil
}

func (r *fakeComponentRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Component, error) {
	for _, c := range r.items {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeComponentRepo) ListWithRelations(_ context.Context) ([]*models.Component, error) {
	return append([]*models.Component(nil), r.items...), nil
}

func (r *fakeComponentRepo) ListByCategory(_ context.Context, categoryID uuid.UUID, subcategoryID *uuid.UUID) ([]*models.Component, error) {
	var out []*models.Component
	for _, c := range r.items {
		inCat := false
		for _, jr := range c.ComponentCategories {
			if jr.CategoryID == categoryID {
				inCat = true
			}
		}
		if !inCat {
			continue
		}
		if subcategoryID != nil && !hasSubcategory(c, *subcategoryID) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeComponentRepo) ListBySubcategory(_ context.Context, subcategoryID uuid.UUID) ([]*models.Component, error) {
	var out []*models.Component
	for _, c := range r.items {
		if hasSubcategory(c, subcategoryID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func hasSubcategory(c *models.Component, id uuid.UUID) bool {
	for _, jr := range c.ComponentSubcategories {
		if jr.SubcategoryID == id {
			return true
		}
	}
	return false
}

func (r *fakeComponentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	for i, c := range r.items {
		if c.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			r.deleted = append(r.deleted, id)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakeComponentRepo) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var n int64
	for _, id := range ids {
		if err := r.Delete(ctx, id); err == nil {
			n++
		}
	}
	return n, nil
}

// ─── ports ───

type fakeEvents struct {
	mu     sync.Mutex
	events []*ports.CatalogEvent
}

func (e *fakeEvents) PublishCatalogEvent(_ context.Context, event *ports.CatalogEvent) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, event)
	return nil
}

func (e *fakeEvents) IsConnected() bool { return true }

func (e *fakeEvents) types() []ports.CatalogEventType {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]ports.CatalogEventType, 0, len(e.events))
	for _, ev := range e.events {
		out = append(out, ev.Type)
	}
	return out
}

// fakeCache เก็บเป็น JSON เหมือน redis
type fakeCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	gens    map[string]int64
	fills   int
	getErr  error
	deleted int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}, gens: map[string]int64{}}
}

func (c *fakeCache) GetOrSet(_ context.Context, key string, target interface{}, _ time.Duration, getter func() (interface{}, error)) error {
	c.mu.Lock()
	if c.getErr != nil {
		c.mu.Unlock()
		return c.getErr
	}
	raw, ok := c.data[key]
	c.mu.Unlock()
	if ok {
		return json.Unmarshal(raw, target)
	}

	v, err := getter()
	if err != nil {
		return err
	}
	raw, err = json.Marshal(v)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.fills++
	c.data[key] = raw
	c.mu.Unlock()
	return json.Unmarshal(raw, target)
}

func (c *fakeCache) ScanAndDelete(_ context.Context, pattern string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prefix := strings.TrimSuffix(pattern, "*")
	var n int64
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
			n++
		}
	}
	c.deleted += int(n)
	return n, nil
}

func (c *fakeCache) Generation(_ context.Context, namespace string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return 0, c.getErr
	}
	return c.gens[namespace], nil
}

func (c *fakeCache) BumpGeneration(_ context.Context, namespace string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[namespace]++
	return c.gens[namespace], nil
}

func (c *fakeCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

type fakeStorage struct {
	uploaded  map[string]string
	deleted   []string
	uploadErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploaded: map[string]string{}}
}

func (s *fakeStorage) UploadFile(_ context.Context, file io.Reader, _ int64, path string, _ string) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	body, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	s.uploaded[path] = string(body)
	return s.GetFileURL(path), nil
}

func (s *fakeStorage) DeleteFile(_ context.Context, path string) error {
	s.deleted = append(s.deleted, path)
	delete(s.uploaded, path)
	return nil
}

func (s *fakeStorage) GetFileURL(path string) string { return "https://cdn.test/" + path }
func (s *fakeStorage) GetProviderName() string      { return "fake" }

// fakeProber หน่วงตาม delay แล้วคืนขนาดจาก sizes
type fakeProber struct {
	delay time.Duration
	sizes map[string]*ports.ImageInfo
	slow  map[string]time.Duration // url ที่หน่วงนานกว่าปกติ
	fail  map[string]bool

	mu       sync.Mutex
	inFlight int
	peak     int
}

func (p *fakeProber) Probe(ctx context.Context, url string) (*ports.ImageInfo, error) {
	p.mu.Lock()
	p.inFlight++
	if p.inFlight > p.peak {
		p.peak = p.inFlight
	}
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		p.inFlight--
		p.mu.Unlock()
	}()

	delay := p.delay
	if d, ok := p.slow[url]; ok {
		delay = d
	}
	// จงใจไม่ดู ctx เพื่อทดสอบว่า enricher ไม่รอ
	time.Sleep(delay)

	if p.fail[url] {
		return nil, errors.New("dimension lookup failed")
	}
	if info, ok := p.sizes[url]; ok {
		return info, nil
	}
	return &ports.ImageInfo{Width: 800, Height: 600, Type: "png", Mime: "image/png"}, nil
}

// ─── builders ───

func newCategory(name string) *models.Category {
	return &models.Category{ID: uuid.New(), Name: name, CreatedAt: time.Now()}
}

func newSubcategory(cat *models.Category, name string) *models.Subcategory {
	return &models.Subcategory{ID: uuid.New(), CategoryID: cat.ID, Name: name, CreatedAt: time.Now(), Category: cat}
}

func strPtr(s string) *string { return &s }
