package serviceimpl

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/Madhavladani/adeptjs64/domain/apperror"
	"github.com/Madhavladani/adeptjs64/domain/dto"
	"github.com/Madhavladani/adeptjs64/domain/models"
)

// menuCatalog categories/subcategories ปัจจุบัน เรียงตามเวลาสร้าง
type menuCatalog struct {
	categories    []*models.Category
	subcategories []*models.Subcategory

	categoryByID    map[uuid.UUID]*models.Category
	subcategoryByID map[uuid.UUID]*models.Subcategory
}

func newMenuCatalog(categories []*models.Category, subcategories []*models.Subcategory) *menuCatalog {
	c := &menuCatalog{
		categories:      categories,
		subcategories:   subcategories,
		categoryByID:    make(map[uuid.UUID]*models.Category, len(categories)),
		subcategoryByID: make(map[uuid.UUID]*models.Subcategory, len(subcategories)),
	}
	for _, cat := range categories {
		c.categoryByID[cat.ID] = cat
	}
	for _, sub := range subcategories {
		c.subcategoryByID[sub.ID] = sub
	}
	return c
}

func categoryURL(id uuid.UUID) string {
	return "/category/" + id.String()
}

func subcategoryURL(categoryID, id uuid.UUID) string {
	return "/category/" + categoryID.String() + "/" + id.String()
}

// render คืน false ถ้า item ไม่มีอยู่แล้ว
func (c *menuCatalog) render(id uuid.UUID, itemType models.MenuItemType, position int) (dto.MenuItemResponse, bool) {
	switch itemType {
	case models.MenuItemCategory:
		cat, ok := c.categoryByID[id]
		if !ok {
			return dto.MenuItemResponse{}, false
		}
		return dto.MenuItemResponse{
			ID:       cat.ID,
			Name:     cat.Name,
			Type:     models.MenuItemCategory,
			URL:      categoryURL(cat.ID),
			Position: position,
		}, true
	case models.MenuItemSubcategory:
		sub, ok := c.subcategoryByID[id]
		if !ok {
			return dto.MenuItemResponse{}, false
		}
		return dto.MenuItemResponse{
			ID:       sub.ID,
			Name:     sub.Name,
			Type:     models.MenuItemSubcategory,
			URL:      subcategoryURL(sub.CategoryID, sub.ID),
			Position: position,
		}, true
	}
	return dto.MenuItemResponse{}, false
}

// resolveMenu เรียงตาม position (ค่าเท่ากันคงลำดับเดิม) แล้วตัด item ที่ถูกลบไปแล้วทิ้ง
func resolveMenu(entries []*models.MenuOrder, catalog *menuCatalog) []dto.MenuItemResponse {
	sorted := make([]*models.MenuOrder, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	items := make([]dto.MenuItemResponse, 0, len(sorted))
	for _, e := range sorted {
		if item, ok := catalog.render(e.ItemID, e.ItemType, e.Position); ok {
			items = append(items, item)
		}
	}
	return items
}

// defaultMenu categories ทั้งหมดก่อน แล้วตามด้วย subcategories
func defaultMenu(catalog *menuCatalog) []dto.MenuItemResponse {
	items := make([]dto.MenuItemResponse, 0, len(catalog.categories)+len(catalog.subcategories))
	for _, cat := range catalog.categories {
		item, _ := catalog.render(cat.ID, models.MenuItemCategory, len(items))
		items = append(items, item)
	}
	for _, sub := range catalog.subcategories {
		item, _ := catalog.render(sub.ID, models.MenuItemSubcategory, len(items))
		items = append(items, item)
	}
	return items
}

// planReconcile หา item ที่ยังไม่มีในเมนู ต่อท้ายหลัง position สูงสุด
func planReconcile(entries []*models.MenuOrder, catalog *menuCatalog) (added []*models.MenuOrder, categoriesAdded, subcategoriesAdded int) {
	existing := make(map[uuid.UUID]struct{}, len(entries))
	next := 0
	for _, e := range entries {
		existing[e.ItemID] = struct{}{}
		if e.Position >= next {
			next = e.Position + 1
		}
	}

	for _, cat := range catalog.categories {
		if _, ok := existing[cat.ID]; ok {
			continue
		}
		added = append(added, &models.MenuOrder{ItemID: cat.ID, ItemType: models.MenuItemCategory, Position: next})
		next++
		categoriesAdded++
	}
	for _, sub := range catalog.subcategories {
		if _, ok := existing[sub.ID]; ok {
			continue
		}
		added = append(added, &models.MenuOrder{ItemID: sub.ID, ItemType: models.MenuItemSubcategory, Position: next})
		next++
		subcategoriesAdded++
	}
	return added, categoriesAdded, subcategoriesAdded
}

// buildMenuEntries แปลงลำดับที่ส่งมาเป็นแถว, id ซ้ำถือว่า invalid
func buildMenuEntries(items []dto.MenuOrderItem) ([]*models.MenuOrder, error) {
	seen := make(map[uuid.UUID]struct{}, len(items))
	entries := make([]*models.MenuOrder, 0, len(items))

	for i, item := range items {
		if !item.Type.IsValid() {
			return nil, apperror.Validation("items", fmt.Sprintf("item %d has invalid type %q", i, item.Type))
		}
		if _, dup := seen[item.ID]; dup {
			return nil, apperror.Validation("items", fmt.Sprintf("duplicate item id %s", item.ID))
		}
		seen[item.ID] = struct{}{}

		entries = append(entries, &models.MenuOrder{
			ItemID:   item.ID,
			ItemType: item.Type,
			Position: i,
		})
	}
	return entries, nil
}
