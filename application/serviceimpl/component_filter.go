package serviceimpl

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Madhavladani/adeptjs64/domain/dto"
)

// FilterComponents ชื่อมี query (ไม่สนตัวพิมพ์) AND อยู่ใน category ที่เลือกอย่างน้อยหนึ่ง
// AND อยู่ใน subcategory ที่เลือกอย่างน้อยหนึ่ง; ลำดับผลลัพธ์ตาม input
func FilterComponents(list []dto.ComponentResponse, filter dto.ComponentFilter) []dto.ComponentResponse {
	query := strings.ToLower(filter.Query)
	categorySet := idSet(filter.CategoryIDs)
	subcategorySet := idSet(filter.SubcategoryIDs)

	out := make([]dto.ComponentResponse, 0, len(list))
	for _, c := range list {
		if query != "" && !strings.Contains(strings.ToLower(c.Name), query) {
			continue
		}
		if len(categorySet) > 0 && !anyCategoryIn(c.Categories, categorySet) {
			continue
		}
		if len(subcategorySet) > 0 && !anySubcategoryIn(c.Subcategories, subcategorySet) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func idSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func anyCategoryIn(categories []dto.CategoryResponse, set map[uuid.UUID]struct{}) bool {
	for _, c := range categories {
		if _, ok := set[c.ID]; ok {
			return true
		}
	}
	return false
}

func anySubcategoryIn(subcategories []dto.SubcategoryResponse, set map[uuid.UUID]struct{}) bool {
	for _, s := range subcategories {
		if _, ok := set[s.ID]; ok {
			return true
		}
	}
	return false
}
