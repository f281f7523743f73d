package enums

import "fmt"

// ItemCategory identifies one of the fixed rentable-item categories. Every
// inventory record belongs to exactly one category and is addressed by the
// (category, id) pair.
type ItemCategory string

const (
	ItemCategoryLinens    ItemCategory = "linens"
	ItemCategoryCutlery   ItemCategory = "cutlery"
	ItemCategoryChinaware ItemCategory = "chinaware"
	ItemCategoryGlassware ItemCategory = "glassware"
	ItemCategoryChairs    ItemCategory = "chairs"
	ItemCategoryTables    ItemCategory = "tables"
	ItemCategoryLounge    ItemCategory = "lounge"
	ItemCategoryBarstool  ItemCategory = "barstool"
	ItemCategoryTent      ItemCategory = "tent"
	ItemCategoryStage     ItemCategory = "stage"
	ItemCategoryMisc      ItemCategory = "misc"
)

var validItemCategories = []ItemCategory{
	ItemCategoryLinens,
	ItemCategoryCutlery,
	ItemCategoryChinaware,
	ItemCategoryGlassware,
	ItemCategoryChairs,
	ItemCategoryTables,
	ItemCategoryLounge,
	ItemCategoryBarstool,
	ItemCategoryTent,
	ItemCategoryStage,
	ItemCategoryMisc,
}

// ItemCategories returns the canonical category list in display order.
func ItemCategories() []ItemCategory {
	out := make([]ItemCategory, len(validItemCategories))
	copy(out, validItemCategories)
	return out
}

// IsValid checks whether the given category matches the canonical enum.
func (c ItemCategory) IsValid() bool {
	for _, candidate := range validItemCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// DisplayName returns the human-facing label used on notifications and reports.
func (c ItemCategory) DisplayName() string {
	switch c {
	case ItemCategoryLinens:
		return "Mantelería"
	case ItemCategoryCutlery:
		return "Cubiertos"
	case ItemCategoryChinaware:
		return "Loza"
	case ItemCategoryGlassware:
		return "Cristalería"
	case ItemCategoryChairs:
		return "Sillas"
	case ItemCategoryTables:
		return "Mesas"
	case ItemCategoryLounge:
		return "Salas-Lounge"
	case ItemCategoryBarstool:
		return "Periqueras"
	case ItemCategoryTent:
		return "Carpas"
	case ItemCategoryStage:
		return "Pistas y Tarimas"
	case ItemCategoryMisc:
		return "Extras"
	}
	return string(c)
}

// ParseItemCategory converts raw strings into ItemCategory.
func ParseItemCategory(value string) (ItemCategory, error) {
	for _, candidate := range validItemCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid item category %q", value)
}
