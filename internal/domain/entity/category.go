package entity

import "strings"

// LedgerType groups categories for report classification
type LedgerType string

// Ledger types
const (
	LedgerIncome    LedgerType = "income"
	LedgerExpense   LedgerType = "expense"
	LedgerAsset     LedgerType = "asset"
	LedgerLiability LedgerType = "liability"
)

// Category is seeded reference data
type Category struct {
	ID         string
	Code       string
	Name       string
	LedgerType LedgerType
}

// NormalizeCategoryCode maps user or model input onto the stored code form
func NormalizeCategoryCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CategoryCatalog indexes categories by id and code
type CategoryCatalog struct {
	byID   map[string]Category
	byCode map[string]Category
	all    []Category
}

// NewCategoryCatalog builds a catalog, preserving the input order for listing
func NewCategoryCatalog(categories []Category) *CategoryCatalog {
	c := &CategoryCatalog{
		byID:   make(map[string]Category, len(categories)),
		byCode: make(map[string]Category, len(categories)),
		all:    append([]Category(nil), categories...),
	}
	for _, cat := range categories {
		c.byID[cat.ID] = cat
		c.byCode[cat.Code] = cat
	}
	return c
}

// ByID looks a category up by id
func (c *CategoryCatalog) ByID(id string) (Category, bool) {
	cat, ok := c.byID[id]
	return cat, ok
}

// ByCode looks a category up by its unique code
func (c *CategoryCatalog) ByCode(code string) (Category, bool) {
	cat, ok := c.byCode[code]
	return cat, ok
}

// All returns every category in catalog order
func (c *CategoryCatalog) All() []Category {
	return c.all
}
