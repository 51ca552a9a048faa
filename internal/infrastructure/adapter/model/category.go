package model

// Category is seeded reference data
type Category struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	Code       string `gorm:"size:64;not null;uniqueIndex"`
	Name       string `gorm:"size:128;not null"`
	LedgerType string `gorm:"size:16;not null"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}
