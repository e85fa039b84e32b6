package model

// Category is a node in the product category tree.
// ParentID is nil for top-level categories.
type Category struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Slug        string `gorm:"type:varchar(110);not null;uniqueIndex" json:"slug"`
	ParentID    *int64 `gorm:"index" json:"parent_id"`
	Description string `gorm:"type:text" json:"description"`
}

// Brand is a flat manufacturer list (e.g. "Ashley Furniture").
type Brand struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
}
