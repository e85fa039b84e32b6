package model

import (
	"time"

	"gorm.io/gorm"
)

// MenuItem is a purchasable catalog entry. Prices are whole KES.
type MenuItem struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null;index" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Price       int64          `gorm:"not null" json:"price"`
	ImageURL    string         `gorm:"type:varchar(500)" json:"image_url"`
	CategoryID  *int64         `gorm:"index" json:"category_id"`
	BrandID     *int64         `gorm:"index" json:"brand_id"`
	Dimensions  string         `gorm:"type:varchar(200)" json:"dimensions"`
	Material    string         `gorm:"type:varchar(200)" json:"material"`
	IsAvailable bool           `gorm:"not null;default:true;index" json:"is_available"`
	CreatedAt   time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
