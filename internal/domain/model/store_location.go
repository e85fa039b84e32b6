package model

import "time"

// StoreLocation is a physical branch that can fulfil online orders.
type StoreLocation struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Slug           string    `gorm:"type:varchar(110);not null;uniqueIndex" json:"slug"`
	AddressLine    string    `gorm:"type:varchar(255)" json:"address_line"`
	Area           string    `gorm:"type:varchar(100)" json:"area"`
	City           string    `gorm:"type:varchar(100);not null;default:'Nairobi'" json:"city"`
	PhoneNumber    string    `gorm:"type:varchar(20)" json:"phone_number"`
	IsActiveOnline bool      `gorm:"not null;default:true;index" json:"is_active_online"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt      time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}
