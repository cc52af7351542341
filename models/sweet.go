package models

import "gorm.io/gorm"

// Sweet is a catalog entry. Name uniqueness is case-insensitive and enforced
// in the service layer so a soft-deleted row doesn't block re-creating a name.
type Sweet struct {
	gorm.Model
	Name     string  `gorm:"not null;index"`
	Category string  `gorm:"not null"`
	Price    float64 `gorm:"not null"`
	Quantity int     `gorm:"not null;default:0"`
}
