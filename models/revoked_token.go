package models

import "gorm.io/gorm"

// RevokedToken holds the SHA-256 of a logged-out access token until it expires.
type RevokedToken struct {
	gorm.Model
	TokenHash string `gorm:"not null;unique;index"`
	ExpiresAt int64  `gorm:"not null;index"`
}
