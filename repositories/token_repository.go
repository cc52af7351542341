package repositories

import (
	"time"

	"sweet-shop/models"

	"gorm.io/gorm"
)

type ITokenRepository interface {
	Revoke(tokenHash string, expiresAt int64) error
	IsRevoked(tokenHash string) (bool, error)
	PurgeExpired() error
}

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) ITokenRepository {
	return &TokenRepository{db: db}
}

// Revoke is idempotent: logging out twice with the same token is not an error.
func (r *TokenRepository) Revoke(tokenHash string, expiresAt int64) error {
	revokedToken := models.RevokedToken{
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
	}
	result := r.db.Where("token_hash = ?", tokenHash).FirstOrCreate(&revokedToken)
	return result.Error
}

func (r *TokenRepository) IsRevoked(tokenHash string) (bool, error) {
	var revokedToken models.RevokedToken
	result := r.db.Where("token_hash = ?", tokenHash).First(&revokedToken)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, result.Error
	}
	return true, nil
}

func (r *TokenRepository) PurgeExpired() error {
	now := time.Now().Unix()
	result := r.db.Where("expires_at < ?", now).Delete(&models.RevokedToken{})
	return result.Error
}
