package repositories

import (
	"strings"
	"time"

	"sweet-shop/models"

	"gorm.io/gorm"
)

type ISweetRepository interface {
	FindAll() (*[]models.Sweet, error)
	FindById(sweetID uint) (*models.Sweet, error)
	FindByName(name string) (*models.Sweet, error)
	ExistsOtherWithName(name string, excludeID uint) (bool, error)
	Search(name string, category string, minPrice *float64, maxPrice *float64) (*[]models.Sweet, error)
	Create(newSweet models.Sweet) (*models.Sweet, error)
	Update(sweetID uint, updates map[string]interface{}) (*models.Sweet, error)
	Delete(sweetID uint) error
	AdjustQuantity(sweetID uint, delta int) (bool, error)
}

type SweetRepository struct {
	db *gorm.DB
}

func NewSweetRepository(db *gorm.DB) ISweetRepository {
	return &SweetRepository{db: db}
}

func (r *SweetRepository) FindAll() (*[]models.Sweet, error) {
	var sweets []models.Sweet
	result := r.db.Order("name asc").Find(&sweets)
	if result.Error != nil {
		return nil, result.Error
	}
	return &sweets, nil
}

func (r *SweetRepository) FindById(sweetID uint) (*models.Sweet, error) {
	var sweet models.Sweet
	result := r.db.First(&sweet, "id = ?", sweetID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &sweet, nil
}

// FindByName matches the full name, ignoring case.
func (r *SweetRepository) FindByName(name string) (*models.Sweet, error) {
	var sweet models.Sweet
	result := r.db.First(&sweet, "LOWER(name) = LOWER(?)", name)
	if result.Error != nil {
		return nil, result.Error
	}
	return &sweet, nil
}

// ExistsOtherWithName reports whether any sweet other than excludeID already
// uses the given name, ignoring case.
func (r *SweetRepository) ExistsOtherWithName(name string, excludeID uint) (bool, error) {
	var count int64
	result := r.db.Model(&models.Sweet{}).
		Where("LOWER(name) = LOWER(?) AND id <> ?", name, excludeID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func (r *SweetRepository) Search(name string, category string, minPrice *float64, maxPrice *float64) (*[]models.Sweet, error) {
	query := r.db.Model(&models.Sweet{})

	if name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if category != "" {
		query = query.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(category)+"%")
	}
	if minPrice != nil {
		query = query.Where("price >= ?", *minPrice)
	}
	if maxPrice != nil {
		query = query.Where("price <= ?", *maxPrice)
	}

	var sweets []models.Sweet
	result := query.Order("name asc").Find(&sweets)
	if result.Error != nil {
		return nil, result.Error
	}
	return &sweets, nil
}

func (r *SweetRepository) Create(newSweet models.Sweet) (*models.Sweet, error) {
	result := r.db.Create(&newSweet)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newSweet, nil
}

func (r *SweetRepository) Update(sweetID uint, updates map[string]interface{}) (*models.Sweet, error) {
	updates["updated_at"] = time.Now()

	result := r.db.Model(&models.Sweet{}).
		Where("id = ?", sweetID).
		Updates(updates)

	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var updatedSweet models.Sweet
	if err := r.db.First(&updatedSweet, "id = ?", sweetID).Error; err != nil {
		return nil, err
	}
	return &updatedSweet, nil
}

func (r *SweetRepository) Delete(sweetID uint) error {
	result := r.db.Delete(&models.Sweet{}, "id = ?", sweetID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AdjustQuantity applies a single conditional update: the delta is written only
// if the resulting quantity stays non-negative at write time. The check and the
// write are one statement, so concurrent adjustments cannot overdraw stock.
// Returns false when the predicate did not hold (or the sweet is gone).
func (r *SweetRepository) AdjustQuantity(sweetID uint, delta int) (bool, error) {
	result := r.db.Model(&models.Sweet{}).
		Where("id = ? AND quantity + ? >= 0", sweetID, delta).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", delta),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
