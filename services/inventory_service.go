package services

import (
	"errors"

	"sweet-shop/models"
	"sweet-shop/repositories"

	"gorm.io/gorm"
)

type IInventoryService interface {
	Purchase(sweetID uint, quantity int) (*models.Sweet, error)
	Restock(sweetID uint, quantity int) (*models.Sweet, error)
}

type InventoryService struct {
	repository repositories.ISweetRepository
}

func NewInventoryService(repository repositories.ISweetRepository) IInventoryService {
	return &InventoryService{repository: repository}
}

// Purchase decrements stock through a single conditional update, so two
// concurrent purchases can never jointly drive the quantity negative.
func (s *InventoryService) Purchase(sweetID uint, quantity int) (*models.Sweet, error) {
	if _, err := s.findSweet(sweetID); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, ErrNonPositiveQuantity
	}

	applied, err := s.repository.AdjustQuantity(sweetID, -quantity)
	if err != nil {
		return nil, err
	}
	if !applied {
		// The predicate failed at write time: the sweet is gone or the stock
		// ran short. Reload to report the quantity that was actually available.
		currentSweet, err := s.findSweet(sweetID)
		if err != nil {
			return nil, err
		}
		return nil, errInsufficientStock(currentSweet.Quantity)
	}

	return s.findSweet(sweetID)
}

// Restock increments stock. The admin gate runs before this in the router.
func (s *InventoryService) Restock(sweetID uint, quantity int) (*models.Sweet, error) {
	if _, err := s.findSweet(sweetID); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, ErrNonPositiveQuantity
	}

	applied, err := s.repository.AdjustQuantity(sweetID, quantity)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, ErrSweetNotFound
	}

	return s.findSweet(sweetID)
}

func (s *InventoryService) findSweet(sweetID uint) (*models.Sweet, error) {
	sweet, err := s.repository.FindById(sweetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSweetNotFound
		}
		return nil, err
	}
	return sweet, nil
}
