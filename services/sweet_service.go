package services

import (
	"errors"
	"strings"

	"sweet-shop/dto"
	"sweet-shop/models"
	"sweet-shop/repositories"

	"gorm.io/gorm"
)

type ISweetService interface {
	FindAll() (*[]models.Sweet, error)
	FindById(sweetID uint) (*models.Sweet, error)
	Create(input dto.CreateSweetInput) (*models.Sweet, error)
	Search(name string, category string, minPrice *float64, maxPrice *float64) (*[]models.Sweet, error)
	Update(sweetID uint, input dto.UpdateSweetInput) (*models.Sweet, bool, error)
	Delete(sweetID uint) error
}

type SweetService struct {
	repository repositories.ISweetRepository
}

func NewSweetService(repository repositories.ISweetRepository) ISweetService {
	return &SweetService{repository: repository}
}

func (s *SweetService) FindAll() (*[]models.Sweet, error) {
	return s.repository.FindAll()
}

func (s *SweetService) FindById(sweetID uint) (*models.Sweet, error) {
	sweet, err := s.repository.FindById(sweetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSweetNotFound
		}
		return nil, err
	}
	return sweet, nil
}

func (s *SweetService) Create(input dto.CreateSweetInput) (*models.Sweet, error) {
	name := strings.TrimSpace(input.Name)
	category := strings.TrimSpace(input.Category)

	if name == "" {
		return nil, errMissingField("name")
	}
	if category == "" {
		return nil, errMissingField("category")
	}
	if input.Price == nil {
		return nil, errMissingField("price")
	}
	if *input.Price <= 0 {
		return nil, ErrInvalidPrice
	}

	quantity := 0
	if input.Quantity != nil {
		quantity = *input.Quantity
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	if _, err := s.repository.FindByName(name); err == nil {
		return nil, ErrDuplicateName
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	newSweet := models.Sweet{
		Name:     name,
		Category: category,
		Price:    *input.Price,
		Quantity: quantity,
	}
	createdSweet, err := s.repository.Create(newSweet)
	if err != nil {
		// A concurrent create can slip past the lookup; the partial unique
		// index on live names catches it at insert time.
		if isDuplicateKeyError(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return createdSweet, nil
}

func (s *SweetService) Search(name string, category string, minPrice *float64, maxPrice *float64) (*[]models.Sweet, error) {
	if minPrice != nil && *minPrice < 0 {
		return nil, ErrNegativeMinPrice
	}
	if maxPrice != nil && *maxPrice < 0 {
		return nil, ErrNegativeMaxPrice
	}
	if minPrice != nil && maxPrice != nil && *minPrice > *maxPrice {
		return nil, ErrInvalidPriceRange
	}

	return s.repository.Search(strings.TrimSpace(name), strings.TrimSpace(category), minPrice, maxPrice)
}

// Update applies only the fields present in the input. The second return value
// is false when no recognized field produced a change.
func (s *SweetService) Update(sweetID uint, input dto.UpdateSweetInput) (*models.Sweet, bool, error) {
	targetSweet, err := s.FindById(sweetID)
	if err != nil {
		return nil, false, err
	}

	updates := map[string]interface{}{}

	if input.Name != nil {
		newName := strings.TrimSpace(*input.Name)
		if newName != "" && newName != targetSweet.Name {
			exists, err := s.repository.ExistsOtherWithName(newName, sweetID)
			if err != nil {
				return nil, false, err
			}
			if exists {
				return nil, false, ErrDuplicateName
			}
			updates["name"] = newName
		}
	}

	if input.Category != nil {
		newCategory := strings.TrimSpace(*input.Category)
		if newCategory != "" {
			updates["category"] = newCategory
		}
	}

	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, false, ErrInvalidPrice
		}
		updates["price"] = *input.Price
	}

	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, false, ErrNegativeQuantity
		}
		updates["quantity"] = *input.Quantity
	}

	if len(updates) == 0 {
		return targetSweet, false, nil
	}

	updatedSweet, err := s.repository.Update(sweetID, updates)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, false, ErrSweetNotFound
		case isDuplicateKeyError(err):
			return nil, false, ErrDuplicateName
		default:
			return nil, false, err
		}
	}
	return updatedSweet, true, nil
}

func (s *SweetService) Delete(sweetID uint) error {
	err := s.repository.Delete(sweetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrSweetNotFound
	}
	return err
}
