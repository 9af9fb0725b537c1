package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Samoo1234/HotelCosta-sub000/models"

	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product_not_found")

type ProductService struct {
	DB *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{DB: db}
}

func (s *ProductService) Create(product *models.Product) error {
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" {
		return &ValidationError{Result: rejected("product name is required")}
	}
	if product.UnitPrice.IsNegative() {
		return &ValidationError{Result: rejected("unit price cannot be negative")}
	}
	if err := s.DB.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetAll lists products; activeOnly hides discontinued catalog items.
func (s *ProductService) GetAll(activeOnly bool) ([]models.Product, error) {
	q := s.DB.Order("category ASC, name ASC")
	if activeOnly {
		q = q.Where("active = ?", true)
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	return products, nil
}

func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to retrieve product %d: %w", id, err)
	}
	return &product, nil
}

func (s *ProductService) Update(id uint, fields map[string]interface{}) error {
	delete(fields, "id")
	delete(fields, "created_at")
	delete(fields, "updated_at")
	delete(fields, "deleted_at")

	result := s.DB.Model(&models.Product{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update product %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (s *ProductService) Delete(id uint) error {
	result := s.DB.Delete(&models.Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
