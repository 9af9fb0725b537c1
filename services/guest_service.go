package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Samoo1234/HotelCosta-sub000/models"

	"gorm.io/gorm"
)

var ErrGuestNotFound = errors.New("guest_not_found")

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

func (s *GuestService) Create(guest *models.Guest) error {
	guest.FullName = strings.TrimSpace(guest.FullName)
	if guest.FullName == "" {
		return &ValidationError{Result: rejected("guest name is required")}
	}
	if err := s.DB.Create(guest).Error; err != nil {
		return fmt.Errorf("failed to create guest: %w", err)
	}
	return nil
}

// GetAll lists guests, optionally filtered by a name/email search term.
func (s *GuestService) GetAll(search string) ([]models.Guest, error) {
	q := s.DB.Order("full_name ASC")
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var guests []models.Guest
	if err := q.Find(&guests).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve guests: %w", err)
	}
	return guests, nil
}

func (s *GuestService) GetByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("failed to retrieve guest %d: %w", id, err)
	}
	return &guest, nil
}

func (s *GuestService) Update(id uint, fields map[string]interface{}) error {
	delete(fields, "id")
	delete(fields, "created_at")
	delete(fields, "updated_at")
	delete(fields, "deleted_at")

	result := s.DB.Model(&models.Guest{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update guest %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGuestNotFound
	}
	return nil
}

func (s *GuestService) Delete(id uint) error {
	result := s.DB.Delete(&models.Guest{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete guest %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGuestNotFound
	}
	return nil
}
