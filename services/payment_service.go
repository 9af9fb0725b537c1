package services

import (
	"errors"
	"fmt"

	"github.com/Samoo1234/HotelCosta-sub000/models"

	"gorm.io/gorm"
)

var ErrPaymentNotFound = errors.New("payment_not_found")

// PaymentService is read-only: payments are only created by the
// checkout flow in ReservationService.
type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

func (s *PaymentService) GetAll() ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.DB.Order("payment_date DESC").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve payments: %w", err)
	}
	return payments, nil
}

func (s *PaymentService) GetByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.DB.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to retrieve payment %d: %w", id, err)
	}
	return &payment, nil
}

func (s *PaymentService) GetByReservation(reservationID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.DB.Where("reservation_id = ?", reservationID).
		Order("payment_date DESC").
		Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payments for reservation %d: %w", reservationID, err)
	}
	return payments, nil
}
