package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Samoo1234/HotelCosta-sub000/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ConsumptionService maintains the per-reservation charge ledger.
// Charges are created pending; finalization and settlement happen
// through the reservation lifecycle.
type ConsumptionService struct {
	DB       *gorm.DB
	Activity *ActivityService
}

func NewConsumptionService(db *gorm.DB, activity *ActivityService) *ConsumptionService {
	return &ConsumptionService{DB: db, Activity: activity}
}

// RegisterConsumption charges a product to a checked-in reservation.
// The unit price is snapshotted from the product so later catalog
// edits never change past charges.
func (s *ConsumptionService) RegisterConsumption(reservationID, productID uint, quantity int) (*models.Consumption, error) {
	if quantity <= 0 {
		return nil, &ValidationError{Result: rejected("quantity must be positive")}
	}

	var created models.Consumption

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var r models.Reservation
		if err := tx.First(&r, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("failed to load reservation %d: %w", reservationID, err)
		}
		if r.Status != models.ReservationCheckedIn {
			return &ValidationError{Result: rejected(
				fmt.Sprintf("consumptions can only be charged to a checked-in reservation (current status: %s)", r.Status))}
		}

		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ValidationError{Result: rejected(fmt.Sprintf("product %d not found", productID))}
			}
			return fmt.Errorf("failed to load product %d: %w", productID, err)
		}
		if !product.Active {
			return &ValidationError{Result: rejected(fmt.Sprintf("product %q is inactive", product.Name))}
		}

		created = models.Consumption{
			ReservationID:   reservationID,
			ProductID:       productID,
			Quantity:        quantity,
			UnitPrice:       product.UnitPrice,
			TotalAmount:     product.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))),
			Status:          models.ConsumptionPending,
			ConsumptionDate: time.Now().UTC(),
		}
		if err := tx.Create(&created).Error; err != nil {
			return fmt.Errorf("failed to create consumption: %w", err)
		}

		return s.Activity.Record(tx, "consumption.created", "consumption", created.ID, map[string]interface{}{
			"reservation_id": reservationID,
			"product_id":     productID,
			"quantity":       quantity,
			"total_amount":   created.TotalAmount,
		})
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListByReservation returns all charges for a reservation, newest
// first, with product details loaded.
func (s *ConsumptionService) ListByReservation(reservationID uint) ([]models.Consumption, error) {
	var list []models.Consumption
	err := s.DB.Preload("Product").
		Where("reservation_id = ?", reservationID).
		Order("consumption_date DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve consumptions: %w", err)
	}
	return list, nil
}

// CancelConsumption voids a charge. Only pending charges can be
// cancelled; billed ones are already part of the checkout total.
func (s *ConsumptionService) CancelConsumption(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var c models.Consumption
		if err := tx.First(&c, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ValidationError{Result: rejected(fmt.Sprintf("consumption %d not found", id))}
			}
			return fmt.Errorf("failed to load consumption %d: %w", id, err)
		}

		if !c.Status.CanTransitionTo(models.ConsumptionCancelled) {
			return &ValidationError{Result: rejected(
				fmt.Sprintf("consumption in status %s cannot be cancelled", c.Status))}
		}

		if err := tx.Model(&models.Consumption{}).Where("id = ?", id).
			Update("status", models.ConsumptionCancelled).Error; err != nil {
			return fmt.Errorf("failed to cancel consumption %d: %w", id, err)
		}

		return s.Activity.Record(tx, "consumption.cancelled", "consumption", id, map[string]interface{}{
			"reservation_id": c.ReservationID,
			"total_amount":   c.TotalAmount,
		})
	})
}
