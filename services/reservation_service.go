package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Samoo1234/HotelCosta-sub000/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrReservationNotFound = errors.New("reservation_not_found")

// StatusUpdateResult reports a completed lifecycle transition back to
// the caller, including warnings that must be displayed but do not
// block the operation.
type StatusUpdateResult struct {
	PreviousStatus    models.ReservationStatus `json:"previous_status"`
	NewStatus         models.ReservationStatus `json:"new_status"`
	Message           string                   `json:"message"`
	RoomStatus        models.RoomStatus        `json:"room_status"`
	RoomStatusMessage string                   `json:"room_status_message"`
	Warnings          []string                 `json:"warnings,omitempty"`
}

// CheckOutResult extends StatusUpdateResult with the billing breakdown
// produced at checkout.
type CheckOutResult struct {
	StatusUpdateResult
	PaymentID         uint            `json:"payment_id"`
	PaymentReference  string          `json:"payment_reference"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	StayAmount        decimal.Decimal `json:"stay_amount"`
	ConsumptionAmount decimal.Decimal `json:"consumption_amount"`
	ConsumptionsCount int             `json:"consumptions_count"`
	StayDuration      int             `json:"stay_duration"`
}

// FinalizeResult reports a finalize-consumptions run. "Nothing
// pending" is a success with UpdatedCount zero, never an error.
type FinalizeResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	UpdatedCount int    `json:"updated_count"`
}

// ReservationService drives the reservation state machine. Every
// mutating operation runs in one transaction with a row lock on the
// reservation, writes the cascaded room status after the reservation
// write, and records one audit entry per mutation.
type ReservationService struct {
	DB       *gorm.DB
	Rules    *RulesEngine
	Activity *ActivityService
	Logger   *zap.Logger
}

func NewReservationService(db *gorm.DB, rules *RulesEngine, activity *ActivityService, logger *zap.Logger) *ReservationService {
	return &ReservationService{DB: db, Rules: rules, Activity: activity, Logger: logger}
}

// lockReservation fetches the reservation with a row lock and loads
// its room. The lock serializes concurrent transitions on the same
// reservation for the duration of the transaction.
func lockReservation(tx *gorm.DB, id uint) (models.Reservation, error) {
	q := tx
	// SQLite has no row locks; its writes serialize on the database
	// lock instead.
	if tx.Dialector.Name() != "sqlite" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var r models.Reservation
	if err := q.First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r, ErrReservationNotFound
		}
		return r, fmt.Errorf("failed to load reservation %d: %w", id, err)
	}
	if r.RoomID != 0 {
		if err := tx.First(&r.Room, r.RoomID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return r, fmt.Errorf("failed to load room %d: %w", r.RoomID, err)
		}
	}
	return r, nil
}

func warningsOf(res ValidationResult) []string {
	if res.IsWarning() {
		return []string{res.Message}
	}
	return nil
}

// PerformCheckIn transitions a confirmed reservation to checked_in and
// marks the room occupied.
func (s *ReservationService) PerformCheckIn(id uint) (*StatusUpdateResult, error) {
	var result *StatusUpdateResult

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		r, err := lockReservation(tx, id)
		if err != nil {
			return err
		}

		res := s.Rules.ValidateCheckIn(r)
		if !res.Valid {
			return &ValidationError{Result: res}
		}
		warnings := warningsOf(res)

		now := time.Now().UTC()
		if err := tx.Model(&models.Reservation{}).Where("id = ?", r.ID).Updates(map[string]interface{}{
			"status":               models.ReservationCheckedIn,
			"actual_check_in_date": now,
		}).Error; err != nil {
			return fmt.Errorf("failed to update reservation %d: %w", r.ID, err)
		}

		if err := tx.Model(&models.Room{}).Where("id = ?", r.RoomID).
			Update("status", models.RoomOccupied).Error; err != nil {
			return fmt.Errorf("failed to update room %d status: %w", r.RoomID, err)
		}

		if err := s.Activity.Record(tx, "reservation.check_in", "reservation", r.ID, map[string]interface{}{
			"previous_status": r.Status,
			"new_status":      models.ReservationCheckedIn,
			"guest_id":        r.GuestID,
			"room_id":         r.RoomID,
			"warnings":        warnings,
		}); err != nil {
			return err
		}

		result = &StatusUpdateResult{
			PreviousStatus:    r.Status,
			NewStatus:         models.ReservationCheckedIn,
			Message:           "check-in completed",
			RoomStatus:        models.RoomOccupied,
			RoomStatusMessage: fmt.Sprintf("room %s is now occupied", r.Room.Number),
			Warnings:          warnings,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("reservation checked in",
		zap.Uint("reservation_id", id),
		zap.Strings("warnings", result.Warnings))
	return result, nil
}

// stayDuration counts nights from the actual check-in to the checkout
// moment, rounding partial nights up, never below one.
func stayDuration(r models.Reservation, checkout time.Time) int {
	start := r.CheckInDate
	if r.ActualCheckInDate != nil {
		start = *r.ActualCheckInDate
	}
	nights := int(math.Ceil(checkout.Sub(start).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights
}

// PerformCheckOut settles the stay: it creates the payment, marks all
// billed consumptions paid with the new payment id, flips the
// reservation to checked_out and releases the room, in that order.
func (s *ReservationService) PerformCheckOut(id uint, paymentMethod string) (*CheckOutResult, error) {
	if strings.TrimSpace(paymentMethod) == "" {
		return nil, &ValidationError{Result: rejected("payment method is required")}
	}

	var result *CheckOutResult

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		r, err := lockReservation(tx, id)
		if err != nil {
			return err
		}

		var consumptions []models.Consumption
		if err := tx.Where("reservation_id = ?", r.ID).Find(&consumptions).Error; err != nil {
			return fmt.Errorf("failed to load consumptions for reservation %d: %w", r.ID, err)
		}

		res := s.Rules.ValidateCheckOut(r, consumptions)
		if !res.Valid {
			return &ValidationError{Result: res}
		}
		warnings := warningsOf(res)

		consumptionTotal := decimal.Zero
		billedCount := 0
		for _, c := range consumptions {
			if c.Status == models.ConsumptionBilled {
				consumptionTotal = consumptionTotal.Add(c.TotalAmount)
				billedCount++
			}
		}
		totalAmount := r.TotalAmount.Add(consumptionTotal)

		now := time.Now().UTC()
		payment := models.Payment{
			ReservationID: r.ID,
			ReferenceCode: uuid.NewString(),
			Amount:        totalAmount,
			Method:        paymentMethod,
			Status:        models.PaymentCompleted,
			PaymentDate:   now,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		// Consumptions must be settled after the payment exists (they
		// reference its id) and before the reservation flips.
		if billedCount > 0 {
			if err := tx.Model(&models.Consumption{}).
				Where("reservation_id = ? AND status = ?", r.ID, models.ConsumptionBilled).
				Updates(map[string]interface{}{
					"status":     models.ConsumptionPaid,
					"payment_id": payment.ID,
				}).Error; err != nil {
				return fmt.Errorf("failed to settle consumptions: %w", err)
			}
		}

		if err := tx.Model(&models.Reservation{}).Where("id = ?", r.ID).Updates(map[string]interface{}{
			"status":                models.ReservationCheckedOut,
			"actual_check_out_date": now,
			"payment_id":            payment.ID,
		}).Error; err != nil {
			return fmt.Errorf("failed to update reservation %d: %w", r.ID, err)
		}

		if err := tx.Model(&models.Room{}).Where("id = ?", r.RoomID).
			Update("status", models.RoomAvailable).Error; err != nil {
			return fmt.Errorf("failed to update room %d status: %w", r.RoomID, err)
		}

		if err := s.Activity.Record(tx, "payment.created", "payment", payment.ID, map[string]interface{}{
			"reservation_id":     r.ID,
			"amount":             totalAmount,
			"stay_amount":        r.TotalAmount,
			"consumption_amount": consumptionTotal,
			"method":             paymentMethod,
		}); err != nil {
			return err
		}
		if err := s.Activity.Record(tx, "reservation.check_out", "reservation", r.ID, map[string]interface{}{
			"previous_status": r.Status,
			"new_status":      models.ReservationCheckedOut,
			"guest_id":        r.GuestID,
			"room_id":         r.RoomID,
			"payment_id":      payment.ID,
			"total_amount":    totalAmount,
			"warnings":        warnings,
		}); err != nil {
			return err
		}

		result = &CheckOutResult{
			StatusUpdateResult: StatusUpdateResult{
				PreviousStatus:    r.Status,
				NewStatus:         models.ReservationCheckedOut,
				Message:           "checkout completed",
				RoomStatus:        models.RoomAvailable,
				RoomStatusMessage: fmt.Sprintf("room %s is available again", r.Room.Number),
				Warnings:          warnings,
			},
			PaymentID:         payment.ID,
			PaymentReference:  payment.ReferenceCode,
			TotalAmount:       totalAmount,
			StayAmount:        r.TotalAmount,
			ConsumptionAmount: consumptionTotal,
			ConsumptionsCount: billedCount,
			StayDuration:      stayDuration(r, now),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("reservation checked out",
		zap.Uint("reservation_id", id),
		zap.Uint("payment_id", result.PaymentID),
		zap.String("total_amount", result.TotalAmount.StringFixed(2)))
	return result, nil
}

// CancelReservation cancels a confirmed or checked-in reservation,
// appends the reason to the special requests and releases the room.
func (s *ReservationService) CancelReservation(id uint, reason string) (*StatusUpdateResult, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, &ValidationError{Result: rejected("cancellation reason is required")}
	}

	var result *StatusUpdateResult

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		r, err := lockReservation(tx, id)
		if err != nil {
			return err
		}

		res := s.Rules.ValidateCancellation(r)
		if !res.Valid {
			return &ValidationError{Result: res}
		}
		warnings := warningsOf(res)

		// Stored note format is user-facing data in an existing
		// Portuguese-language deployment; keep it verbatim.
		note := "Motivo do cancelamento: " + reason
		specialRequests := note
		if r.SpecialRequests != "" {
			specialRequests = r.SpecialRequests + "\n\n" + note
		}

		now := time.Now().UTC()
		if err := tx.Model(&models.Reservation{}).Where("id = ?", r.ID).Updates(map[string]interface{}{
			"status":              models.ReservationCancelled,
			"cancellation_reason": reason,
			"cancellation_date":   now,
			"special_requests":    specialRequests,
		}).Error; err != nil {
			return fmt.Errorf("failed to update reservation %d: %w", r.ID, err)
		}

		if err := tx.Model(&models.Room{}).Where("id = ?", r.RoomID).
			Update("status", models.RoomAvailable).Error; err != nil {
			return fmt.Errorf("failed to update room %d status: %w", r.RoomID, err)
		}

		if err := s.Activity.Record(tx, "reservation.cancelled", "reservation", r.ID, map[string]interface{}{
			"previous_status": r.Status,
			"new_status":      models.ReservationCancelled,
			"guest_id":        r.GuestID,
			"room_id":         r.RoomID,
			"reason":          reason,
			"warnings":        warnings,
		}); err != nil {
			return err
		}

		result = &StatusUpdateResult{
			PreviousStatus:    r.Status,
			NewStatus:         models.ReservationCancelled,
			Message:           "reservation cancelled",
			RoomStatus:        models.RoomAvailable,
			RoomStatusMessage: fmt.Sprintf("room %s is available again", r.Room.Number),
			Warnings:          warnings,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("reservation cancelled", zap.Uint("reservation_id", id))
	return result, nil
}

// MarkNoShow marks a confirmed reservation whose guest never arrived.
func (s *ReservationService) MarkNoShow(id uint) (*StatusUpdateResult, error) {
	var result *StatusUpdateResult

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		r, err := lockReservation(tx, id)
		if err != nil {
			return err
		}

		res := s.Rules.ValidateNoShow(r)
		if !res.Valid {
			return &ValidationError{Result: res}
		}
		warnings := warningsOf(res)

		if err := tx.Model(&models.Reservation{}).Where("id = ?", r.ID).
			Update("status", models.ReservationNoShow).Error; err != nil {
			return fmt.Errorf("failed to update reservation %d: %w", r.ID, err)
		}

		if err := tx.Model(&models.Room{}).Where("id = ?", r.RoomID).
			Update("status", models.RoomAvailable).Error; err != nil {
			return fmt.Errorf("failed to update room %d status: %w", r.RoomID, err)
		}

		if err := s.Activity.Record(tx, "reservation.no_show", "reservation", r.ID, map[string]interface{}{
			"previous_status": r.Status,
			"new_status":      models.ReservationNoShow,
			"guest_id":        r.GuestID,
			"room_id":         r.RoomID,
			"warnings":        warnings,
		}); err != nil {
			return err
		}

		result = &StatusUpdateResult{
			PreviousStatus:    r.Status,
			NewStatus:         models.ReservationNoShow,
			Message:           "reservation marked as no-show",
			RoomStatus:        models.RoomAvailable,
			RoomStatusMessage: fmt.Sprintf("room %s is available again", r.Room.Number),
			Warnings:          warnings,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("reservation marked as no-show", zap.Uint("reservation_id", id))
	return result, nil
}

// FinalizeConsumptions moves all pending consumptions of a reservation
// to billed, the prerequisite for checkout. Nothing pending is a
// success with UpdatedCount zero.
func (s *ReservationService) FinalizeConsumptions(id uint) (*FinalizeResult, error) {
	var result *FinalizeResult

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		r, err := lockReservation(tx, id)
		if err != nil {
			return err
		}

		var consumptions []models.Consumption
		if err := tx.Where("reservation_id = ?", r.ID).Find(&consumptions).Error; err != nil {
			return fmt.Errorf("failed to load consumptions for reservation %d: %w", r.ID, err)
		}

		res := s.Rules.ValidateFinalizeConsumptions(consumptions)
		if !res.Valid {
			if res.Severity == SeverityInfo {
				result = &FinalizeResult{Success: true, Message: res.Message, UpdatedCount: 0}
				return nil
			}
			return &ValidationError{Result: res}
		}

		ids := make([]uint, 0, len(consumptions))
		total := decimal.Zero
		for _, c := range consumptions {
			if c.Status == models.ConsumptionPending {
				ids = append(ids, c.ID)
				total = total.Add(c.TotalAmount)
			}
		}

		if err := tx.Model(&models.Consumption{}).
			Where("reservation_id = ? AND status = ?", r.ID, models.ConsumptionPending).
			Update("status", models.ConsumptionBilled).Error; err != nil {
			return fmt.Errorf("failed to bill consumptions: %w", err)
		}

		if err := s.Activity.Record(tx, "consumptions.finalized", "reservation", r.ID, map[string]interface{}{
			"consumption_ids": ids,
			"count":           len(ids),
			"total_amount":    total,
		}); err != nil {
			return err
		}

		result = &FinalizeResult{
			Success:      true,
			Message:      fmt.Sprintf("%d consumption(s) billed", len(ids)),
			UpdatedCount: len(ids),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("consumptions finalized",
		zap.Uint("reservation_id", id),
		zap.Int("updated_count", result.UpdatedCount))
	return result, nil
}

// HasUnpaidConsumptions reports whether any pending consumption exists
// for the reservation. The UI uses it to gate checkout initiation.
func (s *ReservationService) HasUnpaidConsumptions(id uint) (bool, error) {
	var count int64
	err := s.DB.Model(&models.Consumption{}).
		Where("reservation_id = ? AND status = ?", id, models.ConsumptionPending).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count pending consumptions: %w", err)
	}
	return count > 0, nil
}
