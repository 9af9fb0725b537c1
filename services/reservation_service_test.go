package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Samoo1234/HotelCosta-sub000/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Uint64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named in-memory database per test keeps the connection pool on
	// one database while isolating tests from each other.
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Guest{},
		&models.Room{},
		&models.Product{},
		&models.Reservation{},
		&models.Consumption{},
		&models.Payment{},
		&models.ActivityLog{},
	))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

type fixture struct {
	db           *gorm.DB
	reservations *ReservationService
	consumptions *ConsumptionService
	guest        models.Guest
	room         models.Room
	product      models.Product
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)

	activity := NewActivityService(db)
	f := &fixture{
		db:           db,
		reservations: NewReservationService(db, NewRulesEngine(), activity, zap.NewNop()),
		consumptions: NewConsumptionService(db, activity),
	}

	f.guest = models.Guest{FullName: "Maria Silva", Email: "maria@example.com"}
	require.NoError(t, db.Create(&f.guest).Error)

	f.room = models.Room{Number: "101", Type: "Standard", Status: models.RoomReserved, PricePerNight: decimal.NewFromInt(120)}
	require.NoError(t, db.Create(&f.room).Error)

	f.product = models.Product{Name: "Mineral Water", Category: "minibar", UnitPrice: decimal.NewFromFloat(3.50), Active: true}
	require.NoError(t, db.Create(&f.product).Error)

	return f
}

// newConfirmedReservation seeds a reservation due for check-in today.
func (f *fixture) newConfirmedReservation(t *testing.T) models.Reservation {
	t.Helper()
	now := time.Now().UTC()
	checkOut := now.AddDate(0, 0, 2)
	r := models.Reservation{
		GuestID:      f.guest.ID,
		RoomID:       f.room.ID,
		CheckInDate:  now,
		CheckOutDate: &checkOut,
		TotalAmount:  decimal.NewFromInt(240),
		Status:       models.ReservationConfirmed,
	}
	require.NoError(t, f.db.Create(&r).Error)
	return r
}

func (f *fixture) roomStatus(t *testing.T) models.RoomStatus {
	t.Helper()
	var room models.Room
	require.NoError(t, f.db.First(&room, f.room.ID).Error)
	return room.Status
}

func (f *fixture) reload(t *testing.T, id uint) models.Reservation {
	t.Helper()
	var r models.Reservation
	require.NoError(t, f.db.First(&r, id).Error)
	return r
}

func TestPerformCheckIn(t *testing.T) {
	f := newFixture(t)
	r := f.newConfirmedReservation(t)

	result, err := f.reservations.PerformCheckIn(r.ID)
	require.NoError(t, err)

	assert.Equal(t, models.ReservationConfirmed, result.PreviousStatus)
	assert.Equal(t, models.ReservationCheckedIn, result.NewStatus)
	assert.Equal(t, models.RoomOccupied, result.RoomStatus)
	assert.Empty(t, result.Warnings)

	updated := f.reload(t, r.ID)
	assert.Equal(t, models.ReservationCheckedIn, updated.Status)
	assert.NotNil(t, updated.ActualCheckInDate)
	assert.Equal(t, models.RoomOccupied, f.roomStatus(t))
}

func TestPerformCheckInTwiceRejected(t *testing.T) {
	f := newFixture(t)
	r := f.newConfirmedReservation(t)

	_, err := f.reservations.PerformCheckIn(r.ID)
	require.NoError(t, err)

	_, err = f.reservations.PerformCheckIn(r.ID)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, SeverityError, vErr.Result.Severity)
	assert.Contains(t, vErr.Result.Message, "checked_in")
}

func TestPerformCheckInRoomOccupiedRejected(t *testing.T) {
	f := newFixture(t)
	r := f.newConfirmedReservation(t)

	require.NoError(t, f.db.Model(&models.Room{}).Where("id = ?", f.room.ID).
		Update("status", models.RoomOccupied).Error)

	_, err := f.reservations.PerformCheckIn(r.ID)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.NotEmpty(t, vErr.Result.Suggestions)

	// Nothing changed.
	assert.Equal(t, models.ReservationConfirmed, f.reload(t, r.ID).Status)
}

func TestCheckInCheckOutRoundTrip(t *testing.T) {
	f := newFixture(t)
	r := f.newConfirmedReservation(t)

	_, err := f.reservations.PerformCheckIn(r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomOccupied, f.roomStatus(t))

	result, err := f.reservations.PerformCheckOut(r.ID, "card")
	require.NoError(t, err)

	assert.Equal(t, models.ReservationCheckedIn, result.PreviousStatus)
	assert.Equal(t, models.ReservationCheckedOut, result.NewStatus)
	assert.Equal(t, models.RoomAvailable, f.roomStatus(t))
	assert.True(t, result.TotalAmount.Equal(decimal.NewFromInt(240)), "no consumptions: total equals stay cost")
	assert.True(t, result.ConsumptionAmount.IsZero())
	assert.Equal(t, 0, result.ConsumptionsCount)
	assert.GreaterOrEqual(t, result.StayDuration, 1)

	var payments []models.Payment
	require.NoError(t, f.db.Where("reservation_id = ?", r.ID).Find(&payments).Error)
	require.Len(t, payments, 1, "exactly one payment per checkout")
	assert.True(t, payments[0].Amount.Equal(decimal.NewFromInt(240)))
	assert.Equal(t, models.PaymentCompleted, payments[0].Status)
	assert.Equal(t, "card", payments[0].Method)
	assert.NotEmpty(t, payments[0].ReferenceCode)

	updated := f.reload(t, r.ID)
	assert.Equal(t, models.ReservationCheckedOut, updated.Status)
	require.NotNil(t, updated.PaymentID)
	assert.Equal(t, payments[0].ID, *updated.PaymentID)
	assert.NotNil(t, updated.ActualCheckOutDate)
}

func TestPerformCheckOutBlockedByPendingConsumptions(t *testing.T) {
	f := newFixture(t)
	r := f.newConfirmedReservation(t)

	_, err := f.reservations.PerformCheckIn(r.ID)
	require.NoError(t, err)

	_, err = f.consumptions.RegisterConsumption(r.ID, f.product.ID, 2)
	require.NoError(t, err)

	_, err = f.reservations.PerformCheckOut(r.ID, "cash")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Result.Message, "1 pending")

	// No payment was created by the rejected attempt.
	var count int64
	require.NoError(t, f.db.Model(&models.Payment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCheckOutSettlesBilledConsumptions(t *testing.T) {
	f := newFixture(t)
	r := f.newConfirmedReservation(t)

	_, err := f.reservations.PerformCheckIn(r.ID)
	require.NoError(t, err)

	_, err = f.consumptions.RegisterConsumption(r.ID, f.product.ID, 2) // 7.00
	require.NoError(t, err)
	_, err = f.consumptions.RegisterConsumption(r.ID, f.product.ID, 4) // 14.00
	require.NoError(t, err)

	finalize, err := f.reservations.FinalizeConsumptions(r.ID)
	require.NoError(t, err)
	assert.True(t, finalize.Success)
	assert.Equal(t, 2, finalize.UpdatedCount)

	result, err := f.reservations.PerformCheckOut(r.ID, "pix")
	require.NoError(t, err)

	assert.True(t, result.ConsumptionAmount.Equal(decimal.NewFromInt(21)))
	assert.True(t, result.TotalAmount.Equal(decimal.NewFromInt(261)), "stay 240 + consumptions 21")
	assert.Equal(t, 2, result.ConsumptionsCount)

	var consumptions []models.Consumption
	require.NoError(t, f.db.Where("reservation_id = ?", r.ID).Find(&consumptions).Error)
	require.Len(t, consumptions, 2)
	for _, c := range consumptions {
		assert.Equal(t, models.ConsumptionPaid, c.Status)
		require.NotNil(t, c.PaymentID)
		assert.Equal(t, result.PaymentID, *c.PaymentID)
	}
}

func TestCancelReservationAppendsReason(t *testing.T) {
	f := newFixture(t)
	r := f.newConfirmedReservation(t)
	require.NoError(t, f.db.Model(&models.Reservation{}).Where("id = ?", r.ID).
		Update("special_requests", "Late arrival").Error)

	result, err := f.reservations.CancelReservation(r.ID, "Guest requested")
	require.NoError(t, err)
	assert.Equal(t, models.ReservationCancelled, result.NewStatus)

	updated := f.reload(t, r.ID)
	assert.Equal(t, models.ReservationCancelled, updated.Status)
	assert.Equal(t, "Late arrival\n\nMotivo do cancelamento: Guest requested", updated.SpecialRequests)
	assert.Equal(t, "Guest requested", updated.CancellationReason)
	assert.NotNil(t, updated.CancellationDate)
	assert.Equal(t, models.RoomAvailable, f.roomStatus(t))
}

func TestCancelReservationWithoutReasonRejected(t *testing.T) {
	f := newFixture(t)
	r := f.newConfirmedReservation(t)

	_, err := f.reservations.CancelReservation(r.ID, "   ")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, models.ReservationConfirmed, f.reload(t, r.ID).Status)
}

func TestCancelCheckedOutRejected(t *testing.T) {
	f := newFixture(t)
	r := f.newConfirmedReservation(t)

	_, err := f.reservations.PerformCheckIn(r.ID)
	require.NoError(t, err)
	_, err = f.reservations.PerformCheckOut(r.ID, "cash")
	require.NoError(t, err)

	_, err = f.reservations.CancelReservation(r.ID, "too late")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestMarkNoShow(t *testing.T) {
	f := newFixture(t)
	r := f.newConfirmedReservation(t)

	result, err := f.reservations.MarkNoShow(r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationNoShow, result.NewStatus)
	assert.Equal(t, models.RoomAvailable, f.roomStatus(t))

	// Terminal: nothing else can happen.
	_, err = f.reservations.PerformCheckIn(r.ID)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestMarkNoShowBeforeScheduledDateRejected(t *testing.T) {
	f := newFixture(t)
	now := time.Now().UTC()
	r := models.Reservation{
		GuestID:     f.guest.ID,
		RoomID:      f.room.ID,
		CheckInDate: now.AddDate(0, 0, 2),
		Status:      models.ReservationConfirmed,
	}
	require.NoError(t, f.db.Create(&r).Error)

	_, err := f.reservations.MarkNoShow(r.ID)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestFinalizeConsumptionsNothingPending(t *testing.T) {
	f := newFixture(t)
	r := f.newConfirmedReservation(t)

	result, err := f.reservations.FinalizeConsumptions(r.ID)
	require.NoError(t, err, "nothing to finalize is not an error")
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.UpdatedCount)
	assert.NotEmpty(t, result.Message)
}

func TestHasUnpaidConsumptions(t *testing.T) {
	f := newFixture(t)
	r := f.newConfirmedReservation(t)

	unpaid, err := f.reservations.HasUnpaidConsumptions(r.ID)
	require.NoError(t, err)
	assert.False(t, unpaid)

	_, err = f.reservations.PerformCheckIn(r.ID)
	require.NoError(t, err)
	_, err = f.consumptions.RegisterConsumption(r.ID, f.product.ID, 1)
	require.NoError(t, err)

	unpaid, err = f.reservations.HasUnpaidConsumptions(r.ID)
	require.NoError(t, err)
	assert.True(t, unpaid)

	_, err = f.reservations.FinalizeConsumptions(r.ID)
	require.NoError(t, err)

	unpaid, err = f.reservations.HasUnpaidConsumptions(r.ID)
	require.NoError(t, err)
	assert.False(t, unpaid)
}

func TestLifecycleWritesActivityLog(t *testing.T) {
	f := newFixture(t)
	r := f.newConfirmedReservation(t)

	_, err := f.reservations.PerformCheckIn(r.ID)
	require.NoError(t, err)
	_, err = f.reservations.PerformCheckOut(r.ID, "cash")
	require.NoError(t, err)

	var actions []string
	require.NoError(t, f.db.Model(&models.ActivityLog{}).
		Where("entity_type = ? AND entity_id = ?", "reservation", r.ID).
		Order("id ASC").
		Pluck("action", &actions).Error)
	assert.Equal(t, []string{"reservation.check_in", "reservation.check_out"}, actions)

	var paymentEntries int64
	require.NoError(t, f.db.Model(&models.ActivityLog{}).
		Where("action = ?", "payment.created").
		Count(&paymentEntries).Error)
	assert.Equal(t, int64(1), paymentEntries)
}

func TestCheckInUnknownReservation(t *testing.T) {
	f := newFixture(t)
	_, err := f.reservations.PerformCheckIn(9999)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
