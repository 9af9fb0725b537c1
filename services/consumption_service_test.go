package services

import (
	"testing"
	"time"

	"github.com/Samoo1234/HotelCosta-sub000/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterConsumptionSnapshotsPrice(t *testing.T) {
	f := newFixture(t)
	r := f.newConfirmedReservation(t)
	_, err := f.reservations.PerformCheckIn(r.ID)
	require.NoError(t, err)

	c, err := f.consumptions.RegisterConsumption(r.ID, f.product.ID, 3)
	require.NoError(t, err)

	assert.Equal(t, models.ConsumptionPending, c.Status)
	assert.True(t, c.UnitPrice.Equal(decimal.NewFromFloat(3.50)))
	assert.True(t, c.TotalAmount.Equal(decimal.NewFromFloat(10.50)))

	// Catalog edits never change past charges.
	require.NoError(t, f.db.Model(&models.Product{}).Where("id = ?", f.product.ID).
		Update("unit_price", decimal.NewFromInt(9)).Error)

	var stored models.Consumption
	require.NoError(t, f.db.First(&stored, c.ID).Error)
	assert.True(t, stored.UnitPrice.Equal(decimal.NewFromFloat(3.50)))
}

func TestRegisterConsumptionRequiresCheckedIn(t *testing.T) {
	f := newFixture(t)
	r := f.newConfirmedReservation(t)

	_, err := f.consumptions.RegisterConsumption(r.ID, f.product.ID, 1)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Result.Message, "checked-in")
}

func TestRegisterConsumptionValidation(t *testing.T) {
	f := newFixture(t)
	r := f.newConfirmedReservation(t)
	_, err := f.reservations.PerformCheckIn(r.ID)
	require.NoError(t, err)

	var vErr *ValidationError

	_, err = f.consumptions.RegisterConsumption(r.ID, f.product.ID, 0)
	require.ErrorAs(t, err, &vErr)

	_, err = f.consumptions.RegisterConsumption(r.ID, 9999, 1)
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Result.Message, "not found")

	require.NoError(t, f.db.Model(&models.Product{}).Where("id = ?", f.product.ID).
		Update("active", false).Error)
	_, err = f.consumptions.RegisterConsumption(r.ID, f.product.ID, 1)
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Result.Message, "inactive")

	_, err = f.consumptions.RegisterConsumption(9999, f.product.ID, 1)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancelConsumption(t *testing.T) {
	f := newFixture(t)
	r := f.newConfirmedReservation(t)
	_, err := f.reservations.PerformCheckIn(r.ID)
	require.NoError(t, err)

	c, err := f.consumptions.RegisterConsumption(r.ID, f.product.ID, 1)
	require.NoError(t, err)

	require.NoError(t, f.consumptions.CancelConsumption(c.ID))

	var stored models.Consumption
	require.NoError(t, f.db.First(&stored, c.ID).Error)
	assert.Equal(t, models.ConsumptionCancelled, stored.Status)
}

func TestCancelBilledConsumptionRejected(t *testing.T) {
	f := newFixture(t)
	r := f.newConfirmedReservation(t)
	_, err := f.reservations.PerformCheckIn(r.ID)
	require.NoError(t, err)

	c, err := f.consumptions.RegisterConsumption(r.ID, f.product.ID, 1)
	require.NoError(t, err)
	_, err = f.reservations.FinalizeConsumptions(r.ID)
	require.NoError(t, err)

	err = f.consumptions.CancelConsumption(c.ID)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Result.Message, "billed")
}

func TestListByReservationNewestFirst(t *testing.T) {
	f := newFixture(t)
	r := f.newConfirmedReservation(t)
	_, err := f.reservations.PerformCheckIn(r.ID)
	require.NoError(t, err)

	first, err := f.consumptions.RegisterConsumption(r.ID, f.product.ID, 1)
	require.NoError(t, err)
	second, err := f.consumptions.RegisterConsumption(r.ID, f.product.ID, 2)
	require.NoError(t, err)

	// Force distinct dates so the ordering is deterministic.
	require.NoError(t, f.db.Model(&models.Consumption{}).Where("id = ?", second.ID).
		Update("consumption_date", second.ConsumptionDate.Add(time.Minute)).Error)

	list, err := f.consumptions.ListByReservation(r.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.Equal(t, f.product.Name, list[0].Product.Name)
}
