package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatusTransitions(t *testing.T) {
	all := []ReservationStatus{
		ReservationConfirmed,
		ReservationCheckedIn,
		ReservationCheckedOut,
		ReservationCancelled,
		ReservationNoShow,
	}

	allowed := map[ReservationStatus][]ReservationStatus{
		ReservationConfirmed: {ReservationCheckedIn, ReservationCancelled, ReservationNoShow},
		ReservationCheckedIn: {ReservationCheckedOut, ReservationCancelled},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestReservationStatusTerminal(t *testing.T) {
	assert.False(t, ReservationConfirmed.IsTerminal())
	assert.False(t, ReservationCheckedIn.IsTerminal())
	assert.True(t, ReservationCheckedOut.IsTerminal())
	assert.True(t, ReservationCancelled.IsTerminal())
	assert.True(t, ReservationNoShow.IsTerminal())
}

func TestReservationStatusUnknown(t *testing.T) {
	unknown := ReservationStatus("archived")
	assert.False(t, unknown.IsValid())
	assert.True(t, unknown.IsTerminal())
	assert.False(t, unknown.CanTransitionTo(ReservationCheckedIn))
	assert.False(t, ReservationConfirmed.CanTransitionTo(unknown))
}

func TestConsumptionStatusTransitions(t *testing.T) {
	assert.True(t, ConsumptionPending.CanTransitionTo(ConsumptionBilled))
	assert.True(t, ConsumptionPending.CanTransitionTo(ConsumptionCancelled))
	assert.True(t, ConsumptionBilled.CanTransitionTo(ConsumptionPaid))

	assert.False(t, ConsumptionPending.CanTransitionTo(ConsumptionPaid), "pending must be billed before payment")
	assert.False(t, ConsumptionBilled.CanTransitionTo(ConsumptionCancelled))
	assert.True(t, ConsumptionPaid.IsTerminal())
	assert.True(t, ConsumptionCancelled.IsTerminal())
}

func TestRoomStatusBlocksCheckIn(t *testing.T) {
	assert.True(t, RoomOccupied.BlocksCheckIn())
	assert.True(t, RoomMaintenance.BlocksCheckIn())
	assert.True(t, RoomOutOfService.BlocksCheckIn())
	assert.False(t, RoomAvailable.BlocksCheckIn())
	assert.False(t, RoomReserved.BlocksCheckIn())
}
