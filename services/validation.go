package services

import (
	"fmt"
	"time"

	"github.com/Samoo1234/HotelCosta-sub000/models"
)

// Severity classifies a validation outcome.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// ValidationResult is the outcome of a single rule check. It is never
// persisted: Valid drives control flow, Message and Suggestions drive
// user feedback. A result can be valid and still carry a warning.
type ValidationResult struct {
	Valid       bool     `json:"valid"`
	Severity    Severity `json:"severity,omitempty"`
	Message     string   `json:"message,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// IsWarning returns true for a valid result the caller should surface.
func (r ValidationResult) IsWarning() bool {
	return r.Valid && r.Severity == SeverityWarning
}

func ok() ValidationResult {
	return ValidationResult{Valid: true}
}

func rejected(msg string, suggestions ...string) ValidationResult {
	return ValidationResult{Valid: false, Severity: SeverityError, Message: msg, Suggestions: suggestions}
}

func warning(msg string, suggestions ...string) ValidationResult {
	return ValidationResult{Valid: true, Severity: SeverityWarning, Message: msg, Suggestions: suggestions}
}

// ValidationError carries a rejected ValidationResult across the
// service boundary so handlers can surface message and suggestions.
type ValidationError struct {
	Result ValidationResult
}

func (e *ValidationError) Error() string {
	return e.Result.Message
}

// RulesEngine holds the pure validation rules for lifecycle
// operations. It performs no I/O; callers pass entity snapshots. Now is
// injectable so date-window rules are testable.
type RulesEngine struct {
	Now func() time.Time
}

func NewRulesEngine() *RulesEngine {
	return &RulesEngine{Now: time.Now}
}

// daysSince returns the whole days elapsed from t to today, negative
// when t is in the future. Both sides are truncated to calendar dates
// so the time of day never shifts the window.
func (e *RulesEngine) daysSince(t time.Time) int {
	now := e.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(today.Sub(day).Hours() / 24)
}

// ValidateCheckIn decides whether the reservation can be checked in.
// The reservation's Room must be loaded.
func (e *RulesEngine) ValidateCheckIn(r models.Reservation) ValidationResult {
	if r.Status != models.ReservationConfirmed {
		return rejected(fmt.Sprintf("only confirmed reservations can be checked in (current status: %s)", r.Status))
	}

	if r.Room.Status.BlocksCheckIn() {
		return rejected(
			fmt.Sprintf("room %s is %s and cannot receive a check-in", r.Room.Number, r.Room.Status),
			"verify whether another reservation is still active on this room",
			"move the reservation to a different room",
		)
	}

	daysDiff := e.daysSince(r.CheckInDate)
	switch {
	case daysDiff < -7:
		return rejected(fmt.Sprintf("check-in is %d days before the scheduled date; more than 7 days early is not allowed", -daysDiff))
	case daysDiff > 3:
		return rejected(
			fmt.Sprintf("check-in is %d days after the scheduled date; more than 3 days late is not allowed", daysDiff),
			"mark the reservation as no-show",
			"cancel the reservation",
		)
	case daysDiff >= -7 && daysDiff < -1:
		return warning(fmt.Sprintf("early check-in: %d days before the scheduled date", -daysDiff))
	case daysDiff > 1 && daysDiff <= 3:
		return warning(fmt.Sprintf("late check-in: %d days after the scheduled date", daysDiff))
	}
	return ok()
}

// ValidateCheckOut decides whether the reservation can be checked out
// given the current consumption snapshot.
func (e *RulesEngine) ValidateCheckOut(r models.Reservation, consumptions []models.Consumption) ValidationResult {
	if r.Status != models.ReservationCheckedIn {
		return rejected(fmt.Sprintf("only checked-in reservations can be checked out (current status: %s)", r.Status))
	}

	pending := 0
	for _, c := range consumptions {
		if c.Status == models.ConsumptionPending {
			pending++
		}
	}
	if pending > 0 {
		return rejected(
			fmt.Sprintf("checkout blocked: %d pending consumption(s) must be resolved first", pending),
			"finalize the pending consumptions before checking out",
		)
	}

	if r.CheckOutDate != nil {
		daysDiff := e.daysSince(*r.CheckOutDate)
		if daysDiff < -1 {
			return warning(fmt.Sprintf("early checkout: %d days before the scheduled date", -daysDiff),
				"review the stay total for a possible adjustment")
		}
		if daysDiff > 0 {
			return warning(fmt.Sprintf("late checkout: %d days after the scheduled date", daysDiff),
				"review whether a late fee applies")
		}
	}
	return ok()
}

// ValidateCancellation decides whether the reservation can be cancelled.
func (e *RulesEngine) ValidateCancellation(r models.Reservation) ValidationResult {
	if r.Status != models.ReservationConfirmed && r.Status != models.ReservationCheckedIn {
		return rejected(fmt.Sprintf("reservation cannot be cancelled from status %s", r.Status))
	}
	if r.Status == models.ReservationCheckedIn {
		return warning("cancelling after check-in: the stay already started and may need special billing")
	}
	if e.daysSince(r.CheckInDate) > 0 {
		return warning("late cancellation: the scheduled check-in date has passed",
			"consider marking the reservation as no-show instead")
	}
	return ok()
}

// ValidateNoShow decides whether the reservation can be marked no-show.
func (e *RulesEngine) ValidateNoShow(r models.Reservation) ValidationResult {
	if r.Status != models.ReservationConfirmed {
		return rejected(fmt.Sprintf("only confirmed reservations can be marked as no-show (current status: %s)", r.Status))
	}
	daysDiff := e.daysSince(r.CheckInDate)
	if daysDiff < 0 {
		return rejected("cannot mark a no-show before the scheduled check-in date",
			"wait until the check-in date",
			"cancel the reservation instead")
	}
	if daysDiff > 7 {
		return warning(fmt.Sprintf("the scheduled check-in date was %d days ago", daysDiff),
			"consider cancelling this stale reservation instead of marking it no-show")
	}
	return ok()
}

// ValidateFinalizeConsumptions gates the bulk pending->billed move.
// "Nothing to finalize" is informational, not a hard error: the result
// is invalid with severity info so callers can short-circuit without
// failing.
func (e *RulesEngine) ValidateFinalizeConsumptions(consumptions []models.Consumption) ValidationResult {
	pending := 0
	for _, c := range consumptions {
		if c.Status == models.ConsumptionPending {
			pending++
		}
	}
	if pending == 0 {
		return ValidationResult{
			Valid:    false,
			Severity: SeverityInfo,
			Message:  "no pending consumptions to finalize",
		}
	}
	return ValidationResult{
		Valid:    true,
		Severity: SeverityInfo,
		Message:  fmt.Sprintf("%d pending consumption(s) will be billed", pending),
	}
}

// transitionDenialMessage maps a table violation to an operator-facing
// message, specific to the origin state where that helps.
func transitionDenialMessage(current, target models.ReservationStatus) string {
	switch {
	case current == models.ReservationConfirmed && target == models.ReservationCheckedOut:
		return "cannot check out without checking in first"
	case current == models.ReservationCheckedOut:
		return "reservation already checked out and cannot be changed"
	case current == models.ReservationCancelled:
		return "reservation already cancelled and cannot be changed"
	case current == models.ReservationNoShow:
		return "reservation already marked as no-show and cannot be changed"
	case current == models.ReservationCheckedIn && target == models.ReservationNoShow:
		return "a checked-in reservation cannot be marked as no-show"
	}
	return fmt.Sprintf("invalid transition: %s -> %s", current, target)
}

// ValidateStatusTransition is the dispatcher: it first checks the
// transition table, then delegates to the operation-specific rules. A
// transition can be table-legal and still be rejected here.
func (e *RulesEngine) ValidateStatusTransition(current, target models.ReservationStatus, r models.Reservation, consumptions []models.Consumption) ValidationResult {
	if !current.CanTransitionTo(target) {
		return rejected(transitionDenialMessage(current, target))
	}
	switch target {
	case models.ReservationCheckedIn:
		return e.ValidateCheckIn(r)
	case models.ReservationCheckedOut:
		return e.ValidateCheckOut(r, consumptions)
	case models.ReservationCancelled:
		return e.ValidateCancellation(r)
	case models.ReservationNoShow:
		return e.ValidateNoShow(r)
	}
	return ok()
}
