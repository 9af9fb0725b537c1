package controllers

import (
	"net/http"

	"github.com/Samoo1234/HotelCosta-sub000/models"
	"github.com/Samoo1234/HotelCosta-sub000/services"
	"github.com/Samoo1234/HotelCosta-sub000/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	Reservations *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{Reservations: svc}
}

// GetReservations handles GET /api/reservations?status=
func (c *ReservationController) GetReservations(ctx *gin.Context) {
	status := models.ReservationStatus(ctx.Query("status"))
	if status != "" && !status.IsValid() {
		utils.JSONError(ctx, http.StatusBadRequest, "unknown reservation status")
		return
	}

	list, err := c.Reservations.GetReservations(status)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, list)
}

// GetReservation handles GET /api/reservations/:id
func (c *ReservationController) GetReservation(ctx *gin.Context) {
	id := parseID(ctx)
	if id == 0 {
		return
	}

	r, err := c.Reservations.GetReservationByID(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, r)
}

// CreateReservation handles POST /api/reservations
func (c *ReservationController) CreateReservation(ctx *gin.Context) {
	var r models.Reservation
	if err := ctx.ShouldBindJSON(&r); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	if err := c.Reservations.CreateReservation(&r); err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusCreated, r)
}

// UpdateReservation handles PATCH /api/reservations/:id
func (c *ReservationController) UpdateReservation(ctx *gin.Context) {
	id := parseID(ctx)
	if id == 0 {
		return
	}

	var fields map[string]interface{}
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	if err := c.Reservations.UpdateReservation(id, fields); err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, gin.H{"message": "reservation updated"})
}

// DeleteReservation handles DELETE /api/reservations/:id
func (c *ReservationController) DeleteReservation(ctx *gin.Context) {
	id := parseID(ctx)
	if id == 0 {
		return
	}

	if err := c.Reservations.DeleteReservation(id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, gin.H{"message": "reservation deleted"})
}

// CheckIn handles POST /api/reservations/:id/check-in
func (c *ReservationController) CheckIn(ctx *gin.Context) {
	id := parseID(ctx)
	if id == 0 {
		return
	}

	result, err := c.Reservations.PerformCheckIn(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, result)
}

type checkOutRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// CheckOut handles POST /api/reservations/:id/check-out
func (c *ReservationController) CheckOut(ctx *gin.Context) {
	id := parseID(ctx)
	if id == 0 {
		return
	}

	var req checkOutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "payment_method is required")
		return
	}

	result, err := c.Reservations.PerformCheckOut(id, req.PaymentMethod)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, result)
}

type cancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// Cancel handles POST /api/reservations/:id/cancel
func (c *ReservationController) Cancel(ctx *gin.Context) {
	id := parseID(ctx)
	if id == 0 {
		return
	}

	var req cancelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "reason is required")
		return
	}

	result, err := c.Reservations.CancelReservation(id, req.Reason)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, result)
}

// NoShow handles POST /api/reservations/:id/no-show
func (c *ReservationController) NoShow(ctx *gin.Context) {
	id := parseID(ctx)
	if id == 0 {
		return
	}

	result, err := c.Reservations.MarkNoShow(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, result)
}

// FinalizeConsumptions handles POST /api/reservations/:id/consumptions/finalize
func (c *ReservationController) FinalizeConsumptions(ctx *gin.Context) {
	id := parseID(ctx)
	if id == 0 {
		return
	}

	result, err := c.Reservations.FinalizeConsumptions(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, result)
}

// UnpaidConsumptions handles GET /api/reservations/:id/unpaid-consumptions
func (c *ReservationController) UnpaidConsumptions(ctx *gin.Context) {
	id := parseID(ctx)
	if id == 0 {
		return
	}

	unpaid, err := c.Reservations.HasUnpaidConsumptions(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, gin.H{"has_unpaid_consumptions": unpaid})
}
