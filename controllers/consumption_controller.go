package controllers

import (
	"net/http"

	"github.com/Samoo1234/HotelCosta-sub000/services"
	"github.com/Samoo1234/HotelCosta-sub000/utils"

	"github.com/gin-gonic/gin"
)

type ConsumptionController struct {
	Consumptions *services.ConsumptionService
}

func NewConsumptionController(svc *services.ConsumptionService) *ConsumptionController {
	return &ConsumptionController{Consumptions: svc}
}

type registerConsumptionRequest struct {
	ReservationID uint `json:"reservation_id" binding:"required"`
	ProductID     uint `json:"product_id" binding:"required"`
	Quantity      int  `json:"quantity" binding:"required"`
}

// CreateConsumption handles POST /api/consumptions
func (c *ConsumptionController) CreateConsumption(ctx *gin.Context) {
	var req registerConsumptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	consumption, err := c.Consumptions.RegisterConsumption(req.ReservationID, req.ProductID, req.Quantity)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusCreated, consumption)
}

// ListByReservation handles GET /api/reservations/:id/consumptions
func (c *ConsumptionController) ListByReservation(ctx *gin.Context) {
	id := parseID(ctx)
	if id == 0 {
		return
	}

	list, err := c.Consumptions.ListByReservation(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, list)
}

// CancelConsumption handles POST /api/consumptions/:id/cancel
func (c *ConsumptionController) CancelConsumption(ctx *gin.Context) {
	id := parseID(ctx)
	if id == 0 {
		return
	}

	if err := c.Consumptions.CancelConsumption(id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, gin.H{"message": "consumption cancelled"})
}
