package controllers

import (
	"net/http"

	"github.com/Samoo1234/HotelCosta-sub000/services"
	"github.com/Samoo1234/HotelCosta-sub000/utils"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Payments *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{Payments: svc}
}

// GetPayments handles GET /api/payments
func (c *PaymentController) GetPayments(ctx *gin.Context) {
	payments, err := c.Payments.GetAll()
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, payments)
}

// GetPayment handles GET /api/payments/:id
func (c *PaymentController) GetPayment(ctx *gin.Context) {
	id := parseID(ctx)
	if id == 0 {
		return
	}

	payment, err := c.Payments.GetByID(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, payment)
}

// GetReservationPayments handles GET /api/reservations/:id/payments
func (c *PaymentController) GetReservationPayments(ctx *gin.Context) {
	id := parseID(ctx)
	if id == 0 {
		return
	}

	payments, err := c.Payments.GetByReservation(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, payments)
}
