package controllers

import (
	"net/http"

	"github.com/Samoo1234/HotelCosta-sub000/models"
	"github.com/Samoo1234/HotelCosta-sub000/services"
	"github.com/Samoo1234/HotelCosta-sub000/utils"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	Guests *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{Guests: svc}
}

// GetGuests handles GET /api/guests?search=
func (c *GuestController) GetGuests(ctx *gin.Context) {
	guests, err := c.Guests.GetAll(ctx.Query("search"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, guests)
}

// GetGuest handles GET /api/guests/:id
func (c *GuestController) GetGuest(ctx *gin.Context) {
	id := parseID(ctx)
	if id == 0 {
		return
	}

	guest, err := c.Guests.GetByID(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, guest)
}

// CreateGuest handles POST /api/guests
func (c *GuestController) CreateGuest(ctx *gin.Context) {
	var guest models.Guest
	if err := ctx.ShouldBindJSON(&guest); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	if err := c.Guests.Create(&guest); err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusCreated, guest)
}

// UpdateGuest handles PATCH /api/guests/:id
func (c *GuestController) UpdateGuest(ctx *gin.Context) {
	id := parseID(ctx)
	if id == 0 {
		return
	}

	var fields map[string]interface{}
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	if err := c.Guests.Update(id, fields); err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, gin.H{"message": "guest updated"})
}

// DeleteGuest handles DELETE /api/guests/:id
func (c *GuestController) DeleteGuest(ctx *gin.Context) {
	id := parseID(ctx)
	if id == 0 {
		return
	}

	if err := c.Guests.Delete(id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, gin.H{"message": "guest deleted"})
}
