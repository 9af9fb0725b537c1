package controllers

import (
	"net/http"

	"github.com/Samoo1234/HotelCosta-sub000/models"
	"github.com/Samoo1234/HotelCosta-sub000/services"
	"github.com/Samoo1234/HotelCosta-sub000/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{Rooms: svc}
}

// GetRooms handles GET /api/rooms?status=
func (c *RoomController) GetRooms(ctx *gin.Context) {
	rooms, err := c.Rooms.GetAll(models.RoomStatus(ctx.Query("status")))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, rooms)
}

// GetRoom handles GET /api/rooms/:id
func (c *RoomController) GetRoom(ctx *gin.Context) {
	id := parseID(ctx)
	if id == 0 {
		return
	}

	room, err := c.Rooms.GetByID(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, room)
}

// CreateRoom handles POST /api/rooms
func (c *RoomController) CreateRoom(ctx *gin.Context) {
	var room models.Room
	if err := ctx.ShouldBindJSON(&room); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	if err := c.Rooms.Create(&room); err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusCreated, room)
}

// UpdateRoom handles PATCH /api/rooms/:id
func (c *RoomController) UpdateRoom(ctx *gin.Context) {
	id := parseID(ctx)
	if id == 0 {
		return
	}

	var fields map[string]interface{}
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	if err := c.Rooms.Update(id, fields); err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, gin.H{"message": "room updated"})
}

// DeleteRoom handles DELETE /api/rooms/:id
func (c *RoomController) DeleteRoom(ctx *gin.Context) {
	id := parseID(ctx)
	if id == 0 {
		return
	}

	if err := c.Rooms.Delete(id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, gin.H{"message": "room deleted"})
}
