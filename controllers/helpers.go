package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Samoo1234/HotelCosta-sub000/services"
	"github.com/Samoo1234/HotelCosta-sub000/utils"

	"github.com/gin-gonic/gin"
)

// parseID reads the :id route parameter. A zero return means the
// response was already written.
func parseID(ctx *gin.Context) uint {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid id")
		return 0
	}
	return uint(id)
}

// respondServiceError maps service errors onto HTTP responses. Rule
// rejections become 422 with the message and suggestions so the UI can
// surface them; not-found sentinels become 404; anything else is a 500.
func respondServiceError(ctx *gin.Context, err error) {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		utils.JSONRuleRejection(ctx, http.StatusUnprocessableEntity,
			vErr.Result.Message, string(vErr.Result.Severity), vErr.Result.Suggestions)
		return
	}

	switch {
	case errors.Is(err, services.ErrReservationNotFound),
		errors.Is(err, services.ErrGuestNotFound),
		errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrPaymentNotFound):
		utils.JSONError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrRoomDuplicate):
		utils.JSONError(ctx, http.StatusConflict, "room number already exists")
	default:
		utils.JSONError(ctx, http.StatusInternalServerError, "internal error")
	}
}
