package controllers

import (
	"net/http"
	"strconv"

	"github.com/Samoo1234/HotelCosta-sub000/services"
	"github.com/Samoo1234/HotelCosta-sub000/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Dashboard *services.DashboardService
	Activity  *services.ActivityService
}

func NewDashboardController(dashboard *services.DashboardService, activity *services.ActivityService) *DashboardController {
	return &DashboardController{Dashboard: dashboard, Activity: activity}
}

// GetSummary handles GET /api/dashboard/summary
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	summary, err := c.Dashboard.Summary()
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, summary)
}

// GetActivity handles GET /api/activity?entity_type=&entity_id=&limit=
func (c *DashboardController) GetActivity(ctx *gin.Context) {
	entityID, _ := strconv.ParseUint(ctx.Query("entity_id"), 10, 32)
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))

	entries, err := c.Activity.Recent(ctx.Query("entity_type"), uint(entityID), limit)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, entries)
}
