package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Samoo1234/HotelCosta-sub000/controllers"
	"github.com/Samoo1234/HotelCosta-sub000/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers into the gin engine.
func SetupRouter(
	logger *zap.Logger,
	rc *controllers.ReservationController,
	gc *controllers.GuestController,
	rmc *controllers.RoomController,
	pc *controllers.ProductController,
	cc *controllers.ConsumptionController,
	pay *controllers.PaymentController,
	dc *controllers.DashboardController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		guests := api.Group("/guests")
		{
			guests.GET("", gc.GetGuests)
			guests.GET("/:id", gc.GetGuest)
			guests.POST("", gc.CreateGuest)
			guests.PATCH("/:id", gc.UpdateGuest)
			guests.DELETE("/:id", gc.DeleteGuest)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rmc.GetRooms)
			rooms.GET("/:id", rmc.GetRoom)
			rooms.POST("", rmc.CreateRoom)
			rooms.PATCH("/:id", rmc.UpdateRoom)
			rooms.DELETE("/:id", rmc.DeleteRoom)
		}

		products := api.Group("/products")
		{
			products.GET("", pc.GetProducts)
			products.GET("/:id", pc.GetProduct)
			products.POST("", pc.CreateProduct)
			products.PATCH("/:id", pc.UpdateProduct)
			products.DELETE("/:id", pc.DeleteProduct)
		}

		reservations := api.Group("/reservations")
		{
			reservations.GET("", rc.GetReservations)
			reservations.GET("/:id", rc.GetReservation)
			reservations.POST("", rc.CreateReservation)
			reservations.PATCH("/:id", rc.UpdateReservation)
			reservations.DELETE("/:id", rc.DeleteReservation)

			// lifecycle operations
			reservations.POST("/:id/check-in", rc.CheckIn)
			reservations.POST("/:id/check-out", rc.CheckOut)
			reservations.POST("/:id/cancel", rc.Cancel)
			reservations.POST("/:id/no-show", rc.NoShow)
			reservations.POST("/:id/consumptions/finalize", rc.FinalizeConsumptions)
			reservations.GET("/:id/unpaid-consumptions", rc.UnpaidConsumptions)

			reservations.GET("/:id/consumptions", cc.ListByReservation)
			reservations.GET("/:id/payments", pay.GetReservationPayments)
		}

		consumptions := api.Group("/consumptions")
		{
			consumptions.POST("", cc.CreateConsumption)
			consumptions.POST("/:id/cancel", cc.CancelConsumption)
		}

		payments := api.Group("/payments")
		{
			payments.GET("", pay.GetPayments)
			payments.GET("/:id", pay.GetPayment)
		}

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/summary", dc.GetSummary)
		}

		api.GET("/activity", dc.GetActivity)
	}

	return r
}
