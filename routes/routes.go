package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"aquavalle-backend/controllers"
	"aquavalle-backend/middleware"
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

func SetupRouter(
	rc *controllers.ReservationController,
	avc *controllers.AvailabilityController,
	roomCtrl *controllers.RoomController,
	adc *controllers.AdminController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

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
		reservations := api.Group("/reservations")
		{
			reservations.POST("", rc.CreateReservation)
			reservations.GET("", rc.GetReservations)
			reservations.POST("/check-availability", rc.CheckAvailability)
			reservations.GET("/:id", rc.GetReservation)
			reservations.DELETE("/:id", rc.CancelReservation)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", roomCtrl.GetRooms)
			rooms.GET("/:id", roomCtrl.GetRoom)
		}

		availability := api.Group("/availability")
		{
			availability.GET("/fullday", avc.GetFullDayAvailability)
			availability.GET("/rooms", avc.GetAllRoomsAvailability)
			availability.GET("/rooms/:id", avc.GetRoomAvailability)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/login", adc.Login)

			protected := admin.Group("")
			protected.Use(middleware.RequireAdmin())
			{
				protected.GET("/me", adc.Me)
				protected.GET("/stats", adc.GetStats)
				protected.GET("/reservations", adc.GetReservations)
				protected.PUT("/reservations/:id", adc.UpdateReservation)
				protected.DELETE("/reservations/:id", adc.CancelReservation)
				protected.GET("/blocks", adc.GetBlocks)
				protected.POST("/blocks", adc.CreateBlock)
				protected.DELETE("/blocks/:id", adc.DeleteBlock)
			}
		}
	}

	return r
}
