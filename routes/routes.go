package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"telecare/handlers"
	"telecare/middleware"
	"telecare/utils"
)

// HandlerBundle groups the handlers the router needs.
type HandlerBundle struct {
	Scheduling *handlers.SchedulingHandler
	Booking    *handlers.BookingHandler
	Provider   *handlers.ProviderHandler
}

// RegisterSchedulingRoutes registers the read-only slot-derivation endpoints.
// They are public: a patient browses availability before signing in.
func RegisterSchedulingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/scheduling")
	{
		api.GET("/:providerID/dates", hb.Scheduling.GetSelectableDatesHandler)
		api.GET("/:providerID/slots", hb.Scheduling.GetSlotsHandler)
		api.GET("/:providerID/fees", hb.Scheduling.GetFeesHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking session flow.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware())
		bookingGroup.POST("/session", hb.Booking.InitiateSession)
		bookingGroup.GET("/session/:sessionID", hb.Booking.GetSession)
		bookingGroup.PATCH("/session/:sessionID/date", hb.Booking.SetDate)
		bookingGroup.PATCH("/session/:sessionID/duration", hb.Booking.SetDuration)
		bookingGroup.PATCH("/session/:sessionID/slot", hb.Booking.SetTimeSlot)
		bookingGroup.POST("/session/:sessionID/confirm", hb.Booking.ConfirmBooking)
		bookingGroup.DELETE("/session/:sessionID", hb.Booking.CancelSession)
	}
}

// RegisterProviderRoutes registers provider schedule management endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.GET("/:id", hb.Provider.GetProviderHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.PUT("/:id", hb.Provider.UpsertProviderHandler)
		protected.GET("/:id/availability", hb.Provider.GetAvailabilityHandler)
		protected.PUT("/:id/availability", hb.Provider.SetupAvailabilityHandler)
		protected.PUT("/:id/fees", hb.Provider.SetupFeesHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSchedulingRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterHealthRoute(r)
}
