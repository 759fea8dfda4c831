package routes

import (
	"telecare/handlers"
	"telecare/middleware"
	"telecare/models"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
// Draft accumulation and commit are patient-only.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.JWTAuth(models.RolePatient))
		bookingGroup.POST("/session", hb.StartSessionHandler)
		bookingGroup.GET("/session/:sessionID", hb.GetDraftHandler)
		bookingGroup.PUT("/session/:sessionID/category", hb.SetCategoryHandler)
		bookingGroup.PUT("/session/:sessionID/provider", hb.SetProviderHandler)
		bookingGroup.PUT("/session/:sessionID/modality", hb.SetModalityHandler)
		bookingGroup.PUT("/session/:sessionID/package", hb.SetPackageHandler)
		bookingGroup.PUT("/session/:sessionID/schedule", hb.SetScheduleHandler)
		bookingGroup.DELETE("/session/:sessionID", hb.ResetDraftHandler)
		bookingGroup.POST("/commit", hb.CommitHandler)
	}
}

// RegisterAppointmentRoutes sets up the appointment lifecycle endpoints.
// Listing and cancelling are open to both roles; completion is the
// provider's call.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	apptGroup := r.Group("/api/appointments")
	{
		apptGroup.Use(middleware.JWTAuth())
		apptGroup.GET("", hb.ListAppointmentsHandler)
		apptGroup.PUT("/:id/cancel", hb.CancelAppointmentHandler)
		apptGroup.PUT("/:id/complete", middleware.JWTAuth(models.RoleProvider), hb.CompleteAppointmentHandler)
	}
}
