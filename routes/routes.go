package routes

import (
	"net/http"
	"time"

	"telecare/handlers"
	"telecare/middleware"
	"telecare/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and sign-in endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/patients/register", hb.RegisterPatientHandler)
		api.POST("/patients/login", hb.SignInPatientHandler)
		api.POST("/providers/register", hb.RegisterProviderHandler)
		api.POST("/providers/login", hb.SignInProviderHandler)
	}
}

// RegisterCatalogRoutes registers the provider directory endpoints.
// Browsing is open to any authenticated actor; reviews are patient-only.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.Use(middleware.JWTAuth())
		api.GET("/categories", hb.GetCategoriesHandler)
		api.GET("/categories/:category/providers", hb.GetProvidersByCategoryHandler)
		api.GET("/providers/:id", hb.GetProviderHandler)
		api.GET("/providers/:id/packages", hb.GetProviderPackagesHandler)
		api.GET("/providers/:id/reviews", hb.GetProviderReviewsHandler)
		api.POST("/providers/:id/reviews", middleware.JWTAuth(models.RolePatient), hb.AddReviewHandler)
	}
}

// RegisterPatientRoutes registers the patient's own profile, emergency
// contacts and favorites. All are patient-only.
func RegisterPatientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/patients/me")
	{
		api.Use(middleware.JWTAuth(models.RolePatient))
		api.GET("", hb.GetProfileHandler)
		api.PATCH("", hb.UpdateProfileHandler)
		api.PUT("/fcm-token", hb.UpdateFCMTokenHandler)

		api.POST("/emergency-contacts", hb.AddEmergencyContactHandler)
		api.GET("/emergency-contacts", hb.ListEmergencyContactsHandler)
		api.DELETE("/emergency-contacts/:id", hb.DeleteEmergencyContactHandler)

		api.POST("/favorites/:providerID", hb.AddFavoriteHandler)
		api.DELETE("/favorites/:providerID", hb.RemoveFavoriteHandler)
		api.GET("/favorites", hb.ListFavoritesHandler)
	}
}

// RegisterRecordRoutes registers medical-record document endpoints.
func RegisterRecordRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/records")
	{
		api.Use(middleware.JWTAuth(models.RolePatient))
		api.POST("", hb.UploadRecordHandler)
		api.GET("", hb.ListRecordsHandler)
		api.DELETE("/:id", hb.DeleteRecordHandler)
	}
}

// RegisterNotificationRoutes registers the notification feed endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuth())
		api.GET("", hb.ListNotificationsHandler)
		api.PUT("/:id/read", hb.MarkReadHandler)
		api.PUT("/read-all", hb.MarkAllReadHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Telecare"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterPatientRoutes(r, hb)
	RegisterRecordRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterHealthRoute(r)
}
