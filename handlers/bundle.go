// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so routes
// can be registered in a single pass.
type HandlerBundle struct {
	// Auth endpoints
	RegisterPatientHandler  gin.HandlerFunc
	RegisterProviderHandler gin.HandlerFunc
	SignInPatientHandler    gin.HandlerFunc
	SignInProviderHandler   gin.HandlerFunc

	// Booking wizard endpoints
	StartSessionHandler gin.HandlerFunc
	GetDraftHandler     gin.HandlerFunc
	SetCategoryHandler  gin.HandlerFunc
	SetProviderHandler  gin.HandlerFunc
	SetModalityHandler  gin.HandlerFunc
	SetPackageHandler   gin.HandlerFunc
	SetScheduleHandler  gin.HandlerFunc
	ResetDraftHandler   gin.HandlerFunc
	CommitHandler       gin.HandlerFunc

	// Appointment endpoints
	ListAppointmentsHandler    gin.HandlerFunc
	CancelAppointmentHandler   gin.HandlerFunc
	CompleteAppointmentHandler gin.HandlerFunc

	// Catalog endpoints
	GetCategoriesHandler          gin.HandlerFunc
	GetProvidersByCategoryHandler gin.HandlerFunc
	GetProviderHandler            gin.HandlerFunc
	GetProviderPackagesHandler    gin.HandlerFunc
	AddReviewHandler              gin.HandlerFunc
	GetProviderReviewsHandler     gin.HandlerFunc

	// Patient profile endpoints
	GetProfileHandler             gin.HandlerFunc
	UpdateProfileHandler          gin.HandlerFunc
	UpdateFCMTokenHandler         gin.HandlerFunc
	AddEmergencyContactHandler    gin.HandlerFunc
	ListEmergencyContactsHandler  gin.HandlerFunc
	DeleteEmergencyContactHandler gin.HandlerFunc
	AddFavoriteHandler            gin.HandlerFunc
	RemoveFavoriteHandler         gin.HandlerFunc
	ListFavoritesHandler          gin.HandlerFunc

	// Medical record endpoints
	UploadRecordHandler gin.HandlerFunc
	ListRecordsHandler  gin.HandlerFunc
	DeleteRecordHandler gin.HandlerFunc

	// Notification endpoints
	ListNotificationsHandler gin.HandlerFunc
	MarkReadHandler          gin.HandlerFunc
	MarkAllReadHandler       gin.HandlerFunc
}
