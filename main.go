// File: telecare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"telecare/config"
	"telecare/cron"
	"telecare/database"
	appointmentRepoPkg "telecare/database/repository/appointment"
	notificationRepoPkg "telecare/database/repository/notification"
	patientRepoPkg "telecare/database/repository/patient"
	providerRepoPkg "telecare/database/repository/provider"
	recordsRepoPkg "telecare/database/repository/records"
	reviewRepoPkg "telecare/database/repository/review"
	"telecare/handlers"
	"telecare/middleware"
	"telecare/routes"
	"telecare/services/booking"
	"telecare/services/catalog"
	"telecare/services/identity"
	"telecare/services/notification"
	"telecare/services/records"
	"telecare/services/tasks"
	"telecare/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitDraftCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	patRepo := patientRepoPkg.NewMongoPatientRepo()
	recRepo := recordsRepoPkg.NewMongoRecordRepo()
	notifRepo := notificationRepoPkg.NewMongoNotificationRepo()
	revRepo := reviewRepoPkg.NewMongoReviewRepo()

	// services.
	identityService := &identity.DefaultIdentityService{
		Patients:  patRepo,
		Providers: provRepo,
	}
	catalogService := &catalog.DefaultCatalogService{
		Providers: provRepo,
		Reviews:   revRepo,
	}
	notificationService := &notification.DefaultNotificationService{
		Repo:      notifRepo,
		Patients:  patRepo,
		Providers: provRepo,
	}
	reminderScheduler := tasks.NewReminderScheduler()
	defer reminderScheduler.Close()

	bookingService := &booking.DefaultBookingService{
		Drafts:    booking.NewDraftStore(utils.GetDraftCacheClient()),
		Repo:      apptRepo,
		Catalog:   catalogService,
		Locker:    booking.NewCommitLock(utils.GetCacheClient()),
		Notifier:  notificationService,
		Reminders: reminderScheduler,
	}

	var recordService records.RecordService
	if cld, err := utils.Cloudinary(); err != nil {
		logger.Sugar().Warnf("main: cloudinary unavailable, record uploads disabled: %v", err)
	} else {
		recordService = &records.DefaultRecordService{
			Repo:    recRepo,
			Storage: records.NewCloudinaryStorage(cld),
		}
	}

	// Reminder delivery worker.
	cron.InitReminderWorker(notificationService, apptRepo)

	// handlers.
	authHandler := handlers.NewAuthHandler(identityService)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	appointmentHandler := handlers.NewAppointmentHandler(bookingService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	patientHandler := handlers.NewPatientHandler(patRepo, catalogService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Auth endpoints.
		RegisterPatientHandler:  authHandler.RegisterPatientHandler,
		RegisterProviderHandler: authHandler.RegisterProviderHandler,
		SignInPatientHandler:    authHandler.SignInPatientHandler,
		SignInProviderHandler:   authHandler.SignInProviderHandler,

		// Booking wizard endpoints.
		StartSessionHandler: bookingHandler.StartSessionHandler,
		GetDraftHandler:     bookingHandler.GetDraftHandler,
		SetCategoryHandler:  bookingHandler.SetCategoryHandler,
		SetProviderHandler:  bookingHandler.SetProviderHandler,
		SetModalityHandler:  bookingHandler.SetModalityHandler,
		SetPackageHandler:   bookingHandler.SetPackageHandler,
		SetScheduleHandler:  bookingHandler.SetScheduleHandler,
		ResetDraftHandler:   bookingHandler.ResetDraftHandler,
		CommitHandler:       bookingHandler.CommitHandler,

		// Appointment endpoints.
		ListAppointmentsHandler:    appointmentHandler.ListAppointmentsHandler,
		CancelAppointmentHandler:   appointmentHandler.CancelAppointmentHandler,
		CompleteAppointmentHandler: appointmentHandler.CompleteAppointmentHandler,

		// Catalog endpoints.
		GetCategoriesHandler:          catalogHandler.GetCategoriesHandler,
		GetProvidersByCategoryHandler: catalogHandler.GetProvidersByCategoryHandler,
		GetProviderHandler:            catalogHandler.GetProviderHandler,
		GetProviderPackagesHandler:    catalogHandler.GetProviderPackagesHandler,
		AddReviewHandler:              catalogHandler.AddReviewHandler,
		GetProviderReviewsHandler:     catalogHandler.GetProviderReviewsHandler,

		// Patient profile endpoints.
		GetProfileHandler:             patientHandler.GetProfileHandler,
		UpdateProfileHandler:          patientHandler.UpdateProfileHandler,
		UpdateFCMTokenHandler:         patientHandler.UpdateFCMTokenHandler,
		AddEmergencyContactHandler:    patientHandler.AddEmergencyContactHandler,
		ListEmergencyContactsHandler:  patientHandler.ListEmergencyContactsHandler,
		DeleteEmergencyContactHandler: patientHandler.DeleteEmergencyContactHandler,
		AddFavoriteHandler:            patientHandler.AddFavoriteHandler,
		RemoveFavoriteHandler:         patientHandler.RemoveFavoriteHandler,
		ListFavoritesHandler:          patientHandler.ListFavoritesHandler,

		// Notification endpoints.
		ListNotificationsHandler: notificationHandler.ListNotificationsHandler,
		MarkReadHandler:          notificationHandler.MarkReadHandler,
		MarkAllReadHandler:       notificationHandler.MarkAllReadHandler,
	}

	// Medical record endpoints are wired only when document storage is up.
	if recordService != nil {
		recordsHandler := handlers.NewRecordsHandler(recordService)
		handlerBundle.UploadRecordHandler = recordsHandler.UploadRecordHandler
		handlerBundle.ListRecordsHandler = recordsHandler.ListRecordsHandler
		handlerBundle.DeleteRecordHandler = recordsHandler.DeleteRecordHandler
	} else {
		unavailable := func(c *gin.Context) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "document storage is not configured"})
		}
		handlerBundle.UploadRecordHandler = unavailable
		handlerBundle.ListRecordsHandler = unavailable
		handlerBundle.DeleteRecordHandler = unavailable
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
