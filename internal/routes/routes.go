package routes

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-portal/internal/audit"
	"github.com/BruksfildServices01/clinic-portal/internal/config"
	"github.com/BruksfildServices01/clinic-portal/internal/handlers"
	infraRepo "github.com/BruksfildServices01/clinic-portal/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-portal/internal/middleware"
	"github.com/BruksfildServices01/clinic-portal/internal/payments"
	"github.com/BruksfildServices01/clinic-portal/internal/storage"
	ucBooking "github.com/BruksfildServices01/clinic-portal/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	photoStore := storage.NewPhotoStore(cfg)

	gateway, err := payments.NewGateway(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Fatalf("failed to init payment gateway: %v", err)
	}

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	getAvailabilityUC := ucBooking.NewGetAvailability(bookingRepo)

	submitBookingUC := ucBooking.NewSubmitBooking(
		bookingRepo,
		auditDispatcher,
	)

	getBookingUC := ucBooking.NewGetBooking(bookingRepo)

	listPatientBookingsUC := ucBooking.NewListPatientBookings(bookingRepo)

	markPaidUC := ucBooking.NewMarkBookingPaid(
		bookingRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db, auditDispatcher)
	treatmentHandler := handlers.NewTreatmentHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		cfg,
		getAvailabilityUC,
		submitBookingUC,
		getBookingUC,
		listPatientBookingsUC,
	)

	doctorHandler := handlers.NewDoctorHandler(db, photoStore, auditDispatcher)
	paymentHandler := handlers.NewPaymentHandler(db, gateway, getBookingUC, markPaidUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	rateLimit := middleware.RateLimitMiddleware(rdb, 60, time.Minute)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/appointment-options", rateLimit, bookingHandler.Availability)
		api.GET("/treatments", treatmentHandler.List)
		api.GET("/treatments/specialties", treatmentHandler.Specialties)
		api.GET("/users/admin/:email", userHandler.IsAdmin)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/users", rateLimit, authHandler.UpsertUser)
		api.GET("/jwt", rateLimit, authHandler.IssueToken)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", rateLimit, bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.ListMine)
			secured.GET("/bookings/:id", bookingHandler.GetByID)

			// ------------------------------
			// PAYMENTS
			// ------------------------------
			secured.POST("/payments/intent", paymentHandler.CreateIntent)
			secured.POST("/payments", paymentHandler.Confirm)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin(bookingRepo))
			{
				admin.GET("/users", userHandler.List)
				admin.PUT("/users/:id/admin", userHandler.Promote)

				admin.POST("/treatments", treatmentHandler.Create)
				admin.PATCH("/treatments/:id", treatmentHandler.Update)

				admin.GET("/doctors", doctorHandler.List)
				admin.POST("/doctors", doctorHandler.Create)
				admin.DELETE("/doctors/:id", doctorHandler.Delete)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
