package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/kuaforsistemi/salon-scheduler/internal/audit"
	"github.com/kuaforsistemi/salon-scheduler/internal/config"
	"github.com/kuaforsistemi/salon-scheduler/internal/handlers"
	infraRepo "github.com/kuaforsistemi/salon-scheduler/internal/infra/repository"
	"github.com/kuaforsistemi/salon-scheduler/internal/middleware"
	ucSchedule "github.com/kuaforsistemi/salon-scheduler/internal/usecase/schedule"
	"github.com/kuaforsistemi/salon-scheduler/internal/verification"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	codeStore := verification.NewCodeStore(rdb)
	emailVerify := verification.NewService(codeStore, verification.ConsoleEmailSender{}, verification.ChannelEmail)
	phoneVerify := verification.NewService(codeStore, verification.ConsoleSMSSender{}, verification.ChannelPhone)

	// ======================================================
	// USE CASES — SCHEDULING
	// ======================================================
	availabilityUC := ucSchedule.NewGetAvailability(scheduleRepo)

	createBookingUC := ucSchedule.NewCreateBooking(
		scheduleRepo,
		auditDispatcher,
	)

	listBookingsUC := ucSchedule.NewListUserBookings(scheduleRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, emailVerify, phoneVerify, auditDispatcher)
	salonHandler := handlers.NewSalonHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		availabilityUC,
		createBookingUC,
		listBookingsUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH + VERIFICATION
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/email/send-code", authHandler.SendEmailCode)
		api.POST("/auth/email/verify", authHandler.VerifyEmail)
		api.POST("/auth/phone/send-code", authHandler.SendPhoneCode)
		api.POST("/auth/phone/verify", authHandler.VerifyPhone)

		// ------------------------------
		// PUBLIC LOOKUPS
		// ------------------------------
		api.GET("/salons/:id/staff", salonHandler.ListStaff)
		api.GET("/salons/:id/services", salonHandler.ListServices)
		api.GET("/appointments/availability", appointmentHandler.Availability)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
