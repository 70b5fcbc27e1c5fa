package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bodyharmony/salon-scheduler/internal/audit"
	"github.com/bodyharmony/salon-scheduler/internal/config"
	"github.com/bodyharmony/salon-scheduler/internal/handlers"
	infraRepo "github.com/bodyharmony/salon-scheduler/internal/infra/repository"
	"github.com/bodyharmony/salon-scheduler/internal/middleware"
	ucSchedule "github.com/bodyharmony/salon-scheduler/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, slotCache ucSchedule.SlotCache) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — SCHEDULE
	// ======================================================
	generateSlotsUC := ucSchedule.NewGenerateSlots(
		scheduleRepo,
		auditDispatcher,
		slotCache,
	)

	listFreeSlotsUC := ucSchedule.NewListFreeSlots(
		scheduleRepo,
		slotCache,
	)

	deleteSlotsUC := ucSchedule.NewDeleteSlots(
		scheduleRepo,
		auditDispatcher,
		slotCache,
	)

	availabilityUC := ucSchedule.NewAvailability(
		scheduleRepo,
	)

	bookUC := ucSchedule.NewBook(
		scheduleRepo,
		auditDispatcher,
		slotCache,
	)

	cancelUC := ucSchedule.NewCancel(
		scheduleRepo,
		auditDispatcher,
		slotCache,
	)

	rescheduleUC := ucSchedule.NewReschedule(
		scheduleRepo,
		auditDispatcher,
		slotCache,
	)

	listAppointmentsUC := ucSchedule.NewListAppointments(
		scheduleRepo,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)

	slotHandler := handlers.NewSlotHandler(
		generateSlotsUC,
		listFreeSlotsUC,
		deleteSlotsUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		cancelUC,
		rescheduleUC,
		listAppointmentsUC,
		availabilityUC,
		cfg.Timezone,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🌐 PUBLIC API
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)
		api.GET("/slots", slotHandler.FreeSlots)
		api.GET("/availability", appointmentHandler.Availability)

		// ------------------------------
		// 🔐 PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", userHandler.GetMe)

			// ------------------------------
			// SLOTS
			// ------------------------------
			secured.POST("/slots/generate", slotHandler.Generate)
			secured.DELETE("/slots", slotHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireRole("admin"))
			{
				admin.GET("/users", userHandler.List)
				admin.GET("/users/:id", userHandler.Get)
				admin.PATCH("/users/:id", userHandler.Update)
				admin.DELETE("/users/:id", userHandler.Delete)

				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)
				admin.DELETE("/services/:id", serviceHandler.Delete)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
