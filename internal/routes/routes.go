package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/serenetouch/booking-api/internal/audit"
	"github.com/serenetouch/booking-api/internal/config"
	"github.com/serenetouch/booking-api/internal/handlers"
	infraRepo "github.com/serenetouch/booking-api/internal/infra/repository"
	"github.com/serenetouch/booking-api/internal/middleware"
	ucBooking "github.com/serenetouch/booking-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKING LIFECYCLE + PAYMENT RECONCILIATION
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher, cfg.Timezone)
	getBookingUC := ucBooking.NewGetBooking(bookingRepo)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo, cfg.Timezone)
	updateStatusUC := ucBooking.NewUpdateStatus(bookingRepo, auditDispatcher)
	setPaymentUC := ucBooking.NewSetPayment(bookingRepo, auditDispatcher)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo, auditDispatcher)
	applyChargeUC := ucBooking.NewApplyCharge(bookingRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		getBookingUC,
		listBookingsUC,
		updateStatusUC,
		setPaymentUC,
		deleteBookingUC,
	)
	webhookHandler := handlers.NewWebhookHandler(applyChargeUC, cfg)
	paymentHandler := handlers.NewPaymentHandler(db, setPaymentUC)

	serviceHandler := handlers.NewServiceHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(db, cfg.Timezone)
	settingsHandler := handlers.NewSettingsHandler(db)
	therapistHandler := handlers.NewTherapistHandler(db)
	paymentMethodHandler := handlers.NewPaymentMethodHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", serviceHandler.ListPublic)
		api.GET("/payment-methods", paymentMethodHandler.ListPublic)
		api.POST("/bookings", bookingHandler.Create)

		// ------------------------------
		// PAYMENT GATEWAY CALLBACK
		// ------------------------------
		api.POST("/webhooks/paystack", webhookHandler.Paystack)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(cfg))
		{
			admin.GET("/me", authHandler.Me)

			admin.GET("/bookings", bookingHandler.List)
			admin.GET("/bookings/:id", bookingHandler.Get)
			admin.PUT("/bookings/:id", bookingHandler.Update)
			admin.DELETE("/bookings/:id", bookingHandler.Delete)

			admin.GET("/payments", paymentHandler.List)
			admin.PUT("/payments/:id", paymentHandler.Update)

			admin.GET("/services", serviceHandler.List)
			admin.GET("/services/:id", serviceHandler.Get)
			admin.POST("/services", serviceHandler.Create)
			admin.PUT("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			admin.GET("/clients", clientHandler.List)
			admin.GET("/clients/:id", clientHandler.Get)
			admin.PUT("/clients/:id", clientHandler.Update)
			admin.DELETE("/clients/:id", clientHandler.Delete)

			admin.GET("/schedule/hours", scheduleHandler.GetWorkingHours)
			admin.PUT("/schedule/hours", scheduleHandler.UpdateWorkingHours)
			admin.GET("/schedule/blocked", scheduleHandler.ListBlockedDates)
			admin.POST("/schedule/blocked", scheduleHandler.CreateBlockedDate)
			admin.DELETE("/schedule/blocked/:id", scheduleHandler.DeleteBlockedDate)

			admin.GET("/settings/wallet-address", settingsHandler.GetWalletAddress)
			admin.PUT("/settings/wallet-address", settingsHandler.UpdateWalletAddress)

			admin.GET("/therapists", therapistHandler.List)
			admin.POST("/therapists", therapistHandler.Create)
			admin.PUT("/therapists/:id", therapistHandler.Update)
			admin.DELETE("/therapists/:id", therapistHandler.Delete)

			admin.GET("/payment-methods", paymentMethodHandler.List)
			admin.POST("/payment-methods", paymentMethodHandler.Create)
			admin.PUT("/payment-methods/:id", paymentMethodHandler.Update)
			admin.DELETE("/payment-methods/:id", paymentMethodHandler.Delete)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
