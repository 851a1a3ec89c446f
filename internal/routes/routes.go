package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/Allain-afk/GlamQueue-sub001/internal/audit"
	"github.com/Allain-afk/GlamQueue-sub001/internal/config"
	"github.com/Allain-afk/GlamQueue-sub001/internal/flow"
	"github.com/Allain-afk/GlamQueue-sub001/internal/handlers"
	infraRepo "github.com/Allain-afk/GlamQueue-sub001/internal/infra/repository"
	"github.com/Allain-afk/GlamQueue-sub001/internal/middleware"
	ucAppointment "github.com/Allain-afk/GlamQueue-sub001/internal/usecase/appointment"
	ucIntent "github.com/Allain-afk/GlamQueue-sub001/internal/usecase/intent"
	ucSubscription "github.com/Allain-afk/GlamQueue-sub001/internal/usecase/subscription"
)

// The gorm store satisfies the interface the auth handler declares.
var _ handlers.UserStore = (*infraRepo.UserGormStore)(nil)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	userStore := infraRepo.NewUserGormStore(db)
	subscriptionStore := infraRepo.NewSubscriptionGormStore(db)
	intentStore := infraRepo.NewIntentRedisStore(rdb)
	ticketStore := infraRepo.NewTicketRedisStore(rdb)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES: APPOINTMENTS
	// ======================================================
	createUC := ucAppointment.NewCreate(appointmentRepo, auditDispatcher)
	confirmUC := ucAppointment.NewConfirm(appointmentRepo, auditDispatcher)
	completeUC := ucAppointment.NewComplete(appointmentRepo, auditDispatcher)
	cancelUC := ucAppointment.NewCancel(appointmentRepo, auditDispatcher)
	cancelOwnUC := ucAppointment.NewCancelOwn(appointmentRepo, auditDispatcher)
	deleteUC := ucAppointment.NewDelete(appointmentRepo, auditDispatcher)

	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)
	listByDateUC := ucAppointment.NewListByDate(appointmentRepo)
	listByMonthUC := ucAppointment.NewListByMonth(appointmentRepo)
	listOwnUC := ucAppointment.NewListOwn(appointmentRepo)

	// ======================================================
	// USE CASES: INTENT / SUBSCRIPTION / FLOW
	// ======================================================
	captureUC := ucIntent.NewCapture(intentStore)
	reconcileUC := ucIntent.NewReconcile(intentStore, appointmentRepo, createUC)

	checkAccessUC := ucSubscription.NewCheckAccess(subscriptionStore)
	selectPlanUC := ucSubscription.NewSelectPlan(subscriptionStore, auditDispatcher)

	flowCtrl := flow.NewController(checkAccessUC)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(userStore, ticketStore, reconcileUC, flowCtrl, cfg)
	publicHandler := handlers.NewPublicHandler(appointmentRepo, availabilityUC, captureUC)

	clientAppointments := handlers.NewClientAppointmentsHandler(
		createUC,
		listOwnUC,
		cancelOwnUC,
		deleteUC,
	)

	staffAppointments := handlers.NewStaffAppointmentsHandler(
		listByDateUC,
		listByMonthUC,
		confirmUC,
		completeUC,
		cancelUC,
		deleteUC,
	)

	meHandler := handlers.NewMeHandler(db)
	salonHandler := handlers.NewSalonHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	subscriptionHandler := handlers.NewSubscriptionHandler(checkAccessUC, selectPlanUC, flowCtrl)
	flowHandler := handlers.NewFlowHandler(flowCtrl)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/booking-intent", publicHandler.CaptureIntent)
		}

		api.GET("/subscription/plans", subscriptionHandler.Plans)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register-salon", authHandler.RegisterSalon)
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/verify-otp", authHandler.VerifyOTP)
		api.GET("/auth/confirm-email", authHandler.ConfirmEmail)

		// ------------------------------
		// SECURED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.Auth(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/flow/screen", flowHandler.Screen)

			// ------------------------------
			// CLIENT APP
			// ------------------------------
			client := secured.Group("/client")
			{
				client.POST("/appointments", clientAppointments.Create)
				client.GET("/appointments", clientAppointments.List)
				client.PATCH("/appointments/:id/cancel", clientAppointments.Cancel)
				client.DELETE("/appointments/:id", clientAppointments.Delete)
			}

			// ------------------------------
			// STAFF DASHBOARD
			// ------------------------------
			staff := secured.Group("/staff")
			{
				staff.GET("/appointments", staffAppointments.ListByDate)
				staff.GET("/appointments/month", staffAppointments.ListByMonth)
				staff.PATCH("/appointments/:id/confirm", staffAppointments.Confirm)
				staff.PATCH("/appointments/:id/complete", staffAppointments.Complete)
				staff.PATCH("/appointments/:id/cancel", staffAppointments.Cancel)
				staff.DELETE("/appointments/:id", staffAppointments.Delete)
			}

			// ------------------------------
			// SALON ADMIN
			// ------------------------------
			secured.GET("/me/salon", salonHandler.GetMySalon)
			secured.PATCH("/me/salon", salonHandler.UpdateMySalon)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/audit-logs", auditLogsHandler.List)

			secured.GET("/subscription/access", subscriptionHandler.Access)
			secured.POST("/subscription/select", subscriptionHandler.Select)
		}
	}
}
