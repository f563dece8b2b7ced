package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/autoservehq/autoserve-api/internal/audit"
	"github.com/autoservehq/autoserve-api/internal/config"
	"github.com/autoservehq/autoserve-api/internal/handlers"
	infraRepo "github.com/autoservehq/autoserve-api/internal/infra/repository"
	"github.com/autoservehq/autoserve-api/internal/middleware"
	"github.com/autoservehq/autoserve-api/internal/models"
	"github.com/autoservehq/autoserve-api/internal/notify"
	"github.com/autoservehq/autoserve-api/internal/storage"
	ucBooking "github.com/autoservehq/autoserve-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	uploader *storage.Uploader,
	cfg *config.Config,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	eventPublisher := notify.NewPublisher(rdb)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
		eventPublisher,
	)

	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)

	listBookingsUC := ucBooking.NewListBookings(bookingRepo)

	acceptBookingUC := ucBooking.NewAcceptBooking(bookingRepo, auditDispatcher)
	rejectBookingUC := ucBooking.NewRejectBooking(bookingRepo, auditDispatcher)
	completeBookingUC := ucBooking.NewCompleteBooking(bookingRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	businessHandler := handlers.NewBusinessHandler(db)
	vehicleHandler := handlers.NewVehicleHandler(db, uploader)
	serviceHandler := handlers.NewServiceHandler(db, uploader, auditDispatcher)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		availabilityUC,
		listBookingsUC,
	)

	requestHandler := handlers.NewRequestHandler(
		listBookingsUC,
		acceptBookingUC,
		rejectBookingUC,
		completeBookingUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

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
			publicAPI.GET("/categories", serviceHandler.ListCategories)
			publicAPI.GET("/services", serviceHandler.ListPublic)
			publicAPI.GET("/services/:id", serviceHandler.GetPublic)
			publicAPI.GET("/services/:id/availability", bookingHandler.Availability)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)
			secured.PUT("/me/push-token", meHandler.UpdatePushToken)

			// ------------------------------
			// CAR OWNER
			// ------------------------------
			owner := secured.Group("/")
			owner.Use(middleware.RequireUserType(models.UserTypeCarOwner))
			{
				owner.GET("/me/vehicles", vehicleHandler.List)
				owner.POST("/me/vehicles", vehicleHandler.Create)
				owner.PATCH("/me/vehicles/:id", vehicleHandler.Update)
				owner.DELETE("/me/vehicles/:id", vehicleHandler.Delete)
				owner.POST("/me/vehicles/:id/photo", vehicleHandler.UploadPhoto)

				owner.POST("/me/bookings", bookingHandler.Create)
				owner.GET("/me/bookings", bookingHandler.ListMine)
			}

			// ------------------------------
			// SERVICE PROVIDER
			// ------------------------------
			provider := secured.Group("/")
			provider.Use(middleware.RequireUserType(models.UserTypeServiceProvider))
			{
				provider.GET("/me/business", businessHandler.GetMeBusiness)
				provider.PATCH("/me/business", businessHandler.UpdateMeBusiness)

				provider.GET("/me/services", serviceHandler.List)
				provider.POST("/me/services", serviceHandler.Create)
				provider.PATCH("/me/services/:id", serviceHandler.Update)
				provider.POST("/me/services/:id/image", serviceHandler.UploadImage)

				provider.GET("/me/requests", requestHandler.List)
				provider.PATCH("/me/requests/:id/accept", requestHandler.Accept)
				provider.PATCH("/me/requests/:id/reject", requestHandler.Reject)
				provider.PATCH("/me/requests/:id/complete", requestHandler.Complete)

				provider.GET("/me/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
