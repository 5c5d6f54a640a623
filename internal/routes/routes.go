package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/slotworks/team-scheduler/internal/audit"
	"github.com/slotworks/team-scheduler/internal/cache"
	"github.com/slotworks/team-scheduler/internal/config"
	"github.com/slotworks/team-scheduler/internal/handlers"
	infraRepo "github.com/slotworks/team-scheduler/internal/infra/repository"
	"github.com/slotworks/team-scheduler/internal/infra/storage"
	"github.com/slotworks/team-scheduler/internal/middleware"
	"github.com/slotworks/team-scheduler/internal/notification"
	ucScheduling "github.com/slotworks/team-scheduler/internal/usecase/scheduling"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	mailer := notification.NewSMTPMailer(cfg)
	notifyDispatcher := notification.NewDispatcher(mailer)

	// Redis is optional; without it the week cache degrades to
	// store reads.
	var availabilityCache *cache.AvailabilityCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		availabilityCache = cache.NewAvailabilityCache(rdb)
	}

	avatarStore := storage.NewAvatarStore(
		cfg.S3Bucket,
		cfg.S3Region,
		cfg.S3AccessKey,
		cfg.S3SecretKey,
	)

	// ======================================================
	// USE CASES — SCHEDULING
	// ======================================================
	slotsUC := ucScheduling.NewGetAvailableSlots(
		bookingRepo,
		availabilityCache,
	)

	createBookingUC := ucScheduling.NewCreateBooking(
		bookingRepo,
		notifyDispatcher,
		auditDispatcher,
	)

	cancelBookingUC := ucScheduling.NewCancelBooking(
		bookingRepo,
		auditDispatcher,
	)

	listByDateUC := ucScheduling.NewListBookingsByDate(
		bookingRepo,
	)

	listByMonthUC := ucScheduling.NewListBookingsByMonth(
		bookingRepo,
	)

	replaceAvailabilityUC := ucScheduling.NewReplaceWeeklyAvailability(
		bookingRepo,
		availabilityCache,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	teams := handlers.NewTeamLoader(db)

	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	teamHandler := handlers.NewTeamHandler(db)
	profileHandler := handlers.NewProfileHandler(db, avatarStore)
	contractorHandler := handlers.NewContractorHandler(db, auditDispatcher)
	availabilityHandler := handlers.NewAvailabilityHandler(db, replaceAvailabilityUC)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		cancelBookingUC,
		listByDateUC,
		listByMonthUC,
		bookingRepo,
		teams,
	)

	slotsHandler := handlers.NewSlotsHandler(slotsUC, teams)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		teams,
		slotsUC,
		createBookingUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC WIDGET
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/contractors", publicHandler.ListContractors)
			publicAPI.GET("/:slug/available-times", publicHandler.AvailableTimes)
			publicAPI.POST("/:slug/bookings", publicHandler.CreateBooking)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me/profile", profileHandler.Update)
			secured.POST("/me/avatar", profileHandler.UploadAvatar)

			secured.GET("/me/availability", availabilityHandler.Get)
			secured.PUT("/me/availability", availabilityHandler.Update)

			secured.GET("/me/available-times", slotsHandler.List)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/me/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.ListByDate)
			secured.GET("/me/bookings/month", bookingHandler.ListByMonth)
			secured.PATCH("/me/bookings/:id/cancel", bookingHandler.Cancel)

			// ------------------------------
			// OWNER ONLY
			// ------------------------------
			owner := secured.Group("/")
			owner.Use(middleware.RequireRole(middleware.RoleOwner))
			{
				owner.GET("/me/team", teamHandler.GetMeTeam)
				owner.PATCH("/me/team", teamHandler.UpdateMeTeam)

				owner.GET("/me/contractors", contractorHandler.List)
				owner.POST("/me/contractors", contractorHandler.Create)
				owner.DELETE("/me/contractors/:id", contractorHandler.Delete)

				owner.GET("/me/team-bookings", bookingHandler.ListForTeam)

				owner.GET("/me/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
