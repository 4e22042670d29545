package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/headz-api/internal/audit"
	"github.com/BruksfildServices01/headz-api/internal/cache"
	"github.com/BruksfildServices01/headz-api/internal/config"
	"github.com/BruksfildServices01/headz-api/internal/handlers"
	"github.com/BruksfildServices01/headz-api/internal/imaging"
	infraRepo "github.com/BruksfildServices01/headz-api/internal/infra/repository"
	"github.com/BruksfildServices01/headz-api/internal/middleware"
	"github.com/BruksfildServices01/headz-api/internal/storage"
	ucAppointment "github.com/BruksfildServices01/headz-api/internal/usecase/appointment"
	ucGallery "github.com/BruksfildServices01/headz-api/internal/usecase/gallery"
	"github.com/BruksfildServices01/headz-api/internal/usecase/photo"
	ucProfile "github.com/BruksfildServices01/headz-api/internal/usecase/profile"
	ucSaved "github.com/BruksfildServices01/headz-api/internal/usecase/saved"
	ucTryOn "github.com/BruksfildServices01/headz-api/internal/usecase/tryon"
	"github.com/BruksfildServices01/headz-api/internal/validators"
)

// Infra holds the process-wide singletons built in main.
type Infra struct {
	DB    *gorm.DB
	Store storage.Store
	Cache cache.Cache
	Audit audit.Recorder
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, infra Infra) {

	// ======================================================
	// REPOSITORIES
	// ======================================================
	hairstyleRepo := infraRepo.NewHairstyleGormRepository(infra.DB)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(infra.DB)
	tryonRepo := infraRepo.NewTryOnGormRepository(infra.DB)
	profileRepo := infraRepo.NewProfileGormRepository(infra.DB)

	intake := photo.NewIntake(infra.Store, imaging.Options{
		MaxBytes:     cfg.Image.MaxUploadBytes,
		MaxDimension: cfg.Image.MaxDimension,
		Transcode:    cfg.Image.Transcode,
	})

	// ======================================================
	// USE CASES
	// ======================================================
	gallery := ucGallery.NewGallery(hairstyleRepo, infra.Cache, intake, infra.Audit)

	var emailCheck ucProfile.EmailCheck
	if cfg.CheckEmailDomain {
		emailCheck = validators.IsEmailDomainValid
	}
	profiles := ucProfile.NewProfiles(profileRepo, intake, infra.Audit, emailCheck)

	tryon := ucTryOn.NewTryOn(tryonRepo, hairstyleRepo, intake, infra.Audit)
	saved := ucSaved.NewSavedHairstyles(tryonRepo, hairstyleRepo, infra.Audit)

	salon := ucAppointment.NewSalon(cfg.Salon)
	appointmentUC := handlers.AppointmentUseCases{
		Create:       ucAppointment.NewCreateAppointment(appointmentRepo, profileRepo, salon, infra.Audit),
		Update:       ucAppointment.NewUpdateAppointment(appointmentRepo, salon, infra.Audit),
		Cancel:       ucAppointment.NewCancelAppointment(appointmentRepo, salon, infra.Audit),
		Confirm:      ucAppointment.NewConfirmAppointment(appointmentRepo, infra.Audit),
		Complete:     ucAppointment.NewCompleteAppointment(appointmentRepo, salon, infra.Audit),
		Delete:       ucAppointment.NewDeleteAppointment(appointmentRepo, infra.Audit),
		List:         ucAppointment.NewListAppointments(appointmentRepo, salon),
		Availability: ucAppointment.NewGetAvailability(appointmentRepo, salon),
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	galleryHandler := handlers.NewGalleryHandler(gallery)
	meHandler := handlers.NewMeHandler(profiles)
	tryonHandler := handlers.NewTryOnHandler(tryon)
	savedHandler := handlers.NewSavedHandler(saved)
	appointmentHandler := handlers.NewAppointmentHandler(salon, appointmentUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(infra.DB)

	uploadLimit := middleware.BodyLimit(middleware.UploadBodyLimit(cfg.Image.MaxUploadBytes))

	// ======================================================
	// LOCAL UPLOADS
	// ======================================================
	if local, ok := infra.Store.(*storage.LocalStore); ok {
		r.Static(storage.LocalRoute, local.Dir())
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")

	// ------------------------------
	// PUBLIC
	// ------------------------------
	public := api.Group("/")
	public.Use(middleware.OptionalAuth(cfg))
	{
		public.GET("/categories", galleryHandler.ListCategories)
		public.GET("/hairstyles", galleryHandler.ListHairstyles)
		public.GET("/hairstyles/:id", galleryHandler.GetHairstyle)
		public.GET("/appointments/availability", appointmentHandler.Availability)
	}

	// ------------------------------
	// AUTHENTICATED
	// ------------------------------
	secured := api.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.POST("/hairstyles", uploadLimit, galleryHandler.CreateHairstyle)
		secured.POST("/hairstyles/:id/like", galleryHandler.Like)

		secured.GET("/me", meHandler.GetMe)
		secured.GET("/me/profile", meHandler.GetProfile)
		secured.PUT("/me/profile", meHandler.UpdateProfile)
		secured.POST("/me/profile/picture", uploadLimit, meHandler.UploadPicture)

		// ------------------------------
		// TRY-ON
		// ------------------------------
		secured.POST("/tryon-sessions", uploadLimit, tryonHandler.Start)
		secured.GET("/tryon-sessions", tryonHandler.List)
		secured.GET("/tryon-sessions/:id", tryonHandler.Get)
		secured.PUT("/tryon-sessions/:id/hairstyle", tryonHandler.SelectStyle)
		secured.POST("/tryon-sessions/:id/preview", tryonHandler.Preview)
		secured.POST("/tryon-sessions/:id/back", tryonHandler.Back)
		secured.POST("/tryon-sessions/:id/save", tryonHandler.Save)
		secured.DELETE("/tryon-sessions/:id", tryonHandler.Delete)

		secured.GET("/saved-hairstyles", savedHandler.List)
		secured.POST("/saved-hairstyles", savedHandler.Save)
		secured.DELETE("/saved-hairstyles/:hairstyle_id", savedHandler.Remove)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		secured.GET("/appointments", appointmentHandler.List)
		secured.POST("/appointments", appointmentHandler.Create)
		secured.PATCH("/appointments/:id", appointmentHandler.Update)
		secured.POST("/appointments/:id/cancel", appointmentHandler.Cancel)
		secured.DELETE("/appointments/:id", appointmentHandler.Delete)
	}

	// ------------------------------
	// STAFF
	// ------------------------------
	staff := api.Group("/")
	staff.Use(middleware.AuthMiddleware(cfg), middleware.RequireStaff())
	{
		staff.POST("/categories", galleryHandler.CreateCategory)
		staff.GET("/profiles", meHandler.ListProfiles)
		staff.POST("/appointments/:id/confirm", appointmentHandler.Confirm)
		staff.POST("/appointments/:id/complete", appointmentHandler.Complete)
		staff.GET("/audit-logs", auditLogsHandler.List)
	}
}
