package routes

import (
	"net/http"

	"sihati/handlers"
	"sihati/middleware"
	"sihati/utils"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the public account endpoints plus logout.
func RegisterAuthRoutes(r *gin.Engine) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", handlers.Register)
		api.POST("/login", handlers.Login)

		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/logout", handlers.Logout)
	}
}

// RegisterUserRoutes registers the profile and directory endpoints.
func RegisterUserRoutes(r *gin.Engine) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", handlers.GetMyProfile)
		api.GET("/doctors", handlers.SearchDoctors)
		api.PUT("/doctor-settings", middleware.RequireDoctor(), handlers.UpdateDoctorSettings)
		api.PUT("/medical-profile", middleware.RequirePatient(), handlers.UpdateMedicalProfile)
	}
}

// RegisterScheduleRoutes registers weekly availability management.
func RegisterScheduleRoutes(r *gin.Engine) {
	api := r.Group("/api/schedules")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/doctor/:doctorID", handlers.ListDoctorAvailability)

		doctor := api.Group("")
		doctor.Use(middleware.RequireDoctor())
		doctor.POST("", handlers.AddAvailability)
		doctor.DELETE("/:windowID", handlers.DeleteAvailability)
	}
}

// RegisterAppointmentRoutes registers booking and the status lifecycle.
func RegisterAppointmentRoutes(r *gin.Engine) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", handlers.ListMyAppointments)
		api.POST("", middleware.RequirePatient(), handlers.BookAppointment)
		api.PATCH("/:appointmentID/status", middleware.RequireDoctor(), handlers.UpdateAppointmentStatus)
	}
}

// RegisterDonationRoutes registers blood-donation broadcasts.
func RegisterDonationRoutes(r *gin.Engine) {
	api := r.Group("/api/donations")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", handlers.ListActiveDonationRequests)
		api.POST("", middleware.RequirePatient(), handlers.CreateDonationRequest)
		api.PATCH("/:requestID/status", middleware.RequirePatient(), handlers.UpdateDonationRequestStatus)
	}
}

// RegisterNotificationRoutes registers the polled notification feed.
func RegisterNotificationRoutes(r *gin.Engine) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", handlers.ListMyNotifications)
		api.PATCH("/:notificationID/read", handlers.MarkNotificationRead)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes wires every route group onto the engine.
func RegisterRoutes(r *gin.Engine) {
	RegisterHealthRoute(r)
	RegisterAuthRoutes(r)
	RegisterUserRoutes(r)
	RegisterScheduleRoutes(r)
	RegisterAppointmentRoutes(r)
	RegisterDonationRoutes(r)
	RegisterNotificationRoutes(r)
}
