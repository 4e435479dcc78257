// File: sihati/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sihati/config"
	"sihati/cron"
	"sihati/database"
	appointmentRepo "sihati/database/repository/appointment"
	doctorRepo "sihati/database/repository/doctor"
	donationRepo "sihati/database/repository/donation"
	notificationRepo "sihati/database/repository/notification"
	patientRepo "sihati/database/repository/patient"
	profileRepo "sihati/database/repository/profile"
	scheduleRepo "sihati/database/repository/schedule"
	"sihati/handlers"
	"sihati/middleware"
	"sihati/routes"
	"sihati/services/booking"
	"sihati/services/donation"
	"sihati/services/notification"
	"sihati/services/schedule"
	"sihati/services/tasks"
	"sihati/services/user"
	"sihati/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// repositories.
	profiles := profileRepo.NewMongoProfileRepo()
	doctors := doctorRepo.NewMongoDoctorRepo()
	patients := patientRepo.NewMongoPatientRepo()
	schedules := scheduleRepo.NewMongoScheduleRepo()
	appointments := appointmentRepo.NewMongoAppointmentRepo()
	donations := donationRepo.NewMongoDonationRepo()
	notifications := notificationRepo.NewMongoNotificationRepo()

	// reminder queue client.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Repo: notifications,
	}

	handlers.UserService = &user.DefaultUserService{
		Profiles: profiles,
		Doctors:  doctors,
		Patients: patients,
		Cache:    utils.GetCacheClient(),
	}
	handlers.ScheduleService = &schedule.DefaultScheduleService{
		Repo: schedules,
	}
	handlers.BookingService = &booking.DefaultBookingService{
		Doctors:      doctors,
		Profiles:     profiles,
		Appointments: appointments,
		Notifier:     notificationService,
		Reminders:    &tasks.ReminderScheduler{Client: asynqClient},
		ReminderLead: config.AppConfig.ReminderLeadMinutes,
	}
	handlers.DonationService = &donation.DefaultDonationService{
		Repo:     donations,
		Patients: patients,
		Profiles: profiles,
		Notifier: notificationService,
		Cache:    utils.GetCacheClient(),
	}
	handlers.NotificationService = notificationService

	// Background reminder worker and health monitor.
	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	routes.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("main: listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: forced shutdown: %v", err)
	}
	logger.Info("main: exited cleanly")
}
