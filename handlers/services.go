package handlers

import (
	"sihati/services/booking"
	"sihati/services/donation"
	"sihati/services/notification"
	"sihati/services/schedule"
	"sihati/services/user"
)

// Service singletons the handlers dispatch to. main wires them once at
// startup, after the database and caches are up.
var (
	UserService         user.UserService
	ScheduleService     schedule.ScheduleService
	BookingService      booking.BookingService
	DonationService     donation.DonationService
	NotificationService notification.NotificationService
)
