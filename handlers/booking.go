package handlers

import (
	"errors"
	"net/http"

	"sihati/middleware"
	"sihati/models"
	"sihati/services/booking"

	"github.com/gin-gonic/gin"
)

// BookAppointment creates a pending appointment for the calling patient.
func BookAppointment(c *gin.Context) {
	callerID := c.GetString(middleware.ContextCallerID)

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	req.PatientID = callerID

	appt, err := BookingService.Book(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrMissingFields), errors.Is(err, booking.ErrMissingSessionType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "booking failed", "details": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// UpdateAppointmentStatus applies one status transition on behalf of the
// owning doctor.
func UpdateAppointmentStatus(c *gin.Context) {
	callerID := c.GetString(middleware.ContextCallerID)
	appointmentID := c.Param("appointmentID")

	var input struct {
		Status string `json:"status" binding:"required,oneof=confirmed cancelled completed"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := BookingService.UpdateStatus(c.Request.Context(), callerID, appointmentID, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrIllegalTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "status update failed", "details": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListMyAppointments returns the caller's appointments, routed by role and
// optionally filtered by ?status=.
func ListMyAppointments(c *gin.Context) {
	callerID := c.GetString(middleware.ContextCallerID)
	status := c.Query("status")

	var (
		appts []models.Appointment
		err   error
	)
	if c.GetString(middleware.ContextCallerRole) == models.RoleDoctor {
		appts, err = BookingService.ListForDoctor(c.Request.Context(), callerID, status)
	} else {
		appts, err = BookingService.ListForPatient(c.Request.Context(), callerID, status)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list appointments", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
