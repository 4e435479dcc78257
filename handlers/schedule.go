package handlers

import (
	"errors"
	"net/http"

	"sihati/middleware"
	"sihati/models"
	"sihati/services/schedule"

	"github.com/gin-gonic/gin"
)

// AddAvailability adds one weekly availability window for the calling doctor.
func AddAvailability(c *gin.Context) {
	callerID := c.GetString(middleware.ContextCallerID)

	var input models.WeeklyAvailabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	window, err := ScheduleService.Add(c.Request.Context(), callerID, input)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidDay) || errors.Is(err, schedule.ErrInvalidWindow) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add availability", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, window)
}

// ListDoctorAvailability returns a doctor's weekly windows, ordered by day
// then start time. Patients use it to see the doctor's schedule before
// booking.
func ListDoctorAvailability(c *gin.Context) {
	doctorID := c.Param("doctorID")

	windows, err := ScheduleService.ListByDoctor(c.Request.Context(), doctorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list availability", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": windows})
}

// DeleteAvailability removes one of the calling doctor's windows.
func DeleteAvailability(c *gin.Context) {
	callerID := c.GetString(middleware.ContextCallerID)
	windowID := c.Param("windowID")

	if err := ScheduleService.Delete(c.Request.Context(), callerID, windowID); err != nil {
		if errors.Is(err, schedule.ErrNotOwner) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "availability window not found", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "availability window deleted"})
}
