package handlers

import (
	"errors"
	"net/http"

	"sihati/middleware"
	"sihati/models"
	"sihati/services/donation"

	"github.com/gin-gonic/gin"
)

// CreateDonationRequest opens a blood-donation broadcast anchored at the
// calling patient's position and notifies every matching patient nearby.
func CreateDonationRequest(c *gin.Context) {
	callerID := c.GetString(middleware.ContextCallerID)

	var input models.DonationRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := DonationService.CreateRequest(c.Request.Context(), callerID, input)
	if err != nil {
		switch {
		case errors.Is(err, donation.ErrMissingBloodType), errors.Is(err, donation.ErrLocationUnavailable):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create donation request", "details": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ListActiveDonationRequests returns the open broadcasts, newest first.
func ListActiveDonationRequests(c *gin.Context) {
	requests, err := DonationService.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list donation requests", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// UpdateDonationRequestStatus closes one of the caller's broadcasts.
func UpdateDonationRequestStatus(c *gin.Context) {
	callerID := c.GetString(middleware.ContextCallerID)
	requestID := c.Param("requestID")

	var input struct {
		Status string `json:"status" binding:"required,oneof=fulfilled cancelled"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	request, err := DonationService.UpdateStatus(c.Request.Context(), callerID, requestID, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, donation.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, donation.ErrIllegalStatus):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "status update failed", "details": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, request)
}
