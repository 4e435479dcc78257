package handlers

import (
	"net/http"

	doctorRepo "sihati/database/repository/doctor"
	"sihati/middleware"
	"sihati/models"

	"github.com/gin-gonic/gin"
)

// GetMyProfile returns the caller's own profile.
func GetMyProfile(c *gin.Context) {
	callerID := c.GetString(middleware.ContextCallerID)

	profile, err := UserService.GetProfileByID(c.Request.Context(), callerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SearchDoctors serves the patient-facing doctor directory. Both query
// filters are optional substring matches.
func SearchDoctors(c *gin.Context) {
	criteria := doctorRepo.DoctorSearchCriteria{
		Specialization: c.Query("specialization"),
		Wilaya:         c.Query("wilaya"),
	}

	listings, err := UserService.SearchDoctors(c.Request.Context(), criteria)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "doctor search failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": listings})
}

// UpdateDoctorSettings stores the calling doctor's practice settings.
func UpdateDoctorSettings(c *gin.Context) {
	callerID := c.GetString(middleware.ContextCallerID)

	var input models.DoctorSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	doctor, err := UserService.UpdateDoctorSettings(c.Request.Context(), callerID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doctor)
}

// UpdateMedicalProfile stores the calling patient's blood type and position.
func UpdateMedicalProfile(c *gin.Context) {
	callerID := c.GetString(middleware.ContextCallerID)

	var input models.MedicalProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := UserService.UpdateMedicalProfile(c.Request.Context(), callerID, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update medical profile", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "medical profile updated"})
}
