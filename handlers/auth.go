package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"sihati/models"
	"sihati/services/user"
	"sihati/utils"

	"github.com/gin-gonic/gin"
)

// Register creates an account and returns a session token.
func Register(c *gin.Context) {
	var input models.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := UserService.Register(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, user.ErrPhoneTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, session)
}

// Login exchanges phone-and-password credentials for a session token.
func Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := UserService.Login(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// Logout revokes the presented token for the remainder of its lifetime.
func Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(header, "Bearer ")

	// The auth middleware already validated the token; revoke for the
	// maximum issued lifetime so it dies regardless of remaining validity.
	if err := utils.RevokeToken(c.Request.Context(), tokenString, 72*time.Hour); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
