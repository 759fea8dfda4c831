// File: handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"telecare/services/identity"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes registration and sign-in endpoints for both roles.
type AuthHandler struct {
	Identity identity.IdentityService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(svc identity.IdentityService) *AuthHandler {
	return &AuthHandler{Identity: svc}
}

// RegisterPatientHandler creates a patient account and returns a token.
func (h *AuthHandler) RegisterPatientHandler(c *gin.Context) {
	var req identity.PatientRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	resp, err := h.Identity.RegisterPatient(req)
	if err != nil {
		writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RegisterProviderHandler creates a provider account and returns a token.
func (h *AuthHandler) RegisterProviderHandler(c *gin.Context) {
	var req identity.ProviderRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	resp, err := h.Identity.RegisterProvider(req)
	if err != nil {
		writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

type signInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignInPatientHandler authenticates a patient.
func (h *AuthHandler) SignInPatientHandler(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	resp, err := h.Identity.SignInPatient(req.Email, req.Password)
	if err != nil {
		writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignInProviderHandler authenticates a provider.
func (h *AuthHandler) SignInProviderHandler(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	resp, err := h.Identity.SignInProvider(req.Email, req.Password)
	if err != nil {
		writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func writeAuthError(c *gin.Context, err error) {
	var authErr *identity.AuthError
	if errors.As(err, &authErr) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "authentication failed", "details": err.Error()})
}
