// File: handlers/catalog.go
package handlers

import (
	"errors"
	"net/http"

	providerRepo "telecare/database/repository/provider"
	"telecare/middleware"
	"telecare/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the provider directory: categories, providers,
// packages and reviews.
type CatalogHandler struct {
	Svc catalog.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Svc: svc}
}

// GetCategoriesHandler lists all directory categories.
func (h *CatalogHandler) GetCategoriesHandler(c *gin.Context) {
	categories, err := h.Svc.GetCategories()
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetProvidersByCategoryHandler lists providers for one specialization,
// best rated first.
func (h *CatalogHandler) GetProvidersByCategoryHandler(c *gin.Context) {
	providers, err := h.Svc.GetProvidersByCategory(c.Param("category"))
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}

// GetProviderHandler resolves one provider by ID.
func (h *CatalogHandler) GetProviderHandler(c *gin.Context) {
	prov, err := h.Svc.GetProvider(c.Param("id"))
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"provider": prov})
}

// GetProviderPackagesHandler lists a provider's packages, cheapest first.
func (h *CatalogHandler) GetProviderPackagesHandler(c *gin.Context) {
	packages, err := h.Svc.GetPackagesByProvider(c.Param("id"))
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": packages})
}

// AddReviewHandler stores the caller's review of a provider.
func (h *CatalogHandler) AddReviewHandler(c *gin.Context) {
	var input struct {
		AppointmentID string `json:"appointmentID"`
		Rating        int    `json:"rating" binding:"required"`
		Comment       string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	patientID, _ := middleware.Actor(c)

	rev, err := h.Svc.AddReview(patientID, c.Param("id"), input.AppointmentID, input.Rating, input.Comment)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": rev})
}

// GetProviderReviewsHandler lists a provider's reviews, newest first.
func (h *CatalogHandler) GetProviderReviewsHandler(c *gin.Context) {
	reviews, err := h.Svc.GetProviderReviews(c.Param("id"))
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func writeCatalogError(c *gin.Context, err error) {
	if errors.Is(err, providerRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "request failed", "details": err.Error()})
}
