package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/dto"
	apierrors "github.com/Sohype-Khaled/PluseOneBlogTask/internal/errors"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/services"
)

// TaxonomyHandler serves the public category and tag listings.
type TaxonomyHandler struct {
	taxonomyService *services.TaxonomyService
}

// NewTaxonomyHandler creates a new TaxonomyHandler.
func NewTaxonomyHandler(taxonomyService *services.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{
		taxonomyService: taxonomyService,
	}
}

// ListCategories returns categories matching the optional search term.
func (h *TaxonomyHandler) ListCategories(c *gin.Context) {
	categories, err := h.taxonomyService.ListCategories(c.Query("search"))
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch categories.")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryDTOs(categories))
}

// ListTags returns tags matching the optional search term.
func (h *TaxonomyHandler) ListTags(c *gin.Context) {
	tags, err := h.taxonomyService.ListTags(c.Query("search"))
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tags.")
		return
	}

	c.JSON(http.StatusOK, dto.ToTagDTOs(tags))
}
