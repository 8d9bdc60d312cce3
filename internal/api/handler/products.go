package handler

import (
	"net/http"
	"strconv"

	"marketgogo/backend/internal/config"
	"marketgogo/backend/internal/translation"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 20

var productFields = []string{"name", "description"}

// ListProducts returns a page of products with name and description rendered
// in the active locale.
func (h *Handler) ListProducts(c *gin.Context) {
	limit := defaultPageSize
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v >= 0 {
		offset = v
	}

	products, err := h.Storage.ListProducts(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}

	target := h.activeLocale(c)
	for i := range products {
		h.localize(c, &products[i], target)
	}

	c.JSON(http.StatusOK, gin.H{
		"locale":   target,
		"products": products,
	})
}

// GetProduct returns one product by public ID, localized to the active
// locale.
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.Storage.GetProductByPublicID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	target := h.activeLocale(c)
	h.localize(c, product, target)

	c.JSON(http.StatusOK, gin.H{
		"locale":  target,
		"product": product,
	})
}

// localize rewrites the translatable fields of a record in place. The record
// here is always a request-scoped copy loaded from storage, so mutating it
// is safe.
func (h *Handler) localize(c *gin.Context, rec translation.Record, target string) {
	h.Translations.LocalizeRecord(c.Request.Context(), rec, productFields, target, config.DefaultLocale)
}
