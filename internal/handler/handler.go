package handler

import (
	"errors"
	"net/http"

	"github.com/joaodevsafe/service-sales-buddy/internal/store"

	"github.com/gin-gonic/gin"
)

// respondStoreError maps container errors to HTTP statuses: validation and
// business-rule rejections are client errors, unknown ids are 404, anything
// else is a persistence failure.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrValidation),
		errors.Is(err, store.ErrInsufficientStock),
		errors.Is(err, store.ErrCustomerNotFound),
		errors.Is(err, store.ErrProductNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist changes"})
	}
}
