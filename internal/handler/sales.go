package handler

import (
	"net/http"

	"github.com/joaodevsafe/service-sales-buddy/internal/document"
	"github.com/joaodevsafe/service-sales-buddy/internal/models"
	"github.com/joaodevsafe/service-sales-buddy/internal/settings"
	"github.com/joaodevsafe/service-sales-buddy/internal/store"

	"github.com/gin-gonic/gin"
)

type SaleHandler struct {
	Store    *store.Store
	Settings *settings.Service
}

type SaleItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type CreateSaleRequest struct {
	CustomerID    string            `json:"customerId"`
	PaymentMethod string            `json:"paymentMethod" binding:"required"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1"`
}

func (h *SaleHandler) ListSales(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.State().Sales)
}

func (h *SaleHandler) CreateSale(c *gin.Context) {
	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft := store.SaleDraft{
		CustomerID:    req.CustomerID,
		PaymentMethod: models.PaymentMethod(req.PaymentMethod),
	}
	for _, item := range req.Items {
		draft.Items = append(draft.Items, store.SaleLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	sale, err := h.Store.RecordSale(draft)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sale)
}

// GetReceipt returns the plain-text receipt for one sale.
func (h *SaleHandler) GetReceipt(c *gin.Context) {
	sale := h.Store.State().FindSale(c.Param("id"))
	if sale == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		return
	}

	receipt := document.SaleReceipt(*sale, h.Settings.Company())
	c.String(http.StatusOK, receipt)
}
