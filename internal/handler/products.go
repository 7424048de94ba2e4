package handler

import (
	"net/http"

	"github.com/joaodevsafe/service-sales-buddy/internal/models"
	"github.com/joaodevsafe/service-sales-buddy/internal/store"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	Store *store.Store
}

type ProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	MinStock int     `json:"minStock"`
	Supplier string  `json:"supplier"`
}

type MovementRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Type      string `json:"type" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	Reason    string `json:"reason" binding:"required"`
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.State().Products)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.Store.AddProduct(store.ProductInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Stock:    req.Stock,
		MinStock: req.MinStock,
		Supplier: req.Supplier,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.Store.UpdateProduct(models.Product{
		ID:       c.Param("id"),
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Stock:    req.Stock,
		MinStock: req.MinStock,
		Supplier: req.Supplier,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) GetLowStockAlerts(c *gin.Context) {
	alerts := []models.Product{}
	for _, product := range h.Store.State().Products {
		if product.LowStock() {
			alerts = append(alerts, product)
		}
	}
	c.JSON(http.StatusOK, alerts)
}

func (h *ProductHandler) ListMovements(c *gin.Context) {
	movements := h.Store.State().StockMovements

	if productID := c.Query("productId"); productID != "" {
		filtered := []models.StockMovement{}
		for _, movement := range movements {
			if movement.ProductID == productID {
				filtered = append(filtered, movement)
			}
		}
		movements = filtered
	}

	c.JSON(http.StatusOK, movements)
}

// RegisterMovement handles the manual stock movement form. Only "in" and
// "out" arrive through this endpoint; sale movements are produced by the
// sales flow.
func (h *ProductHandler) RegisterMovement(c *gin.Context) {
	var req MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movementType := models.MovementType(req.Type)
	if movementType != models.MovementIn && movementType != models.MovementOut {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Movement type must be 'in' or 'out'"})
		return
	}

	movement, err := h.Store.RegisterMovement(store.MovementInput{
		ProductID: req.ProductID,
		Type:      movementType,
		Quantity:  req.Quantity,
		Reason:    req.Reason,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, movement)
}
