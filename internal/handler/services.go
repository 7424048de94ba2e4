package handler

import (
	"net/http"

	"github.com/joaodevsafe/service-sales-buddy/internal/document"
	"github.com/joaodevsafe/service-sales-buddy/internal/models"
	"github.com/joaodevsafe/service-sales-buddy/internal/settings"
	"github.com/joaodevsafe/service-sales-buddy/internal/store"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	Store    *store.Store
	Settings *settings.Service
}

type CreateServiceOrderRequest struct {
	CustomerID    string  `json:"customerId" binding:"required"`
	Device        string  `json:"device" binding:"required"`
	Issue         string  `json:"issue" binding:"required"`
	Status        string  `json:"status"`
	EstimatedCost float64 `json:"estimatedCost"`
	Notes         string  `json:"notes"`
}

type UpdateServiceOrderRequest struct {
	Device        string  `json:"device" binding:"required"`
	Issue         string  `json:"issue" binding:"required"`
	Status        string  `json:"status" binding:"required"`
	EstimatedCost float64 `json:"estimatedCost"`
	FinalCost     float64 `json:"finalCost"`
	Notes         string  `json:"notes"`
}

func (h *ServiceHandler) ListServiceOrders(c *gin.Context) {
	orders := h.Store.State().ServiceOrders

	if status := c.Query("status"); status != "" {
		filtered := []models.ServiceOrder{}
		for _, order := range orders {
			if string(order.Status) == status {
				filtered = append(filtered, order)
			}
		}
		orders = filtered
	}

	c.JSON(http.StatusOK, orders)
}

func (h *ServiceHandler) CreateServiceOrder(c *gin.Context) {
	var req CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Store.AddServiceOrder(store.ServiceOrderInput{
		CustomerID:    req.CustomerID,
		Device:        req.Device,
		Issue:         req.Issue,
		Status:        models.ServiceStatus(req.Status),
		EstimatedCost: req.EstimatedCost,
		Notes:         req.Notes,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *ServiceHandler) UpdateServiceOrder(c *gin.Context) {
	var req UpdateServiceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Store.UpdateServiceOrder(models.ServiceOrder{
		ID:            c.Param("id"),
		Device:        req.Device,
		Issue:         req.Issue,
		Status:        models.ServiceStatus(req.Status),
		EstimatedCost: req.EstimatedCost,
		FinalCost:     req.FinalCost,
		Notes:         req.Notes,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// GetOrderSlip returns the plain-text service order slip.
func (h *ServiceHandler) GetOrderSlip(c *gin.Context) {
	order := h.Store.State().FindServiceOrder(c.Param("id"))
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service order not found"})
		return
	}

	company := h.Settings.Company()
	system := h.Settings.System()
	slip := document.ServiceOrderSlip(*order, company, system.DefaultServiceWarranty)

	c.String(http.StatusOK, slip)
}
