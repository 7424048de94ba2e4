package handler

import (
	"net/http"
	"strings"

	"github.com/joaodevsafe/service-sales-buddy/internal/models"
	"github.com/joaodevsafe/service-sales-buddy/internal/store"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	Store *store.Store
}

type CustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers := h.Store.State().Customers

	if search := strings.ToLower(c.Query("search")); search != "" {
		filtered := []models.Customer{}
		for _, customer := range customers {
			if strings.Contains(strings.ToLower(customer.Name), search) ||
				strings.Contains(customer.Phone, search) {
				filtered = append(filtered, customer)
			}
		}
		customers = filtered
	}

	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.Store.AddCustomer(store.CustomerInput{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.Store.UpdateCustomer(models.Customer{
		ID:    c.Param("id"),
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}
