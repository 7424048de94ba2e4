package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/joaodevsafe/service-sales-buddy/internal/models"
	"github.com/joaodevsafe/service-sales-buddy/internal/settings"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	Settings *settings.Service
}

func (h *SettingsHandler) GetCompany(c *gin.Context) {
	c.JSON(http.StatusOK, h.Settings.Company())
}

func (h *SettingsHandler) UpdateCompany(c *gin.Context) {
	var company models.CompanySettings
	if err := c.ShouldBindJSON(&company); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Settings.SaveCompany(company); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save company settings"})
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *SettingsHandler) GetUser(c *gin.Context) {
	c.JSON(http.StatusOK, h.Settings.User())
}

func (h *SettingsHandler) UpdateUser(c *gin.Context) {
	var user models.UserSettings
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Settings.SaveUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user settings"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *SettingsHandler) GetSystem(c *gin.Context) {
	c.JSON(http.StatusOK, h.Settings.System())
}

func (h *SettingsHandler) UpdateSystem(c *gin.Context) {
	var system models.SystemSettings
	if err := c.ShouldBindJSON(&system); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Settings.SaveSystem(system); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save system settings"})
		return
	}
	c.JSON(http.StatusOK, system)
}

// ExportBackup serves the full-state backup as a downloadable JSON file.
func (h *SettingsHandler) ExportBackup(c *gin.Context) {
	data, err := h.Settings.Export()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export backup"})
		return
	}

	filename := fmt.Sprintf("techassist-backup-%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/json", data)
}

// ImportBackup restores a backup document. The imported data is written to
// storage only; a restart is required before the container serves it.
func (h *SettingsHandler) ImportBackup(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil || len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Backup file is empty or unreadable"})
		return
	}

	if err := h.Settings.Import(data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Backup restored successfully. Restart the application to load the imported data."})
}
