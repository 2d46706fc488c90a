package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/serenetouch/booking-api/internal/httperr"
	"github.com/serenetouch/booking-api/internal/models"
)

type SettingsHandler struct {
	db *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{db: db}
}

type UpdateWalletAddressRequest struct {
	Address *string `json:"address" binding:"required"`
}

// GetWalletAddress returns the company receiving address shown on the
// payment instructions screen; empty when not configured yet.
func (h *SettingsHandler) GetWalletAddress(c *gin.Context) {
	var setting models.Setting
	err := h.db.
		Where("key = ?", models.SettingCompanyWalletAddress).
		First(&setting).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		logrus.WithError(err).Error("failed to fetch wallet address setting")
		httperr.Internal(c, "failed_to_get_setting", "Failed to fetch setting.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"address": setting.Value,
	})
}

func (h *SettingsHandler) UpdateWalletAddress(c *gin.Context) {
	var req UpdateWalletAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid address format.")
		return
	}

	setting := models.Setting{
		Key:   models.SettingCompanyWalletAddress,
		Value: strings.TrimSpace(*req.Address),
	}

	if err := h.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&setting).Error; err != nil {
		logrus.WithError(err).Error("failed to update wallet address setting")
		httperr.Internal(c, "failed_to_update_setting", "Failed to update setting.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
