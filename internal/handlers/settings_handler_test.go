package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/serenetouch/booking-api/internal/models"
)

func newSettingsRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()

	h := NewSettingsHandler(db)

	r := gin.New()
	r.GET("/api/admin/settings/wallet-address", h.GetWalletAddress)
	r.PUT("/api/admin/settings/wallet-address", h.UpdateWalletAddress)
	return r
}

func TestWalletAddressEmptyWhenUnset(t *testing.T) {
	db := newHandlerDB(t)
	r := newSettingsRouter(t, db)

	w := doJSON(t, r, http.MethodGet, "/api/admin/settings/wallet-address", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", decodeBody(t, w)["address"])
}

func TestWalletAddressRoundTrip(t *testing.T) {
	db := newHandlerDB(t)
	r := newSettingsRouter(t, db)

	w := doJSON(t, r, http.MethodPut, "/api/admin/settings/wallet-address", gin.H{
		"address": "  0xCompanyWallet01  ",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/settings/wallet-address", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0xCompanyWallet01", decodeBody(t, w)["address"])
}

func TestWalletAddressUpsertKeepsSingleRow(t *testing.T) {
	db := newHandlerDB(t)
	r := newSettingsRouter(t, db)

	for _, addr := range []string{"0xFirst", "0xSecond"} {
		w := doJSON(t, r, http.MethodPut, "/api/admin/settings/wallet-address", gin.H{
			"address": addr,
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	var count int64
	require.NoError(t, db.Model(&models.Setting{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var setting models.Setting
	require.NoError(t, db.Where("key = ?", models.SettingCompanyWalletAddress).First(&setting).Error)
	assert.Equal(t, "0xSecond", setting.Value)
}
