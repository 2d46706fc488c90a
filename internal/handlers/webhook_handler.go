package handlers

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/serenetouch/booking-api/internal/config"
	"github.com/serenetouch/booking-api/internal/httperr"
	ucBooking "github.com/serenetouch/booking-api/internal/usecase/booking"
)

const signatureHeader = "x-paystack-signature"

type WebhookHandler struct {
	applyCharge *ucBooking.ApplyCharge
	config      *config.Config
}

func NewWebhookHandler(
	applyCharge *ucBooking.ApplyCharge,
	cfg *config.Config,
) *WebhookHandler {
	return &WebhookHandler{
		applyCharge: applyCharge,
		config:      cfg,
	}
}

type chargeEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
		Status    string `json:"status"`
	} `json:"data"`
}

// Paystack handles gateway callbacks. The signature is an HMAC-SHA512
// of the raw request body under the shared secret; nothing in the
// payload is trusted before it verifies. After verification the
// delivery is always acknowledged with 200 so the gateway does not
// retry-storm on anomalies we cannot recover from.
func (h *WebhookHandler) Paystack(c *gin.Context) {
	if h.config.PaystackSecret == "" {
		logrus.Error("paystack secret is not configured")
		httperr.Internal(c, "configuration_error", "Webhook is not configured.")
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		httperr.BadRequest(c, "unreadable_body", "Could not read request body.")
		return
	}

	signature := c.GetHeader(signatureHeader)
	if signature == "" {
		httperr.BadRequest(c, "missing_signature", "No signature header.")
		return
	}

	if !verifySignature(h.config.PaystackSecret, body, signature) {
		logrus.Warn("webhook signature mismatch")
		httperr.Unauthorized(c, "invalid_signature", "Signature verification failed.")
		return
	}

	var event chargeEvent
	if err := json.Unmarshal(body, &event); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Malformed event payload.")
		return
	}

	if event.Event == "charge.success" && event.Data.Status == "success" {
		err := h.applyCharge.Execute(c.Request.Context(), event.Data.Reference, body)
		switch {
		case httperr.IsBusiness(err, "invalid_reference"),
			httperr.IsBusiness(err, "booking_not_found"):
			// anomaly already logged; acknowledge anyway
		case err != nil:
			logrus.WithError(err).Error("failed to apply charge event")
			httperr.Internal(c, "reconciliation_failed", "Could not update booking.")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func verifySignature(secret string, body []byte, signature string) bool {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
