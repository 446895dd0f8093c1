package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	reqdto "petportrait-checkout/internal/handler/dto/request"
	resdto "petportrait-checkout/internal/handler/dto/response"
	"petportrait-checkout/internal/handler/httperr"
	"petportrait-checkout/internal/pkg/config"
	"petportrait-checkout/internal/pkg/errs"
	"petportrait-checkout/internal/pkg/webhooksig"
	"petportrait-checkout/internal/usecase"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	webhook usecase.WebhookUseCase
	cfg     config.WebhookConfig
}

func NewWebhookHandler(webhook usecase.WebhookUseCase, cfg config.WebhookConfig) *WebhookHandler {
	return &WebhookHandler{webhook: webhook, cfg: cfg}
}

// HandleEvent verifies the processor signature over the raw body before any
// parsing, then applies the event. Duplicates are acknowledged with 200 so the
// processor stops retrying.
func (h *WebhookHandler) HandleEvent(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_REQUEST", "Unreadable request body", nil)
		return
	}

	signature := c.GetHeader(webhooksig.HeaderName)
	if err := webhooksig.Verify(h.cfg.SignatureKey, body, signature); err != nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "SIGNATURE_INVALID", "Webhook signature verification failed", nil)
		return
	}

	var evt reqdto.WebhookEventRequest
	if err := json.Unmarshal(body, &evt); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_REQUEST", "Malformed event payload", nil)
		return
	}

	applied, err := h.webhook.HandleEvent(c.Request.Context(), evt)
	if err != nil {
		if errors.Is(err, errs.ErrDomainValidationFailed) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_EVENT", "Event is missing required fields", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "INTERNAL", "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.WebhookAckResponse{Received: true, Applied: applied})
}
