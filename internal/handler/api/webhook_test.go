//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"petportrait-checkout/internal/handler/api"
	reqdto "petportrait-checkout/internal/handler/dto/request"
	"petportrait-checkout/internal/pkg/config"
	"petportrait-checkout/internal/pkg/errs"
	"petportrait-checkout/internal/pkg/webhooksig"
	usecasemock "petportrait-checkout/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockWebhook *usecasemock.MockWebhookUseCase
	cfg         config.WebhookConfig
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockWebhook = usecasemock.NewMockWebhookUseCase(s.mockCtrl)
	s.cfg = config.NewTestConfig().Webhook

	handler := api.NewWebhookHandler(s.mockWebhook, s.cfg)
	s.router.POST("/checkout/webhook", handler.HandleEvent)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) deliver(body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/checkout/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set(webhooksig.HeaderName, signature)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *WebhookHandlerTestSuite) eventBody() []byte {
	body, err := json.Marshal(map[string]any{
		"event_id": "evt-1",
		"type":     "payment.updated",
		"data": map[string]any{
			"object": map[string]any{
				"payment": map[string]any{
					"id":       "pay-1",
					"order_id": "ord-1",
					"status":   "COMPLETED",
				},
			},
		},
	})
	s.Require().NoError(err)
	return body
}

func (s *WebhookHandlerTestSuite) TestHandleEvent() {
	s.Run("acknowledges a signed event", func() {
		body := s.eventBody()
		s.mockWebhook.EXPECT().HandleEvent(gomock.Any(), gomock.AssignableToTypeOf(reqdto.WebhookEventRequest{})).
			DoAndReturn(func(_ context.Context, evt reqdto.WebhookEventRequest) (bool, error) {
				s.Equal("evt-1", evt.EventID)
				s.Equal("ord-1", evt.Data.Object.Payment.OrderID)
				return true, nil
			})

		w := s.deliver(body, webhooksig.Sign(s.cfg.SignatureKey, body))
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"received":true`)
		s.Contains(w.Body.String(), `"applied":true`)
	})

	s.Run("acknowledges a duplicate without applying it", func() {
		body := s.eventBody()
		s.mockWebhook.EXPECT().HandleEvent(gomock.Any(), gomock.Any()).Return(false, nil)

		w := s.deliver(body, webhooksig.Sign(s.cfg.SignatureKey, body))
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"applied":false`)
	})

	s.Run("rejects a missing signature", func() {
		w := s.deliver(s.eventBody(), "")
		s.Equal(http.StatusUnauthorized, w.Code)
		s.Contains(w.Body.String(), "SIGNATURE_INVALID")
	})

	s.Run("rejects a signature computed with the wrong key", func() {
		body := s.eventBody()
		w := s.deliver(body, webhooksig.Sign("wrong-key", body))
		s.Equal(http.StatusUnauthorized, w.Code)
		s.Contains(w.Body.String(), "SIGNATURE_INVALID")
	})

	s.Run("rejects a tampered body", func() {
		body := s.eventBody()
		sig := webhooksig.Sign(s.cfg.SignatureKey, body)
		tampered := bytes.Replace(body, []byte("ord-1"), []byte("ord-2"), 1)
		w := s.deliver(tampered, sig)
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("rejects malformed JSON even when signed", func() {
		body := []byte("{not json")
		w := s.deliver(body, webhooksig.Sign(s.cfg.SignatureKey, body))
		s.Equal(http.StatusBadRequest, w.Code)
		s.Contains(w.Body.String(), "INVALID_REQUEST")
	})

	s.Run("rejects an event with missing identifiers", func() {
		body := []byte(`{"type":"payment.updated"}`)
		s.mockWebhook.EXPECT().HandleEvent(gomock.Any(), gomock.Any()).
			Return(false, errs.ErrDomainValidationFailed)

		w := s.deliver(body, webhooksig.Sign(s.cfg.SignatureKey, body))
		s.Equal(http.StatusBadRequest, w.Code)
		s.Contains(w.Body.String(), "INVALID_EVENT")
	})
}
