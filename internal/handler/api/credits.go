package api

import (
	"errors"
	"net/http"

	reqdto "petportrait-checkout/internal/handler/dto/request"
	resdto "petportrait-checkout/internal/handler/dto/response"
	"petportrait-checkout/internal/handler/httperr"
	"petportrait-checkout/internal/handler/middleware"
	"petportrait-checkout/internal/pkg/errs"
	"petportrait-checkout/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CreditsHandler struct {
	credits usecase.CreditsUseCase
}

func NewCreditsHandler(credits usecase.CreditsUseCase) *CreditsHandler {
	return &CreditsHandler{credits: credits}
}

func (h *CreditsHandler) GetBalance(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no session"), "UNAUTHENTICATED", "Session required", nil)
		return
	}

	rm, err := h.credits.GetBalance(c.Request.Context(), actor)
	if err != nil {
		h.abortWithCreditsError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCreditBalanceRM(rm))
}

func (h *CreditsHandler) GetTransactions(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no session"), "UNAUTHENTICATED", "Session required", nil)
		return
	}

	txs, err := h.credits.GetTransactions(c.Request.Context(), actor)
	if err != nil {
		h.abortWithCreditsError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": resdto.FromCreditTransactions(txs)})
}

func (h *CreditsHandler) Debit(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no session"), "UNAUTHENTICATED", "Session required", nil)
		return
	}

	var req reqdto.DebitCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_REQUEST", "Invalid request format", nil)
		return
	}

	rm, err := h.credits.Debit(c.Request.Context(), req, actor)
	if err != nil {
		h.abortWithCreditsError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCreditBalanceRM(rm))
}

func (h *CreditsHandler) abortWithCreditsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInsufficientCredits):
		httperr.AbortWithError(c, http.StatusPaymentRequired, err, "INSUFFICIENT_CREDITS", "Not enough credits remaining", nil)
	case errors.Is(err, errs.ErrDomainValidationFailed):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "VALIDATION_FAILED", "Request failed validation", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "INTERNAL", "Internal server error", nil)
	}
}
