package api

import (
	"errors"
	"net/http"

	reqdto "petportrait-checkout/internal/handler/dto/request"
	resdto "petportrait-checkout/internal/handler/dto/response"
	"petportrait-checkout/internal/handler/httperr"
	"petportrait-checkout/internal/handler/middleware"
	"petportrait-checkout/internal/infra/paymentapi"
	"petportrait-checkout/internal/pkg/errs"
	"petportrait-checkout/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkout usecase.CheckoutUseCase
}

func NewCheckoutHandler(checkout usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

func (h *CheckoutHandler) CreateOrder(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_REQUEST", "Invalid request format", nil)
		return
	}

	actor, _ := middleware.GetActor(c)
	row, err := h.checkout.CreateOrder(c.Request.Context(), req, actor)
	if err != nil {
		h.abortWithCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromStatusRow(row))
}

func (h *CheckoutHandler) ProcessPayment(c *gin.Context) {
	var req reqdto.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_REQUEST", "Invalid request format", nil)
		return
	}

	actor, _ := middleware.GetActor(c)
	row, err := h.checkout.ProcessPayment(c.Request.Context(), req, actor)
	if err != nil {
		h.abortWithCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatusRow(row))
}

func (h *CheckoutHandler) GetOrders(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no session"), "UNAUTHENTICATED", "Session required", nil)
		return
	}

	rows, err := h.checkout.GetOrders(c.Request.Context(), actor)
	if err != nil {
		h.abortWithCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": resdto.FromStatusRows(rows)})
}

func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	actor, _ := middleware.GetActor(c)
	row, err := h.checkout.GetOrder(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		h.abortWithCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatusRow(row))
}

func (h *CheckoutHandler) PaymentStatus(c *gin.Context) {
	rm, err := h.checkout.PaymentStatus(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		h.abortWithCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentStatusRM(rm))
}

func (h *CheckoutHandler) ValidateCoupon(c *gin.Context) {
	var req reqdto.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_REQUEST", "Invalid request format", nil)
		return
	}

	rm, err := h.checkout.ValidateCoupon(c.Request.Context(), req)
	if err != nil {
		h.abortWithCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponValidationRM(rm))
}

func (h *CheckoutHandler) LinkOrder(c *gin.Context) {
	var req reqdto.LinkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_REQUEST", "Invalid request format", nil)
		return
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no session"), "UNAUTHENTICATED", "Session required", nil)
		return
	}

	row, err := h.checkout.LinkOrder(c.Request.Context(), req, actor)
	if err != nil {
		h.abortWithCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatusRow(row))
}

func (h *CheckoutHandler) abortWithCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrOrderNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "ORDER_NOT_FOUND", "Order not found", nil)
	case errors.Is(err, errs.ErrOrderForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "ORDER_FORBIDDEN", "Order belongs to another account", nil)
	case errors.Is(err, errs.ErrOrderNotLinkable):
		httperr.AbortWithError(c, http.StatusForbidden, err, "LINK_WINDOW_EXPIRED", "Order can no longer be linked", nil)
	case errors.Is(err, errs.ErrCouponInvalid):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "COUPON_INVALID", "Invalid or expired coupon", nil)
	case errors.Is(err, errs.ErrCouponDisabled):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "COUPON_DISABLED", "Coupons are not available", nil)
	case errors.Is(err, errs.ErrPaymentDeclined):
		status := http.StatusPaymentRequired
		var detail any
		if apiErr, ok := paymentapi.AsAPIError(err); ok {
			// pass the processor's own client-fault status through
			status = apiErr.StatusCode
			detail = gin.H{"processor_code": apiErr.Code}
		}
		httperr.AbortWithError(c, status, err, "PAYMENT_DECLINED", "Payment was declined", detail)
	case errors.Is(err, errs.ErrPaymentUpstream):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "PAYMENT_UPSTREAM", "Payment processor unavailable", nil)
	case errors.Is(err, errs.ErrDomainValidationFailed):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "VALIDATION_FAILED", "Request failed validation", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "INTERNAL", "Internal server error", nil)
	}
}
