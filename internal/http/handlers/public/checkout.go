package public

import (
	"errors"

	"github.com/shopfront/internal/checkout"
	"github.com/shopfront/internal/http/response"
	"github.com/shopfront/internal/i18n"
	"github.com/shopfront/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCheckout 获取结算状态
func (h *Handler) GetCheckout(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	response.Success(c, h.CheckoutService.Get(c.Request.Context(), sessionID))
}

// SubmitCheckout 提交结算表单
func (h *Handler) SubmitCheckout(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var form checkout.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	view, err := h.CheckoutService.Submit(c.Request.Context(), service.SubmitCheckoutInput{
		SessionID: sessionID,
		Form:      form,
		TraceID:   traceID(c),
	})
	if err != nil {
		if errors.Is(err, service.ErrCheckoutValidation) && view != nil {
			respondErrorWithData(c, response.CodeBadRequest, "error.checkout_validation_failed", gin.H{
				"errors":   view.Errors,
				"checkout": view,
			}, nil)
			return
		}
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.checkout_failed")
		return
	}
	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), "checkout.submitted"), view)
}

// ResetCheckout 重置结算表单并取消未完成的确认
func (h *Handler) ResetCheckout(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	view, cancelled := h.CheckoutService.Reset(c.Request.Context(), sessionID)
	msg := "success"
	if cancelled {
		msg = i18n.T(i18n.ResolveLocale(c), "checkout.cancelled")
	}
	response.SuccessWithMsg(c, msg, gin.H{
		"checkout":  view,
		"cancelled": cancelled,
	})
}
