package controllers

import (
	"errors"

	"github.com/dineshnaiduavula/moviesample/pkg/resp"
	"github.com/dineshnaiduavula/moviesample/services"
	"github.com/dineshnaiduavula/moviesample/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PaymentController struct {
	Svc *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: svc}
}

// POST /payments/intent — validates the cart, reserves the total with the
// gateway and returns the checkout options for the client SDK. The total is
// always recomputed here; nothing price-shaped is read from the request.
func (ctl *PaymentController) CreateIntent(c *gin.Context) {
	sess := utils.CurrentSession(c)

	out, removed, err := ctl.Svc.CreateIntent(sess)
	if errors.Is(err, services.ErrStockConflict) {
		c.JSON(409, gin.H{"ok": false, "error": "some items are no longer available", "removed": removed})
		return
	}
	if errors.Is(err, services.ErrCartEmpty) {
		resp.BadRequest(c, "cart is empty"); return
	}
	if errors.Is(err, services.ErrGatewayUnavailable) {
		resp.BadGateway(c, "payment gateway unavailable, please retry"); return
	}
	if err != nil {
		resp.ServerError(c, err); return
	}
	resp.OK(c, out)
}

// POST /payments/callback — the gateway success handler posts the tuple
// here for verification. Safe to redeliver.
func (ctl *PaymentController) Confirm(c *gin.Context) {
	var req services.CallbackIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	order, err := ctl.Svc.ConfirmPayment(&req)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "unknown transaction"); return
	}
	if errors.Is(err, services.ErrVerificationFailed) {
		resp.BadRequest(c, "payment verification failed"); return
	}
	if errors.Is(err, services.ErrOrderConflict) {
		resp.Conflict(c, "payment already finalised"); return
	}
	if err != nil {
		resp.ServerError(c, err); return
	}
	resp.OK(c, gin.H{"order": order})
}

type cancelReq struct {
	GatewayOrderID string `json:"orderId" binding:"required"`
}

// POST /payments/cancel — the modal-dismiss handler. Cart stays intact.
func (ctl *PaymentController) Cancel(c *gin.Context) {
	var req cancelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	if err := ctl.Svc.CancelPayment(req.GatewayOrderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "unknown transaction"); return
		}
		resp.ServerError(c, err); return
	}
	resp.OK(c, gin.H{"cancelled": true})
}
