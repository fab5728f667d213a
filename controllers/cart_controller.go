package controllers

import (
	"errors"

	"github.com/dineshnaiduavula/moviesample/pkg/resp"
	"github.com/dineshnaiduavula/moviesample/services"
	"github.com/dineshnaiduavula/moviesample/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart — priced view; stale lines are purged and reported in `removed`.
func (h *CartController) Get(c *gin.Context) {
	sess := utils.CurrentSession(c)
	view, err := h.Svc.Get(sess.ID)
	if err != nil {
		resp.ServerError(c, err); return
	}
	resp.OK(c, view)
}

// POST /cart/lines
func (h *CartController) Add(c *gin.Context) {
	sess := utils.CurrentSession(c)

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}
	if err := h.Svc.Add(sess.ID, &req); err != nil {
		if errors.Is(err, services.ErrStockConflict) {
			resp.Conflict(c, "item is out of stock"); return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found"); return
		}
		resp.ServerError(c, err); return
	}
	resp.Created(c, gin.H{"added": true})
}

// PATCH /cart/lines
func (h *CartController) UpdateQty(c *gin.Context) {
	sess := utils.CurrentSession(c)

	var body struct {
		LineID uint `json:"lineId" binding:"required"`
		Qty    int  `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error()); return
	}
	if err := h.Svc.UpdateQty(sess.ID, body.LineID, body.Qty); err != nil {
		resp.ServerError(c, err); return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /cart/lines
func (h *CartController) Remove(c *gin.Context) {
	sess := utils.CurrentSession(c)

	var body struct {
		LineID uint `json:"lineId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error()); return
	}
	if err := h.Svc.RemoveLine(sess.ID, body.LineID); err != nil {
		resp.ServerError(c, err); return
	}
	resp.OK(c, gin.H{"removed": true})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	sess := utils.CurrentSession(c)
	if err := h.Svc.Clear(sess.ID); err != nil {
		resp.ServerError(c, err); return
	}
	resp.OK(c, gin.H{"cleared": true})
}
