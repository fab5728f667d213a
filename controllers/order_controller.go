package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dineshnaiduavula/moviesample/pkg/resp"
	"github.com/dineshnaiduavula/moviesample/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// GET /staff/orders/pending
func (ctl *OrderController) Pending(c *gin.Context) {
	orders, err := ctl.Svc.ListPending()
	if err != nil {
		resp.ServerError(c, err); return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /staff/orders/closed?from=2026-08-28&to=2026-08-28
// Dates default to today.
func (ctl *OrderController) Closed(c *gin.Context) {
	from, to, err := dateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	orders, err := ctl.Svc.ListClosed(from, to)
	if err != nil {
		resp.ServerError(c, err); return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /staff/transactions?limit=
func (ctl *OrderController) Transactions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	txns, err := ctl.Svc.ListTransactions(limit)
	if err != nil {
		resp.ServerError(c, err); return
	}
	resp.OK(c, gin.H{"transactions": txns})
}

// PATCH /staff/orders/:id/complete
func (ctl *OrderController) Complete(c *gin.Context) {
	ctl.closeOut(c, true)
}

// PATCH /staff/orders/:id/not-done
func (ctl *OrderController) NotDone(c *gin.Context) {
	ctl.closeOut(c, false)
}

func (ctl *OrderController) closeOut(c *gin.Context, completed bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id"); return
	}

	var order any
	if completed {
		order, err = ctl.Svc.Complete(uint(id))
	} else {
		order, err = ctl.Svc.MarkNotDone(uint(id))
	}
	if errors.Is(err, services.ErrOrderConflict) {
		resp.Conflict(c, "order already closed"); return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "order not found"); return
	}
	if err != nil {
		resp.ServerError(c, err); return
	}
	resp.OK(c, gin.H{"order": order})
}

// GET /staff/orders/export?from=&to= — CSV download of closed orders.
func (ctl *OrderController) Export(c *gin.Context) {
	from, to, err := dateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	filename := fmt.Sprintf("orders_%s_%s.csv", from.Format("20060102"), to.Format("20060102"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename="+filename)

	if err := ctl.Svc.ExportClosedCSV(c.Writer, from, to); err != nil {
		resp.ServerError(c, err); return
	}
}

func dateRange(fromStr, toStr string) (time.Time, time.Time, error) {
	today := time.Now().Truncate(24 * time.Hour)
	from, to := today, today
	var err error
	if fromStr != "" {
		from, err = time.Parse("2006-01-02", fromStr)
		if err != nil {
			return from, to, fmt.Errorf("invalid from date")
		}
	}
	if toStr != "" {
		to, err = time.Parse("2006-01-02", toStr)
		if err != nil {
			return from, to, fmt.Errorf("invalid to date")
		}
	}
	if to.Before(from) {
		return from, to, fmt.Errorf("to is before from")
	}
	// inclusive end of day
	to = to.Add(24*time.Hour - time.Nanosecond)
	return from, to, nil
}
