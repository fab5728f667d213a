package controllers

import (
	"time"

	"github.com/dineshnaiduavula/moviesample/pkg/resp"
	"github.com/dineshnaiduavula/moviesample/services"
	"github.com/dineshnaiduavula/moviesample/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionController struct {
	JWTSecret string
	JWTTTL    time.Duration
}

func NewSessionController(secret string, ttl time.Duration) *SessionController {
	return &SessionController{JWTSecret: secret, JWTTTL: ttl}
}

type startSessionReq struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone" binding:"required,min=10"`
	SeatNumber string `json:"seatNumber" binding:"required"`
	Screen     string `json:"screen" binding:"required"`
}

// POST /session — patron sign-in with seat/session info. No password; the
// token scopes the cart and prefills the payment intent.
func (ctl *SessionController) Start(c *gin.Context) {
	var req startSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	sess := services.Session{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Phone:      req.Phone,
		SeatNumber: req.SeatNumber,
		Screen:     req.Screen,
	}
	token, err := utils.GenerateSessionToken(sess, ctl.JWTSecret, ctl.JWTTTL)
	if err != nil {
		resp.ServerError(c, err); return
	}

	resp.Created(c, gin.H{"token": token, "session": gin.H{
		"name":       sess.Name,
		"phone":      sess.Phone,
		"seatNumber": sess.SeatNumber,
		"screen":     sess.Screen,
	}})
}
