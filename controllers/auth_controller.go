package controllers

import (
	"errors"
	"time"

	"github.com/dineshnaiduavula/moviesample/pkg/resp"
	"github.com/dineshnaiduavula/moviesample/services"
	"github.com/dineshnaiduavula/moviesample/utils"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Svc       *services.AuthService
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthController(svc *services.AuthService, secret string, ttl time.Duration) *AuthController {
	return &AuthController{Svc: svc, JWTSecret: secret, JWTTTL: ttl}
}

type staffLoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /staff/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req staffLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	staff, err := ctl.Svc.Login(req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		resp.Unauthorized(c, "invalid credentials"); return
	}
	if err != nil {
		resp.ServerError(c, err); return
	}

	token, err := utils.GenerateStaffToken(staff.ID, staff.Name, ctl.JWTSecret, ctl.JWTTTL)
	if err != nil {
		resp.ServerError(c, err); return
	}
	resp.OK(c, gin.H{"token": token, "staff": staff})
}

// GET /staff/me
func (ctl *AuthController) Me(c *gin.Context) {
	resp.OK(c, gin.H{"staffId": utils.CurrentStaffID(c), "role": utils.CurrentRole(c)})
}
