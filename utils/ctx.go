package utils

import (
	"github.com/dineshnaiduavula/moviesample/services"
	"github.com/gin-gonic/gin"
)

func CurrentSession(c *gin.Context) services.Session {
	sess := services.Session{}
	if v, ok := c.Get("sessionId"); ok {
		sess.ID, _ = v.(string)
	}
	if v, ok := c.Get("name"); ok {
		sess.Name, _ = v.(string)
	}
	if v, ok := c.Get("phone"); ok {
		sess.Phone, _ = v.(string)
	}
	if v, ok := c.Get("seatNumber"); ok {
		sess.SeatNumber, _ = v.(string)
	}
	if v, ok := c.Get("screen"); ok {
		sess.Screen, _ = v.(string)
	}
	return sess
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CurrentStaffID(c *gin.Context) uint {
	v, _ := c.Get("staffId")
	switch id := v.(type) {
	case uint:
		return id
	case float64:
		return uint(id)
	default:
		return 0
	}
}
