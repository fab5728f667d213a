package utils

import (
	"time"

	"github.com/dineshnaiduavula/moviesample/services"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries either a patron session (role "customer") or a staff
// identity (role "staff").
type Claims struct {
	Role       string `json:"role"`
	SessionID  string `json:"sessionId,omitempty"`
	StaffID    uint   `json:"staffId,omitempty"`
	Name       string `json:"name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	SeatNumber string `json:"seatNumber,omitempty"`
	Screen     string `json:"screen,omitempty"`
	jwt.RegisteredClaims
}

func GenerateSessionToken(sess services.Session, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		Role:       "customer",
		SessionID:  sess.ID,
		Name:       sess.Name,
		Phone:      sess.Phone,
		SeatNumber: sess.SeatNumber,
		Screen:     sess.Screen,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func GenerateStaffToken(staffID uint, name, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		Role:    "staff",
		StaffID: staffID,
		Name:    name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
