package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// StaffClaims identifies a staff member allowed to read the attendee list.
type StaffClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// CreateStaffToken mints an HS256 token for the named staff member.
func CreateStaffToken(name string, secret []byte, ttl time.Duration) (string, error) {
	claims := StaffClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "arc-checkin",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
