package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims identify a member by email. Name and Picture come from the identity
// provider and seed the profile when the member is seen for the first time.
type Claims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	jwt.RegisteredClaims
}
