package jwt

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	instance *JWT
	once     sync.Once

	ErrJWTNotInitialized = errors.New("jwt: instance not initialized")
	ErrInvalidToken      = errors.New("jwt: invalid token")
)

type JWT struct {
	appName     string
	secretKey   string
	tokenExpiry time.Duration
}

func Initialize(appName string, secretKey string, expiry time.Duration) {
	once.Do(func() {
		instance = &JWT{
			appName:     appName,
			secretKey:   secretKey,
			tokenExpiry: expiry,
		}
	})
}

func GetInstance() (*JWT, error) {
	if instance == nil {
		return nil, ErrJWTNotInitialized
	}

	return instance, nil
}

// GenerateAccessToken signs a token for email. Login lives outside this
// service; this is used by tooling and tests.
func GenerateAccessToken(email, name, picture string) (string, error) {
	j, err := GetInstance()
	if err != nil {
		return "", err
	}

	return j.generateToken(email, name, picture)
}

func ValidateToken(tokenString string) (*Claims, error) {
	j, err := GetInstance()
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return []byte(j.secretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithIssuer(j.appName),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Email == "" {
		claims.Email = claims.Subject
	}

	if claims.Email == "" {
		return nil, ErrInvalidToken
	}

	claims.Email = strings.ToLower(claims.Email)

	return claims, nil
}

func (j *JWT) generateToken(email, name, picture string) (string, error) {
	now := time.Now()

	claims := &Claims{
		Email:   email,
		Name:    name,
		Picture: picture,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    j.appName,
			Subject:   email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)

	signedString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("jwt: failed to sign token: %w", err)
	}

	return signedString, nil
}
