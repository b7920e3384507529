package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestMain(m *testing.M) {
	Initialize("ctrunner", testSecret, time.Hour)

	m.Run()
}

func TestValidateToken(t *testing.T) {
	t.Run("success: round trip", func(t *testing.T) {
		token, err := GenerateAccessToken("Runner@Example.com", "Jane Runner", "https://example.com/jane.png")
		require.NoError(t, err)

		claims, err := ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, "runner@example.com", claims.Email)
		assert.Equal(t, "Jane Runner", claims.Name)
		assert.Equal(t, "https://example.com/jane.png", claims.Picture)
	})

	t.Run("error: expired", func(t *testing.T) {
		claims := &Claims{
			Email: "runner@example.com",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "ctrunner",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("error: wrong signing method", func(t *testing.T) {
		claims := &Claims{
			Email:            "runner@example.com",
			RegisteredClaims: jwt.RegisteredClaims{Issuer: "ctrunner"},
		}

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("error: wrong secret", func(t *testing.T) {
		claims := &Claims{
			Email:            "runner@example.com",
			RegisteredClaims: jwt.RegisteredClaims{Issuer: "ctrunner"},
		}

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("other"))
		require.NoError(t, err)

		_, err = ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("error: no email", func(t *testing.T) {
		claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{Issuer: "ctrunner"}}

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("error: garbage", func(t *testing.T) {
		_, err := ValidateToken("not-a-token")

		assert.Error(t, err)
	})
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 48*time.Hour, ParseDuration("2d"))
	assert.Equal(t, 90*time.Minute, ParseDuration("90m"))
	assert.Equal(t, time.Duration(0), ParseDuration("soon"))
}
