package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func validClaims(email string) Claims {
	now := time.Now()
	return Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
}

func TestParseToken_Valid(t *testing.T) {
	tok := signToken(t, jwt.SigningMethodHS256, testSecret, validClaims("a@x.com"))

	claims, err := ParseToken(tok, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Identity())
}

func TestParseToken_SubjectFallback(t *testing.T) {
	c := validClaims("")
	c.Subject = "a@x.com"
	tok := signToken(t, jwt.SigningMethodHS256, testSecret, c)

	claims, err := ParseToken(tok, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Identity())
}

func TestParseToken_Rejects(t *testing.T) {
	expired := validClaims("a@x.com")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	tests := []struct {
		name   string
		token  string
		secret []byte
	}{
		{"wrong secret", signToken(t, jwt.SigningMethodHS256, []byte("other"), validClaims("a@x.com")), testSecret},
		{"expired", signToken(t, jwt.SigningMethodHS256, testSecret, expired), testSecret},
		{"hs512", signToken(t, jwt.SigningMethodHS512, testSecret, validClaims("a@x.com")), testSecret},
		{"no identity", signToken(t, jwt.SigningMethodHS256, testSecret, validClaims("")), testSecret},
		{"garbage", "not.a.token", testSecret},
		{"empty secret", signToken(t, jwt.SigningMethodHS256, testSecret, validClaims("a@x.com")), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.token, tt.secret)
			require.Error(t, err)
		})
	}
}

func TestParseToken_EmptySecret(t *testing.T) {
	_, err := ParseToken("x", nil)
	require.ErrorIs(t, err, ErrNoSecret)
}
