package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolforge/sitebuilder-backend/internal/auth/domain"
)

func TestIssuer_RoundTrip(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	raw, err := issuer.Issue("user-1", "a@x.com")
	require.NoError(t, err)

	id, err := issuer.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id.UserID)
	assert.Equal(t, "a@x.com", id.Email)
	assert.NotEmpty(t, id.TokenID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), id.ExpiresAt, 5*time.Second)
}

func TestIssuer_PayloadShape(t *testing.T) {
	issuer := NewIssuer("test-secret", 86400*time.Second)
	raw, err := issuer.Issue("user-1", "a@x.com")
	require.NoError(t, err)

	parsed, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	require.NoError(t, err)

	mc := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "user-1", mc["sub"])
	assert.Equal(t, "a@x.com", mc["email"])
	assert.Equal(t, "HS256", parsed.Header["alg"])

	iat := mc["iat"].(float64)
	exp := mc["exp"].(float64)
	assert.InDelta(t, 86400, exp-iat, 1)
}

func TestIssuer_Rejects(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	good, err := issuer.Issue("user-1", "a@x.com")
	require.NoError(t, err)

	expired := NewIssuer("test-secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.Issue("user-1", "a@x.com")
	require.NoError(t, err)

	otherSecret, err := NewIssuer("other-secret", time.Hour).Issue("user-1", "a@x.com")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":   "user-1",
		"email": "a@x.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	parts := strings.Split(good, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := map[string]string{
		"expired":      expiredToken,
		"wrong secret": otherSecret,
		"alg none":     noneToken,
		"missing exp":  noExpiry,
		"tampered":     tampered,
		"garbage":      "not-a-jwt",
		"empty":        "",
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := issuer.Verify(raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidToken))
		})
	}
}

func TestIssuer_RequiresSubject(t *testing.T) {
	_, err := NewIssuer("s", time.Hour).Issue("", "a@x.com")
	require.Error(t, err)
}
