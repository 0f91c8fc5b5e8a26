package jwt

import (
	"context"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/cvstudio/pkg/auth"
)

func TestGenerateRoundTrip(t *testing.T) {
	gen := NewGenerator("test-secret", "cv-studio", time.Hour)
	user := auth.User{ID: uuid.New(), Email: "jane@example.com"}

	tokenStr, err := gen.Generate(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	parsed, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(*Claims)
	require.True(t, ok)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, "cv-studio", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestGenerateWrongSecretRejected(t *testing.T) {
	gen := NewGenerator("test-secret", "cv-studio", time.Hour)
	tokenStr, err := gen.Generate(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)

	_, err = jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}
