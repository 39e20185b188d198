package payroll

import (
	"context"
	"testing"

	"github.com/dealerdesk/backoffice-go/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserIDFromContext(t *testing.T) {
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{"user_id": "user-1"})
	require.NoError(t, err)

	userID, err := userIDFromContext(jwtauth.NewContext(context.Background(), token, nil))
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestUserIDFromContext_MissingClaims(t *testing.T) {
	_, err := userIDFromContext(context.Background())
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestUserIDFromContext_VerificationError(t *testing.T) {
	ctx := jwtauth.NewContext(context.Background(), nil, jwtauth.ErrExpired)

	_, err := userIDFromContext(ctx)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
