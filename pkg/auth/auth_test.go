package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/library-api/pkg/auth"
)

func TestRole_AtLeast(t *testing.T) {
	t.Parallel()
	require.True(t, auth.RoleAdmin.AtLeast(auth.RoleUser))
	require.True(t, auth.RoleAdmin.AtLeast(auth.RoleStaff))
	require.True(t, auth.RoleStaff.AtLeast(auth.RoleUser))
	require.False(t, auth.RoleStaff.AtLeast(auth.RoleAdmin))
	require.False(t, auth.RoleUser.AtLeast(auth.RoleStaff))
	require.False(t, auth.Role("unknown").AtLeast(auth.RoleUser))
}

func TestClaims_RoundTrip(t *testing.T) {
	t.Parallel()
	profile := auth.Profile{
		UserID:   uuid.New(),
		Username: "reader",
		Role:     auth.RoleUser,
	}
	claims := auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Profile: profile,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(auth.JWTKey)
	require.NoError(t, err)

	var parsed auth.Claims
	_, err = jwt.ParseWithClaims(signed, &parsed, func(*jwt.Token) (interface{}, error) {
		return auth.JWTKey, nil
	})
	require.NoError(t, err)
	require.Equal(t, profile, parsed.Profile)
}

func TestAuthContext(t *testing.T) {
	t.Parallel()
	_, err := auth.GetProfile(context.Background())
	require.Error(t, err)

	p := auth.Profile{UserID: uuid.New(), Username: "reader", Role: auth.RoleStaff}
	ctx := auth.SetAuthContext(context.Background(), p)

	got, err := auth.GetProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, p, got)

	id, err := auth.GetUserID(ctx)
	require.NoError(t, err)
	require.Equal(t, p.UserID, id)
}
