package auth

import (
	"context"
	"os"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

// Staff privileges include everything a reader may do; admin includes staff.
func (r Role) AtLeast(required Role) bool {
	rank := map[Role]int{RoleUser: 1, RoleStaff: 2, RoleAdmin: 3}
	return rank[r] >= rank[required]
}

type Profile struct {
	UserID   uuid.UUID `json:"userId"`
	Username string    `json:"username"`
	Role     Role      `json:"role"`
}

type Claims struct {
	jwt.RegisteredClaims
	Profile Profile `json:"profile"`
}

var JWTKey = []byte(jwtKeyFromEnv())

func jwtKeyFromEnv() string {
	if key := os.Getenv("JWT_SIGNING_KEY"); key != "" {
		return key
	}
	return "library-dev-signing-key"
}

type contextKey int

const profileKey contextKey = iota + 1

func SetAuthContext(ctx context.Context, p Profile) context.Context {
	return context.WithValue(ctx, profileKey, p)
}

func GetProfile(ctx context.Context) (Profile, error) {
	p, ok := ctx.Value(profileKey).(Profile)
	if !ok {
		return Profile{}, errors.New("no auth profile in context")
	}
	return p, nil
}

func GetUserID(ctx context.Context) (uuid.UUID, error) {
	p, err := GetProfile(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return p.UserID, nil
}
