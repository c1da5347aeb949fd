package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/s21platform/stream-hub/internal/model"
)

var ErrForbidden = errors.New("token does not grant admin access")

type Generator struct {
	secret []byte
	now    func() time.Time
}

func New(secret string) *Generator {
	return &Generator{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// GenerateAdminToken signs an admin token for subject valid for ttl.
func (g *Generator) GenerateAdminToken(subject string, ttl time.Duration) (string, int64, error) {
	now := g.now()
	expiresAt := now.Add(ttl)

	claims := model.AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Role: model.RoleAdmin,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(g.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign admin JWT token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

func (g *Generator) ValidateAdminToken(tokenString string) (*model.AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return g.secret, nil
	}, jwt.WithTimeFunc(g.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse admin JWT token: %w", err)
	}

	claims, ok := token.Claims.(*model.AdminClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid admin JWT token")
	}

	if claims.Role != model.RoleAdmin {
		return nil, ErrForbidden
	}

	return claims, nil
}
