package model

import "github.com/golang-jwt/jwt/v5"

const RoleAdmin = "admin"

type AdminClaims struct {
	jwt.RegisteredClaims

	Role string `json:"role"`
}
