package domain

import "github.com/golang-jwt/jwt/v5"

// Claims identifica o operador que chama a API; o nome do operador vai em "sub"
type Claims struct {
	UserRoleID int `json:"role_id"`
	jwt.RegisteredClaims
}
