package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/authenticator.go -package=mocks

// Perfis aceitos nos tokens
const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleClient     = 3
)

const defaultTokenTTL = 24 * time.Hour

type Authenticator interface {
	IssueToken(subject string, roleID int) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secretKey string
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewService(cfg *config.Config) *Service {
	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &Service{
		secretKey: cfg.SecretKey,
		tokenTTL:  ttl,
		now:       time.Now,
	}
}

// IssueToken assina um token HS256 para o operador com o perfil informado
func (s *Service) IssueToken(subject string, roleID int) (string, error) {
	if s.secretKey == "" {
		return "", ErrMissingSecret
	}
	if subject == "" {
		return "", NewAuthError(ErrMissingSubject, apiErrors.ErrMissingRequiredData, "")
	}
	if roleID < RoleAdmin || roleID > RoleClient {
		return "", NewAuthError(ErrInvalidRole, apiErrors.ErrInvalidRequest, fmt.Sprintf("role_id=%d", roleID))
	}

	now := s.now()
	claims := domain.Claims{
		UserRoleID: roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}
