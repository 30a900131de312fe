package jwt

import (
	"errors"
	"time"

	"service-broker/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type Claims struct {
	UserID    uuid.UUID  `json:"user_id"`
	Role      string     `json:"role"`
	AgencyID  *uuid.UUID `json:"agency_id,omitempty"`
	TokenType string     `json:"token_type"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey            []byte
	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration
}

func NewService(secretKey string, accessTokenDuration, refreshTokenDuration time.Duration) *Service {
	return &Service{
		secretKey:            []byte(secretKey),
		accessTokenDuration:  accessTokenDuration,
		refreshTokenDuration: refreshTokenDuration,
	}
}

func (s *Service) AccessTokenDuration() time.Duration  { return s.accessTokenDuration }
func (s *Service) RefreshTokenDuration() time.Duration { return s.refreshTokenDuration }

func (s *Service) GenerateAccessToken(userID uuid.UUID, role user.Role, agencyID *uuid.UUID) (string, error) {
	return s.generate(userID, role, agencyID, TokenTypeAccess, s.accessTokenDuration)
}

func (s *Service) GenerateRefreshToken(userID uuid.UUID, role user.Role, agencyID *uuid.UUID) (string, error) {
	return s.generate(userID, role, agencyID, TokenTypeRefresh, s.refreshTokenDuration)
}

func (s *Service) generate(userID uuid.UUID, role user.Role, agencyID *uuid.UUID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    userID,
		Role:      role.String(),
		AgencyID:  agencyID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
