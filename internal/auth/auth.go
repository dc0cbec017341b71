package auth

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"shortlink/internal/domain/models"

	"github.com/golang-jwt/jwt/v4"
)

// Verifier проверяет bearer-credential и возвращает личность вызывающего.
// Отсутствие валидного credential у обработчиков выражается анонимным caller,
// а не ошибкой - решает middleware.
//
//go:generate mockgen -destination=mocks/verifier_mock.go -package=mocks shortlink/internal/auth Verifier
type Verifier interface {
	Verify(ctx context.Context, token string) (models.Identity, error)
}

// JWTVerifier проверяет подписанные HS256 токены внешнего identity-провайдера.
// Идентификатор пользователя берется из subject claim.
type JWTVerifier struct {
	secretKey []byte
}

func NewJWTVerifier(secretKey string) (*JWTVerifier, error) {
	key, err := base64.StdEncoding.DecodeString(secretKey)
	if err != nil || len(key) < 32 {
		return nil, fmt.Errorf("invalid JWT secret key: must be at least 32 bytes when decoded")
	}

	return &JWTVerifier{secretKey: key}, nil
}

func (v *JWTVerifier) Verify(ctx context.Context, token string) (models.Identity, error) {
	claims := &jwt.RegisteredClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secretKey, nil
	})
	if err != nil || !parsed.Valid {
		return models.Identity{}, fmt.Errorf("%w: invalid token", models.ErrUnauthorized)
	}

	if claims.Subject == "" {
		return models.Identity{}, fmt.Errorf("%w: token has no subject", models.ErrUnauthorized)
	}

	return models.Identity{UserID: claims.Subject}, nil
}

// Issue выписывает токен для пользователя. Используется CLI и тестами;
// боевые токены выдает identity-провайдер.
func (v *JWTVerifier) Issue(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(v.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
