package service

import (
	"context"

	"network/config"
	"network/dao/cache"
	"network/models"
	"network/pkg/jwt"
)

var _ ITokenService = (*TokenService)(nil)

// ITokenService 登录态：签发、校验、注销
type ITokenService interface {
	Issue(user *models.User) (string, *jwt.Claims, error)
	Parse(ctx context.Context, token string) (*jwt.Claims, error)
	Revoke(ctx context.Context, claims *jwt.Claims) error
}

type TokenService struct {
	Config       *config.Config
	TokenStorage *cache.TokenStorage
}

func (s *TokenService) Issue(user *models.User) (string, *jwt.Claims, error) {
	return jwt.GenerateToken(
		[]byte(s.Config.Jwt.Secret),
		user.ID,
		user.Username,
		jwt.TypeAccess,
		s.Config.Jwt.Expire(),
	)
}

func (s *TokenService) Parse(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := jwt.ParseToken([]byte(s.Config.Jwt.Secret), jwt.TypeAccess, token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.TokenStorage.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

// Revoke 注销到 token 自然过期为止
func (s *TokenService) Revoke(ctx context.Context, claims *jwt.Claims) error {
	return s.TokenStorage.Revoke(ctx, claims.ID, claims.Remaining())
}
