package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"go-gin-gorm-inventory/internal/domain"
	"go-gin-gorm-inventory/pkg/utils"
)

// TokenIssuer 由 auth.JWTer 实现
type TokenIssuer interface {
	Issue(email, role string) (string, error)
}

type LoginInput struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResult struct {
	AccessToken string `json:"accessToken"`
}

type AuthService struct {
	users  domain.UserRepository
	tokens TokenIssuer
	log    *zap.Logger
}

func NewAuthService(users domain.UserRepository, tokens TokenIssuer, l *zap.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: l.Named("auth")}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.TrimSpace(email)
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}
	if u == nil || u.IsDeleted || u.Secret == nil || u.Secret.PasswordHash == "" {
		s.log.Warn("login failed", zap.String("email", email), zap.String("reason", "unknown user"))
		return LoginResult{}, domain.InvalidCredentials("User %s doesn't exist.", email)
	}
	if u.IsDeactivated {
		s.log.Warn("login failed", zap.String("email", email), zap.String("reason", "deactivated"))
		return LoginResult{}, domain.InvalidCredentials("User %s is deactivated.", email)
	}
	if !utils.CheckPassword(password, u.Secret.PasswordHash) {
		s.log.Warn("login failed", zap.String("email", email), zap.String("reason", "password mismatch"))
		return LoginResult{}, domain.InvalidCredentials("Old password doesn't match.")
	}

	tok, err := s.tokens.Issue(u.Email, string(u.UserRole))
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{AccessToken: tok}, nil
}
