package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/shop-console/cmd/config"
	"github.com/muhammadheryan/shop-console/constant"
	"github.com/muhammadheryan/shop-console/model"
	redisrepo "github.com/muhammadheryan/shop-console/repository/redis"
	"github.com/muhammadheryan/shop-console/utils/errors"
	"github.com/muhammadheryan/shop-console/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthApp guards the console behind a single admin account. A session lives
// in Redis under the token id and is what the screens are keyed by.
type AuthApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
	ValidateToken(ctx context.Context, tokenString string) (string, error)
}

type AuthAppImpl struct {
	config    *config.Config
	redisRepo redisrepo.Repository
	now       func() time.Time
}

func NewAuthApp(config *config.Config, redisRepo redisrepo.Repository) AuthApp {
	return &AuthAppImpl{
		config:    config,
		redisRepo: redisRepo,
		now:       time.Now,
	}
}

func (s *AuthAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if s.config.Auth.AdminPasswordHash == "" {
		logger.Warn("[Login] no admin password hash configured")
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	if req.Username != s.config.Auth.AdminUsername {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	err := bcrypt.CompareHashAndPassword([]byte(s.config.Auth.AdminPasswordHash), []byte(req.Password))
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, jti, expiresAt, err := s.generateJWT(req.Username)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	err = s.redisRepo.SetSession(ctx, jti, req.Username, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Username:  req.Username,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *AuthAppImpl) Logout(ctx context.Context, sessionID string) error {
	if err := s.redisRepo.DeleteSession(ctx, sessionID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// ValidateToken returns the session id carried by a valid token.
func (s *AuthAppImpl) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid claims")
	}

	jti := claims.ID
	if jti == "" {
		return "", fmt.Errorf("token missing jti")
	}

	username, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return "", fmt.Errorf("invalid or expired session")
	}

	if username != claims.Subject {
		return "", fmt.Errorf("token does not match session")
	}

	return jti, nil
}

func (s *AuthAppImpl) generateJWT(username string) (string, string, time.Time, error) {
	newUUID, _ := uuid.NewRandom()
	now := s.now()
	expiresAt := now.Add(s.config.Auth.JWTExpiration)
	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, expiresAt, nil
}
