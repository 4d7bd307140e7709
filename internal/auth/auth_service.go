package auth

import (
	"context"
	"errors"
	"time"

	autherrors "aakb-wms/internal/auth/errors"
	"aakb-wms/internal/shared/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type TokenConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (TokenPair, AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error)
	GetMe(ctx context.Context, profileID string) (*AuthResponse, error)
	ChangePassword(ctx context.Context, profileID string, req ChangePasswordRequest) error
}

type service struct {
	repo   Repository
	tokens TokenConfig
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, tokens TokenConfig, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, tokens: tokens, now: time.Now, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (TokenPair, AuthResponse, error) {
	cred, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("login unknown email", zap.String("email", email))
			return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		s.logger.Error("login lookup failed", zap.Error(err))
		return TokenPair{}, AuthResponse{}, apperror.StoreUnavailable(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("login wrong password", zap.String("profile_id", cred.ID.String()))
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidCredentials
	}
	if !cred.IsActive {
		return TokenPair{}, AuthResponse{}, autherrors.ErrProfileInactive
	}

	pair, err := s.issue(cred)
	if err != nil {
		return TokenPair{}, AuthResponse{}, err
	}

	s.logger.Info("login success", zap.String("profile_id", cred.ID.String()), zap.String("role", cred.Role))
	return pair, toResponse(cred), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error) {
	claims, err := s.parse(refreshToken)
	if err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}
	if typ, _ := claims["typ"].(string); typ != tokenTypeRefresh {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	idStr, _ := claims["profile_id"].(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidToken
	}

	cred, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenPair{}, AuthResponse{}, autherrors.ErrProfileNotFound
		}
		return TokenPair{}, AuthResponse{}, apperror.StoreUnavailable(err)
	}
	if !cred.IsActive {
		return TokenPair{}, AuthResponse{}, autherrors.ErrProfileInactive
	}

	// Role is re-read so a demotion takes effect on the next refresh.
	pair, err := s.issue(cred)
	if err != nil {
		return TokenPair{}, AuthResponse{}, err
	}
	return pair, toResponse(cred), nil
}

func (s *service) GetMe(ctx context.Context, profileID string) (*AuthResponse, error) {
	id, err := uuid.Parse(profileID)
	if err != nil {
		return nil, autherrors.ErrInvalidProfileID
	}

	cred, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, autherrors.ErrProfileNotFound
		}
		return nil, apperror.StoreUnavailable(err)
	}

	resp := toResponse(cred)
	return &resp, nil
}

func (s *service) ChangePassword(ctx context.Context, profileID string, req ChangePasswordRequest) error {
	id, err := uuid.Parse(profileID)
	if err != nil {
		return autherrors.ErrInvalidProfileID
	}

	cred, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return autherrors.ErrProfileNotFound
		}
		return apperror.StoreUnavailable(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return autherrors.ErrPasswordMismatch
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, id, string(hashed)); err != nil {
		s.logger.Error("change password persist failed", zap.String("profile_id", profileID), zap.Error(err))
		return apperror.StoreUnavailable(err)
	}

	s.logger.Info("change password success", zap.String("profile_id", profileID))
	return nil
}

func (s *service) issue(cred *Credential) (TokenPair, error) {
	access, err := s.generateToken(cred, tokenTypeAccess, s.tokens.AccessTTL)
	if err != nil {
		s.logger.Error("sign access token failed", zap.Error(err))
		return TokenPair{}, autherrors.ErrTokenGenerationFailed
	}
	refresh, err := s.generateToken(cred, tokenTypeRefresh, s.tokens.RefreshTTL)
	if err != nil {
		s.logger.Error("sign refresh token failed", zap.Error(err))
		return TokenPair{}, autherrors.ErrTokenGenerationFailed
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *service) generateToken(cred *Credential, typ string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"profile_id": cred.ID.String(),
		"role":       cred.Role,
		"typ":        typ,
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.tokens.Secret))
}

func (s *service) parse(raw string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(s.tokens.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, autherrors.ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, autherrors.ErrInvalidToken
	}
	return claims, nil
}

func toResponse(c *Credential) AuthResponse {
	return AuthResponse{
		ID:       c.ID.String(),
		Email:    c.Email,
		FullName: c.FullName,
		Role:     c.Role,
	}
}
