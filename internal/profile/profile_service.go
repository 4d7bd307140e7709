package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"aakb-wms/internal/domain"
	profileerrors "aakb-wms/internal/profile/errors"
	"aakb-wms/internal/shared/apperror"
	"aakb-wms/internal/shared/contextutil"
	"aakb-wms/internal/shared/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=profile_service.go -destination=mock/profile_service_mock.go -package=mock
type Service interface {
	Invite(ctx context.Context, req InviteProfileRequest) (ProfileResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]ProfileResponse, error)
	GetByID(ctx context.Context, id string) (ProfileResponse, error)
	Update(ctx context.Context, id string, req UpdateProfileRequest) (ProfileResponse, error)
	Delete(ctx context.Context, actorID, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("profile.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("profile.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Invite(ctx context.Context, req InviteProfileRequest) (ProfileResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("invite profile requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("role", req.Role),
	)

	if !domain.IsValidRole(req.Role) {
		return ProfileResponse{}, profileerrors.ErrInvalidRole
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("invite profile hash password failed", zap.Error(err))
		return ProfileResponse{}, err
	}

	p := &Profile{
		ID:           uuid.New(),
		FullName:     strings.TrimSpace(req.FullName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        req.Phone,
		Role:         req.Role,
		IsActive:     true,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		if database.IsUniqueViolation(err, "uq_profiles_email") {
			s.logger.Warn("invite profile email taken", zap.String("email", p.Email))
			return ProfileResponse{}, profileerrors.ErrEmailTaken
		}
		s.logger.Error("invite profile persist failed", zap.String("request_id", rid), zap.Error(err))
		return ProfileResponse{}, apperror.StoreUnavailable(err)
	}

	s.logger.Info("invite profile success",
		zap.String("request_id", rid),
		zap.String("profile_id", p.ID.String()),
		zap.String("role", p.Role),
	)
	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]ProfileResponse, error) {
	if filter.Role != "" && !domain.IsValidRole(filter.Role) {
		return nil, profileerrors.ErrInvalidRole
	}
	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, apperror.StoreUnavailable(err)
	}
	resp := make([]ProfileResponse, len(rows))
	for i, p := range rows {
		resp[i] = mapToResponse(p)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ProfileResponse, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return ProfileResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateProfileRequest) (ProfileResponse, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return ProfileResponse{}, err
	}

	if req.FullName != nil {
		p.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Phone != nil {
		p.Phone = req.Phone
	}
	if req.Role != nil {
		if !domain.IsValidRole(*req.Role) {
			return ProfileResponse{}, profileerrors.ErrInvalidRole
		}
		p.Role = *req.Role
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("update profile persist failed", zap.String("profile_id", id), zap.Error(err))
		return ProfileResponse{}, apperror.StoreUnavailable(err)
	}
	s.logger.Info("update profile success",
		zap.String("profile_id", id),
		zap.String("role", p.Role),
		zap.Bool("is_active", p.IsActive),
	)
	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, actorID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return profileerrors.ErrInvalidProfileID
	}
	if actorID == id {
		return profileerrors.ErrCannotDeleteSelf
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return profileerrors.ErrProfileNotFound
		}
		s.logger.Error("delete profile failed", zap.String("profile_id", id), zap.Error(err))
		return apperror.StoreUnavailable(err)
	}
	s.logger.Info("delete profile success", zap.String("profile_id", id), zap.String("actor_id", actorID))
	return nil
}

func (s *service) find(ctx context.Context, id string) (*Profile, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, profileerrors.ErrInvalidProfileID
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profileerrors.ErrProfileNotFound
		}
		return nil, apperror.StoreUnavailable(err)
	}
	return p, nil
}

func mapToResponse(p Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID.String(),
		FullName:  p.FullName,
		Email:     p.Email,
		Phone:     p.Phone,
		Role:      p.Role,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}
