package profile_test

import (
	"context"
	"errors"
	"testing"

	"aakb-wms/internal/profile"
	profileerrors "aakb-wms/internal/profile/errors"
	profileMock "aakb-wms/internal/profile/mock"
	"aakb-wms/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupProfileServiceTest(t *testing.T) (profile.Service, *profileMock.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := profileMock.NewMockRepository(ctrl)
	return profile.NewService(repo), repo
}

func TestProfileService_Invite(t *testing.T) {
	ctx := context.Background()
	phone := "+919800000000"
	req := profile.InviteProfileRequest{
		FullName: "  Ravi Kumar ",
		Email:    "Ravi@AAKB.org",
		Phone:    &phone,
		Role:     "worker",
		Password: "secret123",
	}

	t.Run("success", func(t *testing.T) {
		svc, repo := setupProfileServiceTest(t)

		repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *profile.Profile) error {
				assert.Equal(t, "Ravi Kumar", p.FullName)
				assert.Equal(t, "ravi@aakb.org", p.Email)
				assert.True(t, p.IsActive)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte("secret123")))
				return nil
			})

		resp, err := svc.Invite(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "ravi@aakb.org", resp.Email)
		assert.Equal(t, "worker", resp.Role)
		assert.NotEmpty(t, resp.ID)
	})

	t.Run("email taken", func(t *testing.T) {
		svc, repo := setupProfileServiceTest(t)

		repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_profiles_email"})

		_, err := svc.Invite(ctx, req)
		assert.ErrorIs(t, err, profileerrors.ErrEmailTaken)
	})

	t.Run("invalid role", func(t *testing.T) {
		svc, _ := setupProfileServiceTest(t)

		bad := req
		bad.Role = "guest"
		_, err := svc.Invite(ctx, bad)
		assert.ErrorIs(t, err, profileerrors.ErrInvalidRole)
	})

	t.Run("store failure maps to service unavailable", func(t *testing.T) {
		svc, repo := setupProfileServiceTest(t)

		repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("connection refused"))

		_, err := svc.Invite(ctx, req)
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeServiceUnavailable, appErr.Code)
	})
}

func TestProfileService_GetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		svc, repo := setupProfileServiceTest(t)
		repo.EXPECT().FindByID(ctx, id.String()).Return(&profile.Profile{ID: id, FullName: "Asha", Role: "manager"}, nil)

		resp, err := svc.GetByID(ctx, id.String())
		require.NoError(t, err)
		assert.Equal(t, "Asha", resp.FullName)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo := setupProfileServiceTest(t)
		repo.EXPECT().FindByID(ctx, id.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(ctx, id.String())
		assert.ErrorIs(t, err, profileerrors.ErrProfileNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc, _ := setupProfileServiceTest(t)
		_, err := svc.GetByID(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, profileerrors.ErrInvalidProfileID)
	})
}

func TestProfileService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("passes filter through", func(t *testing.T) {
		svc, repo := setupProfileServiceTest(t)
		filter := profile.ListFilter{Role: "worker", ActiveOnly: true}
		repo.EXPECT().FindAll(ctx, filter).Return([]profile.Profile{
			{ID: uuid.New(), FullName: "A", Role: "worker"},
			{ID: uuid.New(), FullName: "B", Role: "worker"},
		}, nil)

		resp, err := svc.GetAll(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, resp, 2)
	})

	t.Run("rejects unknown role filter", func(t *testing.T) {
		svc, _ := setupProfileServiceTest(t)
		_, err := svc.GetAll(ctx, profile.ListFilter{Role: "janitor"})
		assert.ErrorIs(t, err, profileerrors.ErrInvalidRole)
	})
}

func TestProfileService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("deactivate and promote", func(t *testing.T) {
		svc, repo := setupProfileServiceTest(t)
		existing := &profile.Profile{ID: id, FullName: "Asha", Role: "worker", IsActive: true}
		repo.EXPECT().FindByID(ctx, id.String()).Return(existing, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *profile.Profile) error {
			assert.Equal(t, "manager", p.Role)
			assert.False(t, p.IsActive)
			return nil
		})

		role := "manager"
		active := false
		resp, err := svc.Update(ctx, id.String(), profile.UpdateProfileRequest{Role: &role, IsActive: &active})
		require.NoError(t, err)
		assert.Equal(t, "manager", resp.Role)
		assert.False(t, resp.IsActive)
	})

	t.Run("invalid role", func(t *testing.T) {
		svc, repo := setupProfileServiceTest(t)
		repo.EXPECT().FindByID(ctx, id.String()).Return(&profile.Profile{ID: id, Role: "worker"}, nil)

		role := "superuser"
		_, err := svc.Update(ctx, id.String(), profile.UpdateProfileRequest{Role: &role})
		assert.ErrorIs(t, err, profileerrors.ErrInvalidRole)
	})
}

func TestProfileService_Delete(t *testing.T) {
	ctx := context.Background()
	actor := uuid.NewString()
	target := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		svc, repo := setupProfileServiceTest(t)
		repo.EXPECT().Delete(ctx, target).Return(nil)
		assert.NoError(t, svc.Delete(ctx, actor, target))
	})

	t.Run("cannot delete self", func(t *testing.T) {
		svc, _ := setupProfileServiceTest(t)
		assert.ErrorIs(t, svc.Delete(ctx, actor, actor), profileerrors.ErrCannotDeleteSelf)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo := setupProfileServiceTest(t)
		repo.EXPECT().Delete(ctx, target).Return(gorm.ErrRecordNotFound)
		assert.ErrorIs(t, svc.Delete(ctx, actor, target), profileerrors.ErrProfileNotFound)
	})
}
