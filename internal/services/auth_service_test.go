package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Gob26/beautycity/internal/auth"
	"github.com/Gob26/beautycity/internal/models"
	"github.com/Gob26/beautycity/internal/repositories"
	"github.com/Gob26/beautycity/internal/services/dto"
	"github.com/Gob26/beautycity/pkg/apperrors"
)

type fakeUserRepo struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[string]*models.User{},
		byEmail: map[string]*models.User{},
	}
}

func (r *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) Update(_ *gorm.DB, user *models.User) error {
	if _, ok := r.byID[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user
	return nil
}

func newAuthFixture() (AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	tokens := auth.NewTokenManager("test-secret", 60)
	return NewAuthService(repo, tokens), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, repo := newAuthFixture()

	resp, err := svc.Register(nil, &dto.RegisterRequest{
		Email:    "owner@example.com",
		Password: "correct-horse",
		Role:     auth.RoleSalon,
		Name:     "Анна",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "owner@example.com", resp.User.Email)

	stored := repo.byEmail["owner@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct-horse", stored.PasswordHash)

	login, err := svc.Login(nil, &dto.LoginRequest{
		Email:    "owner@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)

	_, err = svc.Login(nil, &dto.LoginRequest{
		Email:    "owner@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRegisterRejectsAdminAndDuplicates(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(nil, &dto.RegisterRequest{
		Email:    "root@example.com",
		Password: "correct-horse",
		Role:     auth.RoleAdmin,
	})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	_, err = svc.Register(nil, &dto.RegisterRequest{
		Email:    "dup@example.com",
		Password: "correct-horse",
		Role:     auth.RoleClient,
	})
	require.NoError(t, err)

	_, err = svc.Register(nil, &dto.RegisterRequest{
		Email:    "dup@example.com",
		Password: "correct-horse",
		Role:     auth.RoleClient,
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)
}

func TestRefreshBlockedAccount(t *testing.T) {
	svc, repo := newAuthFixture()

	resp, err := svc.Register(nil, &dto.RegisterRequest{
		Email:    "master@example.com",
		Password: "correct-horse",
		Role:     auth.RoleMaster,
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(nil, resp.User.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	repo.byID[resp.User.ID].Status = models.UserStatusBlocked

	_, err = svc.Refresh(nil, resp.User.ID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}
