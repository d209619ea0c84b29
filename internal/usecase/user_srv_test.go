package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"micron-api/internal/data/entity"
	"micron-api/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserService_GetProfile(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		repo := &MockUserRepository{}
		repo.On("FindByID", ctx, int64(4)).Return(&entity.User{ID: 4, Phone: "5551234", CreatedAt: createdAt}, nil)

		profile, err := NewUserService(repo, zap.NewNop()).GetProfile(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, "5551234", profile.Phone)
		assert.Equal(t, createdAt, profile.CreatedAt)
	})

	t.Run("missing row", func(t *testing.T) {
		repo := &MockUserRepository{}
		repo.On("FindByID", ctx, int64(4)).Return((*entity.User)(nil), nil)

		_, err := NewUserService(repo, zap.NewNop()).GetProfile(ctx, 4)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("lookup failure", func(t *testing.T) {
		repo := &MockUserRepository{}
		repo.On("FindByID", ctx, int64(4)).Return((*entity.User)(nil), errors.New("timeout"))

		_, err := NewUserService(repo, zap.NewNop()).GetProfile(ctx, 4)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserService_GetAdminProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("admin", func(t *testing.T) {
		repo := &MockUserRepository{}
		repo.On("FindAdminByID", ctx, int64(1)).Return(&entity.User{ID: 1, Phone: "5550000", Role: entity.RoleAdmin}, nil)

		profile, err := NewUserService(repo, zap.NewNop()).GetAdminProfile(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "5550000", profile.Phone)
	})

	t.Run("subscriber or missing", func(t *testing.T) {
		repo := &MockUserRepository{}
		repo.On("FindAdminByID", ctx, int64(2)).Return((*entity.User)(nil), nil)

		_, err := NewUserService(repo, zap.NewNop()).GetAdminProfile(ctx, 2)
		assert.ErrorIs(t, err, ErrAdminNotFound)
	})

	t.Run("lookup failure", func(t *testing.T) {
		repo := &MockUserRepository{}
		repo.On("FindAdminByID", ctx, int64(2)).Return((*entity.User)(nil), errors.New("timeout"))

		_, err := NewUserService(repo, zap.NewNop()).GetAdminProfile(ctx, 2)
		assert.ErrorIs(t, err, ErrAdminNotFound)
	})
}

func TestUserService_CountUsers(t *testing.T) {
	ctx := context.Background()

	repo := &MockUserRepository{}
	repo.On("CountAll", ctx).Return(int64(12), nil)

	got, err := NewUserService(repo, zap.NewNop()).CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.TotalUsers)

	failing := &MockUserRepository{}
	failing.On("CountAll", ctx).Return(int64(0), errors.New("down"))

	_, err = NewUserService(failing, zap.NewNop()).CountUsers(ctx)
	assert.ErrorIs(t, err, ErrStorage)
}

func TestUserService_ListUsers(t *testing.T) {
	ctx := context.Background()
	users := []*entity.User{
		{ID: 1, Phone: "5550001", Role: entity.RoleAdmin},
		{ID: 2, Phone: "5550002", Role: entity.RoleSubscriber},
	}

	tests := []struct {
		name          string
		req           *request.PaginatedRequest
		limit, offset int
	}{
		{name: "no pagination", req: nil, limit: 0, offset: 0},
		{name: "page zero means all", req: &request.PaginatedRequest{Page: 0, PerPage: 10}, limit: 0, offset: 0},
		{name: "second page", req: &request.PaginatedRequest{Page: 2, PerPage: 10}, limit: 10, offset: 10},
		{name: "per page capped", req: &request.PaginatedRequest{Page: 1, PerPage: 500}, limit: 100, offset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockUserRepository{}
			repo.On("FindAll", ctx, tt.limit, tt.offset).Return(users, nil)

			got, err := NewUserService(repo, zap.NewNop()).ListUsers(ctx, tt.req)
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, int64(1), got[0].ID)
			assert.Equal(t, entity.RoleSubscriber, got[1].Role)
			repo.AssertExpectations(t)
		})
	}

	t.Run("storage failure", func(t *testing.T) {
		repo := &MockUserRepository{}
		repo.On("FindAll", ctx, 0, 0).Return(nil, errors.New("down"))

		_, err := NewUserService(repo, zap.NewNop()).ListUsers(ctx, nil)
		assert.ErrorIs(t, err, ErrStorage)
	})
}
