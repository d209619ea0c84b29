package usecase

import (
	"context"
	"fmt"

	"micron-api/internal/data/repository"
	"micron-api/internal/dto/request"
	"micron-api/internal/dto/response"

	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*response.ProfileResponse, error)
	GetAdminProfile(ctx context.Context, userID int64) (*response.AdminProfileResponse, error)
	CountUsers(ctx context.Context) (*response.TotalUsersResponse, error)
	ListUsers(ctx context.Context, req *request.PaginatedRequest) ([]response.UserSummaryResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

// GetProfile reports lookup failures and missing rows alike as ErrNotFound.
func (us *userService) GetProfile(ctx context.Context, userID int64) (*response.ProfileResponse, error) {
	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	return &response.ProfileResponse{
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
	}, nil
}

// GetAdminProfile cannot tell a subscriber id from a missing admin; both yield ErrAdminNotFound.
func (us *userService) GetAdminProfile(ctx context.Context, userID int64) (*response.AdminProfileResponse, error) {
	admin, err := us.userRepo.FindAdminByID(ctx, userID)
	if err != nil {
		us.log.Error("Admin not found or database error", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("%w: %w", ErrAdminNotFound, err)
	}
	if admin == nil {
		us.log.Warn("Admin not found", zap.Int64("user_id", userID))
		return nil, ErrAdminNotFound
	}

	return &response.AdminProfileResponse{Phone: admin.Phone}, nil
}

func (us *userService) CountUsers(ctx context.Context) (*response.TotalUsersResponse, error) {
	total, err := us.userRepo.CountAll(ctx)
	if err != nil {
		us.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return &response.TotalUsersResponse{TotalUsers: total}, nil
}

// ListUsers returns every account by ascending id, or one page of them when req is enabled.
func (us *userService) ListUsers(ctx context.Context, req *request.PaginatedRequest) ([]response.UserSummaryResponse, error) {
	limit, offset := 0, 0
	if req != nil && req.Enabled() {
		limit, offset = req.Limit(), req.Offset()
	}

	users, err := us.userRepo.FindAll(ctx, limit, offset)
	if err != nil {
		us.log.Error("Failed to get all users",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	summaries := make([]response.UserSummaryResponse, len(users))
	for i, user := range users {
		summaries[i] = response.UserToSummary(user)
	}

	us.log.Debug("Users retrieved", zap.Int("count", len(summaries)))

	return summaries, nil
}
