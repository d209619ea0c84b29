package repository

import (
	"context"
	"errors"
	"fmt"

	"micron-api/internal/data/entity"
	"micron-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindAdminByID(ctx context.Context, id int64) (*entity.User, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error)
	CountAll(ctx context.Context) (int64, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts the user and fills in the generated id and created_at.
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (phone, password, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := ur.db.QueryRow(ctx, query, user.Phone, user.PasswordHash, user.Role).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("role", string(user.Role)),
		)
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (ur *userRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE phone = $1)`

	var exists bool
	if err := ur.db.QueryRow(ctx, query, phone).Scan(&exists); err != nil {
		ur.log.Error("Failed to check phone", zap.Error(err))
		return false, fmt.Errorf("check phone exists: %w", err)
	}

	return exists, nil
}

// FindByPhone returns the lowest-id account with the phone, or nil.
func (ur *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	query := `
		SELECT id, phone, password, role, created_at
		FROM users
		WHERE phone = $1
		ORDER BY id ASC
		LIMIT 1
	`

	return ur.findOne(ctx, "find user by phone", query, phone)
}

func (ur *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `
		SELECT id, phone, password, role, created_at
		FROM users
		WHERE id = $1
	`

	return ur.findOne(ctx, fmt.Sprintf("find user by ID %d", id), query, id)
}

// FindAdminByID returns nil both when the id is unknown and when the account is not an admin.
func (ur *userRepository) FindAdminByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `
		SELECT id, phone, password, role, created_at
		FROM users
		WHERE id = $1 AND role = $2
	`

	return ur.findOne(ctx, fmt.Sprintf("find admin by ID %d", id), query, id, entity.RoleAdmin)
}

// FindAll lists users by ascending id. A non-positive limit returns every row.
func (ur *userRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT id, phone, password, role, created_at
		FROM users
		ORDER BY id ASC
	`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := ur.db.Query(ctx, query, args...)
	if err != nil {
		ur.log.Error("Failed to get all users",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all users limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	users := []*entity.User{}
	for rows.Next() {
		var user entity.User
		if err := rows.Scan(
			&user.ID,
			&user.Phone,
			&user.PasswordHash,
			&user.Role,
			&user.CreatedAt,
		); err != nil {
			ur.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}

func (ur *userRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM users`

	var count int64
	if err := ur.db.QueryRow(ctx, query).Scan(&count); err != nil {
		ur.log.Error("Database error counting users", zap.Error(err))
		return 0, fmt.Errorf("count all users: %w", err)
	}

	return count, nil
}

func (ur *userRepository) findOne(ctx context.Context, op, query string, args ...any) (*entity.User, error) {
	var user entity.User
	err := ur.db.QueryRow(ctx, query, args...).Scan(
		&user.ID,
		&user.Phone,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to "+op, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &user, nil
}
