package entity

import "time"

type UserRole string

const (
	RoleSubscriber UserRole = "subscriber"
	RoleAdmin      UserRole = "admin"
)

// User is a row of the users table. Role is fixed at creation.
type User struct {
	ID           int64     `db:"id"`
	Phone        string    `db:"phone"`
	PasswordHash string    `db:"password"`
	Role         UserRole  `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
