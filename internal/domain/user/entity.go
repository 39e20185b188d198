package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // Back-office administrator - full access
	RoleStaff Role = "staff" // Regular back-office user
)

type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user can manage rules, payroll and users
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
