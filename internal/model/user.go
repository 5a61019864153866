package model

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Role is a fixed set; role-gating of routes happens in middleware, while the
// admin-cannot-touch-admin rules live in the user/auth services.
type Role string

const (
	RoleSuperAdmin    Role = "super_admin"
	RoleAdmin         Role = "admin"
	RoleAccountAdmin  Role = "account_admin"
	RoleSalesman      Role = "salesman"
	RoleStoreIncharge Role = "store_incharge"
	RoleGeneralUser   Role = "general_user"
)

var Roles = []Role{
	RoleSuperAdmin,
	RoleAdmin,
	RoleAccountAdmin,
	RoleSalesman,
	RoleStoreIncharge,
	RoleGeneralUser,
}

// ValidRole reports whether r is one of the known roles
func ValidRole(r Role) bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// User represents an authenticated user in the system
type User struct {
	BaseModel
	Email       string       `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password    string       `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	Name        string       `gorm:"type:varchar(255)" json:"name" validate:"required"`
	PhoneNumber string       `gorm:"type:varchar(20)" json:"phone_number"`
	Address     string       `gorm:"type:varchar(255)" json:"address"`
	Role        Role         `gorm:"type:varchar(30);not null;default:'general_user'" json:"role"`
	Permissions []Permission `gorm:"many2many:user_permissions;" json:"permissions,omitempty"`
	Status      Status       `gorm:"type:varchar(10);default:'active'" json:"status"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// HasPermission checks if the user has a specific permission code
func (u *User) HasPermission(code string) bool {
	for _, p := range u.Permissions {
		if p.Code == code {
			return true
		}
	}
	return false
}

// GetPermissionCodes returns a slice of all permission codes for this user
func (u *User) GetPermissionCodes() []string {
	codes := make([]string, len(u.Permissions))
	for i, p := range u.Permissions {
		codes[i] = p.Code
	}
	return codes
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID          uuid.UUID    `json:"id"`
	Email       string       `json:"email"`
	Name        string       `json:"name"`
	PhoneNumber string       `json:"phone_number"`
	Address     string       `json:"address"`
	Role        Role         `json:"role"`
	Status      Status       `json:"status"`
	Permissions []Permission `json:"permissions"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		PhoneNumber: u.PhoneNumber,
		Address:     u.Address,
		Role:        u.Role,
		Status:      u.Status,
		Permissions: u.Permissions,
	}
}
