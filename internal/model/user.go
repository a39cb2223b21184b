package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role values assignable to a user
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an authenticated user in the system
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username" validate:"required"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	Name      string    `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Email     string    `gorm:"type:varchar(100)" json:"email,omitempty"`
	Role      string    `gorm:"type:varchar(10);default:user" json:"role" validate:"omitempty,oneof=admin user"`
	CreatedAt time.Time `json:"created_at"`
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

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
	}
}
