package models

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserRole represents the user role enum
type UserRole int

const (
	UserRoleAdmin    UserRole = 0 // Admin role
	UserRoleOperator UserRole = 1 // Operator role
)

// User represents an operations team account
type User struct {
	ID        uint       `json:"id" gorm:"primarykey"`
	Name      string     `json:"name" gorm:"size:100;not null"`
	Email     string     `json:"email" gorm:"size:100;uniqueIndex"`
	Password  string     `json:"password" gorm:"size:255;not null"`
	Role      UserRole   `json:"role" gorm:"type:integer;not null;default:1"`
	Token     string     `json:"-" gorm:"size:255;uniqueIndex"` // Authentication token (hidden from JSON)
	TokenExp  *time.Time `json:"-" gorm:"index"`                // Token expiration time
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// BeforeCreate hook to hash password before saving
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hashedPassword)
	}
	return nil
}

// BeforeUpdate hook to hash password before updating
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("Password") && u.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hashedPassword)
	}
	return nil
}

// CheckPassword verifies if the provided password matches the user's password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// GenerateToken creates a new authentication token for the user
func (u *User) GenerateToken() error {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return err
	}

	u.Token = hex.EncodeToString(tokenBytes)
	// Token expiration is 24 hours from issue
	expirationTime := time.Now().Add(24 * time.Hour)
	u.TokenExp = &expirationTime

	return nil
}

// IsTokenValid checks if the user's token is still valid
func (u *User) IsTokenValid() bool {
	if u.Token == "" || u.TokenExp == nil {
		return false
	}
	return time.Now().Before(*u.TokenExp)
}

// ClearToken removes the authentication token
func (u *User) ClearToken() {
	u.Token = ""
	u.TokenExp = nil
}
