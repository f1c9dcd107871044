package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is an admin dashboard account, scoped to one tenant.
type User struct {
	ID           string `json:"id" gorm:"primaryKey"`
	TenantID     string `json:"tenantId" gorm:"index;not null"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	Name         string `json:"name"`
	PasswordHash string `json:"-" gorm:"not null"`
	Role         string `json:"role" gorm:"default:'admin'"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// SetPassword stores a bcrypt hash of the given plaintext password.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}
