package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Surname string `gorm:"size:100" json:"surname"`

	// Uniqueness is enforced by partial indexes created in db.NewDB,
	// so phone-only and email-only accounts can coexist.
	Email       string `gorm:"size:100" json:"email"`
	PhoneNumber string `gorm:"size:20" json:"phone_number"`

	PasswordHash string `gorm:"size:255;not null" json:"-"`

	EmailVerified bool `gorm:"default:false" json:"email_verified"`
	PhoneVerified bool `gorm:"default:false" json:"phone_verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
