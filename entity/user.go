package entity

import (
	"time"
)

// User บัญชีผู้ดูแลระบบ (ปกติมีแค่คนเดียว seed ตอน start)
type User struct {
	ID uint `gorm:"primaryKey" json:"-"`

	UserID   string `gorm:"column:user_id;uniqueIndex;not null" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"` // bcrypt hash
	Email    string `json:"email"`
	Role     string `gorm:"not null;default:admin" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
