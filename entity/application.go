package entity

import (
	"time"
)

// สถานะของใบสมัคร
const (
	StatusPending     = "pending"
	StatusApproved    = "approved"
	StatusRejected    = "rejected"
	StatusUnderReview = "under_review"
)

// ตำแหน่งที่เปิดรับ
const (
	RoleIntern    = "intern"
	RoleVolunteer = "volunteer"
)

// Application ใบสมัคร intern/volunteer หนึ่งใบต่อหนึ่ง email
type Application struct {
	ID uint `gorm:"primaryKey" json:"-"`

	// public id (uuid) — ใช้อ้างอิงจากภายนอก ไม่ใช่ primary key
	AppID string `gorm:"column:app_id;uniqueIndex;not null" json:"id"`

	FullName        string `json:"full_name"`
	Email           string `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber     string `json:"phone_number"`
	Role            string `json:"role"` // intern | volunteer
	SkillsInterests string `json:"skills_interests"`
	Availability    string `json:"availability"`

	// pending / approved / rejected / under_review
	Status string `gorm:"not null;default:pending" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidStatus ตรวจว่า status อยู่ในชุดที่ระบบรู้จัก
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusUnderReview:
		return true
	}
	return false
}
