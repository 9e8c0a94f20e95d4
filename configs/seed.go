package configs

import (
	"log"
	"time"

	"github.com/Nachiketh1704/InternHub/entity"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// สร้าง admin ครั้งแรก (รหัสผ่าน hash ด้วย bcrypt ไม่เก็บ cleartext)
func SeedAdmin() error {
	db := DB()
	username := getEnv("ADMIN_USERNAME", "admin")
	pass := getEnv("ADMIN_PASSWORD", "admin123")
	email := getEnv("ADMIN_EMAIL", "admin@talenthub.com")

	var count int64
	db.Model(&entity.User{}).Where("role = ?", "admin").Count(&count)
	if count > 0 {
		log.Println("ℹ️ admin already exists:", username)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		UserID:   uuid.NewString(),
		Username: username,
		Password: string(hash),
		Email:    email,
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// Seed ใบสมัครตัวอย่างไว้ลองระบบ (เปิดด้วย SEED_SAMPLE_DATA=true)
func SeedApplications() error {
	if getEnv("SEED_SAMPLE_DATA", "") != "true" {
		return nil
	}
	db := DB()

	var count int64
	db.Model(&entity.Application{}).Count(&count)
	if count > 0 {
		log.Println("ℹ️ applications already seeded")
		return nil
	}

	date := func(day int) time.Time {
		return time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)
	}

	// วันที่ต่างกันทุกใบ และใบที่ผ่านการรีวิวแล้ว updated_at จะใหม่กว่า created_at
	samples := []entity.Application{
		{
			FullName:        "John Smith",
			Email:           "john.smith@email.com",
			PhoneNumber:     "+1234567890",
			Role:            entity.RoleIntern,
			SkillsInterests: "Web Development, React, Node.js, MongoDB, JavaScript, Python",
			Availability:    "Full-time, Monday to Friday, 9 AM - 5 PM",
			Status:          entity.StatusPending,
			CreatedAt:       date(15),
			UpdatedAt:       date(15),
		},
		{
			FullName:        "Sarah Johnson",
			Email:           "sarah.johnson@email.com",
			PhoneNumber:     "+1987654321",
			Role:            entity.RoleVolunteer,
			SkillsInterests: "UI/UX Design, Figma, Adobe Creative Suite, User Research, Prototyping",
			Availability:    "Part-time, Weekends and evenings",
			Status:          entity.StatusApproved,
			CreatedAt:       date(10),
			UpdatedAt:       date(12),
		},
		{
			FullName:        "Michael Chen",
			Email:           "michael.chen@email.com",
			PhoneNumber:     "+1555123456",
			Role:            entity.RoleIntern,
			SkillsInterests: "Data Science, Machine Learning, Python, SQL, Statistics, Data Visualization",
			Availability:    "Full-time, Flexible hours",
			Status:          entity.StatusUnderReview,
			CreatedAt:       date(20),
			UpdatedAt:       date(22),
		},
		{
			FullName:        "Emily Rodriguez",
			Email:           "emily.rodriguez@email.com",
			PhoneNumber:     "+1444987654",
			Role:            entity.RoleVolunteer,
			SkillsInterests: "Content Writing, Social Media Management, Marketing, SEO",
			Availability:    "Part-time, Flexible schedule",
			Status:          entity.StatusRejected,
			CreatedAt:       date(5),
			UpdatedAt:       date(8),
		},
		{
			FullName:        "David Kim",
			Email:           "david.kim@email.com",
			PhoneNumber:     "+1333456789",
			Role:            entity.RoleIntern,
			SkillsInterests: "Mobile Development, Flutter, Dart, iOS, Android, Firebase",
			Availability:    "Full-time, Monday to Friday",
			Status:          entity.StatusPending,
			CreatedAt:       date(25),
			UpdatedAt:       date(25),
		},
	}

	for i := range samples {
		samples[i].AppID = uuid.NewString()
		if err := db.Create(&samples[i]).Error; err != nil {
			return err
		}
	}

	log.Println("✅ sample applications seeded")
	return nil
}
