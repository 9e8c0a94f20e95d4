package services

import (
	"errors"
	"log"
	"time"

	"github.com/Nachiketh1704/InternHub/repository"
	"github.com/Nachiketh1704/InternHub/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService login ร่วมจุดเดียว: admin (username/password) หรือ applicant (email)
// credentials ของ admin โหลดครั้งเดียวตอนสร้าง service ไม่ใช่ global
type AuthService struct {
	appRepo   *repository.ApplicationRepository
	jwtSecret string
	jwtTTL    time.Duration

	adminUsername string
	adminHash     string
}

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

func NewAuthService(userRepo *repository.UserRepository, appRepo *repository.ApplicationRepository, secret string, ttl time.Duration) *AuthService {
	s := &AuthService{
		appRepo:   appRepo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}

	admin, err := userRepo.FindAdmin()
	if err == nil {
		s.adminUsername = admin.Username
		s.adminHash = admin.Password
		log.Println("admin credentials loaded from database")
		return s
	}

	// ไม่มี admin ใน DB → ใช้ค่า default
	hash, hashErr := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if hashErr != nil {
		log.Fatalf("hash default admin password failed: %v", hashErr)
	}
	s.adminUsername = defaultAdminUsername
	s.adminHash = string(hash)
	log.Println("using default admin credentials")
	return s
}

type LoginInput struct {
	Username string
	Password string
	Email    string
}

// ข้อมูลย่อของ applicant ที่ส่งกลับตอน login
type UserInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginResult struct {
	Token        string    `json:"token"`
	Message      string    `json:"message"`
	UserType     string    `json:"user_type"`
	RedirectPath string    `json:"redirect_path"`
	UserInfo     *UserInfo `json:"user_info,omitempty"`
}

// Login แยกตาม field ที่ส่งมา
func (s *AuthService) Login(in LoginInput) (*LoginResult, error) {
	if in.Username != "" && in.Password != "" {
		if in.Username != s.adminUsername {
			return nil, ErrInvalidCredentials
		}
		if err := bcrypt.CompareHashAndPassword([]byte(s.adminHash), []byte(in.Password)); err != nil {
			return nil, ErrInvalidCredentials
		}

		token, err := utils.GenerateToken(s.adminUsername, "admin", s.jwtSecret, s.jwtTTL)
		if err != nil {
			return nil, err
		}
		return &LoginResult{
			Token:        token,
			Message:      "Admin login successful",
			UserType:     "admin",
			RedirectPath: "/admin/dashboard",
		}, nil
	}

	if in.Email != "" {
		app, err := s.appRepo.FindByEmail(in.Email)
		if err != nil {
			// 404 เฉพาะตอนไม่เจอจริง ๆ error อื่นของ store ต้องเป็น 500
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNoApplicationFound
			}
			return nil, err
		}

		token, err := utils.GenerateToken(app.AppID, "applicant", s.jwtSecret, s.jwtTTL)
		if err != nil {
			return nil, err
		}
		return &LoginResult{
			Token:        token,
			Message:      "Applicant login successful",
			UserType:     "applicant",
			RedirectPath: "/status",
			UserInfo: &UserInfo{
				ID:    app.AppID,
				Name:  app.FullName,
				Email: app.Email,
			},
		}, nil
	}

	return nil, ErrMissingCredentials
}
