package services

import (
	"errors"
	"time"

	"github.com/Nachiketh1704/InternHub/entity"
	"github.com/Nachiketh1704/InternHub/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationService จัดการ business logic ของใบสมัคร
type ApplicationService struct {
	Repo *repository.ApplicationRepository
}

func NewApplicationService(repo *repository.ApplicationRepository) *ApplicationService {
	return &ApplicationService{Repo: repo}
}

type CreateApplicationInput struct {
	FullName        string
	Email           string
	PhoneNumber     string
	Role            string
	SkillsInterests string
	Availability    string
}

// Create บันทึกใบสมัครใหม่ email ซ้ำไม่ได้
func (s *ApplicationService) Create(in CreateApplicationInput) (*entity.Application, error) {
	// ตรวจซ้ำก่อน เพื่อให้ได้ error message ตรง ๆ
	count, err := s.Repo.CountByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailRegistered
	}

	now := time.Now()
	app := &entity.Application{
		AppID:           uuid.NewString(),
		FullName:        in.FullName,
		Email:           in.Email,
		PhoneNumber:     in.PhoneNumber,
		Role:            in.Role,
		SkillsInterests: in.SkillsInterests,
		Availability:    in.Availability,
		Status:          entity.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Repo.Create(app); err != nil {
		// unique index บน email กันเคส check-then-insert ชนกัน
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailRegistered
		}
		return nil, err
	}
	return app, nil
}

// List ใบสมัครทั้งหมด ใหม่สุดก่อน
func (s *ApplicationService) List() ([]entity.Application, error) {
	return s.Repo.FindAll()
}

// GetByAppID หาใบสมัครตาม public id
func (s *ApplicationService) GetByAppID(appID string) (*entity.Application, error) {
	app, err := s.Repo.FindByAppID(appID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return app, nil
}

// UpdateStatus เปลี่ยนสถานะ (กราฟ status ต่อถึงกันหมด ตั้งค่าซ้ำก็ถือว่าสำเร็จ)
func (s *ApplicationService) UpdateStatus(appID, status string) error {
	if !entity.ValidStatus(status) {
		return ErrInvalidStatus
	}
	affected, err := s.Repo.UpdateStatus(appID, status, time.Now())
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

// Delete ลบถาวร
func (s *ApplicationService) Delete(appID string) error {
	affected, err := s.Repo.DeleteByAppID(appID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
