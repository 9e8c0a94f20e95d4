package repository

import (
	"time"

	"github.com/Nachiketh1704/InternHub/entity"
	"gorm.io/gorm"
)

type ApplicationRepository struct{ DB *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{DB: db}
}

func (r *ApplicationRepository) Create(app *entity.Application) error {
	return r.DB.Create(app).Error
}

// นับใบสมัครที่ใช้ email นี้แล้ว
func (r *ApplicationRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Application{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *ApplicationRepository) FindByEmail(email string) (*entity.Application, error) {
	var app entity.Application
	if err := r.DB.Where("email = ?", email).First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// หาใบสมัครตาม public id (uuid)
func (r *ApplicationRepository) FindByAppID(appID string) (*entity.Application, error) {
	var app entity.Application
	if err := r.DB.Where("app_id = ?", appID).First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// ทั้งหมด เรียงใหม่สุดก่อน
func (r *ApplicationRepository) FindAll() ([]entity.Application, error) {
	var apps []entity.Application
	err := r.DB.Order("created_at DESC").Find(&apps).Error
	return apps, err
}

// อัปเดตเฉพาะ status + updated_at คืนจำนวน row ที่โดน
func (r *ApplicationRepository) UpdateStatus(appID, status string, now time.Time) (int64, error) {
	res := r.DB.Model(&entity.Application{}).
		Where("app_id = ?", appID).
		Updates(map[string]any{"status": status, "updated_at": now})
	return res.RowsAffected, res.Error
}

// ลบถาวร คืนจำนวน row ที่โดน
func (r *ApplicationRepository) DeleteByAppID(appID string) (int64, error) {
	res := r.DB.Where("app_id = ?", appID).Delete(&entity.Application{})
	return res.RowsAffected, res.Error
}
