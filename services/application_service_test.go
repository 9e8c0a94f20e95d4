package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Nachiketh1704/InternHub/entity"
	"github.com/Nachiketh1704/InternHub/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Application{}))
	return db
}

func newAppService(t *testing.T) *ApplicationService {
	t.Helper()
	return NewApplicationService(repository.NewApplicationRepository(newTestDB(t)))
}

func validInput(email string) CreateApplicationInput {
	return CreateApplicationInput{
		FullName:        "Jo Lee",
		Email:           email,
		PhoneNumber:     "1234567890",
		Role:            entity.RoleIntern,
		SkillsInterests: "Python programming",
		Availability:    "Weekdays",
	}
}

func TestCreate_FreshEmail(t *testing.T) {
	svc := newAppService(t)

	app, err := svc.Create(validInput("jo@example.com"))
	require.NoError(t, err)

	assert.NotEmpty(t, app.AppID)
	assert.Equal(t, entity.StatusPending, app.Status)
	assert.Equal(t, app.CreatedAt, app.UpdatedAt)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	svc := newAppService(t)

	_, err := svc.Create(validInput("jo@example.com"))
	require.NoError(t, err)

	_, err = svc.Create(validInput("jo@example.com"))
	assert.ErrorIs(t, err, ErrEmailRegistered)
}

func TestList_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(repository.NewApplicationRepository(db))

	// สร้างสลับเวลาเอง เพื่อทดสอบ ordering ไม่ขึ้นกับลำดับ insert
	base := time.Now().Add(-time.Hour)
	for i, email := range []string{"a@example.com", "c@example.com", "b@example.com"} {
		app := entity.Application{
			AppID:     email, // ใช้ email แทน uuid ให้เช็คง่าย
			FullName:  "Someone",
			Email:     email,
			Status:    entity.StatusPending,
			CreatedAt: base.Add(time.Duration([]int{2, 0, 1}[i]) * time.Minute),
			UpdatedAt: base,
		}
		require.NoError(t, db.Create(&app).Error)
	}

	apps, err := svc.List()
	require.NoError(t, err)
	require.Len(t, apps, 3)
	for i := 1; i < len(apps); i++ {
		assert.False(t, apps[i].CreatedAt.After(apps[i-1].CreatedAt), "expected non-increasing created_at")
	}
	assert.Equal(t, "a@example.com", apps[0].Email)
}

func TestGetByAppID(t *testing.T) {
	svc := newAppService(t)

	created, err := svc.Create(validInput("jo@example.com"))
	require.NoError(t, err)

	got, err := svc.GetByAppID(created.AppID)
	require.NoError(t, err)
	assert.Equal(t, created.AppID, got.AppID)
	assert.Equal(t, "jo@example.com", got.Email)

	_, err = svc.GetByAppID("missing-id")
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestUpdateStatus_AllStates(t *testing.T) {
	svc := newAppService(t)

	created, err := svc.Create(validInput("jo@example.com"))
	require.NoError(t, err)

	prev := created.UpdatedAt
	for _, s := range []string{
		entity.StatusUnderReview,
		entity.StatusApproved,
		entity.StatusRejected,
		entity.StatusPending, // ย้อนกลับได้ กราฟต่อถึงกันหมด
	} {
		time.Sleep(5 * time.Millisecond)
		require.NoError(t, svc.UpdateStatus(created.AppID, s))

		got, err := svc.GetByAppID(created.AppID)
		require.NoError(t, err)
		assert.Equal(t, s, got.Status)
		assert.True(t, got.UpdatedAt.After(prev), "updated_at should move forward")
		prev = got.UpdatedAt
	}
}

func TestUpdateStatus_SameStatusIsNoopSuccess(t *testing.T) {
	svc := newAppService(t)

	created, err := svc.Create(validInput("jo@example.com"))
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(created.AppID, entity.StatusPending))
	got, err := svc.GetByAppID(created.AppID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, got.Status)
}

func TestUpdateStatus_Invalid(t *testing.T) {
	svc := newAppService(t)
	err := svc.UpdateStatus("whatever", "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := newAppService(t)
	err := svc.UpdateStatus("missing-id", entity.StatusApproved)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestDelete(t *testing.T) {
	svc := newAppService(t)

	created, err := svc.Create(validInput("jo@example.com"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.AppID))

	_, err = svc.GetByAppID(created.AppID)
	assert.ErrorIs(t, err, ErrApplicationNotFound)

	assert.ErrorIs(t, svc.Delete(created.AppID), ErrApplicationNotFound)
}
