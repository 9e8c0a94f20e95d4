package configs

import (
	"path/filepath"
	"testing"

	"github.com/Nachiketh1704/InternHub/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	ConnectionDB(filepath.Join(t.TempDir(), "test.db"))
	SetupDatabase()
}

func TestSeedAdmin_Idempotent(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, SeedAdmin())
	require.NoError(t, SeedAdmin()) // รันซ้ำต้องไม่สร้างเพิ่ม

	var admins []entity.User
	require.NoError(t, DB().Where("role = ?", "admin").Find(&admins).Error)
	require.Len(t, admins, 1)

	assert.Equal(t, "admin", admins[0].Username)
	assert.NotEmpty(t, admins[0].UserID)
	// ต้องเก็บเป็น bcrypt hash ไม่ใช่ cleartext
	assert.NotEqual(t, "admin123", admins[0].Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admins[0].Password), []byte("admin123")))
}

func TestSeedApplications(t *testing.T) {
	setupTestDB(t)
	t.Setenv("SEED_SAMPLE_DATA", "true")

	require.NoError(t, SeedApplications())
	require.NoError(t, SeedApplications()) // idempotent

	var apps []entity.Application
	require.NoError(t, DB().Order("created_at DESC").Find(&apps).Error)
	require.Len(t, apps, 5)

	// created_at ต้องต่างกันทุกใบ ให้ลำดับในหน้า admin นิ่ง
	seen := map[int64]bool{}
	for _, a := range apps {
		assert.False(t, seen[a.CreatedAt.Unix()], "created_at should be distinct: %s", a.Email)
		seen[a.CreatedAt.Unix()] = true

		switch a.Status {
		case entity.StatusPending:
			assert.True(t, a.UpdatedAt.Equal(a.CreatedAt), "%s not reviewed yet", a.Email)
		default:
			assert.True(t, a.UpdatedAt.After(a.CreatedAt), "%s was reviewed later", a.Email)
		}
	}
	assert.Equal(t, "david.kim@email.com", apps[0].Email)
}

func TestSeedApplications_DisabledByDefault(t *testing.T) {
	setupTestDB(t)
	t.Setenv("SEED_SAMPLE_DATA", "")

	require.NoError(t, SeedApplications())

	var count int64
	require.NoError(t, DB().Model(&entity.Application{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
