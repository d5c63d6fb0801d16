package db

import (
	"path/filepath"
	"testing"

	"smart_cafe/internal/config"
	"smart_cafe/internal/domain"
	"smart_cafe/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "seed.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	cfg := &config.Config{AdminEmail: "admin@cafe.com", AdminPassword: "admin123"}

	require.NoError(t, Seed(db, cfg))
	require.NoError(t, Seed(db, cfg))

	var admins, cafes, items int64
	db.Model(&domain.User{}).Where("role = ?", "admin").Count(&admins)
	db.Model(&domain.Cafe{}).Count(&cafes)
	db.Model(&domain.MenuItem{}).Count(&items)
	assert.EqualValues(t, 1, admins)
	assert.EqualValues(t, 1, cafes)
	assert.EqualValues(t, 7, items)
}

func TestSeedAdminCredentials(t *testing.T) {
	db := openTestDB(t)
	cfg := &config.Config{AdminEmail: "admin@cafe.com", AdminPassword: "admin123"}
	require.NoError(t, Seed(db, cfg))

	var admin domain.User
	require.NoError(t, db.Where("email = ?", cfg.AdminEmail).First(&admin).Error)
	assert.Equal(t, "admin", admin.Role)
	assert.NotEqual(t, cfg.AdminPassword, admin.Password) // digest, never plaintext
	assert.True(t, utils.CheckPassword(admin.Password, cfg.AdminPassword))
}

func TestSeedSkipsPopulatedCatalog(t *testing.T) {
	db := openTestDB(t)
	cfg := &config.Config{AdminEmail: "admin@cafe.com", AdminPassword: "admin123"}

	// An existing cafe suppresses the sample data entirely
	require.NoError(t, db.Create(&domain.Cafe{Name: "Pre-existing", Status: "active"}).Error)
	require.NoError(t, Seed(db, cfg))

	var cafes, items int64
	db.Model(&domain.Cafe{}).Count(&cafes)
	db.Model(&domain.MenuItem{}).Count(&items)
	assert.EqualValues(t, 1, cafes)
	assert.EqualValues(t, 0, items)
}
