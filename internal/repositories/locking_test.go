package repositories

import (
	"testing"

	"bancore/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestLockForUpdate_EmitsLockingClauseOnPostgres(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	var account models.Account
	stmt := lockForUpdate(db).Where("number = ?", "123456789").Find(&account).Statement

	assert.Contains(t, stmt.SQL.String(), "FOR UPDATE")
}

func TestLockForUpdate_SkipsLockingClauseOnSqlite(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DryRun: true,
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	var account models.Account
	stmt := lockForUpdate(db).Where("number = ?", "123456789").Find(&account).Statement

	assert.NotContains(t, stmt.SQL.String(), "FOR UPDATE")
}
