package dbtest

import (
	"testing"

	"bloodbank/pkg/core/config"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Open 打开一个 SQLite 内存库并迁移给定的模型，测试结束时关闭
func Open(t testing.TB, models ...interface{}) *gorm.DB {
	t.Helper()

	db, err := config.InitDB(config.Database{
		Driver:   config.DriverSqlite,
		DbName:   ":memory:",
		LogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models...))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
