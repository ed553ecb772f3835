package db

import (
	"bloodbank/pkg/core/logger"
	"bloodbank/system/bloodbank"
	"bloodbank/system/blooddonation"
	"bloodbank/system/donationrecord"
	"bloodbank/system/person"

	"gorm.io/gorm"
)

// AutoMigrate 自动执行所有数据库迁移
func AutoMigrate(db *gorm.DB) error {
	log := logger.GetLogger().WithEntryName("DatabaseMigration")

	log.Info("开始执行数据库迁移...")

	// 被引用的表先迁移
	if err := person.AutoMigrate(db, log); err != nil {
		return err
	}

	if err := bloodbank.AutoMigrate(db, log); err != nil {
		return err
	}

	if err := blooddonation.AutoMigrate(db, log); err != nil {
		return err
	}

	if err := donationrecord.AutoMigrate(db, log); err != nil {
		return err
	}

	log.Info("所有数据库迁移执行完成")
	return nil
}
