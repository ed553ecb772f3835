package config

import (
	"fmt"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverMysql    = "mysql"
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

type Database struct {
	Driver          string `yaml:"driver" json:"driver,omitempty"`
	Host            string `yaml:"host" json:"host,omitempty"`
	Port            int64  `yaml:"port" json:"port,omitempty"`
	User            string `yaml:"user" json:"user,omitempty"`
	Password        string `yaml:"password" json:"-"`
	DbName          string `yaml:"db-name" json:"db-name,omitempty"`
	MaxIdleConns    int    `yaml:"max-idle-conns" json:"max-idle-conns,omitempty"`
	MaxOpenConns    int    `yaml:"max-open-conns" json:"max-open-conns,omitempty"`
	ConnMaxLifetime int    `yaml:"conn-max-lifetime" json:"conn-max-lifetime,omitempty"` // 秒
	LogLevel        string `yaml:"log-level" json:"log-level,omitempty"`
}

// Dialector 根据驱动类型生成 GORM 方言
func (d Database) Dialector() (gorm.Dialector, error) {
	switch d.Driver {
	case DriverMysql, "":
		return mysql.Open(d.MysqlDSN()), nil
	case DriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=disable password=%s",
			d.Host, d.Port, d.User, d.DbName, d.Password)
		return postgres.Open(dsn), nil
	case DriverSqlite:
		// sqlite 下 db-name 为文件路径，":memory:" 为内存库
		return sqlite.Open(d.DbName), nil
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", d.Driver)
	}
}

// MysqlDSN 构建 MySQL 连接串
func (d Database) MysqlDSN() string {
	cfg := mysqldriver.NewConfig()
	cfg.User = d.User
	cfg.Passwd = d.Password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", d.Host, d.Port)
	cfg.DBName = d.DbName
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN()
}

func (d Database) gormLogLevel() gormlogger.LogLevel {
	switch d.LogLevel {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

// InitDB 打开数据库连接并配置连接池
func InitDB(database Database) (*gorm.DB, error) {
	dialector, err := database.Dialector()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(database.gormLogLevel()),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	maxIdle, maxOpen, lifetime := database.MaxIdleConns, database.MaxOpenConns, database.ConnMaxLifetime
	if maxIdle <= 0 {
		maxIdle = 10
	}
	if maxOpen <= 0 {
		maxOpen = 100
	}
	if lifetime <= 0 {
		lifetime = 3600
	}
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(time.Duration(lifetime) * time.Second)

	if database.Driver == DriverSqlite {
		// 内存库的数据只存在于单个连接上，连接不能被回收
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxLifetime(0)
	}

	return db, nil
}
