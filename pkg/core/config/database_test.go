package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMysqlDSN(t *testing.T) {
	d := Database{Host: "127.0.0.1", Port: 3306, User: "root", Password: "secret", DbName: "bloodbank"}

	dsn := d.MysqlDSN()
	assert.Contains(t, dsn, "root:secret@tcp(127.0.0.1:3306)/bloodbank")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")
}

func TestDialector(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		want    string
		wantErr bool
	}{
		{name: "默认 mysql", driver: "", want: "mysql"},
		{name: "mysql", driver: DriverMysql, want: "mysql"},
		{name: "postgres", driver: DriverPostgres, want: "postgres"},
		{name: "sqlite", driver: DriverSqlite, want: "sqlite"},
		{name: "未知驱动", driver: "oracle", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialector, err := Database{Driver: tt.driver, DbName: ":memory:"}.Dialector()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, dialector.Name())
		})
	}
}

func TestInitDBSqlite(t *testing.T) {
	db, err := InitDB(Database{Driver: DriverSqlite, DbName: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	require.NoError(t, sqlDB.Ping())
}
