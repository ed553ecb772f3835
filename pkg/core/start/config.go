package start

import (
	"fmt"

	"bloodbank/pkg/core/config"
	errorc "bloodbank/pkg/core/err"
	"bloodbank/pkg/core/logger"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type Config struct {
	AppName  string               `yaml:"app-name"`
	Env      string               `yaml:"env"`
	Port     int                  `yaml:"port"`
	Static   string               `yaml:"static"`
	Log      config.LogConfig     `yaml:"log"`
	Database config.Database      `yaml:"db"`
	Metrics  config.MetricsConfig `yaml:"metrics"`
}

type Configures struct {
	Config Config
	Logger *logger.Log
}

// ParseConfig 解析 YAML 配置并补齐默认值
func ParseConfig(file []byte, env string) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return Config{}, err
	}

	cfg.Env = env
	if cfg.AppName == "" {
		cfg.AppName = "bloodbank"
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if cfg.Static == "" {
		cfg.Static = "./resources/static"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	return cfg, nil
}

func NewConfigures(file []byte, env string) *Configures {
	cfg, err := ParseConfig(file, env)
	if err != nil {
		panic(fmt.Sprintf("读取文件信息失败，因为%v", err))
	}

	errorc.SetStackTraceEnabled(!cfg.Log.DisableStackTrace)

	return &Configures{
		Config: cfg,
		Logger: logger.InitLogger(cfg.Log.Level),
	}
}

func (c *Configures) EnableDB() *gorm.DB {
	db, err := config.InitDB(c.Config.Database)
	if err != nil {
		c.Logger.WithField("database", c.Config.Database.Host).WithField("err", err).Panic("failed connect database")
	}
	c.Logger.WithField("driver", c.Config.Database.Driver).Info("connect database success")
	return db
}
