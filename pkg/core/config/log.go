package config

type LogConfig struct {
	Level string `yaml:"level"`
	// DisableStackTrace 为 true 时错误日志不带完整堆栈
	DisableStackTrace bool `yaml:"disable-stack-trace"`
}
