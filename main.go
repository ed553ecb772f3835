package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"bloodbank/app"
	"bloodbank/pkg/core/metrics"
	"bloodbank/pkg/core/start"
	"bloodbank/pkg/core/view"
	"bloodbank/pkg/db"
	"bloodbank/router"
)

func main() {
	env, filename := getBaseInfo()

	file, err := os.ReadFile(filename)
	if err != nil {
		panic(fmt.Sprintf("读取配置文件失败,因为：%v", err))
	}

	configures := start.NewConfigures(file, env)
	cfg := configures.Config

	gdb := configures.EnableDB()

	// 执行数据库迁移
	if err := db.AutoMigrate(gdb); err != nil {
		configures.Logger.Panic(fmt.Sprintf("数据库迁移失败: %v", err))
	}

	// 创建应用组合根
	appRoot := app.NewApp(gdb, view.MustNew(), metrics.New(nil))

	// 创建 Fiber 应用
	fiberApp := app.GetApp(configures.Logger, cfg.Static)

	// 注册路由
	router.Register(appRoot, fiberApp, cfg.Metrics)

	configures.Logger.Info(fmt.Sprintf("%s 启动，环境: %s，端口: %d", cfg.AppName, env, cfg.Port))
	log.Fatal(fiberApp.Listen(fmt.Sprintf(":%d", cfg.Port)))
}

func getBaseInfo() (string, string) {
	// 定义命令行参数
	env := flag.String("env", "dev", "环境配置 (dev, prod, test等)")
	configFile := flag.String("config", "", "配置文件路径，默认为 ./resources/{env}.yaml")

	flag.Parse()

	// 如果没有指定配置文件路径，则使用默认路径
	var filename string
	if *configFile == "" {
		getwd, err := os.Getwd()
		if err != nil {
			panic(fmt.Sprintf("获取当前文件位置失败,因为：%v", err))
		}
		filename = getwd + "/resources/" + *env + ".yaml"
	} else {
		filename = *configFile
	}
	return *env, filename
}
