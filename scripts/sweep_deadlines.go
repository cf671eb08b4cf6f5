// 手动触发目标截止提醒扫描脚本
//
// 该功能已集成到主应用的后台定时任务中（每小时自动执行一次）。
// 此脚本仅用于手动触发，例如服务长时间停机后补发提醒。
//
// 用法: go run scripts/sweep_deadlines.go

package main

import (
	"log"
	"os"
	"time"

	"skill_tracker_backend/internal/config"
	"skill_tracker_backend/internal/repository"
	"skill_tracker_backend/internal/service"
	"skill_tracker_backend/pkg/database"
	"skill_tracker_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	notificationRepo := repository.NewNotificationRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	notificationService := service.NewNotificationService(notificationRepo, goalRepo)

	log.Println("手动触发截止提醒扫描...")
	if err := notificationService.SweepDeadlines(time.Now()); err != nil {
		log.Fatalf("扫描失败: %v", err)
	}
	log.Println("完成！")
}
