package database

import (
	"fmt"
	"log"

	"skill_tracker_backend/internal/config"
	"skill_tracker_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// release 模式下默认跳过自动迁移，需要 -migrate 显式触发
	if cfg.Server.Mode == "release" && !cfg.ForceMigrate {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Skill{},
		&model.ProgressEntry{},
		&model.Goal{},
		&model.LearningResource{},
		&model.Notification{},
		&model.Achievement{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 默认技能目录（空库时插入，方便新用户直接记录练习）
	var count int64
	db.Model(&model.Skill{}).Count(&count)
	if count == 0 {
		defaultSkills := []model.Skill{
			{Name: "HTML & CSS", Category: model.CategoryFrontend, Difficulty: model.DifficultyEasy, Description: "页面结构与样式基础"},
			{Name: "JavaScript", Category: model.CategoryFrontend, Difficulty: model.DifficultyMedium, Description: "前端脚本语言"},
			{Name: "Go", Category: model.CategoryBackend, Difficulty: model.DifficultyMedium, Description: "后端服务开发"},
			{Name: "SQL", Category: model.CategoryData, Difficulty: model.DifficultyEasy, Description: "关系型数据库查询"},
			{Name: "Docker", Category: model.CategoryDevOps, Difficulty: model.DifficultyMedium, Description: "容器化部署"},
			{Name: "Figma", Category: model.CategoryDesign, Difficulty: model.DifficultyEasy, Description: "界面设计工具"},
		}
		for _, s := range defaultSkills {
			db.Create(&s)
		}
	}

	return db, nil
}
