package database

import (
	"fmt"
	"log"

	"drive_safe_backend/internal/config"
	"drive_safe_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	return db, nil
}

// Migrate 建表与索引，包括 test_passed 上的 (user_id, advice_id) 唯一索引
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.UserScore{},
		&model.Tag{},
		&model.Advice{},
		&model.TestQuestion{},
		&model.TestPassed{},
		&model.AdviceLike{},
		&model.ForumQuestion{},
		&model.ForumAnswer{},
	); err != nil {
		return err
	}

	seedDefaultTags(db)
	return nil
}

// 默认标签（库为空时插入）
func seedDefaultTags(db *gorm.DB) {
	var count int64
	db.Model(&model.Tag{}).Count(&count)
	if count > 0 {
		return
	}

	defaultTags := []model.Tag{
		{Name: "winter"},
		{Name: "highway"},
		{Name: "city"},
		{Name: "night"},
		{Name: "maintenance"},
	}
	for _, t := range defaultTags {
		db.Create(&t)
	}
}
