package service

import (
	"path/filepath"
	"testing"

	"drive_safe_backend/internal/model"
	"drive_safe_backend/pkg/database"
	"drive_safe_backend/pkg/logger"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	logger.Log = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()

	user := &model.User{Username: username, Password: "hashed"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := db.Create(&model.UserScore{UserID: user.ID}).Error; err != nil {
		t.Fatalf("create user score: %v", err)
	}
	return user
}

func createTestAdvice(t *testing.T, db *gorm.DB, title string, points int) *model.Advice {
	t.Helper()

	advice := &model.Advice{Title: title, Text: "text for " + title, TestPoints: points}
	if err := db.Create(advice).Error; err != nil {
		t.Fatalf("create advice: %v", err)
	}
	return advice
}

func createTestQuestion(t *testing.T, db *gorm.DB, adviceID uint, correct string) *model.TestQuestion {
	t.Helper()

	question := &model.TestQuestion{
		AdviceID:      adviceID,
		QuestionText:  "question",
		AnswerA:       "a",
		AnswerB:       "b",
		AnswerC:       "c",
		CorrectAnswer: correct,
	}
	if err := db.Create(question).Error; err != nil {
		t.Fatalf("create question: %v", err)
	}
	return question
}

func userScore(t *testing.T, db *gorm.DB, userID uint) int {
	t.Helper()

	var score model.UserScore
	if err := db.Where("user_id = ?", userID).First(&score).Error; err != nil {
		t.Fatalf("load user score: %v", err)
	}
	return score.Score
}

func passedCount(t *testing.T, db *gorm.DB, userID, adviceID uint) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&model.TestPassed{}).
		Where("user_id = ? AND advice_id = ?", userID, adviceID).
		Count(&count).Error; err != nil {
		t.Fatalf("count passed records: %v", err)
	}
	return count
}
