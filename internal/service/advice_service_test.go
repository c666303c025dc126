package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"drive_safe_backend/internal/model"
	"drive_safe_backend/internal/repository"
	"drive_safe_backend/internal/util"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

func newAdviceService(t *testing.T, db *gorm.DB) (*AdviceService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	svc := NewAdviceService(
		repository.NewAdviceRepository(db),
		repository.NewTestQuestionRepository(db),
		repository.NewTagRepository(db),
		rdb,
		5*time.Minute,
	)
	return svc, mr
}

func TestGetAdvicesCachesList(t *testing.T) {
	db := setupTestDB(t)
	svc, mr := newAdviceService(t, db)
	ctx := context.Background()

	createTestAdvice(t, db, "first", 5)

	advices, err := svc.GetAdvices(ctx)
	if err != nil {
		t.Fatalf("GetAdvices: %v", err)
	}
	if len(advices) != 1 {
		t.Fatalf("expected 1 advice, got %d", len(advices))
	}

	if !mr.Exists("advices:all") {
		t.Fatal("expected advice list to be cached")
	}

	// 绕过服务层写库，命中缓存时看不到新数据
	createTestAdvice(t, db, "second", 5)

	advices, err = svc.GetAdvices(ctx)
	if err != nil {
		t.Fatalf("GetAdvices: %v", err)
	}
	if len(advices) != 1 {
		t.Fatalf("expected cached list of 1 advice, got %d", len(advices))
	}
}

func TestCreateAdviceInvalidatesCache(t *testing.T) {
	db := setupTestDB(t)
	svc, mr := newAdviceService(t, db)
	ctx := context.Background()

	createTestAdvice(t, db, "first", 5)
	if _, err := svc.GetAdvices(ctx); err != nil {
		t.Fatalf("GetAdvices: %v", err)
	}

	if _, err := svc.CreateAdvice(ctx, AdviceRequest{Title: "second", Text: "text"}); err != nil {
		t.Fatalf("CreateAdvice: %v", err)
	}

	if mr.Exists("advices:all") {
		t.Fatal("expected cache to be invalidated after create")
	}

	advices, err := svc.GetAdvices(ctx)
	if err != nil {
		t.Fatalf("GetAdvices: %v", err)
	}
	if len(advices) != 2 {
		t.Fatalf("expected 2 advices after create, got %d", len(advices))
	}
}

func TestGetAdvicesWithoutRedis(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newAdviceService(t, db)
	svc.Redis = nil

	createTestAdvice(t, db, "first", 5)

	advices, err := svc.GetAdvices(context.Background())
	if err != nil {
		t.Fatalf("GetAdvices: %v", err)
	}
	if len(advices) != 1 {
		t.Fatalf("expected 1 advice, got %d", len(advices))
	}
}

func TestGetAdviceDetail(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newAdviceService(t, db)

	user := createTestUser(t, db, "driver")
	advice := createTestAdvice(t, db, "city driving", 10)

	if err := svc.LikeAdvice(user.ID, advice.ID); err != nil {
		t.Fatalf("LikeAdvice: %v", err)
	}

	detail, err := svc.GetAdvice(advice.ID)
	if err != nil {
		t.Fatalf("GetAdvice: %v", err)
	}
	if detail.Title != "city driving" {
		t.Fatalf("unexpected title %q", detail.Title)
	}
	if detail.Likes != 1 {
		t.Fatalf("expected 1 like, got %d", detail.Likes)
	}

	if _, err := svc.GetAdvice(9999); !errors.Is(err, util.ErrAdviceNotFound) {
		t.Fatalf("expected ErrAdviceNotFound, got %v", err)
	}
}

func TestGetAdvicesByTag(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newAdviceService(t, db)

	var winter model.Tag
	if err := db.Where("name = ?", "winter").First(&winter).Error; err != nil {
		t.Fatalf("load seeded tag: %v", err)
	}

	tagged := createTestAdvice(t, db, "snow chains", 5)
	createTestAdvice(t, db, "untagged", 5)
	if err := db.Model(tagged).Association("Tags").Append(&winter); err != nil {
		t.Fatalf("append tag: %v", err)
	}

	advices, err := svc.GetAdvicesByTag(winter.ID)
	if err != nil {
		t.Fatalf("GetAdvicesByTag: %v", err)
	}
	if len(advices) != 1 || advices[0].ID != tagged.ID {
		t.Fatalf("expected only the tagged advice, got %+v", advices)
	}
}

func TestGetTestQuestionsHidesAnswer(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newAdviceService(t, db)

	advice := createTestAdvice(t, db, "quiz advice", 5)
	createTestQuestion(t, db, advice.ID, "B")

	questions, err := svc.GetTestQuestions(advice.ID)
	if err != nil {
		t.Fatalf("GetTestQuestions: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}

	if _, err := svc.GetTestQuestions(9999); !errors.Is(err, util.ErrAdviceNotFound) {
		t.Fatalf("expected ErrAdviceNotFound, got %v", err)
	}
}

func TestUpdateAdviceReplacesTags(t *testing.T) {
	db := setupTestDB(t)
	svc, mr := newAdviceService(t, db)
	ctx := context.Background()

	var winter, night model.Tag
	if err := db.Where("name = ?", "winter").First(&winter).Error; err != nil {
		t.Fatalf("load tag: %v", err)
	}
	if err := db.Where("name = ?", "night").First(&night).Error; err != nil {
		t.Fatalf("load tag: %v", err)
	}

	advice := createTestAdvice(t, db, "old title", 5)
	if err := db.Model(advice).Association("Tags").Append(&winter); err != nil {
		t.Fatalf("append tag: %v", err)
	}
	if _, err := svc.GetAdvices(ctx); err != nil {
		t.Fatalf("GetAdvices: %v", err)
	}

	updated, err := svc.UpdateAdvice(ctx, advice.ID, AdviceRequest{
		Title:      "new title",
		Text:       "new text",
		TestPoints: 30,
		TagIDs:     []uint{night.ID},
	})
	if err != nil {
		t.Fatalf("UpdateAdvice: %v", err)
	}
	if updated.Title != "new title" || updated.TestPoints != 30 {
		t.Fatalf("unexpected advice after update: %+v", updated)
	}
	if len(updated.Tags) != 1 || updated.Tags[0].ID != night.ID {
		t.Fatalf("expected tags replaced with night, got %+v", updated.Tags)
	}
	if mr.Exists("advices:all") {
		t.Fatal("expected cache invalidated after update")
	}
}

func TestDeleteAdvice(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newAdviceService(t, db)
	ctx := context.Background()

	advice := createTestAdvice(t, db, "to delete", 5)

	if err := svc.DeleteAdvice(ctx, advice.ID); err != nil {
		t.Fatalf("DeleteAdvice: %v", err)
	}
	if _, err := svc.GetAdvice(advice.ID); !errors.Is(err, util.ErrAdviceNotFound) {
		t.Fatalf("expected ErrAdviceNotFound after delete, got %v", err)
	}
	if err := svc.DeleteAdvice(ctx, advice.ID); !errors.Is(err, util.ErrAdviceNotFound) {
		t.Fatalf("expected ErrAdviceNotFound on second delete, got %v", err)
	}
}

func TestCreateQuestionValidatesLetter(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newAdviceService(t, db)

	advice := createTestAdvice(t, db, "quiz advice", 5)

	req := TestQuestionRequest{
		QuestionText:  "q",
		AnswerA:       "a",
		AnswerB:       "b",
		AnswerC:       "c",
		CorrectAnswer: "D",
	}
	if _, err := svc.CreateQuestion(advice.ID, req); err == nil {
		t.Fatal("expected error for correct answer outside A-C")
	}

	req.CorrectAnswer = "b"
	question, err := svc.CreateQuestion(advice.ID, req)
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	if question.ID == 0 || question.AdviceID != advice.ID {
		t.Fatalf("unexpected question: %+v", question)
	}
}

func TestLikeAndUnlikeAdvice(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newAdviceService(t, db)

	user := createTestUser(t, db, "driver")
	advice := createTestAdvice(t, db, "likeable", 5)

	if err := svc.LikeAdvice(user.ID, advice.ID); err != nil {
		t.Fatalf("LikeAdvice: %v", err)
	}
	if err := svc.LikeAdvice(user.ID, advice.ID); !errors.Is(err, util.ErrAlreadyLiked) {
		t.Fatalf("expected ErrAlreadyLiked, got %v", err)
	}
	if err := svc.LikeAdvice(user.ID, 9999); !errors.Is(err, util.ErrAdviceNotFound) {
		t.Fatalf("expected ErrAdviceNotFound, got %v", err)
	}

	if err := svc.UnlikeAdvice(user.ID, advice.ID); err != nil {
		t.Fatalf("UnlikeAdvice: %v", err)
	}
	if err := svc.UnlikeAdvice(user.ID, advice.ID); !errors.Is(err, util.ErrLikeNotFound) {
		t.Fatalf("expected ErrLikeNotFound, got %v", err)
	}
}

func TestTagManagement(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newAdviceService(t, db)
	ctx := context.Background()

	tags, err := svc.ListTags()
	if err != nil {
		t.Fatalf("ListTags: %v", err)
	}
	seeded := len(tags)
	if seeded == 0 {
		t.Fatal("expected seeded default tags")
	}

	tag, err := svc.CreateTag("rain")
	if err != nil {
		t.Fatalf("CreateTag: %v", err)
	}

	tags, err = svc.ListTags()
	if err != nil {
		t.Fatalf("ListTags: %v", err)
	}
	if len(tags) != seeded+1 {
		t.Fatalf("expected %d tags, got %d", seeded+1, len(tags))
	}

	if err := svc.DeleteTag(ctx, tag.ID); err != nil {
		t.Fatalf("DeleteTag: %v", err)
	}
	if err := svc.DeleteTag(ctx, tag.ID); !errors.Is(err, util.ErrTagNotFound) {
		t.Fatalf("expected ErrTagNotFound, got %v", err)
	}
}
