package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"drive_safe_backend/internal/model"
	"drive_safe_backend/internal/repository"
	"drive_safe_backend/internal/util"
	"drive_safe_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const adviceListCacheKey = "advices:all"

type AdviceService struct {
	AdviceRepo   *repository.AdviceRepository
	QuestionRepo *repository.TestQuestionRepository
	TagRepo      *repository.TagRepository
	Redis        *redis.Client
	CacheTTL     time.Duration
}

func NewAdviceService(
	adviceRepo *repository.AdviceRepository,
	questionRepo *repository.TestQuestionRepository,
	tagRepo *repository.TagRepository,
	rdb *redis.Client,
	cacheTTL time.Duration,
) *AdviceService {
	return &AdviceService{
		AdviceRepo:   adviceRepo,
		QuestionRepo: questionRepo,
		TagRepo:      tagRepo,
		Redis:        rdb,
		CacheTTL:     cacheTTL,
	}
}

type AdviceRequest struct {
	Title      string `json:"title" binding:"required,max=128"`
	Text       string `json:"text" binding:"required"`
	TestPoints int    `json:"testPoints" binding:"gte=0"`
	TagIDs     []uint `json:"tagIds"`
}

type TestQuestionRequest struct {
	QuestionText  string `json:"questionText" binding:"required"`
	AnswerA       string `json:"answerA" binding:"required"`
	AnswerB       string `json:"answerB" binding:"required"`
	AnswerC       string `json:"answerC" binding:"required"`
	CorrectAnswer string `json:"correctAnswer" binding:"required,len=1"`
}

// AdviceDetail 建议详情，附带点赞数
type AdviceDetail struct {
	model.Advice
	Likes int64 `json:"likes"`
}

// GetAdvices 建议列表，优先读缓存，未命中时回源并写缓存
func (s *AdviceService) GetAdvices(ctx context.Context) ([]model.Advice, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, adviceListCacheKey).Result()
		if err == nil {
			var advices []model.Advice
			if err := json.Unmarshal([]byte(cached), &advices); err == nil {
				return advices, nil
			}
		}
	}

	advices, err := s.AdviceRepo.FindAll()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(advices); err == nil {
			if err := s.Redis.Set(ctx, adviceListCacheKey, data, s.CacheTTL).Err(); err != nil {
				logger.Log.Warn("failed to cache advice list", zap.Error(err))
			}
		}
	}

	return advices, nil
}

func (s *AdviceService) invalidateCache(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, adviceListCacheKey).Err(); err != nil {
		logger.Log.Warn("failed to invalidate advice list cache", zap.Error(err))
	}
}

func (s *AdviceService) GetAdvice(id uint) (*AdviceDetail, error) {
	advice, err := s.AdviceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAdviceNotFound
		}
		return nil, err
	}

	likes, err := s.AdviceRepo.CountLikes(advice.ID)
	if err != nil {
		return nil, err
	}

	return &AdviceDetail{Advice: *advice, Likes: likes}, nil
}

func (s *AdviceService) GetAdvicesByTag(tagID uint) ([]model.Advice, error) {
	return s.AdviceRepo.FindByTag(tagID)
}

// GetTestQuestions 返回某建议的自测题，正确答案字母不随响应返回
func (s *AdviceService) GetTestQuestions(adviceID uint) ([]model.TestQuestion, error) {
	if _, err := s.AdviceRepo.FindByID(adviceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAdviceNotFound
		}
		return nil, err
	}
	return s.QuestionRepo.FindByAdvice(adviceID)
}

func (s *AdviceService) CreateAdvice(ctx context.Context, req AdviceRequest) (*model.Advice, error) {
	tags, err := s.TagRepo.FindByIDs(req.TagIDs)
	if err != nil {
		return nil, err
	}

	advice := &model.Advice{
		Title:      req.Title,
		Text:       req.Text,
		TestPoints: req.TestPoints,
		Tags:       tags,
	}
	if err := s.AdviceRepo.Create(advice); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return advice, nil
}

func (s *AdviceService) UpdateAdvice(ctx context.Context, id uint, req AdviceRequest) (*model.Advice, error) {
	advice, err := s.AdviceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAdviceNotFound
		}
		return nil, err
	}

	advice.Title = req.Title
	advice.Text = req.Text
	advice.TestPoints = req.TestPoints

	if err := s.AdviceRepo.Update(advice); err != nil {
		return nil, err
	}

	tags, err := s.TagRepo.FindByIDs(req.TagIDs)
	if err != nil {
		return nil, err
	}
	if err := s.AdviceRepo.ReplaceTags(advice, tags); err != nil {
		return nil, err
	}
	advice.Tags = tags

	s.invalidateCache(ctx)
	return advice, nil
}

func (s *AdviceService) DeleteAdvice(ctx context.Context, id uint) error {
	if _, err := s.AdviceRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrAdviceNotFound
		}
		return err
	}
	if err := s.AdviceRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *AdviceService) CreateQuestion(adviceID uint, req TestQuestionRequest) (*model.TestQuestion, error) {
	if _, err := s.AdviceRepo.FindByID(adviceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAdviceNotFound
		}
		return nil, err
	}

	if !isAnswerLetter(req.CorrectAnswer) {
		return nil, errors.New("correct answer must be one of A, B or C")
	}

	question := &model.TestQuestion{
		AdviceID:      adviceID,
		QuestionText:  req.QuestionText,
		AnswerA:       req.AnswerA,
		AnswerB:       req.AnswerB,
		AnswerC:       req.AnswerC,
		CorrectAnswer: req.CorrectAnswer,
	}
	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *AdviceService) UpdateQuestion(id uint, req TestQuestionRequest) (*model.TestQuestion, error) {
	question, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	if !isAnswerLetter(req.CorrectAnswer) {
		return nil, errors.New("correct answer must be one of A, B or C")
	}

	question.QuestionText = req.QuestionText
	question.AnswerA = req.AnswerA
	question.AnswerB = req.AnswerB
	question.AnswerC = req.AnswerC
	question.CorrectAnswer = req.CorrectAnswer

	if err := s.QuestionRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *AdviceService) DeleteQuestion(id uint) error {
	if _, err := s.QuestionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuestionNotFound
		}
		return err
	}
	return s.QuestionRepo.Delete(id)
}

func (s *AdviceService) LikeAdvice(userID, adviceID uint) error {
	if _, err := s.AdviceRepo.FindByID(adviceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrAdviceNotFound
		}
		return err
	}

	like := &model.AdviceLike{UserID: userID, AdviceID: adviceID}
	if err := s.AdviceRepo.CreateLike(like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return util.ErrAlreadyLiked
		}
		return err
	}
	return nil
}

func (s *AdviceService) UnlikeAdvice(userID, adviceID uint) error {
	affected, err := s.AdviceRepo.DeleteLike(userID, adviceID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return util.ErrLikeNotFound
	}
	return nil
}

func (s *AdviceService) ListTags() ([]model.Tag, error) {
	return s.TagRepo.FindAll()
}

func (s *AdviceService) CreateTag(name string) (*model.Tag, error) {
	tag := &model.Tag{Name: name}
	if err := s.TagRepo.Create(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// DeleteTag 删除标签并失效建议列表缓存（标签内嵌在建议序列化结果里）
func (s *AdviceService) DeleteTag(ctx context.Context, id uint) error {
	if _, err := s.TagRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrTagNotFound
		}
		return err
	}
	if err := s.TagRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func isAnswerLetter(s string) bool {
	switch strings.ToUpper(s) {
	case "A", "B", "C":
		return true
	}
	return false
}
