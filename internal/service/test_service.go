package service

import (
	"errors"
	"fmt"
	"strings"

	"drive_safe_backend/internal/model"
	"drive_safe_backend/internal/repository"
	"drive_safe_backend/internal/util"

	"gorm.io/gorm"
)

// TestService 实现建议自测的判分流程：校验提交、逐题比对、通过时一次性加分
type TestService struct {
	AdviceRepo   *repository.AdviceRepository
	UserRepo     *repository.UserRepository
	QuestionRepo *repository.TestQuestionRepository
	PassedRepo   *repository.TestPassedRepository
	ScoreRepo    *repository.ScoreRepository
	DB           *gorm.DB
}

func NewTestService(
	adviceRepo *repository.AdviceRepository,
	userRepo *repository.UserRepository,
	questionRepo *repository.TestQuestionRepository,
	passedRepo *repository.TestPassedRepository,
	scoreRepo *repository.ScoreRepository,
	db *gorm.DB,
) *TestService {
	return &TestService{
		AdviceRepo:   adviceRepo,
		UserRepo:     userRepo,
		QuestionRepo: questionRepo,
		PassedRepo:   passedRepo,
		ScoreRepo:    scoreRepo,
		DB:           db,
	}
}

// SubmissionItem 一次提交中的单条答案
type SubmissionItem struct {
	QuestionID uint   `json:"question"`
	Answer     string `json:"answer"`
}

// GradeResult 判分结果：通过时携带新建的通过记录，未通过时携带答错的题目ID
type GradeResult struct {
	Passed           bool
	Record           *model.TestPassed
	IncorrectAnswers []uint
}

// ValidateSubmission 结构性校验：仅检查字段形状，不检查题目归属和字母范围。
// 所有非法项一次性返回。
func ValidateSubmission(items []SubmissionItem) error {
	var errs []util.ItemError
	for i, item := range items {
		if item.QuestionID == 0 {
			errs = append(errs, util.ItemError{Index: i, Error: "question id is required"})
		}
		if len(item.Answer) != 1 {
			errs = append(errs, util.ItemError{
				Index: i,
				Error: fmt.Sprintf("answer must be a single character, got %q", item.Answer),
			})
		}
	}
	if len(errs) > 0 {
		return &util.ValidationError{Items: errs}
	}
	return nil
}

// CheckTest 按固定顺序执行前置检查并判分。
// 检查顺序：建议存在 → 用户存在 → 未曾通过 → 答案数量一致 → 逐题匹配。
// 每道题在一次提交内最多被匹配一次：匹配后从剩余题目池中移除，
// 因此重复引用同一题与引用其他建议的题目走同一个失败分支。
func (s *TestService) CheckTest(userID, adviceID uint, items []SubmissionItem) (*GradeResult, error) {
	advice, err := s.AdviceRepo.FindByID(adviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAdviceNotFound
		}
		return nil, err
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	passed, err := s.PassedRepo.Exists(user.ID, advice.ID)
	if err != nil {
		return nil, err
	}
	if passed {
		return nil, util.ErrTestAlreadyPassed
	}

	questions, err := s.QuestionRepo.FindByAdvice(advice.ID)
	if err != nil {
		return nil, err
	}
	if len(items) != len(questions) {
		return nil, util.ErrAnswerCountMismatch
	}

	pool := make(map[uint]model.TestQuestion, len(questions))
	for _, q := range questions {
		pool[q.ID] = q
	}

	var incorrect []uint
	for _, item := range items {
		question, ok := pool[item.QuestionID]
		if !ok {
			return nil, &util.UnknownQuestionError{QuestionID: item.QuestionID}
		}
		delete(pool, question.ID)

		if !strings.EqualFold(item.Answer, question.CorrectAnswer) {
			incorrect = append(incorrect, question.ID)
		}
	}

	if len(incorrect) > 0 {
		return &GradeResult{Passed: false, IncorrectAnswers: incorrect}, nil
	}

	record, err := s.recordPass(user.ID, advice.ID, advice.TestPoints)
	if err != nil {
		return nil, err
	}
	return &GradeResult{Passed: true, Record: record}, nil
}

// recordPass 在同一事务内写入通过记录并加分。事务内重查通过记录，
// 加上 (user_id, advice_id) 的唯一索引兜底，保证并发下同一组合最多通过一次。
func (s *TestService) recordPass(userID, adviceID uint, points int) (*model.TestPassed, error) {
	record := &model.TestPassed{
		UserID:   userID,
		AdviceID: adviceID,
		Passed:   true,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		exists, err := s.PassedRepo.ExistsTx(tx, userID, adviceID)
		if err != nil {
			return err
		}
		if exists {
			return util.ErrTestAlreadyPassed
		}

		if err := s.PassedRepo.CreateTx(tx, record); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return util.ErrTestAlreadyPassed
			}
			return err
		}

		return s.ScoreRepo.AddPoints(tx, userID, points)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
