package service

import (
	"errors"

	"drive_safe_backend/internal/model"
	"drive_safe_backend/internal/repository"
	"drive_safe_backend/internal/util"

	"gorm.io/gorm"
)

type ForumService struct {
	QuestionRepo *repository.ForumQuestionRepository
	AnswerRepo   *repository.ForumAnswerRepository
	AdviceRepo   *repository.AdviceRepository
	UserRepo     *repository.UserRepository
}

func NewForumService(
	questionRepo *repository.ForumQuestionRepository,
	answerRepo *repository.ForumAnswerRepository,
	adviceRepo *repository.AdviceRepository,
	userRepo *repository.UserRepository,
) *ForumService {
	return &ForumService{
		QuestionRepo: questionRepo,
		AnswerRepo:   answerRepo,
		AdviceRepo:   adviceRepo,
		UserRepo:     userRepo,
	}
}

type ForumQuestionRequest struct {
	Text     string `json:"text" binding:"required"`
	AdviceID uint   `json:"adviceId" binding:"required"`
	UserID   uint   `json:"userId" binding:"required"`
}

type ForumAnswerRequest struct {
	Text       string `json:"text" binding:"required"`
	QuestionID uint   `json:"questionId" binding:"required"`
	UserID     uint   `json:"userId" binding:"required"`
}

func (s *ForumService) GetQuestions() ([]model.ForumQuestion, error) {
	return s.QuestionRepo.FindAll()
}

func (s *ForumService) GetQuestion(id uint) (*model.ForumQuestion, error) {
	question, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrForumQuestionNotFound
		}
		return nil, err
	}
	return question, nil
}

func (s *ForumService) CreateQuestion(req ForumQuestionRequest) (*model.ForumQuestion, error) {
	if _, err := s.AdviceRepo.FindByID(req.AdviceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAdviceNotFound
		}
		return nil, err
	}
	if _, err := s.UserRepo.FindByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	question := &model.ForumQuestion{
		Text:     req.Text,
		AdviceID: req.AdviceID,
		UserID:   req.UserID,
	}
	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *ForumService) UpdateQuestion(id uint, req ForumQuestionRequest) (*model.ForumQuestion, error) {
	question, err := s.GetQuestion(id)
	if err != nil {
		return nil, err
	}

	question.Text = req.Text
	question.AdviceID = req.AdviceID
	question.UserID = req.UserID

	if err := s.QuestionRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *ForumService) DeleteQuestion(id uint) error {
	if _, err := s.GetQuestion(id); err != nil {
		return err
	}
	return s.QuestionRepo.Delete(id)
}

func (s *ForumService) GetAnswers() ([]model.ForumAnswer, error) {
	return s.AnswerRepo.FindAll()
}

func (s *ForumService) GetAnswer(id uint) (*model.ForumAnswer, error) {
	answer, err := s.AnswerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrForumAnswerNotFound
		}
		return nil, err
	}
	return answer, nil
}

// GetAnswersForQuestion 某个论坛提问下的全部回答，提问不存在时报 404
func (s *ForumService) GetAnswersForQuestion(questionID uint) ([]model.ForumAnswer, error) {
	if _, err := s.GetQuestion(questionID); err != nil {
		return nil, err
	}
	return s.AnswerRepo.FindByQuestion(questionID)
}

func (s *ForumService) CreateAnswer(req ForumAnswerRequest) (*model.ForumAnswer, error) {
	if _, err := s.GetQuestion(req.QuestionID); err != nil {
		return nil, err
	}
	if _, err := s.UserRepo.FindByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	answer := &model.ForumAnswer{
		Text:       req.Text,
		QuestionID: req.QuestionID,
		UserID:     req.UserID,
	}
	if err := s.AnswerRepo.Create(answer); err != nil {
		return nil, err
	}
	return answer, nil
}

func (s *ForumService) UpdateAnswer(id uint, req ForumAnswerRequest) (*model.ForumAnswer, error) {
	answer, err := s.GetAnswer(id)
	if err != nil {
		return nil, err
	}

	answer.Text = req.Text
	answer.QuestionID = req.QuestionID
	answer.UserID = req.UserID

	if err := s.AnswerRepo.Update(answer); err != nil {
		return nil, err
	}
	return answer, nil
}

func (s *ForumService) DeleteAnswer(id uint) error {
	if _, err := s.GetAnswer(id); err != nil {
		return err
	}
	return s.AnswerRepo.Delete(id)
}
