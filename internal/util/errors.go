package util

import (
	"errors"
	"fmt"
)

var (
	ErrAdviceNotFound        = errors.New("advice not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrQuestionNotFound      = errors.New("test question not found")
	ErrForumQuestionNotFound = errors.New("forum question not found")
	ErrForumAnswerNotFound   = errors.New("forum answer not found")
	ErrTagNotFound           = errors.New("tag not found")
	ErrUsernameTaken         = errors.New("username already taken")
	ErrTestAlreadyPassed     = errors.New("test already passed")
	ErrAnswerCountMismatch   = errors.New("wrong number of answers")
	ErrAlreadyLiked          = errors.New("advice already liked")
	ErrLikeNotFound          = errors.New("like not found")
)

// UnknownQuestionError 提交引用了不属于该测试的题目，或重复引用了已匹配的题目
type UnknownQuestionError struct {
	QuestionID uint
}

func (e *UnknownQuestionError) Error() string {
	return fmt.Sprintf("question %d does not belong to the test", e.QuestionID)
}

// ItemError 单条提交项的结构性校验错误
type ItemError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

// ValidationError 结构性校验失败，携带全部非法项
type ValidationError struct {
	Items []ItemError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("submission validation failed for %d item(s)", len(e.Items))
}
