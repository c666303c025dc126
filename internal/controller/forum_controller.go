package controller

import (
	"errors"

	"drive_safe_backend/internal/service"
	"drive_safe_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ForumController struct {
	ForumService *service.ForumService
}

func NewForumController(forumService *service.ForumService) *ForumController {
	return &ForumController{ForumService: forumService}
}

func (c *ForumController) mapError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrForumQuestionNotFound),
		errors.Is(err, util.ErrForumAnswerNotFound),
		errors.Is(err, util.ErrAdviceNotFound),
		errors.Is(err, util.ErrUserNotFound):
		util.NotFound(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}

// GetQuestions godoc
// @Summary 论坛提问列表
// @Tags 论坛
// @Produce json
// @Success 200 {object} util.Response{data=[]model.ForumQuestion}
// @Router /api/forum_questions [get]
func (c *ForumController) GetQuestions(ctx *gin.Context) {
	questions, err := c.ForumService.GetQuestions()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// CreateQuestion godoc
// @Summary 新建论坛提问
// @Tags 论坛
// @Accept json
// @Produce json
// @Param body body service.ForumQuestionRequest true "提问内容"
// @Success 201 {object} util.Response{data=model.ForumQuestion}
// @Failure 400 {object} util.Response
// @Router /api/forum_questions [post]
func (c *ForumController) CreateQuestion(ctx *gin.Context) {
	var req service.ForumQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.ForumService.CreateQuestion(req)
	if err != nil {
		c.mapError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// GetQuestion godoc
// @Summary 论坛提问详情
// @Tags 论坛
// @Produce json
// @Param questionId path int true "提问ID"
// @Success 200 {object} util.Response{data=model.ForumQuestion}
// @Failure 404 {object} util.Response
// @Router /api/forum_questions/{questionId} [get]
func (c *ForumController) GetQuestion(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("questionId"))

	question, err := c.ForumService.GetQuestion(id)
	if err != nil {
		c.mapError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// UpdateQuestion godoc
// @Summary 更新论坛提问
// @Tags 论坛
// @Accept json
// @Produce json
// @Param questionId path int true "提问ID"
// @Param body body service.ForumQuestionRequest true "提问内容"
// @Success 200 {object} util.Response{data=model.ForumQuestion}
// @Failure 404 {object} util.Response
// @Router /api/forum_questions/{questionId} [put]
func (c *ForumController) UpdateQuestion(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("questionId"))

	var req service.ForumQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.ForumService.UpdateQuestion(id, req)
	if err != nil {
		c.mapError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// DeleteQuestion godoc
// @Summary 删除论坛提问
// @Tags 论坛
// @Param questionId path int true "提问ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/forum_questions/{questionId} [delete]
func (c *ForumController) DeleteQuestion(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("questionId"))

	if err := c.ForumService.DeleteQuestion(id); err != nil {
		c.mapError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

// GetAnswers godoc
// @Summary 论坛回答列表
// @Tags 论坛
// @Produce json
// @Success 200 {object} util.Response{data=[]model.ForumAnswer}
// @Router /api/forum_answers [get]
func (c *ForumController) GetAnswers(ctx *gin.Context) {
	answers, err := c.ForumService.GetAnswers()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, answers)
}

// CreateAnswer godoc
// @Summary 新建论坛回答
// @Tags 论坛
// @Accept json
// @Produce json
// @Param body body service.ForumAnswerRequest true "回答内容"
// @Success 201 {object} util.Response{data=model.ForumAnswer}
// @Failure 400 {object} util.Response
// @Router /api/forum_answers [post]
func (c *ForumController) CreateAnswer(ctx *gin.Context) {
	var req service.ForumAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answer, err := c.ForumService.CreateAnswer(req)
	if err != nil {
		c.mapError(ctx, err)
		return
	}
	util.Created(ctx, answer)
}

// GetAnswersForQuestion godoc
// @Summary 某提问下的回答列表
// @Tags 论坛
// @Produce json
// @Param questionId path int true "提问ID"
// @Success 200 {object} util.Response{data=[]model.ForumAnswer}
// @Failure 404 {object} util.Response
// @Router /api/forum_answers/question/{questionId} [get]
func (c *ForumController) GetAnswersForQuestion(ctx *gin.Context) {
	questionID := util.MustParseUint(ctx.Param("questionId"))

	answers, err := c.ForumService.GetAnswersForQuestion(questionID)
	if err != nil {
		c.mapError(ctx, err)
		return
	}
	util.Success(ctx, answers)
}

// GetAnswer godoc
// @Summary 论坛回答详情
// @Tags 论坛
// @Produce json
// @Param answerId path int true "回答ID"
// @Success 200 {object} util.Response{data=model.ForumAnswer}
// @Failure 404 {object} util.Response
// @Router /api/forum_answers/{answerId} [get]
func (c *ForumController) GetAnswer(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("answerId"))

	answer, err := c.ForumService.GetAnswer(id)
	if err != nil {
		c.mapError(ctx, err)
		return
	}
	util.Success(ctx, answer)
}

// UpdateAnswer godoc
// @Summary 更新论坛回答
// @Tags 论坛
// @Accept json
// @Produce json
// @Param answerId path int true "回答ID"
// @Param body body service.ForumAnswerRequest true "回答内容"
// @Success 200 {object} util.Response{data=model.ForumAnswer}
// @Failure 404 {object} util.Response
// @Router /api/forum_answers/{answerId} [put]
func (c *ForumController) UpdateAnswer(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("answerId"))

	var req service.ForumAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answer, err := c.ForumService.UpdateAnswer(id, req)
	if err != nil {
		c.mapError(ctx, err)
		return
	}
	util.Success(ctx, answer)
}

// DeleteAnswer godoc
// @Summary 删除论坛回答
// @Tags 论坛
// @Param answerId path int true "回答ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/forum_answers/{answerId} [delete]
func (c *ForumController) DeleteAnswer(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("answerId"))

	if err := c.ForumService.DeleteAnswer(id); err != nil {
		c.mapError(ctx, err)
		return
	}
	util.NoContent(ctx)
}
