package controller

import (
	"errors"

	"drive_safe_backend/internal/service"
	"drive_safe_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AdminController 建议、标签与自测题的管理接口（需要管理员角色）
type AdminController struct {
	AdviceService *service.AdviceService
}

func NewAdminController(adviceService *service.AdviceService) *AdminController {
	return &AdminController{AdviceService: adviceService}
}

// CreateAdvice godoc
// @Summary 新建建议
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.AdviceRequest true "建议内容"
// @Success 201 {object} util.Response{data=model.Advice}
// @Failure 400 {object} util.Response
// @Router /api/admin/advices [post]
func (c *AdminController) CreateAdvice(ctx *gin.Context) {
	var req service.AdviceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	advice, err := c.AdviceService.CreateAdvice(ctx.Request.Context(), req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, advice)
}

// UpdateAdvice godoc
// @Summary 更新建议
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param adviceId path int true "建议ID"
// @Param body body service.AdviceRequest true "建议内容"
// @Success 200 {object} util.Response{data=model.Advice}
// @Failure 404 {object} util.Response
// @Router /api/admin/advices/{adviceId} [put]
func (c *AdminController) UpdateAdvice(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("adviceId"))

	var req service.AdviceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	advice, err := c.AdviceService.UpdateAdvice(ctx.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, util.ErrAdviceNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, advice)
}

// DeleteAdvice godoc
// @Summary 删除建议
// @Tags 管理
// @Security ApiKeyAuth
// @Param adviceId path int true "建议ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/admin/advices/{adviceId} [delete]
func (c *AdminController) DeleteAdvice(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("adviceId"))

	if err := c.AdviceService.DeleteAdvice(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, util.ErrAdviceNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

// CreateQuestion godoc
// @Summary 为建议新增自测题
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param adviceId path int true "建议ID"
// @Param body body service.TestQuestionRequest true "题目内容"
// @Success 201 {object} util.Response{data=model.TestQuestion}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/advices/{adviceId}/questions [post]
func (c *AdminController) CreateQuestion(ctx *gin.Context) {
	adviceID := util.MustParseUint(ctx.Param("adviceId"))

	var req service.TestQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.AdviceService.CreateQuestion(adviceID, req)
	if err != nil {
		if errors.Is(err, util.ErrAdviceNotFound) {
			util.NotFound(ctx)
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, question)
}

// UpdateQuestion godoc
// @Summary 更新自测题
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param questionId path int true "题目ID"
// @Param body body service.TestQuestionRequest true "题目内容"
// @Success 200 {object} util.Response{data=model.TestQuestion}
// @Failure 404 {object} util.Response
// @Router /api/admin/questions/{questionId} [put]
func (c *AdminController) UpdateQuestion(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("questionId"))

	var req service.TestQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.AdviceService.UpdateQuestion(id, req)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, question)
}

// DeleteQuestion godoc
// @Summary 删除自测题
// @Tags 管理
// @Security ApiKeyAuth
// @Param questionId path int true "题目ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/admin/questions/{questionId} [delete]
func (c *AdminController) DeleteQuestion(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("questionId"))

	if err := c.AdviceService.DeleteQuestion(id); err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

type TagRequest struct {
	Name string `json:"name" binding:"required,max=32"`
}

// ListTags godoc
// @Summary 标签列表
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Tag}
// @Router /api/admin/tags [get]
func (c *AdminController) ListTags(ctx *gin.Context) {
	tags, err := c.AdviceService.ListTags()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tags)
}

// CreateTag godoc
// @Summary 新建标签
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body TagRequest true "标签名"
// @Success 201 {object} util.Response{data=model.Tag}
// @Failure 400 {object} util.Response
// @Router /api/admin/tags [post]
func (c *AdminController) CreateTag(ctx *gin.Context) {
	var req TagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	tag, err := c.AdviceService.CreateTag(req.Name)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, tag)
}

// DeleteTag godoc
// @Summary 删除标签
// @Tags 管理
// @Security ApiKeyAuth
// @Param tagId path int true "标签ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/admin/tags/{tagId} [delete]
func (c *AdminController) DeleteTag(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("tagId"))

	if err := c.AdviceService.DeleteTag(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, util.ErrTagNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.NoContent(ctx)
}
