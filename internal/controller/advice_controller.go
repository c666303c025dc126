package controller

import (
	"errors"

	"drive_safe_backend/internal/service"
	"drive_safe_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdviceController struct {
	AdviceService *service.AdviceService
}

func NewAdviceController(adviceService *service.AdviceService) *AdviceController {
	return &AdviceController{AdviceService: adviceService}
}

// GetAdvices godoc
// @Summary 建议列表
// @Description 按创建时间升序返回全部建议
// @Tags 建议
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Advice}
// @Router /api/advices [get]
func (c *AdviceController) GetAdvices(ctx *gin.Context) {
	advices, err := c.AdviceService.GetAdvices(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, advices)
}

// GetAdvice godoc
// @Summary 建议详情
// @Tags 建议
// @Produce json
// @Param adviceId path int true "建议ID"
// @Success 200 {object} util.Response{data=service.AdviceDetail}
// @Failure 404 {object} util.Response
// @Router /api/advices/{adviceId} [get]
func (c *AdviceController) GetAdvice(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("adviceId"))

	detail, err := c.AdviceService.GetAdvice(id)
	if err != nil {
		if errors.Is(err, util.ErrAdviceNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}

// GetAdvicesByTag godoc
// @Summary 按标签筛选建议
// @Tags 建议
// @Produce json
// @Param tagId path int true "标签ID"
// @Success 200 {object} util.Response{data=[]model.Advice}
// @Router /api/advices/tag/{tagId} [get]
func (c *AdviceController) GetAdvicesByTag(ctx *gin.Context) {
	tagID := util.MustParseUint(ctx.Param("tagId"))

	advices, err := c.AdviceService.GetAdvicesByTag(tagID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, advices)
}

// GetAdviceTest godoc
// @Summary 建议自测题列表
// @Description 返回该建议的自测题，不包含正确答案
// @Tags 建议
// @Produce json
// @Param adviceId path int true "建议ID"
// @Success 200 {object} util.Response{data=[]model.TestQuestion}
// @Failure 404 {object} util.Response
// @Router /api/advices/test/{adviceId} [get]
func (c *AdviceController) GetAdviceTest(ctx *gin.Context) {
	adviceID := util.MustParseUint(ctx.Param("adviceId"))

	questions, err := c.AdviceService.GetTestQuestions(adviceID)
	if err != nil {
		if errors.Is(err, util.ErrAdviceNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// LikeAdvice godoc
// @Summary 点赞建议
// @Tags 建议
// @Produce json
// @Security ApiKeyAuth
// @Param adviceId path int true "建议ID"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/advices/{adviceId}/like [post]
func (c *AdviceController) LikeAdvice(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	adviceID := util.MustParseUint(ctx.Param("adviceId"))

	if err := c.AdviceService.LikeAdvice(user.UserID, adviceID); err != nil {
		switch {
		case errors.Is(err, util.ErrAdviceNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrAlreadyLiked):
			util.Conflict(ctx, "advice already liked")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, nil)
}

// UnlikeAdvice godoc
// @Summary 取消点赞
// @Tags 建议
// @Produce json
// @Security ApiKeyAuth
// @Param adviceId path int true "建议ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/advices/{adviceId}/like [delete]
func (c *AdviceController) UnlikeAdvice(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	adviceID := util.MustParseUint(ctx.Param("adviceId"))

	if err := c.AdviceService.UnlikeAdvice(user.UserID, adviceID); err != nil {
		if errors.Is(err, util.ErrLikeNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.NoContent(ctx)
}
