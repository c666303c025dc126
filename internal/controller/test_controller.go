package controller

import (
	"errors"
	"net/http"

	"drive_safe_backend/internal/service"
	"drive_safe_backend/internal/util"
	"drive_safe_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

// TestController 自测判分接口。响应体格式是对外契约的一部分，
// 不走统一的 Response 包装。
type TestController struct {
	TestService *service.TestService
}

func NewTestController(testService *service.TestService) *TestController {
	return &TestController{TestService: testService}
}

// TestCheck godoc
// @Summary 提交自测答案并判分
// @Description 比对提交的答案与题目的正确答案。全对时记录通过并一次性加分；有错题时返回错题ID列表，不产生任何写入。
// @Tags 自测
// @Accept json
// @Produce json
// @Param userId path int true "用户ID"
// @Param adviceId path int true "建议ID"
// @Param body body []service.SubmissionItem true "答案列表"
// @Success 200 {object} object "有错题，返回 incorrect_answers"
// @Success 201 {object} model.TestPassed "全部答对，返回通过记录"
// @Failure 400 {object} object "校验失败 / 已通过 / 数量不符 / 题目不属于该测试"
// @Failure 404 {object} object "建议或用户不存在"
// @Router /api/test_check/{userId}/{adviceId} [post]
func (c *TestController) TestCheck(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("userId"))
	adviceID := util.MustParseUint(ctx.Param("adviceId"))

	var items []service.SubmissionItem
	if err := ctx.ShouldBindJSON(&items); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := service.ValidateSubmission(items); err != nil {
		var vErr *util.ValidationError
		if errors.As(err, &vErr) {
			ctx.JSON(http.StatusBadRequest, vErr.Items)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	result, err := c.TestService.CheckTest(userID, adviceID, items)
	if err != nil {
		monitoring.TestCheckCounter.WithLabelValues("rejected").Inc()
		var unknownQ *util.UnknownQuestionError
		switch {
		case errors.Is(err, util.ErrAdviceNotFound), errors.Is(err, util.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		case errors.Is(err, util.ErrTestAlreadyPassed):
			ctx.JSON(http.StatusBadRequest, gin.H{"error message": "Test already passed"})
		case errors.Is(err, util.ErrAnswerCountMismatch):
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "Wrong number of answers"})
		case errors.As(err, &unknownQ):
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "Question does not belong to the test"})
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	if result.Passed {
		monitoring.TestCheckCounter.WithLabelValues("passed").Inc()
		ctx.JSON(http.StatusCreated, result.Record)
		return
	}
	monitoring.TestCheckCounter.WithLabelValues("failed").Inc()
	ctx.JSON(http.StatusOK, gin.H{"incorrect_answers": result.IncorrectAnswers})
}
