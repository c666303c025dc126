package controller

import (
	"errors"

	"drive_safe_backend/internal/service"
	"drive_safe_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// GetUserInfo godoc
// @Summary 用户公开信息
// @Description 返回用户ID、用户名和累计积分
// @Tags 用户
// @Produce json
// @Param userId path int true "用户ID"
// @Success 200 {object} util.Response{data=service.UserInfo}
// @Failure 404 {object} util.Response
// @Router /api/user_info/{userId} [get]
func (c *UserController) GetUserInfo(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("userId"))

	info, err := c.UserService.GetUserInfo(userID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, info)
}
