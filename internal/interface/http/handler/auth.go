package handler

import (
	"github.com/gin-gonic/gin"

	appauth "github.com/xiebiao/bookstore-inventory/internal/application/auth"
	"github.com/xiebiao/bookstore-inventory/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-inventory/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-inventory/pkg/response"
)

// AuthHandler 认证HTTP处理器
// 设计说明：Handler只负责HTTP相关的事情：解析请求、调用应用层、返回响应
type AuthHandler struct {
	loginUseCase  *appauth.LoginUseCase
	logoutUseCase *appauth.LogoutUseCase
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(
	loginUseCase *appauth.LoginUseCase,
	logoutUseCase *appauth.LogoutUseCase,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase:  loginUseCase,
		logoutUseCase: logoutUseCase,
	}
}

// Login 用户登录
// @Summary      用户登录
// @Description  验证邮箱密码，签发JWT Token
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      201 {object} response.Response{data=dto.LoginResponse} "登录成功"
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "邮箱或密码错误"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), appauth.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, &dto.LoginResponse{AccessToken: result.AccessToken})
}

// Logout 用户登出
// @Summary      用户登出
// @Description  将当前Token加入黑名单并清除会话
// @Tags         认证
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response "登出成功"
// @Failure      401 {object} response.Response "未登录"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := middleware.GetUserID(c)
	token := middleware.GetToken(c)

	if err := h.logoutUseCase.Execute(c.Request.Context(), userID, token); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
