package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookstore-inventory/internal/domain/user"
	"github.com/xiebiao/bookstore-inventory/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-inventory/pkg/response"
)

// UserHandler 用户HTTP处理器
type UserHandler struct {
	userService user.Service
}

// NewUserHandler 创建用户处理器
func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create 创建用户账号
// @Summary      创建用户
// @Description  注册新用户账号，角色可选（默认USER）
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateUserRequest true "注册信息"
// @Success      201 {object} response.Response{data=dto.UserResponse} "创建成功"
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "邮箱已存在"
// @Router       /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	u, err := h.userService.Create(c.Request.Context(), req.Email, req.Password, user.Role(req.Role))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewUserResponse(u))
}

// List 查询全部用户
// @Summary      用户列表
// @Tags         用户
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.UserResponse}
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewUserListResponse(users))
}

// Get 查询单个用户
// @Summary      用户详情
// @Tags         用户
// @Produce      json
// @Param        id path int true "用户ID"
// @Success      200 {object} response.Response{data=dto.UserResponse}
// @Failure      404 {object} response.Response "用户不存在"
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	u, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewUserResponse(u))
}

// Update 部分更新用户
// @Summary      更新用户
// @Description  按字段合并更新；提供新密码时重新加密存储
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        id path int true "用户ID"
// @Param        request body dto.UpdateUserRequest true "更新字段"
// @Success      200 {object} response.Response{data=dto.UserResponse}
// @Failure      404 {object} response.Response "用户不存在"
// @Failure      409 {object} response.Response "邮箱已存在"
// @Router       /users/{id} [patch]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	u, err := h.userService.Update(c.Request.Context(), id, req.Patch())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewUserResponse(u))
}

// Delete 删除用户
// @Summary      删除用户
// @Tags         用户
// @Produce      json
// @Param        id path int true "用户ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "用户不存在"
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
