package dto

import (
	"github.com/xiebiao/bookstore-inventory/internal/domain/user"
)

// CreateUserRequest HTTP注册请求
// 说明：HTTP层的DTO，包含参数验证tag；role可选，缺省USER
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=USER STORE_MANAGER ADMIN"`
}

// UpdateUserRequest HTTP用户部分更新请求
// 每个字段均为指针：nil表示"不修改"，与空值区分
type UpdateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=1"`
	Role     *string `json:"role" binding:"omitempty,oneof=USER STORE_MANAGER ADMIN"`
}

// Patch 转换为领域层补丁对象
func (r UpdateUserRequest) Patch() user.Patch {
	p := user.Patch{
		Email:    r.Email,
		Password: r.Password,
	}
	if r.Role != nil {
		role := user.Role(*r.Role)
		p.Role = &role
	}
	return p
}

// UserResponse 用户响应（不包含密码哈希——脱敏是HTTP边界的职责）
type UserResponse struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// NewUserResponse 领域实体 → HTTP响应
func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt.Format(timeLayout),
		UpdatedAt: u.UpdatedAt.Format(timeLayout),
	}
}

// NewUserListResponse 批量转换
func NewUserListResponse(users []*user.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = NewUserResponse(u)
	}
	return out
}
