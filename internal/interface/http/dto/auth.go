package dto

// LoginRequest HTTP登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse HTTP登录响应
// 字段名accessToken是对外API契约的一部分,保持驼峰
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}
