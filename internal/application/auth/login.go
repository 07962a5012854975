package auth

import (
	"context"
	"errors"
	"time"

	"github.com/xiebiao/bookstore-inventory/internal/domain/user"
	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookstore-inventory/pkg/jwt"

	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
)

// LoginUseCase 用户登录用例
// 设计说明：
// 1. 验证邮箱密码（邮箱不存在与密码错误返回同一个错误，防止账号探测）
// 2. 签发JWT Token（携带用户ID、邮箱、角色）
// 3. 保存会话到Redis
type LoginUseCase struct {
	userRepo     user.Repository
	userService  user.Service
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(
	userRepo user.Repository,
	userService user.Service,
	jwtManager *jwt.Manager,
	sessionStore *redis.SessionStore,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:     userRepo,
		userService:  userService,
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
	}
}

// LoginRequest 登录请求DTO
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResponse 登录响应DTO
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// Execute 执行登录
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	// 1. 根据邮箱查找用户
	// 用户不存在与密码不匹配统一映射为ErrBadCredentials
	u, err := uc.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrBadCredentials
		}
		return nil, err
	}

	// 2. 验证密码
	if err := uc.userService.VerifyPassword(u.Password, req.Password); err != nil {
		return nil, err
	}

	// 3. 签发Token
	token, err := uc.jwtManager.GenerateToken(u.ID, u.Email, u.Role.String())
	if err != nil {
		return nil, err
	}

	// 4. 保存会话到Redis（会话TTL与Token有效期一致）
	sessionData := map[string]interface{}{
		"user_id":  u.ID,
		"email":    u.Email,
		"role":     u.Role.String(),
		"login_at": time.Now().Format(time.RFC3339),
	}
	// 会话仅用于观测与强制下线，写入失败不阻断登录（Token已签发）
	_ = uc.sessionStore.SaveSession(ctx, u.ID, sessionData, uc.jwtManager.Expire())

	return &LoginResponse{AccessToken: token}, nil
}
