package auth

import (
	"context"

	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookstore-inventory/pkg/jwt"
)

// LogoutUseCase 用户登出用例
// JWT本身无法主动失效，登出通过Redis黑名单实现：
// Token进入黑名单后，认证中间件会在签名校验之前拒绝它
type LogoutUseCase struct {
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

// NewLogoutUseCase 创建登出用例
func NewLogoutUseCase(jwtManager *jwt.Manager, sessionStore *redis.SessionStore) *LogoutUseCase {
	return &LogoutUseCase{
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
	}
}

// Execute 执行登出
// 黑名单TTL取Token剩余有效期的上限（自然过期后无需继续占用内存）
func (uc *LogoutUseCase) Execute(ctx context.Context, userID uint, token string) error {
	if err := uc.sessionStore.AddToBlacklist(ctx, token, uc.jwtManager.Expire()); err != nil {
		return err
	}

	return uc.sessionStore.DeleteSession(ctx, userID)
}
