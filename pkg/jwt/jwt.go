package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
)

// Manager JWT管理器
// 设计说明：
// 1. 单Access Token机制：有效期较长（默认365天），无刷新Token
// 2. Token中携带用户ID、邮箱、角色，角色用于路由级权限判断
// 3. 签名密钥由配置提供，配置层保证其非空（缺失则启动失败）
type Manager struct {
	secret string        // JWT签名密钥
	expire time.Duration // Access Token有效期
}

// NewManager 创建JWT管理器
func NewManager(secret string, expire time.Duration) *Manager {
	return &Manager{
		secret: secret,
		expire: expire,
	}
}

// Claims 自定义JWT Claims
// 嵌入jwt.RegisteredClaims获取标准字段（exp、iat、nbf等）
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken 签发Access Token
func (m *Manager) GenerateToken(userID uint, email, role string) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expire)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "bookstore-inventory",
			Subject:   fmt.Sprintf("%d", userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(m.secret))
	if err != nil {
		return "", apperrors.Wrap(err, "生成Token失败")
	}

	return tokenString, nil
}

// ParseToken 解析并验证Token
// 验证签名、过期时间（exp）与生效时间（nbf）
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法，防止alg=none等降级攻击
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("非法的签名算法: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}

// Expire 返回Token有效期（黑名单TTL与会话TTL复用该值）
func (m *Manager) Expire() time.Duration {
	return m.expire
}
