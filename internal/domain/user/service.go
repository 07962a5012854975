package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
)

// bcryptCost bcrypt加密代价因子
// cost=12是推荐值，平衡安全性与性能（cost每+1，耗时翻倍）
const bcryptCost = 12

// Patch 用户部分更新值对象
// 每个字段均可选，字段为nil表示不修改（按字段合并到现有记录）
type Patch struct {
	Email    *string
	Password *string // 明文，Service负责重新加密
	Role     *Role
}

// Service 用户领域服务
// 设计说明：
// 1. Service包含不属于单个实体的业务逻辑（密码加密、角色校验）
// 2. Service依赖Repository接口，不依赖具体实现（依赖倒置）
// 3. Service不处理HTTP请求，只处理业务逻辑
type Service interface {
	// Create 创建用户账号（role为空默认USER）
	Create(ctx context.Context, email, password string, role Role) (*User, error)

	// List 查询全部用户（密码哈希在此层保留，HTTP层负责脱敏）
	List(ctx context.Context) ([]*User, error)

	// Get 根据ID查询用户
	Get(ctx context.Context, id uint) (*User, error)

	// Update 部分更新用户（新密码会重新加密）
	Update(ctx context.Context, id uint, patch Patch) (*User, error)

	// Delete 删除用户
	Delete(ctx context.Context, id uint) error

	// VerifyPassword 验证明文密码与哈希值是否匹配
	VerifyPassword(hashedPassword, plainPassword string) error
}

type service struct {
	repo Repository
}

// NewService 创建用户服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create 创建用户账号
// 业务规则：
// 1. 角色取值校验（空值默认USER）
// 2. 密码bcrypt加密（cost=12）
// 3. 邮箱唯一性由数据库UNIQUE索引保证：不做SELECT预查询，
//    避免多一次往返，并发冲突由约束拒绝兜底
func (s *service) Create(ctx context.Context, email, password string, role Role) (*User, error) {
	if role != "" && !role.Valid() {
		return nil, apperrors.ErrInvalidRole
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, apperrors.Wrap(err, "密码加密失败")
	}

	u := NewUser(email, string(hashedPassword), role)

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err // Repository已转换为业务错误
	}

	return u, nil
}

// List 查询全部用户
func (s *service) List(ctx context.Context) ([]*User, error) {
	return s.repo.FindAll(ctx)
}

// Get 根据ID查询用户
func (s *service) Get(ctx context.Context, id uint) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update 部分更新用户
// 按字段合并：nil字段保持原值；新密码重新bcrypt加密
func (s *service) Update(ctx context.Context, id uint, patch Patch) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil {
		u.Email = *patch.Email
	}

	if patch.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcryptCost)
		if err != nil {
			return nil, apperrors.Wrap(err, "密码加密失败")
		}
		u.Password = string(hashedPassword)
	}

	if patch.Role != nil {
		if !patch.Role.Valid() {
			return nil, apperrors.ErrInvalidRole
		}
		u.Role = *patch.Role
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err // 邮箱冲突已由Repository转换为ErrEmailDuplicate
	}

	return u, nil
}

// Delete 删除用户
func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// VerifyPassword 验证密码
// 登录时使用；不匹配统一返回ErrBadCredentials（不暴露"用户存在但密码错"）
func (s *service) VerifyPassword(hashedPassword, plainPassword string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
	if err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			return apperrors.ErrBadCredentials
		}
		return apperrors.Wrap(err, "密码验证失败")
	}
	return nil
}
