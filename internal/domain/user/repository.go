package user

import (
	"context"
)

// Repository 用户仓储接口
// 设计说明：
// 1. 接口定义在domain层（依赖倒置原则）
// 2. 具体实现在infrastructure/persistence/mysql层
// 3. 这样domain层不依赖任何外部框架（GORM等），便于Mock测试
type Repository interface {
	// Create 创建用户
	// 邮箱已存在时返回errors.ErrEmailDuplicate（由数据库UNIQUE索引检测）
	Create(ctx context.Context, user *User) error

	// FindAll 查询全部用户
	FindAll(ctx context.Context) ([]*User, error)

	// FindByID 根据ID查找用户，不存在返回errors.ErrUserNotFound
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByEmail 根据邮箱查找用户，不存在返回errors.ErrUserNotFound
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Update 更新用户信息
	// 新邮箱与他人冲突时返回errors.ErrEmailDuplicate
	Update(ctx context.Context, user *User) error

	// Delete 删除用户（物理删除，邮箱随之释放），不存在返回errors.ErrUserNotFound
	Delete(ctx context.Context, id uint) error
}
