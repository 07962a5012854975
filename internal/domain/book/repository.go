package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 由domain层定义接口,infrastructure层实现,便于Mock测试
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// FindAll 查询全部图书(无过滤)
	FindAll(ctx context.Context) ([]*Book, error)

	// FindByID 根据ID查找图书,不存在返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// Update 更新图书信息
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书(软删除),不存在返回ErrBookNotFound
	Delete(ctx context.Context, id uint) error
}
