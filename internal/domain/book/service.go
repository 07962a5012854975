package book

import (
	"context"
)

// Service 图书领域服务接口
// 设计说明:图书是纯CRUD聚合,Service只做用例编排与实体合并,
// 格式校验(非空书名/作者)在HTTP层的binding tag完成
type Service interface {
	// Create 上架图书
	Create(ctx context.Context, title, author string, price float64) (*Book, error)

	// List 查询全部图书(公开接口)
	List(ctx context.Context) ([]*Book, error)

	// Get 根据ID查询图书
	Get(ctx context.Context, id uint) (*Book, error)

	// Update 部分更新图书
	Update(ctx context.Context, id uint, patch Patch) (*Book, error)

	// Delete 删除图书
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create 上架图书
func (s *service) Create(ctx context.Context, title, author string, price float64) (*Book, error) {
	b := NewBook(title, author, price)

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// List 查询全部图书
func (s *service) List(ctx context.Context) ([]*Book, error) {
	return s.repo.FindAll(ctx)
}

// Get 根据ID查询图书
func (s *service) Get(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// Update 部分更新图书
// 先查后改:不存在直接返回ErrBookNotFound,存在则按字段合并
func (s *service) Update(ctx context.Context, id uint, patch Patch) (*Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b.ApplyPatch(patch)

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// Delete 删除图书
func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
