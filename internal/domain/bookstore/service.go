package bookstore

import (
	"context"
)

// Service 书店目录领域服务接口
// 设计说明:数量变更是跨聚合(书店+图书)的事务性工作流,
// 由application层的UpdateQuantityUseCase编排,不在此接口中
type Service interface {
	// Create 创建书店
	Create(ctx context.Context, name, location string) (*Bookstore, error)

	// List 查询全部书店(概要视图,不含库存)
	List(ctx context.Context) ([]*Bookstore, error)

	// Get 查询书店详情(含完整库存集合,条目展开关联图书)
	Get(ctx context.Context, id uint) (*Bookstore, error)
}

type service struct {
	repo Repository
}

// NewService 创建书店目录服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create 创建书店
func (s *service) Create(ctx context.Context, name, location string) (*Bookstore, error) {
	store := NewBookstore(name, location)

	if err := s.repo.Create(ctx, store); err != nil {
		return nil, err
	}

	return store, nil
}

// List 查询全部书店
func (s *service) List(ctx context.Context) ([]*Bookstore, error) {
	return s.repo.FindAll(ctx)
}

// Get 查询书店详情(含库存)
func (s *service) Get(ctx context.Context, id uint) (*Bookstore, error) {
	return s.repo.FindByIDWithStock(ctx, id)
}
