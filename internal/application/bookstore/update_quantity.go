package bookstore

import (
	"context"
	"errors"

	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
	"github.com/xiebiao/bookstore-inventory/internal/domain/bookstore"
)

// TxManager 事务边界抽象,由mysql.TxManager实现
// 用例只依赖"把一组仓储操作放进同一事务"的能力,不依赖GORM
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UpdateQuantityUseCase 库存数量变更用例
// 设计说明:这是系统里唯一的多步写工作流
// 1. 书店、图书存在性检查(任一缺失返回对应NotFound)
// 2. 查找(书店,图书)库存条目,不存在则以数量0懒创建
// 3. 在现有数量上累加增量(可为负,不做下限截断)并持久化
//
// 步骤2-3在同一数据库事务中执行:读-改-写不加事务时,
// 同一(书店,图书)对的并发变更会互相覆盖(丢失更新)
type UpdateQuantityUseCase struct {
	storeRepo bookstore.Repository
	bookRepo  book.Repository
	txManager TxManager
}

// NewUpdateQuantityUseCase 创建库存变更用例
func NewUpdateQuantityUseCase(
	storeRepo bookstore.Repository,
	bookRepo book.Repository,
	txManager TxManager,
) *UpdateQuantityUseCase {
	return &UpdateQuantityUseCase{
		storeRepo: storeRepo,
		bookRepo:  bookRepo,
		txManager: txManager,
	}
}

// Execute 执行库存变更,返回更新后的库存条目
func (uc *UpdateQuantityUseCase) Execute(ctx context.Context, storeID, bookID uint, delta int) (*bookstore.StockEntry, error) {
	// 存在性检查在事务外:只读,失败路径无需回滚任何东西
	if _, err := uc.storeRepo.FindByID(ctx, storeID); err != nil {
		return nil, err
	}
	if _, err := uc.bookRepo.FindByID(ctx, bookID); err != nil {
		return nil, err
	}

	var entry *bookstore.StockEntry
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		found, err := uc.storeRepo.FindStock(txCtx, storeID, bookID)
		if err != nil {
			if !errors.Is(err, bookstore.ErrStockNotFound) {
				return err
			}
			// 首次变更:以数量0懒创建条目
			found = &bookstore.StockEntry{
				BookstoreID: storeID,
				BookID:      bookID,
				Quantity:    0,
			}
			if err := uc.storeRepo.CreateStock(txCtx, found); err != nil {
				return err
			}
		}

		found.Apply(delta)

		if err := uc.storeRepo.SaveStock(txCtx, found); err != nil {
			return err
		}

		entry = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}
