package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-inventory/internal/domain/bookstore"
	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
)

// bookstoreRepository 书店仓储实现(MySQL)
// 库存条目((书店,图书)中间表)的持久化也在这里实现,
// 库存相关方法通过dbFromContext参与TxManager开启的事务
type bookstoreRepository struct {
	db *gorm.DB
}

// NewBookstoreRepository 创建书店仓储
func NewBookstoreRepository(db *gorm.DB) bookstore.Repository {
	return &bookstoreRepository{db: db}
}

// Create 创建书店
func (r *bookstoreRepository) Create(ctx context.Context, store *bookstore.Bookstore) error {
	model := &BookstoreModel{
		Name:     store.Name,
		Location: store.Location,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建书店失败")
	}

	store.ID = model.ID
	store.CreatedAt = model.CreatedAt
	store.UpdatedAt = model.UpdatedAt

	return nil
}

// FindAll 查询全部书店(不Preload库存,概要视图)
func (r *bookstoreRepository) FindAll(ctx context.Context) ([]*bookstore.Bookstore, error) {
	var models []BookstoreModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询书店列表失败")
	}

	stores := make([]*bookstore.Bookstore, len(models))
	for i := range models {
		stores[i] = toStoreEntity(&models[i])
	}
	return stores, nil
}

// FindByID 根据ID查找书店(不加载库存,用于存在性判断)
func (r *bookstoreRepository) FindByID(ctx context.Context, id uint) (*bookstore.Bookstore, error) {
	var model BookstoreModel
	db := dbFromContext(ctx, r.db).WithContext(ctx)
	err := db.First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bookstore.ErrStoreNotFound
		}
		return nil, apperrors.Wrap(err, "查询书店失败")
	}

	return toStoreEntity(&model), nil
}

// FindByIDWithStock 查找书店并加载库存条目及其关联图书
// Preload("Stock.Book")一次性展开两级关联
func (r *bookstoreRepository) FindByIDWithStock(ctx context.Context, id uint) (*bookstore.Bookstore, error) {
	var model BookstoreModel
	err := r.db.WithContext(ctx).
		Preload("Stock.Book").
		First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bookstore.ErrStoreNotFound
		}
		return nil, apperrors.Wrap(err, "查询书店失败")
	}

	store := toStoreEntity(&model)
	store.Stock = make([]*bookstore.StockEntry, len(model.Stock))
	for i := range model.Stock {
		store.Stock[i] = toStockEntity(&model.Stock[i], true)
	}

	return store, nil
}

// FindStock 查找(书店,图书)对应的库存条目
func (r *bookstoreRepository) FindStock(ctx context.Context, storeID, bookID uint) (*bookstore.StockEntry, error) {
	var model StockEntryModel
	db := dbFromContext(ctx, r.db).WithContext(ctx)
	err := db.Where("bookstore_id = ? AND book_id = ?", storeID, bookID).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bookstore.ErrStockNotFound
		}
		return nil, apperrors.Wrap(err, "查询库存条目失败")
	}

	return toStockEntity(&model, false), nil
}

// CreateStock 创建库存条目
// 复合唯一索引(bookstore_id, book_id)兜底并发下的重复创建
func (r *bookstoreRepository) CreateStock(ctx context.Context, entry *bookstore.StockEntry) error {
	model := &StockEntryModel{
		BookstoreID: entry.BookstoreID,
		BookID:      entry.BookID,
		Quantity:    entry.Quantity,
	}

	db := dbFromContext(ctx, r.db).WithContext(ctx)
	if err := db.Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.New(apperrors.ErrCodeDuplicateEntry, "库存条目已存在")
		}
		return apperrors.Wrap(err, "创建库存条目失败")
	}

	entry.ID = model.ID
	entry.CreatedAt = model.CreatedAt
	entry.UpdatedAt = model.UpdatedAt

	return nil
}

// SaveStock 持久化库存条目的数量变更
// 只更新quantity列,避免Save整行覆盖关联字段
func (r *bookstoreRepository) SaveStock(ctx context.Context, entry *bookstore.StockEntry) error {
	db := dbFromContext(ctx, r.db).WithContext(ctx)
	result := db.Model(&StockEntryModel{}).
		Where("id = ?", entry.ID).
		Update("quantity", entry.Quantity)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新库存条目失败")
	}

	if result.RowsAffected == 0 {
		return bookstore.ErrStockNotFound
	}

	return nil
}

// toStoreEntity GORM模型 → 领域实体(不含库存)
func toStoreEntity(model *BookstoreModel) *bookstore.Bookstore {
	return &bookstore.Bookstore{
		ID:        model.ID,
		Name:      model.Name,
		Location:  model.Location,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// toStockEntity GORM模型 → 领域实体
// withBook为true时展开关联图书(详情查询场景)
func toStockEntity(model *StockEntryModel, withBook bool) *bookstore.StockEntry {
	entry := &bookstore.StockEntry{
		ID:          model.ID,
		BookstoreID: model.BookstoreID,
		BookID:      model.BookID,
		Quantity:    model.Quantity,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
	// 关联图书已被软删除时Preload留下零值模型,此时book输出null而非幽灵对象
	if withBook && model.Book.ID != 0 {
		entry.Book = toBookEntity(&model.Book)
	}
	return entry
}
