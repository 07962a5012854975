package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := &BookModel{
		Title:  b.Title,
		Author: b.Author,
		Price:  b.Price,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建图书失败")
	}

	// 回填自增ID
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt

	return nil
}

// FindAll 查询全部图书(无过滤、无分页,目录规模可控)
func (r *bookRepository) FindAll(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// FindByID 根据ID查找图书
// 库存事务中的图书存在性检查也走这里,因此通过dbFromContext参与事务
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	db := dbFromContext(ctx, r.db).WithContext(ctx)
	err := db.First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// Update 更新图书信息
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model := &BookModel{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Price:     b.Price,
		CreatedAt: b.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新图书失败")
	}

	b.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除图书(软删除)
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&BookModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}

	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:        model.ID,
		Title:     model.Title,
		Author:    model.Author,
		Price:     model.Price,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
