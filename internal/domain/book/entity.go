package book

import (
	"time"
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. 图书是全局目录,不归属任何用户或书店
// 2. 各书店的持有数量在bookstore聚合的StockEntry中维护
type Book struct {
	ID        uint
	Title     string  // 书名
	Author    string  // 作者
	Price     float64 // 价格
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBook 创建新图书(工厂方法)
func NewBook(title, author string, price float64) *Book {
	now := time.Now()
	return &Book{
		Title:     title,
		Author:    author,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ApplyPatch 按字段合并部分更新(nil字段保持原值)
func (b *Book) ApplyPatch(p Patch) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Price != nil {
		b.Price = *p.Price
	}
	b.UpdatedAt = time.Now()
}

// Patch 图书部分更新值对象
type Patch struct {
	Title  *string
	Author *string
	Price  *float64
}
