package dto

import (
	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
)

// timeLayout 响应中时间字段的统一格式
const timeLayout = "2006-01-02 15:04:05"

// CreateBookRequest HTTP上架请求
// Price用指针以便binding区分"缺失"与"0元"(required对值类型的0会误判)
type CreateBookRequest struct {
	Title  string   `json:"title" binding:"required,max=200" example:"Go语言实战"`
	Author string   `json:"author" binding:"required,max=100" example:"威廉·肯尼迪"`
	Price  *float64 `json:"price" binding:"required" example:"59.00"`
}

// UpdateBookRequest HTTP图书部分更新请求(全字段可选)
type UpdateBookRequest struct {
	Title  *string  `json:"title" binding:"omitempty,max=200"`
	Author *string  `json:"author" binding:"omitempty,max=100"`
	Price  *float64 `json:"price" binding:"omitempty"`
}

// Patch 转换为领域层补丁对象
func (r UpdateBookRequest) Patch() book.Patch {
	return book.Patch{
		Title:  r.Title,
		Author: r.Author,
		Price:  r.Price,
	}
}

// BookResponse HTTP图书响应
type BookResponse struct {
	ID        uint    `json:"id" example:"1"`
	Title     string  `json:"title" example:"Go语言实战"`
	Author    string  `json:"author" example:"威廉·肯尼迪"`
	Price     float64 `json:"price" example:"59.00"`
	CreatedAt string  `json:"created_at" example:"2024-01-15 10:30:00"`
	UpdatedAt string  `json:"updated_at" example:"2024-01-15 10:30:00"`
}

// NewBookResponse 领域实体 → HTTP响应
func NewBookResponse(b *book.Book) BookResponse {
	return BookResponse{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Price:     b.Price,
		CreatedAt: b.CreatedAt.Format(timeLayout),
		UpdatedAt: b.UpdatedAt.Format(timeLayout),
	}
}

// NewBookListResponse 批量转换
func NewBookListResponse(books []*book.Book) []BookResponse {
	out := make([]BookResponse, len(books))
	for i, b := range books {
		out[i] = NewBookResponse(b)
	}
	return out
}
