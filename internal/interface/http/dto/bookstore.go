package dto

import (
	"github.com/xiebiao/bookstore-inventory/internal/domain/bookstore"
)

// CreateBookstoreRequest HTTP建店请求
type CreateBookstoreRequest struct {
	Name     string `json:"name" binding:"required,max=100" example:"先锋书店"`
	Location string `json:"location" binding:"required,max=200" example:"南京市五台山"`
}

// UpdateQuantityRequest HTTP库存变更请求
// Quantity是增量(可为负),指针保证"缺失"与"0"可区分
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required" example:"5"`
}

// BookstoreResponse HTTP书店响应(概要视图,不含库存)
type BookstoreResponse struct {
	ID        uint   `json:"id" example:"1"`
	Name      string `json:"name" example:"先锋书店"`
	Location  string `json:"location" example:"南京市五台山"`
	CreatedAt string `json:"created_at" example:"2024-01-15 10:30:00"`
	UpdatedAt string `json:"updated_at" example:"2024-01-15 10:30:00"`
}

// BookstoreDetailResponse HTTP书店详情响应(含完整库存集合)
type BookstoreDetailResponse struct {
	BookstoreResponse
	Stock []StockEntryResponse `json:"stock"`
}

// StockEntryResponse HTTP库存条目响应
// Book仅在书店详情中展开,库存变更响应里为null
type StockEntryResponse struct {
	ID          uint          `json:"id" example:"1"`
	BookstoreID uint          `json:"bookstore_id" example:"1"`
	BookID      uint          `json:"book_id" example:"1"`
	Quantity    int           `json:"quantity" example:"5"`
	Book        *BookResponse `json:"book,omitempty"`
}

// NewBookstoreResponse 领域实体 → HTTP响应(概要)
func NewBookstoreResponse(s *bookstore.Bookstore) BookstoreResponse {
	return BookstoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Location:  s.Location,
		CreatedAt: s.CreatedAt.Format(timeLayout),
		UpdatedAt: s.UpdatedAt.Format(timeLayout),
	}
}

// NewBookstoreListResponse 批量转换
func NewBookstoreListResponse(stores []*bookstore.Bookstore) []BookstoreResponse {
	out := make([]BookstoreResponse, len(stores))
	for i, s := range stores {
		out[i] = NewBookstoreResponse(s)
	}
	return out
}

// NewBookstoreDetailResponse 领域实体 → HTTP响应(详情)
func NewBookstoreDetailResponse(s *bookstore.Bookstore) BookstoreDetailResponse {
	stock := make([]StockEntryResponse, len(s.Stock))
	for i, e := range s.Stock {
		stock[i] = NewStockEntryResponse(e)
	}
	return BookstoreDetailResponse{
		BookstoreResponse: NewBookstoreResponse(s),
		Stock:             stock,
	}
}

// NewStockEntryResponse 领域实体 → HTTP响应
func NewStockEntryResponse(e *bookstore.StockEntry) StockEntryResponse {
	resp := StockEntryResponse{
		ID:          e.ID,
		BookstoreID: e.BookstoreID,
		BookID:      e.BookID,
		Quantity:    e.Quantity,
	}
	if e.Book != nil {
		b := NewBookResponse(e.Book)
		resp.Book = &b
	}
	return resp
}
