package bookstore

import (
	"time"

	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
)

// Bookstore 书店实体(聚合根)
// 设计说明:
// 1. Stock是书店持有的库存条目集合,列表查询不加载(概要视图),
//    详情查询时完整加载并展开关联图书
// 2. 库存条目随首次数量变更懒创建,没有独立的删除操作
type Bookstore struct {
	ID        uint
	Name      string
	Location  string
	Stock     []*StockEntry
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBookstore 创建新书店(工厂方法),初始无任何库存条目
func NewBookstore(name, location string) *Bookstore {
	now := time.Now()
	return &Bookstore{
		Name:      name,
		Location:  location,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// StockEntry 库存条目((书店,图书)中间表记录)
// 设计说明:
// 1. (BookstoreID, BookID)对全局唯一
// 2. Quantity可为负数:增量不做下限截断,负库存可表达缺货欠量
// 3. Book仅在书店详情查询时展开填充,其余场景为nil
type StockEntry struct {
	ID          uint
	BookstoreID uint
	BookID      uint
	Quantity    int
	Book        *book.Book
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Apply 在现有数量上累加增量(可为负,不截断)
func (e *StockEntry) Apply(delta int) {
	e.Quantity += delta
	e.UpdatedAt = time.Now()
}
