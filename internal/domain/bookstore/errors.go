package bookstore

import (
	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
)

// 书店领域错误定义
var (
	// ErrStoreNotFound 书店不存在
	ErrStoreNotFound = apperrors.ErrStoreNotFound

	// ErrStockNotFound 库存条目不存在((书店,图书)对尚未建立)
	// 内部信号:UpdateQuantity据此懒创建条目,不对外暴露
	ErrStockNotFound = apperrors.ErrStockNotFound
)
