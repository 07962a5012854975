package bookstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
	"github.com/xiebiao/bookstore-inventory/internal/domain/bookstore"
)

// fakeTxManager 直接执行fn,不提供真实事务语义(单测只验证工作流编排)
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type stockKey struct {
	storeID uint
	bookID  uint
}

// fakeStoreRepository 内存书店仓储
type fakeStoreRepository struct {
	stores map[uint]*bookstore.Bookstore
	stock  map[stockKey]*bookstore.StockEntry
	nextID uint
}

func newFakeStoreRepository() *fakeStoreRepository {
	return &fakeStoreRepository{
		stores: make(map[uint]*bookstore.Bookstore),
		stock:  make(map[stockKey]*bookstore.StockEntry),
		nextID: 1,
	}
}

func (r *fakeStoreRepository) addStore(name string) *bookstore.Bookstore {
	store := bookstore.NewBookstore(name, "测试地址")
	store.ID = r.nextID
	r.nextID++
	r.stores[store.ID] = store
	return store
}

func (r *fakeStoreRepository) Create(_ context.Context, store *bookstore.Bookstore) error {
	store.ID = r.nextID
	r.nextID++
	r.stores[store.ID] = store
	return nil
}

func (r *fakeStoreRepository) FindAll(_ context.Context) ([]*bookstore.Bookstore, error) {
	result := make([]*bookstore.Bookstore, 0, len(r.stores))
	for _, s := range r.stores {
		result = append(result, s)
	}
	return result, nil
}

func (r *fakeStoreRepository) FindByID(_ context.Context, id uint) (*bookstore.Bookstore, error) {
	s, ok := r.stores[id]
	if !ok {
		return nil, bookstore.ErrStoreNotFound
	}
	return s, nil
}

func (r *fakeStoreRepository) FindByIDWithStock(ctx context.Context, id uint) (*bookstore.Bookstore, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeStoreRepository) FindStock(_ context.Context, storeID, bookID uint) (*bookstore.StockEntry, error) {
	entry, ok := r.stock[stockKey{storeID, bookID}]
	if !ok {
		return nil, bookstore.ErrStockNotFound
	}
	clone := *entry
	return &clone, nil
}

func (r *fakeStoreRepository) CreateStock(_ context.Context, entry *bookstore.StockEntry) error {
	entry.ID = r.nextID
	r.nextID++
	clone := *entry
	r.stock[stockKey{entry.BookstoreID, entry.BookID}] = &clone
	return nil
}

func (r *fakeStoreRepository) SaveStock(_ context.Context, entry *bookstore.StockEntry) error {
	key := stockKey{entry.BookstoreID, entry.BookID}
	if _, ok := r.stock[key]; !ok {
		return bookstore.ErrStockNotFound
	}
	clone := *entry
	r.stock[key] = &clone
	return nil
}

// fakeBookRepository 内存图书仓储
type fakeBookRepository struct {
	books  map[uint]*book.Book
	nextID uint
}

func newFakeBookRepository() *fakeBookRepository {
	return &fakeBookRepository{books: make(map[uint]*book.Book), nextID: 1}
}

func (r *fakeBookRepository) addBook(title string) *book.Book {
	b := book.NewBook(title, "作者", 10.0)
	b.ID = r.nextID
	r.nextID++
	r.books[b.ID] = b
	return b
}

func (r *fakeBookRepository) Create(_ context.Context, b *book.Book) error {
	b.ID = r.nextID
	r.nextID++
	r.books[b.ID] = b
	return nil
}

func (r *fakeBookRepository) FindAll(_ context.Context) ([]*book.Book, error) {
	result := make([]*book.Book, 0, len(r.books))
	for _, b := range r.books {
		result = append(result, b)
	}
	return result, nil
}

func (r *fakeBookRepository) FindByID(_ context.Context, id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (r *fakeBookRepository) Update(_ context.Context, b *book.Book) error {
	if _, ok := r.books[b.ID]; !ok {
		return book.ErrBookNotFound
	}
	r.books[b.ID] = b
	return nil
}

func (r *fakeBookRepository) Delete(_ context.Context, id uint) error {
	if _, ok := r.books[id]; !ok {
		return book.ErrBookNotFound
	}
	delete(r.books, id)
	return nil
}

func setupUseCase() (*UpdateQuantityUseCase, *fakeStoreRepository, *fakeBookRepository, *fakeTxManager) {
	storeRepo := newFakeStoreRepository()
	bookRepo := newFakeBookRepository()
	txManager := &fakeTxManager{}
	uc := NewUpdateQuantityUseCase(storeRepo, bookRepo, txManager)
	return uc, storeRepo, bookRepo, txManager
}

// TestUpdateQuantityLazyCreate 测试首次变更懒创建条目
func TestUpdateQuantityLazyCreate(t *testing.T) {
	ctx := context.Background()
	uc, storeRepo, bookRepo, txManager := setupUseCase()

	store := storeRepo.addStore("城东店")
	b := bookRepo.addBook("Go圣经")

	entry, err := uc.Execute(ctx, store.ID, b.ID, 5)
	require.NoError(t, err)

	assert.Equal(t, store.ID, entry.BookstoreID)
	assert.Equal(t, b.ID, entry.BookID)
	// 以0创建后累加增量
	assert.Equal(t, 5, entry.Quantity)
	// 读-改-写在事务内执行
	assert.Equal(t, 1, txManager.calls)
}

// TestUpdateQuantityAccumulate 测试同一(书店,图书)对的多次累加
func TestUpdateQuantityAccumulate(t *testing.T) {
	ctx := context.Background()
	uc, storeRepo, bookRepo, _ := setupUseCase()

	store := storeRepo.addStore("城东店")
	b := bookRepo.addBook("Go圣经")

	_, err := uc.Execute(ctx, store.ID, b.ID, 5)
	require.NoError(t, err)

	entry, err := uc.Execute(ctx, store.ID, b.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 8, entry.Quantity)

	// 负增量不截断,可以减到负数
	entry, err = uc.Execute(ctx, store.ID, b.ID, -10)
	require.NoError(t, err)
	assert.Equal(t, -2, entry.Quantity)
}

// TestUpdateQuantityIsolatedPairs 测试不同(书店,图书)对互不影响
func TestUpdateQuantityIsolatedPairs(t *testing.T) {
	ctx := context.Background()
	uc, storeRepo, bookRepo, _ := setupUseCase()

	store1 := storeRepo.addStore("城东店")
	store2 := storeRepo.addStore("城西店")
	b := bookRepo.addBook("Go圣经")

	_, err := uc.Execute(ctx, store1.ID, b.ID, 5)
	require.NoError(t, err)

	entry, err := uc.Execute(ctx, store2.ID, b.ID, 2)
	require.NoError(t, err)
	// 城西店从0开始,不受城东店影响
	assert.Equal(t, 2, entry.Quantity)
}

// TestUpdateQuantityNotFound 测试书店或图书不存在
func TestUpdateQuantityNotFound(t *testing.T) {
	ctx := context.Background()
	uc, storeRepo, bookRepo, txManager := setupUseCase()

	store := storeRepo.addStore("城东店")
	b := bookRepo.addBook("Go圣经")

	t.Run("书店不存在", func(t *testing.T) {
		_, err := uc.Execute(ctx, 999, b.ID, 1)
		assert.ErrorIs(t, err, bookstore.ErrStoreNotFound)
	})

	t.Run("图书不存在", func(t *testing.T) {
		_, err := uc.Execute(ctx, store.ID, 999, 1)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	// 存在性检查失败时不应开启事务
	assert.Equal(t, 0, txManager.calls)
}
