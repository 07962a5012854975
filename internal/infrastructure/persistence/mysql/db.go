package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&BookModel{},
		&BookstoreModel{},
		&StockEntryModel{},
	)
}

// UserModel GORM用户模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/user/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
// 注意：用户不用软删除。Email上有UNIQUE索引，软删除的行会继续占用邮箱，
// 导致删号后同邮箱无法重新注册；删除用户是物理DELETE，邮箱随行释放
type UserModel struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string    `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	Role      string    `gorm:"size:20;not null;default:USER;comment:角色(USER/STORE_MANAGER/ADMIN)"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// BookModel GORM图书模型
type BookModel struct {
	ID        uint           `gorm:"primaryKey"`
	Title     string         `gorm:"size:200;not null;comment:书名"`
	Author    string         `gorm:"size:100;not null;comment:作者"`
	Price     float64        `gorm:"not null;comment:价格"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// BookstoreModel GORM书店模型
// Stock为一对多关联,仅在详情查询时Preload
type BookstoreModel struct {
	ID        uint              `gorm:"primaryKey"`
	Name      string            `gorm:"size:100;not null;comment:店名"`
	Location  string            `gorm:"size:200;not null;comment:位置"`
	Stock     []StockEntryModel `gorm:"foreignKey:BookstoreID"`
	CreatedAt time.Time         `gorm:"comment:创建时间"`
	UpdatedAt time.Time         `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt    `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (BookstoreModel) TableName() string {
	return "bookstores"
}

// StockEntryModel GORM库存条目模型((书店,图书)中间表)
// 设计说明:
// 1. (BookstoreID, BookID)复合唯一索引,保证每个组合只有一条记录
// 2. Quantity为有符号整数,允许为负(不做下限截断)
// 3. 条目懒创建,没有任何接口删除它,因此不加软删除列
type StockEntryModel struct {
	ID          uint      `gorm:"primaryKey"`
	BookstoreID uint      `gorm:"uniqueIndex:idx_store_book;not null;comment:书店ID"`
	BookID      uint      `gorm:"uniqueIndex:idx_store_book;not null;comment:图书ID"`
	Quantity    int       `gorm:"not null;default:0;comment:持有数量(可为负)"`
	Book        BookModel `gorm:"foreignKey:BookID"`
	CreatedAt   time.Time `gorm:"comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (StockEntryModel) TableName() string {
	return "bookstore_books"
}
