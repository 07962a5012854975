package user

import (
	"time"
)

// Role 用户角色（枚举）
// 设计说明：角色写入JWT Claims，由路由中间件做权限判断
type Role string

const (
	RoleUser         Role = "USER"          // 普通用户（默认）
	RoleStoreManager Role = "STORE_MANAGER" // 店长（可修改库存）
	RoleAdmin        Role = "ADMIN"         // 管理员（可管理图书与书店）
)

// Valid 判断角色取值是否合法
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleStoreManager, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// User 用户实体（聚合根）
// 设计说明：
// 1. 密码已加密存储（bcrypt），领域层不持有明文
// 2. 领域实体不依赖GORM tag（infrastructure层的Repository实现时处理映射）
// 3. Email唯一性由数据库UNIQUE索引保证，不做应用层预查询
type User struct {
	ID        uint
	Email     string
	Password  string // bcrypt哈希值
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码；role为空时默认USER
func NewUser(email, hashedPassword string, role Role) *User {
	if role == "" {
		role = RoleUser
	}
	now := time.Now()
	return &User{
		Email:     email,
		Password:  hashedPassword,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
