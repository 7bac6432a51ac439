package domain

import (
	"context"
	"time"
)

// 仓储契约：FindByUUID 找不到时返回 (nil, nil)，其余错误原样向上抛

type CategoryRepository interface {
	List(ctx context.Context, f PageList) ([]Category, error)
	// FindByUUID 仅返回未删除行
	FindByUUID(ctx context.Context, uuid string) (*Category, error)
	// FindByName 不区分是否删除（唯一约束是全局的）
	FindByName(ctx context.Context, name string) (*Category, error)
	Create(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category, columns ...string) error
	SoftDelete(ctx context.Context, id uint, at time.Time) error
}

type ItemRepository interface {
	List(ctx context.Context, f ItemFilter) ([]Item, error)
	FindByUUID(ctx context.Context, uuid string) (*Item, error)
	Create(ctx context.Context, it *Item) error
	Update(ctx context.Context, it *Item, columns ...string) error
	SoftDelete(ctx context.Context, id uint, at time.Time) error
}

type SupplierRepository interface {
	List(ctx context.Context, f PageList) ([]Supplier, error)
	FindByUUID(ctx context.Context, uuid string) (*Supplier, error)
	// Create/Update 与地址、联系方式同一事务
	Create(ctx context.Context, s *Supplier) error
	Update(ctx context.Context, s *Supplier) error
	SoftDelete(ctx context.Context, id uint, at time.Time) error
}

type UserRepository interface {
	List(ctx context.Context, f UserFilter) ([]User, error)
	// FindByUUID 包含已删除用户，由服务层判定状态
	FindByUUID(ctx context.Context, uuid string) (*User, error)
	// FindByEmail 预加载 Secret，包含已删除用户
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u *User) error
	// Update 同事务写 users 与 profiles
	Update(ctx context.Context, u *User, columns ...string) error
	SetState(ctx context.Context, id uint, changes map[string]any) error
	SetSecret(ctx context.Context, userID uint, hash string) error
}
