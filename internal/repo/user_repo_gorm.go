package repo

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"go-gin-gorm-inventory/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

var _ domain.UserRepository = (*UserRepo)(nil)

// List 默认排除已删除；显式传 isDeleted 时按其过滤
func (r *UserRepo) List(ctx context.Context, f domain.UserFilter) ([]domain.User, error) {
	var users []domain.User
	q := r.db.WithContext(ctx).Preload("Profile").Model(&domain.User{})
	if f.IsDeleted == nil && !f.IncludeDeleted {
		q = q.Scopes(active)
	}
	err := q.Scopes(
		eq("is_deleted", f.IsDeleted),
		eq("is_active", f.IsActive),
		eq("is_deactivated", f.IsDeactivated),
		contains(f.SearchString, "email"),
		paginate(f.PageList),
	).Find(&users).Error
	if err != nil {
		return nil, wrap("list users", err)
	}
	return users, nil
}

func (r *UserRepo) FindByUUID(ctx context.Context, uuid string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).Preload("Profile").First(&u, "uuid = ?", uuid).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("find user", err)
	}
	return &u, nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).Preload("Profile").Preload("Secret").
		First(&u, "email = ?", email).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("find user by email", err)
	}
	return &u, nil
}

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(u).Error; err != nil {
			return err
		}
		u.Profile.UserID = u.ID
		if err := tx.Create(&u.Profile).Error; err != nil {
			return err
		}
		if u.Secret != nil {
			u.Secret.UserID = u.ID
			return tx.Create(u.Secret).Error
		}
		return nil
	})
	return wrap("create user", err)
}

var profileColumns = []string{"first_name", "middle_name", "last_name", "sex", "birth_date", "updated_by"}

func (r *UserRepo) Update(ctx context.Context, u *domain.User, columns ...string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(u).Omit(clause.Associations)
		if len(columns) > 0 {
			q = q.Select(columns)
		}
		if err := q.Updates(u).Error; err != nil {
			return err
		}
		if u.Profile.ID == 0 {
			u.Profile.UserID = u.ID
			return tx.Create(&u.Profile).Error
		}
		return tx.Model(&u.Profile).Select(profileColumns).Updates(&u.Profile).Error
	})
	return wrap("update user", err)
}

// SetState 状态位与 *_at/*_by 戳一次写入
func (r *UserRepo) SetState(ctx context.Context, id uint, changes map[string]any) error {
	res := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return wrap("update user state", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update user state %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SetSecret 覆盖密码哈希并标记为已激活
func (r *UserRepo) SetSecret(ctx context.Context, userID uint, hash string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sec := domain.UserSecret{UserID: userID, PasswordHash: hash}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"password_hash", "updated_at"}),
		}).Create(&sec).Error; err != nil {
			return err
		}
		return tx.Model(&domain.User{}).Where("id = ?", userID).
			Updates(map[string]any{"is_active": true, "updated_at": time.Now()}).Error
	})
	return wrap("set user secret", err)
}
