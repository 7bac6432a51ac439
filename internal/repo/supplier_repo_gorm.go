package repo

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"go-gin-gorm-inventory/internal/domain"
)

type SupplierRepo struct{ db *gorm.DB }

func NewSupplierRepo(db *gorm.DB) *SupplierRepo { return &SupplierRepo{db: db} }

var _ domain.SupplierRepository = (*SupplierRepo)(nil)

func (r *SupplierRepo) withRefs(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Address").Preload("Contact")
}

func (r *SupplierRepo) List(ctx context.Context, f domain.PageList) ([]domain.Supplier, error) {
	var out []domain.Supplier
	err := r.withRefs(ctx).Model(&domain.Supplier{}).
		Scopes(active, contains(f.SearchString, "name", "description"), paginate(f)).
		Find(&out).Error
	if err != nil {
		return nil, wrap("list suppliers", err)
	}
	return out, nil
}

func (r *SupplierRepo) FindByUUID(ctx context.Context, uuid string) (*domain.Supplier, error) {
	var s domain.Supplier
	err := r.withRefs(ctx).Scopes(active).First(&s, "uuid = ?", uuid).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("find supplier", err)
	}
	return &s, nil
}

func (r *SupplierRepo) Create(ctx context.Context, s *domain.Supplier) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(s).Error; err != nil {
			return err
		}
		s.Address.SupplierID = s.ID
		if err := tx.Create(&s.Address).Error; err != nil {
			return err
		}
		s.Contact.SupplierID = s.ID
		return tx.Create(&s.Contact).Error
	})
	return wrap("create supplier", err)
}

func (r *SupplierRepo) Update(ctx context.Context, s *domain.Supplier) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(s).Omit(clause.Associations).
			Select("name", "description").Updates(s).Error; err != nil {
			return err
		}
		if err := upsertOwned(tx, &domain.SupplierAddress{}, s.ID, map[string]any{
			"country":  s.Address.Country,
			"city":     s.Address.City,
			"zip_code": s.Address.ZipCode,
			"street":   s.Address.Street,
			"building": s.Address.Building,
		}, func() any { s.Address.SupplierID = s.ID; return &s.Address }); err != nil {
			return err
		}
		return upsertOwned(tx, &domain.SupplierContact{}, s.ID, map[string]any{
			"mobile_number":    s.Contact.MobileNumber,
			"telephone_number": s.Contact.TelephoneNumber,
		}, func() any { s.Contact.SupplierID = s.ID; return &s.Contact })
	})
	return wrap("update supplier", err)
}

// upsertOwned 子记录按 supplier_id 更新；历史数据缺行时补建
func upsertOwned(tx *gorm.DB, model any, supplierID uint, changes map[string]any, row func() any) error {
	res := tx.Model(model).Where("supplier_id = ?", supplierID).Updates(changes)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	return tx.Create(row()).Error
}

func (r *SupplierRepo) SoftDelete(ctx context.Context, id uint, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&domain.Supplier{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]any{"is_deleted": true, "deleted_at": at, "updated_at": at})
	if res.Error != nil {
		return wrap("delete supplier", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete supplier %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
