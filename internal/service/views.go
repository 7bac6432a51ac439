package service

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"go-gin-gorm-inventory/internal/domain"
)

// 对外视图：只暴露 uuid，不暴露自增主键

type CategoryView struct {
	UUID        string    `json:"uuid"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func categoryView(c *domain.Category) CategoryView {
	return CategoryView{
		UUID:        c.UUID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type CategoryRef struct {
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PriceView struct {
	SuggestedRetailPrice decimal.Decimal `json:"suggestedRetailPrice"`
	OriginalPrice        decimal.Decimal `json:"originalPrice"`
	DiscountedPrice      decimal.Decimal `json:"discountedPrice"`
}

type ItemView struct {
	UUID        string      `json:"uuid"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	IsDraft     bool        `json:"isDraft"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	Category    CategoryRef `json:"category"`
	ItemPrice   *PriceView  `json:"itemPrice"`
}

func itemView(it *domain.Item) ItemView {
	v := ItemView{
		UUID:        it.UUID,
		Name:        it.Name,
		Description: it.Description,
		IsDraft:     it.IsDraft,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
		Category: CategoryRef{
			UUID:        it.Category.UUID,
			Name:        it.Category.Name,
			Description: it.Category.Description,
		},
	}
	if p := it.Price; p != nil {
		v.ItemPrice = &PriceView{
			SuggestedRetailPrice: p.SuggestedRetailPrice,
			OriginalPrice:        p.OriginalPrice,
			DiscountedPrice:      p.DiscountedPrice,
		}
	}
	return v
}

type AddressView struct {
	Country  string `json:"country"`
	City     string `json:"city"`
	ZipCode  string `json:"zipCode"`
	Street   string `json:"street"`
	Building string `json:"building"`
}

type ContactView struct {
	MobileNumber    string `json:"mobileNumber"`
	TelephoneNumber string `json:"telephoneNumber"`
}

type SupplierView struct {
	UUID            string      `json:"uuid"`
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
	SupplierAddress AddressView `json:"supplierAddress"`
	SupplierContact ContactView `json:"supplierContact"`
}

func supplierView(s *domain.Supplier) SupplierView {
	return SupplierView{
		UUID:        s.UUID,
		Name:        s.Name,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		SupplierAddress: AddressView{
			Country:  s.Address.Country,
			City:     s.Address.City,
			ZipCode:  s.Address.ZipCode,
			Street:   s.Address.Street,
			Building: s.Address.Building,
		},
		SupplierContact: ContactView{
			MobileNumber:    s.Contact.MobileNumber,
			TelephoneNumber: s.Contact.TelephoneNumber,
		},
	}
}

type ProfileView struct {
	FirstName  string     `json:"firstName"`
	MiddleName string     `json:"middleName"`
	LastName   string     `json:"lastName"`
	Sex        domain.Sex `json:"sex"`
	BirthDate  time.Time  `json:"birthDate"`
	UpdatedBy  *string    `json:"updatedBy"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

type UserView struct {
	UUID          string      `json:"uuid"`
	Email         string      `json:"email"`
	UserRole      domain.Role `json:"userRole"`
	IsActive      bool        `json:"isActive"`
	IsDeactivated bool        `json:"isDeactivated"`
	IsDeleted     bool        `json:"isDeleted"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
	UpdatedBy     *string     `json:"updatedBy"`
	Profile       ProfileView `json:"profile"`
}

func userView(u *domain.User) UserView {
	return UserView{
		UUID:          u.UUID,
		Email:         u.Email,
		UserRole:      u.UserRole,
		IsActive:      u.IsActive,
		IsDeactivated: u.IsDeactivated,
		IsDeleted:     u.IsDeleted,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
		UpdatedBy:     u.UpdatedBy,
		Profile: ProfileView{
			FirstName:  u.Profile.FirstName,
			MiddleName: u.Profile.MiddleName,
			LastName:   u.Profile.LastName,
			Sex:        u.Profile.Sex,
			BirthDate:  u.Profile.BirthDate,
			UpdatedBy:  u.Profile.UpdatedBy,
			UpdatedAt:  u.Profile.UpdatedAt,
		},
	}
}

func mapViews[E any, V any](rows []E, conv func(*E) V) []V {
	out := make([]V, 0, len(rows))
	for i := range rows {
		out = append(out, conv(&rows[i]))
	}
	return out
}

// Date 接受 2006-01-02 或 RFC3339
type Date struct{ time.Time }

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(time.DateOnly))
}
