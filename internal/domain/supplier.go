package domain

import (
	"time"

	"gorm.io/gorm"

	"go-gin-gorm-inventory/pkg/utils"
)

type Supplier struct {
	ID          uint   `gorm:"primaryKey"`
	UUID        string `gorm:"column:uuid;uniqueIndex;size:36;not null"`
	Name        string `gorm:"size:250;not null"`
	Description string `gorm:"size:1000"`

	Address SupplierAddress `gorm:"foreignKey:SupplierID"`
	Contact SupplierContact `gorm:"foreignKey:SupplierID"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	SoftDelete
}

func (Supplier) TableName() string { return "suppliers" }

func (s *Supplier) BeforeCreate(*gorm.DB) error {
	if s.UUID == "" {
		s.UUID = utils.NewID()
	}
	return nil
}

type SupplierAddress struct {
	ID         uint   `gorm:"primaryKey"`
	SupplierID uint   `gorm:"uniqueIndex;not null"`
	Country    string `gorm:"size:50"`
	City       string `gorm:"size:100"`
	ZipCode    string `gorm:"size:10"`
	Street     string `gorm:"size:200"`
	Building   string `gorm:"size:200"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SupplierAddress) TableName() string { return "supplier_addresses" }

type SupplierContact struct {
	ID              uint   `gorm:"primaryKey"`
	SupplierID      uint   `gorm:"uniqueIndex;not null"`
	MobileNumber    string `gorm:"size:20"`
	TelephoneNumber string `gorm:"size:20"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SupplierContact) TableName() string { return "supplier_contacts" }
