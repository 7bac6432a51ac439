package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"go-gin-gorm-inventory/pkg/utils"
)

type Item struct {
	ID          uint   `gorm:"primaryKey"`
	UUID        string `gorm:"column:uuid;uniqueIndex;size:36;not null"`
	Name        string `gorm:"size:500;not null"`
	Description string `gorm:"size:2500"`
	IsDraft     bool   `gorm:"not null"`

	CategoryID uint     `gorm:"not null;index"`
	Category   Category `gorm:"foreignKey:CategoryID"`
	Price      *ItemPrice

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	SoftDelete
}

func (Item) TableName() string { return "items" }

func (i *Item) BeforeCreate(*gorm.DB) error {
	if i.UUID == "" {
		i.UUID = utils.NewID()
	}
	return nil
}

// ItemPrice 只读投影，本服务不写
type ItemPrice struct {
	ID                   uint            `gorm:"primaryKey"`
	ItemID               uint            `gorm:"uniqueIndex;not null"`
	SuggestedRetailPrice decimal.Decimal `gorm:"type:decimal(12,2)"`
	OriginalPrice        decimal.Decimal `gorm:"type:decimal(12,2)"`
	DiscountedPrice      decimal.Decimal `gorm:"type:decimal(12,2)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ItemPrice) TableName() string { return "item_prices" }
