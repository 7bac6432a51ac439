package domain

import (
	"time"

	"gorm.io/gorm"

	"go-gin-gorm-inventory/pkg/utils"
)

// SoftDelete 所有聚合根共用的逻辑删除字段
type SoftDelete struct {
	IsDeleted bool       `gorm:"not null;default:false;index"`
	DeletedAt *time.Time `gorm:"index"`
}

type Category struct {
	ID          uint   `gorm:"primaryKey"`
	UUID        string `gorm:"column:uuid;uniqueIndex;size:36;not null"`
	Name        string `gorm:"uniqueIndex;size:250;not null"`
	Description string `gorm:"size:1000"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	SoftDelete
}

func (Category) TableName() string { return "categories" }

func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.UUID == "" {
		c.UUID = utils.NewID()
	}
	return nil
}
