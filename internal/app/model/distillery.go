package model

import (
	"time"

	"gorm.io/gorm"
)

// Distillery is a producer under a region, owning products.
type Distillery struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	RegionID    uint           `gorm:"not null;index" json:"region_id"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Region   Region    `gorm:"foreignKey:RegionID" json:"-"`
	Products []Product `gorm:"foreignKey:DistilleryID" json:"-"`
}

func (Distillery) TableName() string {
	return "distilleries"
}
