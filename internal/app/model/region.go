package model

import (
	"time"

	"gorm.io/gorm"
)

// Region is a top-level geographic grouping of distilleries.
type Region struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"not null;uniqueIndex" json:"name"`
	Subtitle    string         `json:"subtitle"`
	Description string         `gorm:"type:text" json:"description"`
	Color       string         `json:"color"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Distilleries []Distillery `gorm:"foreignKey:RegionID" json:"distilleries,omitempty"`
}

func (Region) TableName() string {
	return "regions"
}
