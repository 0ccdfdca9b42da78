package model

import (
	"time"

	"gorm.io/gorm"
)

// Product is a sellable catalog item belonging to exactly one distillery.
type Product struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Title        string         `gorm:"not null" json:"title"`
	DistilleryID uint           `gorm:"not null;index" json:"distillery_id"`
	Age          int            `json:"age"`     // years
	Alcohol      float64        `json:"alcohol"` // percent by volume
	Volume       float64        `json:"volume"`  // litres
	Price        float64        `gorm:"not null" json:"price"`
	Description  string         `gorm:"type:text" json:"description"`
	Available    bool           `gorm:"default:true" json:"available"`
	ImageURL     string         `json:"image_url"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Distillery Distillery `gorm:"foreignKey:DistilleryID" json:"distillery,omitempty"`
	CartItems  []CartItem `gorm:"foreignKey:ProductID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}
