package model

import "gorm.io/gorm"

// Product is a seller listing in the marketplace. Price is stored in paise
// to avoid float money.
type Product struct {
	gorm.Model
	SellerID    uint   `gorm:"index;not null" json:"sellerId"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Category    string `gorm:"size:100" json:"category"`
	Description string `gorm:"type:text" json:"description"`
	Price       int64  `gorm:"not null" json:"price"`
	Stock       int    `gorm:"default:0" json:"stock"`
	ImageURL    string `gorm:"size:255" json:"imageUrl"`
	Published   bool   `gorm:"default:false" json:"published"`
}

func (Product) TableName() string {
	return "products"
}
