package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a billable item (minibar, restaurant, laundry, ...) that
// can be charged to a reservation as a consumption.
type Product struct {
	gorm.Model

	Name      string          `json:"name" gorm:"size:255"`
	Category  string          `json:"category" gorm:"size:64;index"`
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"column:unit_price;type:decimal(10,2)"`
	Active    bool            `json:"active" gorm:"default:true"`
}
