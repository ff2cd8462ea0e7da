package model

// Item is a single inventory product record.
type Item struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null;size:255" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Stock       int       `gorm:"not null;default:0" json:"stock"`
	CategoryID  uint      `gorm:"not null;index" json:"categoryId"`
	Category    *Category `json:"category,omitempty"`
}

// TableName returns the table name for Item.
func (Item) TableName() string {
	return "items"
}

// ItemForm holds raw form values for creating an item. Fields are kept as the
// submitted strings so that parse failures surface as validation errors
// instead of silent zero values.
type ItemForm struct {
	Name        string
	Description string
	Price       string
	Stock       string
	CategoryID  string
}

// LowStockThreshold is the stock level at or below which an item is flagged
// on the dashboard.
const LowStockThreshold = 5

// IsLowStock reports whether the item should appear in low-stock alerts.
func (i Item) IsLowStock() bool {
	return i.Stock <= LowStockThreshold
}
