package model

// Category is a named grouping of inventory items.
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null;size:255" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Items       []Item `json:"items,omitempty"`
}

// TableName returns the table name for Category.
func (Category) TableName() string {
	return "categories"
}

// CategoryForm holds raw form values for creating a category.
// Parsing and validation happen in the service layer.
type CategoryForm struct {
	Name        string
	Description string
}

// CategorySummary holds derived figures for a single category's detail page.
type CategorySummary struct {
	ItemCount           int
	StockSum            int
	InventoryValueCents int64
}

// SummarizeCategory computes the detail-page summary over a category's items.
func SummarizeCategory(items []Item) CategorySummary {
	s := CategorySummary{ItemCount: len(items)}
	for _, it := range items {
		s.StockSum += it.Stock
		s.InventoryValueCents += Cents(it.Price) * int64(it.Stock)
	}
	return s
}
